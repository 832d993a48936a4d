// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
)

// Store reads and writes the persisted session record.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted record.
//
// A missing file, unreadable file, invalid JSON, or a record with any empty
// field all mean "no session"; corrupt local state must degrade to "not
// logged in", never crash.
func (s *Store) Load() (Record, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("No readable session file")

		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("Malformed session file, treating as no session")

		return Record{}, false
	}

	if !rec.Usable() {
		log.Debug().Str("path", s.path).Msg("Partial session record, treating as no session")

		return Record{}, false
	}

	return rec, true
}

// Save overwrites the persisted record.
//
// The file is replaced atomically, so a concurrent reader never observes a
// half-written record.
func (s *Store) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize session record: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.path, err)
	}

	return nil
}

// Delete removes the persisted record. A missing file is not an error.
func (s *Store) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file %s: %w", s.path, err)
	}

	return nil
}
