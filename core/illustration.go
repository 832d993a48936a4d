// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

// Illustration is one entry of a works.json or ranking payload.
type Illustration struct {
	ID             int               `json:"id"`
	Title          string            `json:"title"`
	Caption        string            `json:"caption"`
	Tags           []string          `json:"tags"`
	Tools          []string          `json:"tools"`
	ImageURLs      map[string]string `json:"image_urls"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Stats          IllustrationStats `json:"stats"`
	PageCount      int               `json:"page_count"`
	AgeLimit       string            `json:"age_limit"`
	CreatedTime    string            `json:"created_time"`
	ReuploadedTime string            `json:"reuploaded_time"`
	SanityLevel    int               `json:"sanity_level"`
	Type           string            `json:"type"`
	User           IllustrationUser  `json:"user"`
}

// IllustrationStats carries the counts included via include_stats=true.
type IllustrationStats struct {
	ScoredCount    int            `json:"scored_count"`
	Score          int            `json:"score"`
	ViewsCount     int            `json:"views_count"`
	FavoritedCount FavoritedCount `json:"favorited_count"`
	CommentedCount int            `json:"commented_count"`
}

// FavoritedCount splits bookmark counts by visibility.
type FavoritedCount struct {
	Public  int `json:"public"`
	Private int `json:"private"`
}

// IllustrationUser is the author embedded in an illustration payload.
type IllustrationUser struct {
	ID               int               `json:"id"`
	Account          string            `json:"account"`
	Name             string            `json:"name"`
	ProfileImageURLs map[string]string `json:"profile_image_urls"`
}
