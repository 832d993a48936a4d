// Copyright 2025, the pixivcli contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package core implements the read-only query operations against pixiv's
public-api v1 endpoints: a user's illustrations, a single illustration,
and ranked illustration lists. Every query delegates to the session
manager for credential assurance before touching the network.
*/
package core
