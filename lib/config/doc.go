// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the booking
// widget.
//
// Configuration is loaded from a single file specified by either the
// AVTOKASSA_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). When neither names a file, [Default] applies:
// the original Toshkent to Navoiy route on a forty-seat coach. There
// is no ~/.config discovery and no automatic file search, so the
// route, layout, and state-file location a process runs with are
// always auditable from one place.
//
// The only expansion performed is ${HOME} and ${VAR:-default} patterns
// in the state-file path. Environment variables never override config
// values.
//
// Key exports:
//
//   - [Config] -- route, seat layout, and file paths
//   - [Default] -- the built-in route and layout
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- structural checks before use
//
// This package depends only on lib/seat (for the layout type).
package config
