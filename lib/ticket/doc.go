// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket generates booking ticket identifiers.
//
// A ticket ID is "T-" followed by nine random base-36 characters,
// e.g. "T-4F8ZK2Q1M". The format is short enough to read to a
// passenger and cannot be confused with a seat number. Uniqueness is
// probabilistic: 36^9 possible values and no collision check against
// identifiers already issued. Callers that need a hard uniqueness
// guarantee must layer their own check on top.
//
// This package depends on no other avtokassa packages.
package ticket
