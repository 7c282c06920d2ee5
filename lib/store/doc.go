// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

// Package store persists the seat collection and owns it at runtime.
//
// The persisted form is one JSON document holding the full collection,
// written atomically (temporary file, fsync, rename into place, fsync
// parent directory) so a reader never sees a partial state. [Load]
// treats a missing file, unparsable contents, and a structurally
// invalid collection identically: it reports no usable state, and the
// caller regenerates the catalog. Corruption is a silent fallback, not
// an error surface.
//
// [Open] implements the initialization contract: load the prior
// collection if one exists, otherwise generate the layout's catalog,
// save it, and use it. Committed bookings therefore survive restarts
// indefinitely; the generator only ever runs against a blank slate.
//
// The resulting [Store] is an explicitly owned object handed to the
// UI, not a process-wide singleton. Its one mutation, [Store.Commit],
// books a seat: ticket ID, timestamp, and passenger fields are set
// together on a copy of the collection, the copy is saved, and only
// after a successful save does it become the current collection.
// Every read hands out copies, so callers cannot bypass Commit.
package store
