// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avtokassa/avtokassa/lib/seat"
)

// Load reads and parses the persisted seat collection. The second
// return is false when no usable prior state exists: the file is
// missing, the contents are not valid JSON, or the decoded collection
// fails structural validation. All three cases are reported
// identically so the caller regenerates the catalog instead of
// failing; a corrupt state file must never take the application down.
func Load(path string) ([]seat.Seat, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var seats []seat.Seat
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, false
	}
	if err := seat.Validate(seats); err != nil {
		return nil, false
	}
	return seats, true
}

// Save serializes the full collection and writes it to path,
// overwriting any prior value. The write is atomic: the data goes to a
// temporary file in the same directory, is fsynced, and is renamed
// into place, so a concurrent or subsequent Load never observes a
// partial write. The parent directory is created if missing.
//
// The file is created with mode 0600 (owner read/write only).
func Save(path string, seats []seat.Seat) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(seats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling seat collection: %w", err)
	}
	// Trailing newline for clean file content.
	data = append(data, '\n')

	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating temporary state file: %w", err)
	}

	// Write, sync, close, in that order. If any step fails, remove the
	// temporary file and report the first error.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary state file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary state file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary state file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming state file into place: %w", err)
	}

	// Sync the parent directory so the rename survives power loss
	// between the rename and the OS flushing directory metadata.
	parentDirectory, err := os.Open(filepath.Dir(path))
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}

	return nil
}
