// Copyright 2026 The Avtokassa Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"math/rand/v2"
	"strings"
)

// IDPrefix distinguishes ticket identifiers from seat numbers at a
// glance. Seat numbers never contain a dash.
const IDPrefix = "T-"

// idLength is the number of random characters after the prefix.
const idLength = 9

// alphabet is the base-36 character set of the random portion.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generator produces ticket identifiers of the form "T-" followed by
// nine random base-36 characters. Identifiers are unique only with
// high probability: the entropy of the random portion is the entire
// uniqueness guarantee, and generated IDs are not checked against
// previously issued ones.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from the shared math/rand
// source.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewSeededGenerator returns a Generator with its own deterministic
// source. Two generators with the same seed produce the same ID
// sequence; use this in tests that assert exact identifiers.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// NewID returns a fresh ticket identifier.
func (g *Generator) NewID() string {
	var builder strings.Builder
	builder.Grow(len(IDPrefix) + idLength)
	builder.WriteString(IDPrefix)
	for i := 0; i < idLength; i++ {
		builder.WriteByte(alphabet[g.intN(len(alphabet))])
	}
	return builder.String()
}

func (g *Generator) intN(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}
