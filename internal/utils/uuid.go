// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator issues record ids. Version 7 ids embed the creation time so
// primary key order follows insertion order.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a v7 id, or a random v4 id if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// IsUUID reports whether s is a canonical UUID string.
func IsUUID(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.String() == s
}
