// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. Calling it again replaces the pool.
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the pool.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// VerifyHash reports whether hexSum is the hex encoded HMAC of data. The
// comparison runs in constant time.
func VerifyHash(data []byte, hexSum string) bool {
	got, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(got, Hash(data))
}
