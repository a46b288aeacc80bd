// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHash_DifferentKeys(t *testing.T) {
	data := []byte(`{"ciphertext":"AAAA"}`)

	InitHasherPool("key-1")
	sum1 := Hash(data)

	InitHasherPool("key-2")
	sum2 := Hash(data)

	if bytes.Equal(sum1, sum2) {
		t.Fatal("different keys must produce different digests")
	}
}

func TestHash_Concurrent(t *testing.T) {
	InitHasherPool("concurrent")
	want := Hash([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Hash([]byte("payload")); !bytes.Equal(got, want) {
				t.Errorf("unexpected digest %x", got)
			}
		}()
	}
	wg.Wait()
}

func TestVerifyHash(t *testing.T) {
	InitHasherPool("verify-key")
	body := []byte(`{"title":"github"}`)
	good := hex.EncodeToString(Hash(body))

	tests := []struct {
		name string
		sum  string
		want bool
	}{
		{name: "matching digest", sum: good, want: true},
		{name: "other body", sum: hex.EncodeToString(Hash([]byte("other"))), want: false},
		{name: "not hex", sum: "zz", want: false},
		{name: "empty", sum: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyHash(body, tt.sum); got != tt.want {
				t.Fatalf("VerifyHash() = %v, want %v", got, tt.want)
			}
		})
	}
}
