package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyHolder_StartsLocked(t *testing.T) {
	h := NewKeyHolder()
	assert.False(t, h.IsUnlocked())

	var zero KeyHolder
	assert.False(t, zero.IsUnlocked())
}

func TestKeyHolder_UnlockThenWithSecret(t *testing.T) {
	h := NewKeyHolder()

	require.NoError(t, h.Unlock([]byte("correct-horse")))
	assert.True(t, h.IsUnlocked())

	var seen string
	err := h.WithSecret(func(secret []byte) error {
		seen = string(secret)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "correct-horse", seen)
}

func TestKeyHolder_UnlockWipesCallerBuffer(t *testing.T) {
	h := NewKeyHolder()
	secret := []byte("correct-horse")

	require.NoError(t, h.Unlock(secret))
	assert.Equal(t, make([]byte, len(secret)), secret)
}

func TestKeyHolder_UnlockEmptySecret(t *testing.T) {
	h := NewKeyHolder()
	require.NoError(t, h.Unlock([]byte("pw")))

	err := h.Unlock(nil)
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.False(t, h.IsUnlocked())

	err = h.Unlock([]byte{})
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.False(t, h.IsUnlocked())
}

func TestKeyHolder_UnlockReplacesSecret(t *testing.T) {
	h := NewKeyHolder()
	require.NoError(t, h.Unlock([]byte("first")))
	require.NoError(t, h.Unlock([]byte("second")))

	_ = h.WithSecret(func(secret []byte) error {
		assert.Equal(t, "second", string(secret))
		return nil
	})
}

func TestKeyHolder_LockedGuard(t *testing.T) {
	h := NewKeyHolder()
	require.NoError(t, h.Unlock([]byte("pw")))
	h.Lock()
	h.Lock()

	called := false
	err := h.WithSecret(func([]byte) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrNotUnlocked)
	assert.False(t, called, "callback must not run while locked")
	assert.False(t, h.IsUnlocked())
}

func TestKeyHolder_WithSecretPropagatesError(t *testing.T) {
	h := NewKeyHolder()
	require.NoError(t, h.Unlock([]byte("pw")))

	boom := errors.New("boom")
	err := h.WithSecret(func([]byte) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, h.IsUnlocked(), "callback errors must not lock the holder")
}

func TestKeyHolder_ConcurrentAccess(t *testing.T) {
	h := NewKeyHolder()
	require.NoError(t, h.Unlock([]byte("pw")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			err := h.WithSecret(func(secret []byte) error {
				if string(secret) != "pw" {
					return errors.New("unexpected secret")
				}
				return nil
			})
			if err != nil {
				assert.ErrorIs(t, err, ErrNotUnlocked)
			}
		}()
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				h.Lock()
			} else {
				_ = h.Unlock([]byte("pw"))
			}
		}(i)
	}
	wg.Wait()
}
