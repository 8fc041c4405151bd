package cryptox

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{7}, KeySize)

	sealed, err := Seal([]byte("eyJhbGciOi..."), key)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "eyJhbGciOi")

	plain, err := Open(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi...", string(plain))
}

func TestSeal_RandomNonce(t *testing.T) {
	key := bytes.Repeat([]byte{1}, KeySize)
	a, err := Seal([]byte("v"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("v"), key)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpen_Failures(t *testing.T) {
	key := bytes.Repeat([]byte{1}, KeySize)
	other := bytes.Repeat([]byte{2}, KeySize)

	sealed, err := Seal([]byte("v"), key)
	require.NoError(t, err)

	_, err = Open(sealed, other)
	assert.Error(t, err)

	_, err = Open([]byte{1, 2}, key)
	assert.ErrorIs(t, err, ErrSealedTooShort)

	_, err = Open(sealed, []byte("short"))
	assert.Error(t, err)

	_, err = Seal([]byte("v"), []byte("short"))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	a := Fingerprint("device-1", at)
	assert.Len(t, a, 64)
	assert.Equal(t, a, Fingerprint("device-1", at))
	assert.NotEqual(t, a, Fingerprint("device-1", at.Add(time.Nanosecond)))
	assert.NotEqual(t, a, Fingerprint("device-2", at))
	assert.NotContains(t, a, "device-1")
}
