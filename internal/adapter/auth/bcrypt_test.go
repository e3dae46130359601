package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachtlabs/git-nacht/internal/port"
)

func TestBcryptHashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, algo, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.Equal(t, AlgoBcrypt, algo)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, hasher.Verify(hash, algo, "s3cret"))
	assert.ErrorIs(t, hasher.Verify(hash, algo, "wrong"), port.ErrAuthFailure)
}

func TestVerifyRejectsUnknownAlgorithmTag(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, _, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	// The algorithm comes from the stored tag, never from the hash value.
	assert.ErrorIs(t, hasher.Verify(hash, "md5", "s3cret"), port.ErrAuthFailure)
	assert.ErrorIs(t, hasher.Verify(hash, "", "s3cret"), port.ErrAuthFailure)
}
