package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("Abcdef12")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef12", digest)

	assert.True(t, hasher.Verify("Abcdef12", digest))
	assert.False(t, hasher.Verify("wrong-password", digest))
}
