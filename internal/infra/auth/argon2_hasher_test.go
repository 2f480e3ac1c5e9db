package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/config"
)

func testArgonParams() config.ArgonConfig {
	return config.ArgonConfig{
		HashLength:  32,
		SaltLength:  16,
		TimeCost:    1,
		MemoryCost:  1024,
		Parallelism: 1,
	}
}

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := newArgon2Hasher(testArgonParams())

	hash, err := hasher.Hash("12345678")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, hash, "12345678")
	assert.True(t, hasher.Check("12345678", hash))
	assert.False(t, hasher.Check("123456789", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestArgon2Hasher_SaltsDiffer(t *testing.T) {
	hasher := newArgon2Hasher(testArgonParams())

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestArgon2Hasher_CheckUsesEmbeddedParameters(t *testing.T) {
	cheap := newArgon2Hasher(testArgonParams())
	hash, err := cheap.Hash("secret-value")
	require.NoError(t, err)

	params := testArgonParams()
	params.TimeCost = 2
	params.MemoryCost = 2048
	stronger := newArgon2Hasher(params)

	assert.True(t, stronger.Check("secret-value", hash))
}

func TestArgon2Hasher_MalformedDigestNeverMatches(t *testing.T) {
	hasher := newArgon2Hasher(testArgonParams())

	valid, err := hasher.Hash("password")
	require.NoError(t, err)

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "plaintext", hash: "password"},
		{name: "bcrypt", hash: "$2a$10$abcdefghijklmnopqrstuu5Pbf3zvKsZqjFAnCMCnq6cR3lgdyu7S"},
		{name: "wrong variant", hash: strings.Replace(valid, "argon2id", "argon2i", 1)},
		{name: "wrong version", hash: strings.Replace(valid, "v=19", "v=16", 1)},
		{name: "zero memory", hash: strings.Replace(valid, "m=1024", "m=0", 1)},
		{name: "truncated", hash: valid[:strings.LastIndex(valid, "$")]},
		{name: "bad salt", hash: strings.Replace(valid, "$m=1024,t=1,p=1$", "$m=1024,t=1,p=1$!!!", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Check("password", tt.hash))
		})
	}
}

func TestNewArgon2Hasher_UsesConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.Argon = testArgonParams()
	cfg.Auth.Argon.SaltLength = 0

	hasher := NewArgon2Hasher(cfg)
	hash, err := hasher.Hash("12345678")
	require.NoError(t, err)
	assert.True(t, hasher.Check("12345678", hash))
}
