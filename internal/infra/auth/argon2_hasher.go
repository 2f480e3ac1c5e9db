// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"budget/config"
	"budget/internal/domain/service"
	"budget/internal/errors"
)

const argonVariant = "argon2id"

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id. Digests use the PHC string format so the cost parameters
// travel with the hash:
//
//	$argon2id$v=19$m=131072,t=6,p=1$<salt>$<hash>
type argon2Hasher struct {
	params config.ArgonConfig
}

// NewArgon2Hasher is the constructor for argon2Hasher.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	return newArgon2Hasher(cfg.Auth.Argon)
}

func newArgon2Hasher(params config.ArgonConfig) *argon2Hasher {
	if params.SaltLength == 0 {
		params.SaltLength = 16
	}
	if params.Parallelism == 0 {
		params.Parallelism = 1
	}

	return &argon2Hasher{params: params}
}

// Hash derives an argon2id digest from password using a fresh random salt.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.TimeCost, h.params.MemoryCost, h.params.Parallelism, h.params.HashLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argonVariant,
		argon2.Version,
		h.params.MemoryCost,
		h.params.TimeCost,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check recomputes the digest with the parameters embedded in hash.
func (h *argon2Hasher) Check(password, hash string) bool {
	decoded, err := decodeArgonHash(hash)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(password), decoded.salt, decoded.time, decoded.memory, decoded.threads, uint32(len(decoded.key)))

	return subtle.ConstantTimeCompare(key, decoded.key) == 1
}

type argonHash struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func decodeArgonHash(encoded string) (*argonHash, error) {
	// Leading "$" yields an empty first segment.
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argonVariant {
		return nil, errors.New("unsupported hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, errors.Wrap(err, "invalid version segment")
	}
	if version != argon2.Version {
		return nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	decoded := &argonHash{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &decoded.memory, &decoded.time, &decoded.threads); err != nil {
		return nil, errors.Wrap(err, "invalid parameter segment")
	}
	if decoded.memory == 0 || decoded.time == 0 || decoded.threads == 0 {
		return nil, errors.New("invalid argon2 parameters")
	}

	var err error
	if decoded.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, errors.Wrap(err, "invalid salt encoding")
	}
	if decoded.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, errors.Wrap(err, "invalid hash encoding")
	}
	if len(decoded.key) == 0 {
		return nil, errors.New("empty hash")
	}

	return decoded, nil
}
