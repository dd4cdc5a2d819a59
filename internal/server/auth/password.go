package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lockify/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2Params controls the cost of argon2id digests.
type Argon2Params struct {
	Time       uint32
	MemoryKiB  uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultArgon2Params follows the OWASP argon2id recommendation.
var DefaultArgon2Params = Argon2Params{
	Time:       1,
	MemoryKiB:  64 * 1024,
	Threads:    4,
	SaltLength: 16,
	KeyLength:  32,
}

// Argon2Hasher produces salted argon2id digests in PHC string form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt_b64>$<hash_b64>
type Argon2Hasher struct {
	params Argon2Params
}

func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

// Hash returns a fresh digest of password. Two calls with the same password
// produce different digests because the salt is random.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := common.GenerateRandByteArray(int(h.params.SaltLength))

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLength)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Time,
		h.params.Threads,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	), nil
}

// Compare reports whether password matches digest. Malformed digests and
// digests whose cost exceeds twice the configured one never match.
func (h *Argon2Hasher) Compare(password, digest string) bool {
	params, salt, expected, err := decodeDigest(digest)
	if err != nil {
		return false
	}

	if params.MemoryKiB > h.params.MemoryKiB*2 || params.Time > h.params.Time*2 || params.Threads > h.params.Threads*2 {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func decodeDigest(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("unsupported digest format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, err
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &threads); err != nil {
		return p, nil, nil, err
	}
	if threads == 0 || threads > 255 || p.Time == 0 {
		return p, nil, nil, fmt.Errorf("invalid argon2 parameters")
	}
	p.Threads = uint8(threads)

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, err
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, err
	}
	if len(key) < 16 || len(key) > 128 {
		return p, nil, nil, fmt.Errorf("invalid key length %d", len(key))
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}
