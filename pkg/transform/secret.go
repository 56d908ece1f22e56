package transform

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
)

// HashSaltBytes is the amount of entropy in a generated hash_salt
const HashSaltBytes = 55

// GenerateHashSalt reads HashSaltBytes from random and encodes them with
// the URL-safe base64 alphabet, without padding. A nil reader means
// crypto/rand.
func GenerateHashSalt(random io.Reader) (string, error) {
	if random == nil {
		random = rand.Reader
	}
	buf := make([]byte, HashSaltBytes)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", errors.Wrap(err, errors.ErrSecretGenerate, "failed to read random bytes for hash_salt")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
