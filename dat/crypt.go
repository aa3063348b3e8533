package dat

import (
	"crypto/rc4"
	"crypto/sha1"

	"github.com/cockroachdb/errors"
)

// Crypt applies the .dat stream cipher to src and returns the result in a
// new buffer of the same length. The cipher is RC4 keyed with the SHA-1
// digest of the first KeySize bytes of key, so the same call both encrypts
// and decrypts.
func Crypt(key, src []byte) ([]byte, error) {
	if len(key) < KeySize {
		return nil, errors.Wrapf(ErrInvalidKey, "got %d bytes, need %d", len(key), KeySize)
	}

	sum := sha1.Sum(key[:KeySize])
	c, err := rc4.NewCipher(sum[:])
	if err != nil {
		return nil, errors.Wrap(err, "dat: rc4 key setup")
	}

	dst := make([]byte, len(src))
	c.XORKeyStream(dst, src)
	return dst, nil
}
