package secure

import (
	"bytes"
	"crypto/aes"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
)

// Cipher scrambles JSON payloads served to the candidate-facing client
// so question lists are not readable in a browser network tab. The
// browser counterpart derives the identical key (SHA-1 of the shared
// passphrase, truncated to 16 bytes) and decrypts with AES-128 in ECB
// mode with PKCS#5 padding.
//
// ECB is deterministic and pattern-leaking: identical plaintext blocks
// produce identical ciphertext blocks. This is obfuscation, not a
// confidentiality control, and the mode cannot change without updating
// the paired client decryptor in lockstep.
type Cipher struct {
	key []byte
}

func NewCipher(passphrase string) *Cipher {
	sum := sha1.Sum([]byte(passphrase))
	return &Cipher{key: sum[:16]}
}

// Encrypt returns the base64-encoded AES-ECB encryption of plaintext.
// Identical input always yields identical output.
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	bs := block.BlockSize()
	padded := pkcs5Pad(plaintext, bs)

	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += bs {
		block.Encrypt(out[i:i+bs], padded[i:i+bs])
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

func pkcs5Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}
