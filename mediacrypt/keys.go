package mediacrypt

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

const cipherKeySize = 32

// derivedKeyMaterial lives only for the duration of one resolution.
// it is never logged and never written to the cache.
type derivedKeyMaterial struct {
	cipherKey []byte
	iv        []byte
}

// deriveKeyMaterial expands the per-message media key into the cipher
// key and IV for the given class. the external protocol uses a single
// HMAC-SHA256 round per output with a domain-separation label, with
// the digest truncated to the requested size. this is deliberately
// not HKDF: the derivation must stay bit-compatible with the media
// source.
func deriveKeyMaterial(mediaKey []byte, profile classProfile) (*derivedKeyMaterial, error) {
	if len(mediaKey) == 0 {
		return nil, fmt.Errorf("%w: media key is empty", ErrInvalidKeyMaterial)
	}
	return &derivedKeyMaterial{
		cipherKey: deriveBytes(mediaKey, profile.keyLabel, cipherKeySize),
		iv:        deriveBytes(mediaKey, profile.ivLabel, profile.ivSize),
	}, nil
}

// deriveBytes truncates, never pads: size must not exceed the
// SHA-256 digest size.
func deriveBytes(mediaKey []byte, label string, size int) []byte {
	mac := hmac.New(sha256.New, mediaKey)
	mac.Write([]byte(label))
	return mac.Sum(nil)[:size]
}
