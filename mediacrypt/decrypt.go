package mediacrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const gcmStandardNonceSize = 12

// decryptPayload runs authenticated AES-GCM decryption. the auth tag
// is part of the ciphertext exactly as received from the media
// source, so the whole buffer goes to Open in one piece. any
// integrity failure aborts with no partial plaintext.
func decryptPayload(ciphertext []byte, keys *derivedKeyMaterial) ([]byte, error) {
	block, err := aes.NewCipher(keys.cipherKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	var aead cipher.AEAD
	if len(keys.iv) == gcmStandardNonceSize {
		aead, err = cipher.NewGCM(block)
	} else {
		aead, err = cipher.NewGCMWithNonceSize(block, len(keys.iv))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	if len(ciphertext) < aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext shorter than auth tag", ErrDecryptionFailed)
	}

	plaintext, err := aead.Open(nil, keys.iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: integrity check failed", ErrDecryptionFailed)
	}
	return plaintext, nil
}
