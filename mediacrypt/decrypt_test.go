package mediacrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"mediavault/enums"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encrypts the way the media source does: same derivation, same AEAD,
// tag appended to the ciphertext
func encryptForClass(t *testing.T, mediaKey []byte, plaintext []byte, class enums.MediaClass) []byte {
	t.Helper()

	keys, err := deriveKeyMaterial(mediaKey, classProfiles[class])
	require.NoError(t, err)

	block, err := aes.NewCipher(keys.cipherKey)
	require.NoError(t, err)

	var aead cipher.AEAD
	if len(keys.iv) == gcmStandardNonceSize {
		aead, err = cipher.NewGCM(block)
	} else {
		aead, err = cipher.NewGCMWithNonceSize(block, len(keys.iv))
	}
	require.NoError(t, err)

	return aead.Seal(nil, keys.iv, plaintext, nil)
}

func TestDecryptRoundTrip(t *testing.T) {
	mediaKey := []byte("0123456789abcdef0123456789abcdef")
	plaintext := []byte("some media payload bytes")

	for _, class := range enums.MediaClasses {
		ciphertext := encryptForClass(t, mediaKey, plaintext, class)

		keys, err := deriveKeyMaterial(mediaKey, classProfiles[class])
		require.NoError(t, err)

		got, err := decryptPayload(ciphertext, keys)
		require.NoError(t, err, "class %s", class)
		assert.Equal(t, plaintext, got, "class %s", class)
	}
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	mediaKey := []byte("0123456789abcdef0123456789abcdef")
	plaintext := []byte("some media payload bytes")
	ciphertext := encryptForClass(t, mediaKey, plaintext, enums.MediaClassImage)

	keys, err := deriveKeyMaterial(mediaKey, classProfiles[enums.MediaClassImage])
	require.NoError(t, err)

	// flipping any single bit must fail closed
	for i := 0; i < len(ciphertext); i++ {
		tampered := make([]byte, len(ciphertext))
		copy(tampered, ciphertext)
		tampered[i] ^= 0x01

		got, err := decryptPayload(tampered, keys)
		assert.ErrorIs(t, err, ErrDecryptionFailed, "byte %d", i)
		assert.Nil(t, got, "byte %d", i)
	}
}

func TestDecryptWrongKey(t *testing.T) {
	plaintext := []byte("some media payload bytes")
	ciphertext := encryptForClass(t, []byte("correct-key"), plaintext, enums.MediaClassVideo)

	// a single flipped bit in the media key derives unrelated material
	keys, err := deriveKeyMaterial([]byte("corsect-key"), classProfiles[enums.MediaClassVideo])
	require.NoError(t, err)

	got, err := decryptPayload(ciphertext, keys)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Nil(t, got)
}

func TestDecryptTruncatedCiphertext(t *testing.T) {
	keys, err := deriveKeyMaterial([]byte("key"), classProfiles[enums.MediaClassAudio])
	require.NoError(t, err)

	got, err := decryptPayload([]byte{0x01, 0x02}, keys)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Nil(t, got)
}
