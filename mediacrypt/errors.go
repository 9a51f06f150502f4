package mediacrypt

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	// ErrInvalidRequest means the request shape is wrong: exactly one
	// of source URL or inline ciphertext must be present. caller bug,
	// not retryable.
	ErrInvalidRequest = &Error{Message: "invalid media request"}

	// ErrInvalidKeyMaterial means the media key is empty or unusable.
	// retrying needs new key material.
	ErrInvalidKeyMaterial = &Error{Message: "invalid media key material"}

	// ErrMediaFetchFailed means the ciphertext could not be obtained
	// from the media source. retryable by the caller with backoff.
	ErrMediaFetchFailed = &Error{Message: "failed to fetch encrypted media"}

	// ErrDecryptionFailed means the authenticated decryption rejected
	// the ciphertext. same inputs will fail identically.
	ErrDecryptionFailed = &Error{Message: "failed to decrypt media"}

	// ErrCacheWriteFailed is only ever logged: a failed cache write
	// never fails the resolution that produced the media.
	ErrCacheWriteFailed = &Error{Message: "failed to write media cache entry"}
)
