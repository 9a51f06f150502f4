package mediacrypt

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"mediavault/enums"
	"mediavault/models"

	"github.com/google/uuid"
	"github.com/guregu/null/v6/zero"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CacheTTL is fixed by the integration contract: a decrypted payload
// is served from the cache for at most 24 hours, then re-resolved.
const CacheTTL = 24 * time.Hour

// Store persists decrypted, format-tagged payloads per media class.
// Get returns (nil, nil) on a miss; an expired entry is a miss. Put
// is an upsert keyed by (class, message id). the store never sees key
// material, only finished output.
type Store interface {
	Get(ctx context.Context, class enums.MediaClass, messageID string) (*models.MediaCacheEntry, error)
	Put(ctx context.Context, entry *models.MediaCacheEntry) error
}

// Resolver turns a (ciphertext source, media key) pair into decrypted,
// format-tagged bytes, consulting the cache first when a message id is
// supplied. safe for concurrent use; identical in-flight requests for
// the same message are coalesced into one decryption.
type Resolver struct {
	store   Store // nil disables caching entirely
	fetcher Fetcher
	group   singleflight.Group
	now     func() time.Time
}

func NewResolver(store Store, fetcher Fetcher) *Resolver {
	return &Resolver{
		store:   store,
		fetcher: fetcher,
		now:     time.Now,
	}
}

func (r *Resolver) Resolve(
	ctx context.Context,
	class enums.MediaClass,
	req *models.MediaRequest,
) (*models.DecryptedMedia, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if req.MessageID == "" {
		return r.resolve(ctx, class, req)
	}

	// coalesce concurrent identical requests for the same message
	key := string(class) + "/" + req.MessageID
	result, err, _ := r.group.Do(key, func() (any, error) {
		return r.resolve(ctx, class, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.DecryptedMedia), nil
}

func (r *Resolver) resolve(
	ctx context.Context,
	class enums.MediaClass,
	req *models.MediaRequest,
) (*models.DecryptedMedia, error) {
	requestID := uuid.NewString()

	if req.MessageID != "" && r.store != nil {
		entry, err := r.store.Get(ctx, class, req.MessageID)
		if err != nil {
			zap.S().Warnf("cache lookup failed for %s message %s: %v", class, req.MessageID, err)
		}
		if entry != nil && !entry.Expired(r.now()) {
			zap.S().Debugf("cache hit for %s message %s (request %s)", class, req.MessageID, requestID)
			return &models.DecryptedMedia{
				Payload: entry.Payload,
				Format:  entry.Format,
			}, nil
		}
	}

	profile, ok := profileFor(class)
	if !ok {
		return nil, fmt.Errorf("%w: unknown media class %q", ErrInvalidRequest, class)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ciphertext, err := r.acquire(ctx, req)
	if err != nil {
		return nil, err
	}

	keys, err := deriveKeyMaterial(req.MediaKey, profile)
	if err != nil {
		return nil, err
	}

	payload, err := decryptPayload(ciphertext, keys)
	if err != nil {
		return nil, err
	}

	format := SniffFormat(payload, class)
	zap.S().Debugf("resolved %s media as %s, %d bytes (request %s)",
		class, format, len(payload), requestID)

	if req.MessageID != "" && r.store != nil {
		now := r.now()
		entry := &models.MediaCacheEntry{
			MediaClass: class,
			MessageID:  req.MessageID,
			Payload:    payload,
			Format:     format,
			SourceURL:  zero.NewString(req.SourceURL, req.SourceURL != ""),
			CreatedAt:  now,
			ExpiresAt:  now.Add(CacheTTL),
		}
		// a failed cache write never fails the resolution
		if err := r.store.Put(ctx, entry); err != nil {
			zap.S().Warnf("%v for %s message %s: %v",
				ErrCacheWriteFailed, class, req.MessageID, err)
		}
	}

	return &models.DecryptedMedia{
		Payload: payload,
		Format:  format,
	}, nil
}

// exactly one ciphertext source, and key material present
func validateRequest(req *models.MediaRequest) error {
	hasURL := req.SourceURL != ""
	hasInline := req.InlineCiphertext != ""
	if hasURL == hasInline {
		return fmt.Errorf("%w: exactly one of source URL or inline ciphertext must be set", ErrInvalidRequest)
	}
	if len(req.MediaKey) == 0 {
		return fmt.Errorf("%w: media key is empty", ErrInvalidKeyMaterial)
	}
	return nil
}

func (r *Resolver) acquire(ctx context.Context, req *models.MediaRequest) ([]byte, error) {
	if req.InlineCiphertext != "" {
		data, err := base64.StdEncoding.DecodeString(req.InlineCiphertext)
		if err != nil {
			return nil, fmt.Errorf("%w: inline ciphertext is not valid base64", ErrInvalidRequest)
		}
		return data, nil
	}
	return r.fetcher.Fetch(ctx, req.SourceURL)
}
