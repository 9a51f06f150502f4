package models

import (
	"time"

	"mediavault/enums"

	"github.com/guregu/null/v6/zero"
)

// MediaRequest carries the inputs needed to resolve one encrypted
// media item. exactly one of SourceURL or InlineCiphertext must be
// set; InlineCiphertext is standard base64.
type MediaRequest struct {
	SourceURL        string `json:"source_url"`
	InlineCiphertext string `json:"inline_ciphertext"`
	MediaKey         []byte `json:"media_key"`
	MessageID        string `json:"message_id"`
}

type DecryptedMedia struct {
	Payload []byte `json:"-"`
	Format  string `json:"format"`
}

type MediaCacheEntry struct {
	ID         uint             `json:"-"`
	MediaClass enums.MediaClass `gorm:"not null;uniqueIndex:idx_class_message,priority:1" json:"media_class"`
	MessageID  string           `gorm:"not null;uniqueIndex:idx_class_message,priority:2;size:191" json:"message_id"`
	Payload    []byte           `gorm:"type:longblob;not null" json:"-"`
	Format     string           `gorm:"not null;size:64" json:"format"`
	SourceURL  zero.String      `json:"source_url"`

	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// an expired entry is a cache miss, never an error
func (entry *MediaCacheEntry) Expired(now time.Time) bool {
	return now.After(entry.ExpiresAt)
}
