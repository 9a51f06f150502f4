package provider

import (
	"encoding/base64"
	"fmt"

	"mediavault/enums"
	"mediavault/models"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrNoMediaContent = errors.New("message carries no media content for this class")

// per-class node holding the media descriptor inside a provider
// webhook message payload
var classPaths = map[enums.MediaClass]string{
	enums.MediaClassImage:    "message.imageMessage",
	enums.MediaClassAudio:    "message.audioMessage",
	enums.MediaClassVideo:    "message.videoMessage",
	enums.MediaClassDocument: "message.documentMessage",
}

// ExtractMediaRequest pulls the decryption inputs for one media class
// out of a raw provider message payload: the ciphertext URL and the
// base64 media key, plus the message id used as the cache key.
func ExtractMediaRequest(raw []byte, class enums.MediaClass) (*models.MediaRequest, error) {
	path, ok := classPaths[class]
	if !ok {
		return nil, errors.Errorf("unknown media class %q", class)
	}

	node := gjson.GetBytes(raw, path)
	if !node.Exists() {
		return nil, fmt.Errorf("%w: no %s node in payload", ErrNoMediaContent, path)
	}

	sourceURL := node.Get("url").String()
	if sourceURL == "" {
		return nil, errors.New("media node has no url")
	}

	encodedKey := node.Get("mediaKey").String()
	if encodedKey == "" {
		return nil, errors.New("media node has no mediaKey")
	}
	mediaKey, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, errors.Wrap(err, "mediaKey is not valid base64")
	}

	return &models.MediaRequest{
		SourceURL: sourceURL,
		MediaKey:  mediaKey,
		MessageID: gjson.GetBytes(raw, "key.id").String(),
	}, nil
}

// MimeType returns the provider-declared mime type for the media
// node, if any. declared types are advisory only: the resolver trusts
// magic-number sniffing over them.
func MimeType(raw []byte, class enums.MediaClass) string {
	path, ok := classPaths[class]
	if !ok {
		return ""
	}
	return gjson.GetBytes(raw, path+".mimetype").String()
}
