package mediacrypt

import (
	"testing"

	"mediavault/enums"

	"github.com/stretchr/testify/assert"
)

func padded(prefix []byte) []byte {
	buf := make([]byte, 64)
	copy(buf, prefix)
	return buf
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name    string
		class   enums.MediaClass
		payload []byte
		want    string
	}{
		{"jpeg", enums.MediaClassImage, padded([]byte{0xFF, 0xD8, 0xFF, 0xE0}), "jpeg"},
		{"png", enums.MediaClassImage, padded([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}), "png"},
		{"gif", enums.MediaClassImage, padded([]byte("GIF89a")), "gif"},
		{"webp", enums.MediaClassImage, padded([]byte("RIFF\x10\x00\x00\x00WEBPVP8 ")), "webp"},
		{"bmp", enums.MediaClassImage, padded([]byte("BM")), "bmp"},
		{"image fallback", enums.MediaClassImage, padded([]byte{0x00, 0x01, 0x02}), "jpeg"},

		{"ogg", enums.MediaClassAudio, padded([]byte("OggS")), "ogg"},
		{"wav", enums.MediaClassAudio, padded([]byte("RIFF\x24\x00\x00\x00WAVEfmt ")), "wav"},
		{"mp3 frame sync", enums.MediaClassAudio, padded([]byte{0xFF, 0xFB, 0x90, 0x00}), "mp3"},
		{"audio fallback", enums.MediaClassAudio, padded([]byte{0x00, 0x01, 0x02}), "ogg"},

		{"mp4 ftyp", enums.MediaClassVideo, padded([]byte("\x00\x00\x00\x18ftypisom")), "mp4"},
		{"mp4 mdat", enums.MediaClassVideo, padded([]byte("\x00\x00\x00\x08mdat")), "mp4"},
		{"webm", enums.MediaClassVideo, padded([]byte{0x1A, 0x45, 0xDF, 0xA3}), "webm"},
		{"avi", enums.MediaClassVideo, padded([]byte("RIFF\x00\x00\x00\x00AVI LIST")), "avi"},
		{"mov moov", enums.MediaClassVideo, padded([]byte("\x00\x00\x00\x08moov")), "mov"},
		{"mov free", enums.MediaClassVideo, padded([]byte("\x00\x00\x00\x08free")), "mov"},
		{"3gp", enums.MediaClassVideo, padded([]byte("\x00\x00\x00\x18ftyp3gp4")), "3gpp"},
		{"video fallback", enums.MediaClassVideo, padded([]byte{0x00, 0x01, 0x02}), "mp4"},

		{"pdf", enums.MediaClassDocument, padded([]byte("%PDF-1.7")), "application/pdf"},
		{"zip office", enums.MediaClassDocument, padded([]byte("PK\x03\x04")), "application/zip"},
		{"legacy office", enums.MediaClassDocument, padded([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}), "application/x-ole-storage"},
		{"plain text", enums.MediaClassDocument, []byte("hello world\nthis is a plain text file"), "text/plain"},
		{"document fallback", enums.MediaClassDocument, padded([]byte{0x00, 0x01, 0x02}), "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffFormat(tt.payload, tt.class))
		})
	}
}

func TestSniffFormatShortPayload(t *testing.T) {
	// shorter than any signature, must still classify via fallback
	assert.Equal(t, "jpeg", SniffFormat([]byte{0x01}, enums.MediaClassImage))
	assert.Equal(t, "mp4", SniffFormat(nil, enums.MediaClassVideo))
	assert.Equal(t, "application/octet-stream", SniffFormat(nil, enums.MediaClassDocument))
}
