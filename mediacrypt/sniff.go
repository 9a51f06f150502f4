package mediacrypt

import (
	"bytes"

	"mediavault/enums"
)

const sniffPrefixSize = 32

var (
	jpegHeader = []byte{0xFF, 0xD8, 0xFF}
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gifHeader  = []byte{0x47, 0x49, 0x46}
	riffHeader = []byte{0x52, 0x49, 0x46, 0x46}
	webpMarker = []byte{0x57, 0x45, 0x42, 0x50}
	bmpHeader  = []byte{0x42, 0x4D}

	oggHeader  = []byte{0x4F, 0x67, 0x67, 0x53}
	waveMarker = []byte{0x57, 0x41, 0x56, 0x45}

	ebmlHeader = []byte{0x1A, 0x45, 0xDF, 0xA3}
	aviMarker  = []byte{0x41, 0x56, 0x49, 0x20}
	ftypMarker = []byte{0x66, 0x74, 0x79, 0x70}
	mdatMarker = []byte{0x6D, 0x64, 0x61, 0x74}
	moovMarker = []byte{0x6D, 0x6F, 0x6F, 0x76}
	freeMarker = []byte{0x66, 0x72, 0x65, 0x65}
	threeGPTag = []byte{0x33, 0x67, 0x70}

	pdfHeader = []byte{0x25, 0x50, 0x44, 0x46, 0x2D}
	zipHeader = []byte{0x50, 0x4B, 0x03, 0x04}
	oleHeader = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// SniffFormat classifies a decrypted payload by magic number. it is
// best effort and never fails: unrecognized payloads get the class
// fallback format.
func SniffFormat(plaintext []byte, class enums.MediaClass) string {
	prefix := plaintext
	if len(prefix) > sniffPrefixSize {
		prefix = prefix[:sniffPrefixSize]
	}

	switch class {
	case enums.MediaClassImage:
		return sniffImage(prefix)
	case enums.MediaClassAudio:
		return sniffAudio(prefix)
	case enums.MediaClassVideo:
		return sniffVideo(prefix)
	case enums.MediaClassDocument:
		return sniffDocument(prefix)
	}
	return "application/octet-stream"
}

func sniffImage(prefix []byte) string {
	switch {
	case bytes.HasPrefix(prefix, jpegHeader):
		return "jpeg"
	case bytes.HasPrefix(prefix, pngHeader):
		return "png"
	case bytes.HasPrefix(prefix, gifHeader):
		return "gif"
	case isRIFF(prefix, webpMarker):
		return "webp"
	case bytes.HasPrefix(prefix, bmpHeader):
		return "bmp"
	}
	return classProfiles[enums.MediaClassImage].fallbackFormat
}

func sniffAudio(prefix []byte) string {
	switch {
	case bytes.HasPrefix(prefix, oggHeader):
		return "ogg"
	case isRIFF(prefix, waveMarker):
		return "wav"
	case isMP3FrameSync(prefix):
		return "mp3"
	}
	return classProfiles[enums.MediaClassAudio].fallbackFormat
}

func sniffVideo(prefix []byte) string {
	switch {
	case bytes.HasPrefix(prefix, ebmlHeader):
		return "webm"
	case isRIFF(prefix, aviMarker):
		return "avi"
	case is3GP(prefix):
		return "3gpp"
	case hasBoxType(prefix, ftypMarker), hasBoxType(prefix, mdatMarker):
		return "mp4"
	case hasBoxType(prefix, moovMarker), hasBoxType(prefix, freeMarker):
		return "mov"
	}
	return classProfiles[enums.MediaClassVideo].fallbackFormat
}

func sniffDocument(prefix []byte) string {
	switch {
	case bytes.HasPrefix(prefix, pdfHeader):
		return "application/pdf"
	case bytes.HasPrefix(prefix, zipHeader):
		return "application/zip"
	case bytes.HasPrefix(prefix, oleHeader):
		return "application/x-ole-storage"
	case isPrintableASCII(prefix):
		return "text/plain"
	}
	return classProfiles[enums.MediaClassDocument].fallbackFormat
}

// RIFF containers repeat the subformat tag at offset 8
func isRIFF(prefix []byte, marker []byte) bool {
	return bytes.HasPrefix(prefix, riffHeader) &&
		len(prefix) >= 12 &&
		bytes.Equal(prefix[8:12], marker[:4])
}

// MPEG audio frame sync: 11 set bits across the first two bytes
func isMP3FrameSync(prefix []byte) bool {
	return len(prefix) >= 2 && prefix[0] == 0xFF && prefix[1]&0xE0 == 0xE0
}

// ISO base media files carry the box type at offset 4
func hasBoxType(prefix []byte, marker []byte) bool {
	return len(prefix) >= 8 && bytes.Equal(prefix[4:8], marker)
}

// 3GP is an ftyp box whose major brand starts with "3gp"
func is3GP(prefix []byte) bool {
	return hasBoxType(prefix, ftypMarker) &&
		len(prefix) >= 11 &&
		bytes.Equal(prefix[8:11], threeGPTag)
}

func isPrintableASCII(prefix []byte) bool {
	if len(prefix) == 0 {
		return false
	}
	for _, b := range prefix {
		if b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}
