package enums

type MediaClass string

const (
	MediaClassImage    MediaClass = "image"
	MediaClassAudio    MediaClass = "audio"
	MediaClassVideo    MediaClass = "video"
	MediaClassDocument MediaClass = "document"
)

var MediaClasses = []MediaClass{
	MediaClassImage,
	MediaClassAudio,
	MediaClassVideo,
	MediaClassDocument,
}

func (c MediaClass) IsValid() bool {
	switch c {
	case MediaClassImage, MediaClassAudio, MediaClassVideo, MediaClassDocument:
		return true
	}
	return false
}
