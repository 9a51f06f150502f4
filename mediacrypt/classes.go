package mediacrypt

import (
	"mediavault/enums"
)

// classProfile fixes the protocol constants for one media class.
// the derivation labels and IV sizes come from the external media
// protocol and must match it exactly; they are not tunable.
type classProfile struct {
	keyLabel       string
	ivLabel        string
	ivSize         int
	fallbackFormat string
}

var classProfiles = map[enums.MediaClass]classProfile{
	enums.MediaClassImage: {
		keyLabel:       "Image Keys",
		ivLabel:        "Image IV",
		ivSize:         16,
		fallbackFormat: "jpeg",
	},
	enums.MediaClassAudio: {
		keyLabel:       "Audio Keys",
		ivLabel:        "Audio IV",
		ivSize:         12,
		fallbackFormat: "ogg",
	},
	enums.MediaClassVideo: {
		keyLabel:       "Video Keys",
		ivLabel:        "Video IV",
		ivSize:         12,
		fallbackFormat: "mp4",
	},
	enums.MediaClassDocument: {
		keyLabel:       "Document Keys",
		ivLabel:        "Document IV",
		ivSize:         16,
		fallbackFormat: "application/octet-stream",
	},
}

func profileFor(class enums.MediaClass) (classProfile, bool) {
	profile, ok := classProfiles[class]
	return profile, ok
}
