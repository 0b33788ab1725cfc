package audio

import (
	"path/filepath"
	"strings"
	"unicode"
)

// topicIcon pairs a filename keyword with a display icon.
// Evaluated in order, first match wins.
type topicIcon struct {
	keyword string
	icon    string
}

var topicIcons = []topicIcon{
	{"rain", "🌧️"},
	{"fire", "🔥"},
	{"cafe", "☕"},
	{"coffee", "☕"},
	{"brown", "🤎"},
	{"city", "🏙️"},
	{"water", "💧"},
	{"sea", "🌊"},
	{"lofi", "🎧"},
	{"omm", "🧘"},
}

const defaultIcon = "🎵"

// ResolveTopic normalizes a filename into a lowercase topic:
// extension stripped, separators replaced with spaces
func ResolveTopic(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.ToLower(base)
}

// Icon picks a display icon by keyword match against the topic
func Icon(filename string) string {
	topic := ResolveTopic(filename)
	for _, ti := range topicIcons {
		if strings.Contains(topic, ti.keyword) {
			return ti.icon
		}
	}
	return defaultIcon
}

// DisplayName renders a filename as a title-cased human label
func DisplayName(filename string) string {
	words := strings.Fields(ResolveTopic(filename))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
