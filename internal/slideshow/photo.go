package slideshow

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Photo is one slide. Name identifies it within a loaded set.
type Photo struct {
	Name    string
	Source  string
	Caption string
}

// DisplayCaption returns the custom caption, or one derived from the name.
func (p Photo) DisplayCaption() string {
	if p.Caption != "" {
		return p.Caption
	}
	return CaptionFromFilename(p.Name)
}

var wordSeparators = strings.NewReplacer("-", " ", "_", " ")

// CaptionFromFilename turns a file name into a caption: the extension is
// dropped, dashes and underscores become spaces and each word is
// capitalized.
//
//	"ocean-waves.jpg"      -> "Ocean Waves"
//	"city_skyline_01.png"  -> "City Skyline 01"
func CaptionFromFilename(name string) string {
	if ext := path.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	// Casers keep state between calls, so each call gets its own.
	return cases.Title(language.Und, cases.NoLower).String(wordSeparators.Replace(name))
}
