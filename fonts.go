package shapes

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName is the font used when Text is created without one.
const DefaultFontName = "Go"

var (
	fontSources  = map[string]*text.GoTextFaceSource{}
	builtinFonts = map[string][]byte{
		"go":        goregular.TTF,
		"go-bold":   gobold.TTF,
		"go-italic": goitalic.TTF,
		"go-mono":   gomono.TTF,
	}
)

// RegisterFont makes a TrueType or OpenType font available to Text under
// name. Names are case-insensitive. Registering an existing name replaces it.
func RegisterFont(name string, data []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("register font %q: %w", name, err)
	}
	fontSources[strings.ToLower(name)] = src
	return nil
}

// lookupFont returns the face source registered under name, parsing a
// built-in Go font on first use.
func lookupFont(name string) (*text.GoTextFaceSource, bool) {
	key := strings.ToLower(name)
	if src, ok := fontSources[key]; ok {
		return src, true
	}
	data, ok := builtinFonts[key]
	if !ok {
		return nil, false
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		Logger().Warn("built-in font failed to parse", "font", name, "err", err)
		return nil, false
	}
	fontSources[key] = src
	return src, true
}
