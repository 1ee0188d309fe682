package chart

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FallbackColor is used for languages missing from the palette, including Others
const FallbackColor = "#cccccc"

//go:embed palette.yaml
var paletteFile []byte

// languagesPalette is loaded once at init and only read afterwards
var languagesPalette = mustLoadPalette(paletteFile)

func loadPalette(content []byte) (map[string]string, error) {
	palette := make(map[string]string)

	if err := yaml.Unmarshal(content, &palette); err != nil {
		return nil, fmt.Errorf("unable to parse languages palette: %w", err)
	}

	return palette, nil
}

func mustLoadPalette(content []byte) map[string]string {
	palette, err := loadPalette(content)
	if err != nil {
		panic(err)
	}

	return palette
}

// ColorFor returns the color of a language
func ColorFor(language string) string {
	if color, found := languagesPalette[language]; found {
		return color
	}

	return FallbackColor
}
