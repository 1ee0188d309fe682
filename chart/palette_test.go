package chart

import (
	"testing"

	"github.com/FlorianRuen/langs-usage-chart/model"
	"github.com/stretchr/testify/assert"
)

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#3572A5", ColorFor("Python"))
	assert.Equal(t, "#f34b7d", ColorFor("C++"))
	assert.Equal(t, "#DA5B0B", ColorFor("Jupyter Notebook"))
	assert.Equal(t, FallbackColor, ColorFor("Brainfuck"))
	assert.Equal(t, FallbackColor, ColorFor(model.OthersLanguage))
	assert.Equal(t, FallbackColor, ColorFor(""))
}

func TestLoadPalette(t *testing.T) {
	palette, err := loadPalette([]byte("Go: \"#00ADD8\"\n"))
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"Go": "#00ADD8"}, palette)

	_, err = loadPalette([]byte("- not\n- a map\n"))
	assert.Error(t, err)

	assert.Panics(t, func() { mustLoadPalette([]byte("{{")) })
}
