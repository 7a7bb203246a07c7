package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	for _, name := range []string{"Success", "Error", "Warning", "Muted", "Path", "Fatal"} {
		_, ok := config.Styles[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
	for name, def := range config.Styles {
		if def.Foreground != "" {
			_, ok := config.Colors[def.Foreground]
			assert.True(t, ok, "style %s references unknown color %s", name, def.Foreground)
		}
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("colors: [unterminated"))
	assert.Error(t, err)
}

func TestNewRegistry_Render(t *testing.T) {
	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)

	t.Run("ascii profile renders plain text", func(t *testing.T) {
		renderer.SetColorProfile(termenv.Ascii)
		registry := NewRegistry(renderer, DefaultConfig())
		assert.Equal(t, "Renamed", registry.Get("Success").Render("Renamed"))
	})

	t.Run("truecolor profile adds escape codes", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)
		registry := NewRegistry(renderer, DefaultConfig())
		rendered := registry.Get("Error").Render("Failed")
		assert.Contains(t, rendered, "Failed")
		assert.Contains(t, rendered, "\x1b[")
	})

	t.Run("unknown style falls back to plain", func(t *testing.T) {
		registry := NewRegistry(renderer, &Config{})
		require.Empty(t, registry)
		assert.Equal(t, "x", registry.Get("Nope").Render("x"))
	})
}
