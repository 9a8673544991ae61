package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expectedStyles := []string{
		"Header", "Success", "Error", "Warning", "Muted",
		"FilePath", "Removal", "DryRunBanner",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestGetStyleFallsBackToPlain(t *testing.T) {
	assert.Equal(t, "text", GetStyle("NonExistentStyle").Render("text"))
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStyles(defaultStyles)) })

	require.NoError(t, LoadStyles([]byte("styles:\n  Only:\n    bold: true\n")))
	assert.Len(t, StyleRegistry, 1)

	assert.Error(t, LoadStyles([]byte("styles: [not, a, map")))
}
