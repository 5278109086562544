package garment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlankName(t *testing.T) {
	assert.True(t, IsBlankName(""))
	assert.True(t, IsBlankName("   "))
	assert.True(t, IsBlankName("\t\n"))
	assert.False(t, IsBlankName("Hem pants"))
	assert.False(t, IsBlankName("  x  "))
}

func TestApplyDefaultNames(t *testing.T) {
	got := ApplyDefaultNames([]string{"", "  ", "Custom Jacket", ""})
	assert.Equal(t, []string{"Garment 1", "Garment 2", "Custom Jacket", "Garment 4"}, got)
}

func TestApplyDefaultNamesKeepsInternalWhitespace(t *testing.T) {
	got := ApplyDefaultNames([]string{"Wedding  dress"})
	assert.Equal(t, []string{"Wedding  dress"}, got)
}

func TestApplyDefaultNamesEmptyBatch(t *testing.T) {
	assert.Empty(t, ApplyDefaultNames(nil))
	assert.Empty(t, ApplyDefaultNames([]string{}))
}
