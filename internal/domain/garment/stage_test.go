package garment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStage(t *testing.T) {
	for _, s := range Stages() {
		assert.True(t, ValidStage(string(s)), string(s))
	}
	assert.False(t, ValidStage("ready for pickup"))
	assert.False(t, ValidStage("Shipped"))
	assert.False(t, ValidStage(""))
}

func TestStageChangeDescription(t *testing.T) {
	got := StageChangeDescription("New", "In Progress")
	assert.Equal(t, "Stage changed from New to In Progress", got)
}
