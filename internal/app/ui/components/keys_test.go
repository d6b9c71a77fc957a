package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.Copy.Keys())
	assert.NotEmpty(t, km.Submit.Keys())
	assert.NotEmpty(t, km.Quit.Keys())
	assert.NotEmpty(t, km.ForceQuit.Keys())

	assert.Contains(t, km.Copy.Keys(), "y")
	assert.Contains(t, km.Submit.Keys(), "ctrl+s")
	assert.Contains(t, km.Blur.Keys(), "esc")
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.ForceQuit.Keys(), "ctrl+c")
}

func Test_KeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.FullHelp(), 2)
}
