package device

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fpsplayer/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesDefaultBindings(t *testing.T) {
	d, err := New(input.DefaultBindings())
	require.NoError(t, err)

	assert.Equal(t, []ebiten.MouseButton{ebiten.MouseButtonLeft}, d.bindings[input.ActionFire].buttons)
	assert.Empty(t, d.bindings[input.ActionFire].keys)
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, d.bindings[input.ActionExit].keys)
	assert.Len(t, d.bindings[input.ActionMoveForward].keys, 2)
}

func TestNewRejectsUnknownKey(t *testing.T) {
	_, err := New(input.Bindings{input.ActionJump: {"Hyperspace"}})
	assert.Error(t, err)
}
