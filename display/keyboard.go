package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pongai/game"
)

// Keyboard reads the player's logical inputs from the keyboard
type Keyboard struct{}

// NewKeyboard creates a keyboard input source
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll samples the keyboard once for the current frame
func (k *Keyboard) Poll() game.InputState {
	return game.InputState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Quit:  ebiten.IsKeyPressed(ebiten.KeyEscape),
		Debug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}
}
