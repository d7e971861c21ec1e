package display

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"pongai/game"
)

var (
	colorBackground = color.Black
	colorForeground = color.White
	colorHelpText   = color.RGBA{200, 200, 200, 255}
)

const (
	scoreFontSize = 48
	helpFontSize  = 20
)

// Renderer draws a game.Snapshot
type Renderer struct {
	config    game.Config
	scoreFace *text.GoTextFace
	helpFace  *text.GoTextFace
	dashes    []game.Rect
}

// NewRenderer loads the fonts and lays out the static centre line
func NewRenderer(config game.Config) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{
		config:    config,
		scoreFace: &text.GoTextFace{Source: source, Size: scoreFontSize},
		helpFace:  &text.GoTextFace{Source: source, Size: helpFontSize},
		dashes:    game.CenterLine(config),
	}, nil
}

// Draw renders one frame. scoreScale enlarges the score text around its centre.
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot, scoreScale float64, debug bool) {
	screen.Fill(colorBackground)

	for _, d := range r.dashes {
		fillRect(screen, d, colorForeground)
	}
	fillRect(screen, s.Left, colorForeground)
	fillRect(screen, s.Right, colorForeground)

	// The ball is drawn as the ellipse inscribed in its square.
	cx := float32(s.Ball.X) + float32(s.Ball.W)/2
	cy := float32(s.Ball.Y) + float32(s.Ball.H)/2
	vector.DrawFilledCircle(screen, cx, cy, float32(s.Ball.W)/2, colorForeground, true)

	r.drawScore(screen, s.Score, scoreScale)
	r.drawHelp(screen)

	if debug {
		r.drawDebug(screen, s)
	}
}

func (r *Renderer) drawScore(screen *ebiten.Image, score game.Score, scale float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(r.config.Width)/2, float64(r.config.ScoreY))
	op.ColorScale.ScaleWithColor(colorForeground)
	text.Draw(screen, score.String(), r.scoreFace, op)
}

func (r *Renderer) drawHelp(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(r.config.Width)/2, float64(r.config.Height-r.config.HelpMargin))
	op.ColorScale.ScaleWithColor(colorHelpText)
	text.Draw(screen, r.config.HelpText, r.helpFace, op)
}

func (r *Renderer) drawDebug(screen *ebiten.Image, s game.Snapshot) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %0.2f\nframe: %d\nball v: (%.2f, %.2f)\nrally: %d",
		ebiten.ActualTPS(), s.Frame, s.BallVel.X, s.BallVel.Y, s.Rally,
	))
}

func fillRect(screen *ebiten.Image, rect game.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
}
