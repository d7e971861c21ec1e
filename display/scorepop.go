package display

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	scorePopScale    = 1.6
	scorePopDuration = 0.35 // seconds
)

// ScorePop briefly enlarges the score text after a point and eases it back.
type ScorePop struct {
	tween *gween.Tween
	scale float64
}

// NewScorePop creates an idle pop at scale 1
func NewScorePop() *ScorePop {
	return &ScorePop{scale: 1}
}

// Trigger restarts the animation from full size
func (p *ScorePop) Trigger() {
	p.tween = gween.New(scorePopScale, 1, scorePopDuration, ease.OutQuad)
	p.scale = scorePopScale
}

// Update advances the animation by dt seconds
func (p *ScorePop) Update(dt float32) {
	if p.tween == nil {
		return
	}
	val, finished := p.tween.Update(dt)
	p.scale = float64(val)
	if finished {
		p.tween = nil
		p.scale = 1
	}
}

// Scale is the current text scale factor
func (p *ScorePop) Scale() float64 {
	return p.scale
}

// Active reports whether the animation is still running
func (p *ScorePop) Active() bool {
	return p.tween != nil
}
