package engine

import (
	"github.com/vovakirdan/agent8/internal/core"
)

// Sprite is a named, possibly animated image. W and H are its size in world
// units and define its bounds for display-area tests. Frames holds the
// character art for each animation frame.
type Sprite struct {
	Name   string
	W, H   float64
	Color  core.Color
	Frames [][]string
}

// FrameCount returns the number of animation frames, at least one.
func (s *Sprite) FrameCount() int {
	return max(len(s.Frames), 1)
}

// Art returns the art for the given animation frame, wrapping around.
func (s *Sprite) Art(frame int) []string {
	if len(s.Frames) == 0 {
		return nil
	}
	frame %= len(s.Frames)
	if frame < 0 {
		frame += len(s.Frames)
	}
	return s.Frames[frame]
}

// SpriteSheet is a lookup table of sprites by name.
type SpriteSheet struct {
	sprites map[string]*Sprite
}

// NewSpriteSheet builds a sheet from the given sprites.
func NewSpriteSheet(sprites ...Sprite) *SpriteSheet {
	sh := &SpriteSheet{sprites: make(map[string]*Sprite, len(sprites))}
	for i := range sprites {
		s := sprites[i]
		sh.sprites[s.Name] = &s
	}
	return sh
}

// Lookup returns the sprite with the given name.
func (sh *SpriteSheet) Lookup(name string) (*Sprite, bool) {
	s, ok := sh.sprites[name]
	return s, ok
}
