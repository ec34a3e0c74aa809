package render

import (
	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/parameter"
	"github.com/lixenwraith/tds/world"
)

// RgbBackground fills cells where nothing is drawn
var RgbBackground = core.RGB{R: 12, G: 12, B: 16}

// Glyph is the terminal appearance of a material or sprite
type Glyph struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

var materialGlyphs = map[world.Material]Glyph{
	world.Grass:     {'"', core.RGB{R: 90, G: 170, B: 70}, core.RGB{R: 34, G: 70, B: 30}},
	world.Dirt:      {'.', core.RGB{R: 150, G: 110, B: 70}, core.RGB{R: 70, G: 50, B: 32}},
	world.Floor:     {' ', core.RGB{R: 120, G: 120, B: 120}, core.RGB{R: 60, G: 60, B: 64}},
	world.Wall:      {'█', core.RGB{R: 170, G: 160, B: 150}, core.RGB{R: 110, G: 100, B: 95}},
	world.Concrete:  {'▓', core.RGB{R: 150, G: 150, B: 155}, core.RGB{R: 95, G: 95, B: 100}},
	world.Missing:   {'?', core.RGB{R: 255, G: 0, B: 255}, core.RGB{R: 40, G: 0, B: 40}},
	world.WoodFloor: {'=', core.RGB{R: 160, G: 110, B: 60}, core.RGB{R: 90, G: 60, B: 30}},
	world.Asphalt:   {' ', core.RGB{R: 70, G: 70, B: 75}, core.RGB{R: 38, G: 38, B: 42}},
	world.Sand:      {'·', core.RGB{R: 230, G: 210, B: 150}, core.RGB{R: 170, G: 150, B: 100}},
	world.Stairs:    {'≡', core.RGB{R: 200, G: 200, B: 190}, core.RGB{R: 80, G: 80, B: 76}},
}

var spriteGlyphs = map[string]Glyph{
	core.SpritePlayer:       {Rune: '@', Fg: core.RGB{R: 80, G: 200, B: 255}},
	core.SpriteEnemy:        {Rune: 'E', Fg: core.RGB{R: 255, G: 70, B: 60}},
	parameter.GrenadeSprite: {Rune: 'o', Fg: core.RGB{R: 120, G: 220, B: 90}},
}

var unknownGlyph = Glyph{'?', core.RGB{R: 255, G: 0, B: 255}, RgbBackground}

// MaterialGlyph returns the glyph for a material; unknown ids draw as Missing
func MaterialGlyph(m world.Material) Glyph {
	if g, ok := materialGlyphs[m]; ok {
		return g
	}
	return materialGlyphs[world.Fallback]
}

// SpriteGlyph returns the glyph for a sprite id
func SpriteGlyph(sprite string) Glyph {
	if g, ok := spriteGlyphs[sprite]; ok {
		return g
	}
	return unknownGlyph
}
