package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tds/core"
	"github.com/lixenwraith/tds/parameter"
	"github.com/lixenwraith/tds/vmath"
	"github.com/lixenwraith/tds/world"
)

// Frame is everything drawn in one pass
type Frame struct {
	Grid      *world.Grid
	Drawables []core.Drawable
	Camera    vmath.Vec2
	Status    string
}

var (
	statusFg = core.RGB{R: 220, G: 220, B: 220}
	statusBg = core.RGB{R: 25, G: 25, B: 45}
)

// headingArrows indexed by octant, clockwise from east (y grows downward)
var headingArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// TerminalRenderer composites frames into a RenderBuffer and flushes them to tcell
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
	}
}

// Buffer exposes the last composited frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// Render draws a frame and shows it
func (r *TerminalRenderer) Render(f Frame) {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}
	Compose(r.buf, f)
	r.buf.Flush(r.screen)
	r.screen.Show()
}

// Compose draws the grid, then drawables in order, then the status line on
// the last row
func Compose(buf *RenderBuffer, f Frame) {
	w, h := buf.Size()
	if w == 0 || h == 0 {
		return
	}
	vp := Viewport{Cols: w, Rows: h - 1, Center: f.Camera}

	if f.Grid != nil {
		drawGrid(buf, vp, f.Grid)
	}
	for _, d := range f.Drawables {
		if d.Mesh != nil {
			drawMesh(buf, vp, d)
		} else {
			drawSprite(buf, vp, d)
		}
	}
	drawStatus(buf, h-1, w, f.Status)
}

func drawGrid(buf *RenderBuffer, vp Viewport, g *world.Grid) {
	for y := 0; y < vp.Rows; y++ {
		for x := 0; x < vp.Cols; x++ {
			cx, cy := world.Snap(vp.ToWorld(x, y))
			if !g.InBounds(cx, cy) {
				continue
			}
			gl := MaterialGlyph(g.Get(cx, cy))
			buf.Set(x, y, Cell{Rune: gl.Rune, Fg: gl.Fg, Bg: gl.Bg})
		}
	}
}

func drawSprite(buf *RenderBuffer, vp Viewport, d core.Drawable) {
	if d.Scale <= 0 || d.Tint.A <= 0 {
		return
	}
	x, y := vp.ToScreen(d.Pos)
	if !vp.Contains(x, y) {
		return
	}
	gl := SpriteGlyph(d.Sprite)
	r := gl.Rune
	if d.Scale < 0.5 {
		r = '·'
	}
	buf.SetRune(x, y, r, d.Tint.Apply(gl.Fg, buf.Get(x, y).Bg))

	if d.Sprite != core.SpritePlayer {
		return
	}
	ax, ay := vp.ToScreen(d.Pos.Add(vmath.AngleToVec(d.Rot).Mul(RowHeight)))
	if (ax != x || ay != y) && vp.Contains(ax, ay) {
		buf.SetRune(ax, ay, headingArrow(d.Rot), gl.Fg)
	}
}

func headingArrow(rot float64) rune {
	octant := int(math.Round(rot/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingArrows[octant]
}

// drawMesh rasterizes each triangle at terminal cell centres
// Every cell is shaded at most once per mesh so shared fan edges do not double blend
func drawMesh(buf *RenderBuffer, vp Viewport, d core.Drawable) {
	if d.Scale <= 0 || d.Tint.A <= 0 {
		return
	}
	m := d.Mesh
	rot := mgl64.Rotate2D(d.Rot)
	place := func(v core.Vertex) vmath.Vec2 {
		return d.Pos.Add(rot.Mul2x1(v.Pos).Mul(d.Scale))
	}

	shaded := make(map[[2]int]struct{})
	for i := 0; i < m.Triangles(); i++ {
		a, b, c := m.Triangle(i)
		pa, pb, pc := place(a), place(b), place(c)
		area := edge(pa, pb, pc)
		if math.Abs(area) < vmath.Epsilon {
			continue
		}

		x0, y0 := vp.ToScreen(vmath.Vec(min(pa[0], pb[0], pc[0]), min(pa[1], pb[1], pc[1])))
		x1, y1 := vp.ToScreen(vmath.Vec(max(pa[0], pb[0], pc[0]), max(pa[1], pb[1], pc[1])))
		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, vp.Cols-1), min(y1, vp.Rows-1)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				key := [2]int{x, y}
				if _, done := shaded[key]; done {
					continue
				}
				p := vp.ToWorld(x, y)
				w0 := edge(pb, pc, p) / area
				w1 := edge(pc, pa, p) / area
				w2 := 1 - w0 - w1
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				shaded[key] = struct{}{}

				uv := a.UV.Mul(w0).Add(b.UV.Mul(w1)).Add(c.UV.Mul(w2))
				col, alpha := texel(m.Texture, uv)
				tint := d.Tint
				tint.A *= alpha
				cell := buf.Get(x, y)
				cell.Bg = tint.Apply(col, cell.Bg)
				buf.Set(x, y, cell)
			}
		}
	}
}

// edge is twice the signed area of (a, b, p)
func edge(a, b, p vmath.Vec2) float64 {
	ab, ap := b.Sub(a), p.Sub(a)
	return ab[0]*ap[1] - ab[1]*ap[0]
}

// texel samples a procedural texture; unknown textures are opaque magenta
func texel(texture string, uv vmath.Vec2) (core.RGB, float64) {
	if texture == parameter.ExplosionTexture {
		return explosionTexel(uv)
	}
	return core.RGB{R: 255, B: 255}, 1
}

var (
	explosionHot  = core.RGB{R: 255, G: 236, B: 170}
	explosionCool = core.RGB{R: 210, G: 70, B: 20}
)

// explosionTexel is a radial gradient from a hot core to a cool rim with
// angular banding, fading out toward the rim
func explosionTexel(uv vmath.Vec2) (core.RGB, float64) {
	d := uv.Sub(vmath.Vec(0.5, 0.5))
	r := min(d.Len()*2, 1)
	band := 0.8 + 0.2*math.Cos(9*math.Atan2(d[1], d[0]))
	return explosionHot.Blend(explosionCool, r).Scale(band), 1 - 0.6*r*r
}

func drawStatus(buf *RenderBuffer, y, width int, status string) {
	for x := 0; x < width; x++ {
		buf.Set(x, y, Cell{Rune: ' ', Fg: statusFg, Bg: statusBg})
	}
	buf.Text(0, y, status, statusFg, statusBg)
}
