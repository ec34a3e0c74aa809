package core

import "github.com/lixenwraith/tds/vmath"

// Vertex is a mesh vertex; Pos is relative to the drawable's position, UV in [0, 1]
type Vertex struct {
	Pos vmath.Vec2
	UV  vmath.Vec2
}

// Mesh is an indexed triangle list with a texture sprite
// Immutable once built
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
	Texture  string
}

// Triangles returns the number of indexed triangles
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertices of triangle i
func (m *Mesh) Triangle(i int) (a, b, c Vertex) {
	return m.Vertices[m.Indices[3*i]], m.Vertices[m.Indices[3*i+1]], m.Vertices[m.Indices[3*i+2]]
}

// Drawable is a render descriptor: either a sprite or a mesh at a pose
// The core never draws; renderers consume these
type Drawable struct {
	Sprite string
	Mesh   *Mesh
	Pos    vmath.Vec2
	Rot    float64
	Scale  float64
	Tint   Tint
}
