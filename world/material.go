package world

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Material is a terrain kind stored in each grid cell
// Values are persisted as their numeric id, one unsigned byte per cell
type Material uint8

const (
	Grass     Material = 0
	Dirt      Material = 1
	Floor     Material = 2
	Wall      Material = 3
	Concrete  Material = 4
	Missing   Material = 5
	WoodFloor Material = 6
	Asphalt   Material = 7
	Sand      Material = 8
	Stairs    Material = 9
)

// Boundary is reported for every query outside the grid
const Boundary = Wall

// Fallback replaces unrecognised persisted ids
const Fallback = Missing

type materialInfo struct {
	name   string
	sprite string
	solid  bool
}

var materials = [...]materialInfo{
	Grass:     {"Grass", "materials/grass", false},
	Dirt:      {"Dirt", "materials/dirt", false},
	Floor:     {"Floor", "materials/floor", false},
	Wall:      {"Wall", "materials/wall", true},
	Concrete:  {"Concrete", "materials/concrete", true},
	Missing:   {"Missing", "materials/missing", true},
	WoodFloor: {"WoodFloor", "materials/wood_floor", false},
	Asphalt:   {"Asphalt", "materials/asphalt", false},
	Sand:      {"Sand", "materials/sand", false},
	Stairs:    {"Stairs", "materials/stairs", false},
}

// Palette lists the materials an editor can place, in toolbar order
var Palette = [...]Material{
	Grass,
	Dirt,
	Floor,
	Wall,
	Asphalt,
	Sand,
	Concrete,
	WoodFloor,
	Stairs,
}

// MaterialFromByte maps a persisted id to its Material, unknown ids become Fallback
func MaterialFromByte(b uint8) Material {
	if int(b) < len(materials) {
		return Material(b)
	}
	return Fallback
}

// Valid reports whether m is a declared material
func (m Material) Valid() bool {
	return int(m) < len(materials)
}

func (m Material) info() materialInfo {
	if !m.Valid() {
		return materials[Fallback]
	}
	return materials[m]
}

// Solid reports whether the material blocks movement and ray casts
func (m Material) Solid() bool {
	return m.info().solid
}

// Sprite returns the asset identifier used to draw the material
func (m Material) Sprite() string {
	return m.info().sprite
}

func (m Material) String() string {
	return m.info().name
}

var (
	_ msgpack.CustomEncoder = Material(0)
	_ msgpack.CustomDecoder = (*Material)(nil)
)

// EncodeMsgpack writes the material id as a single unsigned byte (positive fixint)
func (m Material) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint(uint64(m))
}

// DecodeMsgpack reads a material id, degrading unknown ids to Fallback
func (m *Material) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	if n > 0xFF {
		*m = Fallback
		return nil
	}
	*m = MaterialFromByte(uint8(n))
	return nil
}
