package world

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/tds/vmath"
)

// ErrEmptyLevel is returned when a level file holds no grid
var ErrEmptyLevel = errors.New("level has no grid")

// Spawn is a persisted placement of an entity
type Spawn struct {
	Pos vmath.Vec2 `msgpack:"pos"`
	Rot float64    `msgpack:"rot"`
}

// Level is the persisted form of a playable map
type Level struct {
	Grid        *Grid   `msgpack:"grid"`
	PlayerStart Spawn   `msgpack:"start"`
	Enemies     []Spawn `msgpack:"enemies"`
	Exit        *Spawn  `msgpack:"exit,omitempty"`
}

// NewLevel creates an empty level with a Grass grid and the player in the middle
func NewLevel(width, height int) *Level {
	g := NewGrid(width, height)
	return &Level{
		Grid:        g,
		PlayerStart: Spawn{Pos: g.Bounds().Mul(0.5)},
	}
}

var (
	_ msgpack.CustomEncoder = (*Grid)(nil)
	_ msgpack.CustomDecoder = (*Grid)(nil)
)

// EncodeMsgpack writes [width, height, cells...] with one byte per cell
func (g *Grid) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeUint(uint64(g.width)); err != nil {
		return err
	}
	if err := enc.EncodeUint(uint64(g.height)); err != nil {
		return err
	}
	if err := enc.EncodeArrayLen(len(g.cells)); err != nil {
		return err
	}
	for _, m := range g.cells {
		if err := m.EncodeMsgpack(enc); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads a grid; unknown material bytes degrade to Fallback
func (g *Grid) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 3 {
		return fmt.Errorf("grid: expected 3 fields, got %d", n)
	}
	w, err := dec.DecodeUint64()
	if err != nil {
		return fmt.Errorf("grid width: %w", err)
	}
	h, err := dec.DecodeUint64()
	if err != nil {
		return fmt.Errorf("grid height: %w", err)
	}
	if w == 0 || h == 0 || w > 1<<15 || h > 1<<15 {
		return fmt.Errorf("grid: invalid dimensions %dx%d", w, h)
	}
	count, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("grid cells: %w", err)
	}
	if count != int(w*h) {
		return fmt.Errorf("grid: %d cells for %dx%d", count, w, h)
	}

	cells := make([]Material, count)
	for i := range cells {
		if err := cells[i].DecodeMsgpack(dec); err != nil {
			return fmt.Errorf("grid cell %d: %w", i, err)
		}
	}
	g.width, g.height, g.cells = int(w), int(h), cells
	return nil
}

// MarshalLevel encodes a level with msgpack
func MarshalLevel(l *Level) ([]byte, error) {
	if l.Grid == nil {
		return nil, ErrEmptyLevel
	}
	return msgpack.Marshal(l)
}

// UnmarshalLevel decodes a level produced by MarshalLevel
func UnmarshalLevel(data []byte) (*Level, error) {
	var l Level
	if err := msgpack.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if l.Grid == nil {
		return nil, ErrEmptyLevel
	}
	return &l, nil
}

// SaveLevel writes a level file
func SaveLevel(path string, l *Level) error {
	data, err := MarshalLevel(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	return nil
}

// LoadLevel reads a level file
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return UnmarshalLevel(data)
}
