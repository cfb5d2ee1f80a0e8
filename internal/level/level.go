package level

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/BradleyBao/Neurotrace/internal/shared/geom"
)

//go:embed levels.yaml
var embeddedLevels []byte

// Spawn is one (enemy-type, x, y) tuple of a level.
type Spawn struct {
	Type int     `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Descriptor is the immutable description of one level. The core only reads it.
type Descriptor struct {
	Name   string      `yaml:"name"`
	Spawn  geom.Vec2   `yaml:"spawn"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Floors []geom.Rect `yaml:"floors"`
	// Walls holds the left and right boundary, in that order.
	Walls   []geom.Rect `yaml:"walls"`
	Portal  *geom.Rect  `yaml:"portal,omitempty"`
	Enemies []Spawn     `yaml:"enemies"`
}

// WallBounds returns the horizontal range an actor of width w may occupy.
// ok is false when the level does not define both walls.
func (d Descriptor) WallBounds(w float64) (minX, maxX float64, ok bool) {
	if len(d.Walls) < 2 {
		return 0, 0, false
	}
	left, right := d.Walls[0], d.Walls[1]
	return left.X + left.W, right.X - w, true
}

// MainFloor is the first floor rectangle, the one every level is built on.
func (d Descriptor) MainFloor() (geom.Rect, bool) {
	if len(d.Floors) == 0 {
		return geom.Rect{}, false
	}
	return d.Floors[0], true
}

// Table is the static, versionless level table keyed by index.
type Table []Descriptor

type file struct {
	Levels []Descriptor `yaml:"levels"`
}

var errEmptyTable = errors.New("level table is empty")

// Parse decodes and validates a YAML level table.
func Parse(data []byte) (Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode level table: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, errEmptyTable
	}
	for i, d := range f.Levels {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i, d.Name, err)
		}
	}
	return Table(f.Levels), nil
}

// Default returns the table compiled into the binary.
func Default() (Table, error) {
	return Parse(embeddedLevels)
}

// MustDefault panics if the embedded table is broken, which is a build defect.
func MustDefault() Table {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table) Count() int { return len(t) }

func (t Table) Level(index int) (Descriptor, bool) {
	if index < 0 || index >= len(t) {
		return Descriptor{}, false
	}
	return t[index], true
}

// Next returns the index after current, wrapping to 0 past the end.
func (t Table) Next(current int) int {
	next := current + 1
	if _, ok := t.Level(next); !ok {
		return 0
	}
	return next
}

func (d Descriptor) validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("invalid dimensions %.0fx%.0f", d.Width, d.Height)
	}
	if len(d.Walls) > 2 {
		return fmt.Errorf("expected at most 2 walls, got %d", len(d.Walls))
	}
	for i, r := range append(append([]geom.Rect{}, d.Floors...), d.Walls...) {
		if r.W < 0 || r.H < 0 {
			return fmt.Errorf("rect %d has negative size", i)
		}
	}
	return nil
}
