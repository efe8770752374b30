package playfield

import (
	"fmt"
	"image/color"
	"strings"
)

// ShapeKind identifies one of the seven tetrominoes.
type ShapeKind uint8

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// Shapes lists every kind in table order.
var Shapes = []ShapeKind{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// ShapeDef is the spawn layout of a shape. Offsets[0] is the rotation pivot.
type ShapeDef struct {
	Offsets [4]Vec2
	Color   color.RGBA
}

var shapeTable = [...]ShapeDef{
	ShapeI: {
		Offsets: [4]Vec2{{0, 0}, {0, -1}, {0, -2}, {0, 1}},
		Color:   color.RGBA{0x6c, 0xc6, 0xd9, 0xff},
	},
	ShapeO: {
		Offsets: [4]Vec2{{0, 0}, {0, -1}, {1, 0}, {1, -1}},
		Color:   color.RGBA{0xf1, 0xe6, 0x0d, 0xff},
	},
	ShapeT: {
		Offsets: [4]Vec2{{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
		Color:   color.RGBA{0x7b, 0x21, 0x7f, 0xff},
	},
	ShapeS: {
		Offsets: [4]Vec2{{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
		Color:   color.RGBA{0x65, 0xb3, 0x2e, 0xff},
	},
	ShapeZ: {
		Offsets: [4]Vec2{{0, 0}, {1, 0}, {0, -1}, {-1, -1}},
		Color:   color.RGBA{0xe5, 0x1b, 0x20, 0xff},
	},
	ShapeJ: {
		Offsets: [4]Vec2{{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
		Color:   color.RGBA{0x20, 0x4b, 0x9b, 0xff},
	},
	ShapeL: {
		Offsets: [4]Vec2{{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		Color:   color.RGBA{0xf0, 0x7e, 0x13, 0xff},
	},
}

var shapeNames = [...]string{
	ShapeI: "I",
	ShapeO: "O",
	ShapeT: "T",
	ShapeS: "S",
	ShapeZ: "Z",
	ShapeJ: "J",
	ShapeL: "L",
}

// Def returns the shape's layout. Panics on an unknown kind.
func (k ShapeKind) Def() ShapeDef {
	return shapeTable[k]
}

// Rotates reports whether the shape ever rotates. O is rotationally symmetric.
func (k ShapeKind) Rotates() bool {
	return k != ShapeO
}

func (k ShapeKind) Valid() bool {
	return int(k) < len(shapeTable)
}

func (k ShapeKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ShapeKind(%d)", k)
	}
	return shapeNames[k]
}

// ParseShape accepts a single letter name, case-insensitive.
func ParseShape(s string) (ShapeKind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for kind, n := range shapeNames {
		if n == name {
			return ShapeKind(kind), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}
