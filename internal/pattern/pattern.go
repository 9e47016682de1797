// Package pattern assigns every project card a decorative background.
//
// Visual variety comes from the card's ordinal position rather than stored
// metadata: the same index always produces the same variant, rotation and
// scale, so an unbounded list of cards never needs per-item configuration.
package pattern

import "fmt"

// Variant is one of the five tile layouts.
type Variant int

const (
	Dots Variant = iota
	Dashes
	Squares
	Diagonals
	Blocks

	variantCount = 5
)

// SourceOffset shifts the index of the second card list so it does not repeat
// the first list's patterns at the same visible position.
const SourceOffset = 5

var variantNames = [variantCount]string{"dots", "dashes", "squares", "diagonals", "blocks"}

var shapeCounts = [variantCount]int{40, 20, 10, 15, 12}

func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// ShapeCount is the fixed number of primitives drawn for the variant.
func (v Variant) ShapeCount() int {
	if v < 0 || v >= variantCount {
		return 0
	}
	return shapeCounts[v]
}

// Shape is one primitive inside a tile layout.
type Shape struct {
	Class  string
	Filled bool
}

// Pattern holds the visual parameters for one card.
type Pattern struct {
	Index    int
	Variant  Variant
	Rotation int
	Scale    float64
	Shapes   []Shape
}

// For returns the pattern for the card at index.
func For(index int) Pattern {
	v := Variant(mod(index, variantCount))
	return Pattern{
		Index:    index,
		Variant:  v,
		Rotation: mod(index*25, 360),
		Scale:    float64(10+2*mod(index, 3)) / 10,
		Shapes:   shapes(v),
	}
}

// Transform renders the rotation and scale as a CSS transform value.
func (p Pattern) Transform() string {
	return fmt.Sprintf("rotate(%ddeg) scale(%g)", p.Rotation, p.Scale)
}

func shapes(v Variant) []Shape {
	out := make([]Shape, v.ShapeCount())
	for i := range out {
		switch v {
		case Dots:
			out[i] = Shape{Class: "pt-dot", Filled: true}
		case Dashes:
			out[i] = Shape{Class: "pt-dash", Filled: true}
		case Squares:
			out[i] = Shape{Class: "pt-square"}
		case Diagonals:
			out[i] = Shape{Class: "pt-diagonal", Filled: true}
		case Blocks:
			if i%2 == 0 {
				out[i] = Shape{Class: "pt-block pt-block-filled", Filled: true}
			} else {
				out[i] = Shape{Class: "pt-block pt-block-hollow"}
			}
		}
	}
	return out
}

// mod is the Euclidean remainder, so negative indexes land in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
