// Package radius handles the border-radius shorthand and the four-corner
// shortest-form compression shared by every corner-shaped value.
package radius

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/stream"
	"bennypowers.dev/cssvalues/internal/token"
	"bennypowers.dev/cssvalues/internal/units"
)

// Corners holds one radius per corner, clockwise from the top left
type Corners struct {
	TopLeft     units.LengthPercentage
	TopRight    units.LengthPercentage
	BottomRight units.LengthPercentage
	BottomLeft  units.LengthPercentage
}

// Uniform returns Corners with the same radius everywhere
func Uniform(r units.LengthPercentage) Corners {
	return Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

func (c Corners) list() [4]units.LengthPercentage {
	return [4]units.LengthPercentage{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// BorderRadius is the expanded border-radius shorthand. Vertical is nil when
// the vertical radii equal the horizontal ones.
type BorderRadius struct {
	Horizontal Corners
	Vertical   *Corners
}

// Compress returns the shortest list of values that expands back to the four
// corners: one value when all match, two when the diagonals match, three when
// only top-right and bottom-left match, else all four.
func Compress[T comparable](topLeft, topRight, bottomRight, bottomLeft T) []T {
	switch {
	case topLeft == topRight && topLeft == bottomRight && topLeft == bottomLeft:
		return []T{topLeft}
	case topLeft == bottomRight && topRight == bottomLeft:
		return []T{topLeft, topRight}
	case topRight == bottomLeft:
		return []T{topLeft, topRight, bottomRight}
	}
	return []T{topLeft, topRight, bottomRight, bottomLeft}
}

// Expand is the inverse of Compress, following the margin-style rules
func Expand[T any](values []T) ([4]T, error) {
	var out [4]T
	switch len(values) {
	case 1:
		out = [4]T{values[0], values[0], values[0], values[0]}
	case 2:
		out = [4]T{values[0], values[1], values[0], values[1]}
	case 3:
		out = [4]T{values[0], values[1], values[2], values[1]}
	case 4:
		copy(out[:], values)
	default:
		return out, fmt.Errorf("Expected 1 to 4 values, got %d", len(values))
	}
	return out, nil
}

// ParseString tokenizes css and parses a border-radius value
func ParseString(tz token.Tokenizer, css string) (BorderRadius, error) {
	nodes, err := token.TokenizeValue(tz, strings.TrimSpace(css))
	if err != nil {
		return BorderRadius{}, err
	}
	return Parse(nodes)
}

// Parse reads `<radius>{1,4} [ / <radius>{1,4} ]?`
func Parse(nodes []token.Node) (BorderRadius, error) {
	var horizontal, vertical []token.Node
	current := &horizontal
	slashes := 0

	significant := stream.Significant(nodes)
	for i, n := range significant {
		switch {
		case token.IsOperator(n, "/"):
			slashes++
			if slashes > 1 {
				return BorderRadius{}, errors.New("Expected only one '/' separator")
			}
			if i == len(significant)-1 {
				return BorderRadius{}, errors.New("Expected value after '/' separator")
			}
			current = &vertical
		case token.IsOperator(n, ","):
			return BorderRadius{}, errors.New("border-radius does not accept comma-separated values")
		default:
			*current = append(*current, n)
		}
	}
	if len(horizontal) == 0 {
		return BorderRadius{}, errors.New("Expected at least one value")
	}

	h, err := parseCorners(horizontal)
	if err != nil {
		return BorderRadius{}, err
	}
	br := BorderRadius{Horizontal: h}
	if slashes == 1 {
		v, err := parseCorners(vertical)
		if err != nil {
			return BorderRadius{}, err
		}
		if v != h {
			br.Vertical = &v
		}
	}
	return br, nil
}

func parseCorners(nodes []token.Node) (Corners, error) {
	values := make([]units.LengthPercentage, len(nodes))
	for i, n := range nodes {
		lp, err := units.ParseLengthPercentage(n)
		if err != nil {
			return Corners{}, err
		}
		if err := units.RequireNonNegative("radius", lp.Number()); err != nil {
			return Corners{}, err
		}
		values[i] = lp
	}
	c, err := Expand(values)
	if err != nil {
		return Corners{}, err
	}
	return Corners{TopLeft: c[0], TopRight: c[1], BottomRight: c[2], BottomLeft: c[3]}, nil
}

// Generate validates br and renders its shortest form
func Generate(br BorderRadius) result.GenerateResult {
	return result.FromIssues(Validate(br), func() string { return ToCSS(br) })
}

// ToCSS renders an already-valid BorderRadius
func ToCSS(br BorderRadius) string {
	out := CornersToCSS(br.Horizontal)
	if br.Vertical != nil && *br.Vertical != br.Horizontal {
		out += " / " + CornersToCSS(*br.Vertical)
	}
	return out
}

// CornersToCSS renders four corners in their compressed form
func CornersToCSS(c Corners) string {
	var parts [4]string
	for i, lp := range c.list() {
		parts[i] = lp.String()
	}
	return stream.JoinSpace(Compress(parts[0], parts[1], parts[2], parts[3]))
}

var cornerNames = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

// Validate reports missing, malformed or negative corner radii
func Validate(br BorderRadius) []result.Issue {
	issues := validateCorners("horizontal", br.Horizontal)
	if br.Vertical != nil {
		issues = append(issues, validateCorners("vertical", *br.Vertical)...)
	}
	return issues
}

func validateCorners(axis string, c Corners) []result.Issue {
	var issues []result.Issue
	for i, lp := range c.list() {
		path := axis + "." + cornerNames[i]
		if lp == nil {
			issues = append(issues, result.MissingField(path))
			continue
		}
		if err := units.ValidateLengthPercentage(lp); err != nil {
			issues = append(issues, result.InvalidIR("%s", err.Error()).WithPath(path))
			continue
		}
		if lp.Number() < 0 {
			issues = append(issues, result.Issue{
				Severity: result.SeverityError,
				Code:     result.CodeOutOfRange,
				Message:  fmt.Sprintf("%s: radius must not be negative, got %s", path, lp.String()),
			})
		}
	}
	return issues
}
