package radius_test

import (
	"testing"

	"bennypowers.dev/cssvalues/internal/document"
	"bennypowers.dev/cssvalues/internal/lexer"
	"bennypowers.dev/cssvalues/internal/radius"
	"bennypowers.dev/cssvalues/internal/result"
	"bennypowers.dev/cssvalues/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func px(v float64) units.Length { return units.Length{Value: v, Unit: units.Px} }

func TestCompress(t *testing.T) {
	tests := []struct {
		name     string
		corners  [4]string
		expected []string
	}{
		{"all equal", [4]string{"a", "a", "a", "a"}, []string{"a"}},
		{"diagonals equal", [4]string{"a", "b", "a", "b"}, []string{"a", "b"}},
		{"top-right matches bottom-left", [4]string{"a", "b", "c", "b"}, []string{"a", "b", "c"}},
		{"all distinct", [4]string{"a", "b", "c", "d"}, []string{"a", "b", "c", "d"}},
		{"only bottom-left differs", [4]string{"a", "a", "a", "b"}, []string{"a", "a", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.corners
			got := radius.Compress(c[0], c[1], c[2], c[3])
			assert.Equal(t, tt.expected, got)

			back, err := radius.Expand(got)
			require.NoError(t, err)
			assert.Equal(t, tt.corners, back)
		})
	}

	_, err := radius.Expand([]int{1, 2, 3, 4, 5})
	assert.EqualError(t, err, "Expected 1 to 4 values, got 5")
}

func TestParseBorderRadius(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected radius.BorderRadius
	}{
		{"one value", "4px", radius.BorderRadius{Horizontal: radius.Uniform(px(4))}},
		{"two values", "4px 50%", radius.BorderRadius{Horizontal: radius.Corners{
			TopLeft: px(4), TopRight: units.Percentage{Value: 50}, BottomRight: px(4), BottomLeft: units.Percentage{Value: 50},
		}}},
		{"three values", "1px 2px 3px", radius.BorderRadius{Horizontal: radius.Corners{
			TopLeft: px(1), TopRight: px(2), BottomRight: px(3), BottomLeft: px(2),
		}}},
		{"vertical radii", "10px / 5px", radius.BorderRadius{
			Horizontal: radius.Uniform(px(10)),
			Vertical:   &radius.Corners{TopLeft: px(5), TopRight: px(5), BottomRight: px(5), BottomLeft: px(5)},
		}},
		{"equal vertical radii collapse", "10px/10px", radius.BorderRadius{Horizontal: radius.Uniform(px(10))}},
		{"unitless zero", "0", radius.BorderRadius{Horizontal: radius.Uniform(px(0))}},
	}

	tz := lexer.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := radius.ParseString(tz, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseBorderRadiusErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "Expected at least one value"},
		{"too many", "1px 2px 3px 4px 5px", "Expected 1 to 4 values, got 5"},
		{"negative", "-1px", "radius must not be negative, got -1"},
		{"trailing slash", "1px /", "Expected value after '/' separator"},
		{"two slashes", "1px / 2px / 3px", "Expected only one '/' separator"},
		{"commas", "1px, 2px", "border-radius does not accept comma-separated values"},
		{"angle", "1deg", "Invalid length unit: deg"},
	}

	tz := lexer.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := radius.ParseString(tz, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestGenerateBorderRadius(t *testing.T) {
	tests := []struct {
		name     string
		input    radius.BorderRadius
		expected string
	}{
		{"four equal corners", radius.BorderRadius{Horizontal: radius.Uniform(px(4))}, "4px"},
		{"diagonals", radius.BorderRadius{Horizontal: radius.Corners{
			TopLeft: px(1), TopRight: px(2), BottomRight: px(1), BottomLeft: px(2),
		}}, "1px 2px"},
		{"all distinct", radius.BorderRadius{Horizontal: radius.Corners{
			TopLeft: px(1), TopRight: px(2), BottomRight: px(3), BottomLeft: px(4),
		}}, "1px 2px 3px 4px"},
		{"vertical", radius.BorderRadius{
			Horizontal: radius.Uniform(px(4)),
			Vertical:   &radius.Corners{TopLeft: px(1), TopRight: px(2), BottomRight: px(3), BottomLeft: px(2)},
		}, "4px / 1px 2px 3px"},
		{"vertical equal to horizontal", radius.BorderRadius{
			Horizontal: radius.Uniform(px(4)),
			Vertical:   &radius.Corners{TopLeft: px(4), TopRight: px(4), BottomRight: px(4), BottomLeft: px(4)},
		}, "4px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := radius.Generate(tt.input)
			require.True(t, g.OK, "issues: %v", g.Issues)
			assert.Equal(t, tt.expected, g.Value)
		})
	}

	t.Run("issues", func(t *testing.T) {
		g := radius.Generate(radius.BorderRadius{Horizontal: radius.Corners{TopLeft: px(1)}})
		require.False(t, g.OK)
		assert.Equal(t, result.CodeMissingRequiredField, g.Errors()[0].Code)

		g = radius.Generate(radius.BorderRadius{Horizontal: radius.Uniform(px(-1))})
		require.False(t, g.OK)
		assert.Equal(t, result.CodeOutOfRange, g.Errors()[0].Code)
	})
}

func TestBorderRadiusRoundTrip(t *testing.T) {
	tz := lexer.New()
	for _, src := range []string{"4px", "1px 2px 3px", "1em 2% / 3px", "0 0 0 1px", "10px 10px 10px 10px / 5px 6px"} {
		t.Run(src, func(t *testing.T) {
			first, err := radius.ParseString(tz, src)
			require.NoError(t, err)
			g := radius.Generate(first)
			require.True(t, g.OK)
			second, err := radius.ParseString(tz, g.Value)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestBorderRadiusDecodeEncode(t *testing.T) {
	br := radius.BorderRadius{
		Horizontal: radius.Uniform(units.Percentage{Value: 50}),
		Vertical:   &radius.Corners{TopLeft: px(1), TopRight: px(2), BottomRight: px(3), BottomLeft: px(4)},
	}
	back, err := radius.Decode(radius.Encode(br))
	require.NoError(t, err)
	assert.Equal(t, br, back)

	_, err = radius.Decode(document.Fields{"horizontal": map[string]any{"top-left": map[string]any{"value": 1, "unit": "px"}}})
	assert.ErrorIs(t, err, document.ErrMissingField)
}
