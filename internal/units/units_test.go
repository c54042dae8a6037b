package units_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"bennypowers.dev/cssvalues/internal/lexer"
	"bennypowers.dev/cssvalues/internal/token"
	"bennypowers.dev/cssvalues/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func one(t *testing.T, text string) token.Node {
	t.Helper()
	nodes, err := token.TokenizeValue(lexer.New(), text)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input    string
		expected units.Length
	}{
		{"10px", units.Length{Value: 10, Unit: units.Px}},
		{"1.5EM", units.Length{Value: 1.5, Unit: units.Em}},
		{"2q", units.Length{Value: 2, Unit: "Q"}},
		{"-3vmin", units.Length{Value: -3, Unit: "vmin"}},
		{"0", units.Length{Value: 0, Unit: units.Px}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := units.ParseLength(one(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}

	t.Run("rejects unknown unit", func(t *testing.T) {
		_, err := units.ParseLength(one(t, "10deg"))
		assert.EqualError(t, err, "Invalid length unit: deg")
	})

	t.Run("rejects unitless non-zero", func(t *testing.T) {
		_, err := units.ParseLength(one(t, "10"))
		assert.Error(t, err)
	})

	t.Run("rejects percentage", func(t *testing.T) {
		_, err := units.ParseLength(one(t, "10%"))
		assert.EqualError(t, err, "Expected length, got percentage")
	})
}

func TestParseLengthPercentage(t *testing.T) {
	lp, err := units.ParseLengthPercentage(one(t, "50%"))
	require.NoError(t, err)
	assert.Equal(t, units.Percentage{Value: 50}, lp)
	assert.Equal(t, "50%", lp.String())

	lp, err = units.ParseLengthPercentage(one(t, "4rem"))
	require.NoError(t, err)
	assert.Equal(t, units.Length{Value: 4, Unit: "rem"}, lp)

	_, err = units.ParseLengthPercentage(one(t, "auto"))
	assert.EqualError(t, err, "Expected length or percentage, got identifier auto")
}

func TestParseAngle(t *testing.T) {
	a, err := units.ParseAngle(one(t, "0.25turn"))
	require.NoError(t, err)
	assert.Equal(t, units.Angle{Value: 0.25, Unit: units.Turn}, a)
	assert.InDelta(t, 90, a.Degrees(), 1e-9)

	a, err = units.ParseAngle(one(t, "0"))
	require.NoError(t, err)
	assert.Equal(t, units.Angle{Value: 0, Unit: units.Deg}, a)

	assert.InDelta(t, 180, units.Angle{Value: math.Pi, Unit: units.Rad}.Degrees(), 1e-9)
	assert.InDelta(t, 90, units.Angle{Value: 100, Unit: units.Grad}.Degrees(), 1e-9)

	_, err = units.ParseAngle(one(t, "45"))
	assert.Error(t, err)
	_, err = units.ParseAngle(one(t, "45px"))
	assert.EqualError(t, err, "Invalid angle unit: px")
}

func TestParseTime(t *testing.T) {
	tm, err := units.ParseTime(one(t, "250ms"))
	require.NoError(t, err)
	assert.Equal(t, units.Time{Value: 250, Unit: units.Milliseconds}, tm)
	assert.Equal(t, 1500.0, units.Time{Value: 1.5, Unit: units.Seconds}.Milliseconds())

	_, err = units.ParseTime(one(t, "0"))
	assert.Error(t, err, "time always needs a unit")
}

func TestParseTimeList(t *testing.T) {
	nodes, err := token.TokenizeValue(lexer.New(), "1s, 250ms,0.5s")
	require.NoError(t, err)
	times, err := units.ParseTimeList(nodes)
	require.NoError(t, err)
	assert.Equal(t, "1s, 250ms, 0.5s", units.FormatTimeList(times))

	nodes, err = token.TokenizeValue(lexer.New(), "1s 2s, 3s")
	require.NoError(t, err)
	_, err = units.ParseTimeList(nodes)
	assert.EqualError(t, err, "Expected single value, got 2 values")
}

func TestParseInteger(t *testing.T) {
	n, err := units.ParseInteger(one(t, "4"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = units.ParseInteger(one(t, "4.5"))
	assert.EqualError(t, err, "Expected integer, got 4.5")

	_, err = units.ParseInteger(one(t, "1e20"))
	assert.EqualError(t, err, "Integer out of range, got 100000000000000000000")

	n, err = units.ParseInteger(one(t, "-2147483647"))
	require.NoError(t, err)
	assert.Equal(t, -2147483647, n)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", units.FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "0.1", units.FormatNumber(0.1))
	assert.Equal(t, "-12.5", units.FormatNumber(-12.5))
	assert.Equal(t, "1000000", units.FormatNumber(1e6))
	assert.Equal(t, "0.0001", units.FormatNumber(1e-4))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, units.Length{Value: 1, Unit: "Q"}.Validate())
	assert.Error(t, units.Length{Value: 1, Unit: "PX"}.Validate(), "IR units must use canonical spelling")
	assert.Error(t, units.Angle{Value: 1, Unit: "degrees"}.Validate())
	assert.Error(t, units.Time{Value: math.NaN(), Unit: units.Seconds}.Validate())
	assert.Error(t, units.ValidateLengthPercentage(nil))
	assert.NoError(t, units.ValidateLengthPercentage(units.Percentage{Value: 5}))
	assert.NoError(t, units.RequireNonNegative("radius", 0))
	assert.EqualError(t, units.RequireNonNegative("radius", -1), "radius must not be negative, got -1")
}

func TestFormatFraction(t *testing.T) {
	assert.Equal(t, "50%", units.FormatFraction(0.5))
	assert.Equal(t, "7%", units.FormatFraction(0.07))
	assert.Equal(t, "0%", units.FormatFraction(0))
	assert.Equal(t, "100%", units.FormatFraction(1))

	for _, f := range []float64{0.07, 0.015, 0.125, 0.9} {
		s := units.FormatFraction(f)
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		require.NoError(t, err)
		assert.Equal(t, f, p/100, "round trip of %v via %s", f, s)
	}
}
