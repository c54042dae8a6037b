// Package easing parses and generates CSS easing functions: the keyword forms,
// cubic-bezier(), steps() and the piecewise-linear linear() function.
package easing

import "bennypowers.dev/cssvalues/internal/collections"

// Kind discriminates the Function variants
type Kind string

const (
	KindKeyword     Kind = "keyword"
	KindCubicBezier Kind = "cubic-bezier"
	KindSteps       Kind = "steps"
	KindLinear      Kind = "linear"
)

// Function is one of Keyword, CubicBezier, Steps or Linear
type Function interface {
	Kind() Kind
	easing()
}

// Keyword is one of the predefined easing keywords
type Keyword struct {
	Name string
}

// CubicBezier x coordinates are in [0,1]; y coordinates are unconstrained
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// StepPosition is where the jumps of a steps() function happen
type StepPosition string

const (
	JumpStart StepPosition = "jump-start"
	JumpEnd   StepPosition = "jump-end"
	JumpNone  StepPosition = "jump-none"
	JumpBoth  StepPosition = "jump-both"
	Start     StepPosition = "start"
	End       StepPosition = "end"
)

// Steps has a positive step count and an optional position
type Steps struct {
	Count    int
	Position StepPosition
}

// LinearStop is one control point of linear(). Input, when set, is the
// stop's position in [0,1]; unset inputs are spaced evenly by consumers.
type LinearStop struct {
	Output float64
	Input  *float64
}

// Linear is a piecewise-linear easing with at least one stop
type Linear struct {
	Stops []LinearStop
}

func (Keyword) Kind() Kind     { return KindKeyword }
func (CubicBezier) Kind() Kind { return KindCubicBezier }
func (Steps) Kind() Kind       { return KindSteps }
func (Linear) Kind() Kind      { return KindLinear }

func (Keyword) easing()     {}
func (CubicBezier) easing() {}
func (Steps) easing()       {}
func (Linear) easing()      {}

// Input returns a pointer to v, for building LinearStop literals
func Input(v float64) *float64 {
	return &v
}

var (
	// Keywords are the predefined easing keywords
	Keywords = collections.NewKeywords("linear", "ease", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end")

	// StepPositions are the accepted steps() positions, modern then legacy
	StepPositions = collections.NewKeywords(
		string(JumpStart), string(JumpEnd), string(JumpNone), string(JumpBoth),
		string(Start), string(End),
	)
)
