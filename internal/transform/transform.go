// Package transform parses and generates the CSS transform function list.
package transform

import (
	"bennypowers.dev/cssvalues/internal/collections"
	"bennypowers.dev/cssvalues/internal/units"
)

// Kind is the canonical function name of a transform function
type Kind string

const (
	KindTranslate   Kind = "translate"
	KindTranslateX  Kind = "translateX"
	KindTranslateY  Kind = "translateY"
	KindTranslateZ  Kind = "translateZ"
	KindTranslate3d Kind = "translate3d"
	KindRotate      Kind = "rotate"
	KindRotateX     Kind = "rotateX"
	KindRotateY     Kind = "rotateY"
	KindRotateZ     Kind = "rotateZ"
	KindRotate3d    Kind = "rotate3d"
	KindScale       Kind = "scale"
	KindScaleX      Kind = "scaleX"
	KindScaleY      Kind = "scaleY"
	KindScaleZ      Kind = "scaleZ"
	KindScale3d     Kind = "scale3d"
	KindSkew        Kind = "skew"
	KindSkewX       Kind = "skewX"
	KindSkewY       Kind = "skewY"
	KindMatrix      Kind = "matrix"
	KindMatrix3d    Kind = "matrix3d"
	KindPerspective Kind = "perspective"
)

// Kinds lists every transform function in declaration order
var Kinds = []Kind{
	KindTranslate, KindTranslateX, KindTranslateY, KindTranslateZ, KindTranslate3d,
	KindRotate, KindRotateX, KindRotateY, KindRotateZ, KindRotate3d,
	KindScale, KindScaleX, KindScaleY, KindScaleZ, KindScale3d,
	KindSkew, KindSkewX, KindSkewY,
	KindMatrix, KindMatrix3d, KindPerspective,
}

// Names maps any spelling of a function name to its canonical Kind
var Names = func() collections.Keywords {
	words := make([]string, len(Kinds))
	for i, k := range Kinds {
		words[i] = string(k)
	}
	return collections.NewKeywords(words...)
}()

// Function is one transform function in a chain
type Function interface {
	Kind() Kind
	transform()
}

// Transform is an ordered chain of functions; order is significant
type Transform []Function

// Translate omits Y when the source gave one argument
type Translate struct {
	X units.LengthPercentage
	Y units.LengthPercentage
}

type TranslateX struct{ X units.LengthPercentage }
type TranslateY struct{ Y units.LengthPercentage }
type TranslateZ struct{ Z units.Length }

type Translate3d struct {
	X, Y units.LengthPercentage
	Z    units.Length
}

type Rotate struct{ Angle units.Angle }
type RotateX struct{ Angle units.Angle }
type RotateY struct{ Angle units.Angle }
type RotateZ struct{ Angle units.Angle }

// Rotate3d rotates by Angle around the direction vector (X, Y, Z)
type Rotate3d struct {
	X, Y, Z float64
	Angle   units.Angle
}

// Scale omits Y when the source gave one argument. Percentages are stored as
// their number equivalent.
type Scale struct {
	X float64
	Y *float64
}

type ScaleX struct{ X float64 }
type ScaleY struct{ Y float64 }
type ScaleZ struct{ Z float64 }
type Scale3d struct{ X, Y, Z float64 }

// Skew omits Y when the source gave one argument
type Skew struct {
	X units.Angle
	Y *units.Angle
}

type SkewX struct{ Angle units.Angle }
type SkewY struct{ Angle units.Angle }

// Matrix is the 2D matrix(a, b, c, d, e, f). E and F are translations in px.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Matrix3d holds the 16 values in column-major order
type Matrix3d struct {
	Values [16]float64
}

// Perspective with a nil Distance is perspective(none)
type Perspective struct {
	Distance *units.Length
}

func (Translate) Kind() Kind   { return KindTranslate }
func (TranslateX) Kind() Kind  { return KindTranslateX }
func (TranslateY) Kind() Kind  { return KindTranslateY }
func (TranslateZ) Kind() Kind  { return KindTranslateZ }
func (Translate3d) Kind() Kind { return KindTranslate3d }
func (Rotate) Kind() Kind      { return KindRotate }
func (RotateX) Kind() Kind     { return KindRotateX }
func (RotateY) Kind() Kind     { return KindRotateY }
func (RotateZ) Kind() Kind     { return KindRotateZ }
func (Rotate3d) Kind() Kind    { return KindRotate3d }
func (Scale) Kind() Kind       { return KindScale }
func (ScaleX) Kind() Kind      { return KindScaleX }
func (ScaleY) Kind() Kind      { return KindScaleY }
func (ScaleZ) Kind() Kind      { return KindScaleZ }
func (Scale3d) Kind() Kind     { return KindScale3d }
func (Skew) Kind() Kind        { return KindSkew }
func (SkewX) Kind() Kind       { return KindSkewX }
func (SkewY) Kind() Kind       { return KindSkewY }
func (Matrix) Kind() Kind      { return KindMatrix }
func (Matrix3d) Kind() Kind    { return KindMatrix3d }
func (Perspective) Kind() Kind { return KindPerspective }

func (Translate) transform()   {}
func (TranslateX) transform()  {}
func (TranslateY) transform()  {}
func (TranslateZ) transform()  {}
func (Translate3d) transform() {}
func (Rotate) transform()      {}
func (RotateX) transform()     {}
func (RotateY) transform()     {}
func (RotateZ) transform()     {}
func (Rotate3d) transform()    {}
func (Scale) transform()       {}
func (ScaleX) transform()      {}
func (ScaleY) transform()      {}
func (ScaleZ) transform()      {}
func (Scale3d) transform()     {}
func (Skew) transform()        {}
func (SkewX) transform()       {}
func (SkewY) transform()       {}
func (Matrix) transform()      {}
func (Matrix3d) transform()    {}
func (Perspective) transform() {}

// Number returns a pointer to v, for optional fields
func Number(v float64) *float64 {
	return &v
}

// AnglePtr returns a pointer to a, for Skew.Y
func AnglePtr(a units.Angle) *units.Angle {
	return &a
}

// LengthPtr returns a pointer to l, for Perspective.Distance
func LengthPtr(l units.Length) *units.Length {
	return &l
}
