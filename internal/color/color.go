// Package color parses and generates CSS color values: hex, named, special and
// system keywords, and the rgb, hsl, hwb, lab, lch, oklab and oklch functions.
// Parsed values are normalized: hues wrap into [0,360), percentage channels
// clamp, and an alpha of exactly 1 is represented by a nil Alpha.
package color

import "bennypowers.dev/cssvalues/internal/collections"

// Kind discriminates the Color variants
type Kind string

const (
	KindNamed   Kind = "named"
	KindHex     Kind = "hex"
	KindRGB     Kind = "rgb"
	KindHSL     Kind = "hsl"
	KindHWB     Kind = "hwb"
	KindLab     Kind = "lab"
	KindLCH     Kind = "lch"
	KindOKLab   Kind = "oklab"
	KindOKLCH   Kind = "oklch"
	KindSpecial Kind = "special"
	KindSystem  Kind = "system"
)

// Kinds lists every color kind
var Kinds = []Kind{
	KindNamed, KindHex, KindRGB, KindHSL, KindHWB, KindLab,
	KindLCH, KindOKLab, KindOKLCH, KindSpecial, KindSystem,
}

// Color is one of Named, Hex, RGB, HSL, HWB, Lab, LCH, OKLab, OKLCH, Special
// or System
type Color interface {
	Kind() Kind
	color()
}

// Named is a named color such as `rebeccapurple`, stored lowercase
type Named struct {
	Name string
}

// Hex is a hex color including the leading `#`, spelled as written
type Hex struct {
	Value string
}

// RGB channels are in [0,255]
type RGB struct {
	R, G, B float64
	Alpha   *float64
}

// HSL hue is in [0,360); saturation and lightness in [0,100]
type HSL struct {
	H, S, L float64
	Alpha   *float64
}

// HWB hue is in [0,360); whiteness and blackness in [0,100]
type HWB struct {
	H, W, B float64
	Alpha   *float64
}

// Lab lightness is in [0,100]; a and b are unbounded
type Lab struct {
	L, A, B float64
	Alpha   *float64
}

// LCH lightness is in [0,100], chroma is non-negative, hue in [0,360)
type LCH struct {
	L, C, H float64
	Alpha   *float64
}

// OKLab lightness is in [0,1]; a and b are unbounded
type OKLab struct {
	L, A, B float64
	Alpha   *float64
}

// OKLCH lightness is in [0,1], chroma is non-negative, hue in [0,360)
type OKLCH struct {
	L, C, H float64
	Alpha   *float64
}

// Special is `transparent` or `currentcolor`
type Special struct {
	Keyword string
}

// System is a CSS system color such as `CanvasText`
type System struct {
	Keyword string
}

func (Named) Kind() Kind   { return KindNamed }
func (Hex) Kind() Kind     { return KindHex }
func (RGB) Kind() Kind     { return KindRGB }
func (HSL) Kind() Kind     { return KindHSL }
func (HWB) Kind() Kind     { return KindHWB }
func (Lab) Kind() Kind     { return KindLab }
func (LCH) Kind() Kind     { return KindLCH }
func (OKLab) Kind() Kind   { return KindOKLab }
func (OKLCH) Kind() Kind   { return KindOKLCH }
func (Special) Kind() Kind { return KindSpecial }
func (System) Kind() Kind  { return KindSystem }

func (Named) color()   {}
func (Hex) color()     {}
func (RGB) color()     {}
func (HSL) color()     {}
func (HWB) color()     {}
func (Lab) color()     {}
func (LCH) color()     {}
func (OKLab) color()   {}
func (OKLCH) color()   {}
func (Special) color() {}
func (System) color()  {}

// Alpha returns a pointer to a, for building IR literals
func Alpha(a float64) *float64 {
	return &a
}

// SpecialKeywords are the non-color color keywords
var SpecialKeywords = collections.NewKeywords("transparent", "currentcolor")

// SystemKeywords are the CSS Color 4 system colors, canonically spelled
var SystemKeywords = collections.NewKeywords(
	"AccentColor", "AccentColorText", "ActiveText", "ButtonBorder", "ButtonFace",
	"ButtonText", "Canvas", "CanvasText", "Field", "FieldText", "GrayText",
	"Highlight", "HighlightText", "LinkText", "Mark", "MarkText",
	"SelectedItem", "SelectedItemText", "VisitedText",
)

// Functions are the color function names this package parses
var Functions = collections.NewKeywords("rgb", "rgba", "hsl", "hsla", "hwb", "lab", "lch", "oklab", "oklch")
