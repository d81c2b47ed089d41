package gui

import "github.com/hubastard/sprig/engine/colors"

// Theme supplies the fallback values for every cascading property and the
// palette used by the built-in widgets and scrollbars.
type Theme struct {
	TextColor colors.Color `toml:"text_color"`
	TextSize  float32      `toml:"text_size"`
	Font      string       `toml:"font"`
	IconFont  string       `toml:"icon_font"`

	Background   colors.Color `toml:"background"`
	Panel        colors.Color `toml:"panel"`
	Border       colors.Color `toml:"border"`
	Accent       colors.Color `toml:"accent"`
	AccentText   colors.Color `toml:"accent_text"`
	Hover        colors.Color `toml:"hover"`
	Active       colors.Color `toml:"active"`
	Widget       colors.Color `toml:"widget"`
	BorderWidth  float32      `toml:"border_width"`
	CornerRadius float32      `toml:"corner_radius"`
	Padding      Insets       `toml:"padding"`
	Gap          float32      `toml:"gap"`

	ScrollbarThickness   float32      `toml:"scrollbar_thickness"`
	ScrollbarMinThumb    float32      `toml:"scrollbar_min_thumb"`
	ScrollbarTrack       colors.Color `toml:"scrollbar_track"`
	ScrollbarThumb       colors.Color `toml:"scrollbar_thumb"`
	ScrollbarThumbHover  colors.Color `toml:"scrollbar_thumb_hover"`
	ScrollbarThumbActive colors.Color `toml:"scrollbar_thumb_active"`
	ScrollSpeed          float32      `toml:"scroll_speed"`
}

const DefaultFont = "default"

func DefaultTheme() Theme {
	return Theme{
		TextColor: colors.Black,
		TextSize:  20,
		Font:      DefaultFont,
		IconFont:  DefaultFont,

		Background:   colors.MustHex("#f2f2f2"),
		Panel:        colors.MustHex("#ffffff"),
		Border:       colors.MustHex("#c8c8c8"),
		Accent:       colors.MustHex("#3d7eff"),
		AccentText:   colors.White,
		Hover:        colors.MustHex("#e4ecff"),
		Active:       colors.MustHex("#c9d9ff"),
		Widget:       colors.MustHex("#e8e8e8"),
		BorderWidth:  1,
		CornerRadius: 4,
		Padding:      Pad2(20, 10),
		Gap:          8,

		ScrollbarThickness:   10,
		ScrollbarMinThumb:    16,
		ScrollbarTrack:       colors.MustHex("#00000014"),
		ScrollbarThumb:       colors.MustHex("#00000055"),
		ScrollbarThumbHover:  colors.MustHex("#00000077"),
		ScrollbarThumbActive: colors.MustHex("#000000aa"),
		ScrollSpeed:          30,
	}
}
