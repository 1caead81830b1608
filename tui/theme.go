package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// SetupTheme configures the Rose Pine Dawn color theme, a light theme that
// matches the white invoice preview.
func SetupTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    tcell.NewRGBColor(250, 244, 237), // base (#faf4ed)
		ContrastBackgroundColor:     tcell.NewRGBColor(255, 250, 243), // surface (#fffaf3)
		MoreContrastBackgroundColor: tcell.NewRGBColor(242, 233, 225), // overlay (#f2e9e1)
		BorderColor:                 tcell.NewRGBColor(152, 147, 165), // muted (#9893a5)
		TitleColor:                  tcell.NewRGBColor(40, 105, 131),  // pine (#286983)
		GraphicsColor:               tcell.NewRGBColor(86, 148, 159),  // foam (#56949f)
		PrimaryTextColor:            tcell.NewRGBColor(87, 82, 121),   // text (#575279)
		SecondaryTextColor:          tcell.NewRGBColor(121, 117, 147), // subtle (#797593)
		TertiaryTextColor:           tcell.NewRGBColor(152, 147, 165), // muted (#9893a5)
		InverseTextColor:            tcell.NewRGBColor(250, 244, 237), // base (#faf4ed)
		ContrastSecondaryTextColor:  tcell.NewRGBColor(87, 82, 121),   // text (#575279)
	}
}
