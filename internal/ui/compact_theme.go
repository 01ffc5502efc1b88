package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent colours of the search controls
var (
	colorAmber = color.RGBA{R: 255, G: 193, B: 7, A: 255}   // search button
	colorBlue  = color.RGBA{R: 33, G: 150, B: 243, A: 255}  // show-all button
	colorRed   = color.RGBA{R: 183, G: 28, B: 28, A: 255}   // error dialogs
	colorGreen = color.RGBA{R: 46, G: 160, B: 67, A: 255}   // completed queries
	colorInk   = color.RGBA{R: 33, G: 33, B: 33, A: 255}    // text on light background
	colorPaper = color.RGBA{R: 250, G: 250, B: 250, A: 255} // light background
)

// CompactTheme tightens padding and text sizes and applies the recipe browser accents
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorGreen
	case theme.ColorNameError:
		return colorRed
	case theme.ColorNameWarning:
		return colorAmber
	case theme.ColorNamePrimary:
		return colorBlue
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return theme.DefaultTheme().Color(name, variant)
		}
		return colorPaper
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return theme.DefaultTheme().Color(name, variant)
		}
		return colorInk
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18 // welcome banner
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
