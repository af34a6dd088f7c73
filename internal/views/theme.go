package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	colorBackground = color.NRGBA{R: 0x0f, G: 0x11, B: 0x15, A: 0xff}
	colorHeader     = color.NRGBA{R: 0x15, G: 0x18, B: 0x20, A: 0xff}
	colorSeparator  = color.NRGBA{R: 0x22, G: 0x26, B: 0x30, A: 0xff}
	colorText       = color.NRGBA{R: 0xd6, G: 0xd6, B: 0xd6, A: 0xff}
	colorMuted      = color.NRGBA{R: 0x9a, G: 0xa4, B: 0xb2, A: 0xff}
	colorPopover    = color.NRGBA{R: 0x1a, G: 0x1d, B: 0x26, A: 0xff}
)

// NoteTheme is a dark, monospace theme sized for small floating notes.
type NoteTheme struct {
	base fyne.Theme
}

func NewNoteTheme() *NoteTheme {
	return &NoteTheme{base: theme.DefaultTheme()}
}

func (t *NoteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return colorBackground
	case theme.ColorNameHeaderBackground, theme.ColorNameButton:
		return colorHeader
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return colorSeparator
	case theme.ColorNameForeground:
		return colorText
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return colorMuted
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return colorPopover
	case theme.ColorNameHover:
		return colorSeparator
	}
	return t.base.Color(name, theme.VariantDark)
}

// Font always resolves to the monospace face, keeping bold and italic.
func (t *NoteTheme) Font(style fyne.TextStyle) fyne.Resource {
	style.Monospace = true
	return t.base.Font(style)
}

func (t *NoteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *NoteTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameInnerPadding:
		return 8
	}
	return t.base.Size(name)
}

