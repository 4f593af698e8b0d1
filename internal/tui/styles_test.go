package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/basket/internal/theme"
	"github.com/stretchr/testify/assert"
)

func TestStylesFor(t *testing.T) {
	dark := StylesFor(theme.Dark)
	light := StylesFor(theme.Light)

	assert.Equal(t, theme.Dark, dark.Mode)
	assert.Equal(t, theme.Light, light.Mode)
	assert.NotEqual(t, dark.BgColor, light.BgColor)
	assert.NotEqual(t, dark.FgColor, light.FgColor)
}

func TestTag(t *testing.T) {
	assert.Equal(t, "[#ff0000]", Tag(tcell.NewRGBColor(0xff, 0, 0)))
	assert.Equal(t, "[-]", Tag(tcell.ColorDefault))
	assert.Equal(t, "[#ff0000::b]", BoldTag(tcell.NewRGBColor(0xff, 0, 0)))
	assert.Equal(t, "[#00ff00]ok[-]", Colorize(tcell.NewRGBColor(0, 0xff, 0), "ok"))
}
