package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderLoadBar renders a daily-load bar like [██████░░░░] 60%. The bar fills
// relative to one full working day; loads above 1.0 render a full red bar
// with the percentage showing the real value, so overcommitment stays
// visible instead of clipping silently.
func RenderLoadBar(load float64, width int) string {
	if width < 2 {
		width = 2
	}

	fill := load
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	filled := int(fill * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	pctStr := fmt.Sprintf("%3.0f%%", load*100)
	return fmt.Sprintf("[%s] %s", LoadStyle(load).Render(bar), pctStr)
}
