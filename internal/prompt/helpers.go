package prompt

import (
	"github.com/mattn/go-runewidth"
)

// Display-width caps for the variable segments scale with the terminal:
// the path may fill half of it, the branch annotation forty percent. Long
// branch names and deep paths get an ellipsis rather than wrapping the
// prompt.
const (
	defaultTerminalWidth = 80
	minSegmentWidth      = 10
)

func segmentCaps(terminalWidth int) (pathMax, branchMax int) {
	if terminalWidth <= 0 {
		terminalWidth = defaultTerminalWidth
	}
	pathMax = terminalWidth * 50 / 100
	branchMax = terminalWidth * 40 / 100
	if pathMax < minSegmentWidth {
		pathMax = minSegmentWidth
	}
	if branchMax < minSegmentWidth {
		branchMax = minSegmentWidth
	}
	return pathMax, branchMax
}

// truncateText truncates text to a maximum display width with ellipsis.
func truncateText(text string, maxWidth int) string {
	// Use runewidth to properly count display width
	width := runewidth.StringWidth(text)
	if width <= maxWidth {
		return text
	}

	// Truncate to fit within maxWidth including ellipsis
	const ellipsisWidth = 1
	return runewidth.Truncate(text, maxWidth-ellipsisWidth, "") + "…"
}
