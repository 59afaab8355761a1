// Package console is the terminal front end: it renders the move menu,
// commitment, reveal and help table, and reads the player's selection.
package console

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

// styler applies ANSI styling only when enabled.
type styler bool

// paint wraps text with color and Reset when styling is on.
func (s styler) paint(color, text string) string {
	if !s || text == "" {
		return text
	}
	return color + text + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
// This is useful for measuring the printable width of styled text.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}
