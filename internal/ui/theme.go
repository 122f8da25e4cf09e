package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, DoneText                            lipgloss.Style
	BoxUnchecked, BoxChecked                      string
	SymDone, SymPending                           string
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
}

var current = themeFor("classic")

func SetTheme(name string) { current = themeFor(name) }

// Expose what renderers need
func Current() Theme { return current }

func themeFor(name string) Theme {
	s := lipgloss.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted: s().Faint(true), Accent: s().Foreground(lipgloss.Color("14")),
			Success: s().Foreground(lipgloss.Color("10")), Error: s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("11")),
			Selected: s().Bold(true).Reverse(true), DoneText: s().Faint(true).Strikethrough(true),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		plain := s()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Selected: plain, DoneText: plain,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			Border: lipgloss.NormalBorder(), BorderColor: lipgloss.NoColor{},
		}
	default: // classic
		return Theme{
			Name:  "classic",
			Title: s().Bold(true),
			Muted: s().Faint(true), Accent: s().Foreground(lipgloss.Color("12")),
			Success: s().Foreground(lipgloss.Color("42")), Error: s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("214")),
			Selected: s().Bold(true).Reverse(true), DoneText: s().Faint(true).Strikethrough(true),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
		}
	}
}
