package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mmcdole/bookcase/internal/domain"
)

// Palette is one color scheme. Day and Night swap the two base colors.
type Palette struct {
	Name      string
	Fg        lipgloss.Color // Primary text
	Bg        lipgloss.Color // Page background
	Accent    lipgloss.Color
	Dim       lipgloss.Color // Secondary text (author names, hints)
	Muted     lipgloss.Color // Disabled controls
	Selection lipgloss.Color // Selected row background
	Panel     lipgloss.Color // Modal background
	Error     lipgloss.Color
	Success   lipgloss.Color
}

// Base colors shared by both themes
var (
	DarkBlue = lipgloss.Color("#0A0A14")
	White    = lipgloss.Color("#FFFFFF")
	Red      = lipgloss.Color("#EF4444")
	Green    = lipgloss.Color("#10B981")
)

var (
	Day = Palette{
		Name:      domain.ThemeDay,
		Fg:        DarkBlue,
		Bg:        White,
		Accent:    lipgloss.Color("#B45309"),
		Dim:       lipgloss.Color("#6B7280"),
		Muted:     lipgloss.Color("#D1D5DB"),
		Selection: lipgloss.Color("#E5E7EB"),
		Panel:     lipgloss.Color("#F3F4F6"),
		Error:     Red,
		Success:   Green,
	}

	Night = Palette{
		Name:      domain.ThemeNight,
		Fg:        White,
		Bg:        DarkBlue,
		Accent:    lipgloss.Color("#E5A00D"),
		Dim:       lipgloss.Color("#9CA3AF"),
		Muted:     lipgloss.Color("#374151"),
		Selection: lipgloss.Color("#1F2937"),
		Panel:     lipgloss.Color("#111827"),
		Error:     Red,
		Success:   Green,
	}
)

// Resolve maps a theme name to a palette. "auto" follows the terminal
// background as reported by hasDark.
func Resolve(theme string, hasDark func() bool) Palette {
	switch theme {
	case domain.ThemeDay:
		return Day
	case domain.ThemeNight:
		return Night
	default:
		if hasDark != nil && !hasDark() {
			return Day
		}
		return Night
	}
}

// Current is the palette the styles below were last built from
var Current Palette

// Text styles
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	DimStyle      lipgloss.Style
	AccentStyle   lipgloss.Style
	ErrorStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
)

// Borders
var ActiveBorder lipgloss.Style

// List item styles
var (
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
)

// Help styles
var (
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
)

// Button styles for the "Show more" footer
var (
	ButtonStyle         lipgloss.Style
	DisabledButtonStyle lipgloss.Style
)

// Match highlight styles for quick find results
var (
	MatchHighlightStyle         lipgloss.Style
	MatchHighlightSelectedStyle lipgloss.Style
)

func init() {
	Apply(Night)
}

// Apply rebuilds every style from p
func Apply(p Palette) {
	Current = p

	TitleStyle = lipgloss.NewStyle().Foreground(p.Fg).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.Dim).Italic(true)
	DimStyle = lipgloss.NewStyle().Foreground(p.Dim)
	AccentStyle = lipgloss.NewStyle().Foreground(p.Accent)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)

	ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)

	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Selection).
		Padding(0, 1)
	NormalItemStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Foreground(p.Fg).
		Background(p.Panel).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Bold(true).
		MarginBottom(1)

	HelpKeyStyle = lipgloss.NewStyle().Foreground(p.Accent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(p.Dim)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(p.Bg).
		Background(p.Accent).
		Bold(true).
		Padding(0, 1)
	DisabledButtonStyle = lipgloss.NewStyle().
		Foreground(p.Dim).
		Background(p.Muted).
		Padding(0, 1)

	MatchHighlightStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	MatchHighlightSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Selection).
		Bold(true)
}

// Page paints the themed background and foreground over a full screen
func Page(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Foreground(Current.Fg).
		Background(Current.Bg).
		Render(content)
}

// Helper functions

// Truncate shortens s to the given display width, adding an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Pad truncates or right-pads s to exactly width display cells
func Pad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled explicitly to avoid ANSI reset codes cutting the background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	var b strings.Builder
	visibleLen := 0

	base := lipgloss.NewStyle()
	if selected {
		base = base.Background(Current.Selection)
	}

	for _, part := range parts {
		style := base.Foreground(Current.Fg)
		if part.Foreground != nil {
			style = base.Foreground(*part.Foreground)
		}
		b.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	// Add padding to fill width (subtract 2 for left/right margin)
	if paddingNeeded := width - visibleLen - 2; paddingNeeded > 0 {
		b.WriteString(base.Render(strings.Repeat(" ", paddingNeeded)))
	}

	margin := base.Render(" ")
	return margin + b.String() + margin
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// HighlightMatches renders title with the characters at matched byte offsets emphasized
func HighlightMatches(title string, matched []int, selected bool) string {
	if len(matched) == 0 {
		return title
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	hl := MatchHighlightStyle
	plain := lipgloss.NewStyle().Foreground(Current.Fg)
	if selected {
		hl = MatchHighlightSelectedStyle
		plain = plain.Background(Current.Selection)
	}

	var b strings.Builder
	for i, r := range title {
		if hit[i] {
			b.WriteString(hl.Render(string(r)))
		} else {
			b.WriteString(plain.Render(string(r)))
		}
	}
	return b.String()
}
