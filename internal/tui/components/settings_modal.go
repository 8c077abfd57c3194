package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/tui/styles"
)

// ThemeOptions are the choices offered by the settings modal, in display order
func ThemeOptions() []string {
	return []string{domain.ThemeAuto, domain.ThemeDay, domain.ThemeNight}
}

func themeLabel(theme string) string {
	switch theme {
	case domain.ThemeDay:
		return "Day"
	case domain.ThemeNight:
		return "Night"
	default:
		return "Auto (terminal)"
	}
}

// SettingsModal is a small popup for choosing the color theme
type SettingsModal struct {
	visible bool
	options []string
	cursor  int
	active  string
}

// NewSettingsModal creates a new settings modal
func NewSettingsModal() SettingsModal {
	return SettingsModal{options: ThemeOptions()}
}

// Show displays the modal with the cursor on the active theme
func (m *SettingsModal) Show(active string) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SettingsModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SettingsModal) IsVisible() bool {
	return m.visible
}

// Selected returns the theme under the cursor
func (m SettingsModal) Selected() string {
	if len(m.options) == 0 {
		return domain.ThemeAuto
	}
	return m.options[m.cursor]
}

// Update processes a key press, returns (modal, cmd, chosen).
// When chosen is true, Selected holds the confirmed theme.
func (m SettingsModal) Update(msg tea.Msg) (SettingsModal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.visible || !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, BookListKeys.Down), key.Matches(keyMsg, ModalKeys.Down), key.Matches(keyMsg, ModalKeys.Next):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, BookListKeys.Up), key.Matches(keyMsg, ModalKeys.Up), key.Matches(keyMsg, ModalKeys.Prev):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, ModalKeys.Enter):
		m.visible = false
		m.active = m.Selected()
		return m, nil, true
	case key.Matches(keyMsg, ModalKeys.Escape), keyMsg.String() == "t":
		m.visible = false
	}

	return m, nil, false // consume all keys when visible
}

// View renders the settings modal
func (m SettingsModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		prefix := "  "
		if opt == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+themeLabel(opt), 20)

		switch {
		case i == m.cursor:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.Current.Fg).
				Background(styles.Current.Selection).
				Render(text))
		case opt == m.active:
			lines = append(lines, styles.AccentStyle.Render(text))
		default:
			lines = append(lines, styles.DimStyle.Render(text))
		}
	}

	return styles.ModalStyle.
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Theme") + "\n" + strings.Join(lines, "\n"))
}
