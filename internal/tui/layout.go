package tui

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.List.SetSize(m.Width, max(m.Height-ChromeHeight, 3))
	m.Detail.SetSize(m.Width, m.Height)
	m.QuickFind.SetSize(m.Width, m.Height)
}
