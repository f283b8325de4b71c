package report

import "charm.land/lipgloss/v2"

// Styles controls how the verdict banners are rendered.
type Styles struct {
	// Enabled turns styling on. When false, banners are written verbatim.
	Enabled bool

	Success lipgloss.Style
	Failure lipgloss.Style
	Heading lipgloss.Style
}

// DefaultStyles returns the terminal styles: green for success, rose for
// failure, bold headings.
func DefaultStyles() Styles {
	return Styles{
		Enabled: true,
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true),
		Failure: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E")).
			Bold(true),
		Heading: lipgloss.NewStyle().
			Bold(true),
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.Enabled {
		return text
	}
	return style.Render(text)
}
