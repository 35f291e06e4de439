package theme

import "github.com/charmbracelet/lipgloss"

// Palette bundles the colors and derived styles for one theme. Dark is
// catppuccin mocha, light is latte; the active palette follows the stored
// dark-mode preference.
type Palette struct {
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Accent  lipgloss.Color
	Blue    lipgloss.Color
	Green   lipgloss.Color
	Peach   lipgloss.Color
	Red     lipgloss.Color

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
}

func build(p Palette) Palette {
	p.App = lipgloss.NewStyle().
		Background(p.Base).
		Foreground(p.Text).
		Padding(1, 2)

	p.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Mantle).
		Foreground(p.Text).
		Padding(1)

	p.PaneActive = p.Pane.BorderForeground(p.Accent)

	p.Title = lipgloss.NewStyle().Foreground(p.Blue).Bold(true)
	p.Muted = lipgloss.NewStyle().Foreground(p.Subtext)
	p.Hot = lipgloss.NewStyle().Foreground(p.Peach).Bold(true)
	p.Good = lipgloss.NewStyle().Foreground(p.Green)
	p.Bad = lipgloss.NewStyle().Foreground(p.Red)
	return p
}

func Dark() Palette {
	return build(Palette{
		Base:    lipgloss.Color("#1e1e2e"),
		Mantle:  lipgloss.Color("#181825"),
		Surface: lipgloss.Color("#313244"),
		Border:  lipgloss.Color("#45475a"),
		Text:    lipgloss.Color("#cdd6f4"),
		Subtext: lipgloss.Color("#a6adc8"),
		Accent:  lipgloss.Color("#b4befe"),
		Blue:    lipgloss.Color("#74c7ec"),
		Green:   lipgloss.Color("#a6e3a1"),
		Peach:   lipgloss.Color("#fab387"),
		Red:     lipgloss.Color("#f38ba8"),
	})
}

func Light() Palette {
	return build(Palette{
		Base:    lipgloss.Color("#eff1f5"),
		Mantle:  lipgloss.Color("#e6e9ef"),
		Surface: lipgloss.Color("#ccd0da"),
		Border:  lipgloss.Color("#bcc0cc"),
		Text:    lipgloss.Color("#4c4f69"),
		Subtext: lipgloss.Color("#6c6f85"),
		Accent:  lipgloss.Color("#7287fd"),
		Blue:    lipgloss.Color("#1e66f5"),
		Green:   lipgloss.Color("#40a02b"),
		Peach:   lipgloss.Color("#fe640b"),
		Red:     lipgloss.Color("#d20f39"),
	})
}

func Select(dark bool) Palette {
	if dark {
		return Dark()
	}
	return Light()
}
