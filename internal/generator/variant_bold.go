package generator

import "git.home.luguber.info/inful/siteforge/internal/document"

func init() { RegisterVariant(boldVariant{}) }

// boldVariant is high-contrast: dark background, saturated accent, tight radius.
type boldVariant struct{}

func (boldVariant) Name() string        { return "bold" }
func (boldVariant) DisplayName() string { return "Bold" }
func (boldVariant) Order() int          { return 2 }
func (boldVariant) HeroLayout() string  { return "center" }

func (boldVariant) Theme() document.ThemeSettings {
	t := document.DefaultTheme()
	t.Colors.Primary = "#e11d48"
	t.Colors.Secondary = "#94a3b8"
	t.Colors.Accent = "#facc15"
	t.Colors.Text = "#f8fafc"
	t.Colors.Background = "#0f172a"
	t.Typography.HeadingWeight = 800
	t.Typography.LetterSpacing = "-0.02em"
	t.Layout.Radius = "0.25rem"
	return t
}
