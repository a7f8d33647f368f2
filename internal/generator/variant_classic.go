package generator

import "git.home.luguber.info/inful/siteforge/internal/document"

func init() { RegisterVariant(classicVariant{}) }

// classicVariant uses serif headings and a warmer, muted palette.
type classicVariant struct{}

func (classicVariant) Name() string        { return "classic" }
func (classicVariant) DisplayName() string { return "Classic" }
func (classicVariant) Order() int          { return 1 }
func (classicVariant) HeroLayout() string  { return "split" }

func (classicVariant) Theme() document.ThemeSettings {
	t := document.DefaultTheme()
	t.Colors.Primary = "#7c2d12"
	t.Colors.Secondary = "#57534e"
	t.Colors.Accent = "#b45309"
	t.Colors.Background = "#fffbf5"
	t.Typography.HeadingFamily = "'Playfair Display', Georgia, serif"
	t.Typography.FontFamily = "Georgia, 'Times New Roman', serif"
	t.Layout.Radius = "0.125rem"
	return t
}
