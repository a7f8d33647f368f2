package generator

import "git.home.luguber.info/inful/siteforge/internal/document"

func init() { RegisterVariant(modernVariant{}) }

// modernVariant is the default look: cool blues, generous spacing, centered hero.
type modernVariant struct{}

func (modernVariant) Name() string        { return "modern" }
func (modernVariant) DisplayName() string { return "Modern" }
func (modernVariant) Order() int          { return 0 }
func (modernVariant) HeroLayout() string  { return "center" }

func (modernVariant) Theme() document.ThemeSettings {
	return document.DefaultTheme()
}
