package document

import (
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
)

// SEOMetadata is per-page search metadata.
type SEOMetadata struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty"`
}

// PageSettings holds per-page behavior flags.
type PageSettings struct {
	ShowInNavigation bool   `yaml:"showInNavigation"`
	RequiresAuth     bool   `yaml:"requiresAuth"`
	TemplateName     string `yaml:"templateName,omitempty"`
}

// PageTemplate is one page of a project: an ordered section list plus
// metadata and settings.
type PageTemplate struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	PageType string       `yaml:"pageType"`
	Sections []Section    `yaml:"sections"`
	SEO      SEOMetadata  `yaml:"seo"`
	Settings PageSettings `yaml:"settings"`
}

// NavigationItem is one entry of the project navigation tree.
type NavigationItem struct {
	Label    string           `yaml:"label"`
	Target   string           `yaml:"target"`
	Children []NavigationItem `yaml:"children,omitempty"`
}

// ProjectSettings holds site-wide configuration.
type ProjectSettings struct {
	FaviconURL  string `yaml:"faviconUrl,omitempty"`
	LogoURL     string `yaml:"logoUrl,omitempty"`
	Locale      string `yaml:"locale"`
	Currency    string `yaml:"currency"`
	AnalyticsID string `yaml:"analyticsId,omitempty"`
	Ecommerce   bool   `yaml:"ecommerce"`
}

// WebsiteProject is the top-level persisted unit: pages, theme, navigation
// and settings.
type WebsiteProject struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Pages      []PageTemplate   `yaml:"pages"`
	Theme      ThemeSettings    `yaml:"theme"`
	Navigation []NavigationItem `yaml:"navigation,omitempty"`
	Settings   ProjectSettings  `yaml:"settings"`
}

// NewProject creates an empty project with sensible defaults.
func NewProject(name string) *WebsiteProject {
	return &WebsiteProject{
		ID:    uuid.NewString(),
		Name:  name,
		Theme: DefaultTheme(),
		Settings: ProjectSettings{
			Locale:   "en-US",
			Currency: "USD",
		},
	}
}

// Snapshot serializes the project to YAML.
func (p *WebsiteProject) Snapshot() ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, sferrors.Wrap(err, sferrors.CategoryDocument, sferrors.SeverityError, "project snapshot failed")
	}
	return out, nil
}

// SaveSnapshot writes the YAML snapshot to path.
func (p *WebsiteProject) SaveSnapshot(path string) error {
	out, err := p.Snapshot()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return sferrors.WorkspaceError("snapshot write", err)
	}
	return nil
}

// LoadProject reads a project snapshot back from YAML.
func LoadProject(path string) (*WebsiteProject, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, sferrors.WorkspaceError("snapshot read", err)
	}
	var p WebsiteProject
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, sferrors.Wrap(err, sferrors.CategoryDocument, sferrors.SeverityFatal, "project snapshot parse failed")
	}
	return &p, nil
}
