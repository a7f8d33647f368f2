// Package document defines the editable document model backing the site
// preview: ordered Sections containing Blocks plus global theme settings,
// mutated exclusively through the Model's operation set.
package document

import (
	"maps"

	"github.com/google/uuid"
)

// SectionType is the closed set of section kinds the renderer and editors
// know how to handle. Unknown values are tolerated at render time and shown
// as labeled placeholders rather than aborting.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionProducts     SectionType = "products"
	SectionServices     SectionType = "services"
	SectionTestimonials SectionType = "testimonials"
	SectionContact      SectionType = "contact"
	SectionAbout        SectionType = "about"
	SectionGallery      SectionType = "gallery"
	SectionPricing      SectionType = "pricing"
	SectionFAQ          SectionType = "faq"
	SectionCTA          SectionType = "cta"
)

// BlockType identifies the finer-grained elements nested inside a section.
type BlockType string

const (
	BlockText    BlockType = "text"
	BlockHeading BlockType = "heading"
	BlockImage   BlockType = "image"
	BlockButton  BlockType = "button"
	BlockDivider BlockType = "divider"
	BlockSpacer  BlockType = "spacer"
)

// Content is the type-tagged variant payload of a section or block. Keys are
// defined per type by the editor schemas; updates shallow-merge key by key.
type Content map[string]any

// Clone returns an independent shallow copy.
func (c Content) Clone() Content {
	if c == nil {
		return Content{}
	}
	out := make(Content, len(c))
	maps.Copy(out, c)
	return out
}

// merge shallow-merges patch into c, key by key. Unspecified keys survive.
func (c Content) merge(patch Content) {
	maps.Copy(c, patch)
}

// SectionSettings holds per-section layout knobs.
type SectionSettings struct {
	Background string `yaml:"background,omitempty"`
	Padding    string `yaml:"padding,omitempty"`
	Margin     string `yaml:"margin,omitempty"`
	// Width is "contained" or "full".
	Width string `yaml:"width,omitempty"`
}

// BlockSettings holds per-block presentation knobs. The three visibility
// booleans are independent, mirroring section visibility.
type BlockSettings struct {
	Spacing       string `yaml:"spacing,omitempty"`
	Color         string `yaml:"color,omitempty"`
	Alignment     string `yaml:"alignment,omitempty"`
	Visible       bool   `yaml:"visible"`
	TabletVisible bool   `yaml:"tabletVisible"`
	MobileVisible bool   `yaml:"mobileVisible"`
}

// Block is a typed element nested inside one section.
type Block struct {
	ID       string        `yaml:"id"`
	Type     BlockType     `yaml:"type"`
	Content  Content       `yaml:"content"`
	Settings BlockSettings `yaml:"settings"`
}

// Section is a named, ordered, typed building block of a page. Order within
// the containing list is positional; there is no separate order field. The
// three visibility booleans are independent per viewport and are never
// collapsed into a derived state.
type Section struct {
	ID            string          `yaml:"id"`
	Type          SectionType     `yaml:"type"`
	Content       Content         `yaml:"content"`
	Visible       bool            `yaml:"visible"`
	TabletVisible bool            `yaml:"tabletVisible"`
	MobileVisible bool            `yaml:"mobileVisible"`
	Blocks        []Block         `yaml:"blocks,omitempty"`
	Settings      SectionSettings `yaml:"settings"`
}

func newID() string { return uuid.NewString() }

// NewSection builds a section of the given type with its default content and
// all viewports visible.
func NewSection(typ SectionType) Section {
	return Section{
		ID:            newID(),
		Type:          typ,
		Content:       DefaultContent(typ),
		Visible:       true,
		TabletVisible: true,
		MobileVisible: true,
		Settings:      SectionSettings{Width: "contained"},
	}
}

// NewBlock builds a block of the given type with default content.
func NewBlock(typ BlockType) Block {
	return Block{
		ID:      newID(),
		Type:    typ,
		Content: DefaultBlockContent(typ),
		Settings: BlockSettings{
			Visible:       true,
			TabletVisible: true,
			MobileVisible: true,
		},
	}
}
