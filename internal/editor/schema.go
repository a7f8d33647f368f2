// Package editor bridges user edits and the document model: declarative
// per-type field schemas, and a session that turns one field change into
// exactly one mutation call.
package editor

import (
	"git.home.luguber.info/inful/siteforge/internal/document"
)

// FieldKind enumerates the editable control types.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldLongText FieldKind = "longtext"
	FieldNumber   FieldKind = "number"
	FieldColor    FieldKind = "color"
	FieldToggle   FieldKind = "toggle"
)

// Field describes one editable control. Key addresses the content key the
// field writes; toggles address a viewport visibility flag instead.
type Field struct {
	Key   string
	Label string
	Kind  FieldKind

	// Min/Max bound number fields; out-of-range input clamps.
	Min, Max float64

	// Viewport applies to toggle fields only.
	Viewport document.Viewport
}

// visibilityToggles are shared by every section schema: one independent
// toggle per viewport.
var visibilityToggles = []Field{
	{Key: "visible", Label: "Visible on desktop", Kind: FieldToggle, Viewport: document.ViewportDesktop},
	{Key: "tabletVisible", Label: "Visible on tablet", Kind: FieldToggle, Viewport: document.ViewportTablet},
	{Key: "mobileVisible", Label: "Visible on mobile", Kind: FieldToggle, Viewport: document.ViewportMobile},
}

var sectionSchemas = map[document.SectionType][]Field{
	document.SectionHero: {
		{Key: "headline", Label: "Headline", Kind: FieldText},
		{Key: "subheading", Label: "Subheading", Kind: FieldLongText},
		{Key: "ctaLabel", Label: "Button label", Kind: FieldText},
		{Key: "ctaTarget", Label: "Button target", Kind: FieldText},
	},
	document.SectionFeatures: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
	},
	document.SectionProducts: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
	},
	document.SectionServices: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
	},
	document.SectionTestimonials: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
	},
	document.SectionContact: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
		{Key: "email", Label: "Email", Kind: FieldText},
		{Key: "phone", Label: "Phone", Kind: FieldText},
		{Key: "address", Label: "Address", Kind: FieldLongText},
	},
	document.SectionAbout: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
		{Key: "body", Label: "Body", Kind: FieldLongText},
	},
	document.SectionGallery: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
	},
	document.SectionPricing: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
	},
	document.SectionFAQ: {
		{Key: "heading", Label: "Heading", Kind: FieldText},
	},
	document.SectionCTA: {
		{Key: "headline", Label: "Headline", Kind: FieldText},
		{Key: "ctaLabel", Label: "Button label", Kind: FieldText},
		{Key: "ctaTarget", Label: "Button target", Kind: FieldText},
	},
}

var blockSchemas = map[document.BlockType][]Field{
	document.BlockText: {
		{Key: "text", Label: "Text", Kind: FieldLongText},
	},
	document.BlockHeading: {
		{Key: "text", Label: "Text", Kind: FieldText},
		{Key: "level", Label: "Level", Kind: FieldNumber, Min: 1, Max: 6},
	},
	document.BlockImage: {
		{Key: "src", Label: "Image URL", Kind: FieldText},
		{Key: "alt", Label: "Alt text", Kind: FieldText},
	},
	document.BlockButton: {
		{Key: "label", Label: "Label", Kind: FieldText},
		{Key: "target", Label: "Target", Kind: FieldText},
	},
	document.BlockSpacer: {
		{Key: "height", Label: "Height", Kind: FieldText},
	},
	document.BlockDivider: {},
}

// SchemaFor returns the editable fields for a section type, always including
// the three independent visibility toggles. Unknown types get only the
// toggles, so even an unrecognized section stays hideable.
func SchemaFor(typ document.SectionType) []Field {
	fields := sectionSchemas[typ]
	out := make([]Field, 0, len(fields)+len(visibilityToggles))
	out = append(out, fields...)
	out = append(out, visibilityToggles...)
	return out
}

// BlockSchemaFor returns the editable fields for a block type.
func BlockSchemaFor(typ document.BlockType) []Field {
	fields := blockSchemas[typ]
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
