package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteforge/internal/document"
)

func sessionWithHero(t *testing.T) (*Session, *document.Model, string) {
	t.Helper()
	m := document.NewModel()
	id, _ := m.AddSection(document.SectionHero, document.AtEnd)
	// NewSession registers itself as a model observer; no manual wiring.
	return NewSession(m), m, id
}

func TestSchemaIncludesVisibilityToggles(t *testing.T) {
	fields := SchemaFor(document.SectionHero)
	var toggles int
	for _, f := range fields {
		if f.Kind == FieldToggle {
			toggles++
		}
	}
	assert.Equal(t, 3, toggles, "one independent toggle per viewport")

	// Unknown types still get the toggles.
	assert.Len(t, SchemaFor(document.SectionType("carousel")), 3)
}

func TestApplyFieldSingleKey(t *testing.T) {
	s, m, id := sessionWithHero(t)

	var updates int
	m.AddObserver(func(mut document.Mutation) {
		if mut.Op == document.OpUpdateSection {
			updates++
		}
	})

	cond := s.ApplyField(id, Field{Key: "headline", Kind: FieldText}, "Acme")
	require.Equal(t, document.ConditionApplied, cond)
	assert.Equal(t, 1, updates)

	sec := m.Sections()[0]
	assert.Equal(t, "Acme", sec.Content["headline"])
	// Other keys untouched.
	assert.Equal(t, "Get Started", sec.Content["ctaLabel"])
}

func TestApplyFieldClampsNumbers(t *testing.T) {
	s, m, id := sessionWithHero(t)
	f := Field{Key: "columns", Kind: FieldNumber, Min: 1, Max: 4}

	s.ApplyField(id, f, 99)
	assert.Equal(t, 4.0, m.Sections()[0].Content["columns"])

	s.ApplyField(id, f, -3)
	assert.Equal(t, 1.0, m.Sections()[0].Content["columns"])
}

func TestApplyFieldToggleRoutesToVisibility(t *testing.T) {
	s, m, id := sessionWithHero(t)

	cond := s.ApplyField(id, Field{Kind: FieldToggle, Viewport: document.ViewportMobile}, false)
	require.Equal(t, document.ConditionApplied, cond)

	sec := m.Sections()[0]
	assert.False(t, sec.MobileVisible)
	assert.True(t, sec.Visible)
	assert.True(t, sec.TabletVisible)
	// Visibility toggles do not leak into content.
	_, present := sec.Content["mobileVisible"]
	assert.False(t, present)
}

func TestApplyFieldUnknownSection(t *testing.T) {
	s, _, _ := sessionWithHero(t)
	cond := s.ApplyField("missing", Field{Key: "headline", Kind: FieldText}, "x")
	assert.Equal(t, document.ConditionNotFound, cond)
}

func TestSelectionClearedOnDelete(t *testing.T) {
	s, m, id := sessionWithHero(t)

	require.Equal(t, document.ConditionApplied, s.Select(id))
	assert.Equal(t, id, s.Selected())

	m.DeleteSection(id)
	assert.Empty(t, s.Selected(), "deleting the selected section clears the reference")
}

func TestSelectUnknownID(t *testing.T) {
	s, _, id := sessionWithHero(t)
	require.Equal(t, document.ConditionApplied, s.Select(id))
	assert.Equal(t, document.ConditionNotFound, s.Select("missing"))
	assert.Equal(t, id, s.Selected(), "failed select keeps prior selection")
}

func TestApplyBlockField(t *testing.T) {
	s, m, id := sessionWithHero(t)
	blkID, _ := m.AddBlock(id, document.BlockHeading)

	cond := s.ApplyBlockField(id, blkID, Field{Key: "level", Kind: FieldNumber, Min: 1, Max: 6}, 9)
	require.Equal(t, document.ConditionApplied, cond)
	assert.Equal(t, 6.0, m.Sections()[0].Blocks[0].Content["level"])
}
