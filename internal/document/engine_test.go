package document

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelWith(types ...SectionType) *Model {
	m := NewModel()
	for _, t := range types {
		m.AddSection(t, AtEnd)
	}
	return m
}

func TestAddSectionPositions(t *testing.T) {
	m := NewModel()
	first, cond := m.AddSection(SectionHero, AtEnd)
	assert.Equal(t, ConditionApplied, cond)

	// Insert before the hero.
	second, _ := m.AddSection(SectionContact, 0)
	ids := m.SectionIDs()
	require.Equal(t, []string{second, first}, ids)

	// Negative position clamps to 0 and reports it.
	_, cond = m.AddSection(SectionFAQ, -5)
	assert.Equal(t, ConditionClamped, cond)
	assert.Equal(t, SectionFAQ, m.Sections()[0].Type)

	// Past-the-end clamps to append and reports it, same as the low side.
	last, cond := m.AddSection(SectionCTA, 99)
	assert.Equal(t, ConditionClamped, cond)
	assert.Equal(t, last, m.SectionIDs()[m.Len()-1])

	// Exactly len is a valid append position, not a clamp.
	exact, cond := m.AddSection(SectionAbout, m.Len())
	assert.Equal(t, ConditionApplied, cond)
	assert.Equal(t, exact, m.SectionIDs()[m.Len()-1])
}

func TestAddDeleteRoundTrip(t *testing.T) {
	m := modelWith(SectionHero, SectionFeatures, SectionContact)
	before := m.SectionIDs()

	id, _ := m.AddSection(SectionGallery, 1)
	require.Equal(t, 4, m.Len())
	assert.Equal(t, ConditionApplied, m.DeleteSection(id))

	assert.Equal(t, before, m.SectionIDs())
}

func TestUpdateSectionMergesShallow(t *testing.T) {
	m := modelWith(SectionHero)
	id := m.SectionIDs()[0]

	cond := m.UpdateSection(id, Content{"headline": "Acme"})
	require.Equal(t, ConditionApplied, cond)

	sec := m.Sections()[0]
	assert.Equal(t, "Acme", sec.Content["headline"])
	// Untouched keys survive the merge.
	assert.Equal(t, "Get Started", sec.Content["ctaLabel"])
}

func TestUpdateSectionUnknownIDIsNoop(t *testing.T) {
	m := modelWith(SectionHero)
	before := m.Sections()[0].Content.Clone()

	assert.Equal(t, ConditionNotFound, m.UpdateSection("missing", Content{"headline": "X"}))
	assert.Equal(t, before, m.Sections()[0].Content)
}

func TestReorderIsPermutation(t *testing.T) {
	m := modelWith(SectionHero, SectionFeatures, SectionProducts, SectionContact)
	original := m.SectionIDs()

	for from := -2; from < 6; from++ {
		for to := -2; to < 6; to++ {
			m.ReorderSections(from, to)
			got := append([]string(nil), m.SectionIDs()...)
			want := append([]string(nil), original...)
			sort.Strings(got)
			sort.Strings(want)
			assert.Equal(t, want, got, "from=%d to=%d", from, to)
		}
	}
}

func TestReorderSameIndexNoop(t *testing.T) {
	m := modelWith(SectionHero, SectionFeatures)
	before := m.SectionIDs()
	assert.Equal(t, ConditionNoop, m.ReorderSections(1, 1))
	assert.Equal(t, before, m.SectionIDs())
}

func TestReorderClampsIndices(t *testing.T) {
	m := modelWith(SectionHero, SectionFeatures, SectionContact)
	ids := m.SectionIDs()

	// from=-1 clamps to 0, to=99 clamps to last.
	cond := m.ReorderSections(-1, 99)
	assert.Equal(t, ConditionClamped, cond)
	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, m.SectionIDs())
}

func TestReorderEmptyModel(t *testing.T) {
	m := NewModel()
	assert.Equal(t, ConditionNoop, m.ReorderSections(0, 1))
}

func TestBlockLifecycle(t *testing.T) {
	m := modelWith(SectionAbout)
	secID := m.SectionIDs()[0]

	blkID, cond := m.AddBlock(secID, BlockText)
	require.Equal(t, ConditionApplied, cond)

	cond = m.UpdateBlock(secID, blkID, Content{"text": "hello"})
	require.Equal(t, ConditionApplied, cond)
	assert.Equal(t, "hello", m.Sections()[0].Blocks[0].Content["text"])

	assert.Equal(t, ConditionNotFound, m.UpdateBlock(secID, "missing", Content{}))
	assert.Equal(t, ConditionNotFound, m.UpdateBlock("missing", blkID, Content{}))

	assert.Equal(t, ConditionApplied, m.DeleteBlock(secID, blkID))
	assert.Empty(t, m.Sections()[0].Blocks)
	assert.Equal(t, ConditionNotFound, m.DeleteBlock(secID, blkID))
}

func TestVisibilityTogglesAreIndependent(t *testing.T) {
	m := modelWith(SectionHero)
	id := m.SectionIDs()[0]

	m.SetSectionVisibility(id, ViewportTablet, false)
	sec := m.Sections()[0]
	assert.True(t, sec.Visible)
	assert.False(t, sec.TabletVisible)
	assert.True(t, sec.MobileVisible)

	m.SetSectionVisibility(id, ViewportDesktop, false)
	m.SetSectionVisibility(id, ViewportTablet, true)
	sec = m.Sections()[0]
	assert.False(t, sec.Visible)
	assert.True(t, sec.TabletVisible)
	assert.True(t, sec.MobileVisible)
}

func TestThemeMergeGroupIsolation(t *testing.T) {
	m := NewModel()
	base := m.Theme()

	accent := "#ff0000"
	m.UpdateTheme(ThemePatch{Colors: &ColorsPatch{Accent: &accent}})

	got := m.Theme()
	assert.Equal(t, accent, got.Colors.Accent)
	// Sibling keys within the group survive.
	assert.Equal(t, base.Colors.Primary, got.Colors.Primary)
	// Sibling groups untouched.
	assert.Equal(t, base.Typography, got.Typography)
	assert.Equal(t, base.Layout, got.Layout)

	lh := 1.8
	m.UpdateTheme(ThemePatch{Typography: &TypographyPatch{LineHeight: &lh}})
	got = m.Theme()
	assert.Equal(t, 1.8, got.Typography.LineHeight)
	assert.Equal(t, accent, got.Colors.Accent)
}

func TestObserverReceivesMutations(t *testing.T) {
	m := NewModel()
	var seen []Op
	m.SetObserver(func(mut Mutation) { seen = append(seen, mut.Op) })

	id, _ := m.AddSection(SectionHero, AtEnd)
	m.UpdateSection(id, Content{"headline": "x"})
	m.DeleteSection(id)

	assert.Equal(t, []Op{OpAddSection, OpUpdateSection, OpDeleteSection}, seen)
}

func TestMultipleObserversAllNotified(t *testing.T) {
	m := NewModel()
	var first, second []Op
	m.AddObserver(func(mut Mutation) { first = append(first, mut.Op) })
	m.AddObserver(func(mut Mutation) { second = append(second, mut.Op) })

	m.AddSection(SectionHero, AtEnd)
	assert.Equal(t, []Op{OpAddSection}, first)
	assert.Equal(t, []Op{OpAddSection}, second)

	// SetObserver replaces the whole set.
	m.SetObserver(func(Mutation) {})
	m.AddSection(SectionCTA, AtEnd)
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestCheckInvariants(t *testing.T) {
	m := modelWith(SectionHero, SectionContact)
	require.NoError(t, m.CheckInvariants())

	// Force a duplicate to prove the check trips.
	m.sections[1].ID = m.sections[0].ID
	assert.Error(t, m.CheckInvariants())
}
