package document

import (
	"log/slog"

	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
	"git.home.luguber.info/inful/siteforge/internal/logfields"
)

// Condition reports the outcome of a mutation. Mutations are total: a
// reference to an unknown id or an out-of-range index degrades to a reported
// condition instead of an error.
type Condition string

const (
	ConditionApplied  Condition = "applied"
	ConditionNotFound Condition = "not_found"
	ConditionClamped  Condition = "clamped"
	ConditionNoop     Condition = "noop"
)

// Op names a mutation operation for journaling and metrics.
type Op string

const (
	OpAddSection      Op = "add_section"
	OpUpdateSection   Op = "update_section"
	OpDeleteSection   Op = "delete_section"
	OpReorderSections Op = "reorder_sections"
	OpAddBlock        Op = "add_block"
	OpUpdateBlock     Op = "update_block"
	OpDeleteBlock     Op = "delete_block"
	OpUpdateTheme     Op = "update_theme"
)

// Mutation describes one applied operation, delivered to the observer after
// the model has been updated.
type Mutation struct {
	Op        Op
	SectionID string
	BlockID   string
	Condition Condition
}

// AtEnd can be passed as position to append.
const AtEnd = -1

// Model is the in-memory document: ordered sections plus theme settings.
// All access is single-writer; each operation runs to completion before the
// next event is processed, so no locking is needed here.
type Model struct {
	sections []Section
	theme    ThemeSettings

	// observers receive every applied mutation (journal, bus, metrics and
	// editor sessions are wired here). Zero observers is fine.
	observers []func(Mutation)
}

// NewModel creates an empty model with the default theme.
func NewModel() *Model {
	return &Model{theme: DefaultTheme()}
}

// SetObserver installs fn as the only mutation observer, dropping any
// previously registered ones. Passing nil removes them all.
func (m *Model) SetObserver(fn func(Mutation)) {
	if fn == nil {
		m.observers = nil
		return
	}
	m.observers = []func(Mutation){fn}
}

// AddObserver registers an additional mutation observer. Observers are
// called in registration order.
func (m *Model) AddObserver(fn func(Mutation)) {
	if fn == nil {
		return
	}
	m.observers = append(m.observers, fn)
}

// Sections returns a copy of the section list. Callers never get aliased
// access to internal state.
func (m *Model) Sections() []Section {
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// SectionIDs returns the ids in list order.
func (m *Model) SectionIDs() []string {
	ids := make([]string, len(m.sections))
	for i, s := range m.sections {
		ids[i] = s.ID
	}
	return ids
}

// Theme returns the current theme settings by value.
func (m *Model) Theme() ThemeSettings { return m.theme }

// Len returns the number of sections.
func (m *Model) Len() int { return len(m.sections) }

func (m *Model) notify(mut Mutation) {
	for _, fn := range m.observers {
		fn(mut)
	}
	if err := m.CheckInvariants(); err != nil {
		// Duplicate ids are a programming-contract violation, not a user
		// error. Surface loudly; the model is unusable past this point.
		slog.Error("document invariant violation", logfields.Error(err))
	}
}

func (m *Model) indexOf(id string) int {
	for i := range m.sections {
		if m.sections[i].ID == id {
			return i
		}
	}
	return -1
}

// AddSection inserts a new section of the given type at position (clamped to
// [0, len]; AtEnd appends) and returns its id.
func (m *Model) AddSection(typ SectionType, position int) (string, Condition) {
	sec := NewSection(typ)
	cond := ConditionApplied
	if position == AtEnd {
		position = len(m.sections)
	} else if position > len(m.sections) {
		position = len(m.sections)
		cond = ConditionClamped
	} else if position < 0 {
		position = 0
		cond = ConditionClamped
	}
	m.sections = append(m.sections, Section{})
	copy(m.sections[position+1:], m.sections[position:])
	m.sections[position] = sec
	m.notify(Mutation{Op: OpAddSection, SectionID: sec.ID, Condition: cond})
	return sec.ID, cond
}

// UpdateSection shallow-merges partial into the section's content. Unknown
// id reports NotFound and changes nothing.
func (m *Model) UpdateSection(id string, partial Content) Condition {
	i := m.indexOf(id)
	if i < 0 {
		return ConditionNotFound
	}
	if m.sections[i].Content == nil {
		m.sections[i].Content = Content{}
	}
	m.sections[i].Content.merge(partial)
	m.notify(Mutation{Op: OpUpdateSection, SectionID: id, Condition: ConditionApplied})
	return ConditionApplied
}

// SetSectionVisibility toggles one viewport flag. The three flags are
// independent; setting one never derives or alters the others.
func (m *Model) SetSectionVisibility(id string, viewport Viewport, visible bool) Condition {
	i := m.indexOf(id)
	if i < 0 {
		return ConditionNotFound
	}
	switch viewport {
	case ViewportDesktop:
		m.sections[i].Visible = visible
	case ViewportTablet:
		m.sections[i].TabletVisible = visible
	case ViewportMobile:
		m.sections[i].MobileVisible = visible
	default:
		return ConditionNoop
	}
	m.notify(Mutation{Op: OpUpdateSection, SectionID: id, Condition: ConditionApplied})
	return ConditionApplied
}

// DeleteSection removes the section with the given id.
func (m *Model) DeleteSection(id string) Condition {
	i := m.indexOf(id)
	if i < 0 {
		return ConditionNotFound
	}
	m.sections = append(m.sections[:i], m.sections[i+1:]...)
	m.notify(Mutation{Op: OpDeleteSection, SectionID: id, Condition: ConditionApplied})
	return ConditionApplied
}

// ReorderSections moves the section at from to position to. Both indices
// clamp to [0, len-1]; equal indices after clamping are a no-op. The result
// is always a permutation of the prior list.
func (m *Model) ReorderSections(from, to int) Condition {
	if len(m.sections) == 0 {
		return ConditionNoop
	}
	cond := ConditionApplied
	clamp := func(i int) int {
		if i < 0 {
			cond = ConditionClamped
			return 0
		}
		if i >= len(m.sections) {
			cond = ConditionClamped
			return len(m.sections) - 1
		}
		return i
	}
	from = clamp(from)
	to = clamp(to)
	if from == to {
		return ConditionNoop
	}
	sec := m.sections[from]
	m.sections = append(m.sections[:from], m.sections[from+1:]...)
	m.sections = append(m.sections, Section{})
	copy(m.sections[to+1:], m.sections[to:])
	m.sections[to] = sec
	m.notify(Mutation{Op: OpReorderSections, SectionID: sec.ID, Condition: cond})
	return cond
}

// AddBlock appends a new block of the given type to the section's block list
// and returns its id.
func (m *Model) AddBlock(sectionID string, typ BlockType) (string, Condition) {
	i := m.indexOf(sectionID)
	if i < 0 {
		return "", ConditionNotFound
	}
	blk := NewBlock(typ)
	m.sections[i].Blocks = append(m.sections[i].Blocks, blk)
	m.notify(Mutation{Op: OpAddBlock, SectionID: sectionID, BlockID: blk.ID, Condition: ConditionApplied})
	return blk.ID, ConditionApplied
}

// UpdateBlock shallow-merges partial into one block's content.
func (m *Model) UpdateBlock(sectionID, blockID string, partial Content) Condition {
	i := m.indexOf(sectionID)
	if i < 0 {
		return ConditionNotFound
	}
	for j := range m.sections[i].Blocks {
		if m.sections[i].Blocks[j].ID == blockID {
			if m.sections[i].Blocks[j].Content == nil {
				m.sections[i].Blocks[j].Content = Content{}
			}
			m.sections[i].Blocks[j].Content.merge(partial)
			m.notify(Mutation{Op: OpUpdateBlock, SectionID: sectionID, BlockID: blockID, Condition: ConditionApplied})
			return ConditionApplied
		}
	}
	return ConditionNotFound
}

// DeleteBlock removes one block from a section.
func (m *Model) DeleteBlock(sectionID, blockID string) Condition {
	i := m.indexOf(sectionID)
	if i < 0 {
		return ConditionNotFound
	}
	blocks := m.sections[i].Blocks
	for j := range blocks {
		if blocks[j].ID == blockID {
			m.sections[i].Blocks = append(blocks[:j], blocks[j+1:]...)
			m.notify(Mutation{Op: OpDeleteBlock, SectionID: sectionID, BlockID: blockID, Condition: ConditionApplied})
			return ConditionApplied
		}
	}
	return ConditionNotFound
}

// UpdateTheme merges the patch into the theme, group by group.
func (m *Model) UpdateTheme(patch ThemePatch) Condition {
	m.theme.Merge(patch)
	m.notify(Mutation{Op: OpUpdateTheme, Condition: ConditionApplied})
	return ConditionApplied
}

// Replace swaps in a whole new section list and theme, used when a layout is
// regenerated from a business record. The previous model state is discarded.
func (m *Model) Replace(sections []Section, theme ThemeSettings) {
	m.sections = make([]Section, len(sections))
	copy(m.sections, sections)
	m.theme = theme
	m.notify(Mutation{Op: OpUpdateTheme, Condition: ConditionApplied})
}

// CheckInvariants verifies structural integrity: section ids unique in the
// list, block ids unique within each section. A violation is the one fatal
// contract breach this core recognizes.
func (m *Model) CheckInvariants() error {
	seen := make(map[string]struct{}, len(m.sections))
	for _, s := range m.sections {
		if _, dup := seen[s.ID]; dup {
			return sferrors.DuplicateID(s.ID)
		}
		seen[s.ID] = struct{}{}
		inner := make(map[string]struct{}, len(s.Blocks))
		for _, b := range s.Blocks {
			if _, dup := inner[b.ID]; dup {
				return sferrors.DuplicateID(b.ID).WithContext("section", s.ID)
			}
			inner[b.ID] = struct{}{}
		}
	}
	return nil
}

// Viewport names one of the three independent visibility axes.
type Viewport string

const (
	ViewportDesktop Viewport = "desktop"
	ViewportTablet  Viewport = "tablet"
	ViewportMobile  Viewport = "mobile"
)
