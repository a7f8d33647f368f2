package editor

import (
	"git.home.luguber.info/inful/siteforge/internal/document"
)

// Session is per-editor state: the currently selected section. It lives
// outside the document model and is passed explicitly, never held as a
// package global. Editors are one-way bound: the model is read for display
// and written only through ApplyField-style single-key mutations.
type Session struct {
	model    *document.Model
	selected string
}

// NewSession creates an editor session over a model. The session observes
// the model so deleting the selected section clears the selection without
// the host having to forward mutations.
func NewSession(model *document.Model) *Session {
	s := &Session{model: model}
	model.AddObserver(s.HandleMutation)
	return s
}

// Select marks a section as selected. Unknown ids report NotFound and leave
// the selection unchanged.
func (s *Session) Select(id string) document.Condition {
	for _, existing := range s.model.SectionIDs() {
		if existing == id {
			s.selected = id
			return document.ConditionApplied
		}
	}
	return document.ConditionNotFound
}

// Selected returns the selected section id, or "" when nothing is selected.
func (s *Session) Selected() string { return s.selected }

// ClearSelection drops the selection.
func (s *Session) ClearSelection() { s.selected = "" }

// HandleMutation keeps session state consistent with the model: deleting
// the selected section clears the outstanding reference.
func (s *Session) HandleMutation(mut document.Mutation) {
	if mut.Op == document.OpDeleteSection && mut.SectionID == s.selected {
		s.selected = ""
	}
}

// clampNumber bounds a number field's value to its schema range.
func clampNumber(f Field, v float64) float64 {
	if f.Max > f.Min {
		if v < f.Min {
			return f.Min
		}
		if v > f.Max {
			return f.Max
		}
	}
	return v
}

// ApplyField issues exactly one mutation carrying only the changed key.
// Number values clamp to the field's range; toggles route to the section's
// independent visibility flags.
func (s *Session) ApplyField(sectionID string, f Field, value any) document.Condition {
	switch f.Kind {
	case FieldToggle:
		visible, ok := value.(bool)
		if !ok {
			return document.ConditionNoop
		}
		return s.model.SetSectionVisibility(sectionID, f.Viewport, visible)
	case FieldNumber:
		n, ok := toFloat(value)
		if !ok {
			return document.ConditionNoop
		}
		return s.model.UpdateSection(sectionID, document.Content{f.Key: clampNumber(f, n)})
	default:
		return s.model.UpdateSection(sectionID, document.Content{f.Key: value})
	}
}

// ApplyBlockField issues exactly one block mutation carrying only the
// changed key.
func (s *Session) ApplyBlockField(sectionID, blockID string, f Field, value any) document.Condition {
	if f.Kind == FieldNumber {
		n, ok := toFloat(value)
		if !ok {
			return document.ConditionNoop
		}
		return s.model.UpdateBlock(sectionID, blockID, document.Content{f.Key: clampNumber(f, n)})
	}
	return s.model.UpdateBlock(sectionID, blockID, document.Content{f.Key: value})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
