package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyProject     = "project"
	KeySection     = "section"
	KeySectionType = "section_type"
	KeyBlock       = "block"
	KeyVariant     = "variant"
	KeyTemplate    = "template"
	KeyFile        = "file"
	KeyFiles       = "files"
	KeyMutation    = "mutation"
	KeyDurationMS  = "duration_ms"
	KeyPath        = "path"
	KeyAddr        = "addr"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Project(id string) slog.Attr     { return slog.String(KeyProject, id) }
func Section(id string) slog.Attr     { return slog.String(KeySection, id) }
func SectionType(t string) slog.Attr  { return slog.String(KeySectionType, t) }
func Block(id string) slog.Attr       { return slog.String(KeyBlock, id) }
func Variant(name string) slog.Attr   { return slog.String(KeyVariant, name) }
func Template(name string) slog.Attr  { return slog.String(KeyTemplate, name) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Files(n int) slog.Attr           { return slog.Int(KeyFiles, n) }
func Mutation(op string) slog.Attr    { return slog.String(KeyMutation, op) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
