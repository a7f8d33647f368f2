package generator

import (
	"bytes"
	"log/slog"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/siteforge/internal/logfields"
	"git.home.luguber.info/inful/siteforge/internal/util/htmlesc"
)

// esc and escAttr alias the shared escaping routine; every user-supplied
// text field in this package must pass through one of them.
var (
	esc     = htmlesc.Escape
	escAttr = htmlesc.EscapeAttr
)

var md = goldmark.New()

// markdownBody renders a markdown-capable long-text field to HTML. Input is
// escaped first so user text cannot inject raw markup; markdown syntax
// operates on the escaped text.
func markdownBody(s string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(esc(s)), &buf); err != nil {
		// Conversion over an in-memory buffer only fails on a broken AST;
		// fall back to an escaped paragraph.
		slog.Warn("markdown conversion failed", logfields.Error(err))
		return "<p>" + esc(s) + "</p>\n"
	}
	return buf.String()
}
