// Package preview serializes the editable document model into a single
// self-contained HTML document. Rendering is pure: identical (sections,
// theme, businessName) inputs always produce identical output, and every
// serializer is total: unknown types and absent fields degrade to labeled
// placeholders instead of aborting.
package preview

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/siteforge/internal/document"
	"git.home.luguber.info/inful/siteforge/internal/util/htmlesc"
)

var (
	esc     = htmlesc.Escape
	escAttr = htmlesc.EscapeAttr
)

// sectionRenderer serializes one section type. Adding a section type means
// adding an entry here; renderSection falls back to a placeholder for
// anything missing from the table.
type sectionRenderer func(*strings.Builder, document.Section)

var renderers = map[document.SectionType]sectionRenderer{
	document.SectionHero:         renderHero,
	document.SectionFeatures:     renderCardList("features"),
	document.SectionProducts:     renderItemGrid("products"),
	document.SectionServices:     renderItemGrid("services"),
	document.SectionTestimonials: renderTestimonials,
	document.SectionContact:      renderContact,
	document.SectionAbout:        renderAbout,
	document.SectionGallery:      renderGallery,
	document.SectionPricing:      renderItemGrid("pricing"),
	document.SectionFAQ:          renderFAQ,
	document.SectionCTA:          renderCTA,
}

// Render produces the full preview document. Each viewport visibility flag
// maps to its own hide class scoped by its own media query, so hiding a
// section on one viewport never affects the other two.
func Render(sections []document.Section, theme document.ThemeSettings, businessName string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s — Preview</title>\n", esc(businessName))
	b.WriteString("<style>\n")
	b.WriteString(themeStyles(theme))
	b.WriteString("</style>\n</head>\n<body>\n")
	for _, sec := range sections {
		renderSection(&b, sec)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func renderSection(b *strings.Builder, sec document.Section) {
	classes := []string{"sf-section", "sf-" + string(sec.Type)}
	if !sec.Visible {
		classes = append(classes, "sf-hide-desktop")
	}
	if !sec.TabletVisible {
		classes = append(classes, "sf-hide-tablet")
	}
	if !sec.MobileVisible {
		classes = append(classes, "sf-hide-mobile")
	}
	style := sectionStyle(sec.Settings)
	fmt.Fprintf(b, "<section id=\"%s\" class=\"%s\"%s>\n<div class=\"container\">\n",
		escAttr(sec.ID), strings.Join(classes, " "), style)

	r, ok := renderers[sec.Type]
	if !ok {
		renderUnsupported(b, sec)
	} else {
		r(b, sec)
	}
	for _, blk := range sec.Blocks {
		renderBlock(b, blk)
	}
	b.WriteString("</div>\n</section>\n")
}

func sectionStyle(s document.SectionSettings) string {
	var parts []string
	if s.Background != "" {
		parts = append(parts, "background:"+s.Background)
	}
	if s.Padding != "" {
		parts = append(parts, "padding:"+s.Padding)
	}
	if s.Margin != "" {
		parts = append(parts, "margin:"+s.Margin)
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(" style=\"%s\"", escAttr(strings.Join(parts, ";")))
}

// renderUnsupported keeps rendering total: unrecognized types show up as a
// clearly labeled placeholder naming the type.
func renderUnsupported(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<div class=\"sf-placeholder\">Unsupported section type: %s</div>\n", esc(string(sec.Type)))
}

// text reads a string field from content, with a fallback when absent.
func text(c document.Content, key, fallback string) string {
	if v, ok := c[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// items reads the "items" list, tolerating both []Content and []any, which
// is what a YAML round trip produces.
func items(c document.Content) []document.Content {
	switch v := c["items"].(type) {
	case []document.Content:
		return v
	case []any:
		out := make([]document.Content, 0, len(v))
		for _, e := range v {
			switch m := e.(type) {
			case document.Content:
				out = append(out, m)
			case map[string]any:
				out = append(out, document.Content(m))
			}
		}
		return out
	}
	return nil
}

func renderHero(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<h1>%s</h1>\n<p>%s</p>\n",
		esc(text(sec.Content, "headline", "Untitled")),
		esc(text(sec.Content, "subheading", "Add a subheading to introduce your business.")))
	fmt.Fprintf(b, "<a class=\"button\" href=\"%s\">%s</a>\n",
		escAttr(text(sec.Content, "ctaTarget", "#")),
		esc(text(sec.Content, "ctaLabel", "Learn More")))
}

func renderCardList(kind string) sectionRenderer {
	return func(b *strings.Builder, sec document.Section) {
		fmt.Fprintf(b, "<h2>%s</h2>\n<div class=\"grid\">\n", esc(text(sec.Content, "heading", "Untitled")))
		list := items(sec.Content)
		if len(list) == 0 {
			fmt.Fprintf(b, "<div class=\"sf-placeholder\">No %s yet</div>\n", kind)
		}
		for _, it := range list {
			fmt.Fprintf(b, "<div class=\"card\"><h3>%s</h3><p>%s</p></div>\n",
				esc(text(it, "title", text(it, "name", "Untitled"))),
				esc(text(it, "text", text(it, "description", ""))))
		}
		b.WriteString("</div>\n")
	}
}

func renderItemGrid(kind string) sectionRenderer {
	return func(b *strings.Builder, sec document.Section) {
		fmt.Fprintf(b, "<h2>%s</h2>\n<div class=\"grid\">\n", esc(text(sec.Content, "heading", "Untitled")))
		list := items(sec.Content)
		if len(list) == 0 {
			fmt.Fprintf(b, "<div class=\"sf-placeholder\">No %s yet</div>\n", kind)
		}
		for _, it := range list {
			b.WriteString("<div class=\"card\">")
			fmt.Fprintf(b, "<h3>%s</h3>", esc(text(it, "name", "Untitled")))
			fmt.Fprintf(b, "<p>%s</p>", esc(text(it, "description", "")))
			if price, ok := numeric(it["price"]); ok {
				fmt.Fprintf(b, "<p class=\"price\">%.2f</p>", price)
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	}
}

func renderTestimonials(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<h2>%s</h2>\n<div class=\"grid\">\n", esc(text(sec.Content, "heading", "What Customers Say")))
	for _, it := range items(sec.Content) {
		rating, _ := numeric(it["rating"])
		b.WriteString("<div class=\"card\">")
		fmt.Fprintf(b, "<p class=\"rating\">%s</p>", starGlyphs(int(rating)))
		fmt.Fprintf(b, "<p>%s</p><p><strong>%s</strong></p>",
			esc(text(it, "text", "")), esc(text(it, "name", "Anonymous")))
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func renderContact(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<h2>%s</h2>\n<ul>\n", esc(text(sec.Content, "heading", "Get In Touch")))
	fmt.Fprintf(b, "<li>Email: %s</li>\n", esc(text(sec.Content, "email", "not provided")))
	fmt.Fprintf(b, "<li>Phone: %s</li>\n", esc(text(sec.Content, "phone", "not provided")))
	if addr := text(sec.Content, "address", ""); addr != "" {
		fmt.Fprintf(b, "<li>Address: %s</li>\n", esc(addr))
	}
	b.WriteString("</ul>\n")
}

func renderAbout(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<h2>%s</h2>\n<p>%s</p>\n",
		esc(text(sec.Content, "heading", "About Us")),
		esc(text(sec.Content, "body", "Tell your story here.")))
}

func renderGallery(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<h2>%s</h2>\n<div class=\"grid\">\n", esc(text(sec.Content, "heading", "Gallery")))
	images, _ := sec.Content["images"].([]string)
	if raw, ok := sec.Content["images"].([]any); ok {
		for _, e := range raw {
			if s, ok := e.(string); ok {
				images = append(images, s)
			}
		}
	}
	if len(images) == 0 {
		b.WriteString("<div class=\"sf-placeholder\">No images yet</div>\n")
	}
	for _, img := range images {
		fmt.Fprintf(b, "<img src=\"%s\" alt=\"\">\n", escAttr(img))
	}
	b.WriteString("</div>\n")
}

func renderFAQ(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<h2>%s</h2>\n", esc(text(sec.Content, "heading", "Frequently Asked Questions")))
	for _, it := range items(sec.Content) {
		fmt.Fprintf(b, "<div class=\"faq-item\"><h3>%s</h3><p>%s</p></div>\n",
			esc(text(it, "question", "Question")), esc(text(it, "answer", "")))
	}
}

func renderCTA(b *strings.Builder, sec document.Section) {
	fmt.Fprintf(b, "<h2>%s</h2>\n", esc(text(sec.Content, "headline", "Ready to get started?")))
	fmt.Fprintf(b, "<a class=\"button\" href=\"%s\">%s</a>\n",
		escAttr(text(sec.Content, "ctaTarget", "#")),
		esc(text(sec.Content, "ctaLabel", "Contact Us")))
}

func renderBlock(b *strings.Builder, blk document.Block) {
	classes := []string{"sf-block"}
	if !blk.Settings.Visible {
		return
	}
	if !blk.Settings.TabletVisible {
		classes = append(classes, "sf-hide-tablet")
	}
	if !blk.Settings.MobileVisible {
		classes = append(classes, "sf-hide-mobile")
	}
	fmt.Fprintf(b, "<div class=\"%s\">", strings.Join(classes, " "))
	switch blk.Type {
	case document.BlockText:
		fmt.Fprintf(b, "<p>%s</p>", esc(text(blk.Content, "text", "")))
	case document.BlockHeading:
		level := 2
		if n, ok := numeric(blk.Content["level"]); ok && n >= 1 && n <= 6 {
			level = int(n)
		}
		fmt.Fprintf(b, "<h%d>%s</h%d>", level, esc(text(blk.Content, "text", "Heading")), level)
	case document.BlockImage:
		src := text(blk.Content, "src", "")
		if src == "" {
			b.WriteString("<div class=\"sf-placeholder\">No image selected</div>")
		} else {
			fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\">", escAttr(src), escAttr(text(blk.Content, "alt", "")))
		}
	case document.BlockButton:
		fmt.Fprintf(b, "<a class=\"button\" href=\"%s\">%s</a>",
			escAttr(text(blk.Content, "target", "#")), esc(text(blk.Content, "label", "Button")))
	case document.BlockSpacer:
		fmt.Fprintf(b, "<div style=\"height:%s\"></div>", escAttr(text(blk.Content, "height", "1rem")))
	case document.BlockDivider:
		b.WriteString("<hr>")
	default:
		fmt.Fprintf(b, "<div class=\"sf-placeholder\">Unsupported block type: %s</div>", esc(string(blk.Type)))
	}
	b.WriteString("</div>\n")
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func starGlyphs(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("&#9733;", rating) + strings.Repeat("&#9734;", 5-rating)
}
