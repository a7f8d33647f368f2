package preview

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/siteforge/internal/document"
)

// themeStyles derives the preview stylesheet from theme tokens. Built in a
// fixed order so identical themes produce identical bytes.
func themeStyles(t document.ThemeSettings) string {
	var b strings.Builder

	fmt.Fprintf(&b, `* { box-sizing: border-box; margin: 0; padding: 0; }
body {
  font-family: %s;
  font-weight: %d;
  line-height: %.2f;
  letter-spacing: %s;
  color: %s;
  background: %s;
}
h1, h2, h3 { font-family: %s; font-weight: %d; }
.container { max-width: %s; margin: 0 auto; padding: 0 1rem; }
.sf-section { padding: %s 0; }
.grid { display: grid; gap: %s; grid-template-columns: repeat(3, 1fr); }
.card { border: 1px solid rgba(127,127,127,0.25); border-radius: %s; padding: 1.25rem; }
.card .rating { color: %s; }
.button { display: inline-block; padding: 0.75rem 1.5rem; background: %s; color: %s;
  border-radius: %s; text-decoration: none; }
.sf-placeholder { border: 1px dashed rgba(127,127,127,0.5); padding: 1rem;
  text-align: center; color: %s; border-radius: %s; }
`,
		t.Typography.FontFamily, t.Typography.BaseWeight, t.Typography.LineHeight,
		t.Typography.LetterSpacing, t.Colors.Text, t.Colors.Background,
		t.Typography.HeadingFamily, t.Typography.HeadingWeight,
		t.Layout.ContainerWidth, t.Layout.SectionSpacing, t.Layout.GridGap,
		t.Layout.Radius, t.Colors.Accent, t.Colors.Primary, t.Colors.Background,
		t.Layout.Radius, t.Colors.Secondary, t.Layout.Radius)

	// One hide class per viewport, each scoped by its own media query. The
	// booleans stay independent all the way into CSS.
	fmt.Fprintf(&b, `
@media (min-width: %dpx) {
  .sf-hide-desktop { display: none; }
}
@media (min-width: %dpx) and (max-width: %dpx) {
  .sf-hide-tablet { display: none; }
  .grid { grid-template-columns: repeat(2, 1fr); }
}
@media (max-width: %dpx) {
  .sf-hide-mobile { display: none; }
  .grid { grid-template-columns: 1fr; }
}
`, t.Breakpoints.Tablet+1, t.Breakpoints.Mobile+1, t.Breakpoints.Tablet, t.Breakpoints.Mobile)

	return b.String()
}
