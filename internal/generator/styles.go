package generator

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/siteforge/internal/document"
)

// stylesheet builds the shared styles.css for one variant theme. Output is
// assembled in a fixed order so identical themes produce identical bytes.
func stylesheet(t document.ThemeSettings) string {
	var b strings.Builder

	fmt.Fprintf(&b, `:root {
  --color-primary: %s;
  --color-secondary: %s;
  --color-accent: %s;
  --color-text: %s;
  --color-background: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
  --font-body: %s;
  --font-heading: %s;
  --container-width: %s;
  --section-spacing: %s;
  --grid-gap: %s;
  --radius: %s;
}
`,
		t.Colors.Primary, t.Colors.Secondary, t.Colors.Accent, t.Colors.Text,
		t.Colors.Background, t.Colors.Success, t.Colors.Error, t.Colors.Warning,
		t.Typography.FontFamily, t.Typography.HeadingFamily,
		t.Layout.ContainerWidth, t.Layout.SectionSpacing, t.Layout.GridGap, t.Layout.Radius)

	fmt.Fprintf(&b, `
* { box-sizing: border-box; margin: 0; padding: 0; }
body {
  font-family: var(--font-body);
  font-weight: %d;
  line-height: %.2f;
  letter-spacing: %s;
  color: var(--color-text);
  background: var(--color-background);
}
h1, h2, h3 { font-family: var(--font-heading); font-weight: %d; }
.container { max-width: var(--container-width); margin: 0 auto; padding: 0 1rem; }
section { padding: var(--section-spacing) 0; }
a { color: var(--color-primary); }
`,
		t.Typography.BaseWeight, t.Typography.LineHeight, t.Typography.LetterSpacing,
		t.Typography.HeadingWeight)

	b.WriteString(`
.site-header { border-bottom: 1px solid rgba(127,127,127,0.25); padding: 1rem 0; }
.site-header .container { display: flex; justify-content: space-between; align-items: center; }
.site-header nav a { margin-left: 1.25rem; text-decoration: none; }
.brand { font-family: var(--font-heading); font-size: 1.25rem; text-decoration: none; }

.hero { text-align: center; }
.hero.hero-split { text-align: left; }
.hero h1 { font-size: ` + document.SizeScale[5] + `; margin-bottom: 1rem; }
.hero p { font-size: ` + document.SizeScale[2] + `; color: var(--color-secondary); }
.hero .cta { display: inline-block; margin-top: 1.5rem; }

.grid { display: grid; gap: var(--grid-gap); grid-template-columns: repeat(3, 1fr); }
.card { border: 1px solid rgba(127,127,127,0.25); border-radius: var(--radius); padding: 1.25rem; }
.card .price { color: var(--color-primary); font-weight: 700; }
.card img { max-width: 100%; border-radius: var(--radius); }
.card .image-placeholder {
  display: flex; align-items: center; justify-content: center;
  height: 8rem; border-radius: var(--radius);
  background: var(--color-secondary); color: var(--color-background);
  font-size: ` + document.SizeScale[4] + `;
}

.button {
  display: inline-block; padding: 0.75rem 1.5rem; border: 0; cursor: pointer;
  background: var(--color-primary); color: var(--color-background);
  border-radius: var(--radius); text-decoration: none; font-size: 1rem;
}
.button.accent { background: var(--color-accent); }

.testimonial .rating { color: var(--color-accent); }
.faq-item { border-bottom: 1px solid rgba(127,127,127,0.25); padding: 1rem 0; }
.cta-banner { background: var(--color-primary); color: var(--color-background); text-align: center; }
.cta-banner a { color: var(--color-background); }

.site-footer { border-top: 1px solid rgba(127,127,127,0.25); padding: 2rem 0; color: var(--color-secondary); }
.site-footer nav a { margin-right: 1rem; }

.cart-widget { position: fixed; right: 1rem; bottom: 1rem; background: var(--color-background);
  border: 1px solid rgba(127,127,127,0.25); border-radius: var(--radius); padding: 1rem; min-width: 16rem; }
.cart-widget .line { display: flex; justify-content: space-between; margin-bottom: 0.5rem; }
.cart-widget .total { font-weight: 700; }
`)

	fmt.Fprintf(&b, `
@media (max-width: %dpx) {
  .grid { grid-template-columns: repeat(2, 1fr); }
}
@media (max-width: %dpx) {
  .grid { grid-template-columns: 1fr; }
  .site-header .container { flex-direction: column; gap: 0.5rem; }
}
`, t.Breakpoints.Tablet, t.Breakpoints.Mobile)

	return b.String()
}
