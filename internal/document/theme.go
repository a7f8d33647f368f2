package document

// Global styling tokens applied across all sections. Patches merge per
// group: applying a ColorsPatch never touches typography or layout, and
// within a group only explicitly set fields change.

// Colors holds the theme palette.
type Colors struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
	Success    string `yaml:"success"`
	Error      string `yaml:"error"`
	Warning    string `yaml:"warning"`
}

// Typography holds font settings. The size scale is fixed (SizeScale) and
// not patchable per project.
type Typography struct {
	FontFamily    string  `yaml:"fontFamily"`
	HeadingFamily string  `yaml:"headingFamily"`
	BaseWeight    int     `yaml:"baseWeight"`
	HeadingWeight int     `yaml:"headingWeight"`
	LineHeight    float64 `yaml:"lineHeight"`
	LetterSpacing string  `yaml:"letterSpacing"`
}

// Layout holds structural spacing tokens.
type Layout struct {
	ContainerWidth string `yaml:"containerWidth"`
	SectionSpacing string `yaml:"sectionSpacing"`
	GridGap        string `yaml:"gridGap"`
	Radius         string `yaml:"radius"`
}

// Breakpoints holds the responsive cutoffs in pixels.
type Breakpoints struct {
	Mobile  int `yaml:"mobile"`
	Tablet  int `yaml:"tablet"`
	Desktop int `yaml:"desktop"`
}

// SizeScale is the fixed typographic scale shared by generator and preview.
var SizeScale = []string{"0.875rem", "1rem", "1.25rem", "1.563rem", "1.953rem", "2.441rem", "3.052rem"}

// ThemeSettings bundles all styling token groups.
type ThemeSettings struct {
	Colors      Colors      `yaml:"colors"`
	Typography  Typography  `yaml:"typography"`
	Layout      Layout      `yaml:"layout"`
	Breakpoints Breakpoints `yaml:"breakpoints"`
}

// DefaultTheme returns the baseline theme used when a project carries none.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		Colors: Colors{
			Primary:    "#2563eb",
			Secondary:  "#475569",
			Accent:     "#f59e0b",
			Text:       "#0f172a",
			Background: "#ffffff",
			Success:    "#16a34a",
			Error:      "#dc2626",
			Warning:    "#d97706",
		},
		Typography: Typography{
			FontFamily:    "'Inter', system-ui, sans-serif",
			HeadingFamily: "'Inter', system-ui, sans-serif",
			BaseWeight:    400,
			HeadingWeight: 700,
			LineHeight:    1.6,
			LetterSpacing: "normal",
		},
		Layout: Layout{
			ContainerWidth: "1120px",
			SectionSpacing: "4rem",
			GridGap:        "1.5rem",
			Radius:         "0.5rem",
		},
		Breakpoints: Breakpoints{Mobile: 480, Tablet: 768, Desktop: 1024},
	}
}

// ColorsPatch is a partial palette update; nil fields are left unchanged.
type ColorsPatch struct {
	Primary    *string `yaml:"primary,omitempty"`
	Secondary  *string `yaml:"secondary,omitempty"`
	Accent     *string `yaml:"accent,omitempty"`
	Text       *string `yaml:"text,omitempty"`
	Background *string `yaml:"background,omitempty"`
	Success    *string `yaml:"success,omitempty"`
	Error      *string `yaml:"error,omitempty"`
	Warning    *string `yaml:"warning,omitempty"`
}

// TypographyPatch is a partial typography update.
type TypographyPatch struct {
	FontFamily    *string  `yaml:"fontFamily,omitempty"`
	HeadingFamily *string  `yaml:"headingFamily,omitempty"`
	BaseWeight    *int     `yaml:"baseWeight,omitempty"`
	HeadingWeight *int     `yaml:"headingWeight,omitempty"`
	LineHeight    *float64 `yaml:"lineHeight,omitempty"`
	LetterSpacing *string  `yaml:"letterSpacing,omitempty"`
}

// LayoutPatch is a partial layout update.
type LayoutPatch struct {
	ContainerWidth *string `yaml:"containerWidth,omitempty"`
	SectionSpacing *string `yaml:"sectionSpacing,omitempty"`
	GridGap        *string `yaml:"gridGap,omitempty"`
	Radius         *string `yaml:"radius,omitempty"`
}

// ThemePatch groups the per-group partial updates. A nil group is untouched.
type ThemePatch struct {
	Colors     *ColorsPatch     `yaml:"colors,omitempty"`
	Typography *TypographyPatch `yaml:"typography,omitempty"`
	Layout     *LayoutPatch     `yaml:"layout,omitempty"`
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Merge applies the patch group by group. Each group merges independently;
// unspecified fields within a patched group keep their current values.
func (t *ThemeSettings) Merge(patch ThemePatch) {
	if p := patch.Colors; p != nil {
		setStr(&t.Colors.Primary, p.Primary)
		setStr(&t.Colors.Secondary, p.Secondary)
		setStr(&t.Colors.Accent, p.Accent)
		setStr(&t.Colors.Text, p.Text)
		setStr(&t.Colors.Background, p.Background)
		setStr(&t.Colors.Success, p.Success)
		setStr(&t.Colors.Error, p.Error)
		setStr(&t.Colors.Warning, p.Warning)
	}
	if p := patch.Typography; p != nil {
		setStr(&t.Typography.FontFamily, p.FontFamily)
		setStr(&t.Typography.HeadingFamily, p.HeadingFamily)
		setInt(&t.Typography.BaseWeight, p.BaseWeight)
		setInt(&t.Typography.HeadingWeight, p.HeadingWeight)
		if p.LineHeight != nil {
			t.Typography.LineHeight = *p.LineHeight
		}
		setStr(&t.Typography.LetterSpacing, p.LetterSpacing)
	}
	if p := patch.Layout; p != nil {
		setStr(&t.Layout.ContainerWidth, p.ContainerWidth)
		setStr(&t.Layout.SectionSpacing, p.SectionSpacing)
		setStr(&t.Layout.GridGap, p.GridGap)
		setStr(&t.Layout.Radius, p.Radius)
	}
}
