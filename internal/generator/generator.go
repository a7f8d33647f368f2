// Package generator turns a business record into complete multi-file static
// site bundles, one per registered template variant. Generation is a pure
// transformation: identical inputs produce byte-identical bundles, with the
// current calendar year in the footer as the single documented exception.
package generator

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/siteforge/internal/business"
	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
	"git.home.luguber.info/inful/siteforge/internal/logfields"
	"git.home.luguber.info/inful/siteforge/internal/metrics"
)

// Template is one generated bundle: a name and a filename-to-content map.
type Template struct {
	ID    string
	Name  string
	Files map[string]string
}

// Options tunes a generation run. The zero value generates every registered
// variant with en-US/USD formatting and the real clock.
type Options struct {
	// VariantCount limits how many variants are generated (0 = all).
	VariantCount int
	// Locale and Currency drive price formatting.
	Locale   string
	Currency string
	// Clock supplies the copyright year. Tests pin it for byte-stable output.
	Clock func() time.Time
}

func (o *Options) applyDefaults() {
	if o.Locale == "" {
		o.Locale = "en-US"
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
}

// Generator produces site bundles. It carries no per-run state; the recorder
// is optional instrumentation.
type Generator struct {
	recorder metrics.Recorder
}

// New creates a Generator with no-op instrumentation.
func New() *Generator {
	return &Generator{recorder: metrics.NoopRecorder{}}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// Generate builds one bundle per variant. The record must already be
// validated; generation itself never fails on missing optional fields.
func (g *Generator) Generate(rec *business.Record, opts Options) ([]Template, error) {
	if rec == nil {
		return nil, sferrors.New(sferrors.CategoryGenerate, sferrors.SeverityFatal, "business record is required")
	}
	opts.applyDefaults()

	variants := Variants()
	if opts.VariantCount > 0 && opts.VariantCount < len(variants) {
		variants = variants[:opts.VariantCount]
	}

	started := opts.Clock()
	templates := make([]Template, 0, len(variants))
	for _, v := range variants {
		t := g.generateVariant(rec, v, opts)
		templates = append(templates, t)
		slog.Debug("variant generated",
			logfields.Variant(v.Name()), logfields.Files(len(t.Files)))
	}
	g.recorder.ObserveGenerateDuration(time.Since(started))
	g.recorder.IncGenerateOutcome(metrics.ResultSuccess)
	return templates, nil
}

// GenerateVariant builds the bundle for one named variant.
func (g *Generator) GenerateVariant(rec *business.Record, name string, opts Options) (Template, error) {
	v := GetVariant(name)
	if v == nil {
		return Template{}, sferrors.UnknownVariant(name)
	}
	opts.applyDefaults()
	return g.generateVariant(rec, v, opts), nil
}

func (g *Generator) generateVariant(rec *business.Record, v Variant, opts Options) Template {
	ctx := &pageContext{
		rec:     rec,
		variant: v,
		prices:  newPriceFormatter(opts.Locale, opts.Currency),
		year:    opts.Clock().Year(),
	}

	files := map[string]string{
		FileStyles:  stylesheet(v.Theme()),
		FileIndex:   ctx.composeIndex(),
		FileAbout:   ctx.aboutPage(),
		FileContact: ctx.contactPage(),
	}
	if ctx.emitProductsPage() {
		files[FileProducts] = ctx.productsPage()
	}
	if ctx.emitServicesPage() {
		files[FileServices] = ctx.servicesPage()
	}
	if ctx.ecommerce() {
		files[FileCart] = ctx.cartScript()
	}
	for name, content := range ctx.policyFiles() {
		files[name] = content
	}

	return Template{
		ID:    "tpl-" + v.Name(),
		Name:  v.DisplayName(),
		Files: files,
	}
}
