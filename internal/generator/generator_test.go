package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/siteforge/internal/business"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func testOptions() Options {
	return Options{Clock: fixedClock}
}

func acmeRecord() *business.Record {
	rec := &business.Record{
		BusinessName:        "Acme",
		BusinessDescription: "Widgets since 1952.",
		BusinessType:        business.TypeEcommerce,
		Products:            []business.Product{{Name: "Widget", Price: 9.99}},
		ContactInfo:         business.ContactInfo{Email: "hi@acme.test", Phone: "+1 555 0100"},
		NeedsPrivacyPolicy:  true,
	}
	_, err := rec.Validate()
	if err != nil {
		panic(err)
	}
	return rec
}

func firstTemplate(t *testing.T, rec *business.Record) Template {
	t.Helper()
	templates, err := New().Generate(rec, testOptions())
	require.NoError(t, err)
	require.NotEmpty(t, templates)
	return templates[0]
}

func TestGenerateAcmeScenario(t *testing.T) {
	tpl := firstTemplate(t, acmeRecord())

	index := tpl.Files[FileIndex]
	require.NotEmpty(t, index)
	assert.Contains(t, index, "Widget")
	assert.Contains(t, index, "$9.99")
	assert.Contains(t, index, FilePrivacy)

	_, ok := tpl.Files[FilePrivacy]
	assert.True(t, ok, "privacy policy page must be emitted")
}

func TestGenerateIdempotent(t *testing.T) {
	rec := acmeRecord()
	g := New()
	first, err := g.Generate(rec, testOptions())
	require.NoError(t, err)
	second, err := g.Generate(rec, testOptions())
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Files, second[i].Files, "variant %s", first[i].Name)
	}
}

func TestPolicyFlagControlsFileAndLinks(t *testing.T) {
	rec := acmeRecord()
	withPolicy := firstTemplate(t, rec)

	rec.NeedsPrivacyPolicy = false
	withoutPolicy := firstTemplate(t, rec)

	_, ok := withoutPolicy.Files[FilePrivacy]
	assert.False(t, ok, "file must disappear with the flag")

	for name, content := range withoutPolicy.Files {
		assert.NotContains(t, content, FilePrivacy, "no page may still link %s", name)
	}

	// Everything except the policy page and the pages that linked it is unchanged.
	for name, content := range withoutPolicy.Files {
		if name == FileStyles || name == FileCart {
			assert.Equal(t, withPolicy.Files[name], content)
		}
	}

	// Toggling back restores file and links.
	rec.NeedsPrivacyPolicy = true
	restored := firstTemplate(t, rec)
	assert.Equal(t, withPolicy.Files, restored.Files)
}

func TestAlwaysPresentFiles(t *testing.T) {
	rec := acmeRecord()
	rec.Products = nil
	rec.NeedsPrivacyPolicy = false
	tpl := firstTemplate(t, rec)

	for _, name := range []string{FileIndex, FileStyles, FileContact, FileAbout} {
		_, ok := tpl.Files[name]
		assert.True(t, ok, "missing %s", name)
	}
	_, ok := tpl.Files[FileProducts]
	assert.False(t, ok, "no products page without products")
	_, ok = tpl.Files[FileCart]
	assert.False(t, ok, "no cart script without products")
}

func TestEmptyBackedSectionsOmitted(t *testing.T) {
	rec := acmeRecord()
	rec.Products = nil
	rec.Reviews = nil
	rec.FAQs = nil
	tpl := firstTemplate(t, rec)

	index := tpl.Files[FileIndex]
	assert.NotContains(t, index, "class=\"products\"")
	assert.NotContains(t, index, "class=\"testimonials\"")
	assert.NotContains(t, index, "class=\"faq\"")
	// Unconditional sections stay.
	assert.Contains(t, index, "class=\"value-props\"")
	assert.Contains(t, index, "class=\"cta-banner\"")
}

func TestServicesPageForServiceBusiness(t *testing.T) {
	rec := acmeRecord()
	rec.BusinessType = business.TypeService
	rec.Products = nil
	rec.Services = []business.Service{{Name: "Tune-Up", Price: 49, Description: "Full check.", Duration: "45 min"}}
	require.NotPanics(t, func() { rec.Validate() })

	tpl := firstTemplate(t, rec)
	services, ok := tpl.Files[FileServices]
	require.True(t, ok)
	assert.Contains(t, services, "Tune-Up")
	assert.Contains(t, services, "45 min")
	_, ok = tpl.Files[FileProducts]
	assert.False(t, ok)
	_, ok = tpl.Files[FileCart]
	assert.False(t, ok, "cart is ecommerce-only")
}

func TestUnknownBusinessTypeFallsBack(t *testing.T) {
	rec := acmeRecord()
	rec.BusinessType = business.Type("nonprofit").Normalize()

	tpl := firstTemplate(t, rec)
	assert.NotEmpty(t, tpl.Files[FileIndex])
	_, ok := tpl.Files[FileProducts]
	assert.False(t, ok, "generic set has no catalog pages")
}

func TestPolicyCopyScopedToBusinessType(t *testing.T) {
	rec := acmeRecord()
	rec.NeedsShippingPolicy = true
	ecommerce := firstTemplate(t, rec)

	rec.BusinessType = business.TypeService
	service := firstTemplate(t, rec)

	assert.Contains(t, ecommerce.Files[FileShipping], "tracking")
	assert.Contains(t, service.Files[FileShipping], "no physical goods")
	assert.NotEqual(t, ecommerce.Files[FileShipping], service.Files[FileShipping])
}

func TestUserTextIsEscaped(t *testing.T) {
	rec := acmeRecord()
	rec.BusinessName = `<script>alert("x")</script>`
	_, err := rec.Validate()
	require.NoError(t, err)

	tpl := firstTemplate(t, rec)
	assert.NotContains(t, tpl.Files[FileIndex], `<script>alert`)
	assert.Contains(t, tpl.Files[FileIndex], "&lt;script&gt;")
}

func TestVariantCountLimitsOutput(t *testing.T) {
	templates, err := New().Generate(acmeRecord(), Options{VariantCount: 1, Clock: fixedClock})
	require.NoError(t, err)
	assert.Len(t, templates, 1)
	assert.Equal(t, "tpl-modern", templates[0].ID)
}

func TestVariantsDiffer(t *testing.T) {
	templates, err := New().Generate(acmeRecord(), testOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(templates), 3)
	assert.NotEqual(t, templates[0].Files[FileStyles], templates[1].Files[FileStyles])
	assert.NotEqual(t, templates[1].Files[FileStyles], templates[2].Files[FileStyles])
}

func TestCopyrightYearFromClock(t *testing.T) {
	tpl := firstTemplate(t, acmeRecord())
	assert.Contains(t, tpl.Files[FileIndex], "&copy; 2026 Acme")
}

func TestGeneratedPagesParseAsHTML(t *testing.T) {
	tpl := firstTemplate(t, acmeRecord())
	for name, content := range tpl.Files {
		if !strings.HasSuffix(name, ".html") {
			continue
		}
		_, err := html.Parse(strings.NewReader(content))
		assert.NoError(t, err, "file %s", name)
		assert.Contains(t, content, "<!DOCTYPE html>", "file %s", name)
	}
}

func TestMissingImageRendersPlaceholder(t *testing.T) {
	tpl := firstTemplate(t, acmeRecord())
	assert.Contains(t, tpl.Files[FileIndex], "image-placeholder")
	assert.Contains(t, tpl.Files[FileIndex], ">W</div>")
}

func TestGenerateNilRecord(t *testing.T) {
	_, err := New().Generate(nil, testOptions())
	assert.Error(t, err)
}

func TestGenerateVariantUnknown(t *testing.T) {
	_, err := New().GenerateVariant(acmeRecord(), "retro", testOptions())
	assert.Error(t, err)
}
