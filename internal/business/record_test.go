package business

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *Record {
	return &Record{
		BusinessName:        "Acme",
		BusinessDescription: "Widgets since 1952.",
		BusinessType:        TypeEcommerce,
		ContactInfo:         ContactInfo{Email: "hi@acme.test", Phone: "+1 555 0100"},
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing name", func(r *Record) { r.BusinessName = "" }},
		{"missing email", func(r *Record) { r.ContactInfo.Email = "" }},
		{"missing phone", func(r *Record) { r.ContactInfo.Phone = "  " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(r)
			_, err := r.Validate()
			assert.Error(t, err)
		})
	}
}

func TestValidateSubstitutesDefaults(t *testing.T) {
	r := validRecord()
	r.BusinessDescription = ""
	r.Products = []Product{{Name: "Widget", Price: 9.99}}

	gaps, err := r.Validate()
	require.NoError(t, err)

	assert.Equal(t, DefaultDescription, r.BusinessDescription)
	assert.Equal(t, DefaultItemBlurb, r.Products[0].Description)
	fields := make([]string, 0, len(gaps))
	for _, g := range gaps {
		fields = append(fields, g.Field)
	}
	assert.Contains(t, fields, "businessDescription")
	assert.Contains(t, fields, "products[0].description")
}

func TestValidateClampsRatings(t *testing.T) {
	r := validRecord()
	r.Reviews = []Review{{Name: "A", Rating: 0, Text: "ok"}, {Name: "B", Rating: 9, Text: "great"}}
	_, err := r.Validate()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Reviews[0].Rating)
	assert.Equal(t, 5, r.Reviews[1].Rating)
}

func TestTypeNormalize(t *testing.T) {
	assert.Equal(t, TypeEcommerce, Type("ecommerce").Normalize())
	assert.Equal(t, TypeOther, Type("nonprofit").Normalize())
	assert.Equal(t, TypeOther, Type("").Normalize())
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "business.yaml")
	content := []byte(`businessName: Acme
businessDescription: Widgets since 1952.
businessType: ecommerce
products:
  - name: Widget
    price: 9.99
contactInfo:
  email: hi@acme.test
  phone: "+1 555 0100"
needsPrivacyPolicy: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	rec, gaps, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.BusinessName)
	assert.True(t, rec.NeedsPrivacyPolicy)
	assert.True(t, rec.HasProducts())
	assert.NotEmpty(t, gaps) // product description substituted
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
