package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteforge/internal/business"
)

func seedRecord() *business.Record {
	rec := &business.Record{
		BusinessName:        "Acme",
		BusinessDescription: "Widgets since 1952.",
		BusinessType:        business.TypeEcommerce,
		Products:            []business.Product{{Name: "Widget", Price: 9.99, Description: "A widget."}},
		Reviews:             []business.Review{{Name: "Pat", Rating: 5, Text: "Great."}},
		ContactInfo:         business.ContactInfo{Email: "hi@acme.test", Phone: "+1 555 0100"},
	}
	return rec
}

func sectionTypes(sections []Section) []SectionType {
	out := make([]SectionType, len(sections))
	for i, s := range sections {
		out[i] = s.Type
	}
	return out
}

func TestSeedOrdering(t *testing.T) {
	sections := SeedFromRecord(seedRecord())
	assert.Equal(t, []SectionType{
		SectionHero, SectionProducts, SectionTestimonials,
		SectionFeatures, SectionCTA, SectionContact,
	}, sectionTypes(sections))
}

func TestSeedOmitsEmptyBackedSections(t *testing.T) {
	rec := seedRecord()
	rec.Products = nil
	rec.Reviews = nil

	types := sectionTypes(SeedFromRecord(rec))
	assert.NotContains(t, types, SectionProducts)
	assert.NotContains(t, types, SectionServices)
	assert.NotContains(t, types, SectionTestimonials)
	assert.NotContains(t, types, SectionFAQ)
}

func TestSeedCopiesRecordData(t *testing.T) {
	sections := SeedFromRecord(seedRecord())

	require.Equal(t, SectionHero, sections[0].Type)
	assert.Equal(t, "Acme", sections[0].Content["headline"])

	items, ok := sections[1].Content["items"].([]Content)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0]["name"])
	assert.Equal(t, 9.99, items[0]["price"])
}

func TestSeededSectionsHaveUniqueIDs(t *testing.T) {
	m := NewModel()
	m.Replace(SeedFromRecord(seedRecord()), DefaultTheme())
	require.NoError(t, m.CheckInvariants())
	assert.Equal(t, 6, m.Len())
}
