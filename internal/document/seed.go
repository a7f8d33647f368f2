package document

import (
	"git.home.luguber.info/inful/siteforge/internal/business"
)

// SeedFromRecord builds the initial section list for the interactive editor
// path. Ordering mirrors the generator's fixed home-page composition; a
// section backed by an empty data array is omitted entirely rather than
// seeded empty.
func SeedFromRecord(rec *business.Record) []Section {
	var sections []Section

	hero := NewSection(SectionHero)
	hero.Content["headline"] = rec.BusinessName
	hero.Content["subheading"] = rec.BusinessDescription
	sections = append(sections, hero)

	if rec.HasProducts() {
		sec := NewSection(SectionProducts)
		items := make([]Content, 0, len(rec.Products))
		for _, p := range rec.Products {
			items = append(items, Content{
				"name":        p.Name,
				"price":       p.Price,
				"description": p.Description,
				"imageUrl":    p.ImageURL,
			})
		}
		sec.Content["items"] = items
		sections = append(sections, sec)
	}

	if rec.HasServices() {
		sec := NewSection(SectionServices)
		items := make([]Content, 0, len(rec.Services))
		for _, s := range rec.Services {
			items = append(items, Content{
				"name":        s.Name,
				"price":       s.Price,
				"description": s.Description,
				"duration":    s.Duration,
			})
		}
		sec.Content["items"] = items
		sections = append(sections, sec)
	}

	if len(rec.Reviews) > 0 {
		sec := NewSection(SectionTestimonials)
		items := make([]Content, 0, len(rec.Reviews))
		for _, r := range rec.Reviews {
			items = append(items, Content{
				"name":   r.Name,
				"rating": r.Rating,
				"text":   r.Text,
				"date":   r.Date,
			})
		}
		sec.Content["items"] = items
		sections = append(sections, sec)
	}

	if len(rec.FAQs) > 0 {
		sec := NewSection(SectionFAQ)
		items := make([]Content, 0, len(rec.FAQs))
		for _, f := range rec.FAQs {
			items = append(items, Content{"question": f.Question, "answer": f.Answer})
		}
		sec.Content["items"] = items
		sections = append(sections, sec)
	}

	features := NewSection(SectionFeatures)
	features.Content["items"] = []Content{
		{"title": "Quality First", "text": rec.BusinessDescription},
		{"title": "For " + rec.TargetAudience, "text": "Built around the people we serve."},
		{"title": "Easy To Reach", "text": "Call us or send an email any time."},
	}
	sections = append(sections, features)

	cta := NewSection(SectionCTA)
	cta.Content["headline"] = "Ready to work with " + rec.BusinessName + "?"
	sections = append(sections, cta)

	contact := NewSection(SectionContact)
	contact.Content["email"] = rec.ContactInfo.Email
	contact.Content["phone"] = rec.ContactInfo.Phone
	contact.Content["address"] = rec.ContactInfo.Address
	sections = append(sections, contact)

	return sections
}
