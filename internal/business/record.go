// Package business defines the normalized input record describing the
// business a site is generated for, plus loading and validation.
package business

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
)

// Type classifies the business for template selection and policy copy.
type Type string

const (
	TypeEcommerce Type = "ecommerce"
	TypeService   Type = "service"
	TypeAgency    Type = "agency"
	TypeOther     Type = "other"
)

// Normalize maps unknown business types onto TypeOther so downstream
// template selection never has to handle unrecognized values.
func (t Type) Normalize() Type {
	switch t {
	case TypeEcommerce, TypeService, TypeAgency, TypeOther:
		return t
	}
	return TypeOther
}

// Product is a sellable item. Price is in the project currency's major unit.
type Product struct {
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	ImageURL    string  `yaml:"imageUrl,omitempty"`
}

// Service is an offered service, optionally with a duration label ("45 min").
type Service struct {
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	Duration    string  `yaml:"duration,omitempty"`
}

// Review is a customer testimonial. Rating is clamped to 1..5 on load.
type Review struct {
	Name   string `yaml:"name"`
	Rating int    `yaml:"rating"`
	Text   string `yaml:"text"`
	Date   string `yaml:"date,omitempty"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// ContactInfo carries the ways to reach the business. Email and Phone are
// the only hard-required fields of the whole record besides name/description.
type ContactInfo struct {
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address,omitempty"`
	Hours   string `yaml:"hours,omitempty"`
}

// SocialMedia holds optional profile links, keyed by platform.
type SocialMedia struct {
	Facebook  string `yaml:"facebook,omitempty"`
	Instagram string `yaml:"instagram,omitempty"`
	Twitter   string `yaml:"twitter,omitempty"`
	LinkedIn  string `yaml:"linkedin,omitempty"`
}

// Record is the normalized business description handed to the generator.
// It is treated as immutable once loaded.
type Record struct {
	BusinessName        string      `yaml:"businessName"`
	BusinessDescription string      `yaml:"businessDescription"`
	Industry            string      `yaml:"industry,omitempty"`
	TargetAudience      string      `yaml:"targetAudience,omitempty"`
	BusinessType        Type        `yaml:"businessType"`
	Products            []Product   `yaml:"products,omitempty"`
	Services            []Service   `yaml:"services,omitempty"`
	Reviews             []Review    `yaml:"reviews,omitempty"`
	FAQs                []FAQ       `yaml:"faqs,omitempty"`
	ContactInfo         ContactInfo `yaml:"contactInfo"`
	SocialMedia         SocialMedia `yaml:"socialMedia,omitempty"`

	// Policy flags. Each one deterministically controls exactly one
	// generated file plus its footer/nav links.
	NeedsPrivacyPolicy   bool `yaml:"needsPrivacyPolicy"`
	NeedsTermsOfService  bool `yaml:"needsTermsOfService"`
	NeedsRefundPolicy    bool `yaml:"needsRefundPolicy"`
	NeedsShippingPolicy  bool `yaml:"needsShippingPolicy"`
}

// Gap records a non-fatal validation gap: an optional field was missing and
// a documented default was substituted in its place.
type Gap struct {
	Field   string
	Default string
}

func (g Gap) String() string {
	return fmt.Sprintf("%s: substituted %q", g.Field, g.Default)
}

// Placeholder copy substituted for absent optional fields. Documented here
// so generated output stays predictable.
const (
	DefaultDescription    = "We are dedicated to providing quality products and services to our customers."
	DefaultItemBlurb      = "Crafted with care and backed by our satisfaction guarantee."
	DefaultIndustry       = "general"
	DefaultTargetAudience = "customers"
	DefaultHours          = "Mon-Fri 9:00-17:00"
)

// Load reads and validates a Record from a YAML file.
func Load(path string) (*Record, []Gap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, sferrors.RecordLoadError(path, err)
	}
	var rec Record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return nil, nil, sferrors.RecordLoadError(path, err)
	}
	gaps, err := rec.Validate()
	if err != nil {
		return nil, nil, err
	}
	return &rec, gaps, nil
}

// Validate checks hard requirements and fills documented defaults for the
// rest, returning the list of substitutions applied. Well-typed but
// incomplete data never fails; only the four required fields do.
func (r *Record) Validate() ([]Gap, error) {
	for _, req := range []struct{ field, value string }{
		{"businessName", r.BusinessName},
		{"businessDescription", r.BusinessDescription},
		{"contactInfo.email", r.ContactInfo.Email},
		{"contactInfo.phone", r.ContactInfo.Phone},
	} {
		if strings.TrimSpace(req.value) == "" {
			// businessDescription has a documented boilerplate default; the
			// other three are genuinely required.
			if req.field == "businessDescription" {
				continue
			}
			return nil, sferrors.RecordFieldRequired(req.field)
		}
	}

	var gaps []Gap
	substitute := func(target *string, field, def string) {
		if strings.TrimSpace(*target) == "" {
			*target = def
			gaps = append(gaps, Gap{Field: field, Default: def})
		}
	}

	substitute(&r.BusinessDescription, "businessDescription", DefaultDescription)
	substitute(&r.Industry, "industry", DefaultIndustry)
	substitute(&r.TargetAudience, "targetAudience", DefaultTargetAudience)
	substitute(&r.ContactInfo.Hours, "contactInfo.hours", DefaultHours)

	r.BusinessType = r.BusinessType.Normalize()

	for i := range r.Products {
		substitute(&r.Products[i].Description, fmt.Sprintf("products[%d].description", i), DefaultItemBlurb)
	}
	for i := range r.Services {
		substitute(&r.Services[i].Description, fmt.Sprintf("services[%d].description", i), DefaultItemBlurb)
	}
	for i := range r.Reviews {
		if r.Reviews[i].Rating < 1 {
			r.Reviews[i].Rating = 1
		}
		if r.Reviews[i].Rating > 5 {
			r.Reviews[i].Rating = 5
		}
	}
	return gaps, nil
}

// HasProducts reports whether the product catalog is non-empty.
func (r *Record) HasProducts() bool { return len(r.Products) > 0 }

// HasServices reports whether the service catalog is non-empty.
func (r *Record) HasServices() bool { return len(r.Services) > 0 }
