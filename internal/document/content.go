package document

// Default content payloads per section type. Keys here are the contract the
// editor schemas and the preview serializers share; renaming a key breaks
// saved projects.

// DefaultContent returns the type-specific default payload for a new section.
// Unknown types get an empty payload; the renderer will still show them as a
// labeled placeholder.
func DefaultContent(typ SectionType) Content {
	switch typ {
	case SectionHero:
		return Content{
			"headline":   "Welcome",
			"subheading": "Tell visitors what you do in one sentence.",
			"ctaLabel":   "Get Started",
			"ctaTarget":  "#contact",
		}
	case SectionFeatures:
		return Content{
			"heading": "Why Choose Us",
			"items":   []Content{},
		}
	case SectionProducts:
		return Content{
			"heading": "Our Products",
			"items":   []Content{},
		}
	case SectionServices:
		return Content{
			"heading": "Our Services",
			"items":   []Content{},
		}
	case SectionTestimonials:
		return Content{
			"heading": "What Customers Say",
			"items":   []Content{},
		}
	case SectionContact:
		return Content{
			"heading": "Get In Touch",
			"email":   "",
			"phone":   "",
			"address": "",
		}
	case SectionAbout:
		return Content{
			"heading": "About Us",
			"body":    "",
		}
	case SectionGallery:
		return Content{
			"heading": "Gallery",
			"images":  []string{},
		}
	case SectionPricing:
		return Content{
			"heading": "Pricing",
			"items":   []Content{},
		}
	case SectionFAQ:
		return Content{
			"heading": "Frequently Asked Questions",
			"items":   []Content{},
		}
	case SectionCTA:
		return Content{
			"headline": "Ready to get started?",
			"ctaLabel": "Contact Us",
			"ctaTarget": "#contact",
		}
	}
	return Content{}
}

// DefaultBlockContent returns the default payload for a new block.
func DefaultBlockContent(typ BlockType) Content {
	switch typ {
	case BlockText:
		return Content{"text": "Lorem ipsum dolor sit amet."}
	case BlockHeading:
		return Content{"text": "Heading", "level": 2}
	case BlockImage:
		return Content{"src": "", "alt": ""}
	case BlockButton:
		return Content{"label": "Click Me", "target": "#"}
	case BlockSpacer:
		return Content{"height": "2rem"}
	case BlockDivider:
		return Content{}
	}
	return Content{}
}
