package generator

import (
	"fmt"
	"strings"
)

// Home page section builders. composeIndex drives them in the fixed order:
// hero, products, services, testimonials, FAQ, value propositions, call to
// action. Sections backed by an empty data array are omitted entirely.

func (c *pageContext) composeIndex() string {
	var b strings.Builder
	b.WriteString(c.heroSection())
	if c.rec.HasProducts() {
		b.WriteString(c.productsSection())
	}
	if c.rec.HasServices() {
		b.WriteString(c.servicesSection())
	}
	if len(c.rec.Reviews) > 0 {
		b.WriteString(c.testimonialsSection())
	}
	if len(c.rec.FAQs) > 0 {
		b.WriteString(c.faqSection())
	}
	b.WriteString(c.valuePropsSection())
	b.WriteString(c.ctaSection())
	return c.page("Home", b.String())
}

func (c *pageContext) heroSection() string {
	layout := ""
	if c.variant.HeroLayout() == "split" {
		layout = " hero-split"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<section class=\"hero%s\"><div class=\"container\">\n", layout)
	fmt.Fprintf(&b, "<h1>%s</h1>\n<p>%s</p>\n", esc(c.rec.BusinessName), esc(c.rec.BusinessDescription))
	fmt.Fprintf(&b, "<a class=\"button cta\" href=\"%s\">Get In Touch</a>\n", FileContact)
	b.WriteString("</div></section>\n")
	return b.String()
}

func (c *pageContext) productGrid() string {
	var b strings.Builder
	b.WriteString("<div class=\"grid\">\n")
	for i, p := range c.rec.Products {
		b.WriteString("<div class=\"card\">\n")
		if p.ImageURL != "" {
			fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\">\n", escAttr(p.ImageURL), escAttr(p.Name))
		} else {
			// Missing image renders a styled initial block, never an empty tag.
			fmt.Fprintf(&b, "<div class=\"image-placeholder\">%s</div>\n", esc(initialOf(p.Name)))
		}
		fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s</p>\n<p class=\"price\">%s</p>\n",
			esc(p.Name), esc(p.Description), c.prices.Format(p.Price))
		if c.ecommerce() {
			fmt.Fprintf(&b, "<button class=\"button accent\" data-product=\"%d\" onclick=\"cartAdd('%d')\">Add to Cart</button>\n", i, i)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func (c *pageContext) productsSection() string {
	return "<section class=\"products\"><div class=\"container\">\n<h2>Our Products</h2>\n" +
		c.productGrid() + "</div></section>\n"
}

func (c *pageContext) serviceGrid() string {
	var b strings.Builder
	b.WriteString("<div class=\"grid\">\n")
	for _, s := range c.rec.Services {
		b.WriteString("<div class=\"card\">\n")
		fmt.Fprintf(&b, "<h3>%s</h3>\n<p>%s</p>\n", esc(s.Name), esc(s.Description))
		fmt.Fprintf(&b, "<p class=\"price\">%s", c.prices.Format(s.Price))
		if s.Duration != "" {
			fmt.Fprintf(&b, " &middot; %s", esc(s.Duration))
		}
		b.WriteString("</p>\n</div>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func (c *pageContext) servicesSection() string {
	return "<section class=\"services\"><div class=\"container\">\n<h2>Our Services</h2>\n" +
		c.serviceGrid() + "</div></section>\n"
}

func (c *pageContext) testimonialsSection() string {
	var b strings.Builder
	b.WriteString("<section class=\"testimonials\"><div class=\"container\">\n<h2>What Customers Say</h2>\n<div class=\"grid\">\n")
	for _, r := range c.rec.Reviews {
		b.WriteString("<div class=\"card testimonial\">\n")
		fmt.Fprintf(&b, "<p class=\"rating\">%s</p>\n", stars(r.Rating))
		fmt.Fprintf(&b, "<p>%s</p>\n<p><strong>%s</strong>", esc(r.Text), esc(r.Name))
		if r.Date != "" {
			fmt.Fprintf(&b, " <small>%s</small>", esc(r.Date))
		}
		b.WriteString("</p>\n</div>\n")
	}
	b.WriteString("</div>\n</div></section>\n")
	return b.String()
}

func (c *pageContext) faqSection() string {
	var b strings.Builder
	b.WriteString("<section class=\"faq\"><div class=\"container\">\n<h2>Frequently Asked Questions</h2>\n")
	for _, f := range c.rec.FAQs {
		fmt.Fprintf(&b, "<div class=\"faq-item\">\n<h3>%s</h3>\n<p>%s</p>\n</div>\n",
			esc(f.Question), esc(f.Answer))
	}
	b.WriteString("</div></section>\n")
	return b.String()
}

func (c *pageContext) valuePropsSection() string {
	var b strings.Builder
	b.WriteString("<section class=\"value-props\"><div class=\"container\">\n<h2>Why Choose Us</h2>\n<div class=\"grid\">\n")
	props := []struct{ title, text string }{
		{"Quality First", c.rec.BusinessDescription},
		{"For " + c.rec.TargetAudience, "Everything we do is built around the people we serve."},
		{"Easy To Reach", "Questions? Call us or send an email any time."},
	}
	for _, p := range props {
		fmt.Fprintf(&b, "<div class=\"card\">\n<h3>%s</h3>\n<p>%s</p>\n</div>\n", esc(p.title), esc(p.text))
	}
	b.WriteString("</div>\n</div></section>\n")
	return b.String()
}

func (c *pageContext) ctaSection() string {
	var b strings.Builder
	b.WriteString("<section class=\"cta-banner\"><div class=\"container\">\n")
	fmt.Fprintf(&b, "<h2>Ready to work with %s?</h2>\n", esc(c.rec.BusinessName))
	fmt.Fprintf(&b, "<a class=\"button accent\" href=\"%s\">Contact Us</a>\n", FileContact)
	b.WriteString("</div></section>\n")
	return b.String()
}

// stars renders a 1..5 rating as filled/empty star glyphs.
func stars(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("&#9733;", rating) + strings.Repeat("&#9734;", 5-rating)
}

// initialOf returns the uppercase first rune of a name, or "?" when empty.
func initialOf(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) == 0 {
		return "?"
	}
	return strings.ToUpper(string(runes[0]))
}
