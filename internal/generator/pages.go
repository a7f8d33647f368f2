package generator

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/siteforge/internal/business"
)

// Well-known output filenames. Policy filenames are also the coupling point
// for the policy flags: each flag controls exactly one of these files plus
// the footer links referencing it.
const (
	FileIndex    = "index.html"
	FileStyles   = "styles.css"
	FileContact  = "contact.html"
	FileAbout    = "about.html"
	FileProducts = "products.html"
	FileServices = "services.html"
	FileCart     = "script.js"
	FilePrivacy  = "privacy-policy.html"
	FileTerms    = "terms-of-service.html"
	FileRefund   = "refund-policy.html"
	FileShipping = "shipping-policy.html"
)

type link struct {
	href  string
	label string
}

// pageContext carries everything the per-page builders need: the immutable
// record, the selected variant, and the one documented non-pure input (the
// copyright year).
type pageContext struct {
	rec     *business.Record
	variant Variant
	prices  priceFormatter
	year    int
}

// ecommerce reports whether the cart path is active for this bundle.
func (c *pageContext) ecommerce() bool {
	return c.rec.BusinessType == business.TypeEcommerce && c.rec.HasProducts()
}

func (c *pageContext) emitProductsPage() bool {
	return c.rec.BusinessType == business.TypeEcommerce && c.rec.HasProducts()
}

func (c *pageContext) emitServicesPage() bool {
	t := c.rec.BusinessType
	return (t == business.TypeService || t == business.TypeAgency) && c.rec.HasServices()
}

func (c *pageContext) navLinks() []link {
	links := []link{{FileIndex, "Home"}, {FileAbout, "About"}}
	if c.emitProductsPage() {
		links = append(links, link{FileProducts, "Products"})
	}
	if c.emitServicesPage() {
		links = append(links, link{FileServices, "Services"})
	}
	links = append(links, link{FileContact, "Contact"})
	return links
}

// policyLinks lists the footer links for enabled policy flags, in a fixed
// order. The same predicate decides file emission, keeping flag, file and
// link in lockstep.
func (c *pageContext) policyLinks() []link {
	var links []link
	if c.rec.NeedsPrivacyPolicy {
		links = append(links, link{FilePrivacy, "Privacy Policy"})
	}
	if c.rec.NeedsTermsOfService {
		links = append(links, link{FileTerms, "Terms of Service"})
	}
	if c.rec.NeedsRefundPolicy {
		links = append(links, link{FileRefund, "Refund Policy"})
	}
	if c.rec.NeedsShippingPolicy {
		links = append(links, link{FileShipping, "Shipping Policy"})
	}
	return links
}

func (c *pageContext) header() string {
	var b strings.Builder
	b.WriteString("<header class=\"site-header\"><div class=\"container\">\n")
	fmt.Fprintf(&b, "<a class=\"brand\" href=\"%s\">%s</a>\n<nav>", FileIndex, esc(c.rec.BusinessName))
	for _, l := range c.navLinks() {
		fmt.Fprintf(&b, "<a href=\"%s\">%s</a>", l.href, l.label)
	}
	b.WriteString("</nav>\n</div></header>\n")
	return b.String()
}

func (c *pageContext) footer() string {
	var b strings.Builder
	b.WriteString("<footer class=\"site-footer\"><div class=\"container\">\n")
	fmt.Fprintf(&b, "<p>&copy; %d %s. All rights reserved.</p>\n", c.year, esc(c.rec.BusinessName))
	if policies := c.policyLinks(); len(policies) > 0 {
		b.WriteString("<nav>")
		for _, l := range policies {
			fmt.Fprintf(&b, "<a href=\"%s\">%s</a>", l.href, l.label)
		}
		b.WriteString("</nav>\n")
	}
	if social := c.socialLinks(); social != "" {
		b.WriteString(social)
	}
	b.WriteString("</div></footer>\n")
	return b.String()
}

func (c *pageContext) socialLinks() string {
	sm := c.rec.SocialMedia
	var out []string
	for _, p := range []struct{ url, label string }{
		{sm.Facebook, "Facebook"},
		{sm.Instagram, "Instagram"},
		{sm.Twitter, "Twitter"},
		{sm.LinkedIn, "LinkedIn"},
	} {
		if p.url != "" {
			out = append(out, fmt.Sprintf("<a href=\"%s\" rel=\"noopener\">%s</a>", escAttr(p.url), p.label))
		}
	}
	if len(out) == 0 {
		return ""
	}
	return "<nav class=\"social\">" + strings.Join(out, "") + "</nav>\n"
}

// page assembles a complete HTML document around the given body fragments.
// Every generated page shares this scaffold so navigation and policy links
// stay consistent bundle-wide.
func (c *pageContext) page(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s | %s</title>\n", esc(title), esc(c.rec.BusinessName))
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", escAttr(c.rec.BusinessDescription))
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", FileStyles)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(c.header())
	b.WriteString("<main>\n")
	b.WriteString(body)
	b.WriteString("</main>\n")
	b.WriteString(c.footer())
	if c.ecommerce() {
		fmt.Fprintf(&b, "<script src=\"%s\"></script>\n", FileCart)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (c *pageContext) aboutPage() string {
	var b strings.Builder
	b.WriteString("<section class=\"about\"><div class=\"container\">\n")
	fmt.Fprintf(&b, "<h1>About %s</h1>\n", esc(c.rec.BusinessName))
	b.WriteString(markdownBody(c.rec.BusinessDescription))
	fmt.Fprintf(&b, "<p>We proudly serve %s in the %s space.</p>\n",
		esc(c.rec.TargetAudience), esc(c.rec.Industry))
	b.WriteString("</div></section>\n")
	return c.page("About", b.String())
}

func (c *pageContext) contactPage() string {
	ci := c.rec.ContactInfo
	var b strings.Builder
	b.WriteString("<section class=\"contact\"><div class=\"container\">\n")
	b.WriteString("<h1>Get In Touch</h1>\n<ul>\n")
	fmt.Fprintf(&b, "<li>Email: <a href=\"mailto:%s\">%s</a></li>\n", escAttr(ci.Email), esc(ci.Email))
	fmt.Fprintf(&b, "<li>Phone: <a href=\"tel:%s\">%s</a></li>\n", escAttr(ci.Phone), esc(ci.Phone))
	if ci.Address != "" {
		fmt.Fprintf(&b, "<li>Address: %s</li>\n", esc(ci.Address))
	}
	fmt.Fprintf(&b, "<li>Hours: %s</li>\n", esc(ci.Hours))
	b.WriteString("</ul>\n</div></section>\n")
	return c.page("Contact", b.String())
}

func (c *pageContext) productsPage() string {
	var b strings.Builder
	b.WriteString("<section class=\"catalog\"><div class=\"container\">\n<h1>Our Products</h1>\n")
	b.WriteString(c.productGrid())
	b.WriteString("</div></section>\n")
	return c.page("Products", b.String())
}

func (c *pageContext) servicesPage() string {
	var b strings.Builder
	b.WriteString("<section class=\"catalog\"><div class=\"container\">\n<h1>Our Services</h1>\n")
	b.WriteString(c.serviceGrid())
	b.WriteString("</div></section>\n")
	return c.page("Services", b.String())
}
