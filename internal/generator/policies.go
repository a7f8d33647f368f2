package generator

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/siteforge/internal/business"
)

// Policy page generation. Each of the four flags controls exactly one file;
// the copy is scoped to the business type where the obligations differ.

type policyPage struct {
	file    string
	title   string
	enabled func(*business.Record) bool
	body    func(*pageContext) string
}

var policyPages = []policyPage{
	{FilePrivacy, "Privacy Policy", func(r *business.Record) bool { return r.NeedsPrivacyPolicy }, privacyBody},
	{FileTerms, "Terms of Service", func(r *business.Record) bool { return r.NeedsTermsOfService }, termsBody},
	{FileRefund, "Refund Policy", func(r *business.Record) bool { return r.NeedsRefundPolicy }, refundBody},
	{FileShipping, "Shipping Policy", func(r *business.Record) bool { return r.NeedsShippingPolicy }, shippingBody},
}

func (c *pageContext) policyFiles() map[string]string {
	out := map[string]string{}
	for _, p := range policyPages {
		if !p.enabled(c.rec) {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "<section class=\"policy\"><div class=\"container\">\n<h1>%s</h1>\n", p.title)
		b.WriteString(p.body(c))
		b.WriteString("</div></section>\n")
		out[p.file] = c.page(p.title, b.String())
	}
	return out
}

func privacyBody(c *pageContext) string {
	name := esc(c.rec.BusinessName)
	var b strings.Builder
	fmt.Fprintf(&b, "<p>%s respects your privacy. We collect only the information you choose to share with us, such as your name and contact details when you reach out.</p>\n", name)
	b.WriteString("<p>We never sell personal data. Information is used solely to respond to inquiries and fulfill orders or bookings.</p>\n")
	if c.rec.BusinessType == business.TypeEcommerce {
		b.WriteString("<p>Order and payment details are processed only to complete your purchase and are retained as required by law.</p>\n")
	}
	fmt.Fprintf(&b, "<p>Questions about this policy can be sent to <a href=\"mailto:%s\">%s</a>.</p>\n",
		escAttr(c.rec.ContactInfo.Email), esc(c.rec.ContactInfo.Email))
	return b.String()
}

func termsBody(c *pageContext) string {
	name := esc(c.rec.BusinessName)
	var b strings.Builder
	fmt.Fprintf(&b, "<p>By using this website you agree to these terms. All content is provided by %s for informational purposes.</p>\n", name)
	switch c.rec.BusinessType {
	case business.TypeEcommerce:
		b.WriteString("<p>Orders are subject to availability. Prices may change without notice; the price at the time of purchase applies.</p>\n")
	case business.TypeService, business.TypeAgency:
		b.WriteString("<p>Service engagements are governed by the written agreement provided at booking. Estimates are not binding until confirmed.</p>\n")
	default:
		b.WriteString("<p>Use of this site does not create a business relationship unless separately agreed in writing.</p>\n")
	}
	b.WriteString("<p>These terms may be updated from time to time; the version published here applies.</p>\n")
	return b.String()
}

func refundBody(c *pageContext) string {
	switch c.rec.BusinessType {
	case business.TypeEcommerce:
		return "<p>Unused items may be returned within 30 days of delivery for a full refund. Refunds are issued to the original payment method within 5-10 business days of receiving the return.</p>\n" +
			"<p>Damaged or defective items are replaced or refunded at no cost to you.</p>\n"
	case business.TypeService, business.TypeAgency:
		return "<p>Appointments canceled at least 24 hours in advance are refunded in full. Work already performed is billed at the agreed rate and is non-refundable.</p>\n"
	}
	return "<p>If you are not satisfied, contact us within 30 days and we will make it right with a refund or credit.</p>\n"
}

func shippingBody(c *pageContext) string {
	switch c.rec.BusinessType {
	case business.TypeEcommerce:
		return "<p>Orders ship within 2 business days. Standard delivery takes 3-7 business days; tracking information is emailed once your order leaves our warehouse.</p>\n" +
			"<p>Shipping costs are calculated at checkout based on destination and weight.</p>\n"
	case business.TypeService, business.TypeAgency:
		return "<p>We deliver services on site or remotely as agreed; no physical goods are shipped. Any materials required for an engagement are arranged per the service agreement.</p>\n"
	}
	return "<p>Physical deliverables, when applicable, are dispatched within 5 business days of completion.</p>\n"
}
