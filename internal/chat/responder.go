// Package chat is the keyword responder behind the site's chat widget.
// Matching is pure and synchronous; the typing delay users see is a
// presentation effect and does not live here.
package chat

import "strings"

type rule struct {
	keywords []string
	reply    string
}

// Rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{
		keywords: []string{"donate", "donation", "give", "giving"},
		reply: "You can give once or monthly on our Donate page. Every dollar is tracked in our " +
			"annual report, and 87 cents of each goes directly to programs. Would you like the link?",
	},
	{
		keywords: []string{"volunteer", "help out", "join"},
		reply: "Wonderful! We onboard volunteers every month for field programs, events and remote " +
			"support. Head to Get Involved and pick the track that fits you.",
	},
	{
		keywords: []string{"program", "project", "scholarship", "clinic", "water"},
		reply: "We run programs in education, healthcare, clean water and women's empowerment " +
			"across 41 communities. The Programs page has current projects and their impact numbers.",
	},
	{
		keywords: []string{"contact", "email", "phone", "reach"},
		reply:    "You can reach us at hello@hopefoundation.org or through the form on the Contact page. We usually reply within two business days.",
	},
	{
		keywords: []string{"hours", "office", "visit"},
		reply:    "Our office is open Monday to Friday, 9am to 5pm. Visitors are always welcome — drop by or book a tour through the Contact page.",
	},
}

const fallback = "Thanks for reaching out! I can help with donations, volunteering, our programs " +
	"or how to contact the team. What would you like to know?"

// Reply picks the canned response for a visitor message.
func Reply(message string) string {
	m := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(m, kw) {
				return r.reply
			}
		}
	}
	return fallback
}
