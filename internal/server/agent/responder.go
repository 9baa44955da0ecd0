// Package agent produces the chat agent's canned replies. Replies depend
// only on the visitor's text and the owner's display name.
package agent

import (
	"fmt"
	"strings"
	"unicode"
)

type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentIdentity   Intent = "identity"
	IntentContact    Intent = "contact"
	IntentContent    Intent = "content"
	IntentInterests  Intent = "interests"
	IntentAI         Intent = "ai"
	IntentTechnology Intent = "technology"
	IntentFallback   Intent = "fallback"
)

// Rule maps a set of keywords to a reply template. A keyword may span
// several words; it matches a run of whole words in the message. "%[1]s"
// in Template is replaced by the owner's name.
type Rule struct {
	Intent   Intent
	Keywords []string
	Template string
}

// Rules is evaluated in order; the first rule with a matching keyword wins.
var Rules = []Rule{
	{
		Intent:   IntentGreeting,
		Keywords: []string{"hello", "hi"},
		Template: "Hello! I'm %[1]s's AI agent. How can I help you today?",
	},
	{
		Intent:   IntentIdentity,
		Keywords: []string{"who are you", "what are you"},
		Template: "I'm an AI agent that represents %[1]s. I've learned from their social media posts, articles, and online presence to help answer questions and engage with their audience.",
	},
	{
		Intent:   IntentContact,
		Keywords: []string{"contact", "email", "reach"},
		Template: "You can contact %[1]s through any of the social media platforms and links listed on this page.",
	},
	{
		Intent:   IntentContent,
		Keywords: []string{"content", "contents", "post", "posts", "article", "articles"},
		Template: "%[1]s regularly posts content about AI, technology trends, and digital innovation. Their most recent articles focus on machine learning applications and the future of AI assistants. Check out their blog for the latest posts!",
	},
	{
		Intent:   IntentInterests,
		Keywords: []string{"interest", "interests", "interested", "hobby", "hobbies", "like", "likes"},
		Template: "%[1]s is passionate about artificial intelligence, emerging technologies, digital art, and hiking. They often share their thoughts on these topics across their social platforms.",
	},
	{
		Intent:   IntentAI,
		Keywords: []string{"ai", "artificial intelligence", "machine learning"},
		Template: "%[1]s has extensive expertise in AI and machine learning. They've written about neural networks, deep learning, AI ethics, and practical applications of machine learning in business. Is there a specific aspect of AI you'd like to know more about?",
	},
	{
		Intent:   IntentTechnology,
		Keywords: []string{"technology", "technologies", "tech", "digital"},
		Template: "%[1]s follows technology trends closely and writes about digital transformation, innovation, and emerging technologies. They're particularly interested in how technology can solve real-world problems.",
	},
}

const fallbackTemplate = "Thanks for your message! %[1]s is interested in AI, technology, and digital innovation. Is there something specific you'd like to know about their work or interests?"

// words lower-cases s and splits it on anything that is not a letter or
// a digit.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsRun(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j, w := range needle {
			if haystack[i+j] != w {
				continue outer
			}
		}
		return true
	}
	return false
}

// Classify returns the intent of the first rule matching text.
func Classify(text string) Intent {
	if r := match(text); r != nil {
		return r.Intent
	}
	return IntentFallback
}

func match(text string) *Rule {
	ws := words(text)
	for i := range Rules {
		for _, kw := range Rules[i].Keywords {
			if containsRun(ws, words(kw)) {
				return &Rules[i]
			}
		}
	}
	return nil
}

// Respond returns the reply to text on behalf of name.
func Respond(text, name string) string {
	tmpl := fallbackTemplate
	if r := match(text); r != nil {
		tmpl = r.Template
	}
	return fmt.Sprintf(tmpl, name)
}
