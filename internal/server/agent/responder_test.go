package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"Hi there!", IntentGreeting},
		{"HELLO", IntentGreeting},
		{"Who are you?", IntentIdentity},
		{"so... what are you exactly", IntentIdentity},
		{"How can I reach Alex?", IntentContact},
		{"what's your email", IntentContact},
		{"Any new posts?", IntentContent},
		{"latest article please", IntentContent},
		{"What are the hobbies of Alex", IntentInterests},
		{"tell me about your AI work", IntentAI},
		{"Artificial Intelligence question", IntentAI},
		{"thoughts on machine learning?", IntentAI},
		{"favourite tech stack", IntentTechnology},
		{"digital transformation", IntentTechnology},
		{"", IntentFallback},
		{"thanks a lot", IntentFallback},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_WholeWordsOnly(t *testing.T) {
	// "this" contains "hi", "said" contains "ai", "machine" alone is not a phrase match
	assert.Equal(t, IntentFallback, Classify("this is what she said"))
	assert.Equal(t, IntentFallback, Classify("a sewing machine"))
	assert.Equal(t, IntentFallback, Classify("learning to cook"))
}

func TestClassify_PriorityOrder(t *testing.T) {
	// greeting beats AI, contact beats content
	assert.Equal(t, IntentGreeting, Classify("hi, tell me about AI"))
	assert.Equal(t, IntentContact, Classify("email me your latest article"))
}

func TestRespond(t *testing.T) {
	assert.Equal(t, "Hello! I'm Alex's AI agent. How can I help you today?", Respond("Hi there!", "Alex"))

	ai := Respond("tell me about your AI work", "Alex")
	assert.True(t, strings.HasPrefix(ai, "Alex has extensive expertise in AI and machine learning."))

	fb := Respond("ok", "Alex Johnson")
	assert.Equal(t, "Thanks for your message! Alex Johnson is interested in AI, technology, and digital innovation. Is there something specific you'd like to know about their work or interests?", fb)
}

func TestRespond_Deterministic(t *testing.T) {
	for _, in := range []string{"Hi there!", "what are you", "random words"} {
		first := Respond(in, "Alex")
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Respond(in, "Alex"))
		}
	}
}

func TestRules_EveryTemplateUsesName(t *testing.T) {
	for _, r := range Rules {
		assert.Contains(t, r.Template, "%[1]s", r.Intent)
		assert.NotEmpty(t, r.Keywords, r.Intent)
	}
}
