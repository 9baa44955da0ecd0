// Package seed provisions the demo account so a fresh server has a
// populated page to show.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/cryptox"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
)

const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password123"
	DemoName     = "Alex Johnson"

	GreetingText = "Hi there! I'm the AI agent for Alex Johnson. I can tell you about Alex's content, interests, and expertise. How can I help you today?"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Demo creates account common.DemoUserID with its links, persona, content
// sources and greeting. It does nothing when that account already exists
// and reports whether it seeded.
func Demo(ctx context.Context, m repomanager.RepositoryManager, params cryptox.PasswordParams) (bool, error) {
	if _, err := m.Users().GetByID(ctx, common.DemoUserID); err == nil {
		return false, nil
	} else if !errors.Is(err, common.ErrorNotFound) {
		return false, fmt.Errorf("check demo user: %w", err)
	}

	hash, err := cryptox.HashPassword([]byte(DemoPassword), params)
	if err != nil {
		return false, fmt.Errorf("hash demo password: %w", err)
	}

	err = m.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		_, err := r.Users().Create(ctx, &models.User{
			ID:           common.DemoUserID,
			Email:        DemoEmail,
			PasswordHash: hash,
			Name:         DemoName,
			Bio:          "AI researcher and technology enthusiast",
			AvatarURL:    "https://randomuser.me/api/portraits/men/32.jpg",
			CreatedAt:    ts("2025-04-08T12:00:00Z"),
		})
		if err != nil {
			return fmt.Errorf("create demo user: %w", err)
		}

		for _, l := range demoLinks() {
			if err := r.Links().Create(ctx, &l); err != nil {
				return fmt.Errorf("create demo link %s: %w", l.ID, err)
			}
		}

		if err := r.Personas().Save(ctx, demoPersona()); err != nil {
			return fmt.Errorf("create demo persona: %w", err)
		}

		for _, s := range demoSources() {
			if _, err := r.Sources().Create(ctx, &s); err != nil {
				return fmt.Errorf("create demo source: %w", err)
			}
		}

		_, err = r.Messages().Append(ctx, &models.ChatMessage{
			OwnerID:   common.DemoUserID,
			Sender:    models.SenderAgent,
			Text:      GreetingText,
			Timestamp: ts("2025-04-08T10:00:00Z"),
		})
		if err != nil {
			return fmt.Errorf("create demo greeting: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func demoLinks() []models.Link {
	owner := common.DemoUserID
	return []models.Link{
		{ID: "1", OwnerID: owner, Title: "My Website", URL: "https://alexjohnson.com", Icon: "FaGlobe", Color: "#0080FF", Position: 1, ClickCount: 324},
		{ID: "2", OwnerID: owner, Title: "Twitter", URL: "https://twitter.com/alexjohnson", Icon: "FaTwitter", Color: "#1DA1F2", Position: 2, ClickCount: 189},
		{ID: "3", OwnerID: owner, Title: "YouTube Channel", URL: "https://youtube.com/alexjohnson", Icon: "FaYoutube", Color: "#FF0000", Position: 3, ClickCount: 218},
		{ID: "4", OwnerID: owner, Title: "My Latest Article", URL: "https://medium.com/@alexjohnson/latest", Icon: "FaMedium", Color: "#00AB6C", Position: 4, ClickCount: 136},
	}
}

func demoSources() []models.ContentSource {
	owner := common.DemoUserID
	at := func(s string) *time.Time {
		t := ts(s)
		return &t
	}
	return []models.ContentSource{
		{OwnerID: owner, Type: "twitter", Username: "alexjohnson", Status: models.SourceStatusConnected, LastUpdated: at("2025-04-07T15:30:00Z")},
		{OwnerID: owner, Type: "instagram", Username: "alexjohnson", Status: models.SourceStatusConnected, LastUpdated: at("2025-04-07T15:35:00Z")},
		{OwnerID: owner, Type: models.SourceTypeBlog, URL: "https://alexjohnson.blog", Status: models.SourceStatusConnected, LastUpdated: at("2025-04-07T16:00:00Z")},
		{OwnerID: owner, Type: "youtube", Status: models.SourceStatusDisconnected},
	}
}

func demoPersona() *models.Persona {
	at := ts("2025-04-08T12:00:00Z")
	return &models.Persona{
		OwnerID:   common.DemoUserID,
		Version:   "0.1",
		CreatedAt: at,
		UpdatedAt: at,
		KnowledgeDomains: map[string]models.KnowledgeDomain{
			"Artificial Intelligence": {
				ExpertiseLevel: 0.85,
				Frequency:      0.72,
				Keywords:       []string{"machine learning", "neural networks", "deep learning", "AI ethics", "computer vision"},
				Confidence:     0.78,
			},
			"Technology": {
				ExpertiseLevel: 0.75,
				Frequency:      0.65,
				Keywords:       []string{"digital transformation", "innovation", "tech trends", "future tech", "emerging tech"},
				Confidence:     0.70,
			},
			"Digital Marketing": {
				ExpertiseLevel: 0.68,
				Frequency:      0.45,
				Keywords:       []string{"content strategy", "social media", "audience engagement", "analytics", "brand building"},
				Confidence:     0.56,
			},
		},
		CommunicationStyle: models.CommunicationStyle{
			Formality:       "neutral",
			Verbosity:       "moderate",
			Expressiveness:  "moderately_expressive",
			ResponseSpeed:   "fast",
			EngagementLevel: "highly_engaged",
			Helpfulness:     "very_helpful",
		},
		PersonalityTraits: map[string]models.Trait{
			"positivity":          {Value: "positive", Confidence: 0.82},
			"analytical_thinking": {Value: "highly_analytical", Confidence: 0.75},
			"social_orientation":  {Value: "outgoing", Confidence: 0.68},
		},
		ValuesAndInterests: map[string]models.Affinity{
			"innovation": {
				Type:         models.AffinityValue,
				Level:        0.88,
				RelatedTerms: []string{"innovative", "new", "creative", "future", "technology"},
				Confidence:   0.88,
			},
			"growth": {
				Type:         models.AffinityValue,
				Level:        0.76,
				RelatedTerms: []string{"learn", "improve", "develop", "progress", "better"},
				Confidence:   0.76,
			},
			"Machine Learning": {
				Type:         models.AffinityInterest,
				Level:        0.92,
				RelatedTerms: []string{"algorithms", "data science", "neural networks", "predictive models", "training"},
				Confidence:   0.92,
			},
		},
		ContentSampleSize: 250,
		ConfidenceScore:   0.75,
	}
}
