package models

import "time"

// Persona is the descriptive profile the chat agent speaks for. Apart from
// UpdatedAt it is static data.
type Persona struct {
	OwnerID            string                     `json:"user_id"`
	Version            string                     `json:"version"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
	KnowledgeDomains   map[string]KnowledgeDomain `json:"knowledge_domains"`
	CommunicationStyle CommunicationStyle         `json:"communication_style"`
	PersonalityTraits  map[string]Trait           `json:"personality_traits"`
	ValuesAndInterests map[string]Affinity        `json:"values_and_interests"`
	ContentSampleSize  int                        `json:"content_sample_size"`
	ConfidenceScore    float64                    `json:"confidence_score"`
}

type KnowledgeDomain struct {
	ExpertiseLevel float64  `json:"expertise_level"`
	Frequency      float64  `json:"frequency"`
	Keywords       []string `json:"keywords"`
	Confidence     float64  `json:"confidence"`
}

type CommunicationStyle struct {
	Formality       string `json:"formality"`
	Verbosity       string `json:"verbosity"`
	Expressiveness  string `json:"expressiveness"`
	ResponseSpeed   string `json:"response_speed"`
	EngagementLevel string `json:"engagement_level"`
	Helpfulness     string `json:"helpfulness"`
}

type Trait struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Affinity kinds.
const (
	AffinityValue    = "value"
	AffinityInterest = "interest"
)

// Affinity is one entry of values_and_interests. Values and interests share
// a map and are told apart by Type.
type Affinity struct {
	Type         string   `json:"type"`
	Level        float64  `json:"level"`
	RelatedTerms []string `json:"related_terms"`
	Confidence   float64  `json:"confidence"`
}

// PersonaUpdateStatus is returned when a persona refresh is requested.
type PersonaUpdateStatus struct {
	Message                 string `json:"message"`
	Status                  string `json:"status"`
	EstimatedCompletionTime string `json:"estimated_completion_time"`
}

const (
	SourceStatusConnected    = "connected"
	SourceStatusDisconnected = "disconnected"

	SourceTypeBlog = "blog"
)

// ContentSource is an account the persona learns from. Blogs are
// identified by URL, every other type by username.
type ContentSource struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"-"`
	Type        string     `json:"type"`
	Username    string     `json:"username,omitempty"`
	URL         string     `json:"url,omitempty"`
	Status      string     `json:"status"`
	LastUpdated *time.Time `json:"last_updated"`
}

// NewContentSource is the payload for connecting a source.
type NewContentSource struct {
	Type     string `json:"type" validate:"required,max=50"`
	Username string `json:"username" validate:"required_unless=Type blog,max=100"`
	URL      string `json:"url" validate:"required_if=Type blog,omitempty,url"`
}
