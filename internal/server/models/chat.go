package models

import "time"

const (
	SenderUser  = "user"
	SenderAgent = "agent"
)

// ChatMessage is one entry of an owner's append-only transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage is the payload sent by a visitor.
type NewChatMessage struct {
	Message string `json:"message" validate:"required,max=2000"`
}
