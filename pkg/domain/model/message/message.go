package message

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/types"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
)

// Role represents the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// Message represents a single chat message exchanged with the model
type Message struct {
	ID        types.MessageID `json:"id"`
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Model     string          `json:"model,omitempty"`
}

// New creates a new message with a fresh ID and the current timestamp
func New(ctx context.Context, role Role, content string) *Message {
	return &Message{
		ID:        types.NewMessageID(ctx),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Validate checks the message has the fields required for rendering
func (m *Message) Validate() error {
	if !m.ID.IsValid() {
		return goerr.Wrap(apperr.ErrInvalidMessage, "invalid message ID",
			goerr.V("message_id", m.ID),
		)
	}
	if !m.Role.IsValid() {
		return goerr.Wrap(apperr.ErrInvalidMessage, "invalid message role",
			goerr.V("role", m.Role),
		)
	}
	return nil
}

// Rendered is a message paired with the block tree produced from its
// content. It is recomputed on every render and never persisted durably.
type Rendered struct {
	Message
	Blocks     []Block   `json:"blocks"`
	RenderedAt time.Time `json:"rendered_at"`
}
