// AngelaMos | 2026
// dto.go

package contact

import (
	"time"

	"github.com/tkprod/portfolio-api/internal/core"
)

type CreateMessageRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,looseemail,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateMessageRequest leaves the read flag unchanged when it is absent.
type UpdateMessageRequest struct {
	Read *bool `json:"read"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type MessageListResponse struct {
	Messages   []MessageResponse `json:"messages"`
	Pagination core.Pagination   `json:"pagination"`
}

func ToMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

func ToMessageListResponse(page *Page) MessageListResponse {
	messages := make([]MessageResponse, 0, len(page.Messages))
	for i := range page.Messages {
		messages = append(messages, ToMessageResponse(&page.Messages[i]))
	}
	return MessageListResponse{
		Messages:   messages,
		Pagination: page.Pagination,
	}
}
