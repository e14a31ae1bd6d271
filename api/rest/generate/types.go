package generate

import (
	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/llm"
)

// Request represents the request body for code generation
type Request struct {
	Prompt              *string    `json:"prompt" binding:"required"`
	ConversationHistory []*Message `json:"conversation_history" binding:"omitempty,dive,required"`
	Temperature         *float32   `json:"temperature"`
	SystemInstruction   *string    `json:"system_instruction"`
}

// Message is one prior turn as sent by the caller; both fields must be present
type Message struct {
	Role    *string `json:"role" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

// Response represents a successful code generation
type Response = completion.CodeResponse

// FailureResponse is the body returned with a 500
type FailureResponse struct {
	Detail completion.CodeResponse `json:"detail"`
}

// only called after binding succeeded, so every entry and field is non-nil
func (r Request) toCodeRequest() completion.CodeRequest {
	req := completion.CodeRequest{
		Temperature: r.Temperature,
	}

	if r.Prompt != nil {
		req.Prompt = *r.Prompt
	}

	if r.SystemInstruction != nil {
		req.SystemInstruction = *r.SystemInstruction
	}

	if len(r.ConversationHistory) > 0 {
		req.ConversationHistory = make([]llm.Message, 0, len(r.ConversationHistory))

		for _, msg := range r.ConversationHistory {
			req.ConversationHistory = append(req.ConversationHistory, llm.Message{
				Role:    *msg.Role,
				Content: *msg.Content,
			})
		}
	}

	return req
}
