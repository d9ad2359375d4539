package domain

var (
	MessageSuccessChat = "assistant replied successfully"
	MessageFailedChat  = "failed to chat with assistant"

	// AssistantApology is returned verbatim whenever the hosted model call
	// fails; the chat endpoint never surfaces an error to the client.
	AssistantApology = "I'm having trouble connecting to the kitchen server right now. But I'm still here to help!"
)

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
