package dto

type HealthResponse struct {
	Message        string `json:"message"`
	Status         string `json:"status"`
	ActiveSessions int    `json:"active_sessions"`
}

type SendMessageRequest struct {
	Number  string `json:"number" validate:"required,max=128"`
	Message string `json:"message" validate:"required,max=4096"`
}

type SendMessageResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Response string `json:"response,omitempty"`
	Image    string `json:"image,omitempty"`
}

// WsChatRequest is one frame sent by the web chat client.
type WsChatRequest struct {
	Message string `json:"message"`
}

// WsChatResponse is one frame sent back to the web chat client.
type WsChatResponse struct {
	Response string `json:"response"`
	Image    string `json:"image,omitempty"`
}
