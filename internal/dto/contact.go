package dto

// ContactForm is the inbound payload for POST /api/contact.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactAck acknowledges a successful submission with the generated identifier.
type ContactAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// RootInfo is the body served at GET /api/.
type RootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
