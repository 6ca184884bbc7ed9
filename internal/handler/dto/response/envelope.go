package response

// Envelope is the success half of the uniform response shape; failures are
// produced by httperr with the same top-level fields.
type Envelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(message string, data any) Envelope {
	return Envelope{OK: true, Message: message, Data: data}
}
