package models

// Envelope is the uniform wrapper applied to every JSON response of the API.
// Success mirrors the HTTP status class: true for statuses in [200, 400),
// false otherwise. Data is always null on failure; field-level validation
// detail travels in Errors and is omitted when empty.
type Envelope struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Default envelope messages used when a handler supplies none.
const (
	MessageOK     = "OK"
	MessageFailed = "Request Failed"
)

// NewEnvelope builds the response envelope as a pure function of the status
// code and the handler's declared data and message. The same inputs always
// yield the same envelope.
func NewEnvelope(status int, data any, message string, fieldErrors map[string][]string) Envelope {
	success := status >= 200 && status < 400

	if message == "" {
		if success {
			message = MessageOK
		} else {
			message = MessageFailed
		}
	}

	if !success {
		data = nil
	}

	return Envelope{
		Success: success,
		Data:    data,
		Message: message,
		Errors:  fieldErrors,
	}
}
