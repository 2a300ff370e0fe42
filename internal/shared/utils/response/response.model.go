package response

// StandardApiResponse is the envelope every handler returns, success
// and error alike, so clients always read status and message from the
// same place.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // mirrored HTTP status
	Message    string      `json:"message"`          // human-readable summary
	Data       interface{} `json:"data,omitempty"`   // payload on success
	Errors     interface{} `json:"errors,omitempty"` // validation or error details
}
