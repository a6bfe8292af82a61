package types

// TailorResponse is the JSON shape returned when the tailored resume was
// stored but no PDF could be attached. RecordID lets the caller fetch the
// LaTeX later even though compilation failed.
type TailorResponse struct {
	RecordID string `json:"record_id"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ErrorResponse is the JSON shape of every error the API returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
