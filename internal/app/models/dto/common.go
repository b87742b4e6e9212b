package dto

// ErrorBody is the uniform error envelope for 4xx/5xx responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// ConflictResponse is returned with 409 when a delete target still has
// dependent rows and force was not requested.
type ConflictResponse struct {
	Error  string           `json:"error"`
	Code   string           `json:"code"`
	Counts map[string]int64 `json:"counts"`
	Detail string           `json:"detail,omitempty"`
}

// DeleteResponse reports a successful delete with per-class affected rows.
type DeleteResponse struct {
	OK      bool             `json:"ok"`
	Deleted map[string]int64 `json:"deleted"`
	Forced  bool             `json:"forced,omitempty"`
}

// OKResponse is a minimal success acknowledgement.
type OKResponse struct {
	OK bool `json:"ok"`
}
