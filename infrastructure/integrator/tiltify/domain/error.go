package tiltifydomain

import "fmt"

// ErrorResponse is the error envelope returned by the Tiltify API.
type ErrorResponse struct {
	Meta  Meta `json:"meta"`
	Error struct {
		Title   string `json:"title"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *ErrorResponse) String() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	if e.Error.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Error.Title, e.Error.Detail)
	}
	return fmt.Sprintf("status %d", e.Meta.Status)
}
