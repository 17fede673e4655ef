// File: internal/api/envelope.go
package api

import "net/http"

// Envelope is the uniform response wrapper. status_code carries the semantic
// code inside the body; handlers also set the same code on the status line.
type Envelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Message    any    `json:"message"`
}

func Error(code int, message any) Envelope {
	return Envelope{Status: "error", StatusCode: code, Message: message}
}

func Success(message any) Envelope {
	return Envelope{Status: "success", StatusCode: http.StatusOK, Message: message}
}
