package model

// ErrorResponse is the body of every failed response
type ErrorResponse struct {
	Error string `json:"error"`
}
