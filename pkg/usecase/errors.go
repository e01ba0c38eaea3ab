package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	// ErrInvalidUpload means the uploaded content was not a decodable
	// data URI.
	ErrInvalidUpload = goerr.New("invalid upload encoding")
)
