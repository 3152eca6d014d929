// Package errors defines the domain error type returned across service
// boundaries so handlers can map failures to stable API codes.
package errors

// DomainError is an error with a machine-readable code and a human-readable
// message suitable for API responses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
