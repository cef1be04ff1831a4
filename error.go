package picoserver

import "fmt"

// ServerError reports a request the server understood but could not answer.
type ServerError struct {
	message string
}

func (e ServerError) Error() string {
	return fmt.Sprintf("[Server error]: %s", e.message)
}
