package message

import "fmt"

// MalformedRequestError reports request text that cannot be split into the pieces the
// parser expects: a request line without exactly three tokens, a header without a colon, a
// query or cookie pair without an equals sign, or a broken percent escape.
type MalformedRequestError struct {
	message string
}

func (e MalformedRequestError) Error() string {
	return fmt.Sprintf("[Malformed request]: %s", e.message)
}

// NumberFormatError reports a Content-Length value that is not a non-negative base-10 int.
type NumberFormatError struct {
	value string
}

func (e NumberFormatError) Error() string {
	return fmt.Sprintf("[Number format]: Content-Length is not a valid length (%s)", e.value)
}

// StreamError reports a read failure on the underlying stream before the request was
// complete. End of stream is not a StreamError.
type StreamError struct {
	err error
}

func (e StreamError) Error() string {
	return fmt.Sprintf("[Stream error]: %s", e.err.Error())
}

func (e StreamError) Unwrap() error {
	return e.err
}
