package message

import "io"

type Response struct {
	Code    int
	Headers map[string]string
	Body    []byte
}

func NewResponse(code int, contentType string, body []byte) Response {
	r := Response{Code: code, Headers: make(map[string]string), Body: body}
	if len(contentType) > 0 {
		r.Headers[HeaderContentType] = contentType
	}

	return r
}

func (r Response) Marshal() []byte {
	var marshaled []byte

	marshaled = append(marshaled, statusLine(r.Code).marshal()...)
	marshaled = append(marshaled, responseHeaders(r.Headers).marshal(len(r.Body))...)
	marshaled = append(marshaled, r.Body...)

	return marshaled
}

func (r Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Marshal())
	return int64(n), err
}
