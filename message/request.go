package message

import (
	"bytes"
	"io"
	"maps"
	"net"
	"time"

	"github.com/tony-montemuro/picoserver/internal/lws"
)

// Request is a parsed HTTP request. It is built once by Parse and cannot be changed
// afterwards: every accessor returning a map or slice hands out a copy.
type Request struct {
	method        string
	path          string
	protocol      string
	headers       map[string]string
	parameters    map[string]string
	cookies       map[string]string
	contentLength int
	contentType   string
	body          []byte
}

func (r *Request) Method() string {
	return r.method
}

// Path is the request target up to the first '?', as sent.
func (r *Request) Path() string {
	return r.path
}

func (r *Request) Protocol() string {
	return r.protocol
}

func (r *Request) Headers() map[string]string {
	return maps.Clone(r.headers)
}

func (r *Request) Header(name string) (string, bool) {
	v, ok := r.headers[name]
	return v, ok
}

func (r *Request) Parameters() map[string]string {
	return maps.Clone(r.parameters)
}

func (r *Request) Parameter(key string) (string, bool) {
	v, ok := r.parameters[key]
	return v, ok
}

func (r *Request) Cookies() map[string]string {
	return maps.Clone(r.cookies)
}

func (r *Request) Cookie(name string) (string, bool) {
	v, ok := r.cookies[name]
	return v, ok
}

func (r *Request) SessionID() (string, bool) {
	return r.Cookie(CookieSessionID)
}

func (r *Request) ContentLength() int {
	return r.contentLength
}

func (r *Request) HasBody() bool {
	return r.contentLength > 0
}

func (r *Request) ContentType() string {
	return r.contentType
}

func (r *Request) Body() []byte {
	return bytes.Clone(r.body)
}

// Parse reads one request from r. It reads the request line, the header block up to the
// first blank line and then at most Content-Length bytes of body; nothing after that is
// consumed. On failure no request is returned.
func Parse(r io.Reader) (*Request, error) {
	lr := newLineReader(r)

	first, err := lr.readLine()
	if err != nil {
		return nil, err
	}

	line, err := requestLineParser(first).parse()
	if err != nil {
		return nil, err
	}

	params := make(map[string]string)
	if line.hasQuery {
		err = queryParser(line.query).parse(params)
		if err != nil {
			return nil, err
		}
	}

	headers := newRequestHeaders()
	for {
		h, err := lr.readLine()
		if err != nil {
			return nil, err
		}

		h = lws.Trim(h)
		if len(h) == 0 {
			break
		}

		err = headers.setHeader(h)
		if err != nil {
			return nil, err
		}
	}

	data, err := lr.read(headers.contentLength)
	if err != nil {
		return nil, err
	}

	contentType := headers.contentType()
	body, err := requestBodyParser(data).parse(contentType, params)
	if err != nil {
		return nil, err
	}

	return &Request{
		method:        line.method,
		path:          line.path,
		protocol:      line.protocol,
		headers:       headers.fields,
		parameters:    body.parameters,
		cookies:       headers.cookies,
		contentLength: headers.contentLength,
		contentType:   contentType,
		body:          body.body,
	}, nil
}

// RequestParser parses a request straight off a connection, bounding the wait for data
// with Timeout when it is set.
type RequestParser struct {
	Connection net.Conn
	Timeout    time.Duration
}

func (p *RequestParser) Parse() (*Request, error) {
	if p.Timeout > 0 {
		p.Connection.SetReadDeadline(time.Now().Add(p.Timeout))
		defer p.Connection.SetReadDeadline(time.Time{})
	}

	return Parse(p.Connection)
}
