package message

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tony-montemuro/picoserver/internal/constructs"
	"github.com/tony-montemuro/picoserver/internal/lws"
	"github.com/tony-montemuro/picoserver/internal/rules"
)

type requestHeaders struct {
	fields        map[string]string
	cookies       map[string]string
	contentLength int
}

func newRequestHeaders() requestHeaders {
	return requestHeaders{
		fields:  make(map[string]string),
		cookies: make(map[string]string),
	}
}

// setHeader stores one header line. Only the first colon separates name from value, so
// values such as timestamps and URLs keep theirs.
func (rh *requestHeaders) setHeader(line string) error {
	name, value, found := strings.Cut(line, string(constructs.ByteColon))
	if !found {
		return MalformedRequestError{message: fmt.Sprintf("Invalid header: cannot determine header name (%s)", line)}
	}

	name = lws.Trim(name)
	value = lws.Trim(value)

	var err error
	switch {
	case strings.EqualFold(name, HeaderContentLength):
		err = rh.setContentLength(value)
	case name == HeaderCookie:
		err = rh.setCookies(value)
	}

	if err != nil {
		return err
	}

	rh.fields[name] = value
	return nil
}

func (rh *requestHeaders) setContentLength(data string) error {
	n, err := strconv.Atoi(data)
	if err != nil || n < 0 {
		return NumberFormatError{value: data}
	}

	rh.contentLength = n
	return nil
}

func (rh *requestHeaders) setCookies(data string) error {
	for _, pair := range rules.Extract(data, constructs.ByteParam) {
		name, value, found := strings.Cut(pair, string(constructs.ByteEquals))
		if !found {
			return MalformedRequestError{message: fmt.Sprintf("Invalid Cookie header: cookie has no value (%s)", pair)}
		}

		rh.cookies[lws.Trim(name)] = lws.Trim(value)
	}

	return nil
}

// contentType resolves the media type of the body, dropping any parameters after ';'.
func (rh requestHeaders) contentType() string {
	mime, ok := rh.fields[HeaderContentType]
	if !ok {
		mime = ContentTypeDefault
	}

	if before, _, found := strings.Cut(mime, string(constructs.ByteParam)); found {
		mime = lws.TrimRight(before)
	}

	return mime
}
