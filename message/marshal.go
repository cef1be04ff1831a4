package message

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/tony-montemuro/picoserver/internal/constructs"
)

type statusLine int

func (c statusLine) marshal() []byte {
	return fmt.Appendf([]byte{}, "HTTP/1.1 %d %s%s", c, StatusText(int(c)), constructs.Crlf)
}

type responseHeaders map[string]string

// marshal writes the headers sorted by name. Content-Length is filled in from the body
// unless the caller already set it.
func (h responseHeaders) marshal(bodyLength int) []byte {
	var headers []byte

	_, hasLength := h[HeaderContentLength]
	if bodyLength > 0 && !hasLength {
		headers = marshalHeader(headers, HeaderContentLength, strconv.Itoa(bodyLength))
	}

	for _, name := range getSortedKeys(h) {
		headers = marshalHeader(headers, name, h[name])
	}

	return append(headers, constructs.Crlf...)
}

func marshalHeader(dst []byte, name, value string) []byte {
	return fmt.Appendf(dst, "%s: %s%s", name, value, constructs.Crlf)
}

func getSortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
