package message

import (
	"fmt"
	"strings"

	"github.com/tony-montemuro/picoserver/internal/constructs"
)

type requestLine struct {
	method   string
	path     string
	query    string
	hasQuery bool
	protocol string
}

type requestLineParser string

func (rl requestLineParser) parse() (requestLine, error) {
	parts := strings.Split(string(rl), string(constructs.ByteSpace))
	if len(parts) != 3 {
		return requestLine{}, MalformedRequestError{message: fmt.Sprintf("Invalid request line: expected 3 tokens, got %d (%s)", len(parts), rl)}
	}

	path, query, hasQuery := strings.Cut(parts[1], string(constructs.ByteQuery))

	return requestLine{
		method:   strings.ToLower(parts[0]),
		path:     path,
		query:    query,
		hasQuery: hasQuery,
		protocol: parts[2],
	}, nil
}
