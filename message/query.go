package message

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/tony-montemuro/picoserver/internal/constructs"
)

// queryParser decodes an application/x-www-form-urlencoded string. The same format is
// used by the URL query and by form bodies.
type queryParser string

func (q queryParser) parse(into map[string]string) error {
	for _, part := range strings.Split(string(q), string(constructs.ByteAmpersand)) {
		if len(part) == 0 {
			continue
		}

		key, value, found := strings.Cut(part, string(constructs.ByteEquals))
		if !found {
			return MalformedRequestError{message: fmt.Sprintf("Invalid query: parameter has no value (%s)", part)}
		}

		k, err := componentDecoder(key).decode()
		if err != nil {
			return err
		}

		v, err := componentDecoder(value).decode()
		if err != nil {
			return err
		}

		into[k] = v
	}

	return nil
}

type componentDecoder string

func (c componentDecoder) decode() (string, error) {
	var decoded []byte
	i := 0

	for i < len(c) {
		b := constructs.HttpByte(c[i])

		switch {
		case b.IsEscape():
			v, err := escapeSequence(c).unescape(i)
			if err != nil {
				return "", err
			}
			decoded = append(decoded, v)
			i += 3
		case b.IsEncodedSpace():
			decoded = append(decoded, constructs.ByteSpace)
			i++
		default:
			decoded = append(decoded, byte(b))
			i++
		}
	}

	return utf8Text(decoded)
}

type escapeSequence string

func (s escapeSequence) unescape(i int) (byte, error) {
	var b byte

	for j := 1; j <= 2; j++ {
		if i+j >= len(s) {
			return b, MalformedRequestError{message: fmt.Sprintf("truncated escape sequence: (char pos: %d, \"%s\")", i+j-1, s)}
		}

		val, err := constructs.Hex(s[i+j]).Value()
		if err != nil {
			return b, MalformedRequestError{message: fmt.Sprintf("malformed escape sequence: (char pos: %d, \"%s\")", i+j, s[:i+j+1])}
		}

		b += val << (4 * (2 - j))
	}

	return b, nil
}

// utf8Text interprets b as UTF-8, replacing ill-formed sequences with U+FFFD.
func utf8Text(b []byte) (string, error) {
	text, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", MalformedRequestError{message: fmt.Sprintf("could not decode text as UTF-8: %s", err.Error())}
	}

	return string(text), nil
}
