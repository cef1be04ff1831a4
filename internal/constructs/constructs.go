package constructs

import "fmt"

const (
	ByteSpace     = ' '
	ByteQuery     = '?'
	ByteAmpersand = '&'
	ByteEquals    = '='
	ByteColon     = ':'
	ByteParam     = ';'
	BytePlus      = '+'
	Crlf          = "\r\n"
)

type Hex byte

func (b Hex) Value() (byte, error) {
	switch {
	case b >= '0' && b <= '9':
		return byte(b - '0'), nil
	case b >= 'a' && b <= 'f':
		return byte(b - 'a' + 10), nil
	case b >= 'A' && b <= 'F':
		return byte(b - 'A' + 10), nil
	}

	return 0, fmt.Errorf("escape sequence contains non-hex byte")
}

type HttpByte byte

func (b HttpByte) IsEscape() bool {
	return b == '%'
}

// IsEncodedSpace reports whether b stands for a space in form-urlencoded text.
func (b HttpByte) IsEncodedSpace() bool {
	return b == BytePlus
}

func (b HttpByte) IsHex() bool {
	_, err := Hex(b).Value()
	return err == nil
}
