package message

import (
	"errors"
	"io"

	"github.com/tony-montemuro/picoserver/internal/lws"
)

const maxEmptyReads = 100

// lineReader pulls the request off a stream without consuming anything past the byte
// it was asked for, so the body starts exactly where the blank line ends.
type lineReader struct {
	src io.Reader
	br  io.ByteReader
}

func newLineReader(r io.Reader) lineReader {
	if br, ok := r.(io.ByteReader); ok {
		return lineReader{src: r, br: br}
	}

	return lineReader{src: r, br: &singleByteReader{r: r}}
}

// readLine returns the bytes up to the next LF. CR bytes are dropped wherever they appear
// and end of stream terminates the line.
func (lr lineReader) readLine() (string, error) {
	var line []byte

	for {
		b, err := lr.br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", StreamError{err: err}
		}

		if b == lws.CR {
			continue
		}
		if b == lws.LF {
			break
		}

		line = append(line, b)
	}

	return string(line), nil
}

// read returns up to n bytes, stopping early at end of stream.
func (lr lineReader) read(n int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(lr.src, int64(n)))
	if err != nil {
		return nil, StreamError{err: err}
	}

	return data, nil
}

type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(s.buf[:])
		if n == 1 {
			return s.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}

	return 0, io.ErrNoProgress
}
