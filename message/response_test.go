package message

import (
	"bytes"
	"testing"

	"github.com/tony-montemuro/picoserver/internal/assert"
)

func TestResponse_Marshal(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		expected []byte
	}{
		{
			name: "Minimal response",
			response: Response{
				Code: StatusOK,
			},
			expected: []byte(
				"HTTP/1.1 200 OK\r\n" +
					"\r\n",
			),
		},
		{
			name: "Response with body only",
			response: Response{
				Code: StatusOK,
				Body: []byte("hello world"),
			},
			expected: []byte(
				"HTTP/1.1 200 OK\r\n" +
					"Content-Length: 11\r\n" +
					"\r\n" +
					"hello world",
			),
		},
		{
			name:     "Response with content type and body",
			response: NewResponse(StatusOK, "text/plain; charset=utf-8", []byte("hello")),
			expected: []byte(
				"HTTP/1.1 200 OK\r\n" +
					"Content-Length: 5\r\n" +
					"Content-Type: text/plain; charset=utf-8\r\n" +
					"\r\n" +
					"hello",
			),
		},
		{
			name: "Headers are sorted",
			response: Response{
				Code:    StatusNotFound,
				Headers: map[string]string{"X-B": "2", "Server": "pico", "X-A": "1"},
			},
			expected: []byte(
				"HTTP/1.1 404 Not Found\r\n" +
					"Server: pico\r\n" +
					"X-A: 1\r\n" +
					"X-B: 2\r\n" +
					"\r\n",
			),
		},
		{
			name: "Explicit Content-Length is not repeated",
			response: Response{
				Code:    StatusInternalServerError,
				Headers: map[string]string{"Content-Length": "3"},
				Body:    []byte("abc"),
			},
			expected: []byte(
				"HTTP/1.1 500 Internal Server Error\r\n" +
					"Content-Length: 3\r\n" +
					"\r\n" +
					"abc",
			),
		},
		{
			name: "Unknown status code",
			response: Response{
				Code: 299,
			},
			expected: []byte(
				"HTTP/1.1 299 \r\n" +
					"\r\n",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.response.Marshal()), string(tt.expected))
		})
	}
}

func TestResponse_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	r := NewResponse(StatusOK, "", []byte("hi"))

	n, err := r.WriteTo(&buf)
	if !assert.ErrorStatus(t, err, false) {
		return
	}

	assert.Equal(t, n, int64(buf.Len()))
	assert.Equal(t, buf.String(), "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nhi")
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, StatusText(StatusOK), "OK")
	assert.Equal(t, StatusText(StatusInternalServerError), "Internal Server Error")
	assert.Equal(t, StatusText(999), "")
}
