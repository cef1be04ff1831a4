package picoserver

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/tony-montemuro/picoserver/message"
)

const contentTypeText = "text/plain; charset=utf-8"

// Paths with one of these suffixes are served from Router.Files; anything else is looked
// up in Router.Routes.
var fileSuffixes = []string{".html", ".txt", ".jpg"}

// Handler computes the response for a routed request.
type Handler func(req *message.Request) (message.Response, error)

// Router maps a parsed request to a response.
type Router struct {
	Files  fs.FS
	Routes map[string]Handler
}

func (rt Router) Route(req *message.Request) (message.Response, error) {
	path := req.Path()

	for _, suffix := range fileSuffixes {
		if strings.HasSuffix(path, suffix) {
			return rt.serveFile(path)
		}
	}

	h, ok := rt.Routes[path]
	if !ok {
		return message.NewResponse(message.StatusOK, contentTypeText, fmt.Appendf(nil, "Unknown path: %s", path)), nil
	}

	return h(req)
}

func (rt Router) serveFile(path string) (message.Response, error) {
	name := strings.TrimPrefix(path, "/")
	if rt.Files == nil || !fs.ValidPath(name) {
		return message.Response{}, ServerError{message: "The file did not exist on the server"}
	}

	data, err := fs.ReadFile(rt.Files, name)
	if errors.Is(err, fs.ErrNotExist) {
		return message.Response{}, ServerError{message: "The file did not exist on the server"}
	}
	if err != nil {
		return message.Response{}, fmt.Errorf("could not read %s: %w", name, err)
	}

	return message.NewResponse(message.StatusOK, mimetype.Detect(data).String(), data), nil
}

// DefaultRoutes returns the computed pages every server carries.
func DefaultRoutes() map[string]Handler {
	return map[string]Handler{
		"/addournumbers": addOurNumbers,
		"/date":          currentDate,
	}
}

const resultPage = `<!DOCTYPE html>
<html lang="en">
    <head>
        <title>Adding form</title>
        <meta charset="UTF-8">
        <meta name="viewport" content="width=device-width, initial-scale=1.0">
    </head>
    <body>
        <h1>Result: $0 + $1 = $2</h1>
        <a href="adding.html">Add two other numbers</a>
    </body>
</html>
`

func addOurNumbers(req *message.Request) (message.Response, error) {
	first, err := numberParameter(req, "firstnumber")
	if err != nil {
		return message.Response{}, err
	}

	second, err := numberParameter(req, "secondnumber")
	if err != nil {
		return message.Response{}, err
	}

	page := strings.NewReplacer(
		"$0", strconv.Itoa(first),
		"$1", strconv.Itoa(second),
		"$2", strconv.Itoa(first+second),
	).Replace(resultPage)

	return message.NewResponse(message.StatusOK, "text/html; charset=utf-8", []byte(page)), nil
}

func numberParameter(req *message.Request, key string) (int, error) {
	value, ok := req.Parameter(key)
	if !ok {
		return 0, ServerError{message: fmt.Sprintf("missing parameter %s", key)}
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ServerError{message: fmt.Sprintf("parameter %s is not a number (%s)", key, value)}
	}

	return n, nil
}

func currentDate(*message.Request) (message.Response, error) {
	return message.NewResponse(message.StatusOK, contentTypeText, []byte(time.Now().UTC().Format(time.RFC1123))), nil
}
