package message

type requestBody struct {
	body       []byte
	parameters map[string]string
}

type requestBodyParser []byte

// parse keeps the raw bytes unless the body is a form, in which case the form fields
// replace params and the body is reported empty.
func (rb requestBodyParser) parse(contentType string, params map[string]string) (requestBody, error) {
	if contentType != ContentTypeForm {
		return requestBody{body: []byte(rb), parameters: params}, nil
	}

	text, err := utf8Text(rb)
	if err != nil {
		return requestBody{}, err
	}

	form := make(map[string]string)
	err = queryParser(text).parse(form)
	if err != nil {
		return requestBody{}, err
	}

	return requestBody{body: []byte{}, parameters: form}, nil
}
