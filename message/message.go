package message

const (
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
	HeaderCookie        = "Cookie"

	CookieSessionID = "SID"

	ContentTypeDefault = "text/plain"
	ContentTypeForm    = "application/x-www-form-urlencoded"
)
