package http

const (
	MsgInvalidJSON   = "Syntax error"
	MsgInvalidPage   = "Page should not be less than 1"
	MsgNotFound      = "Not Found"
	MsgNotAllowed    = "Method Not Allowed"
	MsgInternal      = "Internal Server Error"
	MsgAttributeType = "The type of the %q attribute must be %q, %q given."
)
