package handlers

// Result is the one HTTP response a handler produces: a status code, a
// body ready for JSON encoding, and any headers the response shaper
// computed (Content-Range, for list and relational).
type Result struct {
	Status  int
	Body    any
	Headers map[string]string
}
