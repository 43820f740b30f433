// Package response is the Response Shaper: it computes the PostgREST-style
// headers (Content-Range, singular-object negotiation) and the body shape
// for create/patch/delete under return=representation.
package response

import "fmt"

// ContentRange renders the Content-Range header value for a list response:
// "<start>-<end>/<total-or-*>". When the page is empty it renders
// "*/<total-or-*>" instead, per the empty-page edge case. total is nil
// unless the caller asked for an exact count via Prefer: count=exact.
func ContentRange(start, end int, total *int) string {
	totalPart := "*"
	if total != nil {
		totalPart = fmt.Sprintf("%d", *total)
	}
	if end < start {
		return "*/" + totalPart
	}
	return fmt.Sprintf("%d-%d/%s", start, end, totalPart)
}
