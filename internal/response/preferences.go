package response

import "strings"

// Preferences is the gateway's reading of the Prefer request header.
type Preferences struct {
	ReturnRepresentation bool
	CountExact           bool
}

// ParsePrefer parses a comma-separated Prefer header into Preferences.
// Unrecognized tokens are ignored rather than rejected.
func ParsePrefer(header string) Preferences {
	var p Preferences
	for _, tok := range strings.Split(header, ",") {
		switch strings.TrimSpace(tok) {
		case "return=representation":
			p.ReturnRepresentation = true
		case "count=exact":
			p.CountExact = true
		}
	}
	return p
}
