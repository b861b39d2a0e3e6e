package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/frontdesk.txt
var frontDeskRaw string

// FrontDesk returns the system prompt used by the fallback generator. The
// embed is compile-time, so this is safe to call concurrently.
func FrontDesk() string {
	return strings.TrimSpace(frontDeskRaw)
}
