package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/receptionist.txt
var receptionistRaw string

// Receptionist returns the trimmed system prompt with the given current date
// substituted. The embed is compile-time; this is safe to call concurrently.
func Receptionist(currentDate string) string {
	return strings.ReplaceAll(strings.TrimSpace(receptionistRaw), "{current_date}", currentDate)
}
