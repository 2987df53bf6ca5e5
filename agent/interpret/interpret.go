// Package interpret decides whether a turn needs tools and extracts structured
// invocations from free-text model output.
package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/contract"
)

// Domain terms (plus Turkish equivalents) that gate the tool path. This is a
// coarse heuristic, not an intent classifier: false positives and negatives
// are accepted behavior.
var toolKeywords = []string{
	"randevu", "appointment", "book", "rezervasyon",
	"fiyat", "price", "hizmet", "service",
	"müsait", "available", "saat", "time",
	"çalışma saatleri", "hours", "iletişim", "contact",
}

// The model embeds invocations in plain text using two surface syntaxes:
// a prefixed form `TOOL: name(args)` and a bracketed form `[name(args)]`.
var (
	toolPrefixPattern  = regexp.MustCompile(`(?s)TOOL:\s*(\w+)\((.*?)\)`)
	toolBracketPattern = regexp.MustCompile(`(?s)\[(\w+)\((.*?)\)\]`)
)

// ShouldUseTools reports whether the user message contains any configured
// keyword, case-insensitively.
func ShouldUseTools(userMessage string) bool {
	lower := strings.ToLower(userMessage)
	for _, keyword := range toolKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// ParseInvocations extracts every embedded invocation from model output.
// All prefixed-form matches come before all bracketed-form matches, regardless
// of their positions in the text. An invocation whose argument list cannot be
// parsed is dropped with a warning; extraction never fails as a whole.
func ParseInvocations(text string) []contractx.ToolInvocation {
	var matches [][]string
	matches = append(matches, toolPrefixPattern.FindAllStringSubmatch(text, -1)...)
	matches = append(matches, toolBracketPattern.FindAllStringSubmatch(text, -1)...)

	invocations := make([]contractx.ToolInvocation, 0, len(matches))
	for _, m := range matches {
		name, rawArgs := m[1], m[2]
		args, err := parseArgs(rawArgs)
		if err != nil {
			log.Warn().Err(err).Str("tool", name).Msg("dropping invocation with unparseable arguments")
			continue
		}
		invocations = append(invocations, contractx.ToolInvocation{
			Name: name,
			Args: args,
		})
	}
	return invocations
}

// parseArgs splits the raw argument string on commas with no awareness of
// nested parentheses or quoted commas, then coerces each piece.
func parseArgs(raw string) ([]contractx.Value, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	pieces := strings.Split(raw, ",")
	args := make([]contractx.Value, 0, len(pieces))
	for _, piece := range pieces {
		args = append(args, coerce(stripQuotes(strings.TrimSpace(piece))))
	}
	return args, nil
}

// stripQuotes removes a single layer of surrounding single or double quotes.
func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}

// coerce turns a textual piece into a number when it looks like one: pieces
// containing a dot try float, others try int, and anything malformed falls
// back to text silently.
func coerce(piece string) contractx.Value {
	if strings.Contains(piece, ".") {
		if f, err := strconv.ParseFloat(piece, 64); err == nil {
			return contractx.FloatValue(f)
		}
		return contractx.TextValue(piece)
	}
	if n, err := strconv.ParseInt(piece, 10, 64); err == nil {
		return contractx.IntValue(n)
	}
	return contractx.TextValue(piece)
}
