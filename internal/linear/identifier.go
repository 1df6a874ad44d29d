package linear

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	canonicalRe  = regexp.MustCompile(`^[A-Za-z]+-\d+$`)
	bareNumberRe = regexp.MustCompile(`^\d+$`)
	issueURLRe   = regexp.MustCompile(`(?i)linear\.app/[^/]+/issue/([A-Za-z]+-\d+)`)
)

// ParseIdentifier normalizes a loosely formatted issue reference into the
// canonical TEAM-123 form. It accepts, in order: an already-canonical
// identifier (any letter case), a bare issue number (requires defaultTeam),
// and a full Linear issue URL.
func ParseIdentifier(input, defaultTeam string) (string, error) {
	if canonicalRe.MatchString(input) {
		return strings.ToUpper(input), nil
	}

	if bareNumberRe.MatchString(input) {
		if defaultTeam == "" {
			return "", fmt.Errorf(
				"identifier '%s' is just a number: provide a full identifier like 'ENG-%s' or specify a default team",
				input, input)
		}
		return strings.ToUpper(defaultTeam) + "-" + input, nil
	}

	if m := issueURLRe.FindStringSubmatch(input); m != nil {
		return strings.ToUpper(m[1]), nil
	}

	return "", fmt.Errorf("cannot parse identifier '%s': use a format like 'ENG-123' or a full Linear URL", input)
}

// priorityTable maps priority names to Linear's integer scale.
// "normal" and "medium" alias to the same value.
var priorityTable = map[string]int{
	"none":   0,
	"urgent": 1,
	"high":   2,
	"medium": 3,
	"normal": 3,
	"low":    4,
}

// PriorityToNumber converts a priority name to Linear's integer scale.
// Unrecognized names fall back to 3 (medium) rather than failing.
func PriorityToNumber(name string) int {
	if n, ok := priorityTable[strings.ToLower(name)]; ok {
		return n
	}
	return 3
}
