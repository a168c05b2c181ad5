package format

import (
	"strconv"
	"strings"
)

// ResolveAnswer maps a raw answer cell to a zero-based option index. Two
// spellings resolve: a single letter positioned inside the option range
// ("a"/"A" -> 0) and a one-based ordinal ("1" -> 0). Anything else reports
// ok=false, including letters or ordinals past optionCount; callers skip the
// row rather than guess. Note the asymmetry with the JSON codec, whose
// correct field is already a zero-based index and never comes through here.
func ResolveAnswer(raw string, optionCount int) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" || optionCount <= 0 {
		return 0, false
	}
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		i := int(s[0] - 'A')
		if i >= optionCount {
			return 0, false
		}
		return i, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > optionCount {
		return 0, false
	}
	return n - 1, true
}
