package rollcall

import (
	"sort"
	"strings"
)

// Rolls holds validated roll numbers, each list duplicate-free and in ascending numeric order.
type Rolls struct {
	Absent []string
	OD     []string
}

// Validate parses comma-separated absent and OD lists. The two lists are
// disjoint, digits-only and free of repeats on success.
func Validate(absentInput, odInput string) (Rolls, error) {
	absent := splitRolls(absentInput)
	od := splitRolls(odInput)

	if len(absent) == 0 && len(od) == 0 {
		return Rolls{}, NewValidationError(KindEmptyInput, "")
	}

	for _, list := range [][]string{absent, od} {
		for _, roll := range list {
			if !isDigits(roll) {
				return Rolls{}, NewValidationError(KindNonNumeric, roll)
			}
		}
	}

	if hasDuplicate(absent) {
		return Rolls{}, NewValidationError(KindDuplicate, "Absent")
	}
	if hasDuplicate(od) {
		return Rolls{}, NewValidationError(KindDuplicate, "OD")
	}

	inAbsent := make(map[string]struct{}, len(absent))
	for _, roll := range absent {
		inAbsent[roll] = struct{}{}
	}
	var common []string
	for _, roll := range od {
		if _, ok := inAbsent[roll]; ok {
			common = append(common, roll)
		}
	}
	if len(common) > 0 {
		SortRolls(common)
		return Rolls{}, NewValidationError(KindOverlap, strings.Join(common, ", "))
	}

	SortRolls(absent)
	SortRolls(od)
	return Rolls{Absent: absent, OD: od}, nil
}

// SortRolls orders digit-only rolls numerically in place ("2" before "10").
func SortRolls(rolls []string) {
	sort.SliceStable(rolls, func(i, j int) bool {
		return numericLess(rolls[i], rolls[j])
	})
}

// numericLess compares digit strings by value without integer conversion,
// so arbitrarily long rolls never overflow. Equal values fall back to text order.
func numericLess(a, b string) bool {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) < len(tb)
	}
	if ta != tb {
		return ta < tb
	}
	return a < b
}

func splitRolls(input string) []string {
	var out []string
	for _, token := range strings.Split(strings.TrimSpace(input), ",") {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hasDuplicate(rolls []string) bool {
	seen := make(map[string]struct{}, len(rolls))
	for _, roll := range rolls {
		if _, ok := seen[roll]; ok {
			return true
		}
		seen[roll] = struct{}{}
	}
	return false
}
