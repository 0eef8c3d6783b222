package classify

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FoundIn normalizes a list of locations: trimmed, empties dropped,
// de-duplicated case-insensitively, "old" and "world" merged into
// "Old World", the first letter of each word upper-cased ("arc" becomes
// "ARC") and the result sorted.
// A nil list stays nil.
func FoundIn(list []string) []string {
	if list == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(list))
	var lowered []string
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		lowered = append(lowered, s)
	}
	for _, raw := range list {
		s := strings.Join(strings.Fields(raw), " ")
		if s == "" {
			continue
		}
		add(strings.ToLower(s))
	}

	_, hasOld := seen[foundInOld]
	_, hasWorld := seen[foundInWorld]
	if hasOld || hasWorld {
		kept := lowered[:0]
		for _, s := range lowered {
			if s != foundInOld && s != foundInWorld {
				kept = append(kept, s)
			}
		}
		lowered = kept
		delete(seen, foundInOld)
		delete(seen, foundInWorld)
		add(foundInOldWorld)
	}

	upper := cases.Upper(language.English)
	out := make([]string, 0, len(lowered))
	for _, s := range lowered {
		if s == foundInARC {
			out = append(out, strings.ToUpper(s))
			continue
		}
		words := strings.Split(s, " ")
		for i, w := range words {
			_, n := utf8.DecodeRuneInString(w)
			words[i] = upper.String(w[:n]) + w[n:]
		}
		out = append(out, strings.Join(words, " "))
	}

	collate.New(language.English).SortStrings(out)
	return out
}
