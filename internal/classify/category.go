package classify

import (
	"slices"
	"strings"

	"github.com/osse101/raiddata/internal/domain"
)

// CategoryInput is the raw material the category classifier works from
type CategoryInput struct {
	VerboseCategory string
	Type            string
	Tags            []string
	Kind            domain.BatchKind
}

// Category classifies an item. Each keyword rule is tested as a substring of
// the verbose category (falling back to the type) and as an exact tag; the
// first rule that hits wins. Batch-kind defaults apply after that, and misc
// is the final fallback.
func Category(in CategoryInput) domain.Category {
	if c, ok := kindForced[in.Kind]; ok {
		return c
	}

	verbose := in.VerboseCategory
	if verbose == "" {
		verbose = in.Type
	}
	verbose = strings.ToLower(verbose)

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		tags = append(tags, strings.ToLower(t))
	}

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(verbose, kw) || slices.Contains(tags, kw) {
				return rule.category
			}
		}
	}

	if c, ok := kindDefaults[in.Kind]; ok {
		return c
	}
	return domain.CategoryMisc
}
