package analyzer

import "strings"

// MaxTags caps how many tags a single chunk receives.
const MaxTags = 5

// TagCategory couples a tag name with the substrings that imply it.
type TagCategory struct {
	Name  string
	Terms []string
}

// TagVocabulary is the fixed tag vocabulary, checked in declaration
// order. Matching is case-insensitive substring containment.
var TagVocabulary = []TagCategory{
	{"API", []string{"api", "rest", "graphql", "endpoint"}},
	{"Database", []string{"database", "schema", "sqlite", "migration"}},
	{"UI", []string{"ui", "ux", "frontend", "interface", "screen"}},
	{"Backend", []string{"backend", "server", "service"}},
	{"Auth", []string{"auth", "permission", "login", "credential"}},
	{"Game", []string{"game", "gameplay", "level design"}},
	{"Guild", []string{"guild", "team", "roster"}},
	{"Player", []string{"player", "user", "member"}},
	{"Battle", []string{"battle", "combat", "pvp", "raid"}},
	{"Economy", []string{"economy", "currency", "market", "trade"}},
}

// ExtractTags returns the tags whose terms occur in content, in
// vocabulary order, truncated to MaxTags. Content with no vocabulary
// match yields an empty list.
func ExtractTags(content string) []string {
	lower := strings.ToLower(content)

	tags := []string{}
	for _, cat := range TagVocabulary {
		for _, term := range cat.Terms {
			if strings.Contains(lower, term) {
				tags = append(tags, cat.Name)
				break
			}
		}
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}
