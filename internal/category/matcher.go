// Package category maps free-form category mentions onto the canonical
// category names used by the rest of the assistant.
package category

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// similarityThreshold is the minimum word-overlap score for a non-exact hit.
const similarityThreshold = 0.7

type definition struct {
	name    string
	aliases []string
}

// Canonical categories and the aliases users reach for instead.
var definitions = []definition{
	{"food", []string{"food", "dining", "restaurant", "groceries", "meals", "eating"}},
	{"shopping", []string{"shopping", "clothes", "electronics", "purchase", "buy"}},
	{"travel", []string{"travel", "transport", "cab", "taxi", "uber", "ola", "commute"}},
	{"entertainment", []string{"entertainment", "movies", "games", "fun", "leisure"}},
	{"emi", []string{"emi", "loan", "installment", "payment"}},
	{"subscriptions", []string{"subscription", "netflix", "spotify", "prime", "membership"}},
	{"bills", []string{"bills", "utilities", "electricity", "water", "internet"}},
	{"healthcare", []string{"health", "medical", "doctor", "medicine", "hospital"}},
	{"education", []string{"education", "school", "course", "learning", "books"}},
}

var (
	allAliases []string
	aliasOwner map[string]string
)

func init() {
	aliasOwner = make(map[string]string)
	for _, def := range definitions {
		for _, alias := range def.aliases {
			allAliases = append(allAliases, alias)
			aliasOwner[alias] = def.name
		}
	}
}

// Names returns the canonical category names in declaration order.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for _, def := range definitions {
		names = append(names, def.name)
	}
	return names
}

// Aliases returns the alias list for a canonical category name.
func Aliases(name string) []string {
	for _, def := range definitions {
		if def.name == name {
			return append([]string(nil), def.aliases...)
		}
	}
	return nil
}

// Match resolves a free-form mention to a canonical category. It tries
// substring and word-overlap matches against each alias first, then falls
// back to abbreviation-style fuzzy matching for inputs like "sub" or "grcr".
func Match(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return "", false
	}

	for _, def := range definitions {
		for _, alias := range def.aliases {
			if strings.Contains(lower, alias) || Similarity(lower, alias) > similarityThreshold {
				return def.name, true
			}
		}
	}

	if len(lower) >= 3 {
		matches := fuzzy.Find(lower, allAliases)
		if len(matches) > 0 {
			return aliasOwner[matches[0].Str], true
		}
	}

	return "", false
}

// Similarity is a Dice-style word-overlap score between two phrases:
// 2·|common| / (|a|+|b|), in [0,1].
func Similarity(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))
	if len(wordsA)+len(wordsB) == 0 {
		return 0
	}

	setB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		setB[w] = true
	}

	common := 0
	for _, w := range wordsA {
		if setB[w] {
			common++
		}
	}

	return 2 * float64(common) / float64(len(wordsA)+len(wordsB))
}
