package classify

import "strings"

// Sentiment labels for a query.
const (
	SentimentPositive  = "positive"
	SentimentNeutral   = "neutral"
	SentimentNegative  = "negative"
	SentimentConcerned = "concerned"
)

// Sentiment is a coarse word-list reading of a query's tone. Callers use it
// to soften responses when the user sounds worried about their finances.
type Sentiment struct {
	Label string
	Score float64
}

var (
	positiveWords = []string{"good", "great", "excellent", "happy", "satisfied", "awesome", "love", "best"}
	negativeWords = []string{"bad", "poor", "terrible", "unhappy", "disappointed", "worst", "hate"}
	concernWords  = []string{"worried", "concern", "problem", "issue", "help", "struggling", "difficult"}
)

// AnalyzeSentiment scans text for tone words. Concern outranks both
// polarities; a query that mentions a problem is treated as concerned even
// when it also contains positive words.
func AnalyzeSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	positive := countWords(lower, positiveWords)
	negative := countWords(lower, negativeWords)
	concern := countWords(lower, concernWords)

	switch {
	case concern > 0:
		return Sentiment{
			Label: SentimentConcerned,
			Score: float64(concern) / float64(positive+negative+concern+1),
		}
	case positive > negative:
		return Sentiment{
			Label: SentimentPositive,
			Score: float64(positive) / float64(positive+negative+1),
		}
	case negative > positive:
		return Sentiment{
			Label: SentimentNegative,
			Score: float64(negative) / float64(positive+negative+1),
		}
	}

	return Sentiment{Label: SentimentNeutral, Score: 0.5}
}

func countWords(text string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			count++
		}
	}
	return count
}
