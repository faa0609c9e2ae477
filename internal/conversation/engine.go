package conversation

import (
	"log/slog"

	"github.com/paisa-ai/paisa/internal/catalog"
	"github.com/paisa-ai/paisa/internal/classify"
	"github.com/paisa-ai/paisa/internal/model"
)

// Engine is the full query pipeline: classification, context inference,
// context update, follow-up suggestions and the clarification decision. The
// engine itself is stateless; all per-session state lives in the Manager
// the caller passes in.
type Engine struct {
	classifier *classify.Classifier
	catalog    *catalog.Catalog
}

// NewEngine creates an engine over the given catalog and classifier.
func NewEngine(cat *catalog.Catalog, classifier *classify.Classifier) *Engine {
	return &Engine{
		classifier: classifier,
		catalog:    cat,
	}
}

// Process runs one query through the pipeline. Inference sees the context
// as it stood before this turn; the update lands afterwards, so the
// returned snapshot already includes the current query. Process never
// fails: the worst outcome for any input is a low-confidence general_query
// asking the user to rephrase.
func (e *Engine) Process(text string, mgr *Manager) model.Response {
	intent := e.classifier.Classify(text)
	intent = mgr.InferMissingEntities(intent)
	mgr.Update(intent)

	question, needed := clarificationFor(intent)

	slog.Debug("processed query",
		"intent", intent.Name,
		"confidence", intent.Confidence,
		"turn", mgr.ctx.Turn,
		"clarification", needed)

	return model.Response{
		Intent:                intent,
		Context:               mgr.Context(),
		SuggestedFollowUps:    e.catalog.FollowUps(intent.Name),
		RequiresClarification: needed,
		ClarificationQuestion: question,
	}
}
