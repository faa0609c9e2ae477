// Package catalog holds the intent trigger and entity matcher tables as
// data, loaded once at startup. Keeping the tables out of the matching code
// makes them inspectable and testable on their own, and lets deployments
// override them with an external file.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/paisa-ai/paisa/internal/common"
	"github.com/paisa-ai/paisa/internal/model"
)

//go:embed catalog.yaml
var embedded []byte

// Intent is one entry of the trigger table. Catalog order is the documented
// tie-break: the classifier keeps the first-seen entry on equal scores.
type Intent struct {
	Name      string
	Patterns  []*regexp.Regexp
	Examples  []string
	FollowUps []string
}

// EntityRule holds the matchers for one entity type, with the fixed
// confidence attached to every match of that family.
type EntityRule struct {
	Type       model.EntityType
	Patterns   []*regexp.Regexp
	Confidence float64
}

// Catalog is the parsed, compiled matcher table set.
type Catalog struct {
	Intents          []Intent
	Entities         []EntityRule
	DefaultFollowUps []string
}

type rawCatalog struct {
	Intents []struct {
		Name      string   `yaml:"name"`
		Patterns  []string `yaml:"patterns"`
		Examples  []string `yaml:"examples"`
		FollowUps []string `yaml:"followups"`
	} `yaml:"intents"`
	Entities []struct {
		Type       string   `yaml:"type"`
		Confidence float64  `yaml:"confidence"`
		Patterns   []string `yaml:"patterns"`
	} `yaml:"entities"`
	Defaults struct {
		FollowUps []string `yaml:"followups"`
	} `yaml:"defaults"`
}

var entityTypes = map[string]model.EntityType{
	"amount":      model.EntityAmount,
	"date":        model.EntityDate,
	"category":    model.EntityCategory,
	"merchant":    model.EntityMerchant,
	"time_period": model.EntityTimePeriod,
	"comparison":  model.EntityComparison,
	"action":      model.EntityAction,
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// LoadFile parses a catalog from an external YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: catalog file %s does not exist", common.ErrMissingConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, validates and compiles a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidCatalog, err)
	}

	if len(raw.Intents) == 0 {
		return nil, fmt.Errorf("%w: no intents defined", common.ErrInvalidCatalog)
	}

	cat := &Catalog{
		Intents:          make([]Intent, 0, len(raw.Intents)),
		Entities:         make([]EntityRule, 0, len(raw.Entities)),
		DefaultFollowUps: raw.Defaults.FollowUps,
	}

	seen := make(map[string]bool, len(raw.Intents))
	for _, ri := range raw.Intents {
		if ri.Name == "" {
			return nil, fmt.Errorf("%w: intent with empty name", common.ErrInvalidCatalog)
		}
		if ri.Name == model.IntentGeneralQuery {
			return nil, fmt.Errorf("%w: %s is the fallback and cannot carry trigger patterns", common.ErrInvalidCatalog, model.IntentGeneralQuery)
		}
		if seen[ri.Name] {
			return nil, fmt.Errorf("%w: duplicate intent %q", common.ErrInvalidCatalog, ri.Name)
		}
		seen[ri.Name] = true

		if len(ri.Patterns) == 0 {
			return nil, fmt.Errorf("%w: intent %q has no patterns", common.ErrInvalidCatalog, ri.Name)
		}
		compiled, err := compileAll(ri.Patterns)
		if err != nil {
			return nil, fmt.Errorf("%w: intent %q: %v", common.ErrInvalidCatalog, ri.Name, err)
		}

		cat.Intents = append(cat.Intents, Intent{
			Name:      ri.Name,
			Patterns:  compiled,
			Examples:  ri.Examples,
			FollowUps: ri.FollowUps,
		})
	}

	for _, re := range raw.Entities {
		typ, ok := entityTypes[re.Type]
		if !ok {
			return nil, fmt.Errorf("%w: unknown entity type %q", common.ErrInvalidCatalog, re.Type)
		}
		if re.Confidence <= 0 || re.Confidence > 1 {
			return nil, fmt.Errorf("%w: entity %q confidence must be in (0,1]", common.ErrInvalidCatalog, re.Type)
		}
		compiled, err := compileAll(re.Patterns)
		if err != nil {
			return nil, fmt.Errorf("%w: entity %q: %v", common.ErrInvalidCatalog, re.Type, err)
		}

		cat.Entities = append(cat.Entities, EntityRule{
			Type:       typ,
			Patterns:   compiled,
			Confidence: re.Confidence,
		})
	}

	return cat, nil
}

// FollowUps returns the canned follow-up suggestions for an intent, falling
// back to the generic set for intents without their own entry.
func (c *Catalog) FollowUps(intentName string) []string {
	for _, in := range c.Intents {
		if in.Name == intentName && len(in.FollowUps) > 0 {
			return append([]string(nil), in.FollowUps...)
		}
	}
	return append([]string(nil), c.DefaultFollowUps...)
}

// Intent looks up a catalog entry by name.
func (c *Catalog) Intent(name string) (Intent, error) {
	for _, in := range c.Intents {
		if in.Name == name {
			return in, nil
		}
	}
	return Intent{}, fmt.Errorf("%w: %s", common.ErrUnknownIntent, name)
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
