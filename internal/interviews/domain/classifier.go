package domain

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Administrators invent status names freely, so classification cannot rely on
// a closed enum. The classifier is an ordered rule table: keyword heuristics
// give sane answers before the taxonomy finishes loading, the taxonomy's
// declared bucket gives the authoritative answer once it is available, and
// everything else defaults to open.

// terminalKeywords mark a status as complete when the lowercased token
// contains any of them.
var terminalKeywords = []string{
	"select", "hired", "approved", "reject", "denied",
	"cancelled", "completed", "closed", "done", "final",
}

// inFlightKeywords mark a status as open.
var inFlightKeywords = []string{
	"new", "scheduled", "rescheduled", "pending", "hold",
	"progress", "review", "interview", "assessment",
}

// TaxonomyResolver reports the bucket an administrator declared for a main
// status, if any.
type TaxonomyResolver interface {
	DeclaredBucket(mainStatus string) (Bucket, bool)
}

// Rule priorities; lower runs first. The keyword/taxonomy ordering is
// swappable because the original stacking was ambiguous for statuses that
// match both a keyword and an explicit taxonomy bucket.
const (
	priorityEmpty    = 0
	priorityKeyword  = 10
	priorityTaxonomy = 20
	priorityDefault  = 100
)

type rule struct {
	name     string
	priority int
	match    func(token string) (Bucket, bool)
}

// ClassifierOptions configures rule construction.
type ClassifierOptions struct {
	// Taxonomy supplies declared buckets; nil disables the taxonomy rule.
	Taxonomy TaxonomyResolver
	// TaxonomyOverridesKeywords runs the taxonomy rule ahead of the keyword
	// rules, letting an administrator's declared bucket win.
	TaxonomyOverridesKeywords bool
	// RulesPath optionally points at a YAML file replacing the built-in
	// keyword sets.
	RulesPath string
}

// Classifier maps any status token to a life-cycle bucket. It is immutable
// once built; rebuild it when the taxonomy snapshot changes.
type Classifier struct {
	rules []rule
}

type keywordFile struct {
	Terminal []string `yaml:"terminal"`
	InFlight []string `yaml:"in_flight"`
}

// NewClassifier builds the ordered rule table.
func NewClassifier(opts ClassifierOptions) (*Classifier, error) {
	terminal := terminalKeywords
	inFlight := inFlightKeywords

	if opts.RulesPath != "" {
		loaded, err := loadKeywordFile(opts.RulesPath)
		if err != nil {
			return nil, err
		}
		if len(loaded.Terminal) > 0 {
			terminal = loaded.Terminal
		}
		if len(loaded.InFlight) > 0 {
			inFlight = loaded.InFlight
		}
	}

	taxonomyPriority := priorityTaxonomy
	if opts.TaxonomyOverridesKeywords {
		taxonomyPriority = priorityKeyword - 1
	}

	rules := []rule{
		{
			name:     "empty",
			priority: priorityEmpty,
			match: func(token string) (Bucket, bool) {
				if token == "" {
					return BucketOpen, true
				}
				return "", false
			},
		},
		keywordRule("terminal-keywords", priorityKeyword, terminal, BucketComplete),
		keywordRule("in-flight-keywords", priorityKeyword+1, inFlight, BucketOpen),
		{
			name:     "default-open",
			priority: priorityDefault,
			match: func(string) (Bucket, bool) {
				return BucketOpen, true
			},
		},
	}

	if opts.Taxonomy != nil {
		taxonomy := opts.Taxonomy
		rules = append(rules, rule{
			name:     "taxonomy-declared",
			priority: taxonomyPriority,
			match: func(token string) (Bucket, bool) {
				main, _ := ParseStatus(token)
				return taxonomy.DeclaredBucket(main)
			},
		})
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].priority < rules[j].priority
	})

	return &Classifier{rules: rules}, nil
}

// Classify resolves a status token to exactly one bucket. It is total: any
// string, including empty, yields open or complete.
func (c *Classifier) Classify(token string) Bucket {
	normalized := strings.ToLower(strings.TrimSpace(token))
	for _, r := range c.rules {
		if bucket, ok := r.match(normalized); ok {
			return bucket
		}
	}
	// The default-open rule always matches; this is unreachable.
	return BucketOpen
}

func keywordRule(name string, priority int, keywords []string, bucket Bucket) rule {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return rule{
		name:     name,
		priority: priority,
		match: func(token string) (Bucket, bool) {
			for _, kw := range lowered {
				if strings.Contains(token, kw) {
					return bucket, true
				}
			}
			return "", false
		},
	}
}

func loadKeywordFile(path string) (keywordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return keywordFile{}, fmt.Errorf("read classifier rules: %w", err)
	}
	var parsed keywordFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return keywordFile{}, fmt.Errorf("parse classifier rules: %w", err)
	}
	return parsed, nil
}
