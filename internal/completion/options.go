package completion

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Tiamat-Tech/nushell/internal/config"
)

// Options is the per-request matching configuration, snapshotted from the
// engine config at request start.
type Options struct {
	CaseSensitive bool
	Algorithm     string
	Sort          string
}

func optionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Options{
		CaseSensitive: cfg.Completions.CaseSensitive,
		Algorithm:     cfg.Completions.Algorithm,
		Sort:          cfg.Completions.Sort,
	}
}

// matcher accumulates candidates and filters them against a prefix. With the
// prefix algorithm candidates are filtered as they are added; with the fuzzy
// algorithm all candidates are kept and ranked at the end.
type matcher struct {
	needle string
	opts   Options

	kept  []Suggestion
	texts []string
}

func newMatcher(prefix []byte, opts Options) *matcher {
	return &matcher{needle: string(prefix), opts: opts}
}

// Add offers a candidate. text is what the needle matches against, which is
// usually but not always the suggestion value.
func (m *matcher) Add(text string, sug Suggestion) {
	if m.opts.Algorithm == config.AlgorithmFuzzy {
		m.kept = append(m.kept, sug)
		m.texts = append(m.texts, text)
		return
	}
	haystack, needle := text, m.needle
	if !m.opts.CaseSensitive {
		haystack = strings.ToLower(haystack)
		needle = strings.ToLower(needle)
	}
	if strings.HasPrefix(haystack, needle) {
		m.kept = append(m.kept, sug)
	}
}

// Results returns the matching suggestions in display order.
func (m *matcher) Results() []Suggestion {
	if m.opts.Algorithm == config.AlgorithmFuzzy {
		return m.fuzzyResults()
	}
	out := m.kept
	sortByValue(out)
	return out
}

func (m *matcher) fuzzyResults() []Suggestion {
	if m.needle == "" {
		out := m.kept
		sortByValue(out)
		return out
	}
	matches := fuzzy.Find(m.needle, m.texts)
	out := make([]Suggestion, 0, len(matches))
	for _, match := range matches {
		out = append(out, m.kept[match.Index])
	}
	if m.opts.Sort == config.SortAlphabetical {
		sortByValue(out)
	}
	return out
}

func sortByValue(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Value < suggestions[j].Value
	})
}
