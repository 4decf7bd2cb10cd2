package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tiamat-Tech/nushell/internal/config"
)

func matchAll(prefix string, opts Options, candidates ...string) []string {
	m := newMatcher([]byte(prefix), opts)
	for _, c := range candidates {
		m.Add(c, Suggestion{Value: c})
	}
	return values(m.Results())
}

func TestPrefixMatchingIsCaseInsensitiveByDefault(t *testing.T) {
	opts := optionsFromConfig(config.DefaultConfig())

	got := matchAll("RE", opts, "readme", "Rexfile", "notes")
	assert.Equal(t, []string{"Rexfile", "readme"}, got)
}

func TestPrefixMatchingCaseSensitive(t *testing.T) {
	opts := optionsFromConfig(config.DefaultConfig())
	opts.CaseSensitive = true

	got := matchAll("Re", opts, "readme", "Rexfile", "notes")
	assert.Equal(t, []string{"Rexfile"}, got)
}

func TestFuzzyMatching(t *testing.T) {
	opts := optionsFromConfig(config.DefaultConfig())
	opts.Algorithm = config.AlgorithmFuzzy

	got := matchAll("gco", opts, "git-checkout", "grep-count", "ls")
	assert.Contains(t, got, "git-checkout")
	assert.NotContains(t, got, "ls")
}

func TestEmptyPrefixMatchesEverythingSorted(t *testing.T) {
	opts := optionsFromConfig(config.DefaultConfig())

	got := matchAll("", opts, "zeta", "alpha", "mid")
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, got)
}
