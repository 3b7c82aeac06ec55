package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteResolvesKnownKeys(t *testing.T) {
	r := NewResolver(map[string]string{
		"name":    "com.acme.widget",
		"version": "1.2.3",
	})

	got := r.Substitute("Package ${name} v${version}")
	assert.Equal(t, "Package com.acme.widget v1.2.3", got)
}

func TestSubstituteLeavesUnknownKeysVerbatim(t *testing.T) {
	r := NewResolver(map[string]string{"name": "com.acme.widget"})

	got := r.Substitute("Hello ${missingKey}, from ${name}")
	assert.Equal(t, "Hello ${missingKey}, from com.acme.widget", got)
}

func TestResolverFirstLayerWins(t *testing.T) {
	r := NewResolver(
		map[string]string{"version": "1.0.0"},
		map[string]string{"version": "shadowed", "company": "Acme"},
	)

	value, ok := r.Lookup("version")
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", value)

	value, ok = r.Lookup("company")
	assert.True(t, ok)
	assert.Equal(t, "Acme", value)

	_, ok = r.Lookup("absent")
	assert.False(t, ok)
}

func TestSubstituteIgnoresMalformedTokens(t *testing.T) {
	r := NewResolver(map[string]string{"name": "x"})

	// No braces, unterminated, and non-identifier keys stay untouched.
	for _, text := range []string{"$name", "${name", "${1bad}", "${}"} {
		assert.Equal(t, text, r.Substitute(text))
	}
}
