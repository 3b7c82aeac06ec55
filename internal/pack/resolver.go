// Package pack assembles the target package tree: manifest, template
// resources, stub files, sidecars, placeholder verification and the
// final archive.
package pack

import "regexp"

// placeholderPattern matches ${key} tokens in template text
var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Resolver answers placeholder lookups against an ordered list of
// layers; the first layer holding a key wins.
type Resolver struct {
	layers []map[string]string
}

// NewResolver builds a resolver from layers in decreasing priority
func NewResolver(layers ...map[string]string) *Resolver {
	return &Resolver{layers: layers}
}

// Lookup returns the value for key from the highest-priority layer
// that defines it.
func (r *Resolver) Lookup(key string) (string, bool) {
	for _, layer := range r.layers {
		if value, ok := layer[key]; ok {
			return value, true
		}
	}
	return "", false
}

// Substitute replaces every resolvable ${key} occurrence in text.
// Unmatched placeholders are left verbatim so the verification pass
// can report them later.
func (r *Resolver) Substitute(text string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		key := placeholderPattern.FindStringSubmatch(token)[1]
		if value, ok := r.Lookup(key); ok {
			return value
		}
		return token
	})
}
