package keymap

import (
	"slices"
	"strings"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings  map[string]Action   // key -> action
	byAction  map[Action][]string // action -> keys (for help/documentation)
	conflicts []string
}

// NewResolver creates a resolver from bindings. A key bound to two different
// actions resolves to the later one and is reported by Conflicts.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if prev, ok := r.bindings[key]; ok && prev != b.Action {
				r.conflicts = append(r.conflicts, key)
			}
			r.bindings[key] = b.Action
		}
		// Same action may appear in several contexts
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	r.conflicts = dedupe(r.conflicts)
	slices.Sort(r.conflicts)
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Hint renders the keys of an action for footers, e.g. "ctrl+k/:".
func (r *Resolver) Hint(action Action) string {
	keys := r.byAction[action]
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return strings.Join(out, "/")
}

// Conflicts returns keys that were bound to more than one action.
func (r *Resolver) Conflicts() []string {
	return r.conflicts
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
