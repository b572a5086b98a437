package keymap

import "sort"

// Table maps keys to actions within one scope. Within a table a key claims
// exactly one action; later registrations replace earlier ones.
type Table map[Key]Action

// Bindings holds every scope table. Built once at configuration load and
// treated as immutable afterwards.
type Bindings struct {
	Tables map[Scope]Table
}

// NewBindings returns an empty binding set with all scope tables present.
func NewBindings() Bindings {
	tables := make(map[Scope]Table)
	for scope := range scopeNames {
		tables[scope] = Table{}
	}
	return Bindings{Tables: tables}
}

// Bind registers a key in a scope, replacing any previous binding for the
// exact (code, modifier) pair.
func (b Bindings) Bind(scope Scope, key Key, action Action) {
	b.Tables[scope][key] = action
}

// Merge overlays user bindings on top of defaults. Replacement is per exact
// (key, modifier) pair per scope; a user binding never suppresses a
// different scope's default for the same key.
func Merge(defaults, user Bindings) Bindings {
	merged := NewBindings()
	for scope, table := range defaults.Tables {
		for key, action := range table {
			merged.Tables[scope][key] = action
		}
	}
	for scope, table := range user.Tables {
		for key, action := range table {
			merged.Tables[scope][key] = action
		}
	}
	return merged
}

// Resolver answers "what does this keypress mean on this screen".
type Resolver struct {
	bindings Bindings
}

// NewResolver wraps a finished binding set.
func NewResolver(bindings Bindings) *Resolver {
	return &Resolver{bindings: bindings}
}

// Resolve looks a key up in priority order: the screen-specific table, then
// common navigation, then global. The first match wins and later tables are
// not consulted. The second result is false when no table binds the key;
// the caller decides fallback behavior.
func (r *Resolver) Resolve(scope Scope, key Key) (Action, bool) {
	for _, s := range []Scope{scope, ScopeNavigation, ScopeGlobal} {
		if s == ScopeNavigation && scope == ScopeNavigation {
			continue
		}
		if s == ScopeGlobal && scope == ScopeGlobal {
			continue
		}
		if table, ok := r.bindings.Tables[s]; ok {
			if action, ok := table[key]; ok {
				return action, true
			}
		}
	}
	return ActionNone, false
}

// BindingInfo is one effective binding, for the help overlay.
type BindingInfo struct {
	Scope  Scope
	Key    Key
	Action Action
}

// Effective lists every binding, grouped by scope and sorted for stable
// display.
func (r *Resolver) Effective() []BindingInfo {
	var out []BindingInfo
	for scope, table := range r.bindings.Tables {
		for key, action := range table {
			out = append(out, BindingInfo{Scope: scope, Key: key, Action: action})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}
