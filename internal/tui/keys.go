package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry resolves key names to actions per scope, falling back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal   = "global"
	scopeStrip    = "strip"
	scopeGrid     = "grid"
	scopeDetail   = "detail"
	scopeSearch   = "search"
	scopeFullHelp = "help"
)

const (
	actionQuit           Action = "quit"
	actionNext           Action = "next"
	actionPrevious       Action = "previous"
	actionToggleView     Action = "toggle_view"
	actionToggleAutoplay Action = "toggle_autoplay"
	actionSelect         Action = "select"
	actionNextDeck       Action = "next_deck"
	actionPrevDeck       Action = "prev_deck"
	actionCategory       Action = "category"
	actionSearch         Action = "search"
	actionBack           Action = "back"
	actionHelp           Action = "help"
	actionFirst          Action = "first"
	actionLast           Action = "last"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(scopeGlobal, actionNextDeck, []string{"tab"}, "next deck")
	reg(scopeGlobal, actionPrevDeck, []string{"shift+tab"}, "prev deck")
	reg(scopeGlobal, actionHelp, []string{"?"}, "help")

	for _, scope := range []string{scopeStrip, scopeGrid} {
		reg(scope, actionPrevious, []string{"left", "h"}, "previous")
		reg(scope, actionNext, []string{"right", "l"}, "next")
		reg(scope, actionFirst, []string{"home"}, "first")
		reg(scope, actionLast, []string{"end"}, "last")
		reg(scope, actionSelect, []string{"enter"}, "open")
		reg(scope, actionToggleView, []string{"g"}, "grid/strip")
		reg(scope, actionToggleAutoplay, []string{"space"}, "autoplay")
		reg(scope, actionCategory, []string{"c"}, "category")
		reg(scope, actionSearch, []string{"/"}, "search")
	}

	reg(scopeDetail, actionBack, []string{"esc", "backspace"}, "back")
	reg(scopeDetail, actionPrevious, []string{"left", "h"}, "previous")
	reg(scopeDetail, actionNext, []string{"right", "l"}, "next")

	reg(scopeSearch, actionSelect, []string{"enter"}, "jump")
	reg(scopeSearch, actionBack, []string{"esc"}, "cancel")

	reg(scopeFullHelp, actionBack, []string{"esc", "?"}, "close")
	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings converts a scope (plus globals) into bubbles key bindings for
// the footer and the help view.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	if scope != scopeGlobal {
		items = append(items, r.BindingsForScope(scopeGlobal)...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		helpKey := displayKey(b.Keys[0])
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

func displayKey(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	case "shift+tab":
		return "⇧tab"
	}
	return k
}
