package tui

import "testing"

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	next := r.Lookup("right", scopeStrip)
	if next == nil || next.Action != actionNext {
		t.Fatalf("right in strip = %+v, want next", next)
	}

	if got := r.Lookup("g", scopeDetail); got != nil {
		t.Fatalf("did not expect view toggle in detail scope, got %q", got.Action)
	}

	quit := r.Lookup("q", scopeGrid)
	if quit == nil || quit.Action != actionQuit {
		t.Fatalf("q in grid = %+v, want global quit", quit)
	}

	space := r.Lookup(" ", scopeStrip)
	if space == nil || space.Action != actionToggleAutoplay {
		t.Fatalf("space in strip = %+v, want toggle_autoplay", space)
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionNext, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionPrevious, Keys: []string{"X ", "x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionPrevious, Keys: []string{"x"}, Help: "other scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 || a[0].Action != actionNext {
		t.Fatalf("scope_a bindings = %+v, want only next", a)
	}
	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != actionPrevious {
		t.Fatalf("scope_b bindings = %+v, want only previous", b)
	}
}

func TestKeyRegistryHelpIncludesGlobals(t *testing.T) {
	r := NewKeyRegistry()

	help := r.HelpBindings(scopeDetail)
	var sawBack, sawQuit bool
	for _, h := range help {
		switch h.Help().Desc {
		case "back":
			sawBack = true
		case "quit":
			sawQuit = true
		}
	}
	if !sawBack || !sawQuit {
		t.Fatalf("detail help missing back=%v quit=%v", sawBack, sawQuit)
	}

	first := r.HelpBindings(scopeStrip)[0].Help()
	if first.Key != "←" || first.Desc != "previous" {
		t.Fatalf("first strip help = %+v, want ← previous", first)
	}
}

func TestNormalizeKeyName(t *testing.T) {
	cases := map[string]string{
		" ":         "space",
		"Control+C": "ctrl+c",
		"Return":    "enter",
		"G":         "G",
		"  ":        "",
	}
	for in, want := range cases {
		if got := normalizeKeyName(in); got != want {
			t.Fatalf("normalizeKeyName(%q) = %q, want %q", in, got, want)
		}
	}
}
