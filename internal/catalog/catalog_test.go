package catalog

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	def := &Def{Number: 1, Name: "foo", Category: CategoryMisc, VariadicStart: -1}
	r.Register(def)

	got, ok := r.LookupByName("foo")
	if !ok || got != def {
		t.Fatalf("LookupByName(foo) = %+v, %v", got, ok)
	}
	if got, ok := r.LookupByNumber(1); !ok || got != def {
		t.Fatalf("LookupByNumber(1) = %+v, %v", got, ok)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&Def{Number: 1, Name: "foo", VariadicStart: -1})
	defer func() {
		if recover() == nil {
			t.Fatal("Register with duplicate name should panic")
		}
	}()
	r.Register(&Def{Number: 2, Name: "foo", VariadicStart: -1})
}

func TestRegisterOverrideReplaces(t *testing.T) {
	r := NewRegistry()
	first := &Def{Number: 1, Name: "foo", VariadicStart: -1}
	second := &Def{Number: 1, Name: "foo", VariadicStart: -1, Category: CategoryFile}
	r.Register(first)
	r.RegisterOverride(second)

	got, _ := r.LookupByName("foo")
	if got != second {
		t.Fatalf("RegisterOverride did not replace: got %+v", got)
	}
}

func TestAliasesResolve(t *testing.T) {
	r := NewRegistry()
	def := &Def{Number: 1, Name: "open", Aliases: []string{"__open_nocancel"}, VariadicStart: -1}
	r.Register(def)
	if got, ok := r.LookupByName("__open_nocancel"); !ok || got != def {
		t.Fatalf("alias lookup failed: %+v, %v", got, ok)
	}
}

func TestIterateAllDeduplicatesAliases(t *testing.T) {
	r := NewRegistry()
	def := &Def{Number: 1, Name: "open", Aliases: []string{"__open_nocancel"}, VariadicStart: -1}
	r.Register(def)
	all := r.IterateAll()
	if len(all) != 1 {
		t.Fatalf("IterateAll returned %d defs, want 1", len(all))
	}
}

func TestBuildHasNoNumberOrNameCollisions(t *testing.T) {
	r := Build()
	all := r.IterateAll()
	if len(all) == 0 {
		t.Fatal("Build() produced an empty registry")
	}
	seen := map[int]string{}
	for _, def := range all {
		if other, ok := seen[def.Number]; ok && other != def.Name {
			t.Errorf("syscall number %d used by both %q and %q", def.Number, other, def.Name)
		}
		seen[def.Number] = def.Name
	}
}
