package themegraph

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func writeIndex(t *testing.T, base, theme, body string) {
	t.Helper()
	dir := filepath.Join(base, theme)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.theme"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func header(inherits string) string {
	return "[Icon Theme]\nName=T\nInherits=" + inherits + "\nDirectories=48x48/apps\n\n[48x48/apps]\nSize=48\nType=Fixed\n"
}

func TestChainBreadthFirst(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "A", header("B,C"))
	writeIndex(t, base, "B", header("D"))
	writeIndex(t, base, "C", header("hicolor"))
	writeIndex(t, base, "D", header(""))
	writeIndex(t, base, "hicolor", header(""))

	c := &Catalog{BaseDirs: []string{base}}
	got := Names(c.Chain("A", FallbackTheme))
	want := []string{"A", "B", "C", "D", "hicolor"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Chain = %v, want %v", got, want)
	}
}

func TestChainCycle(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "A", header("B"))
	writeIndex(t, base, "B", header("A"))
	writeIndex(t, base, "hicolor", header(""))

	c := &Catalog{BaseDirs: []string{base}}
	got := Names(c.Chain("A", FallbackTheme))
	if want := []string{"A", "B", "hicolor"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Chain = %v, want %v", got, want)
	}
}

func TestChainMissingTheme(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "hicolor", header(""))

	c := &Catalog{BaseDirs: []string{base}}
	if got := Names(c.Chain("Nope", FallbackTheme)); !reflect.DeepEqual(got, []string{"hicolor"}) {
		t.Fatalf("Chain = %v, want [hicolor]", got)
	}

	empty := &Catalog{BaseDirs: []string{t.TempDir()}}
	if got := empty.Chain("Nope", FallbackTheme); len(got) != 0 {
		t.Fatalf("Chain = %v, want empty", Names(got))
	}
}

func TestChainPrunesMissingParents(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "A", header("Gone,hicolor,B"))
	writeIndex(t, base, "B", header(""))
	writeIndex(t, base, "hicolor", header(""))

	c := &Catalog{BaseDirs: []string{base}}
	got := Names(c.Chain("A", FallbackTheme))
	if want := []string{"A", "B", "hicolor"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Chain = %v, want %v", got, want)
	}
}

func TestChainRequestedFallback(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "hicolor", header(""))

	c := &Catalog{BaseDirs: []string{base}}
	if got := Names(c.Chain("hicolor", FallbackTheme)); !reflect.DeepEqual(got, []string{"hicolor"}) {
		t.Fatalf("Chain = %v, want [hicolor]", got)
	}
}

func TestFindMergesFragments(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	third := t.TempDir()
	// first has files but no index; second has the index; third is absent.
	if err := os.MkdirAll(filepath.Join(first, "Custom", "48x48", "apps"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeIndex(t, second, "Custom", header("Parent"))

	c := &Catalog{BaseDirs: []string{first, second, third}}
	in, ok := c.Find("Custom")
	if !ok {
		t.Fatal("Custom not found")
	}
	if len(in.Fragments) != 2 {
		t.Fatalf("fragments = %d, want 2", len(in.Fragments))
	}
	if in.Fragments[0].Root != filepath.Join(first, "Custom") {
		t.Fatalf("first fragment root = %q", in.Fragments[0].Root)
	}
	if in.Fragments[0].Theme != in.Theme {
		t.Fatal("fragment without index should share the primary descriptor")
	}
	if !reflect.DeepEqual(in.Parents(), []string{"Parent"}) {
		t.Fatalf("Parents = %v", in.Parents())
	}
	if in.DisplayName() != "T" {
		t.Fatalf("DisplayName = %q", in.DisplayName())
	}
}

func TestFindWithoutIndex(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "Bare"), 0o755); err != nil {
		t.Fatal(err)
	}
	c := &Catalog{BaseDirs: []string{base}}
	if _, ok := c.Find("Bare"); ok {
		t.Fatal("theme without any index should not be installed")
	}
	for _, name := range []string{"", "..", "a/b"} {
		if _, ok := c.Find(name); ok {
			t.Fatalf("Find(%q) succeeded", name)
		}
	}
}

type mapStore struct {
	mu   sync.Mutex
	m    map[string]*Installed
	sets int
}

func (s *mapStore) Get(name string) (*Installed, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.m[name]
	return in, ok
}

func (s *mapStore) Set(name string, in *Installed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[name] = in
	s.sets++
}

func TestFindUsesStore(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "A", header(""))
	store := &mapStore{m: make(map[string]*Installed)}
	c := &Catalog{BaseDirs: []string{base}, Store: store}

	for i := 0; i < 3; i++ {
		if _, ok := c.Find("A"); !ok {
			t.Fatal("A not found")
		}
		if _, ok := c.Find("Missing"); ok {
			t.Fatal("Missing found")
		}
	}
	if store.sets != 2 {
		t.Fatalf("store sets = %d, want 2", store.sets)
	}
}

func TestNames(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeIndex(t, a, "Zed", header(""))
	writeIndex(t, b, "Zed", header(""))
	writeIndex(t, b, "Alpha", header(""))
	if err := os.MkdirAll(filepath.Join(b, "NoIndex"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(b, "stray.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	c := &Catalog{BaseDirs: []string{a, b, filepath.Join(a, "missing")}}
	got := c.Names()
	if want := []string{"Zed", "Alpha"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
}
