package resolve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/example/iconlookup/internal/themegraph"
	"github.com/example/iconlookup/internal/vfs"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const customIndex = `[Icon Theme]
Name=Custom
Inherits=hicolor
Directories=48x48/apps

[48x48/apps]
Size=48
Type=Fixed
`

const hicolorIndex = `[Icon Theme]
Name=Hicolor
Directories=48x48/apps,48x48@2/apps

[48x48/apps]
Size=48
Type=Threshold

[48x48@2/apps]
Size=48
Scale=2
Type=Threshold
`

func newResolver(fsys vfs.FS, bases ...string) *Resolver {
	return &Resolver{
		Catalog: &themegraph.Catalog{FS: fsys, BaseDirs: bases},
		FS:      fsys,
	}
}

func find(r *Resolver, name, theme string, size, scale int) (string, bool) {
	return r.Resolve(context.Background(), Request{Name: name, Theme: theme, Size: size, Scale: scale})
}

func TestCustomScenario(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Custom", "index.theme"), customIndex)
	want := touch(t, filepath.Join(base, "Custom", "48x48", "apps", "firefox.png"))
	r := newResolver(vfs.OS{}, base)

	if got, ok := find(r, "firefox", "Custom", 48, 1); !ok || got != want {
		t.Fatalf("size 48 = %q, %v; want %q", got, ok, want)
	}
	if got, ok := find(r, "firefox", "Custom", 47, 1); !ok || got != want {
		t.Fatalf("size 47 = %q, %v; want %q", got, ok, want)
	}
	if got, ok := find(r, "firefox", "Custom", 48, 2); ok {
		t.Fatalf("scale 2 = %q, want none", got)
	}

	writeFile(t, filepath.Join(base, "hicolor", "index.theme"), hicolorIndex)
	hidpi := touch(t, filepath.Join(base, "hicolor", "48x48@2", "apps", "firefox.png"))
	r = newResolver(vfs.OS{}, base)
	if got, ok := find(r, "firefox", "Custom", 48, 2); !ok || got != hidpi {
		t.Fatalf("scale 2 with fallback = %q, %v; want %q", got, ok, hidpi)
	}
}

func TestExactBeatsCloseAcrossBaseDirs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(first, "Custom", "index.theme"), `[Icon Theme]
Name=Custom
Directories=32x32/apps,48x48/apps

[32x32/apps]
Size=32
Type=Fixed

[48x48/apps]
Size=48
Type=Fixed
`)
	touch(t, filepath.Join(first, "Custom", "32x32", "apps", "app.png"))
	if err := os.MkdirAll(filepath.Join(second, "Custom"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := touch(t, filepath.Join(second, "Custom", "48x48", "apps", "app.png"))

	r := newResolver(vfs.OS{}, first, second)
	if got, ok := find(r, "app", "Custom", 48, 1); !ok || got != want {
		t.Fatalf("got %q, %v; want %q", got, ok, want)
	}
}

func TestScaleIsHardFilter(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "T", "index.theme"), `[Icon Theme]
Name=T
Directories=24x24@2,16x16

[24x24@2]
Size=24
Scale=2
Type=Fixed

[16x16]
Size=16
Type=Fixed
`)
	touch(t, filepath.Join(base, "T", "24x24@2", "doc.png"))
	want := touch(t, filepath.Join(base, "T", "16x16", "doc.png"))

	r := newResolver(vfs.OS{}, base)
	if got, ok := find(r, "doc", "T", 24, 1); !ok || got != want {
		t.Fatalf("got %q, %v; want %q", got, ok, want)
	}
}

func TestTieBreakFollowsDeclaredOrder(t *testing.T) {
	tests := []struct {
		name  string
		order string
		want  string
	}{
		{"smaller first", "44x44,52x52", "44x44"},
		{"larger first", "52x52,44x44", "52x52"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := t.TempDir()
			body := "[Icon Theme]\nName=T\nDirectories=" + tc.order + "\n"
			// sections appear in the order given by tc.order
			first, second := tc.order[:5], tc.order[6:]
			body += "\n[" + first + "]\nSize=" + first[:2] + "\nType=Fixed\n"
			body += "\n[" + second + "]\nSize=" + second[:2] + "\nType=Fixed\n"
			writeFile(t, filepath.Join(base, "T", "index.theme"), body)
			touch(t, filepath.Join(base, "T", "44x44", "x.png"))
			touch(t, filepath.Join(base, "T", "52x52", "x.png"))

			r := newResolver(vfs.OS{}, base)
			want := filepath.Join(base, "T", tc.want, "x.png")
			for i := 0; i < 3; i++ {
				if got, ok := find(r, "x", "T", 48, 1); !ok || got != want {
					t.Fatalf("run %d: got %q, %v; want %q", i, got, ok, want)
				}
			}
		})
	}
}

func TestExtensionPriority(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Custom", "index.theme"), customIndex)
	dir := filepath.Join(base, "Custom", "48x48", "apps")
	svg := touch(t, filepath.Join(dir, "edit.svg"))
	png := touch(t, filepath.Join(dir, "edit.png"))
	touch(t, filepath.Join(dir, "edit.xpm"))

	r := newResolver(vfs.OS{}, base)
	if got, _ := find(r, "edit", "Custom", 48, 1); got != svg {
		t.Fatalf("default = %q, want %q", got, svg)
	}
	got, _ := r.Resolve(context.Background(), Request{Name: "edit", Theme: "Custom", Size: 48, Scale: 1, PreferRaster: true})
	if got != png {
		t.Fatalf("prefer raster = %q, want %q", got, png)
	}
}

func TestLegacyFallback(t *testing.T) {
	icons := t.TempDir()
	pixmaps := t.TempDir()
	writeFile(t, filepath.Join(icons, "Custom", "index.theme"), customIndex)
	writeFile(t, filepath.Join(icons, "hicolor", "index.theme"), hicolorIndex)
	want := touch(t, filepath.Join(pixmaps, "myicon.xpm"))

	r := newResolver(vfs.OS{}, icons, pixmaps)
	if got, ok := find(r, "myicon", "Custom", 48, 1); !ok || got != want {
		t.Fatalf("got %q, %v; want %q", got, ok, want)
	}

	themed := touch(t, filepath.Join(icons, "hicolor", "48x48", "apps", "myicon.png"))
	if got, _ := find(r, "myicon", "Custom", 48, 1); got != themed {
		t.Fatalf("themed icon should win: got %q, want %q", got, themed)
	}
}

func TestMissingThemeActsAsFallbackOnly(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "hicolor", "index.theme"), hicolorIndex)
	want := touch(t, filepath.Join(base, "hicolor", "48x48", "apps", "term.svg"))
	r := newResolver(vfs.OS{}, base)

	for _, size := range []int{16, 48, 128} {
		a, aok := find(r, "term", "DoesNotExist", size, 1)
		b, bok := find(r, "term", "hicolor", size, 1)
		if a != b || aok != bok {
			t.Fatalf("size %d: missing theme gave %q/%v, hicolor gave %q/%v", size, a, aok, b, bok)
		}
	}
	if got, _ := find(r, "term", "DoesNotExist", 48, 1); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCyclicThemes(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "A", "index.theme"), "[Icon Theme]\nInherits=B\nDirectories=a\n\n[a]\nSize=16\n")
	writeFile(t, filepath.Join(base, "B", "index.theme"), "[Icon Theme]\nInherits=A\nDirectories=b\n\n[b]\nSize=16\n")
	want := touch(t, filepath.Join(base, "B", "b", "thing.png"))

	r := newResolver(vfs.OS{}, base)
	if got, ok := find(r, "thing", "A", 16, 1); !ok || got != want {
		t.Fatalf("got %q, %v; want %q", got, ok, want)
	}
	if _, ok := find(r, "missing", "A", 16, 1); ok {
		t.Fatal("missing icon found")
	}
}

func TestIdempotentWithoutCache(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Custom", "index.theme"), customIndex)
	touch(t, filepath.Join(base, "Custom", "48x48", "apps", "firefox.png"))

	fsys := vfs.NewCounting(nil)
	r := newResolver(fsys, base)
	first, ok1 := find(r, "firefox", "Custom", 40, 1)
	calls := fsys.Calls()
	fsys.Reset()
	second, ok2 := find(r, "firefox", "Custom", 40, 1)
	if first != second || ok1 != ok2 {
		t.Fatalf("results differ: %q/%v vs %q/%v", first, ok1, second, ok2)
	}
	if fsys.Calls() != calls {
		t.Fatalf("second run made %d calls, first made %d", fsys.Calls(), calls)
	}
}

func TestPathAsName(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, filepath.Join(dir, "logo.png"))
	r := newResolver(vfs.OS{})

	if got, ok := find(r, filepath.Join(dir, "logo"), "", 24, 1); !ok || got != want {
		t.Fatalf("got %q, %v; want %q", got, ok, want)
	}
	if got, ok := find(r, filepath.Join(dir, "logo.svg"), "", 24, 1); !ok || got != want {
		t.Fatalf("extension replaced: got %q, %v; want %q", got, ok, want)
	}
	if _, ok := find(r, "", "", 24, 1); ok {
		t.Fatal("empty name found")
	}
}

func TestPathNameTriedAfterBaseDirs(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "hicolor", "index.theme"), hicolorIndex)
	themed := touch(t, filepath.Join(base, "hicolor", "48x48", "apps", "vendor", "logo.png"))
	unthemed := touch(t, filepath.Join(base, "vendor", "badge.svg"))
	r := newResolver(vfs.OS{}, base)

	name := filepath.Join("vendor", "logo")
	if got, ok := find(r, name, "hicolor", 48, 1); !ok || got != themed {
		t.Fatalf("themed: got %q, %v; want %q", got, ok, themed)
	}
	name = filepath.Join("vendor", "badge")
	if got, ok := find(r, name, "hicolor", 48, 1); !ok || got != unthemed {
		t.Fatalf("unthemed: got %q, %v; want %q", got, ok, unthemed)
	}

	dir := t.TempDir()
	direct := touch(t, filepath.Join(dir, "logo.xpm"))
	if got, ok := find(r, filepath.Join(dir, "logo"), "hicolor", 48, 1); !ok || got != direct {
		t.Fatalf("path: got %q, %v; want %q", got, ok, direct)
	}
}

func TestResolveRecordsSpan(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Custom", "index.theme"), customIndex)
	touch(t, filepath.Join(base, "Custom", "48x48", "apps", "firefox.png"))

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	r := newResolver(vfs.OS{}, base)
	r.Tracer = tp.Tracer("test")

	find(r, "firefox", "Custom", 48, 1)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name() != "iconlookup.resolve" {
		t.Fatalf("span name = %q", spans[0].Name())
	}
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == attribute.Key("icon.found") && kv.Value.AsBool() {
			found = true
		}
	}
	if !found {
		t.Fatalf("icon.found attribute missing: %v", spans[0].Attributes())
	}
}
