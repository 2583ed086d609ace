package driver

import (
	"testing"

	"ember/internal/imports"
)

func TestDiskCache_PutGetRoundtrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	reg := testRegistry(t)
	r, err := NewResolver(reg, "app", imports.ImplicitImportInfo{Stdlib: imports.StdlibNone})
	if err != nil {
		t.Fatal(err)
	}
	content := "@spi(Secret) import widgets\nimport fn widgets.render\n"
	ft := r.ResolveFile(scanText(t, content))

	key := HashContent("test.em", []byte(content))
	if err := cache.Put(key, EncodeTable(&ft)); err != nil {
		t.Fatal(err)
	}

	var got TablePayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatalf("expected a cache hit")
	}
	if len(got.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(got.Records))
	}
	if got.Records[0].Module != "widgets" || got.Records[0].SPIGroups[0] != "Secret" {
		t.Errorf("record 0 = %+v", got.Records[0])
	}
	if got.Records[1].Access != "render" {
		t.Errorf("record 1 access = %q, want render", got.Records[1].Access)
	}
}

func TestDiskCache_MissAndSchemaMismatch(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var out TablePayload
	hit, err := cache.Get(HashContent("absent.em", nil), &out)
	if err != nil || hit {
		t.Fatalf("Get on empty cache = (%v, %v), want miss", hit, err)
	}

	key := HashContent("old.em", []byte("import widgets\n"))
	stale := &TablePayload{Schema: tableCacheSchemaVersion + 1, Path: "old.em"}
	if err := cache.Put(key, stale); err != nil {
		t.Fatal(err)
	}
	hit, err = cache.Get(key, &out)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Errorf("stale schema read as a hit")
	}
}

func TestHashContent_SensitiveToPathAndBytes(t *testing.T) {
	base := HashContent("a.em", []byte("import foo\n"))
	if HashContent("b.em", []byte("import foo\n")) == base {
		t.Errorf("rename did not change the digest")
	}
	if HashContent("a.em", []byte("import bar\n")) == base {
		t.Errorf("edit did not change the digest")
	}
	if HashContent("a.em", []byte("import foo\n")) != base {
		t.Errorf("digest is not deterministic")
	}
}
