package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/luxkit/gldf/container"
	"github.com/luxkit/gldf/dbopen"
	"github.com/luxkit/gldf/gldf"
)

func writeContainer(t *testing.T, path, manufacturer, name string) {
	t.Helper()
	p := gldf.NewProduct(manufacturer, "library-test")
	p.Header.Author = "Library Bot"
	p.ProductDefinitions.ProductMetaData = &gldf.ProductMetaData{
		Name: &gldf.LocaleText{Locale: []gldf.Locale{{Language: "en", Value: name}}},
	}
	p.ProductDefinitions.Variants = &gldf.Variants{Variant: []gldf.Variant{{ID: "variant_1"}}}
	p.GeneralDefinitions.Files.File = []gldf.File{
		{ID: "ldt_1", ContentType: "ldc/eulumdat", Kind: gldf.FileKindLocal, FileName: "dist.ldt"},
	}
	assets := container.Assets{"ldt_1": []byte("EULUMDAT")}
	if err := container.New().EncodeFile(path, p, assets); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
}

func newLibrary(t *testing.T) *Library {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	return NewWithDB(db)
}

func TestScanIndexesNewFiles(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, filepath.Join(dir, "a.gldf"), "Acme Lighting", "Downlight 400")
	writeContainer(t, filepath.Join(dir, "b.gldf"), "Borealis", "Track Spot")
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644)

	lib := newLibrary(t)
	added, updated, removed, err := lib.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if added != 2 || updated != 0 || removed != 0 {
		t.Fatalf("got added=%d updated=%d removed=%d", added, updated, removed)
	}

	entries, err := lib.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	first := entries[0]
	if first.Manufacturer != "Acme Lighting" || first.Name != "Downlight 400" {
		t.Fatalf("unexpected first entry %+v", first)
	}
	if first.VariantCount != 1 || first.FileCount != 1 {
		t.Fatalf("unexpected counts in %+v", first)
	}
	if first.GldfID == "" || len(first.ContentHash) != 64 {
		t.Fatalf("missing identity fields in %+v", first)
	}
	if first.ErrorCount != 0 {
		t.Fatalf("clean fixture indexed with %d validation errors", first.ErrorCount)
	}
}

func TestScanSkipsUnchangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.gldf")
	writeContainer(t, path, "Acme Lighting", "Downlight 400")

	lib := newLibrary(t)
	ctx := context.Background()
	if _, _, _, err := lib.Scan(ctx, dir); err != nil {
		t.Fatalf("first Scan: %v", err)
	}
	before, err := lib.Get(ctx, path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	added, updated, removed, err := lib.Scan(ctx, dir)
	if err != nil {
		t.Fatalf("second Scan: %v", err)
	}
	if added != 0 || updated != 0 || removed != 0 {
		t.Fatalf("got added=%d updated=%d removed=%d", added, updated, removed)
	}
	after, err := lib.Get(ctx, path)
	if err != nil {
		t.Fatalf("Get after rescan: %v", err)
	}
	if after.IndexedAt != before.IndexedAt {
		t.Fatal("unchanged file was re-indexed")
	}
}

func TestScanUpdatesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.gldf")
	writeContainer(t, path, "Acme Lighting", "Downlight 400")

	lib := newLibrary(t)
	ctx := context.Background()
	if _, _, _, err := lib.Scan(ctx, dir); err != nil {
		t.Fatalf("first Scan: %v", err)
	}

	writeContainer(t, path, "Acme Lighting", "Downlight 600")
	added, updated, _, err := lib.Scan(ctx, dir)
	if err != nil {
		t.Fatalf("second Scan: %v", err)
	}
	if added != 0 || updated != 1 {
		t.Fatalf("got added=%d updated=%d", added, updated)
	}
	entry, err := lib.Get(ctx, path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Name != "Downlight 600" {
		t.Fatalf("got name %q", entry.Name)
	}
}

func TestScanRemovesVanishedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.gldf")
	writeContainer(t, path, "Acme Lighting", "Downlight 400")

	lib := newLibrary(t)
	ctx := context.Background()
	if _, _, _, err := lib.Scan(ctx, dir); err != nil {
		t.Fatalf("first Scan: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	_, _, removed, err := lib.Scan(ctx, dir)
	if err != nil {
		t.Fatalf("second Scan: %v", err)
	}
	if removed != 1 {
		t.Fatalf("got removed=%d, want 1", removed)
	}
	entries, err := lib.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("got %d entries after removal", len(entries))
	}
}

func TestScanSkipsCorruptContainers(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, filepath.Join(dir, "good.gldf"), "Acme Lighting", "Downlight 400")
	os.WriteFile(filepath.Join(dir, "bad.gldf"), []byte("not a zip"), 0o644)

	lib := newLibrary(t)
	added, _, _, err := lib.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if added != 1 {
		t.Fatalf("got added=%d, want 1", added)
	}
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	writeContainer(t, filepath.Join(dir, "a.gldf"), "Acme Lighting", "Downlight 400")
	writeContainer(t, filepath.Join(dir, "b.gldf"), "Borealis", "Track Spot")

	lib := newLibrary(t)
	ctx := context.Background()
	if _, _, _, err := lib.Scan(ctx, dir); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	hits, err := lib.Search(ctx, "downlight")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Name != "Downlight 400" {
		t.Fatalf("unexpected hits %+v", hits)
	}

	hits, err = lib.Search(ctx, "borealis")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Manufacturer != "Borealis" {
		t.Fatalf("unexpected hits %+v", hits)
	}

	hits, err = lib.Search(ctx, "nothing here")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}

func TestOpenCreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "index", "library.db")
	lib, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer lib.Close()

	if _, err := lib.List(context.Background()); err != nil {
		t.Fatalf("List on fresh database: %v", err)
	}
}
