package gldf

import (
	"errors"
	"testing"
)

func testProduct() *Product {
	p := NewProduct("Acme Lighting", "luxkit-test")
	p.GeneralDefinitions.Files.File = []File{
		{ID: "ldt_1", ContentType: "ldc/eulumdat", Kind: FileKindLocal, FileName: "dist.ldt"},
		{ID: "img_1", ContentType: "image/png", Kind: FileKindLocal, FileName: "front.png"},
	}
	return p
}

func TestAddFileRejectsDuplicate(t *testing.T) {
	p := testProduct()
	err := p.AddFile(File{ID: "ldt_1", ContentType: "ldc/ies", Kind: FileKindLocal, FileName: "other.ies"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("AddFile duplicate: got %v, want ErrDuplicateID", err)
	}
	if got := len(p.GeneralDefinitions.Files.File); got != 2 {
		t.Fatalf("file count after rejected add = %d, want 2", got)
	}
}

func TestUpdateFilePreservesOrder(t *testing.T) {
	p := testProduct()
	if err := p.UpdateFile("ldt_1", File{ID: "ldt_1", ContentType: "ldc/ies", Kind: FileKindLocal, FileName: "dist.ies"}); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	if p.GeneralDefinitions.Files.File[0].FileName != "dist.ies" {
		t.Fatalf("updated file not at original position: %+v", p.GeneralDefinitions.Files.File)
	}
}

func TestRemoveFileReturnsRemoved(t *testing.T) {
	p := testProduct()
	removed, err := p.RemoveFile("img_1")
	if err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	if removed.FileName != "front.png" {
		t.Fatalf("removed = %+v, want front.png", removed)
	}
	if _, err := p.RemoveFile("img_1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove: got %v, want ErrNotFound", err)
	}
}

func TestVariantsMaterializedOnFirstAdd(t *testing.T) {
	p := testProduct()
	if p.ProductDefinitions.Variants != nil {
		t.Fatal("fresh product should have no Variants section")
	}
	if err := p.AddVariant(Variant{ID: "variant_1"}); err != nil {
		t.Fatalf("AddVariant: %v", err)
	}
	if p.ProductDefinitions.Variants == nil || len(p.ProductDefinitions.Variants.Variant) != 1 {
		t.Fatalf("Variants not materialized: %+v", p.ProductDefinitions.Variants)
	}
	if err := p.AddVariant(Variant{ID: "variant_1"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate variant: got %v, want ErrDuplicateID", err)
	}
}

func TestGeometryNamespaceIsShared(t *testing.T) {
	p := testProduct()
	if err := p.AddSimpleGeometry(SimpleGeometry{ID: "geo_1"}); err != nil {
		t.Fatalf("AddSimpleGeometry: %v", err)
	}
	err := p.AddModelGeometry(ModelGeometry{ID: "geo_1", GeometryFileReference: []GeometryFileReference{{FileID: "ldt_1"}}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("model geometry with simple geometry ID: got %v, want ErrDuplicateID", err)
	}
	if _, err := p.RemoveSimpleGeometry("geo_1"); err != nil {
		t.Fatalf("RemoveSimpleGeometry: %v", err)
	}
	if _, err := p.RemoveSimpleGeometry("geo_1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove missing geometry: got %v, want ErrNotFound", err)
	}
}

func TestLightSourceNamespaceIsShared(t *testing.T) {
	p := testProduct()
	if err := p.AddFixedLightSource(FixedLightSource{ID: "ls_1"}); err != nil {
		t.Fatalf("AddFixedLightSource: %v", err)
	}
	err := p.AddChangeableLightSource(ChangeableLightSource{ID: "ls_1"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("changeable source with fixed source ID: got %v, want ErrDuplicateID", err)
	}
	if _, err := p.RemoveFixedLightSource("ls_1"); err != nil {
		t.Fatalf("RemoveFixedLightSource: %v", err)
	}
}

func TestRemoveGeometryReturnsRemoved(t *testing.T) {
	p := testProduct()
	if err := p.AddSimpleGeometry(SimpleGeometry{ID: "geo_1"}); err != nil {
		t.Fatalf("AddSimpleGeometry: %v", err)
	}
	if err := p.AddModelGeometry(ModelGeometry{ID: "geo_2", GeometryFileReference: []GeometryFileReference{{FileID: "ldt_1"}}}); err != nil {
		t.Fatalf("AddModelGeometry: %v", err)
	}

	sg, err := p.RemoveSimpleGeometry("geo_1")
	if err != nil {
		t.Fatalf("RemoveSimpleGeometry: %v", err)
	}
	if sg.ID != "geo_1" {
		t.Errorf("removed simple geometry = %+v", sg)
	}
	mg, err := p.RemoveModelGeometry("geo_2")
	if err != nil {
		t.Fatalf("RemoveModelGeometry: %v", err)
	}
	if mg.ID != "geo_2" || len(mg.GeometryFileReference) != 1 {
		t.Errorf("removed model geometry = %+v", mg)
	}

	if _, err := p.RemoveModelGeometry("geo_1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("model remove of simple ID: got %v, want ErrNotFound", err)
	}
}

func TestRemoveLightSourceReturnsRemoved(t *testing.T) {
	p := testProduct()
	if err := p.AddFixedLightSource(FixedLightSource{ID: "ls_1", GTIN: "4012345678901"}); err != nil {
		t.Fatalf("AddFixedLightSource: %v", err)
	}
	if err := p.AddChangeableLightSource(ChangeableLightSource{ID: "ls_2"}); err != nil {
		t.Fatalf("AddChangeableLightSource: %v", err)
	}

	fls, err := p.RemoveFixedLightSource("ls_1")
	if err != nil {
		t.Fatalf("RemoveFixedLightSource: %v", err)
	}
	if fls.ID != "ls_1" || fls.GTIN != "4012345678901" {
		t.Errorf("removed fixed source = %+v", fls)
	}
	cls, err := p.RemoveChangeableLightSource("ls_2")
	if err != nil {
		t.Fatalf("RemoveChangeableLightSource: %v", err)
	}
	if cls.ID != "ls_2" {
		t.Errorf("removed changeable source = %+v", cls)
	}

	if _, err := p.RemoveChangeableLightSource("ls_1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("changeable remove of fixed ID: got %v, want ErrNotFound", err)
	}
}

func TestGenerateUniqueIDSkipsAllNamespaces(t *testing.T) {
	p := testProduct()
	// An emitter occupying emitter_1 must push file-prefixed generation
	// past it too, since generated IDs are globally unique.
	if err := p.AddEmitter(Emitter{ID: "emitter_1"}); err != nil {
		t.Fatalf("AddEmitter: %v", err)
	}
	if got := p.GenerateUniqueID("emitter"); got != "emitter_2" {
		t.Fatalf("GenerateUniqueID(emitter) = %q, want emitter_2", got)
	}
	if got := p.GenerateUniqueID("photometry"); got != "photometry_1" {
		t.Fatalf("GenerateUniqueID(photometry) = %q, want photometry_1", got)
	}
}

func TestReferencedFileIDs(t *testing.T) {
	p := testProduct()
	if err := p.AddPhotometry(Photometry{ID: "phot_1", PhotometryFileReference: &PhotometryFileReference{FileID: "ldt_1"}}); err != nil {
		t.Fatalf("AddPhotometry: %v", err)
	}
	if err := p.AddModelGeometry(ModelGeometry{ID: "geo_1", GeometryFileReference: []GeometryFileReference{{FileID: "l3d_1"}}}); err != nil {
		t.Fatalf("AddModelGeometry: %v", err)
	}
	refs := p.ReferencedFileIDs()
	if len(refs) != 2 {
		t.Fatalf("referenced IDs = %v, want ldt_1 and l3d_1", refs)
	}
	for _, id := range []string{"ldt_1", "l3d_1"} {
		if _, ok := refs[id]; !ok {
			t.Errorf("missing referenced ID %q", id)
		}
	}
}

func TestFileViews(t *testing.T) {
	p := testProduct()
	p.GeneralDefinitions.Files.File = append(p.GeneralDefinitions.Files.File,
		File{ID: "url_1", ContentType: "document/pdf", Kind: FileKindURL, FileName: "https://example.com/datasheet.pdf"},
	)
	if got := p.PhotometricFiles(); len(got) != 1 || got[0].ID != "ldt_1" {
		t.Fatalf("PhotometricFiles = %+v", got)
	}
	if got := p.ImageFiles(); len(got) != 1 || got[0].ID != "img_1" {
		t.Fatalf("ImageFiles = %+v", got)
	}
	if got := p.URLFiles(); len(got) != 1 || got[0].ID != "url_1" {
		t.Fatalf("URLFiles = %+v", got)
	}
}

func TestEnsureProductMetaData(t *testing.T) {
	p := testProduct()
	p.ProductDefinitions.ProductMetaData = nil

	if p.ProductMetaData() != nil {
		t.Fatal("expected no metadata on a bare product")
	}
	md := p.EnsureProductMetaData()
	if md == nil || p.ProductMetaData() != md {
		t.Fatal("EnsureProductMetaData should create and return the section")
	}
	if again := p.EnsureProductMetaData(); again != md {
		t.Fatal("EnsureProductMetaData should be idempotent")
	}

	p.SetProductMetaData(ProductMetaData{ProductSeries: &ProductSeries{}})
	if p.ProductMetaData() == md {
		t.Fatal("SetProductMetaData should replace the section")
	}
}
