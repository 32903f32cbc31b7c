package validate

import (
	"testing"

	"github.com/luxkit/gldf/container"
	"github.com/luxkit/gldf/gldf"
)

func validProduct() *gldf.Product {
	p := gldf.NewProduct("Acme Lighting", "luxkit-test")
	p.Header.Author = "QA"
	p.GeneralDefinitions.Files.File = []gldf.File{
		{ID: "ldt_1", ContentType: "ldc/eulumdat", Kind: gldf.FileKindLocal, FileName: "dist.ldt"},
	}
	p.GeneralDefinitions.Photometries = &gldf.Photometries{Photometry: []gldf.Photometry{
		{ID: "phot_1", PhotometryFileReference: &gldf.PhotometryFileReference{FileID: "ldt_1"}},
	}}
	p.ProductDefinitions.Variants = &gldf.Variants{Variant: []gldf.Variant{{ID: "variant_1"}}}
	return p
}

func validAssets() container.Assets {
	return container.Assets{"ldt_1": []byte("payload")}
}

func hasCode(r *Result, code string) bool {
	for _, i := range r.Issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

func TestValidProductIsClean(t *testing.T) {
	r := Product(validProduct(), validAssets())
	if r.HasErrors() {
		t.Fatalf("unexpected errors: %+v", r.Errors())
	}
	if r.HasWarnings() {
		t.Fatalf("unexpected warnings: %+v", r.Warnings())
	}
}

func TestHeaderRules(t *testing.T) {
	p := validProduct()
	p.Header.Author = ""
	p.Header.Manufacturer = ""
	p.Header.FormatVersion = gldf.FormatVersion{}
	p.Header.CreationTimeCode = ""

	r := Product(p, validAssets())
	for _, code := range []string{"HEADER_001", "HEADER_002", "HEADER_003", "HEADER_004"} {
		if !hasCode(r, code) {
			t.Errorf("missing %s in %+v", code, r.Issues)
		}
	}
}

func TestBrokenPhotometryReferenceIsError(t *testing.T) {
	p := validProduct()
	p.GeneralDefinitions.Photometries.Photometry[0].PhotometryFileReference.FileID = "missing"

	r := Product(p, validAssets())
	if !r.HasErrors() || !hasCode(r, "PHOT_002") {
		t.Fatalf("want PHOT_002 error, got %+v", r.Issues)
	}
}

func TestMissingAssetIsWarningOnly(t *testing.T) {
	p := validProduct()
	r := Product(p, container.Assets{})
	if r.HasErrors() {
		t.Fatalf("missing payload must not be an error: %+v", r.Errors())
	}
	if !hasCode(r, "FILE_004") {
		t.Fatalf("want FILE_004 warning, got %+v", r.Issues)
	}
}

func TestStructureSkipsAssetChecks(t *testing.T) {
	// Structure validation has no asset knowledge; FILE_004 fires for
	// every local file, but reference errors still surface.
	p := validProduct()
	r := Structure(p)
	if r.HasErrors() {
		t.Fatalf("structure of valid product has errors: %+v", r.Errors())
	}
	if !hasCode(r, "FILE_004") {
		t.Fatalf("want FILE_004 for unverifiable payload, got %+v", r.Issues)
	}
}

func TestUnusualContentType(t *testing.T) {
	p := validProduct()
	p.GeneralDefinitions.Files.File[0].ContentType = "application/octet-stream"
	r := Product(p, validAssets())
	if !hasCode(r, "FILE_005") {
		t.Fatalf("want FILE_005, got %+v", r.Issues)
	}
}

func TestVariantRules(t *testing.T) {
	p := validProduct()
	p.ProductDefinitions.Variants = nil
	if r := Product(p, validAssets()); !hasCode(r, "VAR_003") || r.HasErrors() {
		t.Fatalf("absent variants section should only warn: %+v", r.Issues)
	}

	p.ProductDefinitions.Variants = &gldf.Variants{}
	if r := Product(p, validAssets()); !hasCode(r, "VAR_001") || r.HasErrors() {
		t.Fatalf("empty variants should only warn: %+v", r.Issues)
	}

	p.ProductDefinitions.Variants = &gldf.Variants{Variant: []gldf.Variant{{}}}
	if r := Product(p, validAssets()); !hasCode(r, "VAR_002") || !r.HasErrors() {
		t.Fatalf("variant without ID should error: %+v", r.Issues)
	}
}

func TestDuplicateIDs(t *testing.T) {
	p := validProduct()
	p.GeneralDefinitions.Files.File = append(p.GeneralDefinitions.Files.File,
		gldf.File{ID: "ldt_1", ContentType: "ldc/ies", Kind: gldf.FileKindLocal, FileName: "dup.ies"})
	p.ProductDefinitions.Variants.Variant = append(p.ProductDefinitions.Variants.Variant,
		gldf.Variant{ID: "variant_1"})
	p.GeneralDefinitions.Photometries.Photometry = append(p.GeneralDefinitions.Photometries.Photometry,
		gldf.Photometry{ID: "phot_1"})
	p.GeneralDefinitions.Emitters = &gldf.Emitters{Emitter: []gldf.Emitter{{ID: "e_1"}, {ID: "e_1"}}}

	r := Product(p, container.Assets{"ldt_1": []byte("x")})
	for _, code := range []string{"UNIQUE_001", "UNIQUE_002", "UNIQUE_003", "UNIQUE_004"} {
		if !hasCode(r, code) {
			t.Errorf("missing %s in %+v", code, r.Issues)
		}
	}
}

func TestGeometryReferenceRules(t *testing.T) {
	p := validProduct()
	p.GeneralDefinitions.Geometries = &gldf.Geometries{
		SimpleGeometry: []gldf.SimpleGeometry{{}},
		ModelGeometry: []gldf.ModelGeometry{
			{ID: "geo_1", GeometryFileReference: []gldf.GeometryFileReference{{FileID: "nope"}}},
		},
	}
	r := Product(p, validAssets())
	if !hasCode(r, "GEOM_001") {
		t.Errorf("missing GEOM_001: %+v", r.Issues)
	}
	if !hasCode(r, "GEOM_003") {
		t.Errorf("missing GEOM_003: %+v", r.Issues)
	}
}

func TestDeterministicOrder(t *testing.T) {
	p := validProduct()
	p.Header.Author = ""
	p.GeneralDefinitions.Photometries.Photometry[0].PhotometryFileReference.FileID = "missing"

	r := Product(p, validAssets())
	if len(r.Issues) < 2 {
		t.Fatalf("issues = %+v", r.Issues)
	}
	// Header findings always precede photometry findings.
	if r.Issues[0].Code != "HEADER_001" {
		t.Errorf("first issue = %+v, want HEADER_001", r.Issues[0])
	}
}

func TestCounts(t *testing.T) {
	p := validProduct()
	p.Header.Author = ""
	p.Header.CreationTimeCode = ""
	p.ProductDefinitions.Variants = nil

	r := Product(p, validAssets())
	errs, warns, infos := r.Counts()
	if errs != 1 || warns != 1 || infos != 1 {
		t.Fatalf("counts = %d/%d/%d, want 1/1/1 (%+v)", errs, warns, infos, r.Issues)
	}
}
