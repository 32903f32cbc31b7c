package gldf

import (
	"strings"
	"testing"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<Root>
  <Header>
    <Manufacturer>Acme Lighting</Manufacturer>
    <FormatVersion major="1" minor="0" pre-release="3"/>
    <CreatedWithApplication>luxkit-test</CreatedWithApplication>
    <GldfCreationTimeCode>2024-03-01T10:15:00</GldfCreationTimeCode>
    <UniqueGldfId>7e4f3a52-0000-4000-8000-000000000001</UniqueGldfId>
  </Header>
  <GeneralDefinitions>
    <Files>
      <File id="ldt_1" contentType="ldc/eulumdat" type="localFileName">dist.ldt</File>
      <File id="url_1" contentType="document/pdf" type="url">https://example.com/ds.pdf</File>
    </Files>
    <Photometries>
      <Photometry id="phot_1">
        <PhotometryFileReference fileId="ldt_1"/>
      </Photometry>
    </Photometries>
  </GeneralDefinitions>
  <ProductDefinitions>
    <ProductMetaData>
      <Name>
        <Locale language="en">Downlight One</Locale>
        <Locale language="de">Downlight Eins</Locale>
      </Name>
    </ProductMetaData>
    <Variants>
      <Variant id="variant_1">
        <Name>
          <Locale language="en">Standard</Locale>
        </Name>
      </Variant>
    </Variants>
  </ProductDefinitions>
</Root>
`

func TestFromXML(t *testing.T) {
	p, err := FromXML([]byte(sampleXML))
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	if p.Header.Manufacturer != "Acme Lighting" {
		t.Errorf("manufacturer = %q", p.Header.Manufacturer)
	}
	if v := p.Header.FormatVersion; v.Major != 1 || v.Minor != 0 || v.PreRelease == nil || *v.PreRelease != 3 {
		t.Errorf("format version = %+v", v)
	}
	f, ok := p.File("url_1")
	if !ok || !f.IsURL() || f.FileName != "https://example.com/ds.pdf" {
		t.Errorf("url file = %+v, ok=%v", f, ok)
	}
	if name := p.ProductDefinitions.ProductMetaData.Name.First(); name != "Downlight One" {
		t.Errorf("product name = %q", name)
	}
}

func TestFromXMLStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleXML)...)
	if _, err := FromXML(data); err != nil {
		t.Fatalf("FromXML with BOM: %v", err)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	p, err := FromXML([]byte(sampleXML))
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	out, err := p.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if !strings.HasPrefix(string(out), "<?xml") {
		t.Errorf("missing xml declaration: %q", out[:20])
	}
	back, err := FromXML(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if back.Header.UniqueGldfID != p.Header.UniqueGldfID {
		t.Errorf("unique id changed across round trip")
	}
	if len(back.GeneralDefinitions.Files.File) != 2 {
		t.Errorf("file count changed across round trip: %d", len(back.GeneralDefinitions.Files.File))
	}
	if back.ProductDefinitions.Variants == nil || len(back.ProductDefinitions.Variants.Variant) != 1 {
		t.Errorf("variants lost across round trip")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p, err := FromXML([]byte(sampleXML))
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}
	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if back.Header.Manufacturer != p.Header.Manufacturer {
		t.Errorf("manufacturer changed across json round trip")
	}
	ph, ok := back.Photometry("phot_1")
	if !ok || ph.PhotometryFileReference == nil || ph.PhotometryFileReference.FileID != "ldt_1" {
		t.Errorf("photometry lost across json round trip: %+v ok=%v", ph, ok)
	}
}

func TestParseFormatVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.0.0-rc.3", "1.0.0-rc.3"},
		{"1.0.0", "1.0.0"},
		{"1.1.0-rc.1", "1.1.0-rc.1"},
	}
	for _, tc := range cases {
		if got := ParseFormatVersion(tc.in).String(); got != tc.want {
			t.Errorf("ParseFormatVersion(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}
