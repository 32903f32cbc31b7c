package gldf

// File kinds: how the file body is obtained.
const (
	FileKindLocal = "localFileName"
	FileKindURL   = "url"
)

// File is a file definition: a typed pointer to a binary payload that either
// lives inside the container (localFileName) or on the web (url). The element
// body carries the display name (or the URL for url-kind files).
type File struct {
	ID          string `xml:"id,attr" json:"id" yaml:"id"`
	ContentType string `xml:"contentType,attr" json:"contentType" yaml:"content_type"`
	Kind        string `xml:"type,attr,omitempty" json:"type,omitempty" yaml:"type,omitempty"`
	Language    string `xml:"language,attr,omitempty" json:"language,omitempty" yaml:"language,omitempty"`
	FileName    string `xml:",chardata" json:"fileName" yaml:"file_name"`
}

// IsURL reports whether the file body is fetched from the web rather than
// embedded in the container.
func (f *File) IsURL() bool { return f.Kind == FileKindURL }

// Files is the mandatory file definition collection.
type Files struct {
	File []File `xml:"File" json:"file" yaml:"file"`
}

// Image references a file definition that holds a picture.
type Image struct {
	ImageType string `xml:"imageType,attr" json:"imageType" yaml:"image_type"`
	FileID    string `xml:"fileId,attr" json:"fileId" yaml:"file_id"`
}

// Images groups picture references.
type Images struct {
	Image []Image `xml:"Image" json:"image" yaml:"image"`
}

// Hyperlink is an external link attached to product metadata.
type Hyperlink struct {
	Href        string `xml:"href,attr" json:"href" yaml:"href"`
	Language    string `xml:"language,attr,omitempty" json:"language,omitempty" yaml:"language,omitempty"`
	Region      string `xml:"region,attr,omitempty" json:"region,omitempty" yaml:"region,omitempty"`
	CountryCode string `xml:"countryCode,attr,omitempty" json:"countryCode,omitempty" yaml:"country_code,omitempty"`
	Value       string `xml:",chardata" json:"value" yaml:"value"`
}

// Hyperlinks groups external links.
type Hyperlinks struct {
	Hyperlink []Hyperlink `xml:"Hyperlink" json:"hyperlink" yaml:"hyperlink"`
}
