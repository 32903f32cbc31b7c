package gldf

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVersion is the GLDF schema version of a document.
//
// Modern files carry major/minor/pre-release attributes; very old files put a
// plain "1.0.0-rc.1" style string in the element body, which ParseFormatVersion
// accepts.
type FormatVersion struct {
	Major      int  `xml:"major,attr" json:"major" yaml:"major"`
	Minor      int  `xml:"minor,attr" json:"minor" yaml:"minor"`
	PreRelease *int `xml:"pre-release,attr,omitempty" json:"preRelease,omitempty" yaml:"pre_release,omitempty"`
}

// ParseFormatVersion parses a version string like "1.0.0-rc.3".
func ParseFormatVersion(s string) FormatVersion {
	v := FormatVersion{Major: 1}
	base, pre, hasPre := strings.Cut(s, "-")
	parts := strings.Split(base, ".")
	if len(parts) > 0 {
		if n, err := strconv.Atoi(parts[0]); err == nil {
			v.Major = n
		}
	}
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			v.Minor = n
		}
	}
	if hasPre {
		// "rc.3" → 3
		if i := strings.LastIndex(pre, "."); i >= 0 {
			if n, err := strconv.Atoi(pre[i+1:]); err == nil {
				v.PreRelease = &n
			}
		}
	}
	return v
}

// String renders the version as "1.0.0-rc.3" or "1.0.0".
func (v FormatVersion) String() string {
	if v.PreRelease != nil {
		return fmt.Sprintf("%d.%d.0-rc.%d", v.Major, v.Minor, *v.PreRelease)
	}
	return fmt.Sprintf("%d.%d.0", v.Major, v.Minor)
}

// Locale is a language-tagged text value.
type Locale struct {
	Language string `xml:"language,attr,omitempty" json:"language,omitempty" yaml:"language,omitempty"`
	Value    string `xml:",chardata" json:"value" yaml:"value"`
}

// LocaleText is a collection of localized strings for one logical field.
type LocaleText struct {
	Locale []Locale `xml:"Locale" json:"locale" yaml:"locale"`
}

// First returns the first localized value, or "" if none.
func (l *LocaleText) First() string {
	if l == nil || len(l.Locale) == 0 {
		return ""
	}
	return l.Locale[0].Value
}

// LicenseKey associates a license key with an application.
type LicenseKey struct {
	Application string `xml:"application,attr,omitempty" json:"application,omitempty" yaml:"application,omitempty"`
	Value       string `xml:",chardata" json:"value" yaml:"value"`
}

// LicenseKeys is the optional license key list of the header.
type LicenseKeys struct {
	LicenseKey []LicenseKey `xml:"LicenseKey" json:"licenseKey" yaml:"license_key"`
}

// EMail is a single contact email address.
type EMail struct {
	MailTo string `xml:"mailto,attr,omitempty" json:"mailto,omitempty" yaml:"mailto,omitempty"`
	Value  string `xml:",chardata" json:"value" yaml:"value"`
}

// EMailAddresses groups the email addresses of an Address.
type EMailAddresses struct {
	EMail []EMail `xml:"EMail" json:"email" yaml:"email"`
}

// Address is one postal/contact entry of the manufacturer contact block.
type Address struct {
	FirstName      string          `xml:"FirstName" json:"firstName" yaml:"first_name"`
	Name           string          `xml:"Name" json:"name" yaml:"name"`
	Street         string          `xml:"Street" json:"street" yaml:"street"`
	ZIPCode        string          `xml:"ZIPCode" json:"zipCode" yaml:"zip_code"`
	City           string          `xml:"City" json:"city" yaml:"city"`
	Country        string          `xml:"Country" json:"country" yaml:"country"`
	Phone          string          `xml:"Phone" json:"phone" yaml:"phone"`
	EMailAddresses *EMailAddresses `xml:"EMailAddresses,omitempty" json:"emailAddresses,omitempty" yaml:"email_addresses,omitempty"`
}

// Contact holds the manufacturer contact addresses.
type Contact struct {
	Address []Address `xml:"Address" json:"address" yaml:"address"`
}

// Header is the document header: authorship, tooling, and format version.
type Header struct {
	Manufacturer           string        `xml:"Manufacturer" json:"manufacturer" yaml:"manufacturer"`
	FormatVersion          FormatVersion `xml:"FormatVersion" json:"formatVersion" yaml:"format_version"`
	CreatedWithApplication string        `xml:"CreatedWithApplication,omitempty" json:"createdWithApplication,omitempty" yaml:"created_with_application,omitempty"`
	CreationTimeCode       string        `xml:"GldfCreationTimeCode,omitempty" json:"creationTimeCode,omitempty" yaml:"creation_time_code,omitempty"`
	UniqueGldfID           string        `xml:"UniqueGldfId,omitempty" json:"uniqueGldfId,omitempty" yaml:"unique_gldf_id,omitempty"`
	DefaultLanguage        string        `xml:"DefaultLanguage,omitempty" json:"defaultLanguage,omitempty" yaml:"default_language,omitempty"`
	LicenseKeys            *LicenseKeys  `xml:"LicenseKeys,omitempty" json:"licenseKeys,omitempty" yaml:"license_keys,omitempty"`
	Author                 string        `xml:"Author,omitempty" json:"author,omitempty" yaml:"author,omitempty"`
	Contact                *Contact      `xml:"Contact,omitempty" json:"contact,omitempty" yaml:"contact,omitempty"`
}
