package domain

import "strings"

// NoExamplePhoto fills an example slot when a detail page offers fewer than three photos.
const NoExamplePhoto = "NAN"

// ExampleSlots is the fixed number of example photo slots per lens.
const ExampleSlots = 3

// Lens is one lens record scraped from a catalog listing.
type Lens struct {
	// Name is the full lens name and the primary key.
	Name string `json:"name"`

	// Brand is the first whitespace-separated token of Name.
	Brand string `json:"brand"`

	// Mount is derived from the brand and name tokens.
	Mount string `json:"mount"`

	// FocalMin and FocalMax are in millimetres. Equal for primes.
	FocalMin int `json:"focal_min"`
	FocalMax int `json:"focal_max"`

	// DetailLink points at the lens page holding example photos.
	DetailLink string `json:"detail_link"`

	// DevelopmentYear is read from the listing but not persisted.
	DevelopmentYear string `json:"development_year,omitempty"`
}

// Covers reports whether focal lies within the lens range, inclusive.
func (l Lens) Covers(focal int) bool {
	return l.FocalMin <= focal && focal <= l.FocalMax
}

// IsZoom reports whether the lens covers more than one focal length.
func (l Lens) IsZoom() bool {
	return l.FocalMax > l.FocalMin
}

// ExamplePhotos holds exactly three example photo links for a lens.
type ExamplePhotos struct {
	LensName string               `json:"lens_name"`
	Examples [ExampleSlots]string `json:"examples"`
}

// NewExamplePhotos fills slots in order and pads the rest with NoExamplePhoto.
// Links beyond the third are ignored.
func NewExamplePhotos(lensName string, links []string) ExamplePhotos {
	set := ExamplePhotos{LensName: lensName}
	for i := range set.Examples {
		if i < len(links) {
			set.Examples[i] = links[i]
		} else {
			set.Examples[i] = NoExamplePhoto
		}
	}
	return set
}

// Count returns the number of slots holding a real link.
func (e ExamplePhotos) Count() int {
	n := 0
	for _, ex := range e.Examples {
		if ex != NoExamplePhoto && ex != "" {
			n++
		}
	}
	return n
}

// CatalogEntry is one listing row carried end to end as a single record.
type CatalogEntry struct {
	Lens     Lens
	Examples ExamplePhotos
}

// LensRow is a lens joined with its example photos.
type LensRow struct {
	Lens
	Examples [ExampleSlots]string `json:"examples"`
}

// CatalogSource is one listing page covering a single camera-mount family.
type CatalogSource struct {
	// URL is the listing page address.
	URL string `json:"url" yaml:"url"`

	// Mount names the mount family of the page. It is used for brands
	// that have no mount rule of their own.
	Mount string `json:"mount,omitempty" yaml:"mount,omitempty"`
}

// String returns the source URL.
func (s CatalogSource) String() string {
	return s.URL
}

// DefaultCatalogSources lists the lens-db.com pages refreshed when none are configured.
func DefaultCatalogSources() []CatalogSource {
	const base = "https://lens-db.com/lens-lineup/"
	return []CatalogSource{
		{URL: base + "canon-ef/", Mount: "Canon EF"},
		{URL: base + "canon-ef-m/", Mount: "Canon EF-M"},
		{URL: base + "canon-ef-s/", Mount: "Canon EF-S"},
		{URL: base + "canon-rf/", Mount: "Canon RF"},
		{URL: base + "fujifilm-x/", Mount: "Fujifilm X"},
		{URL: base + "leica-l-35mm/", Mount: "L Mount"},
		{URL: base + "nikon-f-35mm/", Mount: "Nikon AF"},
		{URL: base + "nikon-f-aps-c/", Mount: "Nikon AF DX"},
		{URL: base + "nikon-z-35mm/", Mount: "Nikon Z"},
		{URL: base + "nikon-z-aps-c/", Mount: "Nikon Z DX"},
		{URL: base + "sony-e/", Mount: "Sony FE"},
		{URL: base + "sony-e-aps-c/", Mount: "Sony E"},
	}
}

// ParseCatalogSources turns "url" or "url=mount" strings into sources.
// Blank entries are dropped.
func ParseCatalogSources(values []string) []CatalogSource {
	sources := make([]CatalogSource, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		url, mount, _ := strings.Cut(v, "=")
		sources = append(sources, CatalogSource{
			URL:   strings.TrimSpace(url),
			Mount: strings.TrimSpace(mount),
		})
	}
	return sources
}
