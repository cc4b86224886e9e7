// Package domain defines the core business entities for lenscout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Lens: A lens record scraped from a catalog listing
//   - ExamplePhotos: Up to three example photo links for a lens
//   - LensRow: A lens joined with its example photos
//   - Photo: A photo record returned by the photo API
//   - ExifSample: The EXIF fields extracted for one photo
//   - CatalogSource: One listing page covering a single mount family
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
