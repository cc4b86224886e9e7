package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAPIKeyMissing indicates the photo API key is not configured.
	ErrAPIKeyMissing = errors.New("photo API key not configured")

	// Pipeline Errors.

	// ErrFetch indicates a network or upstream failure while fetching a resource.
	ErrFetch = errors.New("fetch failed")

	// ErrScrapeStructure indicates a catalog page no longer has the expected markup.
	ErrScrapeStructure = errors.New("unexpected page structure")

	// ErrExtractionGap indicates a required field could not be derived for one record.
	ErrExtractionGap = errors.New("extraction gap")
)

// FetchError describes a failed outbound request.
// Nothing is cached when a FetchError is returned.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s failed", e.URL)
	}
}

// Unwrap allows errors.Is against ErrFetch and the underlying cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}

// ScrapeStructureError reports which catalog source and stage failed to parse.
type ScrapeStructureError struct {
	Source string
	Stage  string
	Detail string
}

func (e *ScrapeStructureError) Error() string {
	return fmt.Sprintf("%s: %s stage: %s", e.Source, e.Stage, e.Detail)
}

func (e *ScrapeStructureError) Unwrap() error {
	return ErrScrapeStructure
}

// ExtractionGapError reports a field that could not be derived for a single lens.
// The record is skipped; the rest of the source is still processed.
type ExtractionGapError struct {
	Lens   string
	Field  string
	Detail string
}

func (e *ExtractionGapError) Error() string {
	return fmt.Sprintf("lens %q: cannot derive %s: %s", e.Lens, e.Field, e.Detail)
}

func (e *ExtractionGapError) Unwrap() error {
	return ErrExtractionGap
}

// DuplicateKeyError reports a lens name that was already inserted during a refresh.
type DuplicateKeyError struct {
	Name string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("lens %q: %v", e.Name, ErrAlreadyExists)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrAlreadyExists
}

// SourceError ties a failure to the catalog source and refresh stage it aborted.
type SourceError struct {
	Source string
	Stage  string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s stage: %v", e.Source, e.Stage, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
