package domain

import (
	"sort"
	"time"
)

// FrequencyCount is how often one value was observed.
type FrequencyCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountFrequencies tallies values, most frequent first.
// Ties are ordered by value so output is stable.
func CountFrequencies(values []string) []FrequencyCount {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	result := make([]FrequencyCount, 0, len(counts))
	for v, n := range counts {
		result = append(result, FrequencyCount{Value: v, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result
}

// ExifReport aggregates EXIF samples for one keyword.
type ExifReport struct {
	Keyword string `json:"keyword"`

	// Photos is the number of photos the search returned.
	Photos int `json:"photos"`

	// Samples is the number of photos with at least one extracted field.
	Samples int `json:"samples"`

	FocalLengths []FrequencyCount `json:"focal_lengths"`
	Makes        []FrequencyCount `json:"makes"`
	Models       []FrequencyCount `json:"models"`
}

// NewExifReport collects the present fields of each sample and counts them.
func NewExifReport(keyword string, photos int, samples []ExifSample) ExifReport {
	var focals, makes, models []string
	withData := 0
	for _, s := range samples {
		if s.Empty() {
			continue
		}
		withData++
		if s.FocalLength35mm != nil {
			focals = append(focals, *s.FocalLength35mm)
		}
		if s.Make != nil {
			makes = append(makes, *s.Make)
		}
		if s.Model != nil {
			models = append(models, *s.Model)
		}
	}

	return ExifReport{
		Keyword:      keyword,
		Photos:       photos,
		Samples:      withData,
		FocalLengths: CountFrequencies(focals),
		Makes:        CountFrequencies(makes),
		Models:       CountFrequencies(models),
	}
}

// Refresh stages reported on failure.
const (
	StageListing = "listing"
	StageDetail  = "detail"
	StageStore   = "store"
)

// SourceFailure names the catalog source and stage that aborted.
type SourceFailure struct {
	Source string `json:"source"`
	Stage  string `json:"stage"`
	Error  string `json:"error"`
}

// SourceResult counts what one catalog source contributed.
type SourceResult struct {
	Source          string   `json:"source"`
	LensesInserted  int      `json:"lenses_inserted"`
	Duplicates      []string `json:"duplicates,omitempty"`
	Skipped         []string `json:"skipped,omitempty"`
	ExamplesStored  int      `json:"examples_stored"`
	ExamplesIgnored int      `json:"examples_ignored"`
}

// RefreshReport summarises one full catalog rebuild.
type RefreshReport struct {
	RunID      string          `json:"run_id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Sources    []SourceResult  `json:"sources"`
	Failures   []SourceFailure `json:"failures,omitempty"`
}

// TotalLenses returns the number of lenses inserted across all sources.
func (r *RefreshReport) TotalLenses() int {
	n := 0
	for _, s := range r.Sources {
		n += s.LensesInserted
	}
	return n
}

// Failed reports whether any source aborted.
func (r *RefreshReport) Failed() bool {
	return len(r.Failures) > 0
}

// CatalogStats describes the current contents of the catalog store.
type CatalogStats struct {
	Lenses      int      `json:"lenses"`
	ExampleSets int      `json:"example_sets"`
	Brands      []string `json:"brands"`
}
