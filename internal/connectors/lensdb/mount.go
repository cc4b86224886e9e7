package lensdb

import (
	"slices"
	"strings"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
)

// lMountBrands share the L-Mount alliance label.
var lMountBrands = []string{"Sigma", "Leica", "Panasonic"}

// DeriveMount returns the mount label for a lens name. Brands without a
// rule use fallback, the mount family of the listing page; an empty
// fallback makes the record an extraction gap.
func DeriveMount(name, fallback string) (string, error) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", mountGap(name, "empty name")
	}
	brand := tokens[0]

	switch {
	case brand == "Fujifilm":
		return brandWithToken(name, tokens, 2)
	case brand == "Canon", brand == "Sony":
		return brandWithToken(name, tokens, 1)
	case brand == "Nikon":
		hasDX := slices.Contains(tokens, "DX")
		if slices.Contains(tokens, "Z") {
			if hasDX {
				return "Nikon Z DX", nil
			}
			return "Nikon Z", nil
		}
		if hasDX {
			return "Nikon AF DX", nil
		}
		return brandWithToken(name, tokens, 1)
	case slices.Contains(lMountBrands, brand):
		return "L Mount", nil
	case fallback != "":
		return fallback, nil
	default:
		return "", mountGap(name, "no mount rule for brand "+brand)
	}
}

func brandWithToken(name string, tokens []string, i int) (string, error) {
	if len(tokens) <= i {
		return "", mountGap(name, "name too short for brand rule")
	}
	return tokens[0] + " " + tokens[i], nil
}

func mountGap(name, detail string) error {
	return &domain.ExtractionGapError{Lens: name, Field: "mount", Detail: detail}
}
