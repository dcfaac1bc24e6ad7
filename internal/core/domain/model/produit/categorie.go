package produit

import (
	"fmt"

	"gardenstore/internal/pkg/errs"
)

// Categorie classifies a product within the store's catalogue.
// It is a closed enumeration persisted by its string representation,
// so values coming from storage or the API must be validated before use.
type Categorie int

const (
	// UnknownCategorie represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Categorie values.
	UnknownCategorie Categorie = iota

	// Fleur covers flowers and flowering plants.
	Fleur

	// Arbuste covers shrubs and small trees.
	Arbuste

	// PlanteInterieur covers indoor plants.
	PlanteInterieur

	// Outillage covers garden tools.
	Outillage

	// Amenagement covers landscaping and garden-layout supplies.
	Amenagement
)

// getCategorieStrings returns a map of Categorie values to their string
// representations. All categories are included for string conversion.
func getCategorieStrings() map[Categorie]string {
	return map[Categorie]string{
		UnknownCategorie: "UNKNOWN",
		Fleur:            "FLEUR",
		Arbuste:          "ARBUSTE",
		PlanteInterieur:  "PLANTE_INTERIEUR",
		Outillage:        "OUTILLAGE",
		Amenagement:      "AMENAGEMENT",
	}
}

// getValidCategorieStrings returns a map of only valid Categorie values.
// Only valid categories are included to support validation.
func getValidCategorieStrings() map[Categorie]string {
	//nolint:exhaustive // UnknownCategorie is intentionally excluded as it's invalid
	return map[Categorie]string{
		Fleur:           "FLEUR",
		Arbuste:         "ARBUSTE",
		PlanteInterieur: "PLANTE_INTERIEUR",
		Outillage:       "OUTILLAGE",
		Amenagement:     "AMENAGEMENT",
	}
}

// Validate checks if the Categorie value is valid.
// UnknownCategorie (0) and any other values are invalid.
func (c Categorie) Validate() error {
	if _, ok := getValidCategorieStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("categorie",
			fmt.Errorf("%d is not a valid categorie", c))
	}
	return nil
}

// String returns the persisted string representation of the category.
// Unknown values render as "UNKNOWN".
func (c Categorie) String() string {
	if s, ok := getCategorieStrings()[c]; ok {
		return s
	}
	return getCategorieStrings()[UnknownCategorie]
}

// CategorieFromString parses a category from its persisted representation.
// Returns a ValueIsInvalid error for unknown strings, including "UNKNOWN".
func CategorieFromString(s string) (Categorie, error) {
	for categorie, str := range getValidCategorieStrings() {
		if str == s {
			return categorie, nil
		}
	}
	return UnknownCategorie, errs.NewValueIsInvalidErrorWithCause("categorie",
		fmt.Errorf("%q is not a valid categorie", s))
}
