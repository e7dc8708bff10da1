// Package schema defines the Ingredient domain entity and the validation
// rules applied when constructing one from extracted field values.
package schema

import (
	"fmt"
	"strings"
)

// IngredientType is the closed set of ingredient category labels.
type IngredientType string

const (
	TypeProtein          IngredientType = "Protein"
	TypeDairy            IngredientType = "Dairy"
	TypeFruit            IngredientType = "Fruit"
	TypeVegetable        IngredientType = "Vegetable"
	TypeGrain            IngredientType = "Grain"
	TypeLegumePulse      IngredientType = "Legume/Pulse"
	TypeBakingIngredient IngredientType = "Baking Ingredient"
	TypeCondimentSauce   IngredientType = "Condiment/Sauce"
	TypeNutsSeeds        IngredientType = "Nuts/Seeds"
	TypeHerbSpice        IngredientType = "Herb/Spice"
	TypeOilFat           IngredientType = "Oil/Fat"
	TypeOther            IngredientType = "Other"
)

// ingredientTypes is the membership set for ParseIngredientType.
var ingredientTypes = map[IngredientType]struct{}{
	TypeProtein:          {},
	TypeDairy:            {},
	TypeFruit:            {},
	TypeVegetable:        {},
	TypeGrain:            {},
	TypeLegumePulse:      {},
	TypeBakingIngredient: {},
	TypeCondimentSauce:   {},
	TypeNutsSeeds:        {},
	TypeHerbSpice:        {},
	TypeOilFat:           {},
	TypeOther:            {},
}

// ParseIngredientType matches a source label against the category enumeration.
// Labels are matched exactly; unrecognized labels fail with InvalidEnum.
func ParseIngredientType(s string) (IngredientType, error) {
	t := IngredientType(s)
	if _, ok := ingredientTypes[t]; !ok {
		return "", &ValidationError{Kind: InvalidEnum, Field: "type", Value: s}
	}
	return t, nil
}

// UnitOfMeasurement is the closed set of measurement units.
// Values are stored case-normalized (lowercased).
type UnitOfMeasurement string

const (
	UnitGrams UnitOfMeasurement = "grams"
)

// ParseUnitOfMeasurement lowercases a source label and matches it against the
// unit enumeration.
func ParseUnitOfMeasurement(s string) (UnitOfMeasurement, error) {
	u := UnitOfMeasurement(strings.ToLower(s))
	if u != UnitGrams {
		return "", &ValidationError{Kind: InvalidEnum, Field: "units_of_measurement", Value: s}
	}
	return u, nil
}

// Fields is the bag of values extracted from one raw record. Pointer members
// distinguish an absent value from a zero value; extraction fills in nil for
// every field it could not reach.
type Fields struct {
	Name             *string
	Type             *string
	Units            *string
	CaloriesPer100g  *float64
	ProteinPer100g   *float64
	FatPer100g       *float64
	CarbsPer100g     *float64
	ShelfLifeRoom    *float64
	ShelfLifeFridge  *float64
	ShelfLifeFreezer *float64
}

// Ingredient is the validated domain entity derived from one raw record.
type Ingredient struct {
	Name             string            `json:"name"`
	Type             IngredientType    `json:"type"`
	Units            UnitOfMeasurement `json:"units_of_measurement"`
	CaloriesPer100g  float64           `json:"calories_per_100g"`
	ProteinPer100g   float64           `json:"protein_per_100g"`
	FatPer100g       float64           `json:"fat_per_100g"`
	CarbsPer100g     float64           `json:"carbs_per_100g"`
	ShelfLifeRoom    *int              `json:"shelf_life_room,omitempty"`
	ShelfLifeFridge  *int              `json:"shelf_life_fridge,omitempty"`
	ShelfLifeFreezer *int              `json:"shelf_life_freezer,omitempty"`
}

// NewIngredient constructs an Ingredient from extracted field values.
// Every required field must be present and type-coercible; the optional
// shelf-life fields pass through nil unchanged with no default substitution.
func NewIngredient(f Fields) (Ingredient, error) {
	if f.Name == nil || *f.Name == "" {
		return Ingredient{}, &ValidationError{Kind: MissingRequiredField, Field: "name"}
	}
	if f.Type == nil {
		return Ingredient{}, &ValidationError{Kind: MissingRequiredField, Field: "type"}
	}
	ingredientType, err := ParseIngredientType(*f.Type)
	if err != nil {
		return Ingredient{}, err
	}

	// A missing unit cannot be lowercased; absence fails before normalization.
	if f.Units == nil {
		return Ingredient{}, &ValidationError{Kind: MissingRequiredField, Field: "units_of_measurement"}
	}
	units, err := ParseUnitOfMeasurement(*f.Units)
	if err != nil {
		return Ingredient{}, err
	}

	required := []struct {
		field string
		value *float64
	}{
		{"calories_per_100g", f.CaloriesPer100g},
		{"protein_per_100g", f.ProteinPer100g},
		{"fat_per_100g", f.FatPer100g},
		{"carbs_per_100g", f.CarbsPer100g},
	}
	for _, r := range required {
		if r.value == nil {
			return Ingredient{}, &ValidationError{Kind: MissingRequiredField, Field: r.field}
		}
	}

	return Ingredient{
		Name:             *f.Name,
		Type:             ingredientType,
		Units:            units,
		CaloriesPer100g:  *f.CaloriesPer100g,
		ProteinPer100g:   *f.ProteinPer100g,
		FatPer100g:       *f.FatPer100g,
		CarbsPer100g:     *f.CarbsPer100g,
		ShelfLifeRoom:    toDays(f.ShelfLifeRoom),
		ShelfLifeFridge:  toDays(f.ShelfLifeFridge),
		ShelfLifeFreezer: toDays(f.ShelfLifeFreezer),
	}, nil
}

// toDays converts an optional numeric day count to an integer, preserving nil.
func toDays(v *float64) *int {
	if v == nil {
		return nil
	}
	days := int(*v)
	return &days
}

// ValidationKind classifies why constructing an Ingredient failed.
type ValidationKind string

const (
	// MissingRequiredField indicates a required field was absent or null.
	MissingRequiredField ValidationKind = "missing_required_field"

	// InvalidEnum indicates a value outside a fixed enumeration set.
	InvalidEnum ValidationKind = "invalid_enum"
)

// ValidationError reports a per-record construction failure.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation %s: field %q: unrecognized value %q", e.Kind, e.Field, e.Value)
	}
	return fmt.Sprintf("validation %s: field %q", e.Kind, e.Field)
}
