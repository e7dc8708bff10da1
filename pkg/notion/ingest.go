package notion

import (
	"errors"

	"github.com/recipebuddy/notion-ingredient-client/pkg/schema"
)

// Property names of the ingredient database schema.
const (
	propName         = "Name"
	propType         = "Type"
	propUnits        = "Units of Measurement"
	propCalories     = "Calories per 100g"
	propProtein      = "Protein per 100g"
	propFat          = "Fat per 100g"
	propCarbs        = "Carbohydrate per 100g"
	propShelfRoom    = "Shelf life room"
	propShelfFridge  = "Shelf life fridge"
	propShelfFreezer = "Shelf life freezer"
)

// placeholderName is used in diagnostics when a record's name is unextractable.
const placeholderName = "<unknown>"

// ExtractFields navigates a record's property bag and collects the known
// ingredient fields. Absent properties and absent sub-paths yield nil field
// values; extraction itself only fails for structurally undecodable
// properties (ErrMalformedRecord). Absence is judged at construction time.
func ExtractFields(page Page) (schema.Fields, error) {
	var (
		fields schema.Fields
		err    error
	)

	if fields.Name, err = page.Properties.TitleText(propName); err != nil {
		return schema.Fields{}, err
	}
	if fields.Type, err = page.Properties.SelectName(propType); err != nil {
		return schema.Fields{}, err
	}
	if fields.Units, err = page.Properties.SelectName(propUnits); err != nil {
		return schema.Fields{}, err
	}
	if fields.CaloriesPer100g, err = page.Properties.Number(propCalories); err != nil {
		return schema.Fields{}, err
	}
	if fields.ProteinPer100g, err = page.Properties.Number(propProtein); err != nil {
		return schema.Fields{}, err
	}
	if fields.FatPer100g, err = page.Properties.Number(propFat); err != nil {
		return schema.Fields{}, err
	}
	if fields.CarbsPer100g, err = page.Properties.Number(propCarbs); err != nil {
		return schema.Fields{}, err
	}
	if fields.ShelfLifeRoom, err = page.Properties.Number(propShelfRoom); err != nil {
		return schema.Fields{}, err
	}
	if fields.ShelfLifeFridge, err = page.Properties.Number(propShelfFridge); err != nil {
		return schema.Fields{}, err
	}
	if fields.ShelfLifeFreezer, err = page.Properties.Number(propShelfFreezer); err != nil {
		return schema.Fields{}, err
	}

	return fields, nil
}

// ParseRecord converts one raw record into an Ingredient. Pure: extraction
// followed by construction, no side effects.
func ParseRecord(page Page) (schema.Ingredient, error) {
	fields, err := ExtractFields(page)
	if err != nil {
		return schema.Ingredient{}, err
	}
	return schema.NewIngredient(fields)
}

// ParseIngredients maps accumulated records to ingredients in order. Records
// failing validation, or carrying a malformed property structure, are dropped
// with a diagnostic; any other failure aborts the batch.
func (c *Client) ParseIngredients(pages []Page) ([]schema.Ingredient, error) {
	ingredients := make([]schema.Ingredient, 0, len(pages))
	for _, page := range pages {
		ingredient, err := ParseRecord(page)
		if err != nil {
			reason, skippable := skipReason(err)
			if !skippable {
				return nil, err
			}
			notionRecordsSkippedTotal.WithLabelValues(reason).Inc()
			c.logger.Info().
				Err(err).
				Msgf("Skipping ingredient %s due to missing attributes", displayName(page))
			continue
		}
		notionIngredientsParsedTotal.Inc()
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// skipReason reports whether an error is recoverable per record, and under
// which metric label.
func skipReason(err error) (string, bool) {
	var vErr *schema.ValidationError
	if errors.As(err, &vErr) {
		return string(vErr.Kind), true
	}
	if errors.Is(err, ErrMalformedRecord) {
		return "malformed_record", true
	}
	return "", false
}

// displayName extracts a best-effort human-readable identifier for
// diagnostics only.
func displayName(page Page) string {
	name, err := page.Properties.TitleText(propName)
	if err != nil || name == nil || *name == "" {
		return placeholderName
	}
	return *name
}
