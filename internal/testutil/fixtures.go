package testutil

import (
	"time"

	"github.com/google/uuid"
)

// PageFixture is one raw database record as served by the mock API.
type PageFixture map[string]any

// NewIngredientPage builds a fully populated ingredient record.
func NewIngredientPage(name, ingredientType, units string, calories, protein, fat, carbs float64) PageFixture {
	now := time.Now().UTC().Format(time.RFC3339)
	return PageFixture{
		"object":           "page",
		"id":               uuid.NewString(),
		"created_time":     now,
		"last_edited_time": now,
		"archived":         false,
		"in_trash":         false,
		"url":              "https://www.notion.so/" + uuid.NewString(),
		"properties": map[string]any{
			"Name":                  titleProp(name),
			"Type":                  selectProp(ingredientType),
			"Units of Measurement":  selectProp(units),
			"Calories per 100g":     numberProp(calories),
			"Protein per 100g":      numberProp(protein),
			"Fat per 100g":          numberProp(fat),
			"Carbohydrate per 100g": numberProp(carbs),
		},
	}
}

// ChickenPage returns the canonical valid protein record.
func ChickenPage() PageFixture {
	return NewIngredientPage("Chicken", "Protein", "grams", 165, 31, 3.6, 0).
		WithShelfLife(1, 3, 90)
}

// RicePage returns the canonical valid grain record.
func RicePage() PageFixture {
	return NewIngredientPage("Rice", "Grain", "grams", 130, 2.7, 0.3, 28).
		WithShelfLife(365, 0, 0)
}

// EmptyPage builds a record with zero properties.
func EmptyPage() PageFixture {
	now := time.Now().UTC().Format(time.RFC3339)
	return PageFixture{
		"object":           "page",
		"id":               uuid.NewString(),
		"created_time":     now,
		"last_edited_time": now,
		"archived":         false,
		"in_trash":         false,
		"url":              "https://www.notion.so/" + uuid.NewString(),
		"properties":       map[string]any{},
	}
}

// WithShelfLife sets the optional shelf-life day counts.
func (p PageFixture) WithShelfLife(room, fridge, freezer float64) PageFixture {
	props := p.props()
	props["Shelf life room"] = numberProp(room)
	props["Shelf life fridge"] = numberProp(fridge)
	props["Shelf life freezer"] = numberProp(freezer)
	return p
}

// WithNullNumber nulls out a numeric property while keeping it present.
func (p PageFixture) WithNullNumber(property string) PageFixture {
	p.props()[property] = map[string]any{"number": nil}
	return p
}

// WithEmptySelect replaces a select property with an empty select object
// (no chosen option).
func (p PageFixture) WithEmptySelect(property string) PageFixture {
	p.props()[property] = map[string]any{"select": map[string]any{}}
	return p
}

// WithoutProperty removes a property from the record entirely.
func (p PageFixture) WithoutProperty(property string) PageFixture {
	delete(p.props(), property)
	return p
}

// WithProperty sets a raw property value, for shapes the builders don't cover.
func (p PageFixture) WithProperty(property string, value any) PageFixture {
	p.props()[property] = value
	return p
}

func (p PageFixture) props() map[string]any {
	return p["properties"].(map[string]any)
}

func titleProp(content string) map[string]any {
	return map[string]any{
		"title": []any{
			map[string]any{"text": map[string]any{"content": content}},
		},
	}
}

func selectProp(name string) map[string]any {
	return map[string]any{"select": map[string]any{"name": name}}
}

func numberProp(v float64) map[string]any {
	return map[string]any{"number": v}
}
