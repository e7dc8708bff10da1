// Package notion fetches an ingredient database from the Notion API and
// converts each record's semi-structured property bag into a validated
// schema.Ingredient.
//
// The client drives cursor pagination to completion, accumulates every raw
// record, and then maps each record independently: records that fail
// validation (missing required fields, values outside the enumerations) or
// carry a malformed property structure are dropped with a diagnostic, while
// transport failures abort the whole fetch with no partial result.
//
// Example usage:
//
//	cfg := notion.DefaultConfig(token, databaseID)
//	client, err := notion.New(cfg)
//	if err != nil {
//		return err
//	}
//	ingredients, err := client.FetchAllIngredients(ctx)
//
// The fetch pipeline:
//   - Queries one page at a time (each request depends on the previous
//     response's continuation cursor, so pagination is strictly sequential)
//   - Accumulates raw records until the source reports has_more=false
//   - Extracts typed fields defensively (absent properties and sub-paths
//     become absence markers, never extraction failures)
//   - Constructs entities, skipping and logging per-record failures
//
// Output order preserves record order across pages.
package notion
