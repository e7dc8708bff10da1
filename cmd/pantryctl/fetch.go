// Fetch command for the pantryctl CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/recipebuddy/notion-ingredient-client/pkg/notion"
	"github.com/recipebuddy/notion-ingredient-client/pkg/schema"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch all ingredients from the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := settings.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "fetch:", err)
			os.Exit(exitUserError)
		}

		cfg := notion.DefaultConfig(settings.Token, settings.DatabaseID)
		cfg.PageSize = settings.PageSize
		if settings.BaseURL != "" {
			cfg.BaseURL = settings.BaseURL
		}

		client, err := notion.New(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fetch:", err)
			os.Exit(exitUserError)
		}

		ingredients, err := client.FetchAllIngredients(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "fetch:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(ingredients, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		printTable(cmd, ingredients)
		return nil
	},
}

func printTable(cmd *cobra.Command, ingredients []schema.Ingredient) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tUNITS\tKCAL/100G\tPROTEIN\tFAT\tCARBS")
	for _, ing := range ingredients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\n",
			ing.Name, ing.Type, ing.Units,
			ing.CaloriesPer100g, ing.ProteinPer100g, ing.FatPer100g, ing.CarbsPer100g)
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d ingredients\n", len(ingredients))
}
