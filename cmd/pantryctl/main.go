// pantryctl fetches an ingredient database from the Notion API and prints
// the validated ingredients.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
