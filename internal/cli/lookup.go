package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/declanmills/cube/internal/cube"
)

// lookupCmd searches the named-composite database (builtins plus any
// --db YAML overlay) by name substring or category, mirroring the
// teacher's lookup.go shape over the new Algorithm fields.
var lookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Look up named composite moves by name or category",
	Long: `Lookup searches the algorithm database (the named composites the solve
--cfop/--roux drivers and (Name) move tokens reference) by a case-insensitive
substring of the name, or by --category (OLL, PLL, Trigger). With neither a
query nor --category, lists every entry.

Examples:
  cube lookup sune
  cube lookup --category PLL
  cube lookup --db custom.yaml extra`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		category, _ := cmd.Flags().GetString("category")
		dbPath, _ := cmd.Flags().GetString("db")

		db := algorithmDB
		if dbPath != "" {
			data, err := readInputDoc(dbPath)
			if err != nil {
				return err
			}
			overlay := cube.NewAlgorithmDB()
			if err := overlay.LoadYAML([]byte(data)); err != nil {
				return err
			}
			db = overlay
		}

		results := db.All()
		if category != "" {
			filtered := results[:0]
			for _, a := range db.All() {
				if strings.EqualFold(a.Category, category) {
					filtered = append(filtered, a)
				}
			}
			results = filtered
		}
		if query != "" {
			filtered := make([]cube.Algorithm, 0, len(results))
			for _, a := range results {
				if strings.Contains(strings.ToLower(a.Name), strings.ToLower(query)) {
					filtered = append(filtered, a)
				}
			}
			results = filtered
		}

		sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

		if len(results) == 0 {
			fmt.Println("No algorithms found.")
			return nil
		}
		for i, a := range results {
			if i > 0 {
				fmt.Println(strings.Repeat("-", 40))
			}
			fmt.Printf("%s (%s)\n", a.Name, a.Category)
			fmt.Printf("Moves: %s\n", a.Moves)
			if a.Description != "" {
				fmt.Printf("Description: %s\n", a.Description)
			}
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().String("category", "", "filter by category (OLL, PLL, Trigger)")
	lookupCmd.Flags().String("db", "", "path to a YAML file of additional algorithms to overlay (see AlgorithmDB.LoadYAML)")
}
