package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/recipe-browser/internal/browse"
	"github.com/ytget/recipe-browser/internal/mealdb"
)

func newAllCommand(ctx *commandContext) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "List every recipe reachable by first letter",
		Long: `Fetches recipes for each first letter a..z, one request at a time, and
merges them by name. Recipes whose names start with a digit or symbol are
not reachable this way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.newClient()
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			var progress mealdb.ProgressFunc
			if !quiet && shouldColorize(stderr) {
				progress = func(letter rune, done, total int) {
					fmt.Fprintf(stderr, "\rFetching %c (%d/%d)...", letter, done, total)
					if done == total {
						fmt.Fprintln(stderr)
					}
				}
			}

			recipes, err := client.FetchAll(cmd.Context(), progress)
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				return browse.ErrNoRecipes
			}
			recipes = browse.SortRecipes(recipes, ctx.sortOrder(), browse.LanguageTag(ctx.language()))

			if ctx.flags.json {
				return writeJSON(cmd, recipes)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRecipeTable(recipes, shouldColorize(out)))
			fmt.Fprintf(out, "Fetched %d recipes.\n", len(recipes))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print sweep progress")
	return cmd
}
