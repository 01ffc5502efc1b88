package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/recipe-browser/internal/browse"
	"github.com/ytget/recipe-browser/internal/mealdb"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search recipes by name or keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.TrimSpace(strings.Join(args, " "))
			if keyword == "" {
				return browse.ErrEmptyKeyword
			}

			client, err := ctx.newClient()
			if err != nil {
				return err
			}

			recipes, err := client.SearchByKeyword(cmd.Context(), keyword)
			if err != nil {
				return fmt.Errorf("search %q failed (%s): %w", keyword, mealdb.KindOf(err), err)
			}
			recipes = browse.SortRecipes(recipes, ctx.sortOrder(), browse.LanguageTag(ctx.language()))

			if ctx.flags.json {
				return writeJSON(cmd, recipes)
			}
			out := cmd.OutOrStdout()
			if len(recipes) == 0 {
				fmt.Fprintf(out, "No online recipes match %q.\n", keyword)
				return nil
			}
			fmt.Fprintln(out, renderRecipeTable(recipes, shouldColorize(out)))
			fmt.Fprintf(out, "Found %d matching recipes online.\n", len(recipes))
			return nil
		},
	}
}
