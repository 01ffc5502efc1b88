package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/recipe-browser/internal/browse"
	"github.com/ytget/recipe-browser/internal/mealdb"
	"github.com/ytget/recipe-browser/internal/model"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the details of one recipe",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return browse.ErrEmptyKeyword
			}

			client, err := ctx.newClient()
			if err != nil {
				return err
			}

			recipes, err := client.SearchByKeyword(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("search %q failed (%s): %w", name, mealdb.KindOf(err), err)
			}

			session := browse.NewSession(model.Query{Kind: model.QueryKindKeyword, Term: name, Recipes: recipes},
				ctx.sortOrder(), browse.LanguageTag(ctx.language()))
			recipe, ok := session.Lookup(name)
			if !ok {
				recipe, ok = lookupFold(session, name)
			}
			if !ok {
				if session.IsEmpty() {
					return fmt.Errorf("no recipe named %q", name)
				}
				return fmt.Errorf("no recipe named %q; did you mean: %s", name, strings.Join(session.Names(), ", "))
			}

			if ctx.flags.json {
				return writeJSON(cmd, recipe)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderRecipe(recipe, shouldColorize(out)))
			return nil
		},
	}
}

// lookupFold finds a recipe by case-insensitive name
func lookupFold(session *browse.Session, name string) (model.Recipe, bool) {
	for i := 0; i < session.Len(); i++ {
		recipe, _ := session.At(i)
		if strings.EqualFold(recipe.Name, name) {
			return recipe, true
		}
	}
	return model.Recipe{}, false
}
