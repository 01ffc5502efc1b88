package main

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ytget/recipe-browser/internal/model"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderRecipeTable(recipes []model.Recipe, colorize bool) string {
	tw := table.NewWriter()
	if colorize {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"#", "Name", "Category", "Ingredients"})
	for i, recipe := range recipes {
		tw.AppendRow(table.Row{i + 1, recipe.Name, recipe.Category, len(recipe.Ingredients)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func renderRecipe(recipe model.Recipe, colorize bool) string {
	heading := func(s string) string {
		if colorize {
			return text.Colors{text.Bold, text.FgHiBlue}.Sprint(s)
		}
		return s
	}

	var b strings.Builder
	b.WriteString(heading(recipe.Name) + "\n")
	b.WriteString(strings.Repeat("-", len([]rune(recipe.Name))) + "\n")
	b.WriteString("Category: " + recipe.Category + "\n\n")

	b.WriteString(heading("Ingredients") + "\n")
	if recipe.HasIngredients() {
		for i, ingredient := range recipe.Ingredients {
			b.WriteString("  " + strconv.Itoa(i+1) + ". " + ingredient + "\n")
		}
	} else {
		b.WriteString("  No ingredient information available.\n")
	}

	b.WriteString("\n" + heading("Instructions") + "\n")
	b.WriteString(recipe.Instructions + "\n")
	return b.String()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
