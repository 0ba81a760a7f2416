package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatchkit/swatchkit/css"
	"github.com/swatchkit/swatchkit/icon"
	"github.com/swatchkit/swatchkit/key"
	"github.com/swatchkit/swatchkit/page"
	"github.com/swatchkit/swatchkit/style"
	"github.com/swatchkit/swatchkit/swatch"
	"github.com/swatchkit/swatchkit/util"
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolP("json", "j", false, "Print the palette as JSON")

	scanCmd.Flags().BoolP("usages", "u", false, "List every element and property using each color")
	lo.Must0(viper.BindPFlag(key.ScanShowUsages, scanCmd.Flags().Lookup("usages")))

	scanCmd.Flags().IntP("chip-width", "w", 0, "Width of the color chips")
	lo.Must0(viper.BindPFlag(key.ScanChipWidth, scanCmd.Flags().Lookup("chip-width")))

	scanCmd.SetOut(os.Stdout)
}

var scanCmd = &cobra.Command{
	Use:   "scan <file|url|->",
	Short: "Print the palette of a document",
	Example: `  swatchkit scan index.html
  swatchkit scan https://example.com --usages
  curl -s https://example.com | swatchkit scan - --json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, source, err := page.Load(cmd.Context(), args[0])
		handleErr(err)

		set := swatch.Build(swatch.Walk(doc.Root()))

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(newScanReport(source, set)))
			return
		}

		printPalette(cmd.OutOrStdout(), source, set, viper.GetBool(key.ScanShowUsages), viper.GetInt(key.ScanChipWidth))
	},
}

type scanUsage struct {
	Element  string       `json:"element"`
	Property css.Property `json:"property"`
}

type scanColor struct {
	Color  swatch.Code `json:"color"`
	Count  int         `json:"count"`
	Usages []scanUsage `json:"usages"`
}

type scanReport struct {
	Location string      `json:"location"`
	Cached   bool        `json:"cached"`
	Colors   []scanColor `json:"colors"`
}

// pather is implemented by elements that can describe their position.
type pather interface {
	Path() string
}

func elementPath(e swatch.Element) string {
	if p, ok := e.(pather); ok {
		return p.Path()
	}
	return fmt.Sprintf("%v", e)
}

func newScanReport(source page.Source, set swatch.Set) scanReport {
	return scanReport{
		Location: source.Location,
		Cached:   source.Cached,
		Colors: lo.Map(set, func(sw *swatch.Swatch, _ int) scanColor {
			return scanColor{
				Color: sw.Color,
				Count: len(sw.Users),
				Usages: lo.Map(sw.Users, func(u swatch.Usage, _ int) scanUsage {
					return scanUsage{Element: elementPath(u.Element), Property: u.Property}
				}),
			}
		}),
	}
}

func printPalette(w io.Writer, source page.Source, set swatch.Set, usages bool, chipWidth int) {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = 80
	}

	_, _ = fmt.Fprintf(w, "%s %s %s\n\n",
		icon.Get(icon.Swatch),
		style.New().Bold(true).Foreground(style.AccentColor).Render(source.Location),
		style.Faint(fmt.Sprintf("(%s, %s)", util.Quantify(len(set), "color", "colors"), util.Quantify(set.Usages(), "usage", "usages"))),
	)

	for _, sw := range set {
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			style.Chip(sw.Color.String(), chipWidth),
			style.Label(sw.Color.String()),
			style.Faint(util.Quantify(len(sw.Users), "usage", "usages")),
		)

		if !usages {
			continue
		}

		for _, u := range sw.Users {
			line := fmt.Sprintf("    %-20s %s", u.Property, elementPath(u.Element))
			_, _ = fmt.Fprintln(w, style.Faint(truncate.StringWithTail(line, uint(util.Max(width-1, 10)), "…")))
		}
	}
}
