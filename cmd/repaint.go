package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/swatchkit/swatchkit/constant"
	"github.com/swatchkit/swatchkit/dom"
	"github.com/swatchkit/swatchkit/filesystem"
	"github.com/swatchkit/swatchkit/icon"
	"github.com/swatchkit/swatchkit/page"
	"github.com/swatchkit/swatchkit/session"
	"github.com/swatchkit/swatchkit/style"
	"github.com/swatchkit/swatchkit/swatch"
	"github.com/swatchkit/swatchkit/util"
)

func init() {
	rootCmd.AddCommand(repaintCmd)

	repaintCmd.Flags().StringSliceP("map", "m", []string{}, "Remap a color, as old=new (repeatable)")
	repaintCmd.Flags().StringP("map-file", "f", "", "Read the remap table from a JSON object file")
	repaintCmd.Flags().StringP("output", "o", page.Stdin, "Where to write the repainted document, - for stdout")
}

var repaintCmd = &cobra.Command{
	Use:   "repaint <file|url|->",
	Short: "Recolor a document and write the result",
	Example: `  swatchkit repaint index.html -m ff0000=0000ff -m fff=111 -o out.html
  swatchkit repaint https://example.com -f palette.json > repainted.html`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := remapFlags(cmd)
		handleErr(err)

		table, err := swatch.ParseRemap(raw)
		handleErr(err)

		doc, _, err := page.Load(cmd.Context(), args[0])
		handleErr(err)

		s := session.New(doc.Root(), nil, session.Options{})
		s.Handle(session.Command{Op: constant.OpLoad})

		var changed int
		s.View(func(set swatch.Set) {
			changed = lo.CountBy(set, func(sw *swatch.Swatch) bool {
				to, ok := table[sw.Color]
				return ok && to != sw.Color
			})
		})

		s.Handle(session.Command{Op: constant.OpRedraw, Map: raw})
		s.Close()

		output := lo.Must(cmd.Flags().GetString("output"))
		handleErr(writeDocument(doc, output))

		_, _ = fmt.Fprintf(os.Stderr, "%s repainted %s\n", icon.Get(icon.Success), style.Faint(util.Quantify(changed, "swatch", "swatches")))
	},
}

// remapFlags merges --map-file with --map pairs; pairs win.
func remapFlags(cmd *cobra.Command) (map[string]string, error) {
	raw := make(map[string]string)

	if path := lo.Must(cmd.Flags().GetString("map-file")); path != "" {
		data, err := filesystem.API().ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read map file: %w", err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse map file %s: %w", path, err)
		}
	}

	for _, pair := range lo.Must(cmd.Flags().GetStringSlice("map")) {
		from, to, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid mapping %q, want old=new", pair)
		}
		raw[strings.TrimSpace(from)] = strings.TrimSpace(to)
	}

	return raw, nil
}

// writeDocument renders doc to path, or to stdout for "-".
func writeDocument(doc *dom.Document, path string) (err error) {
	var w io.Writer = os.Stdout
	if path != page.Stdin {
		f, ferr := filesystem.API().Create(path)
		if ferr != nil {
			return fmt.Errorf("create %s: %w", path, ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", path, cerr)
			}
		}()
		w = f
	}

	if err := doc.Render(w); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
