package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/fields"
	"github.com/secmon-lab/vantage/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdFields() *cli.Command {
	var set string
	var asJSON bool

	return &cli.Command{
		Name:      "fields",
		Aliases:   []string{"f"},
		Usage:     "Show field definitions",
		ArgsUsage: "[key...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "set",
				Usage:       "Field set to list when no key is given (issue, discover or all)",
				Value:       string(usecase.FieldSetAll),
				Destination: &set,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.NewFieldUseCase()
			w := outputOf(c)

			var entries []usecase.FieldEntry
			if c.Args().Len() > 0 {
				for _, key := range c.Args().Slice() {
					def, err := uc.Lookup(ctx, key)
					if err != nil {
						return err
					}
					entries = append(entries, usecase.FieldEntry{Key: key, Definition: def, Found: true})
				}
			} else {
				list, err := uc.List(ctx, usecase.FieldSet(set))
				if err != nil {
					return err
				}
				entries = list
			}

			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(entries); err != nil {
					return goerr.Wrap(err, "failed to encode fields")
				}
				return nil
			}

			printFields(w, entries)
			return nil
		},
	}
}

func outputOf(c *cli.Command) io.Writer {
	if root := c.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func printFields(w io.Writer, entries []usecase.FieldEntry) {
	keyColor := color.New(color.FgCyan, color.Bold)
	kindColor := color.New(color.FgYellow)
	missingColor := color.New(color.FgRed)
	blockedColor := color.New(color.FgMagenta)

	for _, e := range entries {
		keyColor.Fprintf(w, "%-40s", e.Key) //nolint:errcheck
		if !e.Found {
			missingColor.Fprintln(w, " (no definition)") //nolint:errcheck
			continue
		}

		kindColor.Fprintf(w, " %-14s", e.Definition.Kind) //nolint:errcheck
		fmt.Fprintf(w, " %-10s", e.Definition.ValueType)   //nolint:errcheck
		if !fields.IsAlertable(e.Key) {
			blockedColor.Fprint(w, " [not alertable]") //nolint:errcheck
		}
		if e.Definition.Desc != "" {
			fmt.Fprintf(w, " %s", e.Definition.Desc) //nolint:errcheck
		}
		fmt.Fprintln(w) //nolint:errcheck
	}
}
