package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/forge/internal/descriptor"
	"github.com/shaiso/forge/internal/domain"
	"github.com/shaiso/forge/internal/telemetry"
)

// NewDepsCmd создаёт команду deps: разбор дескриптора без сборки.
func NewDepsCmd() *cobra.Command {
	var (
		depFile    string
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Parse a dependency descriptor and print the dependency table",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := telemetry.SetupLogger()
			out := NewOutput(jsonOutput)

			data, err := os.ReadFile(depFile)
			if err != nil {
				return fmt.Errorf("read descriptor: %w", err)
			}

			var table *domain.Table
			if strict {
				table, err = descriptor.ParseStrict(string(data))
				if err != nil {
					return err
				}
			} else {
				var diags []descriptor.Diagnostic
				table, diags = descriptor.Parse(string(data))
				for _, d := range diags {
					logger.Warn("descriptor line skipped",
						"line", d.Line,
						"reason", d.Reason,
						"text", d.Text,
					)
				}
			}

			headers := []string{"NAME", "VERSION", "FEATURES", "OPTIONAL", "ATTRIBUTES"}
			names := table.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				dep, _ := table.Get(name)
				rows = append(rows, []string{
					name,
					dep.Version,
					strings.Join(dep.Features, ","),
					formatOptional(dep.Optional),
					formatExtra(dep.Extra),
				})
			}

			out.Print(headers, rows, table.ToMap())
			return nil
		},
	}

	cmd.Flags().StringVarP(&depFile, "dep-file", "d", "", "Path to the dependency descriptor")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed descriptor lines instead of skipping them")

	cmd.MarkFlagRequired("dep-file")

	return cmd
}

func formatOptional(optional *bool) string {
	if optional == nil {
		return "-"
	}
	return strconv.FormatBool(*optional)
}

func formatExtra(extra map[string]string) string {
	if len(extra) == 0 {
		return "-"
	}
	pairs := make([]string, 0, len(extra))
	for k, v := range extra {
		pairs = append(pairs, k+"="+v)
	}
	// Стабильный порядок для воспроизводимого вывода.
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
