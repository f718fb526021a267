package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiso/forge/internal/builder"
	"github.com/shaiso/forge/internal/orchestrator"
	"github.com/shaiso/forge/internal/telemetry"
)

// NewBuildCmd создаёт команду build: полный цикл staged-сборки.
func NewBuildCmd() *cobra.Command {
	var (
		depFile       string
		srcDir        string
		mainFile      string
		output        string
		subpath       string
		toolchain     string
		keepWorkspace bool
		strict        bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Stage sources and build a release binary",
		Long: "Stages the source tree into an isolated workspace, synthesizes the build\n" +
			"manifest from the dependency descriptor, runs a release build and copies\n" +
			"the resulting binary to the output path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := telemetry.SetupLogger()
			out := NewOutput(false)

			o := orchestrator.New(orchestrator.Config{
				Builder: builder.New(toolchain),
				Logger:  logger,
			})

			st, err := o.Run(cmd.Context(), orchestrator.Request{
				SourceDir:        srcDir,
				DescriptorPath:   depFile,
				EntryFile:        mainFile,
				SourceSubpath:    subpath,
				Destination:      output,
				RetainWorkspace:  keepWorkspace,
				StrictDescriptor: strict,
			})
			if err != nil {
				// Ошибка уже несёт контекст этапа ("stage sources: ...",
				// "merge dependencies: ..." и т.д.).
				if st != nil && keepWorkspace {
					out.Success(fmt.Sprintf("Workspace retained at %s", st.Workspace))
				}
				return err
			}

			out.Success(fmt.Sprintf("Successfully built and copied to %s", output))
			if keepWorkspace {
				out.Success(fmt.Sprintf("Workspace retained at %s", st.Workspace))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&depFile, "dep-file", "d", "", "Path to the dependency descriptor")
	cmd.Flags().StringVarP(&srcDir, "src-dir", "s", "", "Source directory with Rust files")
	cmd.Flags().StringVarP(&mainFile, "main-file", "m", "", "Main Rust file name (e.g. main.rs)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path for the compiled binary")
	cmd.Flags().StringVar(&subpath, "subpath", "", "Workspace subdirectory for staged sources (default src)")
	cmd.Flags().StringVar(&toolchain, "toolchain", "", "Build toolchain command (default cargo)")
	cmd.Flags().BoolVar(&keepWorkspace, "keep-workspace", false, "Keep the build workspace for debugging")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed descriptor lines instead of skipping them")

	cmd.MarkFlagRequired("src-dir")
	cmd.MarkFlagRequired("main-file")
	cmd.MarkFlagRequired("output")

	return cmd
}
