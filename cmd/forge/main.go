// Forge — инструмент командной строки для staged-сборки Rust-проектов.
//
// Использование:
//
//	forge <command> [flags]
//
// Команды:
//
//	build  Staged release-сборка: workspace → манифест → cargo → бинарник
//	deps   Разбор дескриптора зависимостей без сборки
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/forge/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "forge",
		Short:         "forge — staged Rust release builder",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		cli.NewBuildCmd(),
		cli.NewDepsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
