// Command reqparse прогоняет файл заявки через конвейер разбора и печатает JSON.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "reqparse",
		Short:        "Разбор заявок на подбор из файлов",
		SilenceUsage: true,
	}
	root.AddCommand(newParseCmd(), newPatternsCmd(), newTokenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
