package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artem13815/staffing/pkg/nlp"
)

func newPatternsCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Показать реестр паттернов; с --file — статистику совпадений",
		RunE: func(cmd *cobra.Command, _ []string) error {
			text := ""
			if file != "" {
				var err error
				if text, err = readInput(cmd.InOrStdin(), file); err != nil {
					return err
				}
				text = nlp.Normalize(text)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATTERN\tCONFIDENCE\tCOUNT\tFIRST")
			for _, name := range nlp.Patterns() {
				st, err := nlp.Stats(text, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\n", st.Pattern, st.Confidence, st.Count, st.FirstPosition)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "файл заявки или - для stdin")
	return cmd
}
