package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/staffing/pkg/config"
	"github.com/artem13815/staffing/pkg/document"
	"github.com/artem13815/staffing/pkg/nlp"
	"github.com/artem13815/staffing/pkg/staffing"
)

type parseOptions struct {
	dictionary string
	stage      string
	compact    bool
}

func newParseCmd() *cobra.Command {
	var opts parseOptions
	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Разобрать заявку из файла (txt, docx, pdf, html) или stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			dict, err := config.LoadDictionary(opts.dictionary)
			if err != nil {
				return err
			}
			out, err := runStage(opts.stage, text, dict)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			if !opts.compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&opts.dictionary, "dictionary", "d", "", "YAML с правками справочника терминов")
	cmd.Flags().StringVarP(&opts.stage, "stage", "s", "all", "стадия: normalize, split, patterns, technologies, all")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "JSON в одну строку")
	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return document.ExtractText(path, data)
}

func runStage(stage, text string, dict nlp.Dictionary) (any, error) {
	switch stage {
	case "normalize":
		return map[string]string{"normalized": nlp.Normalize(text)}, nil
	case "split":
		return nlp.Split(nlp.Normalize(text)), nil
	case "patterns":
		return nlp.FindAll(nlp.Normalize(text)), nil
	case "technologies":
		return nlp.NewClassifier(dict).ExtractTechnologies(nlp.Normalize(text)), nil
	case "all", "":
		return staffing.NewExtractor(dict).Extract(text), nil
	}
	return nil, fmt.Errorf("unknown stage %q", stage)
}
