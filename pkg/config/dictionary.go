package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/artem13815/staffing/pkg/nlp"
)

// DictionaryFile — формат файла DICTIONARY_PATH.
//
//	replace:
//	  tools: [Docker, Kubernetes]
//	extend:
//	  domains: [PropTech]
//
// replace заменяет список категории целиком, extend дописывает термины к встроенному.
type DictionaryFile struct {
	Replace map[nlp.Category][]string `yaml:"replace"`
	Extend  map[nlp.Category][]string `yaml:"extend"`
}

// LoadDictionary возвращает встроенный справочник с правками из файла.
// Пустой путь — встроенный справочник без изменений.
func LoadDictionary(path string) (nlp.Dictionary, error) {
	dict := nlp.DefaultDictionary()
	if path == "" {
		return dict, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	var f DictionaryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	for c, terms := range f.Replace {
		if !slices.Contains(nlp.Categories(), c) {
			return nil, fmt.Errorf("dictionary %s: unknown category %q", path, c)
		}
		dict = dict.With(c, terms)
	}
	for c, terms := range f.Extend {
		if !slices.Contains(nlp.Categories(), c) {
			return nil, fmt.Errorf("dictionary %s: unknown category %q", path, c)
		}
		dict = dict.With(c, append(slices.Clone(dict[c]), terms...))
	}
	return dict, nil
}
