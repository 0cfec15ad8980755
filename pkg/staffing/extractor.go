package staffing

import (
	"strings"

	"github.com/artem13815/staffing/pkg/nlp"
)

// keywordCategories — категории, которые ищутся без учёта контекста.
var keywordCategories = []nlp.Category{nlp.CategoryDomains, nlp.CategoryRoles}

// Extractor собирает результат всех стадий конвейера в одну запись.
// Не хранит изменяемого состояния, безопасен для конкурентного использования.
type Extractor struct {
	classifier *nlp.Classifier
	dict       nlp.Dictionary
}

// NewExtractor создаёт сборщик поверх справочника. nil — встроенный справочник.
func NewExtractor(dict nlp.Dictionary) *Extractor {
	c := nlp.NewClassifier(dict)
	return &Extractor{classifier: c, dict: c.Dictionary()}
}

// Extract прогоняет сырой текст через нормализацию, разбиение, паттерны и классификатор.
func (e *Extractor) Extract(raw string) Extraction {
	normalized := nlp.Normalize(raw)
	split := nlp.Split(normalized)
	matches := nlp.FindAll(normalized)

	ex := Extraction{
		Normalized:       normalized,
		MetaLines:        metaLines(split.MetaInfo),
		Links:            values(matches[nlp.PatternSalesforceURL]),
		Description:      nlp.DescriptionBody(split.Description),
		Items:            split.NumberedList,
		MissingItems:     nlp.MissingItems(split.NumberedList),
		Dates:            nlp.ExtractDates(normalized),
		Matches:          matches,
		Technologies:     e.classifier.ExtractTechnologies(normalized),
		ItemTechnologies: map[int]nlp.Classified{},
		Keywords:         nlp.ExtractKeywords(normalized, e.dict, keywordCategories...),
	}
	ex.Meta = e.meta(ex.MetaLines, split.RawSections)

	for n, text := range split.NumberedList {
		if c := e.classifier.ExtractTechnologies(text); len(c.All()) > 0 {
			ex.ItemTechnologies[n] = c
		}
	}
	return ex
}

// meta берёт первую строку, разобранную одной из грамматик. Заголовок без
// префикса "CV" в мета-блок не попадает, поэтому проверяется и первая строка документа.
func (e *Extractor) meta(lines, raw []string) nlp.MetaInfo {
	candidates := lines
	if len(raw) > 0 {
		candidates = append(candidates[:len(candidates):len(candidates)], raw[0])
	}
	var info nlp.MetaInfo
	for _, l := range candidates {
		if info = nlp.ExtractMetaInfo(l); !info.IsZero() {
			break
		}
	}
	if info.RequestID == "" {
		for _, l := range lines {
			if ms := nlp.Find(l, nlp.PatternRequestID); len(ms) > 0 {
				info.RequestID = ms[0].Value
				break
			}
		}
	}
	return info
}

func metaLines(block string) []string {
	if block == "" {
		return []string{}
	}
	return strings.Split(block, "\n")
}

func values(ms []nlp.PatternMatch) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, m := range ms {
		if _, ok := seen[m.Value]; ok {
			continue
		}
		seen[m.Value] = struct{}{}
		out = append(out, m.Value)
	}
	return out
}
