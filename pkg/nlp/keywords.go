package nlp

import "strings"

// aliases — синонимы, под которыми термин встречается в заявках.
// Ключи и значения в форме NormalizeText.
var aliases = map[string][]string{
	"postgresql":  {"postgres"},
	"postgres":    {"postgresql"},
	"kubernetes":  {"k8s"},
	"k8s":         {"kubernetes"},
	"golang":      {"go"},
	"javascript":  {"js"},
	"typescript":  {"ts"},
	"rest api":    {"rest"},
	"ci cd":       {"cicd"},
	"fintech":     {"финтех"},
	"финтех":      {"fintech"},
	"banking":     {"банкинг", "банк"},
	"e commerce":  {"ecommerce", "электронная коммерция"},
	"retail":      {"ритейл", "розница"},
	"telecom":     {"телеком"},
	"logistics":   {"логистика"},
	"insurance":   {"страхование"},
	"healthcare":  {"медицина", "здравоохранение"},
	"gamedev":     {"геймдев"},
	"qa engineer": {"инженер по тестированию"},
}

// TermVariants возвращает нормализованные варианты термина для поиска.
func TermVariants(term string) []string {
	base := NormalizeText(term)
	if base == "" {
		return []string{}
	}
	out := []string{base}
	seen := map[string]struct{}{base: {}}
	for _, a := range aliases[base] {
		a = NormalizeText(a)
		if _, ok := seen[a]; ok || a == "" {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "rest api" найдётся в " ... rest api ..." но не в " ... rest apis ..."
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// ExtractKeywords ищет термины категорий в тексте без учёта регистра и пунктуации,
// с учётом синонимов. В отличие от Classifier не различает контекст.
// Категории без находок в результат не попадают.
func ExtractKeywords(text string, dict Dictionary, categories ...Category) map[Category][]string {
	if dict == nil {
		dict = defaultDictionary
	}
	out := map[Category][]string{}
	hay := NormalizeText(text)
	if hay == "" {
		return out
	}
	for _, c := range categories {
		for _, term := range dict[c] {
			for _, v := range TermVariants(term) {
				if ContainsPhrase(hay, v) {
					out[c] = append(out[c], term)
					break
				}
			}
		}
	}
	return out
}
