package nlp

import (
	"iter"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// \p{Zs} покрывает NBSP, em space, ideographic space и прочие пробелы Unicode
	reHSpace    = regexp.MustCompile(`[\t\f\v\p{Zs}]+`)
	reBlankRun  = regexp.MustCompile(`\n{3,}`)
	reBullet    = regexp.MustCompile(`(?m)^[\t\p{Zs}]*[•·▪▫◦‣⁃∙●○■□*–—‒―−-][\t\p{Zs}]*`)
	reNumbered  = regexp.MustCompile(`(?m)^[\t\p{Zs}]*(\d+)([.)])([\t\p{Zs}]*)(\d?)`)
	reHTMLTag   = regexp.MustCompile(`<[^>]*>`)
	reHTMLRef   = regexp.MustCompile(`&(?:#\d+|#x[0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)
	reUnsafe    = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,:;()/]+`)
	reSpaceLead = regexp.MustCompile(`[ \t]+([.,:;)])`)
	reSpaceOpen = regexp.MustCompile(`\([ \t]+`)

	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// lineBreaks сводит все переводы строки, включая разделители строк и абзацев Unicode, к \n.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n", "\r", "\n", "\u0085", "\n", "\u2028", "\n", "\u2029", "\n",
)

var typography = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`, "″", `"`,
	"‘", "'", "’", "'", "‚", "'", "‛", "'", "′", "'",
	"—", "-", "–", "-", "‒", "-", "―", "-", "−", "-",
)

// Normalize приводит сырой текст заявки к каноническому виду, на который
// опираются Split, FindAll и классификатор.
//
// Результат не содержит \r, пустых строк подряд, повторяющихся пробелов;
// маркеры списков приведены к "- ", нумерация к "<n>. ". Normalize идемпотентна.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.TrimPrefix(text, "\ufeff")
	text = norm.NFC.String(text)

	text = lineBreaks.Replace(text)
	text = reHSpace.ReplaceAllString(text, " ")
	text = reBlankRun.ReplaceAllString(text, "\n\n")
	text = reBullet.ReplaceAllString(text, "- ")
	text = reNumbered.ReplaceAllStringFunc(text, canonicalNumber)
	text = typography.Replace(text)

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	text = strings.Join(lines, "\n")
	// trimming whitespace-only lines can produce new blank runs
	text = reBlankRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// canonicalNumber rewrites "3)" / "3.text" / "3.  text" into "3. ".
// A decimal such as "1.5" at the start of a line is left alone.
func canonicalNumber(m string) string {
	sub := reNumbered.FindStringSubmatch(m)
	num, sep, gap, digit := sub[1], sub[2], sub[3], sub[4]
	if sep == "." && gap == "" && digit != "" {
		return m
	}
	return num + ". " + digit
}

// Lines возвращает непустые строки нормализованного текста.
// Последовательность ленивая и может перебираться повторно.
func Lines(text string) iter.Seq[string] {
	normalized := Normalize(text)
	return func(yield func(string) bool) {
		for line := range strings.SplitSeq(normalized, "\n") {
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// StripHTML убирает теги и заменяет HTML-сущности пробелом. Остальной текст не трогает.
func StripHTML(text string) string {
	text = reHTMLTag.ReplaceAllString(text, "")
	return reHTMLRef.ReplaceAllString(text, " ")
}

// CleanForMatching нормализует текст и дополнительно выбрасывает всё, кроме букв,
// цифр, пробелов и знаков - . , : ; ( ) /. Не является каноничной формой.
func CleanForMatching(text string) string {
	text = Normalize(text)
	text = reUnsafe.ReplaceAllString(text, " ")
	text = reHSpace.ReplaceAllString(text, " ")
	text = reSpaceLead.ReplaceAllString(text, "$1")
	text = reSpaceOpen.ReplaceAllString(text, "(")

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(reBlankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

// NormalizeText приводит текст к упрощённому виду для сравнения:
// - нижний регистр
// - заменяет все не-буквенно-цифровые символы на пробелы
// - схлопывает пробелы
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
