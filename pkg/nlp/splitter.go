package nlp

import (
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// MissingValue подставляется FillMissingItems вместо пропущенных пунктов.
const MissingValue = "N/A"

// metaWindow — сколько первых строк может занимать мета-блок.
const metaWindow = 4

// MaxItemNumber — наибольший номер пункта. Строка с большим номером (телефон,
// сумма, год) считается обычным текстом, а MissingItems не перебирает номера выше.
const MaxItemNumber = 1000

var (
	reItem            = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
	reDescriptionMark = regexp.MustCompile(`(?i)^(?:job\s+)?(?:description|описание)(?:\s+(?:вакансии|проекта|заявки))?\s*:?\s*`)
)

// SplitResult — документ, разложенный на мета-блок, свободное описание и нумерованные пункты.
type SplitResult struct {
	MetaInfo     string         `json:"metaInfo"`
	Description  string         `json:"description"`
	NumberedList map[int]string `json:"numberedList"`
	RawSections  []string       `json:"rawSections"`
}

type splitState int

const (
	stateMeta splitState = iota
	stateDescription
	stateList
)

// Split разбирает нормализованный текст конечным автоматом meta -> description -> list.
//
// Каждая непустая строка попадает ровно в одно место: мета-блок, описание или
// текст одного из пунктов (строки-продолжения склеиваются через пробел).
func Split(normalized string) SplitResult {
	lines := slices.Collect(Lines(normalized))
	res := SplitResult{
		NumberedList: map[int]string{},
		RawSections:  lines,
	}
	if res.RawSections == nil {
		res.RawSections = []string{}
	}

	var (
		meta  []string
		desc  []string
		state = stateMeta
	)
	for i := 0; i < len(lines); {
		line := lines[i]
		switch state {
		case stateMeta:
			if i < metaWindow && isMetaLine(line) {
				meta = append(meta, line)
				i++
				continue
			}
			if _, _, ok := parseItem(line); ok {
				state = stateList
				continue
			}
			// первая не-мета строка закрывает мета-блок; маркер "Описание"
			// остаётся в описании, чтобы ни одна строка не потерялась
			state = stateDescription
		case stateDescription:
			if _, _, ok := parseItem(line); ok {
				state = stateList
				continue
			}
			desc = append(desc, line)
			i++
		case stateList:
			n, body, _ := parseItem(line)
			// строки до следующего маркера — продолжение текущего пункта
			j := i + 1
			for j < len(lines) {
				if _, _, ok := parseItem(lines[j]); ok {
					break
				}
				body = joinSpace(body, lines[j])
				j++
			}
			// повторный номер дописывается к уже открытому пункту
			res.NumberedList[n] = joinSpace(res.NumberedList[n], body)
			i = j
		}
	}

	res.MetaInfo = strings.Join(meta, "\n")
	res.Description = strings.Join(desc, " ")
	return res
}

// DescriptionBody убирает ведущий маркер раздела ("Описание:", "Description")
// из текста, собранного Split.
func DescriptionBody(desc string) string {
	return strings.TrimSpace(reDescriptionMark.ReplaceAllString(desc, ""))
}

func isMetaLine(line string) bool {
	return strings.HasPrefix(line, "CV -") ||
		strings.Contains(line, "salesforce.com") ||
		strings.Contains(line, "https://")
}

// parseItem распознаёт строку "<n>. текст" с 1 <= n <= MaxItemNumber.
func parseItem(line string) (int, string, bool) {
	m := reItem.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > MaxItemNumber {
		return 0, "", false
	}
	return n, strings.TrimSpace(m[2]), true
}

func joinSpace(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

// MissingItems возвращает отсортированные номера из [1, max], которых нет в списке.
// Ключи больше MaxItemNumber в расчёт max не входят.
func MissingItems(list map[int]string) []int {
	maxKey := 0
	for k := range list {
		if k <= MaxItemNumber {
			maxKey = max(maxKey, k)
		}
	}
	missing := []int{}
	for n := 1; n <= maxKey; n++ {
		if _, ok := list[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// FillMissingItems возвращает копию списка, где пропущенные номера заполнены MissingValue.
func FillMissingItems(list map[int]string) map[int]string {
	out := make(map[int]string, len(list))
	for k, v := range list {
		out[k] = v
	}
	for _, n := range MissingItems(list) {
		out[n] = MissingValue
	}
	return out
}

// ItemNumbers возвращает номера пунктов по возрастанию.
func ItemNumbers(list map[int]string) []int {
	keys := make([]int, 0, len(list))
	for k := range list {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
