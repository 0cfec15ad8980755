package nlp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownPattern возвращается, когда запрошен паттерн не из реестра.
var ErrUnknownPattern = errors.New("unknown pattern")

// PatternName — имя правила в реестре.
type PatternName string

const (
	PatternDate            PatternName = "date"
	PatternDateRU          PatternName = "date_ru"
	PatternSalesforceURL   PatternName = "salesforce_url"
	PatternRequestID       PatternName = "request_id"
	PatternOpportunityID   PatternName = "opportunity_id"
	PatternCVID            PatternName = "cv_id"
	PatternSeniority       PatternName = "seniority"
	PatternSeniorityRU     PatternName = "seniority_ru"
	PatternLanguageLevel   PatternName = "language_level"
	PatternTeamSize        PatternName = "team_size"
	PatternExperienceYears PatternName = "experience_years"
	PatternLocation        PatternName = "location"
	PatternWorkMode        PatternName = "work_mode"
	PatternTimezone        PatternName = "timezone"
)

// DefaultConfidence — уверенность для имени, которого нет в таблице.
const DefaultConfidence = 0.70

// confidence — фиксированная уверенность каждого правила.
var confidence = map[PatternName]float64{
	PatternDate:            0.95,
	PatternDateRU:          0.90,
	PatternSalesforceURL:   0.99,
	PatternRequestID:       0.98,
	PatternOpportunityID:   0.92,
	PatternCVID:            0.85,
	PatternSeniority:       0.85,
	PatternSeniorityRU:     0.80,
	PatternLanguageLevel:   0.80,
	PatternTeamSize:        0.75,
	PatternExperienceYears: 0.80,
	PatternLocation:        0.85,
	PatternWorkMode:        0.80,
	PatternTimezone:        0.85,
}

// Confidence возвращает фиксированную уверенность правила.
func Confidence(name PatternName) float64 {
	if c, ok := confidence[name]; ok {
		return c
	}
	return DefaultConfidence
}

// Pattern — одно правило реестра. Значение совпадения берётся из первой
// непустой группы захвата, а если групп нет — из всего совпадения.
type Pattern struct {
	Name PatternName
	re   *regexp.Regexp
}

// Go RE2 понимает \b только для ASCII, поэтому кириллические слова
// ограничиваются явным (?:^|[^\p{L}]) слева и \p{L}* справа.
var registry = []Pattern{
	{PatternDate, regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)},
	{PatternDateRU, regexp.MustCompile(`\b(\d{1,2}\.\d{1,2}\.\d{4})\b`)},
	{PatternSalesforceURL, regexp.MustCompile(`(https?://[^\s"'<>]*salesforce\.com[^\s"'<>,;)]*)`)},
	{PatternRequestID, regexp.MustCompile(`\b(R-\d{4,6})\b`)},
	// идентификатор Opportunity в Salesforce: префикс 006, 15 или 18 символов
	{PatternOpportunityID, regexp.MustCompile(`\b(006[a-zA-Z0-9]{12}(?:[a-zA-Z0-9]{3})?)\b`)},
	{PatternCVID, regexp.MustCompile(`(?i)\bCV\s*(?:id|№|#)?\s*[:#№-]?\s*(\d{4,})\b`)},
	{PatternSeniority, regexp.MustCompile(`(?i)\b(intern|junior|middle|senior|lead|principal|architect)\b`)},
	{PatternSeniorityRU, regexp.MustCompile(`(?i)(?:^|[^\p{L}])(стажер\p{L}*|стажёр\p{L}*|джун\p{L}*|младш\p{L}*|мидл\p{L}*|средн\p{L}*|сеньор\p{L}*|синьор\p{L}*|старш\p{L}*|ведущ\p{L}*|тимлид\p{L}*)`)},
	{PatternLanguageLevel, regexp.MustCompile(`(?i)((?:(?:english|german|french|spanish|английск|немецк|французск|испанск)\p{L}*(?:\s+язык\p{L}*)?[\s:-]*)?\b(?:[ABC][12]|upper[- ]intermediate|pre[- ]intermediate|intermediate|advanced|fluent|native|elementary|beginner)\b)`)},
	{PatternTeamSize, regexp.MustCompile(`(?i)(?:\bteam\s+(?:of\s+|size\s*:?\s*)?|(?:^|[^\p{L}])команд\p{L}*\s*(?:из\s+|:\s*)?)(\d+(?:\s*-\s*\d+)?)|(\d+(?:\s*-\s*\d+)?)\s*(?:человек|чел\.|people\b|engineers\b|developers\b|members\b)`)},
	{PatternExperienceYears, regexp.MustCompile(`(?i)(?:(?:опыт\p{L}*|\bexperience)[^\d\n]{0,30}?(\d{1,2}\+?)\s*\+?\s*(?:years?\b|yrs\b|лет|год\p{L}*)|(\d{1,2}\+?)\s*\+?\s*(?:years?|yrs)\s+(?:of\s+)?(?:experience|exp)\b|(\d{1,2}\+?)\s*\+?\s*(?:лет|год\p{L}*)\s+опыт)`)},
	{PatternLocation, regexp.MustCompile(`(?i)(?:\blocation|(?:^|[^\p{L}])(?:локаци\p{L}*|местоположени\p{L}*|город|страна))\s*[:-]\s*([^\n,;]+)`)},
	{PatternWorkMode, regexp.MustCompile(`(?i)(?:\b(remote|hybrid|on-?site|relocation)\b|(?:^|[^\p{L}])(удал[её]н\p{L}*|гибрид\p{L}*|офис\p{L}*|релокаци\p{L}*))`)},
	{PatternTimezone, regexp.MustCompile(`\b((?:UTC|GMT|MSK|CET|CEST|EET|EEST|WET|EST|EDT|PST|PDT|CST|IST)(?:\s*[+-]\s*\d{1,2}(?::\d{2})?)?)\b|(?:^|[^\p{L}])(МСК(?:\s*[+-]\s*\d{1,2})?)`)},
}

var registryIndex = func() map[PatternName]Pattern {
	idx := make(map[PatternName]Pattern, len(registry))
	for _, p := range registry {
		idx[p.Name] = p
	}
	return idx
}()

// Patterns возвращает имена правил в порядке реестра.
func Patterns() []PatternName {
	names := make([]PatternName, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}

// PatternMatch — одно совпадение правила.
// Position — смещение начала совпадения в символах (рунах) от начала текста.
// Граница слева, которую выражение съедает вместо \b (пробел перед
// кириллическим словом), в совпадение не входит.
type PatternMatch struct {
	Pattern    PatternName `json:"pattern"`
	Value      string      `json:"value"`
	Confidence float64     `json:"confidence"`
	Position   int         `json:"position"`
}

func (p Pattern) find(text string) []PatternMatch {
	var out []PatternMatch
	conf := Confidence(p.Name)
	for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		for g := 1; g < len(loc)/2; g++ {
			if loc[2*g] >= 0 && loc[2*g+1] > loc[2*g] {
				start, end = loc[2*g], loc[2*g+1]
				break
			}
		}
		matchStart := loc[0]
		if i := strings.IndexFunc(text[loc[0]:loc[1]], isWordRune); i > 0 {
			matchStart += i
		}
		out = append(out, PatternMatch{
			Pattern:    p.Name,
			Value:      text[start:end],
			Confidence: conf,
			Position:   utf8.RuneCountInString(text[:matchStart]),
		})
	}
	return out
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

// Find применяет одно правило. Для неизвестного имени возвращает пустой срез.
func Find(text string, name PatternName) []PatternMatch {
	p, ok := registryIndex[name]
	if !ok {
		return []PatternMatch{}
	}
	out := p.find(text)
	if out == nil {
		return []PatternMatch{}
	}
	return out
}

// FindAll применяет все правила реестра независимо друг от друга.
// Правила без совпадений в результат не попадают.
func FindAll(text string) map[PatternName][]PatternMatch {
	out := make(map[PatternName][]PatternMatch)
	for _, p := range registry {
		if ms := p.find(text); len(ms) > 0 {
			out[p.Name] = ms
		}
	}
	return out
}

// ExtractDates возвращает сначала ISO-даты, затем даты вида дд.мм.гггг.
func ExtractDates(text string) []string {
	dates := []string{}
	for _, name := range []PatternName{PatternDate, PatternDateRU} {
		for _, m := range Find(text, name) {
			dates = append(dates, m.Value)
		}
	}
	return dates
}

// PatternStats — сводка по одному правилу на тексте.
type PatternStats struct {
	Pattern    PatternName `json:"pattern"`
	Count      int         `json:"count"`
	Confidence float64     `json:"confidence"`
	// FirstPosition равен -1, если совпадений нет.
	FirstPosition int `json:"firstPosition"`
}

// Stats считает совпадения одного правила. Имя вне реестра — ошибка вызова.
func Stats(text string, name PatternName) (PatternStats, error) {
	p, ok := registryIndex[name]
	if !ok {
		return PatternStats{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	ms := p.find(text)
	st := PatternStats{
		Pattern:       name,
		Count:         len(ms),
		Confidence:    Confidence(name),
		FirstPosition: -1,
	}
	if len(ms) > 0 {
		st.FirstPosition = ms[0].Position
	}
	return st, nil
}
