package nlp

import (
	"regexp"
	"strings"
)

// MetaInfo — поля строки-заголовка заявки. Незаполненные поля опускаются.
type MetaInfo struct {
	Role       string `json:"role,omitempty"`
	Technology string `json:"technology,omitempty"`
	Company    string `json:"company,omitempty"`
	Manager    string `json:"manager,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsZero сообщает, что ни одна из грамматик не сработала.
func (m MetaInfo) IsZero() bool { return m == MetaInfo{} }

// metaGrammar описывает раскладку пяти сегментов строки.
// Грамматики структурно различаются: первая требует префикс "CV",
// вторая — ровно пять сегментов без префикса.
type metaGrammar struct {
	prefixed bool
	assign   func(seg []string) MetaInfo
}

var metaGrammars = []metaGrammar{
	{
		prefixed: true,
		assign: func(s []string) MetaInfo {
			return MetaInfo{Role: s[0], Technology: s[1], Company: s[2], Manager: s[3], RequestID: s[4]}
		},
	},
	{
		prefixed: false,
		assign: func(s []string) MetaInfo {
			return MetaInfo{Company: s[0], Manager: s[1], Country: s[2], Technology: s[3], RequestID: s[4]}
		},
	},
}

var (
	reMetaDash   = regexp.MustCompile(`\s+-\s*|\s*-\s+`)
	reMetaPrefix = regexp.MustCompile(`(?i)^CV$`)
)

// ExtractMetaInfo разбирает строку вида "CV - A - B - C - D - E".
// Сначала пробуется грамматика {role, technology, company, manager, requestId},
// затем {company, manager, country, technology, requestId}. Если ни одна не
// подошла по числу сегментов, возвращается пустой MetaInfo.
func ExtractMetaInfo(line string) MetaInfo {
	line = typography.Replace(line)
	line = strings.TrimSpace(reHSpace.ReplaceAllString(line, " "))
	if line == "" {
		return MetaInfo{}
	}
	segments := reMetaDash.Split(line, -1)
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
		if segments[i] == "" {
			return MetaInfo{}
		}
	}
	hasPrefix := reMetaPrefix.MatchString(segments[0])

	for _, g := range metaGrammars {
		fields := segments
		if g.prefixed {
			if !hasPrefix {
				continue
			}
			fields = segments[1:]
		} else if hasPrefix {
			continue
		}
		if len(fields) != 5 {
			continue
		}
		return g.assign(fields)
	}
	return MetaInfo{}
}
