package nlp

import (
	"regexp"
	"strings"
)

// Bucket — корзина, в которую классификатор относит найденный термин.
type Bucket string

const (
	BucketRequired   Bucket = "required"
	BucketPreferred  Bucket = "preferred"
	BucketLeadership Bucket = "leadership"
)

// contextRule связывает корзину с набором фраз-маркеров, стоящих перед термином.
type contextRule struct {
	bucket  Bucket
	phrases string
}

// contextRules проверяются по порядку, первое совпадение выигрывает.
// Если ни одно правило не сработало, термин уходит в BucketRequired.
var contextRules = []contextRule{
	{BucketRequired, `требовани|обязательн|необходим|required|requirement|must[- ]have|mandatory`},
	{BucketPreferred, `желательн|будет плюсом|плюсом будет|будет преимуществом|preferred|nice[- ]to[- ]have|is a plus|optional`},
	{BucketLeadership, `lead|лидер|руковод|mentor|ментор|наставни`},
}

// contextWindow — сколько символов может стоять между фразой и термином.
// Окно не пересекает перевод строки, точку и точку с запятой.
const contextWindow = `[^\n.;]{0,120}?`

// термин считается целым словом, если вокруг него нет букв, цифр и символов,
// из которых состоят сами термины (C++, C#)
const (
	termLeft  = `(?:^|[^\p{L}\p{N}_+#])`
	termRight = `(?:$|[^\p{L}\p{N}_+#])`
)

// Classified — разбиение найденных терминов по корзинам. Каждый термин ровно в одной корзине.
type Classified struct {
	Required   []string `json:"required"`
	Preferred  []string `json:"preferred"`
	Leadership []string `json:"leadership"`
}

// All возвращает все термины разбиения.
func (c Classified) All() []string {
	out := make([]string, 0, len(c.Required)+len(c.Preferred)+len(c.Leadership))
	out = append(out, c.Required...)
	out = append(out, c.Preferred...)
	return append(out, c.Leadership...)
}

func (c *Classified) add(b Bucket, term string) {
	switch b {
	case BucketPreferred:
		c.Preferred = append(c.Preferred, term)
	case BucketLeadership:
		c.Leadership = append(c.Leadership, term)
	default:
		c.Required = append(c.Required, term)
	}
}

type termMatcher struct {
	found   *regexp.Regexp
	context []*regexp.Regexp // по индексу contextRules
}

// Classifier ищет термины справочника в тексте и раскладывает их по корзинам.
// После NewClassifier состояние не меняется, экземпляр можно делить между горутинами.
type Classifier struct {
	dict     Dictionary
	matchers map[string]termMatcher
}

// NewClassifier компилирует выражения для всех терминов справочника.
// nil означает встроенный справочник.
func NewClassifier(dict Dictionary) *Classifier {
	if dict == nil {
		dict = DefaultDictionary()
	} else {
		dict = dict.clone()
	}
	c := &Classifier{dict: dict, matchers: map[string]termMatcher{}}
	for _, terms := range dict {
		for _, t := range terms {
			if _, ok := c.matchers[t]; ok || strings.TrimSpace(t) == "" {
				continue
			}
			c.matchers[t] = compileTerm(t)
		}
	}
	return c
}

func compileTerm(term string) termMatcher {
	body := termLeft + termPattern(term) + termRight
	m := termMatcher{found: regexp.MustCompile(`(?i)` + body)}
	for _, r := range contextRules {
		m.context = append(m.context, regexp.MustCompile(`(?i)(?:`+r.phrases+`)`+contextWindow+body))
	}
	return m
}

func termPattern(term string) string {
	parts := strings.Fields(term)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, `\s+`)
}

// Dictionary возвращает копию справочника классификатора.
func (c *Classifier) Dictionary() Dictionary { return c.dict.clone() }

// Classify находит термины перечисленных категорий и относит каждый к одной корзине.
func (c *Classifier) Classify(text string, categories ...Category) Classified {
	out := Classified{Required: []string{}, Preferred: []string{}, Leadership: []string{}}
	if text == "" {
		return out
	}
	for _, term := range c.dict.Terms(categories...) {
		m, ok := c.matchers[term]
		if !ok || !m.found.MatchString(text) {
			continue
		}
		out.add(m.bucket(text), term)
	}
	return out
}

func (m termMatcher) bucket(text string) Bucket {
	for i, re := range m.context {
		if re.MatchString(text) {
			return contextRules[i].bucket
		}
	}
	return BucketRequired
}

// ExtractTechnologies классифицирует языки, фреймворки, базы данных, инструменты и платформы.
func (c *Classifier) ExtractTechnologies(text string) Classified {
	return c.Classify(text, TechnologyCategories...)
}

// ExtractSkills классифицирует навыки и виды тестирования.
func (c *Classifier) ExtractSkills(text string) Classified {
	return c.Classify(text, CategorySkills, CategoryTesting)
}

func (c *Classifier) ExtractDomains(text string) Classified {
	return c.Classify(text, CategoryDomains)
}

func (c *Classifier) ExtractRoles(text string) Classified {
	return c.Classify(text, CategoryRoles)
}
