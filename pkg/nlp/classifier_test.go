package nlp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyContextBuckets(t *testing.T) {
	c := NewClassifier(nil)
	got := c.ExtractTechnologies("Требования: Java, Spring Boot. Желательно: Kafka\nLead Docker initiatives")

	assert.Equal(t, []string{"Java", "Spring", "Spring Boot"}, got.Required)
	assert.Equal(t, []string{"Kafka"}, got.Preferred)
	assert.Equal(t, []string{"Docker"}, got.Leadership)
}

func TestClassifyDefaultsToRequired(t *testing.T) {
	got := NewClassifier(nil).ExtractTechnologies("Stack: Python, Django")

	assert.Equal(t, []string{"Python", "Django"}, got.Required)
	assert.Empty(t, got.Preferred)
	assert.Empty(t, got.Leadership)
}

func TestClassifyWholeWords(t *testing.T) {
	got := NewClassifier(nil).Classify("JavaScript and C++ and C#", CategoryLanguages)

	assert.ElementsMatch(t, []string{"C++", "C#", "JavaScript"}, got.All())
	assert.NotContains(t, got.All(), "Java")
	assert.NotContains(t, got.All(), "C")
}

func TestClassifyEmptyText(t *testing.T) {
	got := NewClassifier(nil).ExtractTechnologies("")

	require.NotNil(t, got.Required)
	require.NotNil(t, got.Preferred)
	require.NotNil(t, got.Leadership)
	assert.Empty(t, got.All())
}

func TestClassifyPartition(t *testing.T) {
	c := NewClassifier(nil)
	texts := []string{
		"Требования: Java, Spring Boot. Желательно: Kafka\nLead Docker initiatives",
		"Must have: Go, PostgreSQL, Redis; nice to have Kubernetes and Helm",
		"Будет плюсом опыт с AWS. Наставник для команды Python разработчиков",
	}
	for _, text := range texts {
		got := c.ExtractTechnologies(text)
		all := got.All()
		seen := map[string]int{}
		for _, term := range all {
			seen[term]++
		}
		for term, n := range seen {
			assert.Equal(t, 1, n, "term %q in more than one bucket", term)
		}
	}
}

func TestClassifyMustHaveAndNiceToHave(t *testing.T) {
	got := NewClassifier(nil).ExtractTechnologies("Must have: Go, PostgreSQL, Redis; nice to have Kubernetes and Helm")

	assert.Equal(t, []string{"Go", "PostgreSQL", "Redis"}, got.Required)
	assert.Equal(t, []string{"Kubernetes", "Helm"}, got.Preferred)
}

func TestClassifyCustomDictionary(t *testing.T) {
	dict := DefaultDictionary().With(CategoryTools, []string{"Foo Bar"})
	c := NewClassifier(dict)

	got := c.Classify("we need foo   bar here", CategoryTools)
	assert.Equal(t, []string{"Foo Bar"}, got.Required)

	// исходный справочник не меняется
	assert.Contains(t, DefaultDictionary()[CategoryTools], "Docker")
	assert.Equal(t, []string{"Foo Bar"}, c.Dictionary()[CategoryTools])
}

func TestExtractDomainsSkillsRoles(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, []string{"FinTech"}, c.ExtractDomains("Индустрия проекта FinTech").Required)
	assert.Equal(t, []string{"API Testing", "Testing"}, c.ExtractSkills("Опыт в API Testing").Required)
	assert.Equal(t, []string{"Automation QA"}, c.ExtractRoles("Ищем Automation QA в команду").Required)
}

func TestClassifierConcurrentUse(t *testing.T) {
	c := NewClassifier(nil)
	text := "Требования: Java, Spring Boot. Желательно: Kafka"

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := c.ExtractTechnologies(text)
			assert.Equal(t, []string{"Kafka"}, got.Preferred)
		}()
	}
	wg.Wait()
}
