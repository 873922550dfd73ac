// Package catalog holds the informative Q&A catalog and the frequent questions.
package catalog

import (
	"regexp"
	"strings"
)

type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Category struct {
	Title string `json:"title"`
	QAs   []QA   `json:"qas"`
}

var reSpaces = regexp.MustCompile(`\s+`)

// Normalize lowercases s, collapses whitespace runs and trims it.
func Normalize(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(strings.ToLower(s), " "))
}

// Clean drops entries with an empty question or answer, keeps only the first
// entry of each normalized question across all categories and drops empty
// categories. The input is not modified.
func Clean(cats []Category) []Category {
	seen := make(map[string]struct{})
	out := make([]Category, 0, len(cats))

	for _, cat := range cats {
		qas := make([]QA, 0, len(cat.QAs))
		for _, qa := range cat.QAs {
			if strings.TrimSpace(qa.Question) == "" || strings.TrimSpace(qa.Answer) == "" {
				continue
			}
			key := Normalize(qa.Question)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			qas = append(qas, qa)
		}
		if len(qas) == 0 {
			continue
		}
		out = append(out, Category{Title: cat.Title, QAs: qas})
	}

	return out
}

// Catalog answers exact normalized question matches.
type Catalog struct {
	categories []Category
	index      map[string]QA
}

// New cleans cats and indexes them by normalized question.
func New(cats []Category) *Catalog {
	cleaned := Clean(cats)
	index := make(map[string]QA)
	for _, cat := range cleaned {
		for _, qa := range cat.QAs {
			index[Normalize(qa.Question)] = qa
		}
	}

	return &Catalog{categories: cleaned, index: index}
}

// Lookup never matches partially.
func (c *Catalog) Lookup(text string) (QA, bool) {
	if c == nil {
		return QA{}, false
	}
	qa, ok := c.index[Normalize(text)]
	return qa, ok
}

func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.index)
}
