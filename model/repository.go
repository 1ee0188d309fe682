package model

type Repository struct {
	Name     string  `json:"name"`
	Language *string `json:"language"` // nil when github could not detect a language
}

// LanguageLabel returns the repository language or an empty string when unknown
func (r Repository) LanguageLabel() string {
	if r.Language == nil {
		return ""
	}

	return *r.Language
}

// LanguageStat is the usage of a single language across the repositories of a user
// Count is zero for the synthetic Others entry
type LanguageStat struct {
	Language   string  `json:"language"`
	Count      int     `json:"count,omitempty"`
	Percentage float64 `json:"percentage"`
}

// LanguageStats keeps languages ordered by descending percentage
// the chart renderer relies on this order for slices, segments and legends
type LanguageStats []LanguageStat

// OthersLanguage is the name of the entry grouping the languages outside the top N
const OthersLanguage = "Others"

// Get returns the stat for a language
func (stats LanguageStats) Get(language string) (LanguageStat, bool) {
	for _, s := range stats {
		if s.Language == language {
			return s, true
		}
	}

	return LanguageStat{}, false
}

// TotalPercentage sums the percentage of every entry
func (stats LanguageStats) TotalPercentage() float64 {
	total := 0.0

	for _, s := range stats {
		total += s.Percentage
	}

	return total
}

// Languages returns the language names in iteration order
func (stats LanguageStats) Languages() []string {
	languages := make([]string, 0, len(stats))

	for _, s := range stats {
		languages = append(languages, s.Language)
	}

	return languages
}
