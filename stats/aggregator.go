package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/model"
)

// ComputeStats count the repositories per language and compute the percentage of each one
// repositories without language are excluded from the total used to compute percentages
// result is sorted by descending percentage, languages with the same percentage keep the order they were found
func ComputeStats(repos []*model.Repository) (model.LanguageStats, error) {
	languagesStats := make(model.LanguageStats, 0)
	positions := make(map[string]int)
	unknownCount := 0

	for i, repo := range repos {
		if repo == nil {
			return nil, model.InvalidInputError{Reason: fmt.Sprintf("repository at index %d is nil", i)}
		}

		language := strings.TrimSpace(repo.LanguageLabel())

		if language == "" {
			unknownCount++
			continue
		}

		if position, found := positions[language]; found {
			languagesStats[position].Count++
		} else {
			positions[language] = len(languagesStats)
			languagesStats = append(languagesStats, model.LanguageStat{Language: language, Count: 1})
		}
	}

	totalValidRepos := len(repos) - unknownCount

	for i := range languagesStats {
		if totalValidRepos > 0 {
			languagesStats[i].Percentage = Round(float64(languagesStats[i].Count) / float64(totalValidRepos) * 100)
		}
	}

	slices.SortStableFunc(languagesStats, func(a, b model.LanguageStat) int {
		return cmp.Compare(b.Percentage, a.Percentage)
	})

	return languagesStats, nil
}

// TopN keep the first n languages and group the remaining ones in a single Others entry
// Others is omitted if the remaining languages sum to zero
func TopN(languagesStats model.LanguageStats, n int) model.LanguageStats {
	if n < 0 {
		n = 0
	}

	if n > len(languagesStats) {
		n = len(languagesStats)
	}

	topLanguages := make(model.LanguageStats, n, n+1)
	copy(topLanguages, languagesStats[:n])

	othersPercentage := 0.0
	for _, s := range languagesStats[n:] {
		othersPercentage += s.Percentage
	}

	othersPercentage = Round(othersPercentage)

	if othersPercentage > 0 {
		topLanguages = append(topLanguages, model.LanguageStat{
			Language:   model.OthersLanguage,
			Percentage: othersPercentage,
		})
	}

	return topLanguages
}

// Round a percentage to two decimals
func Round(value float64) float64 {
	return math.Round(value*100) / 100
}
