package service

import (
	"sort"
	"strings"

	"github.com/candidatehub/server/internal/model"
)

// distributionLimit caps the skills distribution at the top entries the
// dashboard chart can usefully display.
const distributionLimit = 15

// AggregateSkills builds the ranked frequency table of normalized skill
// tokens across all profiles. Tokens are lowercased and trimmed before
// counting. Ranking is by descending count; ties keep the order in which
// tokens were first encountered.
func AggregateSkills(profiles []model.Profile) model.SkillsDistribution {
	counts := make(map[string]int)
	var order []string

	for _, profile := range profiles {
		for _, skill := range profile.Skills.Flatten() {
			token := strings.TrimSpace(strings.ToLower(skill))
			if _, ok := counts[token]; !ok {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	if len(order) == 0 {
		return model.SkillsDistribution{Labels: []string{}, Data: []int{}}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > distributionLimit {
		order = order[:distributionLimit]
	}

	data := make([]int, len(order))
	for i, token := range order {
		data[i] = counts[token]
	}

	return model.SkillsDistribution{Labels: order, Data: data}
}
