package service

import (
	"strings"

	"github.com/candidatehub/server/internal/model"
)

// FilterProfiles returns the profiles whose experience text or any skill
// string contains query, case-insensitively. An empty or blank query returns
// the input unchanged. Input order is preserved and no profile is added to
// the result twice, even if it appears twice in the input.
func FilterProfiles(profiles []model.Profile, query string) []model.Profile {
	query = strings.TrimSpace(query)
	if query == "" {
		return profiles
	}

	needle := strings.ToLower(query)
	filtered := make([]model.Profile, 0, len(profiles))
	seen := make(map[string]struct{}, len(profiles))

	for _, profile := range profiles {
		if _, ok := seen[profile.ID]; ok {
			continue
		}

		if strings.Contains(strings.ToLower(profile.Experience), needle) {
			filtered = append(filtered, profile)
			seen[profile.ID] = struct{}{}
			continue
		}

		for _, skill := range profile.Skills.Flatten() {
			if strings.Contains(strings.ToLower(skill), needle) {
				filtered = append(filtered, profile)
				seen[profile.ID] = struct{}{}
				break
			}
		}
	}

	return filtered
}
