package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
)

// Cache is the optional distribution cache. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

const (
	skillsCacheKey = "skills:distribution"
	skillsCacheTTL = 5 * time.Minute
)

// Report answers the admin dashboard queries: filtered profile listings with
// parse statistics, CSV export and the skills distribution.
type Report struct {
	profileStore model.ProfileStore
	errorStore   model.ErrorLogStore
	cache        Cache
	logger       *logger.Logger
}

func NewReport(
	profileStore model.ProfileStore,
	errorStore model.ErrorLogStore,
	cache Cache,
	logger *logger.Logger,
) *Report {
	return &Report{
		profileStore: profileStore,
		errorStore:   errorStore,
		cache:        cache,
		logger:       logger,
	}
}

// Query loads all profiles, computes the stats summary over the full set and
// returns the subset matching search. A failing profile scan propagates; the
// error-log count degrades to zero on failure.
func (s *Report) Query(ctx context.Context, search string) ([]model.Profile, model.StatsSummary, error) {
	profiles, err := s.profileStore.All(ctx)
	if err != nil {
		return nil, model.StatsSummary{}, fmt.Errorf("failed to load profiles: %w", err)
	}

	stats := ComputeStats(profiles, s.errorCount(ctx))

	return FilterProfiles(profiles, search), stats, nil
}

// ExportCSV serializes the profiles matching search into a CSV report.
func (s *Report) ExportCSV(ctx context.Context, search string) ([]byte, error) {
	profiles, err := s.profileStore.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	report, err := WriteCSV(FilterProfiles(profiles, search))
	if err != nil {
		return nil, fmt.Errorf("failed to generate csv report: %w", err)
	}

	return report, nil
}

// SkillsDistribution returns the ranked skill frequency table across all
// profiles, served from cache when a fresh entry is available.
func (s *Report) SkillsDistribution(ctx context.Context) (model.SkillsDistribution, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, skillsCacheKey); ok {
			var distribution model.SkillsDistribution
			if err := json.Unmarshal(raw, &distribution); err == nil {
				return distribution, nil
			}
			s.logger.Debug("Report service: discarding malformed cache entry", "key", skillsCacheKey)
		}
	}

	profiles, err := s.profileStore.All(ctx)
	if err != nil {
		return model.SkillsDistribution{}, fmt.Errorf("failed to load profiles: %w", err)
	}

	distribution := AggregateSkills(profiles)

	if s.cache != nil {
		if raw, err := json.Marshal(distribution); err == nil {
			s.cache.Set(ctx, skillsCacheKey, raw, skillsCacheTTL)
		}
	}

	return distribution, nil
}

// errorCount reads the parse-error count. The count feeds a best-effort
// statistic, so a failing lookup degrades to zero instead of propagating.
func (s *Report) errorCount(ctx context.Context) int {
	count, err := s.errorStore.Count(ctx)
	if err != nil {
		s.logger.Error("Report service: failed to count parse errors",
			"error", err.Error())
		return 0
	}
	return count
}
