package service

import (
	"fmt"

	"github.com/candidatehub/server/internal/model"
)

// ComputeStats derives upload totals from the successfully parsed profiles
// and the number of recorded parse failures.
func ComputeStats(successful []model.Profile, errorCount int) model.StatsSummary {
	successes := len(successful)
	total := successes + errorCount

	rate := 0.0
	if total > 0 {
		rate = float64(successes) / float64(total) * 100
	}

	return model.StatsSummary{
		TotalUploads:     total,
		SuccessfulParses: successes,
		ErrorParses:      errorCount,
		SuccessRate:      fmt.Sprintf("%.2f%%", rate),
	}
}
