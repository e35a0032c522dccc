package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/candidatehub/server/internal/model"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name       string
		successful []model.Profile
		errorCount int
		want       model.StatsSummary
	}{
		{
			name:       "no uploads at all",
			successful: nil,
			errorCount: 0,
			want: model.StatsSummary{
				TotalUploads:     0,
				SuccessfulParses: 0,
				ErrorParses:      0,
				SuccessRate:      "0.00%",
			},
		},
		{
			name:       "three successes one failure",
			successful: make([]model.Profile, 3),
			errorCount: 1,
			want: model.StatsSummary{
				TotalUploads:     4,
				SuccessfulParses: 3,
				ErrorParses:      1,
				SuccessRate:      "75.00%",
			},
		},
		{
			name:       "all failures",
			successful: nil,
			errorCount: 5,
			want: model.StatsSummary{
				TotalUploads:     5,
				SuccessfulParses: 0,
				ErrorParses:      5,
				SuccessRate:      "0.00%",
			},
		},
		{
			name:       "repeating fraction is rounded to two places",
			successful: make([]model.Profile, 1),
			errorCount: 2,
			want: model.StatsSummary{
				TotalUploads:     3,
				SuccessfulParses: 1,
				ErrorParses:      2,
				SuccessRate:      "33.33%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.successful, tt.errorCount))
		})
	}
}
