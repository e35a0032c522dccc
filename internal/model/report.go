package model

// StatsSummary aggregates upload outcomes for the admin dashboard.
// SuccessRate is pre-formatted with two decimal places and a percent sign,
// "0.00%" when there were no uploads at all.
type StatsSummary struct {
	TotalUploads     int    `json:"total_uploads"`
	SuccessfulParses int    `json:"successful_parses"`
	ErrorParses      int    `json:"error_parses"`
	SuccessRate      string `json:"success_rate"`
}

// SkillsDistribution is the ranked frequency table of normalized skill
// tokens. Labels and Data are parallel sequences ordered by descending
// count; the explicit rank order is what downstream charting consumes.
type SkillsDistribution struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
