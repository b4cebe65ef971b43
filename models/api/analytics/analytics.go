package analyticsapimodels

type DashboardView struct {
	TotalCandidates     int                `json:"total_candidates"`
	ActivePositions     int                `json:"active_positions"`     // distinct positions with open candidates
	InterviewsScheduled int                `json:"interviews_scheduled"` // interviews still in scheduled status
	OffersPending       int                `json:"offers_pending"`       // candidates in offer
	TimeToHire          float64            `json:"time_to_hire"`         // average days from application to hire
	AverageRating       float64            `json:"average_rating"`
	PipelineConversion  map[string]float64 `json:"pipeline_conversion"`  // stage -> % of candidates that reached it
	SourceEffectiveness map[string]float64 `json:"source_effectiveness"` // source -> % reaching offer or hired
	TeamPerformance     map[string]int     `json:"team_performance"`     // interviewer -> completed interviews
	MonthlyHires        []MonthlyHires     `json:"monthly_hires"`
	StatusDistribution  map[string]int     `json:"status_distribution"`
}

type MonthlyHires struct {
	Month string `json:"month"` // YYYY-MM
	Hires int    `json:"hires"`
}
