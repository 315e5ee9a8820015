package models

// Funding stages considered active investment opportunities on the investor
// dashboard.
var EarlyStages = []string{"Seed", "Series A"}

// EntrepreneurProfile is the public profile of an entrepreneur, stored in the
// /entrepreneurs collection.
type EntrepreneurProfile struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	StartupName  string `json:"startupName"`
	Stage        string `json:"stage"`
	Industry     string `json:"industry"`
	Location     string `json:"location"`
	PitchSummary string `json:"pitchSummary"`
}
