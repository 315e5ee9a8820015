package models

import "time"

// Collaboration request lifecycle: every request starts pending and is moved
// exactly once to accepted or rejected by the target entrepreneur. Both are
// terminal states.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// DefaultRequestMessage is stored when the investor submits a request with a
// blank message.
const DefaultRequestMessage = "I'm interested in learning more about your startup and potential collaboration opportunities."

// InvestorSnapshot is the copy of the investor's display fields captured when
// the request is created. It is deliberately never refreshed: the request
// preserves the investor's profile as it was at send time, regardless of
// later profile edits.
type InvestorSnapshot struct {
	Name            string   `json:"name"`
	Company         string   `json:"company"`
	ProfileSnippet  string   `json:"profileSnippet"`
	Avatar          string   `json:"avatar"`
	InvestmentRange string   `json:"investmentRange"`
	Specialties     []string `json:"specialties"`
	PortfolioSize   int      `json:"portfolioSize"`
	SuccessfulExits int      `json:"successfulExits"`
}

// CollaborationRequest is a proposal from an investor to an entrepreneur,
// stored in the /collaborationRequests collection.
type CollaborationRequest struct {
	ID               int64            `json:"id,omitempty"`
	InvestorID       int64            `json:"investorId"`
	EntrepreneurID   int64            `json:"entrepreneurId"`
	InvestorName     string           `json:"investorName"`
	EntrepreneurName string           `json:"entrepreneurName"`
	Status           string           `json:"status"`
	Message          string           `json:"message"`
	RequestDate      time.Time        `json:"requestDate"`
	Investor         InvestorSnapshot `json:"investor"`
}

// EnrichedRequest is a collaboration request joined with the live profile of
// its investor for display. The live fields take precedence over both the
// stored snapshot and the request's own convenience fields; when the investor
// is missing from the store the documented placeholders are used instead.
type EnrichedRequest struct {
	CollaborationRequest
	InvestorName    string `json:"investorName"`
	Company         string `json:"company"`
	ProfileSnippet  string `json:"profileSnippet"`
	Avatar          string `json:"avatar"`
	InvestmentRange string `json:"investmentRange"`
}
