package models

// InvestorProfile is the public profile of an investor, stored in the
// /investors collection. Linked one-to-one to a User of type investor via the
// user's profileId; the store itself does not enforce the link.
type InvestorProfile struct {
	ID              int64    `json:"id,omitempty"`
	Name            string   `json:"name"`
	Company         string   `json:"company"`
	ProfileSnippet  string   `json:"profileSnippet"`
	Avatar          string   `json:"avatar"`
	InvestmentRange string   `json:"investmentRange"`
	Specialties     []string `json:"specialties"`
	PortfolioSize   int      `json:"portfolioSize"`
	SuccessfulExits int      `json:"successfulExits"`
}
