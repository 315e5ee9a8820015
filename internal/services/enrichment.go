package services

import "github.com/venturebridge/backend/internal/models"

// Placeholders used when a request references an investor that is missing
// from the supplied collection. Enrichment is best-effort display plumbing:
// a lookup miss degrades to placeholders instead of failing.
const (
	unknownName            = "Unknown"
	unknownCompany         = "Unknown"
	unknownAvatar          = "XX"
	unknownInvestmentRange = "N/A"
)

// EnrichForEntrepreneur joins each request with the live profile of its
// investor. Live fields take precedence over the embedded snapshot. The
// result preserves the order of the input and neither input is mutated.
func EnrichForEntrepreneur(requests []models.CollaborationRequest, investors []models.InvestorProfile) []models.EnrichedRequest {
	byID := make(map[int64]models.InvestorProfile, len(investors))
	for _, investor := range investors {
		byID[investor.ID] = investor
	}

	enriched := make([]models.EnrichedRequest, 0, len(requests))
	for _, request := range requests {
		// The fallbacks apply per field: an investor found with a blank
		// company still shows "Unknown" for it.
		investor := byID[request.InvestorID]
		enriched = append(enriched, models.EnrichedRequest{
			CollaborationRequest: request,
			InvestorName:         orDefault(investor.Name, unknownName),
			Company:              orDefault(investor.Company, unknownCompany),
			ProfileSnippet:       investor.ProfileSnippet,
			Avatar:               orDefault(investor.Avatar, unknownAvatar),
			InvestmentRange:      orDefault(investor.InvestmentRange, unknownInvestmentRange),
		})
	}
	return enriched
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
