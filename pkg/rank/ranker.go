package rank

import (
	"sort"
	"strings"

	"fikse-agent-be/pkg/catalog"
)

// Keyword-match priority tiers. Lower is better. Tiering instead of score
// blending keeps the semantic and lexical scales from needing calibration.
const (
	TierExactService   = 0 // query equals the service name
	TierPartialService = 1 // query and service name contain each other
	TierDescription    = 2 // query appears in the description
	TierOtherField     = 3 // query appears in repairer/category/garment
	TierSemanticOnly   = 4 // no keyword match, vector similarity only
)

// Candidate is a catalog record annotated with the similarity score from the
// vector index and the keyword tier assigned here.
type Candidate struct {
	Record catalog.Record `json:"record"`
	Score  float64        `json:"score"`
	Tier   int            `json:"tier"`
}

// PriceFilter keeps candidates priced within [Target-Tolerance, Target+Tolerance].
type PriceFilter struct {
	Target    float64
	Tolerance float64
}

// AssignTier tests the query against the record fields in fixed precedence,
// first match wins. Matching is case-insensitive on the trimmed query.
func AssignTier(query string, rec *catalog.Record) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return TierSemanticOnly
	}

	service := strings.ToLower(strings.TrimSpace(rec.Service))
	switch {
	case q == service:
		return TierExactService
	case strings.Contains(service, q) || strings.Contains(q, service):
		return TierPartialService
	case strings.Contains(strings.ToLower(rec.Description), q):
		return TierDescription
	case strings.Contains(strings.ToLower(rec.RepairerType), q),
		strings.Contains(strings.ToLower(rec.Category), q),
		strings.Contains(strings.ToLower(rec.GarmentType), q):
		return TierOtherField
	default:
		return TierSemanticOnly
	}
}

// Rank orders candidates by ascending tier, then descending similarity score.
// The sort is stable, so ties keep their retrieval order. The price filter is
// applied after ranking and before truncation, so it never reorders survivors.
// An empty result is a valid outcome.
func Rank(candidates []Candidate, filter *PriceFilter, limit int) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Tier != ranked[j].Tier {
			return ranked[i].Tier < ranked[j].Tier
		}
		return ranked[i].Score > ranked[j].Score
	})

	if filter != nil {
		kept := ranked[:0]
		for _, c := range ranked {
			if c.Record.Price >= filter.Target-filter.Tolerance &&
				c.Record.Price <= filter.Target+filter.Tolerance {
				kept = append(kept, c)
			}
		}
		ranked = kept
	}

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
