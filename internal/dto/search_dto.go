package dto

// SearchRequest is the hybrid search input. PriceTarget/PriceTolerance are
// optional; when absent a bare number in the query is read as the target.
type SearchRequest struct {
	Query          string   `json:"q" validate:"required"`
	PriceTarget    *float64 `json:"price,omitempty"`
	PriceTolerance *float64 `json:"tolerance,omitempty"`
}

// SearchResult is one ranked candidate with the similarity score rounded to
// two decimals for display.
type SearchResult struct {
	RepairerType    string   `json:"repairer_type"`
	Category        string   `json:"category"`
	GarmentType     string   `json:"garment_type"`
	Service         string   `json:"service"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	EstimatedHours  *float64 `json:"estimated_hours,omitempty"`
	SimilarityScore float64  `json:"similarity_score"`
}
