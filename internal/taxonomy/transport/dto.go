// Package transport defines the taxonomy API DTOs.
package transport

// MainStatusResponse is one main status with its ordered sub-statuses.
type MainStatusResponse struct {
	Name        string   `json:"name"`
	Bucket      string   `json:"bucket,omitempty"`
	SubStatuses []string `json:"subStatuses"`
}

// StatusListResponse wraps the ordered taxonomy.
type StatusListResponse struct {
	Items []MainStatusResponse `json:"items"`
	Total int                  `json:"total"`
}

// SearchHitResponse is one search result row.
type SearchHitResponse struct {
	Level  string `json:"level"`
	Label  string `json:"label"`
	Parent string `json:"parent,omitempty"`
}

// SearchResponse wraps taxonomy search results.
type SearchResponse struct {
	Items []SearchHitResponse `json:"items"`
	Total int                 `json:"total"`
}
