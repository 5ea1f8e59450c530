// Trip-wide link count aggregates for UI badges.
package types

import "strconv"

// EntitySummary aggregates link counts for one entity. Both directions
// count toward TotalLinks; LinkCounts is keyed by the other endpoint's type
// regardless of which side of the edge the entity is on.
type EntitySummary struct {
	EntityType EntityType         `json:"entity_type"`
	EntityID   int64              `json:"entity_id"`
	TotalLinks int                `json:"total_links"`
	LinkCounts map[EntityType]int `json:"link_counts"`
}

// SummaryKey builds the composite "TYPE:id" key used to address summaries
// across the API boundary. The summary map is string-keyed on purpose so it
// serializes as an ordinary JSON object.
func SummaryKey(t EntityType, id int64) string {
	return string(t) + ":" + strconv.FormatInt(id, 10)
}
