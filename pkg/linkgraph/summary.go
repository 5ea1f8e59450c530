// Summary aggregator: per-entity link counts for a whole trip in one pass.
// Exists so the UI can render badges for every visible entity without
// issuing one query per entity.
package linkgraph

import (
	"github.com/atlasfolio/tripgraph/pkg/types"
)

// GetTripLinkSummary computes, for every entity that appears in any link of
// the trip, its total link count and a per-type breakdown. One store query
// fetches all links; grouping happens in memory. Both directions count: a
// link contributes to its source's counts keyed by the target's type, and to
// its target's counts keyed by the source's type. The result is keyed by the
// composite "TYPE:id" string so it crosses the API boundary as a plain JSON
// object. A trip with no links yields an empty map, not an error.
func (s *Service) GetTripLinkSummary(tripID int64) (map[string]*types.EntitySummary, error) {
	links, err := s.links.LinksForTrip(tripID)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]*types.EntitySummary, len(links)*2)
	for _, link := range links {
		tally(summary, link.Source(), link.TargetType)
		tally(summary, link.Target(), link.SourceType)
	}
	return summary, nil
}

// tally records one link endpoint against an entity, counting by the other
// endpoint's type.
func tally(summary map[string]*types.EntitySummary, entity types.EntityRef, otherType types.EntityType) {
	key := types.SummaryKey(entity.Type, entity.ID)
	es, ok := summary[key]
	if !ok {
		es = &types.EntitySummary{
			EntityType: entity.Type,
			EntityID:   entity.ID,
			LinkCounts: make(map[types.EntityType]int),
		}
		summary[key] = es
	}
	es.TotalLinks++
	es.LinkCounts[otherType]++
}
