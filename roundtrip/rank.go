package roundtrip

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/loopway/elevation"
	"github.com/katalvlaran/loopway/path"
	"github.com/katalvlaran/loopway/spt"
	"github.com/katalvlaran/loopway/weighting"
)

// candidate is a closed loop on its way through ranking.
type candidate struct {
	route Route
	edges *roaring.Bitmap
}

// rank extracts the loops ending at leaves, drops those shorter than the
// minimum distance or outside the distance tolerance, orders the rest by
// elevation score and removes near-duplicates.
func (s *searcher) rank(w weighting.Weighting, prov elevation.Provider, leaves []spt.ID) ([]Route, error) {
	cands := make([]candidate, 0, len(leaves))
	for _, leaf := range leaves {
		p, err := path.Extract(s.g, w, s.arena, leaf)
		if err != nil {
			return nil, fmt.Errorf("roundtrip: extracting loop: %w", err)
		}
		s.stats.Candidates++
		if p.Distance < s.minDistance || !s.opts.Tolerance.Accept(p.Distance, s.minDistance, s.maxDistance) {
			s.stats.DistanceFiltered++
			continue
		}
		profile := elevation.ProfileOf(p, prov)
		cands = append(cands, candidate{
			route: Route{Path: p, Profile: profile, ElevationScore: profile.Score()},
			edges: edgeSet(p),
		})
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		switch {
		case a.route.ElevationScore < b.route.ElevationScore:
			return -1
		case a.route.ElevationScore > b.route.ElevationScore:
			return 1
		default:
			return 0
		}
	})

	kept := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if s.opts.MaxResults > 0 && len(kept) >= s.opts.MaxResults {
			break
		}
		if s.duplicate(c, kept) {
			s.stats.Deduplicated++
			continue
		}
		kept = append(kept, c)
	}

	routes := make([]Route, len(kept))
	for i, c := range kept {
		routes[i] = c.route
	}

	return routes, nil
}

// duplicate reports whether c is too similar to any loop in kept.
func (s *searcher) duplicate(c candidate, kept []candidate) bool {
	for _, k := range kept {
		if s.similarity(c, k) > s.opts.SimilarityThreshold {
			return true
		}
	}

	return false
}

// similarity is shared/len(a) + shared/len(b), where shared is the distance
// of the edges both loops use. A zero-length loop contributes 0.
func (s *searcher) similarity(a, b candidate) float64 {
	common := roaring.And(a.edges, b.edges)
	if common.IsEmpty() {
		return 0
	}
	var shared float64
	it := common.Iterator()
	for it.HasNext() {
		e, err := s.g.Edge(int(it.Next()))
		if err != nil {
			continue
		}
		shared += e.Distance
	}

	return ratio(shared, a.route.Path.Distance) + ratio(shared, b.route.Path.Distance)
}

func ratio(shared, length float64) float64 {
	if length == 0 {
		return 0
	}

	return shared / length
}

func edgeSet(p *path.Path) *roaring.Bitmap {
	bm := roaring.New()
	for _, id := range p.EdgeIDs() {
		bm.Add(uint32(id))
	}

	return bm
}
