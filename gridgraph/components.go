package gridgraph

// ConnectedComponents groups passable cells by connectivity and returns node
// IDs per component, each in BFS order from its first cell in row-major scan.
// Grade limits are not applied here.
//
// Complexity: O(W·H·k).
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			i0 := gg.NodeID(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.NodeID(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// LargestComponent returns the biggest component, the earliest on ties, or
// nil when no cell is passable.
func (gg *GridGraph) LargestComponent() []int {
	var best []int
	for _, c := range gg.ConnectedComponents() {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}
