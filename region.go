package aster

// RegionManager accumulates world-space dirty rectangles and turns them into
// a redraw plan: merge overlapping or nearby rectangles, report the overall
// bounding box and covered area, and decide whether a full-surface redraw
// beats redrawing the individual regions.
type RegionManager struct {
	regions []Rect
}

// NewRegionManager creates an empty region manager.
func NewRegionManager() *RegionManager {
	return &RegionManager{}
}

// Add accumulates a dirty rectangle. Degenerate rectangles are ignored.
func (rm *RegionManager) Add(r Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	rm.regions = append(rm.regions, r)
}

// Clear discards all accumulated regions, keeping the backing storage.
func (rm *RegionManager) Clear() {
	rm.regions = rm.regions[:0]
}

// Count returns the number of accumulated regions.
func (rm *RegionManager) Count() int {
	return len(rm.regions)
}

// Regions returns the accumulated rectangles.
// The returned slice MUST NOT be mutated by the caller.
func (rm *RegionManager) Regions() []Rect {
	return rm.regions
}

// Optimize merges rectangles that overlap or sit within mergeDistance of each
// other into their unions, repeating until no merge applies. Fewer, larger
// regions mean fewer scissor/clear operations downstream.
func (rm *RegionManager) Optimize(mergeDistance float64) {
	if len(rm.regions) < 2 {
		return
	}
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(rm.regions); i++ {
			for j := i + 1; j < len(rm.regions); j++ {
				if !rm.regions[i].Expand(mergeDistance).Intersects(rm.regions[j]) {
					continue
				}
				rm.regions[i] = rm.regions[i].Union(rm.regions[j])
				last := len(rm.regions) - 1
				rm.regions[j] = rm.regions[last]
				rm.regions = rm.regions[:last]
				merged = true
				j--
			}
		}
	}
}

// Bounds returns a single rectangle covering every region.
// ok is false when no regions have been accumulated.
func (rm *RegionManager) Bounds() (bounds Rect, ok bool) {
	if len(rm.regions) == 0 {
		return Rect{}, false
	}
	acc := rm.regions[0]
	for _, r := range rm.regions[1:] {
		acc = acc.Union(r)
	}
	return acc, true
}

// Area returns the summed area of the accumulated regions. Regions are
// assumed disjoint after Optimize; overlapping regions count twice.
func (rm *RegionManager) Area() float64 {
	total := 0.0
	for _, r := range rm.regions {
		total += r.Area()
	}
	return total
}

// ShouldRedrawFull reports whether the accumulated regions cover at least
// threshold (a ratio in [0, 1]) of the viewport, in which case one full
// redraw is cheaper than per-region redraws.
func (rm *RegionManager) ShouldRedrawFull(viewportW, viewportH, threshold float64) bool {
	viewport := viewportW * viewportH
	if viewport <= 0 {
		return true
	}
	return rm.Area()/viewport >= threshold
}
