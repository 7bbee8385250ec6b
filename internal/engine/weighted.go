package engine

// WeightedIndex picks an index from weights with probability proportional to
// each weight, using a single uniform draw against the cumulative
// distribution. Non-positive weights are treated as zero. Returns -1 when the
// total weight is not positive.
func WeightedIndex(src Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := src.Float() * total
	cumulative := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}

	// Guard against roll landing exactly on the total due to float rounding.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
