package services

import (
	"fmt"
	"math"
	"trip-route-service/internal/domain"
)

const (
	// DefaultMaxDestinations bounds the subset DP when no limit is configured.
	DefaultMaxDestinations = 15

	// HardMaxDestinations is the ceiling no configuration can raise:
	// 20 destinations already need n·2ⁿ ≈ 21M table cells.
	HardMaxDestinations = 20
)

// SolvePath finds the shortest open path that starts at originName and
// visits every destination exactly once, using the Held–Karp dynamic
// program over subsets of destinations.
//
// dp[S][v] is the minimum cost of a path from the origin that visits exactly
// the destination set S (a bitmask over destination indices) and ends at v.
// Masks, then predecessors u, then successors v are scanned in ascending
// order and only a strictly smaller candidate replaces a stored one, so the
// first minimum found wins and the result is deterministic for a fixed
// destination order.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// The exponential table is a hard ceiling: n is checked against
// maxDestinations (DefaultMaxDestinations when <= 0, never above
// HardMaxDestinations) before anything is allocated.
//
// With exactly one destination the reported distance is the round trip
// origin -> destination -> origin although the path itself is one-way.
func SolvePath(
	originName string,
	destinationNames []string,
	distances DistanceLookup,
	maxDestinations int,
) (domain.Path, error) {
	n := len(destinationNames)
	if n == 0 {
		return domain.Path{Stops: []string{}, TotalDistanceKm: 0}, nil
	}

	limit := maxDestinations
	if limit <= 0 {
		limit = DefaultMaxDestinations
	}
	if limit > HardMaxDestinations {
		limit = HardMaxDestinations
	}
	if n > limit {
		return domain.Path{}, fmt.Errorf("solve path: %w: %d destinations, limit is %d", domain.ErrTooManyDestinations, n, limit)
	}

	seen := make(map[string]struct{}, n+1)
	seen[originName] = struct{}{}
	for _, name := range destinationNames {
		if _, dup := seen[name]; dup {
			return domain.Path{}, fmt.Errorf("solve path: %w: %q", domain.ErrDuplicateLocation, name)
		}
		seen[name] = struct{}{}
	}

	if n == 1 {
		dest := destinationNames[0]
		there, err := distances.Distance(originName, dest)
		if err != nil {
			return domain.Path{}, fmt.Errorf("solve path: %w", err)
		}
		back, err := distances.Distance(dest, originName)
		if err != nil {
			return domain.Path{}, fmt.Errorf("solve path: %w", err)
		}
		return domain.Path{Stops: []string{originName, dest}, TotalDistanceKm: there + back}, nil
	}

	// Copy the distances once; the DP below reads them O(n²·2ⁿ) times.
	fromOrigin := make([]float64, n)
	between := make([]float64, n*n)
	for v := 0; v < n; v++ {
		d, err := distances.Distance(originName, destinationNames[v])
		if err != nil {
			return domain.Path{}, fmt.Errorf("solve path: %w", err)
		}
		fromOrigin[v] = d

		for u := v + 1; u < n; u++ {
			d, err := distances.Distance(destinationNames[u], destinationNames[v])
			if err != nil {
				return domain.Path{}, fmt.Errorf("solve path: %w", err)
			}
			between[u*n+v] = d
			between[v*n+u] = d
		}
	}

	size := 1 << n
	full := size - 1

	// Flat arenas indexed by mask*n + v.
	dp := make([]float64, size*n)
	parent := make([]int8, size*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}

	for v := 0; v < n; v++ {
		dp[(1<<v)*n+v] = fromOrigin[v]
	}

	for mask := 1; mask < size; mask++ {
		for u := 0; u < n; u++ {
			if mask&(1<<u) == 0 {
				continue
			}
			cur := dp[mask*n+u]
			for v := 0; v < n; v++ {
				if mask&(1<<v) != 0 {
					continue
				}
				next := (mask|(1<<v))*n + v
				cand := cur + between[u*n+v]
				// A state reachable only through +Inf edges still records the
				// first predecessor so the path stays reconstructible.
				if cand < dp[next] || parent[next] < 0 {
					dp[next] = cand
					parent[next] = int8(u)
				}
			}
		}
	}

	last := -1
	best := math.Inf(1)
	for v := 0; v < n; v++ {
		if c := dp[full*n+v]; last < 0 || c < best {
			best = c
			last = v
		}
	}

	order := make([]int, 0, n)
	mask := full
	for v := last; v >= 0; {
		order = append(order, v)
		p := int(parent[mask*n+v])
		mask ^= 1 << v
		v = p
	}

	stops := make([]string, 0, n+1)
	stops = append(stops, originName)
	for i := len(order) - 1; i >= 0; i-- {
		stops = append(stops, destinationNames[order[i]])
	}

	return domain.Path{Stops: stops, TotalDistanceKm: best}, nil
}
