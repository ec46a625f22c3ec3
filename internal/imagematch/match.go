// Package imagematch associates detected image regions with extracted items
// by spatial distance between OCR word boxes and region centers.
package imagematch

import (
	"math"
	"strings"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// DefaultRadius is the maximum centroid-to-center distance, in source pixels,
// at which a region is still considered to belong to an item.
const DefaultRadius = 300

// Match assigns each item the image of the region whose center is nearest to
// the centroid of the item's matching word boxes, when that distance is under
// radius. Items without matching boxes, and runs without word boxes at all,
// are left untouched.
func Match(items []entity.Item, regions []entity.ImageRegion, words []entity.WordBox, radius float64) {
	if len(regions) == 0 || len(words) == 0 {
		return
	}
	if radius <= 0 {
		radius = DefaultRadius
	}
	for i := range items {
		cx, cy, ok := centroid(items[i].Name, words)
		if !ok {
			continue
		}
		best := -1
		bestDist := math.Inf(1)
		for j, r := range regions {
			d := math.Hypot(r.CenterX()-cx, r.CenterY()-cy)
			if d < bestDist {
				best = j
				bestDist = d
			}
		}
		if best >= 0 && bestDist < radius {
			items[i].Image = regions[best].ImageData
		}
	}
}

// centroid averages the positions of word boxes whose text participates in
// the item name as a case-insensitive substring.
func centroid(name string, words []entity.WordBox) (float64, float64, bool) {
	lower := strings.ToLower(name)
	var sumX, sumY float64
	var n int
	for _, w := range words {
		text := strings.ToLower(strings.TrimSpace(w.Text))
		if text == "" {
			continue
		}
		if !strings.Contains(lower, text) {
			continue
		}
		sumX += w.X0
		sumY += w.Y0
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return sumX / float64(n), sumY / float64(n), true
}
