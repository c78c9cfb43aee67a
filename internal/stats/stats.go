// Package stats computes aggregate views over rating and comment
// snapshots. Every function is pure: aggregates are recomputed from the
// authoritative state on demand, never cached or incrementally patched.
package stats

import (
	"math"
	"sort"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

// Distribution returns how many images hold each rating value. Every value
// from 1 to 5 is present in the result, zero-count values included.
func Distribution(ratings map[string]int) map[int]int {
	dist := make(map[int]int, domain.RatingMax)
	for v := domain.RatingMin; v <= domain.RatingMax; v++ {
		dist[v] = 0
	}
	for _, v := range ratings {
		if v >= domain.RatingMin && v <= domain.RatingMax {
			dist[v]++
		}
	}
	return dist
}

// ChartData returns one point per rating value with its share of all
// ratings as a rounded percentage. With no ratings every percentage is 0.
func ChartData(ratings map[string]int) []domain.ChartPoint {
	dist := Distribution(ratings)
	total := len(ratings)

	points := make([]domain.ChartPoint, 0, domain.RatingMax)
	for v := domain.RatingMin; v <= domain.RatingMax; v++ {
		count := dist[v]
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(count) / float64(total) * 100))
		}
		points = append(points, domain.ChartPoint{
			Value:      v,
			Count:      count,
			Percentage: pct,
		})
	}
	return points
}

// Average returns the mean rating rounded to one decimal place, or 0 when
// nothing has been rated.
func Average(ratings map[string]int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, v := range ratings {
		sum += v
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

// TopRated returns the n highest-rated catalog items with their ratings,
// sorted by rating descending. Ties keep catalog order. Unrated items are
// excluded.
func TopRated(items []domain.CatalogItem, ratings map[string]int, n int) []domain.RatedItem {
	rated := make([]domain.RatedItem, 0, len(ratings))
	for _, item := range items {
		if v, ok := ratings[item.ID]; ok {
			rated = append(rated, domain.RatedItem{CatalogItem: item, Rating: v})
		}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})

	if n >= 0 && len(rated) > n {
		rated = rated[:n]
	}
	return rated
}

// highRatingThreshold is the rating from which an image counts as a hit
// for its style.
const highRatingThreshold = 4

// StyleBreakdown aggregates ratings per style: how many of a style's
// images were rated at all and how many landed a high rating. Styles with
// no rated images are omitted. Sorted by high ratings descending, ties
// keep hotness order.
func StyleBreakdown(items []domain.CatalogItem, ratings map[string]int) []domain.StyleBreakdown {
	type bucket struct {
		hotness    int
		style      domain.Style
		totalRated int
		highRated  int
	}
	buckets := make(map[int]*bucket)

	for _, item := range items {
		v, ok := ratings[item.ID]
		if !ok {
			continue
		}
		b := buckets[item.Hotness]
		if b == nil {
			b = &bucket{hotness: item.Hotness, style: item.Style}
			buckets[item.Hotness] = b
		}
		b.totalRated++
		if v >= highRatingThreshold {
			b.highRated++
		}
	}

	out := make([]domain.StyleBreakdown, 0, len(buckets))
	for h := domain.RatingMin; h <= domain.RatingMax; h++ {
		if b, ok := buckets[h]; ok {
			out = append(out, domain.StyleBreakdown{
				Style:       b.style,
				Hotness:     b.hotness,
				HighRatings: b.highRated,
				TotalRated:  b.totalRated,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HighRatings > out[j].HighRatings
	})
	return out
}

// Overview summarizes the whole session state.
func Overview(items []domain.CatalogItem, ratings map[string]int, comments []domain.Comment) domain.Overview {
	outfitLinks := 0
	for _, c := range comments {
		if c.OutfitLink != "" {
			outfitLinks++
		}
	}

	return domain.Overview{
		TotalRatings:  len(ratings),
		AverageRating: Average(ratings),
		TotalComments: len(comments),
		OutfitLinks:   outfitLinks,
		TotalImages:   len(items),
	}
}
