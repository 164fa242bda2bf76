package articles

import "slices"

// SortByRecency orders articles by publish date, newest first. Articles
// with equal dates keep their relative order.
func SortByRecency(articles []Metadata) {
	slices.SortStableFunc(articles, func(a, b Metadata) int {
		return b.PublishDate.Compare(a.PublishDate)
	})
}
