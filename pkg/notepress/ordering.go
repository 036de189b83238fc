package notepress

import "sort"

// DefaultNewsCountOnHomePage is the page size for the news home listing.
const DefaultNewsCountOnHomePage = 10

// OrderingPolicy is the deterministic sort contract for listing endpoints.
type OrderingPolicy struct {
	// HomePageCount caps the news home listing. Zero or negative falls
	// back to DefaultNewsCountOnHomePage.
	HomePageCount int
}

// TopNews returns at most HomePageCount items in strictly descending
// publication-date order. The input is not modified; ties keep their
// incoming relative order so repeated calls over unchanged data are stable.
func (p OrderingPolicy) TopNews(items []*NewsItem) []*NewsItem {
	sorted := append([]*NewsItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	n := p.HomePageCount
	if n <= 0 {
		n = DefaultNewsCountOnHomePage
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortComments orders a comment thread ascending by creation time. Equal
// timestamps (second-granularity storage produces them routinely) fall back
// to insertion order via Seq.
func SortComments(comments []*Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		ci, cj := comments[i], comments[j]
		if ci.Created.Equal(cj.Created) {
			return ci.Seq < cj.Seq
		}
		return ci.Created.Before(cj.Created)
	})
}
