// Package feed owns the working article set and the view state derived from
// it: the active category filter and the pagination cursor.
package feed

import (
	"github.com/dmifsud/cyberwatch/internal/article"
)

// PageSize is how many articles each page step reveals.
const PageSize = 9

// CategoryAll is the synthetic filter value matching every article.
const CategoryAll = "all"

// CategoryOption is a selectable filter annotated with its member count.
type CategoryOption struct {
	Name  string
	Count int
}

// State is the feed view state.
//
// Invariants: filtered is always the subsequence of all matching the active
// category (order preserved), and the rendered set is filtered[0:visibleCount].
// State is not safe for concurrent use; in practice it is only touched from
// the UI event loop.
type State struct {
	all            []article.Article
	filtered       []article.Article
	activeCategory string
	visibleCount   int
	loaded         bool
}

// New returns an empty, not-yet-loaded feed showing all categories.
func New() *State {
	return &State{
		activeCategory: CategoryAll,
		visibleCount:   PageSize,
	}
}

// Replace swaps in a freshly loaded article set wholesale, re-applying the
// active category filter and resetting pagination.
func (s *State) Replace(articles []article.Article) {
	s.all = articles
	s.loaded = true
	s.applyFilter()
	s.visibleCount = PageSize
}

// SetFilter changes the active category and resets the page cursor.
// Setting the current category again still resets pagination.
func (s *State) SetFilter(category string) {
	s.activeCategory = category
	s.applyFilter()
	s.visibleCount = PageSize
}

func (s *State) applyFilter() {
	if s.activeCategory == CategoryAll {
		s.filtered = s.all
		return
	}
	filtered := make([]article.Article, 0, len(s.all))
	for _, a := range s.all {
		if a.Category == s.activeCategory {
			filtered = append(filtered, a)
		}
	}
	s.filtered = filtered
}

// LoadMore advances the page cursor. The count is not clamped; Visible
// truncates naturally.
func (s *State) LoadMore() {
	s.visibleCount += PageSize
}

// Visible returns the rendered subset: filtered[0:visibleCount].
// An empty result is a valid state, distinct from "not yet loaded"
// (see Loaded).
func (s *State) Visible() []article.Article {
	if s.visibleCount >= len(s.filtered) {
		return s.filtered
	}
	return s.filtered[:s.visibleCount]
}

// HasMore reports whether articles beyond the current page remain, i.e.
// whether the load-more affordance should be shown.
func (s *State) HasMore() bool {
	return s.visibleCount < len(s.filtered)
}

// Loaded reports whether an article set has been installed at all.
func (s *State) Loaded() bool {
	return s.loaded
}

// ActiveCategory returns the current filter value.
func (s *State) ActiveCategory() string {
	return s.activeCategory
}

// All returns the full working set in canonical order.
func (s *State) All() []article.Article {
	return s.all
}

// FilteredCount returns how many articles match the active filter.
func (s *State) FilteredCount() int {
	return len(s.filtered)
}

// Categories returns the filter options: a synthetic "all" entry counting
// the whole set, then each distinct category in order of first appearance
// with its member count.
func (s *State) Categories() []CategoryOption {
	options := []CategoryOption{{Name: CategoryAll, Count: len(s.all)}}

	index := make(map[string]int)
	for _, a := range s.all {
		if i, ok := index[a.Category]; ok {
			options[i].Count++
			continue
		}
		options = append(options, CategoryOption{Name: a.Category, Count: 1})
		index[a.Category] = len(options) - 1
	}

	return options
}
