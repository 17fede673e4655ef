// File: internal/service/pagination.go
package service

// PageWindow derives the page boundaries for a catalog request. It is
// computed per request and never persisted.
type PageWindow struct {
	Page      int
	PerPage   int
	TotalRows int
}

// TotalPages is ceil(TotalRows / PerPage). Zero rows means zero pages, so an
// empty catalog rejects every page number.
func (w PageWindow) TotalPages() int {
	if w.PerPage <= 0 {
		return 0
	}
	return (w.TotalRows + w.PerPage - 1) / w.PerPage
}

// Contains reports whether the requested page falls inside the catalog.
func (w PageWindow) Contains() bool {
	return w.Page >= 1 && w.Page <= w.TotalPages()
}

// Offset is the row offset of the requested page.
func (w PageWindow) Offset() int {
	return (w.Page - 1) * w.PerPage
}
