package history

// PageRef is one element of a rendered pagination strip: either a concrete
// page number or an ellipsis placeholder.
type PageRef struct {
	Page     int
	Ellipsis bool
	Current  bool
}

// PaginationItems renders the windowed pagination strip for a history page:
// a sliding window of two pages around the current one, with page 1 and the
// last page always shown and ellipses covering the gaps.
func PaginationItems(currentPage, lastPage int) []PageRef {
	if lastPage < 1 {
		lastPage = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > lastPage {
		currentPage = lastPage
	}

	startPage := currentPage - 2
	if startPage < 1 {
		startPage = 1
	}
	endPage := currentPage + 2
	if endPage > lastPage {
		endPage = lastPage
	}

	var items []PageRef
	if startPage > 1 {
		items = append(items, PageRef{Page: 1})
		if startPage > 2 {
			items = append(items, PageRef{Ellipsis: true})
		}
	}
	for page := startPage; page <= endPage; page++ {
		items = append(items, PageRef{Page: page, Current: page == currentPage})
	}
	if endPage < lastPage {
		if endPage < lastPage-1 {
			items = append(items, PageRef{Ellipsis: true})
		}
		items = append(items, PageRef{Page: lastPage})
	}
	return items
}
