package admin

// Page describes one client-side page over the search-filtered subset.
type Page struct {
	Number     int
	Size       int
	TotalPages int
	TotalItems int
	Items      []Event
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate slices items into the requested page. The page number is
// clamped to [1, totalPages]; an empty list still yields page 1 of 1.
func Paginate(items []Event, number, size int) Page {
	if size <= 0 {
		size = 1
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalPages: totalPages,
		TotalItems: len(items),
		Items:      items[start:end],
	}
}
