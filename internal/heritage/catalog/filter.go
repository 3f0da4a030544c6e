package catalog

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the comparator applied to the filtered view.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByDate      SortKey = "date"
	SortByRating    SortKey = "rating"
	SortByAttendees SortKey = "attendees"
)

// Facets are the three independent filter/sort inputs for the list view.
type Facets struct {
	// Query is matched case-insensitively as a substring of name, address,
	// or description. Empty passes everything.
	Query string
	// Category is a vocabulary value or CategoryAll.
	Category string
	// Sort defaults to SortByName when empty or unrecognized.
	Sort SortKey
}

// collator performs locale-aware string comparison for name sorting. The
// catalog content is Indonesian.
var collator = collate.New(language.Indonesian, collate.IgnoreCase)

// Apply derives the visible subset from the full snapshot in a single
// deterministic pass. The snapshot is never mutated; the result is always
// a fresh slice. Both filters are conjunctive, and empty facets yield the
// full list re-sorted.
func Apply(snapshot []Record, facets Facets) []Record {
	filtered := make([]Record, 0, len(snapshot))
	query := strings.ToLower(strings.TrimSpace(facets.Query))
	for _, rec := range snapshot {
		if !matchesQuery(rec, query) {
			continue
		}
		if !matchesCategory(rec, facets.Category) {
			continue
		}
		filtered = append(filtered, rec)
	}
	sortRecords(filtered, facets.Sort)
	return filtered
}

func matchesQuery(rec Record, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{rec.Name, rec.Address, rec.Description} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesCategory(rec Record, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	for _, t := range rec.Types {
		if t == category {
			return true
		}
	}
	return false
}

func sortRecords(records []Record, key SortKey) {
	switch key {
	case SortByDate:
		sort.SliceStable(records, func(i, j int) bool {
			return parseDate(records[i].Date).Before(parseDate(records[j].Date))
		})
	case SortByRating:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Rating > records[j].Rating
		})
	case SortByAttendees:
		sort.SliceStable(records, func(i, j int) bool {
			return attendeeCount(records[i].Attendees) > attendeeCount(records[j].Attendees)
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(records[i].Name, records[j].Name) < 0
		})
	}
}

func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// attendeeCount parses the free-form attendee field. The backend commonly
// sends "-" for unknown, which counts as zero.
func attendeeCount(value string) int {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
