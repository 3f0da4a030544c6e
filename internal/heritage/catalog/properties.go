package catalog

import (
	"sort"
	"strings"
)

// suppressedKeys are metadata keys already rendered as primary fields on
// the detail page; matching is against the shortened key, case-insensitive.
var suppressedKeys = map[string]struct{}{
	"comment": {},
	"address": {},
	"type":    {},
	"label":   {},
}

// PropertyRow is one rendered metadata entry on the detail page.
type PropertyRow struct {
	Key   string
	Value string
}

// ShortenKey reduces a URI-like metadata key to the fragment after the
// last path separator, then after the last fragment separator.
func ShortenKey(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		key = key[idx+1:]
	}
	if idx := strings.LastIndex(key, "#"); idx >= 0 {
		key = key[idx+1:]
	}
	return key
}

// PropertyRows flattens the raw metadata map for display. Keys are
// shortened, suppressed keys dropped, and each value sequence shortened
// per-element and joined with a comma. Rows are ordered by shortened key
// so rendering is deterministic across requests.
func PropertyRows(properties map[string][]string) []PropertyRow {
	rows := make([]PropertyRow, 0, len(properties))
	for key, values := range properties {
		short := ShortenKey(key)
		if _, ok := suppressedKeys[strings.ToLower(short)]; ok {
			continue
		}
		shortened := make([]string, 0, len(values))
		for _, v := range values {
			shortened = append(shortened, ShortenKey(v))
		}
		rows = append(rows, PropertyRow{Key: short, Value: strings.Join(shortened, ", ")})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}
