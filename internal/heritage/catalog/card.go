package catalog

import "strings"

// fallbackCategory labels cards whose record carries no type at all.
const fallbackCategory = "Event"

// DefaultImageTable is the fixed fallback image set for records without an
// explicit image. Order matters: SelectImage indexes into it.
var DefaultImageTable = []string{
	"https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
	"https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=800",
	"https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=800",
	"https://images.unsplash.com/photo-1531243269054-5ebf6f34081e?w=800",
	"https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800",
}

// Card is the display descriptor for one record tile on the list page.
type Card struct {
	ID          string
	Name        string
	Category    string
	TagLine     string
	Description string
	Address     string
	Image       string
	Rating      float64
	DetailPath  string
}

// SelectImage deterministically picks one image from the table by summing
// the character codes of id modulo the table size, so the same record
// always renders the same fallback image across sessions.
func SelectImage(id string, table []string) string {
	if len(table) == 0 {
		return ""
	}
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	return table[sum%len(table)]
}

// BuildCard derives the display values for one record. It is a pure
// function with no side effects.
func BuildCard(rec Record, imageTable []string) Card {
	category := fallbackCategory
	if len(rec.Types) > 0 {
		category = DisplayCategory(rec.Types[0])
	}

	image := rec.Image
	if image == "" {
		image = SelectImage(rec.ID, imageTable)
	}

	description := rec.Description
	if description == "" {
		description = "No description available."
	}

	return Card{
		ID:          rec.ID,
		Name:        rec.Name,
		Category:    category,
		TagLine:     tagLine(rec.Types),
		Description: description,
		Address:     rec.Address,
		Image:       image,
		Rating:      rec.Rating,
		DetailPath:  "/event/" + rec.ID,
	}
}

// tagLine joins the deduplicated display labels of all types.
func tagLine(types []string) string {
	seen := make(map[string]struct{}, len(types))
	labels := make([]string, 0, len(types))
	for _, t := range types {
		label := DisplayCategory(t)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}
