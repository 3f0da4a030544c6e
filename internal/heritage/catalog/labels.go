package catalog

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// Categories lists the closed type vocabulary in the order the public UI
// presents it, with the "All" sentinel first.
var Categories = []string{CategoryAll, "Event", "HistoricBuilding", "Museum", "LandmarksOrHistoricalBuildings"}

// displayLabels is the fixed vocabulary-to-label table shared by the list,
// detail, and admin views. Matching is case-sensitive.
var displayLabels = map[string]string{
	"HistoricBuilding":               "Cagar Budaya",
	"LandmarksOrHistoricalBuildings": "Sejarah",
	"Event":                          "Event",
	"Museum":                         "Museum",
	CategoryAll:                      CategoryAll,
}

// DisplayCategory translates a vocabulary value into its display label.
// Unrecognized values pass through verbatim.
func DisplayCategory(category string) string {
	if label, ok := displayLabels[category]; ok {
		return label
	}
	return category
}

// CategoryFromDisplay is the reverse translation. Unrecognized labels pass
// through verbatim, mirroring DisplayCategory.
func CategoryFromDisplay(label string) string {
	for category, display := range displayLabels {
		if display == label {
			return category
		}
	}
	return label
}
