package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
)

func TestDisplayCategory(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Cagar Budaya", catalog.DisplayCategory("HistoricBuilding"))
	require.Equal(t, "Sejarah", catalog.DisplayCategory("LandmarksOrHistoricalBuildings"))
	require.Equal(t, "Event", catalog.DisplayCategory("Event"))
	require.Equal(t, "Museum", catalog.DisplayCategory("Museum"))
	require.Equal(t, "All", catalog.DisplayCategory(catalog.CategoryAll))

	// Unknown values pass through untouched.
	require.Equal(t, "Monument", catalog.DisplayCategory("Monument"))
}

func TestCategoryFromDisplayRoundTrips(t *testing.T) {
	t.Parallel()

	for _, category := range catalog.Categories {
		require.Equal(t, category, catalog.CategoryFromDisplay(catalog.DisplayCategory(category)))
	}

	require.Equal(t, "HistoricBuilding", catalog.CategoryFromDisplay("Cagar Budaya"))
	require.Equal(t, "Unknown Label", catalog.CategoryFromDisplay("Unknown Label"))
}
