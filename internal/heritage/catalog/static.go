package catalog

import (
	"context"
)

// StaticService serves a fixed snapshot for local development and tests
// when no backend is configured.
type StaticService struct {
	Records []Record
	Details map[string]*Detail
}

// NewStaticService constructs a StaticService with a small Jakarta sample.
func NewStaticService() *StaticService {
	records := []Record{
		{
			ID:          "Museum_Fatahillah",
			Name:        "Museum Fatahillah",
			Types:       []string{"Museum", "HistoricBuilding"},
			Description: "Museum sejarah Jakarta di kawasan Kota Tua.",
			Address:     "Jl. Taman Fatahillah No.1, Jakarta Barat",
		},
		{
			ID:          "Monumen_Nasional",
			Name:        "Monumen Nasional",
			Types:       []string{"LandmarksOrHistoricalBuildings"},
			Description: "Monumen peringatan kemerdekaan Indonesia.",
			Address:     "Gambir, Jakarta Pusat",
		},
		{
			ID:    "Festival_Kota_Tua",
			Name:  "Festival Kota Tua",
			Types: []string{"Event"},
		},
	}
	for i := range records {
		normalizeRecord(&records[i])
	}

	details := make(map[string]*Detail, len(records))
	for _, rec := range records {
		details[rec.ID] = &Detail{
			ID:          rec.ID,
			URI:         "http://heritage.jakarta.go.id/resource/" + rec.ID,
			Name:        rec.Name,
			Types:       rec.Types,
			Description: rec.Description,
			Address:     rec.Address,
			Properties: map[string][]string{
				"http://www.w3.org/1999/02/22-rdf-syntax-ns#type": rec.Types,
				"http://www.w3.org/2000/01/rdf-schema#comment":    {rec.Description},
			},
		}
	}
	return &StaticService{Records: records, Details: details}
}

// List returns the configured snapshot.
func (s *StaticService) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

// Detail returns the configured detail payload or ErrNotFound.
func (s *StaticService) Detail(ctx context.Context, id string) (*Detail, error) {
	if d, ok := s.Details[id]; ok {
		return d, nil
	}
	return nil, ErrNotFound
}
