package catalog

// Record is one heritage resource (event, museum, or historic building)
// as returned by the public listing endpoint. The backend is the sole
// source of truth; records are never persisted locally.
type Record struct {
	ID          string   `json:"id"`
	URI         string   `json:"uri,omitempty"`
	Name        string   `json:"name"`
	Types       []string `json:"types"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`

	// Presentation-only fields, defaulted by the client when the backend
	// payload omits them. They carry no invariant.
	Date      string `json:"date,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Image     string `json:"image,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	Price     string `json:"price,omitempty"`
	Source    string `json:"source,omitempty"`
	Attendees string `json:"attendees,omitempty"`
}

// Detail is the full property set for a single record, including the raw
// metadata map keyed by predicate URI.
type Detail struct {
	ID          string              `json:"id"`
	URI         string              `json:"uri,omitempty"`
	Name        string              `json:"name"`
	Types       []string            `json:"types,omitempty"`
	Description string              `json:"description,omitempty"`
	Address     string              `json:"address,omitempty"`
	Properties  map[string][]string `json:"properties,omitempty"`
}
