package domain

// ============================================================
// Place search / vendor discovery
// ============================================================

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// PlaceSearchRequest is the query sent to the place-search capability of the
// advisory gateway: a free-text category plus the caller's coordinates.
type PlaceSearchRequest struct {
	Query     string  `json:"query"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// PlaceCandidate is one raw candidate as returned by the gateway. Rating is
// not guaranteed by the service.
type PlaceCandidate struct {
	Title   string `json:"title"`
	PlaceID string `json:"placeId"`
	URI     string `json:"uri"`
	Rating  string `json:"rating,omitempty"`
}

// PlaceSearchResponse wraps the candidate list.
type PlaceSearchResponse struct {
	Candidates []PlaceCandidate `json:"candidates"`
}

// VendorCandidate is a normalized nearby vendor (showroom, jeweller).
// SourceURI is the dedup key.
type VendorCandidate struct {
	Name      string `json:"name"`
	PlaceID   string `json:"placeId"`
	Rating    string `json:"rating"`
	SourceURI string `json:"sourceUri,omitempty"`
}
