package types

// ------------------------------
// Request Types
// ------------------------------

// RenameTripRequest is the body of POST /api/trips/{tripId}/rename.
type RenameTripRequest struct {
	Name string `json:"name"`
}
