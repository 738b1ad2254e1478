package api

import (
	"context"
	"net/http"

	"github.com/flightai/csbot/client/internal/types"
)

// LoadTrips returns the caller's trips in server order.
func LoadTrips(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, endpoint(baseURL, "/api/trips"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := send(httpClient, httpReq, OpLoadTrips, "Failed to fetch trips")
	if err != nil {
		return nil, err
	}

	var trips []types.Trip
	if err := decodeBody(resp, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// LoadTripDetails fetches a trip's name and flights. tripID is opaque.
func LoadTripDetails(ctx context.Context, httpClient HTTPClient, baseURL, tripID string) (*types.FullTrip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, endpoint(baseURL, "/api/trip", tripID), nil)
	if err != nil {
		return nil, err
	}
	resp, err := send(httpClient, httpReq, OpLoadTripDetails, "Failed to fetch trip details")
	if err != nil {
		return nil, err
	}

	var trip types.FullTrip
	if err := decodeBody(resp, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// RenameTrip sets a new display name. Any success body is ignored.
func RenameTrip(ctx context.Context, httpClient HTTPClient, baseURL, tripID, newName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := endpoint(baseURL, "/api/trips", tripID) + "/rename"
	httpReq, err := newJSONRequest(ctx, http.MethodPost, url, types.RenameTripRequest{Name: newName})
	if err != nil {
		return err
	}
	resp, err := send(httpClient, httpReq, OpRenameTrip, "Failed to rename trip")
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}
