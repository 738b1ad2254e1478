package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flightai/csbot/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// TripHandler exposes the trip tools.
type TripHandler struct {
	client *client.Client
}

func NewTripHandler(c *client.Client) *TripHandler { return &TripHandler{client: c} }

func (th *TripHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_trips",
		mcp.WithDescription("List the customer's trips (returns trip_id & name)"),
	)
	get := mcp.NewTool("get_trip",
		mcp.WithDescription("Get a trip's name and flights, including prices, ticket types and payment status"),
		mcp.WithString("trip_id", mcp.Required(), mcp.Description("Trip ID as returned by list_trips")),
	)
	rename := mcp.NewTool("rename_trip",
		mcp.WithDescription("Change a trip's display name"),
		mcp.WithString("trip_id", mcp.Required(), mcp.Description("Trip ID as returned by list_trips")),
		mcp.WithString("name", mcp.Required(), mcp.Description("New trip name")),
	)
	s.AddTool(list, th.handleListTrips)
	s.AddTool(get, th.handleGetTrip)
	s.AddTool(rename, th.handleRenameTrip)
	return nil
}

func (th *TripHandler) handleListTrips(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("list_trips invoked")

	start := time.Now()
	trips, err := th.client.LoadTrips(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_trips failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	// a nil slice would encode as null
	if trips == nil {
		trips = []client.Trip{}
	}
	return jsonResult(trips)
}

func (th *TripHandler) handleGetTrip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tripID, err := req.RequireString("trip_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Str("trip_id", tripID).Msg("get_trip invoked")

	start := time.Now()
	trip, err := th.client.LoadTripDetails(ctx, tripID)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("trip_id", tripID).Dur("elapsed", elapsed).Msg("get_trip failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(trip)
}

func (th *TripHandler) handleRenameTrip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tripID, err := req.RequireString("trip_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Str("trip_id", tripID).Str("name", name).Msg("rename_trip invoked")

	start := time.Now()
	err = th.client.RenameTrip(ctx, tripID, name)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("trip_id", tripID).Dur("elapsed", elapsed).Msg("rename_trip failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Trip %s renamed to %q", tripID, name)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
