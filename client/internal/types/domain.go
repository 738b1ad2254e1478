package types

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// ------------------------------
// Chat
// ------------------------------

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// UnmarshalJSON rejects roles outside the closed user/assistant set so a
// malformed history fails at decode time instead of leaking through.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !Role(s).Valid() {
		return &json.UnmarshalTypeError{
			Value: "string " + strconv.Quote(s),
			Type:  reflect.TypeOf(Role("")),
		}
	}
	*r = Role(s)
	return nil
}

// MessageContent is one text block of a message.
type MessageContent struct {
	Text string `json:"text"`
}

// Message represents a single chat turn.
type Message struct {
	Role    Role             `json:"role"`
	Content []MessageContent `json:"content"`
}

// Text concatenates the message's content blocks in order.
func (m Message) Text() string {
	parts := make([]string, len(m.Content))
	for i, c := range m.Content {
		parts[i] = c.Text
	}
	return strings.Join(parts, "")
}

// ChatHistory wraps the /api/chat response.
type ChatHistory struct {
	Messages []Message `json:"messages"`
}

// ------------------------------
// Trips
// ------------------------------

// Trip is the listing shape of a trip.
type Trip struct {
	TripID string `json:"trip_id"`
	Name   string `json:"name"`
}

// Flight is a single booking within a trip. All fields travel as strings.
type Flight struct {
	TripID        string `json:"trip_id"`
	FromAirport   string `json:"from_airport"`
	ToAirport     string `json:"to_airport"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Price         string `json:"price"`
	TicketType    string `json:"ticket_type"`
	PaymentStatus string `json:"payment_status"`
	FlightID      string `json:"flight_id"`
}

// FullTrip is a trip's display name plus its ordered flights.
type FullTrip struct {
	Name    string   `json:"name"`
	Flights []Flight `json:"flights"`
}

// Ticket types issued by the booking backend.
const (
	TicketTypeBasicEconomy           = "Basic Economy"
	TicketTypeEconomyFullyRefundable = "Economy fully refundable"
)

// Payment states of a flight booking.
const (
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"
)
