package client

import "github.com/flightai/csbot/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Chat
	Role           = types.Role
	Message        = types.Message
	MessageContent = types.MessageContent
	ChatHistory    = types.ChatHistory

	// Trips
	Trip     = types.Trip
	Flight   = types.Flight
	FullTrip = types.FullTrip

	// Admin
	Question              = types.Question
	UpdateQuestionPayload = types.UpdateQuestionPayload
	IngestionJob          = types.IngestionJob
	SyncResponse          = types.SyncResponse
)

// Optional is a three-state JSON field: omitted, null, or a value.
type Optional[T any] = types.Optional[T]

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return types.Some(v) }

// Null returns an Optional that encodes as JSON null.
func Null[T any]() Optional[T] { return types.Null[T]() }

const (
	RoleUser      = types.RoleUser
	RoleAssistant = types.RoleAssistant

	TicketTypeBasicEconomy           = types.TicketTypeBasicEconomy
	TicketTypeEconomyFullyRefundable = types.TicketTypeEconomyFullyRefundable

	PaymentStatusPaid      = types.PaymentStatusPaid
	PaymentStatusCancelled = types.PaymentStatusCancelled
	PaymentStatusRefunded  = types.PaymentStatusRefunded

	IngestionStarting   = types.IngestionStarting
	IngestionInProgress = types.IngestionInProgress
	IngestionComplete   = types.IngestionComplete
	IngestionFailed     = types.IngestionFailed
	IngestionStopping   = types.IngestionStopping
	IngestionStopped    = types.IngestionStopped
)
