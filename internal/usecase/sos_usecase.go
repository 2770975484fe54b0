package usecase

import "context"

// Contact is one recipient of an SOS broadcast.
type Contact struct {
	Name   string
	Number string
}

// BroadcastInput defines the data required to relay an SOS message.
type BroadcastInput struct {
	Contacts []Contact
	Message  string
}

// Delivery records one accepted SMS hand-off.
type Delivery struct {
	To  string
	SID string
}

// BroadcastOutput reports how many messages the provider accepted.
type BroadcastOutput struct {
	Sent       int
	Deliveries []Delivery
}

// SOSUsecase defines the interface for the emergency broadcast operation.
type SOSUsecase interface {
	Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastOutput, error)
}
