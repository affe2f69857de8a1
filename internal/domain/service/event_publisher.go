package service

import (
	"context"
	"time"
)

// AuthEventType names a lifecycle step of an identity's credentials.
type AuthEventType string

const (
	AuthEventRegistered   AuthEventType = "identity.registered"
	AuthEventTokenIssued  AuthEventType = "identity.token_issued"
	AuthEventTokenRevoked AuthEventType = "identity.token_revoked"
)

// AuthEvent is published after a successful auth state change. It never carries
// token strings or password material.
type AuthEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       AuthEventType `json:"type"`
	IdentityID string        `json:"identity_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an auth event for asynchronous consumers
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
