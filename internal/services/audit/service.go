// Package audit records domain events. Delivery is fire-and-forget:
// Record never blocks a workflow and a full buffer drops the event
// rather than stalling a payment.
package audit

import (
	"context"
	"log"
	"sync"
	"time"

	"walletstack/internal/models"
	"walletstack/internal/repositories"
)

// Event actions emitted by the workflows.
const (
	ActionDepositInitiated = "deposit.initiated"
	ActionDepositSucceeded = "deposit.succeeded"
	ActionDepositFailed    = "deposit.failed"
	ActionTransferCreated  = "transfer.created"
	ActionWebhookReceived  = "webhook.received"
	ActionWebhookProcessed = "webhook.processed"
	ActionWalletCreated    = "wallet.created"
)

// Event is one domain event.
type Event struct {
	ActorType  string
	ActorID    uint
	Action     string
	EntityType string
	EntityID   uint
	Metadata   models.JSON
}

// Recorder accepts domain events.
type Recorder interface {
	Record(event Event)
}

// Service is a Recorder with a lifecycle.
type Service interface {
	Recorder
	Close()
}

// NoopRecorder discards events; used in tests.
type NoopRecorder struct{}

func (NoopRecorder) Record(Event) {}

const (
	defaultBufferSize = 256
	writeTimeout      = 5 * time.Second
)

type service struct {
	repo   repositories.AuditLogRepository
	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewService creates a recorder that persists events from a background
// goroutine. Call Close on shutdown to drain the buffer.
func NewService(repo repositories.AuditLogRepository) Service {
	if repo == nil {
		panic("audit log repository is required")
	}
	s := &service{
		repo:   repo,
		events: make(chan Event, defaultBufferSize),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Record queues an event. Dropped (with a log line) if the buffer is
// full.
func (s *service) Record(event Event) {
	select {
	case s.events <- event:
	default:
		log.Printf("audit buffer full, dropping event %s", event.Action)
	}
}

func (s *service) run() {
	defer s.wg.Done()
	for {
		select {
		case event := <-s.events:
			s.persist(event)
		case <-s.done:
			for {
				select {
				case event := <-s.events:
					s.persist(event)
				default:
					return
				}
			}
		}
	}
}

func (s *service) persist(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	entry := &models.AuditLog{
		ActorType:  event.ActorType,
		ActorID:    event.ActorID,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Metadata:   event.Metadata,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("failed to persist audit event %s: %v", event.Action, err)
	}
}

// Close signals shutdown and waits for buffered events to drain.
func (s *service) Close() {
	close(s.done)
	s.wg.Wait()
}
