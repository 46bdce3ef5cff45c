package messaging

import (
	"context"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// Publisher delivers ledger events to one downstream sink
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Name identifies the sink in logs and metrics
	Name() string
	// PublishEvent publishes a ledger event to the sink
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close releases the sink's resources
	Close()
}
