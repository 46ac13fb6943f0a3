package rabbitmq

import (
	"context"
	"fmt"

	"restaurant/internal/core/application/delivery"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/event"
)

// PrepareItemsIngester creates kitchen tickets from accepted-item events.
type PrepareItemsIngester interface {
	Handle(ctx context.Context, cmd commands.IngestPrepareItemsCommand) (commands.IngestResult, error)
}

// NewPrepareItemsHandler decodes kitchen.prepare_items messages and ingests
// them. Malformed payloads are marked permanent; every other failure is left
// to the retry policy. Duplicates are acknowledged.
func NewPrepareItemsHandler(ingester PrepareItemsIngester) delivery.Handler {
	return func(ctx context.Context, env delivery.Envelope) error {
		if env.Type != "" && env.Type != event.PrepareItemsType {
			return delivery.Permanent(fmt.Errorf("unexpected message type %q", env.Type))
		}

		e, err := event.DecodePrepareItems(env.Body)
		if err != nil {
			return delivery.Permanent(err)
		}

		cmd, err := commands.NewIngestPrepareItemsCommand(e)
		if err != nil {
			return delivery.Permanent(err)
		}

		if _, err = ingester.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("ingest event %s: %w", e.EventID, err)
		}
		return nil
	}
}
