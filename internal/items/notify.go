package items

import (
	"context"
	"log/slog"
)

type Notifier interface {
	ItemCreated(ctx context.Context, item Item) error
}

// LogNotifier announces new items on a logger.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ItemCreated(ctx context.Context, item Item) error {
	n.log.InfoContext(ctx, "item created",
		slog.String("id", item.ID.String()),
		slog.String("name", item.Name),
		slog.Int("quantity", item.Quantity))
	return nil
}
