package campaign

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/geoscape/internal/game/inventory"
)

// Transfer is a delivery of goods in transit to a base.
type Transfer struct {
	ID       string
	ItemType string
	Quantity int
	// Hours until arrival.
	Hours int
}

// NewItemTransfer returns a transfer of qty units of itemType arriving in hours.
//
// Postcondition: ID is a fresh UUID.
func NewItemTransfer(itemType string, qty, hours int) *Transfer {
	return &Transfer{
		ID:       uuid.New().String(),
		ItemType: itemType,
		Quantity: qty,
		Hours:    hours,
	}
}

// Base is a player base with capped storage and an incoming transfer queue.
type Base struct {
	ID        string
	Name      string
	Storage   *inventory.LimitedContainer
	transfers []*Transfer
	logger    *zap.Logger
}

func newBase(name string, storage *inventory.LimitedContainer, logger *zap.Logger) *Base {
	return &Base{
		ID:      uuid.New().String(),
		Name:    name,
		Storage: storage,
		logger:  logger,
	}
}

// QueueTransfer appends t to the incoming queue.
//
// Precondition: t must be non-nil.
func (b *Base) QueueTransfer(t *Transfer) {
	b.transfers = append(b.transfers, t)
	b.logger.Debug("transfer queued",
		zap.String("base", b.Name),
		zap.String("transfer", t.ID),
		zap.String("item", t.ItemType),
		zap.Int("quantity", t.Quantity),
		zap.Int("hours", t.Hours),
	)
}

// Transfers returns the incoming queue in the order it was queued.
func (b *Base) Transfers() []*Transfer {
	out := make([]*Transfer, len(b.transfers))
	copy(out, b.transfers)
	return out
}

// AdvanceTransfers moves every queued transfer hours closer to arrival and
// delivers those that arrive into storage, where stock limits apply.
//
// Postcondition: returns the delivered transfers; they are no longer queued.
func (b *Base) AdvanceTransfers(hours int) []*Transfer {
	var delivered []*Transfer
	pending := b.transfers[:0]
	for _, t := range b.transfers {
		t.Hours -= hours
		if t.Hours > 0 {
			pending = append(pending, t)
			continue
		}
		b.Storage.AddItem(t.ItemType, t.Quantity)
		delivered = append(delivered, t)
		b.logger.Debug("transfer delivered",
			zap.String("base", b.Name),
			zap.String("transfer", t.ID),
			zap.String("item", t.ItemType),
			zap.Int("quantity", t.Quantity),
		)
	}
	for i := len(pending); i < len(b.transfers); i++ {
		b.transfers[i] = nil
	}
	b.transfers = pending
	return delivered
}
