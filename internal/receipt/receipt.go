// Package receipt defines the receipt OCR collaborator. The core never
// interprets images itself; extraction is a capability behind an
// interface so a real OCR backend can be substituted without touching
// callers.
package receipt

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// Extraction is a best-effort read of a receipt image. Fields the
// extractor could not determine are left unset.
type Extraction struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Date   *time.Time       `json:"date,omitempty"`
	Vendor string           `json:"vendor,omitempty"`
}

type Extractor interface {
	Extract(ctx context.Context, imageRef string) (Extraction, error)
}

// Stub fakes OCR for development: after a fixed latency it yields a
// random amount between 10 and 110, the current time and a constant
// vendor. Only this stub is allowed to fabricate data.
type Stub struct {
	Delay time.Duration
}

const stubVendor = "Sample Store"

func (s Stub) Extract(ctx context.Context, _ string) (Extraction, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return Extraction{}, ctx.Err()
		}
	}

	amount := decimal.NewFromInt(int64(rand.IntN(100) + 10))
	now := time.Now()

	return Extraction{
		Amount: &amount,
		Date:   &now,
		Vendor: stubVendor,
	}, nil
}
