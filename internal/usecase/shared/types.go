package shared

import (
	"context"
	"time"
)

// FraudDecision is the anti-fraud verdict for one user and promocode.
type FraudDecision struct {
	OK         bool
	CacheUntil *time.Time
}

// FraudValidator never returns an error; unreachable services yield OK=false.
type FraudValidator interface {
	Validate(ctx context.Context, userEmail, promoID string) FraudDecision
}

type ActivationObserver interface {
	ObserveActivation(outcome string)
}
