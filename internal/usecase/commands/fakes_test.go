//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"promocode-service/internal/domain/user"
	"promocode-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeFraud struct {
	mu     sync.Mutex
	denied map[string]bool
	calls  []string
}

func newFakeFraud() *fakeFraud {
	return &fakeFraud{denied: map[string]bool{}}
}

func (f *fakeFraud) Validate(_ context.Context, email, _ string) shared.FraudDecision {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, email)
	return shared.FraudDecision{OK: !f.denied[email]}
}

func (f *fakeFraud) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *fakeObserver) ObserveActivation(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func (o *fakeObserver) seen() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.outcomes...)
}

type issuedToken struct {
	subject uuid.UUID
	role    user.Role
	version int64
}

type fakeTokens struct {
	issued []issuedToken
	err    error
}

func (f *fakeTokens) GenerateToken(subjectID uuid.UUID, role user.Role, version int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued = append(f.issued, issuedToken{subject: subjectID, role: role, version: version})
	return "token-" + subjectID.String(), nil
}

func (f *fakeTokens) TokenDuration() time.Duration {
	return time.Hour
}
