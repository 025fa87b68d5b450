//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"sync"

	"promocode-service/internal/domain/business"
	"promocode-service/internal/domain/promocode"
	"promocode-service/internal/domain/user"
	"promocode-service/internal/infra"
	"promocode-service/internal/infra/db"
	"promocode-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type likeKey struct {
	promoID, userID uuid.UUID
}

// memStore is an in-memory unit of work. Transactions run one at a time and
// roll back on error.
type memStore struct {
	mu          sync.Mutex
	promos      map[uuid.UUID]*promocode.Promocode
	users       map[uuid.UUID]*user.User
	businesses  map[uuid.UUID]*business.Business
	activations []*promocode.Activation
	likes       map[likeKey]bool
	comments    map[uuid.UUID]*promocode.Comment
	versions    map[uuid.UUID]int64

	// test hooks
	beforeAppend func(s *memStore, id uuid.UUID)
	readErr      error
	txCount      int
	inflight     *memSnapshot
	plainLoads   int
	lockedLoads  int
}

func newMemStore() *memStore {
	return &memStore{
		promos:     map[uuid.UUID]*promocode.Promocode{},
		users:      map[uuid.UUID]*user.User{},
		businesses: map[uuid.UUID]*business.Business{},
		likes:      map[likeKey]bool{},
		comments:   map[uuid.UUID]*promocode.Comment{},
		versions:   map[uuid.UUID]int64{},
	}
}

func notFound() error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

func (s *memStore) addPromo(p *promocode.Promocode) *promocode.Promocode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promos[p.ID()] = p
	return p
}

func (s *memStore) addUser(u *user.User) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
	s.versions[u.ID()] = u.TokenVersion()
	return u
}

func (s *memStore) addBusiness(b *business.Business) *business.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[b.ID()] = b
	s.versions[b.ID()] = b.TokenVersion()
	return b
}

func (s *memStore) addComment(c *promocode.Comment) *promocode.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[c.ID()] = c
	return c
}

func (s *memStore) activationsOf(promoID uuid.UUID) []*promocode.Activation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*promocode.Activation
	for _, a := range s.activations {
		if a.PromocodeID() == promoID {
			out = append(out, a)
		}
	}
	return out
}

// loadPromo returns a fresh copy with the activation count derived from stored activations.
func (s *memStore) loadPromo(id uuid.UUID) (*promocode.Promocode, error) {
	p, ok := s.promos[id]
	if !ok {
		return nil, notFound()
	}
	count := 0
	for _, a := range s.activations {
		if a.PromocodeID() == id {
			count++
		}
	}
	var common *string
	if p.Mode() == promocode.ModeCommon {
		common = p.CommonCode()
	}
	return promocode.ReconstructPromocode(promocode.ReconstructParams{
		ID:              p.ID(),
		BusinessID:      p.BusinessID(),
		Description:     p.Description(),
		ImageURL:        p.ImageURL(),
		Target:          p.Target(),
		Mode:            p.Mode(),
		MaxCount:        p.MaxCount(),
		CommonCode:      common,
		UniqueCodes:     p.UniqueCodes(),
		ActivatedCodes:  p.ActivatedCodes(),
		ActiveFrom:      p.ActiveFrom(),
		ActiveUntil:     p.ActiveUntil(),
		ActivationCount: count,
		CreatedAt:       p.CreatedAt(),
	}), nil
}

type memSnapshot struct {
	promos      map[uuid.UUID]*promocode.Promocode
	users       map[uuid.UUID]*user.User
	businesses  map[uuid.UUID]*business.Business
	activations []*promocode.Activation
	likes       map[likeKey]bool
	comments    map[uuid.UUID]*promocode.Comment
	versions    map[uuid.UUID]int64
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		promos:      maps.Clone(s.promos),
		users:       maps.Clone(s.users),
		businesses:  maps.Clone(s.businesses),
		activations: slices.Clone(s.activations),
		likes:       maps.Clone(s.likes),
		comments:    maps.Clone(s.comments),
		versions:    maps.Clone(s.versions),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.promos = snap.promos
	s.users = snap.users
	s.businesses = snap.businesses
	s.activations = snap.activations
	s.likes = snap.likes
	s.comments = snap.comments
	s.versions = snap.versions
}

// shared.UnitOfWork

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++
	snap := s.snapshot()
	s.inflight = &snap
	defer func() { s.inflight = nil }()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) CommandReads() shared.CommandReads {
	return &memReads{s: s, lock: true}
}

type memTx struct {
	s *memStore
}

func (t *memTx) Promocodes() shared.PromocodeRepository   { return memPromos{t.s} }
func (t *memTx) Activations() shared.ActivationRepository { return memActivations{t.s} }
func (t *memTx) Users() shared.UserRepository             { return memUsers{t.s} }
func (t *memTx) Businesses() shared.BusinessRepository    { return memBusinesses{t.s} }
func (t *memTx) Likes() shared.LikeRepository             { return memLikes{t.s} }
func (t *memTx) Comments() shared.CommentRepository       { return memComments{t.s} }
func (t *memTx) Reads() shared.CommandReads               { return &memReads{s: t.s} }
func (t *memTx) DB() db.DBTX                              { return nil }

type memReads struct {
	s    *memStore
	lock bool
}

func (r *memReads) enter() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memReads) PromocodeByID(_ context.Context, id uuid.UUID) (*promocode.Promocode, error) {
	defer r.enter()()
	if r.s.readErr != nil {
		return nil, r.s.readErr
	}
	return r.s.loadPromo(id)
}

func (r *memReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	defer r.enter()()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound()
	}
	cp := *u
	return &cp, nil
}

func (r *memReads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	defer r.enter()()
	for _, u := range r.s.users {
		if u.Email().Value() == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *memReads) BusinessByEmail(_ context.Context, email string) (*business.Business, error) {
	defer r.enter()()
	for _, b := range r.s.businesses {
		if b.Email().Value() == email {
			cp := *b
			return &cp, nil
		}
	}
	return nil, notFound()
}

func (r *memReads) CommentByID(_ context.Context, id uuid.UUID) (*promocode.Comment, error) {
	defer r.enter()()
	c, ok := r.s.comments[id]
	if !ok {
		return nil, notFound()
	}
	cp := *c
	return &cp, nil
}

func (r *memReads) TokenVersion(_ context.Context, _ user.Role, id uuid.UUID) (int64, error) {
	defer r.enter()()
	v, ok := r.s.versions[id]
	if !ok {
		return 0, notFound()
	}
	return v, nil
}

type memPromos struct{ s *memStore }

func (m memPromos) Create(_ context.Context, _ db.DBTX, p *promocode.Promocode) error {
	if _, ok := m.s.businesses[p.BusinessID()]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	m.s.promos[p.ID()] = p
	return nil
}

func (m memPromos) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*promocode.Promocode, error) {
	m.s.plainLoads++
	return m.s.loadPromo(id)
}

func (m memPromos) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*promocode.Promocode, error) {
	m.s.lockedLoads++
	return m.s.loadPromo(id)
}

func (m memPromos) Update(_ context.Context, _ db.DBTX, p *promocode.Promocode) error {
	if _, ok := m.s.promos[p.ID()]; !ok {
		return notFound()
	}
	m.s.promos[p.ID()] = p
	return nil
}

func (m memPromos) AppendActivatedCode(_ context.Context, _ db.DBTX, id uuid.UUID, expected int, code string) error {
	if m.s.beforeAppend != nil {
		m.s.beforeAppend(m.s, id)
	}
	stored, err := m.s.loadPromo(id)
	if err != nil {
		return err
	}
	if len(stored.ActivatedCodes()) != expected {
		return shared.ErrAllocationConflict
	}
	next := stored.ActivatedCodes()
	next = append(next, code)
	m.s.promos[id] = withActivated(stored, next)
	return nil
}

func withActivated(p *promocode.Promocode, activated []string) *promocode.Promocode {
	return promocode.ReconstructPromocode(promocode.ReconstructParams{
		ID:             p.ID(),
		BusinessID:     p.BusinessID(),
		Description:    p.Description(),
		ImageURL:       p.ImageURL(),
		Target:         p.Target(),
		Mode:           p.Mode(),
		MaxCount:       p.MaxCount(),
		UniqueCodes:    p.UniqueCodes(),
		ActivatedCodes: activated,
		ActiveFrom:     p.ActiveFrom(),
		ActiveUntil:    p.ActiveUntil(),
		CreatedAt:      p.CreatedAt(),
	})
}

type memActivations struct{ s *memStore }

func (m memActivations) Create(_ context.Context, _ db.DBTX, a *promocode.Activation) error {
	m.s.activations = append(m.s.activations, a)
	return nil
}

type memUsers struct{ s *memStore }

func (m memUsers) Create(_ context.Context, _ db.DBTX, u *user.User) error {
	for _, existing := range m.s.users {
		if existing.Email().Value() == u.Email().Value() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	m.s.users[u.ID()] = u
	m.s.versions[u.ID()] = u.TokenVersion()
	return nil
}

func (m memUsers) Update(_ context.Context, _ db.DBTX, u *user.User) error {
	if _, ok := m.s.users[u.ID()]; !ok {
		return notFound()
	}
	m.s.users[u.ID()] = u
	return nil
}

func (m memUsers) BumpTokenVersion(_ context.Context, _ db.DBTX, id uuid.UUID) (int64, error) {
	if _, ok := m.s.users[id]; !ok {
		return 0, notFound()
	}
	m.s.versions[id]++
	return m.s.versions[id], nil
}

type memBusinesses struct{ s *memStore }

func (m memBusinesses) Create(_ context.Context, _ db.DBTX, b *business.Business) error {
	for _, existing := range m.s.businesses {
		if existing.Email().Value() == b.Email().Value() {
			return infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	m.s.businesses[b.ID()] = b
	m.s.versions[b.ID()] = b.TokenVersion()
	return nil
}

func (m memBusinesses) BumpTokenVersion(_ context.Context, _ db.DBTX, id uuid.UUID) (int64, error) {
	if _, ok := m.s.businesses[id]; !ok {
		return 0, notFound()
	}
	m.s.versions[id]++
	return m.s.versions[id], nil
}

type memLikes struct{ s *memStore }

func (m memLikes) Add(_ context.Context, _ db.DBTX, promoID, userID uuid.UUID) error {
	if _, ok := m.s.promos[promoID]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	m.s.likes[likeKey{promoID, userID}] = true
	return nil
}

func (m memLikes) Remove(_ context.Context, _ db.DBTX, promoID, userID uuid.UUID) error {
	delete(m.s.likes, likeKey{promoID, userID})
	return nil
}

type memComments struct{ s *memStore }

func (m memComments) Create(_ context.Context, _ db.DBTX, c *promocode.Comment) error {
	if _, ok := m.s.promos[c.PromocodeID()]; !ok {
		return infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	m.s.comments[c.ID()] = c
	return nil
}

func (m memComments) Update(_ context.Context, _ db.DBTX, c *promocode.Comment) error {
	if _, ok := m.s.comments[c.ID()]; !ok {
		return notFound()
	}
	m.s.comments[c.ID()] = c
	return nil
}

func (m memComments) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := m.s.comments[id]; !ok {
		return notFound()
	}
	delete(m.s.comments, id)
	return nil
}

func (s *memStore) seedActivations(promoID uuid.UUID, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for range n {
		s.activations = append(s.activations, promocode.NewActivation(promoID, uuid.New(), "seeded", testNow))
	}
}

// stealNextCode issues the next unique code to another user, as a concurrent
// activation would. The change survives a rollback of the running
// transaction. Callers must hold the lock.
func (s *memStore) stealNextCode(id uuid.UUID) {
	stored, err := s.loadPromo(id)
	if err != nil {
		return
	}
	activated := stored.ActivatedCodes()
	unique := stored.UniqueCodes()
	if len(activated) >= len(unique) {
		return
	}
	next := unique[len(activated)]
	promo := withActivated(stored, append(activated, next))
	activation := promocode.NewActivation(id, uuid.New(), next, testNow)
	s.promos[id] = promo
	s.activations = append(s.activations, activation)
	if s.inflight != nil {
		s.inflight.promos[id] = promo
		s.inflight.activations = append(s.inflight.activations, activation)
	}
}
