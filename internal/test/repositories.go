package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// MemoryStore is an in-memory repository.Store. Transact runs units of work
// one at a time and restores the previous state when fn fails.
type MemoryStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	state memState
	fail  map[string]error
	clock time.Time
}

type memState struct {
	users         map[uuid.UUID]model.User
	services      map[uuid.UUID]model.ProviderService
	orders        map[uuid.UUID]model.Order
	proposals     map[uuid.UUID]model.Proposal
	changes       map[uuid.UUID]model.ChangeRequest
	reviews       map[uuid.UUID]model.Review
	releases      map[uuid.UUID]decimal.Decimal
	withdrawals   map[uuid.UUID]model.Withdrawal
	payouts       map[uuid.UUID]model.PayoutInfo
	notifications map[uuid.UUID]model.Notification
	deleted       map[uuid.UUID]bool
	claimed       map[uuid.UUID]time.Time
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: memState{
			users:         map[uuid.UUID]model.User{},
			services:      map[uuid.UUID]model.ProviderService{},
			orders:        map[uuid.UUID]model.Order{},
			proposals:     map[uuid.UUID]model.Proposal{},
			changes:       map[uuid.UUID]model.ChangeRequest{},
			reviews:       map[uuid.UUID]model.Review{},
			releases:      map[uuid.UUID]decimal.Decimal{},
			withdrawals:   map[uuid.UUID]model.Withdrawal{},
			payouts:       map[uuid.UUID]model.PayoutInfo{},
			notifications: map[uuid.UUID]model.Notification{},
			deleted:       map[uuid.UUID]bool{},
			claimed:       map[uuid.UUID]time.Time{},
		},
		fail:  map[string]error{},
		clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// FailOn makes the named operation, such as "Orders.Update", return err.
func (s *MemoryStore) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op] = err
}

// Transact implements repository.UnitOfWork.
func (s *MemoryStore) Transact(ctx context.Context, fn func(tx repository.Factory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	if err := s.fail["Transact"]; err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (st memState) clone() memState {
	out := memState{
		users:         make(map[uuid.UUID]model.User, len(st.users)),
		services:      make(map[uuid.UUID]model.ProviderService, len(st.services)),
		orders:        make(map[uuid.UUID]model.Order, len(st.orders)),
		proposals:     make(map[uuid.UUID]model.Proposal, len(st.proposals)),
		changes:       make(map[uuid.UUID]model.ChangeRequest, len(st.changes)),
		reviews:       make(map[uuid.UUID]model.Review, len(st.reviews)),
		releases:      make(map[uuid.UUID]decimal.Decimal, len(st.releases)),
		withdrawals:   make(map[uuid.UUID]model.Withdrawal, len(st.withdrawals)),
		payouts:       make(map[uuid.UUID]model.PayoutInfo, len(st.payouts)),
		notifications: make(map[uuid.UUID]model.Notification, len(st.notifications)),
		deleted:       make(map[uuid.UUID]bool, len(st.deleted)),
		claimed:       make(map[uuid.UUID]time.Time, len(st.claimed)),
	}
	for k, v := range st.users {
		out.users[k] = v
	}
	for k, v := range st.services {
		out.services[k] = v
	}
	for k, v := range st.orders {
		out.orders[k] = copyOrder(v)
	}
	for k, v := range st.proposals {
		out.proposals[k] = v
	}
	for k, v := range st.changes {
		out.changes[k] = v
	}
	for k, v := range st.reviews {
		out.reviews[k] = v
	}
	for k, v := range st.releases {
		out.releases[k] = v
	}
	for k, v := range st.withdrawals {
		out.withdrawals[k] = v
	}
	for k, v := range st.payouts {
		out.payouts[k] = v
	}
	for k, v := range st.notifications {
		out.notifications[k] = v
	}
	for k, v := range st.deleted {
		out.deleted[k] = v
	}
	for k, v := range st.claimed {
		out.claimed[k] = v
	}
	return out
}

func copyOrder(o model.Order) model.Order {
	if o.Items != nil {
		o.Items = append([]model.OrderItem(nil), o.Items...)
	}
	if o.ProposedDate != nil {
		d := *o.ProposedDate
		o.ProposedDate = &d
	}
	return o
}

// tick returns a strictly increasing timestamp. Callers hold mu.
func (s *MemoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *MemoryStore) check(op string) error {
	return s.fail[op]
}

func (s *MemoryStore) Users() repository.UserRepository                   { return memUsers{s} }
func (s *MemoryStore) Services() repository.ServiceRepository             { return memServices{s} }
func (s *MemoryStore) Orders() repository.OrderRepository                 { return memOrders{s} }
func (s *MemoryStore) Proposals() repository.ProposalRepository           { return memProposals{s} }
func (s *MemoryStore) ChangeRequests() repository.ChangeRequestRepository { return memChanges{s} }
func (s *MemoryStore) Reviews() repository.ReviewRepository               { return memReviews{s} }
func (s *MemoryStore) Balances() repository.BalanceRepository             { return memBalances{s} }
func (s *MemoryStore) Withdrawals() repository.WithdrawalRepository       { return memWithdrawals{s} }
func (s *MemoryStore) PayoutInfo() repository.PayoutInfoRepository        { return memPayouts{s} }
func (s *MemoryStore) Notifications() repository.NotificationRepository   { return memNotifications{s} }

// SeedUser stores a user and returns it.
func (s *MemoryStore) SeedUser(kind model.AccountKind, balance decimal.Decimal) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := model.User{
		ID:               uuid.New(),
		Name:             RandomASCIIString(5, 10),
		Email:            RandomASCIIString(5, 10) + "@example.com",
		Kind:             kind,
		AvailableBalance: balance,
		CreatedAt:        s.tick(),
	}
	s.state.users[u.ID] = u
	return u
}

// SeedService stores a service of the provider.
func (s *MemoryStore) SeedService(providerID uuid.UUID, basePrice decimal.NullDecimal, instant bool) model.ProviderService {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc := model.ProviderService{
		ID:                  uuid.New(),
		ProviderID:          providerID,
		Name:                RandomASCIIString(5, 10),
		BasePrice:           basePrice,
		AllowInstantBooking: instant,
		CreatedAt:           s.tick(),
	}
	s.state.services[svc.ID] = svc
	return svc
}

// SeedOrder stores an order between client and provider in the given status.
func (s *MemoryStore) SeedOrder(clientID, providerID uuid.UUID, status model.OrderStatus, price decimal.NullDecimal) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.tick()
	o := model.Order{
		ID:         uuid.New(),
		ClientID:   clientID,
		ProviderID: providerID,
		Status:     status,
		Price:      price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.state.orders[o.ID] = o
	return copyOrder(o)
}

// User returns the stored user.
func (s *MemoryStore) User(id uuid.UUID) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.users[id]
}

// Order returns the stored order.
func (s *MemoryStore) Order(id uuid.UUID) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.state.orders[id]
	return copyOrder(o), ok
}

// OrderCount returns how many orders are stored.
func (s *MemoryStore) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.orders)
}

// Proposal returns the stored proposal.
func (s *MemoryStore) Proposal(id uuid.UUID) model.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.proposals[id]
}

// ChangeRequest returns the stored change request.
func (s *MemoryStore) ChangeRequest(id uuid.UUID) model.ChangeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.changes[id]
}

// Outbox returns every enqueued notification, oldest first.
func (s *MemoryStore) Outbox() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, 0, len(s.state.notifications))
	for _, n := range s.state.notifications {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// WithdrawalCount returns how many withdrawals were recorded.
func (s *MemoryStore) WithdrawalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.withdrawals)
}

type memUsers struct{ s *MemoryStore }

func (r memUsers) Create(ctx context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Users.Create"); err != nil {
		return err
	}
	for _, u := range r.s.state.users {
		if u.Email == user.Email {
			return domainErrors.ErrAlreadyExists
		}
	}
	user.CreatedAt = r.s.tick()
	r.s.state.users[user.ID] = *user
	return nil
}

func (r memUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Users.GetByEmail"); err != nil {
		return nil, err
	}
	for _, u := range r.s.state.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r memUsers) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Users.GetByID"); err != nil {
		return nil, err
	}
	u, ok := r.s.state.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &u, nil
}

func (r memUsers) LockByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.GetByID(ctx, id)
}

func (r memUsers) UpdateRating(ctx context.Context, id uuid.UUID, rating model.RatingAggregate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Users.UpdateRating"); err != nil {
		return err
	}
	u, ok := r.s.state.users[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	u.Rating = rating
	r.s.state.users[id] = u
	return nil
}

type memServices struct{ s *MemoryStore }

func (r memServices) Create(ctx context.Context, svc *model.ProviderService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Services.Create"); err != nil {
		return err
	}
	svc.CreatedAt = r.s.tick()
	r.s.state.services[svc.ID] = *svc
	return nil
}

func (r memServices) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ProviderService, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Services.GetByIDs"); err != nil {
		return nil, err
	}
	var out []model.ProviderService
	for _, id := range ids {
		if svc, ok := r.s.state.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (r memServices) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.ProviderService, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.ProviderService{}
	for _, svc := range r.s.state.services {
		if svc.ProviderID == providerID {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type memOrders struct{ s *MemoryStore }

func (r memOrders) Create(ctx context.Context, order *model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Orders.Create"); err != nil {
		return err
	}
	now := r.s.tick()
	order.CreatedAt, order.UpdatedAt = now, now
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.s.state.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r memOrders) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Orders.GetByID"); err != nil {
		return nil, err
	}
	o, ok := r.s.state.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o = copyOrder(o)
	return &o, nil
}

func (r memOrders) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	r.s.mu.Lock()
	err := r.s.check("Orders.GetForUpdate")
	r.s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r memOrders) Update(ctx context.Context, order *model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Orders.Update"); err != nil {
		return err
	}
	stored, ok := r.s.state.orders[order.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	stored.Status = order.Status
	stored.Price = order.Price
	stored.ProposedDate = order.ProposedDate
	stored.Note = order.Note
	stored.UpdatedAt = r.s.tick()
	order.UpdatedAt = stored.UpdatedAt
	r.s.state.orders[order.ID] = copyOrder(stored)
	return nil
}

func (r memOrders) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Order, error) {
	return r.list("Orders.ListByClient", func(o model.Order) bool { return o.ClientID == clientID })
}

func (r memOrders) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Order, error) {
	return r.list("Orders.ListByProvider", func(o model.Order) bool { return o.ProviderID == providerID })
}

func (r memOrders) list(op string, match func(model.Order) bool) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(op); err != nil {
		return nil, err
	}
	out := []model.Order{}
	for _, o := range r.s.state.orders {
		if match(o) {
			out = append(out, copyOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memOrders) PendingAmount(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Orders.PendingAmount"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, o := range r.s.state.orders {
		if o.ProviderID != providerID || !o.Price.Valid {
			continue
		}
		if o.Status == model.OrderStatusScheduled || o.Status == model.OrderStatusCompletionRequested {
			total = total.Add(o.Price.Decimal)
		}
	}
	return total, nil
}

type memProposals struct{ s *MemoryStore }

func (r memProposals) Create(ctx context.Context, p *model.Proposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Proposals.Create"); err != nil {
		return err
	}
	p.CreatedAt = r.s.tick()
	r.s.state.proposals[p.ID] = *p
	return nil
}

func (r memProposals) GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.state.proposals[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &p, nil
}

func (r memProposals) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.Proposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Proposal{}
	for _, p := range r.s.state.proposals {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memProposals) Finalize(ctx context.Context, orderID, acceptedID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Proposals.Finalize"); err != nil {
		return err
	}
	for id, p := range r.s.state.proposals {
		if p.OrderID != orderID || p.Status != model.ProposalStatusSent {
			continue
		}
		p.Status = model.ProposalStatusDeclined
		if id == acceptedID {
			p.Status = model.ProposalStatusAccepted
		}
		r.s.state.proposals[id] = p
	}
	return nil
}

type memChanges struct{ s *MemoryStore }

func (r memChanges) Create(ctx context.Context, cr *model.ChangeRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("ChangeRequests.Create"); err != nil {
		return err
	}
	cr.CreatedAt = r.s.tick()
	r.s.state.changes[cr.ID] = *cr
	return nil
}

func (r memChanges) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cr, ok := r.s.state.changes[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &cr, nil
}

func (r memChanges) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.ChangeRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("ChangeRequests.ListByOrder"); err != nil {
		return nil, err
	}
	out := []model.ChangeRequest{}
	for _, cr := range r.s.state.changes {
		if cr.OrderID == orderID {
			out = append(out, cr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memChanges) Resolve(ctx context.Context, id uuid.UUID, status model.ChangeRequestStatus, resolvedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("ChangeRequests.Resolve"); err != nil {
		return err
	}
	cr, ok := r.s.state.changes[id]
	if !ok || cr.Status != model.ChangeRequestPending {
		return domainErrors.ErrAlreadyResolved
	}
	cr.Status = status
	cr.ResolvedAt = &resolvedAt
	r.s.state.changes[id] = cr
	return nil
}

type memReviews struct{ s *MemoryStore }

func (r memReviews) Create(ctx context.Context, rv *model.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Reviews.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.state.reviews {
		if existing.OrderID == rv.OrderID {
			return domainErrors.ErrAlreadyReviewed
		}
	}
	rv.CreatedAt = r.s.tick()
	r.s.state.reviews[rv.ID] = *rv
	return nil
}

func (r memReviews) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.state.reviews[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &rv, nil
}

func (r memReviews) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rv := range r.s.state.reviews {
		if rv.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r memReviews) ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Review{}
	for _, rv := range r.s.state.reviews {
		if rv.ProviderID == providerID && rv.Status == model.ReviewStatusActive {
			rv.ReviewerName = r.s.state.users[rv.ReviewerID].Name
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memReviews) SoftDelete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Reviews.SoftDelete"); err != nil {
		return err
	}
	rv, ok := r.s.state.reviews[id]
	if !ok || rv.Status != model.ReviewStatusActive {
		return domainErrors.ErrNotFound
	}
	rv.Status = model.ReviewStatusDeletedByUser
	r.s.state.reviews[id] = rv
	return nil
}

func (r memReviews) ActiveStats(ctx context.Context, providerID uuid.UUID) (int64, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Reviews.ActiveStats"); err != nil {
		return 0, 0, err
	}
	var sum, count int64
	for _, rv := range r.s.state.reviews {
		if rv.ProviderID == providerID && rv.Status == model.ReviewStatusActive {
			sum += int64(rv.Rating)
			count++
		}
	}
	return sum, count, nil
}

type memBalances struct{ s *MemoryStore }

func (r memBalances) LockAvailable(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	return r.Available(ctx, providerID)
}

func (r memBalances) Available(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Balances.Available"); err != nil {
		return decimal.Zero, err
	}
	u, ok := r.s.state.users[providerID]
	if !ok {
		return decimal.Zero, domainErrors.ErrNotFound
	}
	return u.AvailableBalance, nil
}

func (r memBalances) Credit(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Balances.Credit"); err != nil {
		return err
	}
	u, ok := r.s.state.users[providerID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	u.AvailableBalance = u.AvailableBalance.Add(amount)
	r.s.state.users[providerID] = u
	return nil
}

func (r memBalances) Debit(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Balances.Debit"); err != nil {
		return err
	}
	u, ok := r.s.state.users[providerID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if u.AvailableBalance.LessThan(amount) {
		return domainErrors.ErrInsufficientBalance
	}
	u.AvailableBalance = u.AvailableBalance.Sub(amount)
	r.s.state.users[providerID] = u
	return nil
}

func (r memBalances) RecordRelease(ctx context.Context, orderID, providerID uuid.UUID, amount decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Balances.RecordRelease"); err != nil {
		return err
	}
	if _, ok := r.s.state.releases[orderID]; ok {
		return domainErrors.ErrAlreadyReleased
	}
	r.s.state.releases[orderID] = amount
	return nil
}

type memWithdrawals struct{ s *MemoryStore }

func (r memWithdrawals) Create(ctx context.Context, w *model.Withdrawal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Withdrawals.Create"); err != nil {
		return err
	}
	w.ProcessedAt = r.s.tick()
	r.s.state.withdrawals[w.ID] = *w
	return nil
}

func (r memWithdrawals) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Withdrawal{}
	for _, w := range r.s.state.withdrawals {
		if w.ProviderID == providerID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProcessedAt.After(out[j].ProcessedAt) })
	return out, nil
}

type memPayouts struct{ s *MemoryStore }

func (r memPayouts) GetByProvider(ctx context.Context, providerID uuid.UUID) (*model.PayoutInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("PayoutInfo.GetByProvider"); err != nil {
		return nil, err
	}
	info, ok := r.s.state.payouts[providerID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &info, nil
}

func (r memPayouts) Upsert(ctx context.Context, info *model.PayoutInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("PayoutInfo.Upsert"); err != nil {
		return err
	}
	info.UpdatedAt = r.s.tick()
	r.s.state.payouts[info.ProviderID] = *info
	return nil
}

type memNotifications struct{ s *MemoryStore }

func (r memNotifications) Enqueue(ctx context.Context, n *model.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Notifications.Enqueue"); err != nil {
		return err
	}
	n.CreatedAt = r.s.tick()
	r.s.state.notifications[n.ID] = *n
	return nil
}

func (r memNotifications) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Notification{}
	for id, n := range r.s.state.notifications {
		if n.UserID == userID && !r.s.state.deleted[id] {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memNotifications) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, n := range r.s.state.notifications {
		if n.UserID == userID {
			n.IsRead = true
			r.s.state.notifications[id] = n
		}
	}
	return nil
}

func (r memNotifications) Delete(ctx context.Context, id, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.state.notifications[id]
	if !ok || n.UserID != userID || r.s.state.deleted[id] {
		return domainErrors.ErrNotFound
	}
	r.s.state.deleted[id] = true
	return nil
}

func (r memNotifications) ClaimUndispatched(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Notifications.ClaimUndispatched"); err != nil {
		return nil, err
	}
	now := r.s.tick()
	var pending []model.Notification
	for id, n := range r.s.state.notifications {
		if n.DispatchedAt != nil {
			continue
		}
		if at, ok := r.s.state.claimed[id]; ok && now.Sub(at) < lease {
			continue
		}
		pending = append(pending, n)
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.Before(pending[j].CreatedAt) })
	if len(pending) > limit {
		pending = pending[:limit]
	}
	for _, n := range pending {
		r.s.state.claimed[n.ID] = now
	}
	return pending, nil
}

func (r memNotifications) MarkDispatched(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("Notifications.MarkDispatched"); err != nil {
		return err
	}
	n, ok := r.s.state.notifications[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	at := r.s.tick()
	n.DispatchedAt = &at
	r.s.state.notifications[id] = n
	return nil
}

var _ repository.Store = (*MemoryStore)(nil)
