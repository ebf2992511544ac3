//go:build unit

package commands_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	"seat-redeem/internal/domain/resource"
	"seat-redeem/internal/domain/usage"
	"seat-redeem/internal/domain/voucher"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/usecase/shared"
)

var (
	errLockTimeout = errors.New("memstore: lock wait timeout")
	errInjected    = errors.New("memstore: injected failure")
)

const (
	lockWait       = 2 * time.Second
	maxTxAttempts  = 3
	voucherKeyPref = "v:"
)

// memStore is an in-memory UnitOfWork with row locks held until commit.
// A lock wait that times out is treated like a deadlock and the transaction
// is retried.
type memStore struct {
	mu        sync.Mutex
	vouchers  map[string]*voucher.Voucher
	resources map[int64]*resource.Resource
	records   []*usage.Record
	nextRecID int64
	locks     map[string]chan struct{}

	// failures injected into the next N transactions
	failWithin int
	failInsert int
}

func newMemStore() *memStore {
	return &memStore{
		vouchers:  map[string]*voucher.Voucher{},
		resources: map[int64]*resource.Resource{},
		locks:     map[string]chan struct{}{},
	}
}

func (s *memStore) putVoucher(v *voucher.Voucher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers[v.Code().Value()] = cloneVoucher(v)
}

func (s *memStore) putResource(r *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[r.ID()] = cloneResource(r)
}

func (s *memStore) putRecord(rec *usage.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextRecID++
	cp := *rec
	cp.ID = s.nextRecID
	s.records = append(s.records, &cp)
}

func (s *memStore) voucher(code string) *voucher.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vouchers[code]
	if !ok {
		return nil
	}
	return cloneVoucher(v)
}

func (s *memStore) resource(id int64) *resource.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resources[id]
	if !ok {
		return nil
	}
	return cloneResource(r)
}

func (s *memStore) recordsFor(code string) []usage.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []usage.Record
	for _, rec := range s.records {
		if rec.Code == code {
			out = append(out, *rec)
		}
	}
	return out
}

func (s *memStore) recordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *memStore) setFailWithin(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWithin = n
}

func (s *memStore) setFailInsert(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failInsert = n
}

func (s *memStore) takeFailure(counter *int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if *counter > 0 {
		*counter--
		return true
	}
	return false
}

func (s *memStore) lockFor(key string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[key] = l
	}
	return l
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if shared.InTx(ctx) {
		return shared.ErrNestedTransaction
	}
	if s.takeFailure(&s.failWithin) {
		return errInjected
	}

	ctx = shared.WithTxMarker(ctx)
	var lastErr error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		tx := newMemTx(s)
		err := fn(ctx, tx)
		if err == nil {
			tx.commit()
			return nil
		}
		tx.rollback()
		if !errors.Is(err, errLockTimeout) {
			return err
		}
		lastErr = err
	}
	return errors.Join(shared.ErrMaxRetriesExceeded, lastErr)
}

type memTx struct {
	store     *memStore
	held      []string
	vouchers  map[string]*voucher.Voucher
	deleted   map[string]bool
	resources map[int64]*resource.Resource
	records   []*usage.Record
}

func newMemTx(s *memStore) *memTx {
	return &memTx{
		store:     s,
		vouchers:  map[string]*voucher.Voucher{},
		deleted:   map[string]bool{},
		resources: map[int64]*resource.Resource{},
	}
}

func (t *memTx) acquire(ctx context.Context, key string) error {
	if slices.Contains(t.held, key) {
		return nil
	}
	l := t.store.lockFor(key)
	select {
	case l <- struct{}{}:
		t.held = append(t.held, key)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(lockWait):
		return errLockTimeout
	}
}

func (t *memTx) release() {
	for _, key := range t.held {
		<-t.store.lockFor(key)
	}
	t.held = nil
}

func (t *memTx) commit() {
	s := t.store
	s.mu.Lock()
	for code := range t.deleted {
		delete(s.vouchers, code)
	}
	for code, v := range t.vouchers {
		s.vouchers[code] = v
	}
	for id, r := range t.resources {
		s.resources[id] = r
	}
	for _, rec := range t.records {
		s.nextRecID++
		rec.ID = s.nextRecID
		s.records = append(s.records, rec)
	}
	s.mu.Unlock()
	t.release()
}

func (t *memTx) rollback() {
	t.release()
}

func (t *memTx) Vouchers() shared.VoucherRepository        { return memVouchers{t} }
func (t *memTx) Resources() shared.ResourceRepository      { return memResources{t} }
func (t *memTx) UsageRecords() shared.UsageRecordRepository { return memRecords{t} }

func (t *memTx) readVoucher(code string) (*voucher.Voucher, bool) {
	if t.deleted[code] {
		return nil, false
	}
	if v, ok := t.vouchers[code]; ok {
		return cloneVoucher(v), true
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	v, ok := t.store.vouchers[code]
	if !ok {
		return nil, false
	}
	return cloneVoucher(v), true
}

func (t *memTx) readResource(id int64) (*resource.Resource, bool) {
	if r, ok := t.resources[id]; ok {
		return cloneResource(r), true
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	r, ok := t.store.resources[id]
	if !ok {
		return nil, false
	}
	return cloneResource(r), true
}

type memVouchers struct{ tx *memTx }

func (m memVouchers) FindByCodeForUpdate(ctx context.Context, code string) (*voucher.Voucher, error) {
	if err := m.tx.acquire(ctx, voucherKeyPref+code); err != nil {
		return nil, err
	}
	v, ok := m.tx.readVoucher(code)
	if !ok {
		return nil, infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (m memVouchers) Create(_ context.Context, v *voucher.Voucher) (bool, error) {
	if _, ok := m.tx.readVoucher(v.Code().Value()); ok {
		return false, nil
	}
	delete(m.tx.deleted, v.Code().Value())
	m.tx.vouchers[v.Code().Value()] = cloneVoucher(v)
	return true, nil
}

func (m memVouchers) Save(_ context.Context, v *voucher.Voucher) error {
	if _, ok := m.tx.readVoucher(v.Code().Value()); !ok {
		return infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound)
	}
	m.tx.vouchers[v.Code().Value()] = cloneVoucher(v)
	return nil
}

func (m memVouchers) Delete(ctx context.Context, code string) (bool, error) {
	if err := m.tx.acquire(ctx, voucherKeyPref+code); err != nil {
		return false, err
	}
	if _, ok := m.tx.readVoucher(code); !ok {
		return false, nil
	}
	delete(m.tx.vouchers, code)
	m.tx.deleted[code] = true
	return true, nil
}

type memResources struct{ tx *memTx }

func (m memResources) SelectAvailableID(_ context.Context, excluded []int64) (int64, error) {
	m.tx.store.mu.Lock()
	ids := make([]int64, 0, len(m.tx.store.resources))
	for id := range m.tx.store.resources {
		ids = append(ids, id)
	}
	m.tx.store.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if slices.Contains(excluded, id) {
			continue
		}
		r, ok := m.tx.readResource(id)
		if ok && r.CheckAvailable() == nil {
			return id, nil
		}
	}
	return 0, infra.WrapRepoErr("no available resource", nil, infra.KindNotFound)
}

func (m memResources) LockByID(ctx context.Context, id int64) (*resource.Resource, error) {
	if err := m.tx.acquire(ctx, resourceKey(id)); err != nil {
		return nil, err
	}
	return m.FindByID(ctx, id)
}

func (m memResources) FindByID(_ context.Context, id int64) (*resource.Resource, error) {
	r, ok := m.tx.readResource(id)
	if !ok {
		return nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return r, nil
}

func (m memResources) Save(_ context.Context, r *resource.Resource) error {
	m.tx.resources[r.ID()] = cloneResource(r)
	return nil
}

type memRecords struct{ tx *memTx }

func (m memRecords) Insert(_ context.Context, rec *usage.Record) (int64, error) {
	if m.tx.store.takeFailure(&m.tx.store.failInsert) {
		return 0, errInjected
	}
	cp := *rec
	m.tx.records = append(m.tx.records, &cp)
	return 0, nil
}

func (m memRecords) LatestByCode(_ context.Context, code string) (*usage.Record, error) {
	m.tx.store.mu.Lock()
	defer m.tx.store.mu.Unlock()
	var latest *usage.Record
	for _, rec := range m.tx.store.records {
		if rec.Code != code {
			continue
		}
		if latest == nil || !rec.RedeemedAt.Before(latest.RedeemedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, infra.WrapRepoErr("usage record not found", nil, infra.KindNotFound)
	}
	cp := *latest
	return &cp, nil
}

func (m memRecords) CountWarrantyRedemptions(_ context.Context, code string) (int64, error) {
	m.tx.store.mu.Lock()
	defer m.tx.store.mu.Unlock()
	var n int64
	for _, rec := range m.tx.store.records {
		if rec.Code == code && rec.IsWarrantyRedemption {
			n++
		}
	}
	return n, nil
}

func resourceKey(id int64) string {
	return "r:" + strconv.FormatInt(id, 10)
}

func cloneVoucher(v *voucher.Voucher) *voucher.Voucher {
	out, err := voucher.Reconstruct(voucher.ReconstructParams{
		Code:              v.Code().Value(),
		Status:            v.Status().String(),
		ExpiresAt:         v.ExpiresAt(),
		HasWarranty:       v.HasWarranty(),
		WarrantyDays:      v.WarrantyDays(),
		WarrantyExpiresAt: v.WarrantyExpiresAt(),
		UsedByEmail:       v.UsedByEmail(),
		UsedResourceID:    v.UsedResourceID(),
		UsedAt:            v.UsedAt(),
		CreatedAt:         v.CreatedAt(),
	})
	if err != nil {
		panic(err)
	}
	return out
}

func cloneResource(r *resource.Resource) *resource.Resource {
	out, err := resource.Reconstruct(resource.ReconstructParams{
		ID:                  r.ID(),
		Name:                r.Name(),
		Status:              r.Status().String(),
		CurrentMembers:      r.CurrentMembers(),
		MaxMembers:          r.MaxMembers(),
		ExpiresAt:           r.ExpiresAt(),
		CredentialEncrypted: r.CredentialEncrypted(),
		ExternalAccountID:   r.ExternalAccountID(),
		SubscriptionPlan:    r.SubscriptionPlan(),
	})
	if err != nil {
		panic(err)
	}
	return out
}
