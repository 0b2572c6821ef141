package router

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
)

// table is a tiny in-memory collection keyed by id, newest first on list.
type table[T any] struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]T
	order []uuid.UUID
}

func newTable[T any]() *table[T] { return &table[T]{rows: map[uuid.UUID]T{}} }

func (t *table[T]) put(id uuid.UUID, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id uuid.UUID) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return v, nil
}

func (t *table[T]) del(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// list returns rows in insertion order, reversed when newestFirst.
func (t *table[T]) list(newestFirst bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (t *table[T]) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

func stamp() (uuid.UUID, time.Time) { return uuid.New(), time.Now() }

// ─── Stores ────────────────────────────────────────────────────────────

type adminStore struct{ t *table[model.Admin] }

func (s adminStore) Exists(context.Context) (bool, error) { return s.t.len() > 0, nil }

func (s adminStore) CreateIfEmpty(_ context.Context, username, hash string) (bool, error) {
	s.t.mu.Lock()
	empty := len(s.t.rows) == 0
	s.t.mu.Unlock()
	if !empty {
		return false, nil
	}
	id, now := stamp()
	s.t.put(id, model.Admin{ID: id, Username: username, PasswordHash: hash, CredentialVersion: 1, CreatedAt: now, UpdatedAt: now})
	return true, nil
}

func (s adminStore) GetByID(_ context.Context, id uuid.UUID) (*model.Admin, error) {
	a, err := s.t.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s adminStore) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	for _, a := range s.t.list(false) {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s adminStore) First(context.Context) (*model.Admin, error) {
	all := s.t.list(false)
	if len(all) == 0 {
		return nil, repository.ErrNotFound
	}
	return &all[0], nil
}

func (s adminStore) Rotate(_ context.Context, id uuid.UUID, username, hash string) (*model.Admin, error) {
	a, err := s.t.get(id)
	if err != nil {
		return nil, err
	}
	a.Username, a.PasswordHash = username, hash
	a.CredentialVersion++
	s.t.put(id, a)
	return &a, nil
}

type enrollmentStore struct{ t *table[model.Enrollment] }

func (s enrollmentStore) List(context.Context) ([]model.Enrollment, error) {
	return s.t.list(true), nil
}
func (s enrollmentStore) Delete(_ context.Context, id uuid.UUID) error { return s.t.del(id) }
func (s enrollmentStore) Create(_ context.Context, e *model.Enrollment) error {
	e.ID, e.CreatedAt = stamp()
	s.t.put(e.ID, *e)
	return nil
}

type messageStore struct{ t *table[model.Message] }

func (s messageStore) List(context.Context) ([]model.Message, error) { return s.t.list(false), nil }
func (s messageStore) Delete(_ context.Context, id uuid.UUID) error  { return s.t.del(id) }
func (s messageStore) Create(_ context.Context, m *model.Message) error {
	m.ID, m.CreatedAt = stamp()
	s.t.put(m.ID, *m)
	return nil
}

type resultStore struct{ t *table[model.Result] }

func (s resultStore) List(context.Context) ([]model.Result, error) { return s.t.list(true), nil }
func (s resultStore) Delete(_ context.Context, id uuid.UUID) error { return s.t.del(id) }
func (s resultStore) GetByID(_ context.Context, id uuid.UUID) (*model.Result, error) {
	r, err := s.t.get(id)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
func (s resultStore) Create(_ context.Context, r *model.Result) error {
	r.ID, r.CreatedAt = stamp()
	s.t.put(r.ID, *r)
	return nil
}
func (s resultStore) Update(_ context.Context, r *model.Result) error {
	if _, err := s.t.get(r.ID); err != nil {
		return err
	}
	s.t.put(r.ID, *r)
	return nil
}

type certificateStore struct{ t *table[model.Certificate] }

func (s certificateStore) List(context.Context) ([]model.Certificate, error) {
	return s.t.list(true), nil
}
func (s certificateStore) Delete(_ context.Context, id uuid.UUID) error { return s.t.del(id) }
func (s certificateStore) GetByID(_ context.Context, id uuid.UUID) (*model.Certificate, error) {
	c, err := s.t.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
func (s certificateStore) Create(_ context.Context, c *model.Certificate) error {
	c.ID, c.CreatedAt = stamp()
	s.t.put(c.ID, *c)
	return nil
}
func (s certificateStore) Update(_ context.Context, c *model.Certificate) error {
	if _, err := s.t.get(c.ID); err != nil {
		return err
	}
	s.t.put(c.ID, *c)
	return nil
}

type seminarStore struct{ t *table[model.SeminarSet] }

func (s seminarStore) List(context.Context) ([]model.SeminarSet, error) { return s.t.list(false), nil }
func (s seminarStore) Create(_ context.Context, set *model.SeminarSet) error {
	set.ID, set.CreatedAt = stamp()
	s.t.put(set.ID, *set)
	return nil
}
func (s seminarStore) ReplaceSeminars(_ context.Context, set *model.SeminarSet) error {
	existing, err := s.t.get(set.ID)
	if err != nil {
		return err
	}
	existing.Seminars = set.Seminars
	s.t.put(set.ID, existing)
	return nil
}

// ─── Uploads ───────────────────────────────────────────────────────────

type countingUploader struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (u *countingUploader) Upload(_ context.Context, _ []byte, _ string, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	if u.fail {
		return "", errors.New("provider down")
	}
	return "https://img.example.com/" + folder + "/" + uuid.NewString() + ".png", nil
}

func (u *countingUploader) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}
