package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/config"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-jwt-secret",
		JWTExpiry:            time.Hour,
		BcryptCost:           4,
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "admin",
		MaxUploadBytes:       5 * 1024 * 1024,
	}
}

// ─── Admins ────────────────────────────────────────────────────────────

type memAdmins struct {
	mu     sync.Mutex
	admins []*model.Admin
}

func (m *memAdmins) Exists(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.admins) > 0, nil
}

func (m *memAdmins) CreateIfEmpty(_ context.Context, username, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.admins) > 0 {
		return false, nil
	}
	now := time.Now()
	m.admins = append(m.admins, &model.Admin{
		ID: uuid.New(), Username: username, PasswordHash: hash,
		CredentialVersion: 1, CreatedAt: now, UpdatedAt: now,
	})
	return true, nil
}

func (m *memAdmins) find(match func(*model.Admin) bool) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if match(a) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAdmins) GetByID(_ context.Context, id uuid.UUID) (*model.Admin, error) {
	return m.find(func(a *model.Admin) bool { return a.ID == id })
}

func (m *memAdmins) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	return m.find(func(a *model.Admin) bool { return a.Username == username })
}

func (m *memAdmins) First(context.Context) (*model.Admin, error) {
	return m.find(func(*model.Admin) bool { return true })
}

func (m *memAdmins) Rotate(_ context.Context, id uuid.UUID, username, hash string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.ID != id && a.Username == username {
			return nil, repository.ErrConflict
		}
	}
	for _, a := range m.admins {
		if a.ID == id {
			a.Username = username
			a.PasswordHash = hash
			a.CredentialVersion++
			a.UpdatedAt = time.Now()
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAdmins) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.admins)
}

// ─── Uploads ───────────────────────────────────────────────────────────

type uploadCall struct {
	folder      string
	contentType string
	size        int
}

type fakeUploader struct {
	mu    sync.Mutex
	calls []uploadCall
	// failOn makes the n-th call (1-based) fail; 0 never fails.
	failOn int
}

func (f *fakeUploader) Upload(_ context.Context, blob []byte, contentType, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, uploadCall{folder: folder, contentType: contentType, size: len(blob)})
	if f.failOn == len(f.calls) {
		return "", errors.New("provider unavailable")
	}
	return "https://img.example.com/" + folder + "/" + uuid.NewString() + ".png", nil
}

func (f *fakeUploader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func imageUpload(name string, size int) *Upload {
	return fileUpload(name, "image/png", size)
}

func fileUpload(name, contentType string, size int) *Upload {
	data := bytes.Repeat([]byte{0x89}, size)
	return &Upload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(size),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func newTestMedia(up *fakeUploader) *MediaService {
	return NewMediaService(up, testConfig().MaxUploadBytes, zerolog.Nop())
}

// ─── Collections ───────────────────────────────────────────────────────

type memResults struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.Result
}

func newMemResults() *memResults { return &memResults{rows: map[uuid.UUID]model.Result{}} }

func (m *memResults) List(context.Context) ([]model.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Result, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memResults) GetByID(_ context.Context, id uuid.UUID) (*model.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (m *memResults) Create(_ context.Context, r *model.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	m.rows[r.ID] = *r
	return nil
}

func (m *memResults) Update(_ context.Context, r *model.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[r.ID]; !ok {
		return repository.ErrNotFound
	}
	r.UpdatedAt = time.Now()
	m.rows[r.ID] = *r
	return nil
}

func (m *memResults) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memCertificates struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.Certificate
}

func newMemCertificates() *memCertificates {
	return &memCertificates{rows: map[uuid.UUID]model.Certificate{}}
}

func (m *memCertificates) List(context.Context) ([]model.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Certificate, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCertificates) GetByID(_ context.Context, id uuid.UUID) (*model.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memCertificates) Create(_ context.Context, c *model.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	m.rows[c.ID] = *c
	return nil
}

func (m *memCertificates) Update(_ context.Context, c *model.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[c.ID]; !ok {
		return repository.ErrNotFound
	}
	m.rows[c.ID] = *c
	return nil
}

func (m *memCertificates) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memEnrollments struct {
	mu   sync.Mutex
	rows []model.Enrollment
}

func (m *memEnrollments) List(context.Context) ([]model.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Enrollment(nil), m.rows...), nil
}

func (m *memEnrollments) Create(_ context.Context, e *model.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.New()
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memEnrollments) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memSeminars struct {
	mu   sync.Mutex
	sets []model.SeminarSet
}

func (m *memSeminars) List(context.Context) ([]model.SeminarSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.SeminarSet(nil), m.sets...), nil
}

func (m *memSeminars) Create(_ context.Context, s *model.SeminarSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.New()
	m.sets = append(m.sets, *s)
	return nil
}

func (m *memSeminars) ReplaceSeminars(_ context.Context, s *model.SeminarSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sets {
		if m.sets[i].ID == s.ID {
			m.sets[i].Seminars = s.Seminars
			return nil
		}
	}
	return repository.ErrNotFound
}

// ─── Cache ─────────────────────────────────────────────────────────────

// memCache is a ListCache that round-trips through JSON like the Redis one.
type memCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	gens        map[string]int64
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, gens: map[string]int64{}}
}

func (c *memCache) Generation(_ context.Context, collection string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[collection], nil
}

func (c *memCache) Get(_ context.Context, collection string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[collection]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Set(_ context.Context, collection string, gen int64, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[collection] != gen {
		return nil
	}
	c.data[collection] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, collection string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, collection)
	c.gens[collection]++
	c.invalidated = append(c.invalidated, collection)
	return nil
}

func (c *memCache) has(collection string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[collection]
	return ok
}
