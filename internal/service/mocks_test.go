package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/supportly-beer/supportly-backend/internal/cache"
	"github.com/supportly-beer/supportly-backend/internal/domain"
	"github.com/supportly-beer/supportly-backend/internal/repository"
	"github.com/supportly-beer/supportly-backend/internal/search"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.UserModel
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.UserModel)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.UserModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.UserModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.UserModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.UserModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]domain.UserModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.UserModel, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// add seeds a user and returns it with its assigned id.
func (r *fakeUserRepo) add(user domain.UserModel) *domain.UserModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = &user
	return &user
}

// fakeRoleRepo is an in-memory RoleRepository pre-seeded with the three
// well-known roles.
type fakeRoleRepo struct {
	roles map[string]*domain.RoleModel
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[string]*domain.RoleModel{
		domain.RoleUser:          {ID: 1, Name: domain.RoleUser},
		domain.RoleAgent:         {ID: 2, Name: domain.RoleAgent},
		domain.RoleAdministrator: {ID: 3, Name: domain.RoleAdministrator},
	}}
}

func (r *fakeRoleRepo) GetByName(_ context.Context, name string) (*domain.RoleModel, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}
	return role, nil
}

func (r *fakeRoleRepo) CreateAll(_ context.Context, roles []domain.RoleModel) error {
	for i := range roles {
		role := roles[i]
		r.roles[role.Name] = &role
	}
	return nil
}

func (r *fakeRoleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.roles)), nil
}

// fakeTicketRepo is an in-memory TicketRepository. The statistics
// methods return canned values set by the test.
type fakeTicketRepo struct {
	mu       sync.Mutex
	nextID   int64
	tickets  map[string]*domain.TicketModel
	messages map[int64][]domain.TicketMessageModel

	countByState         int64
	countByCreator       int64
	countByCreatorState  map[domain.TicketState]int64
	countByAssigneeState map[domain.TicketState]int64
	avg                  float64
	hasAvg               bool
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets:              make(map[string]*domain.TicketModel),
		messages:             make(map[int64][]domain.TicketMessageModel),
		countByCreatorState:  make(map[domain.TicketState]int64),
		countByAssigneeState: make(map[domain.TicketState]int64),
	}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.TicketModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ticket.ID = r.nextID
	clone := *ticket
	r.tickets[ticket.Identifier] = &clone
	return nil
}

func (r *fakeTicketRepo) GetByIdentifier(_ context.Context, identifier string) (*domain.TicketModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[identifier]
	if !ok {
		return nil, repository.ErrTicketNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTicketRepo) GetByCreatorAndIdentifier(ctx context.Context, creatorID int64, identifier string) (*domain.TicketModel, error) {
	t, err := r.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if t.CreatorID != creatorID {
		return nil, repository.ErrTicketNotFound
	}
	return t, nil
}

func (r *fakeTicketRepo) Exists(_ context.Context, identifier string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tickets[identifier]
	return ok, nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.TicketModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.Identifier]; !ok {
		return repository.ErrTicketNotFound
	}
	clone := *ticket
	r.tickets[ticket.Identifier] = &clone
	return nil
}

func (r *fakeTicketRepo) List(_ context.Context, offset, limit int) ([]domain.TicketModel, error) {
	return r.page(offset, limit, func(*domain.TicketModel) bool { return true }), nil
}

func (r *fakeTicketRepo) ListByCreator(_ context.Context, creatorID int64, offset, limit int) ([]domain.TicketModel, error) {
	return r.page(offset, limit, func(t *domain.TicketModel) bool { return t.CreatorID == creatorID }), nil
}

func (r *fakeTicketRepo) ListByAssignee(_ context.Context, assigneeID int64, offset, limit int) ([]domain.TicketModel, error) {
	return r.page(offset, limit, func(t *domain.TicketModel) bool {
		return t.AssigneeID != nil && *t.AssigneeID == assigneeID
	}), nil
}

func (r *fakeTicketRepo) page(offset, limit int, keep func(*domain.TicketModel) bool) []domain.TicketModel {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TicketModel
	for id := int64(1); id <= r.nextID; id++ {
		for _, t := range r.tickets {
			if t.ID == id && keep(t) {
				out = append(out, *t)
			}
		}
	}
	if offset >= len(out) {
		return nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (r *fakeTicketRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.tickets)), nil
}

func (r *fakeTicketRepo) AppendMessage(_ context.Context, msg *domain.TicketMessageModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[msg.TicketID] = append(r.messages[msg.TicketID], *msg)
	return nil
}

func (r *fakeTicketRepo) Messages(_ context.Context, ticketID int64) ([]domain.TicketMessageModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.TicketMessageModel(nil), r.messages[ticketID]...), nil
}

func (r *fakeTicketRepo) CountByState(_ context.Context, _ domain.TicketState, _ *repository.TimeRange) (int64, error) {
	return r.countByState, nil
}

func (r *fakeTicketRepo) CountByCreator(_ context.Context, _ int64, _ *repository.TimeRange) (int64, error) {
	return r.countByCreator, nil
}

func (r *fakeTicketRepo) CountByCreatorState(_ context.Context, _ int64, states []domain.TicketState, _ *repository.TimeRange) (int64, error) {
	var total int64
	for _, s := range states {
		total += r.countByCreatorState[s]
	}
	return total, nil
}

func (r *fakeTicketRepo) CountByAssigneeState(_ context.Context, _ int64, states []domain.TicketState, _ *repository.TimeRange) (int64, error) {
	var total int64
	for _, s := range states {
		total += r.countByAssigneeState[s]
	}
	return total, nil
}

func (r *fakeTicketRepo) AvgCloseTimeByCreator(_ context.Context, _ int64, _ *repository.TimeRange) (float64, bool, error) {
	return r.avg, r.hasAvg, nil
}

func (r *fakeTicketRepo) AvgCloseTimeByAssignee(_ context.Context, _ int64, _ *repository.TimeRange) (float64, bool, error) {
	return r.avg, r.hasAvg, nil
}

// fakeTicketIndex records indexed documents and serves canned search
// results.
type fakeTicketIndex struct {
	mu       sync.Mutex
	docs     []search.TicketDocument
	indexErr error
	result   *domain.SearchResult
	searches int
}

func (f *fakeTicketIndex) Index(_ context.Context, doc search.TicketDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.indexErr != nil {
		return f.indexErr
	}
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeTicketIndex) Search(_ context.Context, query string, _ int) (*domain.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches++
	if f.result != nil {
		return f.result, nil
	}
	return &domain.SearchResult{Query: query}, nil
}

// fakeSearchCache is an in-memory SearchCache without expiry.
type fakeSearchCache struct {
	mu      sync.Mutex
	entries map[string]*domain.SearchResult
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{entries: make(map[string]*domain.SearchResult)}
}

func (f *fakeSearchCache) Get(_ context.Context, key string) (*domain.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return res, nil
}

func (f *fakeSearchCache) Set(_ context.Context, key string, result *domain.SearchResult, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = result
	return nil
}

func (f *fakeSearchCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *fakeSearchCache) BuildKey(query string, limit int) string {
	return fmt.Sprintf("test:search:%s:%d", query, limit)
}

func (f *fakeSearchCache) Close() error { return nil }

func (f *fakeSearchCache) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// fakeMailer records the mails that would have gone out.
type fakeMailer struct {
	mu              sync.Mutex
	validationLinks []string
	resetLinks      []string
}

func (f *fakeMailer) SendEmailValidation(_ context.Context, _, _, link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validationLinks = append(f.validationLinks, link)
	return nil
}

func (f *fakeMailer) SendForgotPassword(_ context.Context, _, _, link string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLinks = append(f.resetLinks, link)
	return nil
}

// fakeBlobStorage stores blobs in memory.
type fakeBlobStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStorage) Write(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[key] = data
	return nil
}

func (f *fakeBlobStorage) Read(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, io.EOF
}

func (f *fakeBlobStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, key)
	return nil
}

func (f *fakeBlobStorage) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.blobs[key]
	return ok, nil
}

func (f *fakeBlobStorage) PublicURL(key string) string {
	return "http://blobs.test/" + key
}
