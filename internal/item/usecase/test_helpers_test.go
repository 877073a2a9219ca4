package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"item-service/internal/item"
	"item-service/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errDB = errors.New("db error")

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	mu     sync.Mutex
	items  map[int64]item.Item
	nextID int64

	gets      int
	lastList  repository.ListItemsOptions
	failOn    map[string]bool
	failForID int64

	// afterGet runs once a read has returned its row; beforeStatusUpdate
	// runs before a status write is applied. Both run without the lock held.
	afterGet           func(id int64)
	beforeStatusUpdate func(id int64)
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: map[int64]item.Item{}, failOn: map[string]bool{}}
}

func (m *mockRepo) seed(it item.Item) item.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	it.ID = m.nextID
	m.items[it.ID] = it
	return it
}

func (m *mockRepo) getCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets
}

func (m *mockRepo) Ping(ctx context.Context) error { return nil }

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	if m.failOn["create"] {
		return item.Item{}, repository.ErrFailedToInsert
	}
	now := time.Now()
	return m.seed(item.Item{
		Name:        opt.Name,
		Description: opt.Description,
		Status:      opt.Status,
		Email:       opt.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}), nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	m.mu.Lock()
	m.gets++
	if m.failOn["get"] {
		m.mu.Unlock()
		return item.Item{}, repository.ErrFailedToGet
	}
	it := m.items[opt.ID]
	hook := m.afterGet
	m.mu.Unlock()

	if hook != nil {
		hook(opt.ID)
	}
	return it, nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]item.Item, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastList = opt
	if m.failOn["list"] {
		return nil, 0, repository.ErrFailedToList
	}

	var all []item.Item
	for _, it := range m.items {
		if opt.Status == "" || it.Status == opt.Status {
			all = append(all, it)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := len(all)
	if opt.Offset >= len(all) {
		return []item.Item{}, total, nil
	}
	all = all[opt.Offset:]
	if opt.Limit > 0 && opt.Limit < len(all) {
		all = all[:opt.Limit]
	}
	return all, total, nil
}

func (m *mockRepo) ListAllIDs(ctx context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn["ids"] {
		return nil, repository.ErrFailedToList
	}
	ids := make([]int64, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn["update"] || (m.failForID != 0 && m.failForID == opt.ID) {
		return item.Item{}, errDB
	}
	existing, ok := m.items[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	existing.Name = opt.Name
	existing.Description = opt.Description
	existing.Status = opt.Status
	existing.Email = opt.Email
	existing.UpdatedAt = time.Now()
	m.items[opt.ID] = existing
	return existing, nil
}

func (m *mockRepo) UpdateItemStatus(ctx context.Context, opt repository.UpdateItemStatusOptions) (item.Item, error) {
	m.mu.Lock()
	hook := m.beforeStatusUpdate
	m.mu.Unlock()
	if hook != nil {
		hook(opt.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn["update"] || (m.failForID != 0 && m.failForID == opt.ID) {
		return item.Item{}, errDB
	}
	existing, ok := m.items[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	existing.Status = opt.Status
	existing.UpdatedAt = time.Now()
	m.items[opt.ID] = existing
	return existing, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn["delete"] {
		return repository.ErrFailedToDelete
	}
	delete(m.items, id)
	return nil
}
