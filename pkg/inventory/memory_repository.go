package inventory

import (
	"context"
	"sync"

	"fridgesmart/entities"

	"gorm.io/gorm"
)

// memoryRepository is the in-memory storage backend. It preserves insertion
// order and backs the test suites; production wiring uses the GORM
// repository instead.
type memoryRepository struct {
	mu    sync.Mutex
	items []*entities.InventoryItem
	scans map[string]*entities.ScanRecord
}

func NewMemoryRepository() InventoryRepository {
	return &memoryRepository{
		scans: make(map[string]*entities.ScanRecord),
	}
}

func (r *memoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *memoryRepository) AddItems(ctx context.Context, items []*entities.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		copied := *item
		r.items = append(r.items, &copied)
	}
	return nil
}

func (r *memoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID.String() == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == item.ID {
			copied := *item
			r.items[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memoryRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID.String() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	// no-op when the id is unknown
	return nil
}

func (r *memoryRepository) GetItems(ctx context.Context, userID string, category string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []*entities.InventoryItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if category != "All" && category != "" && item.Category != category {
			continue
		}
		copied := *item
		filtered = append(filtered, &copied)
	}

	count := int64(len(filtered))
	start := (page - 1) * limit
	if start >= len(filtered) {
		return nil, count, nil
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], count, nil
}

func (r *memoryRepository) GetAllItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.InventoryItem
	for _, item := range r.items {
		if item.UserID.String() == userID {
			copied := *item
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memoryRepository) ReplaceItems(ctx context.Context, userID string, items []*entities.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var kept []*entities.InventoryItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			kept = append(kept, item)
		}
	}
	for _, item := range items {
		copied := *item
		kept = append(kept, &copied)
	}
	r.items = kept
	return nil
}

func (r *memoryRepository) CreateScanRecord(ctx context.Context, scan *entities.ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *scan
	r.scans[scan.ID.String()] = &copied
	return nil
}

func (r *memoryRepository) GetScanRecordByID(ctx context.Context, id string) (*entities.ScanRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scan, ok := r.scans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *scan
	return &copied, nil
}

func (r *memoryRepository) UpdateScanRecord(ctx context.Context, scan *entities.ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *scan
	r.scans[scan.ID.String()] = &copied
	return nil
}
