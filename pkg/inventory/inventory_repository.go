package inventory

import (
	"context"

	"fridgesmart/entities"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.InventoryItem) error
		AddItems(ctx context.Context, items []*entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, userID string, category string, page, limit int) ([]*entities.InventoryItem, int64, error)
		GetAllItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error)
		ReplaceItems(ctx context.Context, userID string, items []*entities.InventoryItem) error

		// Scan records
		CreateScanRecord(ctx context.Context, scan *entities.ScanRecord) error
		GetScanRecordByID(ctx context.Context, id string) (*entities.ScanRecord, error)
		UpdateScanRecord(ctx context.Context, scan *entities.ScanRecord) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) AddItems(ctx context.Context, items []*entities.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	// Deleting an unknown id is a no-op, not an error.
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetItems(ctx context.Context, userID string, category string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	var items []*entities.InventoryItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "All" && category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Model(&entities.InventoryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	// Insertion order is part of the store contract.
	if err := query.Offset(offset).Limit(limit).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *inventoryRepository) GetAllItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) ReplaceItems(ctx context.Context, userID string, items []*entities.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entities.InventoryItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(items).Error
	})
}

func (r *inventoryRepository) CreateScanRecord(ctx context.Context, scan *entities.ScanRecord) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *inventoryRepository) GetScanRecordByID(ctx context.Context, id string) (*entities.ScanRecord, error) {
	var scan entities.ScanRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *inventoryRepository) UpdateScanRecord(ctx context.Context, scan *entities.ScanRecord) error {
	return r.db.WithContext(ctx).Save(scan).Error
}
