package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fridgesmart/domain"
	"fridgesmart/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// co2PerItemLbs is the estimated CO2 footprint of one rescued grocery item.
const co2PerItemLbs = 2.2

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.InventoryItemResponse, error)
		DeleteItem(ctx context.Context, id string, userID string) error
		GetItems(ctx context.Context, userID string, category string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) ([]domain.InventoryItemResponse, error)
		LoadDemoItems(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error)
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
		GetImpactStats(ctx context.Context, userID string) (domain.ImpactStatsResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.InventoryItemResponse, error) {
	if req.Quantity == "" {
		return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	category := req.Category
	if category == "" {
		category = "Other"
	}

	now := time.Now()
	item := &entities.InventoryItem{
		ID:                  uuid.New(),
		UserID:              userUUID,
		Name:                req.Name,
		Quantity:            req.Quantity,
		Category:            category,
		DaysUntilExpiration: req.DaysUntilExpiration,
		ExpirationDate:      now.AddDate(0, 0, req.DaysUntilExpiration),
		Status:              ClassifyManual(req.DaysUntilExpiration),
		EstimatedValue:      0,
		AddedManually:       true,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.InventoryItemResponse, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.InventoryItemResponse{}, domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.DaysUntilExpiration != nil {
		// Editing days recomputes both the derived status and the calendar
		// expiration date as today + days.
		item.DaysUntilExpiration = *req.DaysUntilExpiration
		item.ExpirationDate = time.Now().AddDate(0, 0, *req.DaysUntilExpiration)
		item.Status = ClassifyManual(*req.DaysUntilExpiration)
	}
	item.UpdatedAt = time.Now()

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string, userID string) error {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deleting a missing item is a no-op.
			return nil
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) GetItems(ctx context.Context, userID string, category string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetItems(ctx, userID, category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, count, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.InventoryItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) ([]domain.InventoryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	items := make([]*entities.InventoryItem, 0, len(req.Items))
	for _, scanned := range req.Items {
		status := scanned.Status
		if status == "" {
			status = ClassifyFreshness("", scanned.DaysUntilExpiration)
		}

		expirationDate := now.AddDate(0, 0, scanned.DaysUntilExpiration)
		if scanned.ExpirationDate != "" {
			if parsed, parseErr := time.Parse("2006-01-02", scanned.ExpirationDate); parseErr == nil {
				expirationDate = parsed
			}
		}

		category := scanned.Category
		if category == "" {
			category = "Other"
		}

		analysisJSON, _ := json.Marshal(scanned.AIAnalysis)

		item := &entities.InventoryItem{
			ID:                  uuid.New(),
			UserID:              userUUID,
			Name:                scanned.Name,
			Quantity:            scanned.Quantity,
			Category:            category,
			DaysUntilExpiration: scanned.DaysUntilExpiration,
			ExpirationDate:      expirationDate,
			Status:              status,
			EstimatedValue:      scanned.EstimatedValue,
			AIAnalysis:          string(analysisJSON),
			Timestamp: entities.Timestamp{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if req.ScanID != "" {
			scanID := req.ScanID
			item.ScanRecordID = &scanID
		}
		items = append(items, item)
	}

	if err := s.inventoryRepository.AddItems(ctx, items); err != nil {
		return nil, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

func (s *inventoryService) LoadDemoItems(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// Demo mode replaces the whole inventory rather than appending.
	items := DemoItems(userUUID, time.Now())
	if err := s.inventoryRepository.ReplaceItems(ctx, userID, items); err != nil {
		return nil, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		stats.TotalValue += item.EstimatedValue
		if item.DaysUntilExpiration < 0 {
			stats.ExpiredItems++
		}
		switch item.Status {
		case domain.StatusFresh:
			stats.FreshItems++
		case domain.StatusGood:
			stats.GoodItems++
		case domain.StatusUseSoon, domain.StatusExpiring:
			stats.ExpiringItems++
			stats.ValueAtRisk += item.EstimatedValue
		}
	}
	return stats, nil
}

func (s *inventoryService) GetImpactStats(ctx context.Context, userID string) (domain.ImpactStatsResponse, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	stats := domain.ImpactStatsResponse{ItemsTracked: len(items)}
	rescued := 0
	for _, item := range items {
		if item.DaysUntilExpiration >= 0 {
			rescued++
			stats.MoneySaved += item.EstimatedValue
		}
	}
	if len(items) > 0 {
		stats.WasteReduction = float64(rescued) / float64(len(items)) * 100
	}
	stats.CO2SavedLbs = float64(rescued) * co2PerItemLbs
	return stats, nil
}

func toItemResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	res := domain.InventoryItemResponse{
		ID:                  item.ID.String(),
		Name:                item.Name,
		Quantity:            item.Quantity,
		Category:            item.Category,
		DaysUntilExpiration: item.DaysUntilExpiration,
		ExpirationDate:      item.ExpirationDate,
		Status:              item.Status,
		EstimatedValue:      item.EstimatedValue,
		AddedDate:           item.CreatedAt,
	}
	if item.AIAnalysis != "" {
		var analysis domain.AIAnalysis
		if err := json.Unmarshal([]byte(item.AIAnalysis), &analysis); err == nil {
			res.AIAnalysis = &analysis
		}
	}
	return res
}
