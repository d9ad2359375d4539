package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"fridgesmart/domain"
	"fridgesmart/entities"
	"fridgesmart/internal/logger"
	"fridgesmart/internal/utils/storage"
	"fridgesmart/pkg/inventory"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ScanStatusPending   = "Pending"
	ScanStatusProcessed = "Processed"
	ScanStatusFailed    = "Failed"
)

type (
	AnalysisService interface {
		ScanImage(ctx context.Context, req domain.ScanImageRequest, userID string) (domain.ScanImageResponse, error)
		GetScanResult(ctx context.Context, scanID string, userID string) (domain.ScanResultResponse, error)
	}

	analysisService struct {
		inventoryRepository inventory.InventoryRepository
		gateway             VisionGateway
		awsS3               storage.AwsS3
	}
)

func NewAnalysisService(inventoryRepository inventory.InventoryRepository, gateway VisionGateway, awsS3 storage.AwsS3) AnalysisService {
	return &analysisService{
		inventoryRepository: inventoryRepository,
		gateway:             gateway,
		awsS3:               awsS3,
	}
}

// ScanImage uploads the photo, runs it through the vision gateway and stores
// the scan record. The analysis itself is all-or-nothing: a failed call
// leaves a Failed record and surfaces ErrAnalysisFailed with no items.
func (s *analysisService) ScanImage(ctx context.Context, req domain.ScanImageRequest, userID string) (domain.ScanImageResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ScanImageResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()

	objectKey, err := s.awsS3.UploadFile(scanID.String(), req.Image, "scans", storage.AllowImage...)
	if err != nil {
		return domain.ScanImageResponse{}, err
	}
	imageURL := s.awsS3.GetPublicLinkKey(objectKey)

	scan := &entities.ScanRecord{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   ScanStatusPending,
	}
	if err := s.inventoryRepository.CreateScanRecord(ctx, scan); err != nil {
		return domain.ScanImageResponse{}, err
	}

	file, err := req.Image.Open()
	if err != nil {
		return domain.ScanImageResponse{}, err
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return domain.ScanImageResponse{}, err
	}

	items, err := s.gateway.AnalyzeImage(ctx, imageBytes, req.Image.Header.Get("Content-Type"))
	if err != nil {
		scan.Status = ScanStatusFailed
		if updateErr := s.inventoryRepository.UpdateScanRecord(ctx, scan); updateErr != nil {
			logger.Error("failed to mark scan as failed", "scan_id", scanID.String(), "error", updateErr)
		}
		return domain.ScanImageResponse{}, domain.ErrAnalysisFailed
	}

	resultsJSON, err := json.Marshal(items)
	if err != nil {
		return domain.ScanImageResponse{}, err
	}
	scan.Status = ScanStatusProcessed
	scan.Results = string(resultsJSON)
	if err := s.inventoryRepository.UpdateScanRecord(ctx, scan); err != nil {
		return domain.ScanImageResponse{}, err
	}

	return domain.ScanImageResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   ScanStatusProcessed,
		Items:    items,
	}, nil
}

func (s *analysisService) GetScanResult(ctx context.Context, scanID string, userID string) (domain.ScanResultResponse, error) {
	scan, err := s.inventoryRepository.GetScanRecordByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanResultResponse{}, domain.ErrScanNotFound
		}
		return domain.ScanResultResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ScanResultResponse{}, domain.ErrUnauthorizedAccess
	}

	// A stored blob that no longer parses reads as zero items. The scan
	// itself is still returned.
	items := []domain.ScannedItem{}
	if scan.Results != "" {
		if err := json.Unmarshal([]byte(scan.Results), &items); err != nil {
			logger.Warn("discarding malformed scan results", "scan_id", scanID)
			items = []domain.ScannedItem{}
		}
	}

	return domain.ScanResultResponse{
		ScanID:   scan.ID.String(),
		ImageURL: scan.ImageURL,
		Status:   scan.Status,
		Items:    items,
	}, nil
}
