package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessScanImage     = "image analyzed successfully"
	MessageSuccessGetScanResult = "scan result retrieved successfully"

	MessageFailedScanImage     = "failed to analyze image"
	MessageFailedGetScanResult = "failed to retrieve scan result"

	// ErrAnalysisFailed covers every transport and parse failure of the
	// hosted model. Callers get no detail and no partial result; the user
	// retries from scratch.
	ErrAnalysisFailed = errors.New("analysis failed")

	ErrScanNotFound = errors.New("scan record not found")
)

type (
	ScanImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// ScannedItem is a preview item produced by image analysis. It is not
	// part of the inventory until the user commits it via save-scanned.
	ScannedItem struct {
		Name                string     `json:"name" validate:"required"`
		Quantity            string     `json:"quantity"`
		Category            string     `json:"category"`
		DaysUntilExpiration int        `json:"days_until_expiration"`
		ExpirationDate      string     `json:"expiration_date"` // YYYY-MM-DD
		Status              string     `json:"status"`
		EstimatedValue      float64    `json:"estimated_value"`
		AIAnalysis          AIAnalysis `json:"ai_analysis"`
	}

	ScanImageResponse struct {
		ScanID   string        `json:"scan_id"`
		ImageURL string        `json:"image_url"`
		Status   string        `json:"status"`
		Items    []ScannedItem `json:"items"`
	}

	ScanResultResponse struct {
		ScanID   string        `json:"scan_id"`
		ImageURL string        `json:"image_url"`
		Status   string        `json:"status"`
		Items    []ScannedItem `json:"items"`
	}
)
