package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/textproto"
	"testing"

	"fridgesmart/domain"
	"fridgesmart/entities"
	"fridgesmart/pkg/analysis"
	"fridgesmart/pkg/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	items []domain.ScannedItem
	err   error
}

func (g *stubGateway) AnalyzeImage(ctx context.Context, image []byte, mimeType string) ([]domain.ScannedItem, error) {
	return g.items, g.err
}

type stubStorage struct{}

func (stubStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	return folder + "/" + fileName + ".jpg", nil
}

func (stubStorage) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (stubStorage) DeleteFile(objectKey string) error { return nil }

func (stubStorage) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.us-east-1.amazonaws.com/" + objectKey
}

func (stubStorage) GetObjectKeyFromLink(link string) string { return "" }

func imageFileHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="fridge.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("not-a-real-jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestScanImageProcessed(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	gateway := &stubGateway{items: []domain.ScannedItem{
		{Name: "Spinach", DaysUntilExpiration: 1, Status: domain.StatusExpiring, EstimatedValue: 4.99},
	}}
	service := analysis.NewAnalysisService(repo, gateway, stubStorage{})

	userID := uuid.NewString()
	res, err := service.ScanImage(ctx, domain.ScanImageRequest{Image: imageFileHeader(t)}, userID)
	require.NoError(t, err)

	assert.Equal(t, analysis.ScanStatusProcessed, res.Status)
	assert.Contains(t, res.ImageURL, "scans/")
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Spinach", res.Items[0].Name)

	scan, err := repo.GetScanRecordByID(ctx, res.ScanID)
	require.NoError(t, err)
	assert.Equal(t, analysis.ScanStatusProcessed, scan.Status)
	assert.NotEmpty(t, scan.Results)
}

func TestScanImageGatewayFailure(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	gateway := &stubGateway{err: domain.ErrAnalysisFailed}
	service := analysis.NewAnalysisService(repo, gateway, stubStorage{})

	_, err := service.ScanImage(ctx, domain.ScanImageRequest{Image: imageFileHeader(t)}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
}

func TestGetScanResult(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	service := analysis.NewAnalysisService(repo, &stubGateway{}, stubStorage{})

	userID := uuid.New()
	items := []domain.ScannedItem{{Name: "Yogurt", DaysUntilExpiration: 2}}
	results, err := json.Marshal(items)
	require.NoError(t, err)

	scan := &entities.ScanRecord{
		ID:       uuid.New(),
		UserID:   userID,
		ImageURL: "https://bucket.s3.us-east-1.amazonaws.com/scans/x.jpg",
		Status:   analysis.ScanStatusProcessed,
		Results:  string(results),
	}
	require.NoError(t, repo.CreateScanRecord(ctx, scan))

	res, err := service.GetScanResult(ctx, scan.ID.String(), userID.String())
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Yogurt", res.Items[0].Name)
}

func TestGetScanResultMalformedBlob(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	service := analysis.NewAnalysisService(repo, &stubGateway{}, stubStorage{})

	userID := uuid.New()
	scan := &entities.ScanRecord{
		ID:      uuid.New(),
		UserID:  userID,
		Status:  analysis.ScanStatusProcessed,
		Results: "{{{corrupted",
	}
	require.NoError(t, repo.CreateScanRecord(ctx, scan))

	// A corrupted blob reads as zero items, not an error.
	res, err := service.GetScanResult(ctx, scan.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, analysis.ScanStatusProcessed, res.Status)
}

func TestGetScanResultUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	service := analysis.NewAnalysisService(repo, &stubGateway{}, stubStorage{})

	_, err := service.GetScanResult(ctx, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrScanNotFound)
}

func TestGetScanResultOtherUser(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	service := analysis.NewAnalysisService(repo, &stubGateway{}, stubStorage{})

	scan := &entities.ScanRecord{ID: uuid.New(), UserID: uuid.New(), Status: analysis.ScanStatusProcessed}
	require.NoError(t, repo.CreateScanRecord(ctx, scan))

	_, err := service.GetScanResult(ctx, scan.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}
