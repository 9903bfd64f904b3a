package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	storage "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

// AssetService uploads admin content images (cover art) to Supabase Storage
// and returns their public URL.
type AssetService struct {
	logger *zap.Logger
}

// NewAssetService creates a new asset service
func NewAssetService(logger *zap.Logger) *AssetService {
	return &AssetService{logger: logger}
}

// UploadImage stores an uploaded image under covers/<timestamp><ext> and
// returns its public URL.
func (s *AssetService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if config.AppConfig.SupabaseURL == "" || config.AppConfig.SupabaseKey == "" {
		return "", fmt.Errorf("supabase storage is not configured")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	objectPath := fmt.Sprintf("covers/%d%s", time.Now().UnixNano(), ext)

	storageClient := storage.NewClient(config.AppConfig.SupabaseURL+"/storage/v1", config.AppConfig.SupabaseKey, nil)

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err = storageClient.UploadFile(config.AppConfig.SupabaseBucket, objectPath, &buf, options)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		config.AppConfig.SupabaseURL, config.AppConfig.SupabaseBucket, objectPath)

	s.logger.Info("image uploaded",
		zap.String("object_path", objectPath),
		zap.String("content_type", contentType))

	return publicURL, nil
}
