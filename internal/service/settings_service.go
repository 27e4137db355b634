package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
)

type SettingsService struct {
	repo        *repository.SettingsRepository
	minioClient *minio.Client
	bucketName  string
}

func NewSettingsService(repo *repository.SettingsRepository, minioClient *minio.Client, bucketName string) *SettingsService {
	return &SettingsService{repo: repo, minioClient: minioClient, bucketName: bucketName}
}

type UpdateSettingsRequest struct {
	CompanyName  string `json:"company_name"`
	CNPJ         string `json:"cnpj"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	FooterText   string `json:"footer_text"`
}

func (s *SettingsService) Get(ctx context.Context) (*entity.CompanySettings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*entity.CompanySettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if req.CompanyName != "" {
		settings.CompanyName = req.CompanyName
	}
	if req.CNPJ != "" {
		settings.CNPJ = req.CNPJ
	}
	if req.ContactEmail != "" {
		settings.ContactEmail = req.ContactEmail
	}
	if req.Phone != "" {
		settings.Phone = req.Phone
	}
	if req.Address != "" {
		settings.Address = req.Address
	}
	if req.FooterText != "" {
		settings.FooterText = req.FooterText
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// UploadLogo stores the company logo in object storage and records its
// key on the settings singleton.
func (s *SettingsService) UploadLogo(ctx context.Context, fileName, contentType string, reader io.Reader, size int64) (*entity.CompanySettings, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("object storage not configured")
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	ext := strings.ToLower(path.Ext(fileName))
	objectName := fmt.Sprintf("logo/%s%s", uuid.New().String(), ext)

	_, err = s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	settings.LogoKey = objectName
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// Logo streams the stored logo from object storage.
func (s *SettingsService) Logo(ctx context.Context) (io.ReadCloser, string, error) {
	if s.minioClient == nil {
		return nil, "", fmt.Errorf("object storage not configured")
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load settings: %w", err)
	}
	if settings.LogoKey == "" {
		return nil, "", fmt.Errorf("no logo uploaded")
	}

	obj, err := s.minioClient.GetObject(ctx, s.bucketName, settings.LogoKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("fetch logo: %w", err)
	}
	return obj, settings.LogoKey, nil
}
