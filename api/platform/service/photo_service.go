package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/media"
)

// PhotoService stores listing photos
type PhotoService interface {
	Upload(filename string, reader io.Reader, size int64, contentType string) (*media.PhotoInfo, error)
	Delete(path string) error
}

// NewPhotoService creates the storage backend the config asks for
func NewPhotoService(config lib.Config, logger lib.Logger) PhotoService {
	ossConfig := config.OSS

	if ossConfig != nil && ossConfig.IsMinio() && ossConfig.Minio != nil {
		svc, err := NewMinioPhotoService(ossConfig.Minio, logger)
		if err == nil {
			return svc
		}
		logger.Zap.Errorf("failed to create minio photo service, falling back to local: %v", err)
	}

	storagePath := "./uploads"
	baseURL := "/uploads"
	if ossConfig != nil && ossConfig.Local != nil {
		if ossConfig.Local.StoragePath != "" {
			storagePath = ossConfig.Local.StoragePath
		}
		if ossConfig.Local.BaseURL != "" {
			baseURL = ossConfig.Local.BaseURL
		}
	}

	return NewLocalPhotoService(storagePath, baseURL, logger)
}

// LocalPhotoService keeps photos on the local disk, grouped by date
type LocalPhotoService struct {
	storagePath string
	baseURL     string
	logger      lib.Logger
}

// NewLocalPhotoService creates a disk-backed photo service
func NewLocalPhotoService(storagePath, baseURL string, logger lib.Logger) *LocalPhotoService {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		logger.Zap.Errorf("failed to create storage directory: %v", err)
	}

	return &LocalPhotoService{
		storagePath: storagePath,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      logger,
	}
}

func (s *LocalPhotoService) Upload(filename string, reader io.Reader, size int64, contentType string) (*media.PhotoInfo, error) {
	newFilename := uuid.New().String() + filepath.Ext(filename)
	dateFolder := time.Now().Format("20060102")
	folderPath := filepath.Join(s.storagePath, dateFolder)

	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return nil, errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}

	file, err := os.Create(filepath.Join(folderPath, newFilename))
	if err != nil {
		return nil, errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		return nil, errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}

	return &media.PhotoInfo{
		Name: filename,
		URL:  s.baseURL + "/" + dateFolder + "/" + newFilename,
		Size: written,
	}, nil
}

func (s *LocalPhotoService) Delete(path string) error {
	if path == "" {
		return errors.MediaFileRequired
	}

	relative := strings.TrimPrefix(path, s.baseURL+"/")

	// keep deletions inside the storage directory
	fullPath, err := filepath.Abs(filepath.Join(s.storagePath, relative))
	if err != nil {
		return errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}
	root, err := filepath.Abs(s.storagePath)
	if err != nil {
		return errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}
	rel, err := filepath.Rel(root, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.MediaPathNotAllowed
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}
	if info.IsDir() {
		return errors.MediaFileRequired
	}

	return os.Remove(fullPath)
}

// MinioPhotoService stores photos in a MinIO bucket
type MinioPhotoService struct {
	client  *minio.Client
	bucket  string
	baseURL string
	logger  lib.Logger
}

// NewMinioPhotoService creates a MinIO-backed photo service
func NewMinioPhotoService(config *lib.MinioOSSConfig, logger lib.Logger) (*MinioPhotoService, error) {
	endpoint := config.Endpoint
	useSSL := config.UseSSL || strings.HasPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}

	svc := &MinioPhotoService{
		client:  client,
		bucket:  config.Bucket,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		logger:  logger,
	}

	if err := svc.ensureBucket(); err != nil {
		logger.Zap.Warnf("failed to ensure bucket %q: %v", svc.bucket, err)
	}

	return svc, nil
}

func (s *MinioPhotoService) ensureBucket() error {
	ctx := context.Background()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *MinioPhotoService) Upload(filename string, reader io.Reader, size int64, contentType string) (*media.PhotoInfo, error) {
	objectName := time.Now().Format("20060102") + "/" + uuid.New().String() + filepath.Ext(filename)

	info, err := s.client.PutObject(context.Background(), s.bucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}

	url := s.baseURL + "/" + s.bucket + "/" + objectName
	if s.baseURL == "" {
		url = "/" + s.bucket + "/" + objectName
	}

	return &media.PhotoInfo{
		Name: filename,
		URL:  url,
		Size: info.Size,
	}, nil
}

func (s *MinioPhotoService) Delete(path string) error {
	if path == "" {
		return errors.MediaFileRequired
	}

	objectName := strings.TrimPrefix(path, s.baseURL+"/"+s.bucket+"/")
	objectName = strings.TrimPrefix(objectName, "/"+s.bucket+"/")

	err := s.client.RemoveObject(context.Background(), s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(errors.MediaStorageUnavailable, err.Error())
	}

	return nil
}
