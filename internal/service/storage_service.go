package service

import (
	"context"
	"fcc_dashboard/internal/config"
	"fcc_dashboard/internal/util"
	"fcc_dashboard/pkg/logger"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 导出产物的存放位置，key 统一使用 "/" 分隔
type StorageProvider interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	URL(key string) string
}

// LocalStorageProvider 写入本地目录；先写临时文件再改名，读者不会看到半个文件
type LocalStorageProvider struct {
	Root string
}

func (p *LocalStorageProvider) path(key string) string {
	return filepath.Join(p.Root, filepath.FromSlash(key))
}

func (p *LocalStorageProvider) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := p.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".export-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}

	return p.URL(key), nil
}

func (p *LocalStorageProvider) Remove(ctx context.Context, key string) error {
	return os.Remove(p.path(key))
}

func (p *LocalStorageProvider) URL(key string) string {
	return filepath.ToSlash(p.path(key))
}

// MinioStorageProvider 启动时确认 bucket 存在，不存在则创建
type MinioStorageProvider struct {
	Bucket string
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MinioBucket, err)
		}
		logger.Log.Info("Created export bucket", zap.String("bucket", cfg.MinioBucket))
	}

	return &MinioStorageProvider{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (p *MinioStorageProvider) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return "", err
	}
	return p.URL(key), nil
}

func (p *MinioStorageProvider) Remove(ctx context.Context, key string) error {
	return p.Client.RemoveObject(ctx, p.Bucket, key, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) URL(key string) string {
	u := *p.Client.EndpointURL()
	u.Path = path.Join("/", p.Bucket, key)
	return u.String()
}

// OSSStorageProvider 阿里云 OSS，bucket 句柄只获取一次
type OSSStorageProvider struct {
	Endpoint string
	Bucket   *oss.Bucket
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Endpoint: cfg.OSSEndpoint, Bucket: bucket}, nil
}

func (p *OSSStorageProvider) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	err := p.Bucket.PutObject(key, reader,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentLength(size),
	)
	if err != nil {
		return "", err
	}
	return p.URL(key), nil
}

func (p *OSSStorageProvider) Remove(ctx context.Context, key string) error {
	return p.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (p *OSSStorageProvider) URL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.Bucket.BucketName, p.Endpoint, key)
}

type StorageService struct {
	Provider StorageProvider
}

// NewStorageService 远端存储不可用时退回本地目录
func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Warn("minio storage unavailable, falling back to local", zap.Error(err))
		} else {
			provider = p
		}
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Warn("oss storage unavailable, falling back to local", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Root: cfg.Storage.LocalPath}
	}

	return &StorageService{Provider: provider}
}

func (s *StorageService) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.Provider.Put(ctx, key, reader, size, contentType)
}

// RemoveAll 删除一次导出写入的全部对象，导出中途失败时使用
func (s *StorageService) RemoveAll(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.Provider.Remove(ctx, key); err != nil {
			logger.Log.Warn("failed to remove export object", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *StorageService) URL(key string) string {
	return s.Provider.URL(key)
}
