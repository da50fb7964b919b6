package minio

import (
	"bytes"
	"context"

	"github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ResumeRepo реализует репозиторий файлов резюме поверх MinIO.
type ResumeRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewResumeRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ResumeRepo {
	return &ResumeRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает резюме в MinIO и возвращает ключ объекта.
func (r *ResumeRepo) Upload(ctx context.Context, resume *domain.Resume) (string, error) {
	reader := bytes.NewReader(resume.Bytes)

	info, err := r.mc.PutObject(ctx, r.cfg.BucketName, resume.ObjectKey, reader, *resume.Size, minio.PutObjectOptions{
		ContentType: *resume.MimeType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (r *ResumeRepo) Delete(ctx context.Context, key string) error {
	if err := r.mc.RemoveObject(ctx, r.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
