package minio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/infrastructure"
	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/jitter"
	"github.com/enertrics/storefront-backend/pkg/logger"

	"github.com/google/uuid"
)

// ResumesInfrastructure управляет загрузкой и очисткой файлов резюме в MinIO.
type ResumesInfrastructure struct {
	resumeRepo  usecase.ResumeRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewResumesInfrastructure(resumeRepo usecase.ResumeRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *ResumesInfrastructure {
	return &ResumesInfrastructure{
		resumeRepo:  resumeRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// UploadResume загружает резюме кандидата в MinIO и возвращает ключ объекта.
// Ключ собирается из слага вакансии, исходного имени файла и uuid,
// чтобы отклики разных кандидатов никогда не перетирали друг друга.
func (m *ResumesInfrastructure) UploadResume(ctx context.Context, req *usecase.UploadResumeReq) (*usecase.UploadResumeRes, error) {
	const op = "ResumesInfrastructure.UploadResume"

	resumeID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(req.Resume.MimeType)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("invalid mime type %s for %s: %w", req.Resume.MimeType, req.Resume.Name, err))
	}

	objKey := fmt.Sprintf("%s/%s-%s.%s", req.VacancySlug, sanitizeFileName(req.Resume.Name), resumeID, ext)
	resume := domain.NewResume(resumeID, m.cfg.BucketName, objKey, req.Resume.Data, &req.Resume.Size, &req.Resume.MimeType)

	key, err := m.resumeRepo.Upload(ctx, resume)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("upload %s failed: %w", req.Resume.Name, err))
	}

	return usecase.NewUploadResumeRes(key), nil
}

// CleanupResume запускает фоновое удаление объекта по ключу.
// Используется как компенсация, когда запись отклика в базу не прошла.
func (m *ResumesInfrastructure) CleanupResume(key string) {
	if key == "" {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKey(key)
}

// cleanupUploadedKey удаляет объект из MinIO с экспоненциальной задержкой и jitter.
func (m *ResumesInfrastructure) cleanupUploadedKey(key string) {
	defer m.wg.Done()
	const op = "ResumesInfrastructure.cleanupUploadedKey"
	m.logger.Infof("%s: Cleaning up uploaded key %s", op, key)

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for attempt := 0; attempt < 3; attempt++ {
		if err := m.resumeRepo.Delete(ctx, key); err == nil {
			return
		}

		select {
		case <-ctx.Done():
			m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
			return
		default:
		}

		if attempt < 2 {
			select {
			case <-time.After(jitter.ExponentialBackoff(time.Second, 10*time.Second, attempt, jitter.DefaultJitter)):
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
				return
			}
		}
	}

	m.logger.Warnf("cleanup gave up after retries, key=%v", key)
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *ResumesInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

// sanitizeFileName оставляет от исходного имени файла безопасную основу без расширения.
func sanitizeFileName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)

	if base == "" {
		return "resume"
	}
	return base
}
