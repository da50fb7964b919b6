package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/enertrics/storefront-backend/internal/cfg"
	v1Http "github.com/enertrics/storefront-backend/internal/delivery/v1/http"
	"github.com/enertrics/storefront-backend/internal/infrastructure/kafka"
	minioInfra "github.com/enertrics/storefront-backend/internal/infrastructure/minio"
	"github.com/enertrics/storefront-backend/internal/repository/fixtures"
	fixturesConv "github.com/enertrics/storefront-backend/internal/repository/fixtures/converter"
	s3Repo "github.com/enertrics/storefront-backend/internal/repository/minio"
	"github.com/enertrics/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/enertrics/storefront-backend/internal/repository/pgdb/converter"
	"github.com/enertrics/storefront-backend/internal/repository/redis"
	redisConv "github.com/enertrics/storefront-backend/internal/repository/redis/converter"
	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/clients"
	"github.com/enertrics/storefront-backend/pkg/closer"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
	"github.com/enertrics/storefront-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает все компоненты бэкенда витрины и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	db           *postgres.PgDatabase
	redisClient  *clients.RedisClient
	producer     *kafka.Producer
	outboxWorker *kafka.OutboxWorker
	resumesInfra *minioInfra.ResumesInfrastructure
	httpSrv      *v1Http.Server
	closer       *closer.Closer

	cleanupCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(5 * time.Second),
	}

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.db = db
	a.closer.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.redisClient = redisClient
	a.closer.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	fixtureStore, err := fixtures.NewStore(fixturesConv.NewFixtureConverterImpl())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cartRepo := redis.NewCartRepo(redisClient, redisConv.NewCartConverterImpl(), cfg.Redis, log)
	submissionRepo := pgdb.NewSubmissionRepo(db.Pool, pgdbConv.NewContactSubmissionConverterImpl())
	applicationRepo := pgdb.NewApplicationRepo(db.Pool, pgdbConv.NewJobApplicationConverterImpl())
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.NewOutboxEventConverterImpl())
	resumeRepo := s3Repo.NewResumeRepo(minioClient, cfg.Minio)

	// Контекст фоновой очистки резюме живет дольше HTTP-запросов
	// и отменяется только принудительным завершением.
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	a.cleanupCancel = cleanupCancel
	a.resumesInfra = minioInfra.NewResumesInfrastructure(resumeRepo, cfg.Minio, log, cleanupCtx)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.producer = producer
	a.closer.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	a.outboxWorker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	usecases := v1Http.Usecases{
		Cart:    usecase.NewCartStore(cartRepo, log),
		Catalog: usecase.NewCatalogUC(fixtureStore, log),
		Blog:    usecase.NewBlogUC(fixtureStore, log),
		Content: usecase.NewContentUC(fixtureStore, log),
		Contact: usecase.NewContactUC(submissionRepo, outboxRepo, db.Pool, log),
		Careers: usecase.NewCareersUC(applicationRepo, outboxRepo, fixtureStore, a.resumesInfra, db.Pool, log),
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(usecases, cfg.Minio)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	return a, nil
}

// Run запускает HTTP-сервер и outbox-воркер и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	workerCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.resumesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}
	a.cleanupCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
