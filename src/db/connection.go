package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/grupo09/paises-backend/src/config"
	"github.com/grupo09/paises-backend/src/repository"
)

const (
	BackendMongo    = "mongodb"
	BackendPostgres = "postgres"

	defaultDatabase = "paises"
)

// Handle is a ready to use store: connected, pinged and with its schema in place.
type Handle struct {
	Backend    string
	Repository repository.CountryRepository
	close      func(ctx context.Context) error
}

// NewHandle wraps a repository and the function releasing its connections.
func NewHandle(backend string, repo repository.CountryRepository, closeFn func(ctx context.Context) error) *Handle {
	return &Handle{Backend: backend, Repository: repo, close: closeFn}
}

// Close releases the underlying connection pool.
func (h *Handle) Close(ctx context.Context) error {
	if h.close == nil {
		return nil
	}
	return h.close(ctx)
}

// Backend returns which store the DSN points at.
func Backend(dsn string) (string, error) {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return "", fmt.Errorf("database DSN has no scheme")
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

// Connect opens the store selected by cfg.DSN. Any error here is fatal for
// the caller.
func Connect(ctx context.Context, cfg *config.Config) (*Handle, error) {
	backend, err := Backend(cfg.DSN)
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendMongo:
		return connectMongo(ctx, cfg)
	default:
		return connectPostgres(ctx, cfg)
	}
}

func connectMongo(ctx context.Context, cfg *config.Config) (*Handle, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	repo := repository.NewMongoCountryRepository(client.Database(DatabaseName(cfg.DSN)), cfg.Collection, cfg.TenantTag)
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.WithField("database", DatabaseName(cfg.DSN)).Println("MongoDB connected successfully!")

	return NewHandle(BackendMongo, repo, client.Disconnect), nil
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*Handle, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to Postgres: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging Postgres: %w", err)
	}

	repo := repository.NewGormCountryRepository(gormDB, cfg.Collection, cfg.TenantTag)
	if err := repo.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Println("Postgres connected successfully!")

	return NewHandle(BackendPostgres, repo, func(context.Context) error {
		return sqlDB.Close()
	}), nil
}

// DatabaseName returns the database named in a MongoDB URI, or the default
// one when the URI names none.
func DatabaseName(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return defaultDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultDatabase
}
