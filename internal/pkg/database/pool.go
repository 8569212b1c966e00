package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dewatanation/admin-panel/internal/pkg/metrics"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// dialTimeout bounds the TCP connect to MySQL.
const dialTimeout = 5 * time.Second

var ErrNotConnected = errors.New("database not connected")

// Settings describes where the game server database lives.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN renders the settings as a go-sql-driver/mysql data source name.
func (s Settings) DSN() string {
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s"
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%s",
		s.User, s.Password, s.Host, s.Port, s.Name, dialTimeout)
}

// Merge returns s with every non-empty field of override applied.
func (s Settings) Merge(override Settings) Settings {
	if override.Host != "" {
		s.Host = override.Host
	}
	if override.Port != "" {
		s.Port = override.Port
	}
	if override.User != "" {
		s.User = override.User
	}
	if override.Password != "" {
		s.Password = override.Password
	}
	if override.Name != "" {
		s.Name = override.Name
	}
	return s
}

// Dialector builds the gorm dialector for a set of settings.
type Dialector func(Settings) gorm.Dialector

func MySQLDialector(s Settings) gorm.Dialector {
	return mysql.New(mysql.Config{
		DSN:                       s.DSN(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	})
}

// Pool owns the single handle to the game database and reconnects on demand.
// The handle itself is a database/sql pool; Pool only guards replacing it.
type Pool struct {
	mu       sync.Mutex
	settings Settings
	dialect  Dialector
	db       *gorm.DB
	dials    singleflight.Group
	log      zerolog.Logger
}

func NewPool(settings Settings, log zerolog.Logger) *Pool {
	return NewPoolWithDialector(settings, MySQLDialector, log)
}

func NewPoolWithDialector(settings Settings, dialect Dialector, log zerolog.Logger) *Pool {
	return &Pool{
		settings: settings,
		dialect:  dialect,
		log:      log,
	}
}

// Connect tries to open the database at startup. Failing is not fatal;
// the next Conn call tries again.
func (p *Pool) Connect(ctx context.Context) error {
	attempt := 0
	op := func() error {
		attempt++
		_, err := p.Conn(ctx)
		if err != nil {
			p.log.Warn().Err(err).Msgf("Failed to connect to database (try %d/%d)", attempt, maxRetries)
		}
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(retryDelay), maxRetries-1), ctx)
	return backoff.Retry(op, policy)
}

// Conn returns the live handle, opening it first if needed.
func (p *Pool) Conn(ctx context.Context) (*gorm.DB, error) {
	db, err := p.handle(ctx)
	if err != nil {
		return nil, err
	}
	return db.WithContext(ctx), nil
}

// handle returns the current base handle. Callers that find none share a single
// dial, which runs without the pool lock held; ctx only bounds the wait.
func (p *Pool) handle(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	db, settings := p.db, p.settings
	p.mu.Unlock()
	if db != nil {
		return db, nil
	}

	ch := p.dials.DoChan("open", func() (any, error) {
		return p.install(settings)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*gorm.DB), nil
	}
}

// install dials settings and makes the result current, unless a Reconnect
// replaced the handle or the settings while the dial was pending.
func (p *Pool) install(settings Settings) (*gorm.DB, error) {
	db, err := p.open(settings)
	if err != nil {
		metrics.DBConnected.Set(0)
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil && p.settings == settings {
		p.db = db
		metrics.DBConnected.Set(1)
		p.log.Info().Str("host", settings.Host).Str("database", settings.Name).Msg("Database connected")
		return db, nil
	}
	_ = closeHandle(db)
	if p.db != nil {
		return p.db, nil
	}
	return nil, fmt.Errorf("%w: settings changed while dialing", ErrNotConnected)
}

// Ping reports whether the database answers. A failed ping drops the handle.
func (p *Pool) Ping(ctx context.Context) error {
	db, err := p.handle(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.WithContext(ctx).DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		p.drop(db)
		return fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	return nil
}

// drop closes db if it is still the current handle. A handle that was already
// replaced is left to whoever replaced it.
func (p *Pool) drop(db *gorm.DB) {
	p.mu.Lock()
	current := p.db == db
	if current {
		p.db = nil
	}
	p.mu.Unlock()

	if current {
		metrics.DBConnected.Set(0)
		_ = closeHandle(db)
	}
}

// Reconnect replaces the handle. Empty fields of override keep the current settings.
// The new settings are only kept when the connection succeeds.
func (p *Pool) Reconnect(ctx context.Context, override Settings) error {
	p.mu.Lock()
	next := p.settings.Merge(override)
	p.mu.Unlock()

	db, err := p.open(next)
	if err != nil {
		metrics.DBReconnects.WithLabelValues("failure").Inc()
		return err
	}

	p.mu.Lock()
	prev := p.db
	p.db, p.settings = db, next
	p.mu.Unlock()

	_ = closeHandle(prev)
	metrics.DBConnected.Set(1)
	metrics.DBReconnects.WithLabelValues("success").Inc()
	p.log.Info().Str("host", next.Host).Str("database", next.Name).Msg("Database reconnected")
	return nil
}

// Settings returns the settings the pool connects with.
func (p *Pool) Settings() Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

func (p *Pool) Close() error {
	p.mu.Lock()
	db := p.db
	p.db = nil
	p.mu.Unlock()
	return closeHandle(db)
}

func (p *Pool) open(settings Settings) (*gorm.DB, error) {
	db, err := gorm.Open(p.dialect(settings), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	return db, nil
}

func closeHandle(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
