package session

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dewatanation/admin-panel/internal/pkg/auth"
	"github.com/dewatanation/admin-panel/internal/pkg/config"
	"github.com/dewatanation/admin-panel/internal/pkg/usercontext"
)

const (
	CookieName = "dewata_sid"

	stepPasswordVerified = "password_verified"
	stepAuthenticated    = "authenticated"
)

// Store wraps the fiber session store and maps auth.State in and out of it.
// Sessions live a fixed TTL from creation and are not extended on activity.
type Store struct {
	store *fibersession.Store
	ttl   time.Duration
	now   func() time.Time
}

type Options struct {
	TTL          time.Duration
	CookieSecure bool
	// Storage nil keeps sessions in process memory.
	Storage fiber.Storage
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func New(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Store{
		store: fibersession.New(fibersession.Config{
			Storage:        opts.Storage,
			Expiration:     opts.TTL,
			KeyLookup:      "cookie:" + CookieName,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   opts.CookieSecure,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
			KeyGenerator:   uuid.NewString,
		}),
		ttl: opts.TTL,
		now: opts.Clock,
	}
}

// NewSessionStore builds the store from configuration, using Redis DB 1 when a
// cache client is available (the cache itself uses DB 0).
func NewSessionStore(cfg config.SessionConfig, cacheClient *goredis.Client) *Store {
	return New(Options{
		TTL:          cfg.TTL,
		CookieSecure: cfg.CookieSecure,
		Storage:      NewRedisStorage(cacheClient),
	})
}

// NewRedisStorage returns fiber storage on the same server as cacheClient, or nil.
func NewRedisStorage(cacheClient *goredis.Client) fiber.Storage {
	if cacheClient == nil {
		return nil
	}
	opts := cacheClient.Options()
	host := "localhost"
	port := 6379
	if h, p, err := net.SplitHostPort(opts.Addr); err == nil {
		host = h
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: opts.Password,
		Database: 1, // Separate database for sessions
		Reset:    false,
	})
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Load returns the session of the request and the login state stored in it.
// An expired session is destroyed and reported as Anonymous.
func (s *Store) Load(c *fiber.Ctx) (*fibersession.Session, auth.State, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, auth.Anonymous{}, err
	}

	created, ok := createdAt(sess)
	if !ok {
		return sess, auth.Anonymous{}, nil
	}
	if s.now().Sub(created) >= s.ttl {
		if err := sess.Destroy(); err != nil {
			return nil, auth.Anonymous{}, err
		}
		return sess, auth.Anonymous{}, nil
	}

	return sess, decodeState(sess), nil
}

// Save writes state into sess with the remaining lifetime of the session.
func (s *Store) Save(sess *fibersession.Session, state auth.State) error {
	now := s.now()
	created, ok := createdAt(sess)
	if !ok {
		created = now
		sess.Set(usercontext.KeyCreatedAt, now.Unix())
	}

	remaining := s.ttl - now.Sub(created)
	if remaining <= 0 {
		return sess.Destroy()
	}

	switch st := state.(type) {
	case auth.PasswordVerified:
		sess.Set(usercontext.KeyStep, stepPasswordVerified)
		sess.Set(usercontext.KeyUsername, st.Username)
	case auth.Authenticated:
		sess.Set(usercontext.KeyStep, stepAuthenticated)
		sess.Set(usercontext.KeyUsername, st.Username)
	default:
		sess.Delete(usercontext.KeyStep)
		sess.Delete(usercontext.KeyUsername)
	}

	sess.SetExpiry(remaining)
	return sess.Save()
}

// Rotate gives sess a new ID and drops the old one from storage.
// The lifetime restarts with the next Save.
func (s *Store) Rotate(sess *fibersession.Session) error {
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Delete(usercontext.KeyCreatedAt)
	return nil
}

// Destroy ends the session of the request. The next request starts Anonymous.
func (s *Store) Destroy(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

func createdAt(sess *fibersession.Session) (time.Time, bool) {
	switch v := sess.Get(usercontext.KeyCreatedAt).(type) {
	case int64:
		return time.Unix(v, 0), true
	case int:
		return time.Unix(int64(v), 0), true
	default:
		return time.Time{}, false
	}
}

func decodeState(sess *fibersession.Session) auth.State {
	username, _ := sess.Get(usercontext.KeyUsername).(string)
	if username == "" {
		return auth.Anonymous{}
	}
	step, _ := sess.Get(usercontext.KeyStep).(string)
	switch step {
	case stepPasswordVerified:
		return auth.PasswordVerified{Username: username}
	case stepAuthenticated:
		return auth.Authenticated{Username: username}
	default:
		return auth.Anonymous{}
	}
}
