package session

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// TokenKey is where the bearer token is persisted.
const TokenKey = "examadmin:session:token"

// Store persists the bearer token across restarts.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// RedisStore keeps the token in Redis but fails safe by treating
// connectivity errors as an empty store.
type RedisStore struct {
	client *redis.Client
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed token store.
func NewRedisStore(addr, password string, db int) *RedisStore {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &RedisStore{client: redis.NewClient(opts)}
}

// Load returns the stored token or "" if missing or redis unavailable.
func (s *RedisStore) Load(ctx context.Context) (string, error) {
	if s == nil || s.client == nil {
		return "", nil
	}
	token, err := s.client.Get(ctx, TokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		// fail safe: behave like a fresh session
		log.Printf("session store: load token: %v", err)
		return "", nil
	}
	return token, nil
}

// Save stores the token without expiry; the backend decides when it is stale.
func (s *RedisStore) Save(ctx context.Context, token string) error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := s.client.Set(ctx, TokenKey, token, 0).Err(); err != nil {
		log.Printf("session store: save token: %v", err)
	}
	return nil
}

// Clear removes the token, ignoring redis errors.
func (s *RedisStore) Clear(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := s.client.Del(ctx, TokenKey).Err(); err != nil {
		log.Printf("session store: clear token: %v", err)
	}
	return nil
}

// Close releases the redis connection pool.
func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-process token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
