package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"shopfront/models"
)

// cartKeyPrefix namespaces one serialized item list per session.
const cartKeyPrefix = "cart"

// ErrNoSnapshot reports that no cart snapshot exists for a session.
var ErrNoSnapshot = errors.New("no cart snapshot")

// CartRepository is the persistence port for cart snapshots. Save
// overwrites the whole item list for a session; Clear removes it.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
	Clear(ctx context.Context, sessionID string) error
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", cartKeyPrefix, sessionID)
}

// RedisCartRepository stores snapshots in Redis.
type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	raw, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(sessionID), raw, 0).Err()
}

func (r *RedisCartRepository) Clear(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}

// FileCartRepository stores one JSON file per session under a data
// directory. Used when Redis is not configured.
type FileCartRepository struct {
	dir string
	mu  sync.Mutex
}

func NewFileCartRepository(dir string) (*FileCartRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCartRepository{dir: dir}, nil
}

func (r *FileCartRepository) path(sessionID string) string {
	// Session ids are UUIDs; strip separators anyway so the id can
	// never escape the data dir.
	safe := strings.Map(func(c rune) rune {
		if c == '/' || c == '\\' || c == '.' {
			return '-'
		}
		return c
	}, sessionID)
	return filepath.Join(r.dir, safe+".json")
}

func (r *FileCartRepository) Load(_ context.Context, sessionID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path(sessionID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FileCartRepository) Save(_ context.Context, sessionID string, items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(r.path(sessionID), raw, 0o644)
}

func (r *FileCartRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.path(sessionID))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryCartRepository keeps snapshots in process memory. Snapshots
// are serialized on write and parsed on read so it exercises the same
// round trip as the durable backends.
type MemoryCartRepository struct {
	mu        sync.Mutex
	snapshots map[string][]byte
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{snapshots: map[string][]byte{}}
}

func (r *MemoryCartRepository) Load(_ context.Context, sessionID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.snapshots[sessionID]
	if !ok {
		return nil, ErrNoSnapshot
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MemoryCartRepository) Save(_ context.Context, sessionID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[sessionID] = raw
	return nil
}

func (r *MemoryCartRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, sessionID)
	return nil
}

// Corrupt overwrites a session's snapshot with bytes that will not
// parse. Test helper for the hydration fallback.
func (r *MemoryCartRepository) Corrupt(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[sessionID] = []byte("{not json")
}
