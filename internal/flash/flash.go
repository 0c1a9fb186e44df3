package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/articleboard/articleboard/internal/logger"
	"github.com/articleboard/articleboard/internal/models"
)

// Store keeps one-shot flash notices in Redis, one list per visitor.
// Notices expire on their own if the visitor never loads another page.
type Store struct {
	client *redis.Client
	exp    time.Duration
}

// New creates a flash store with the given notice lifetime.
func New(client *redis.Client, expiration time.Duration) *Store {
	return &Store{
		client: client,
		exp:    expiration,
	}
}

func key(visitorID string) string {
	return fmt.Sprintf("flash:%s", visitorID)
}

// Push appends a flash notice to the visitor's pending list.
func (s *Store) Push(ctx context.Context, visitorID string, f models.Flash) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}

	k := key(visitorID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, k, data)
	pipe.Expire(ctx, k, s.exp)
	_, err = pipe.Exec(ctx)

	logger.Log.Infow(
		"key", k,
		"flash", f,
		"error", err,
	)

	return err
}

// PopAll returns and clears every pending notice for the visitor.
func (s *Store) PopAll(ctx context.Context, visitorID string) ([]models.Flash, error) {
	k := key(visitorID)

	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, k, 0, -1)
	pipe.Del(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		logger.Log.Infow(
			"key", k,
			"error", err,
		)
		return nil, err
	}

	raw := rangeCmd.Val()
	flashes := make([]models.Flash, 0, len(raw))
	for _, item := range raw {
		var f models.Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			logger.Log.Errorw("malformed flash entry", "key", k, "error", err)
			continue
		}
		flashes = append(flashes, f)
	}

	return flashes, nil
}
