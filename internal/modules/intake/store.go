// README: Trip form store backed by Redis key/value.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// formKeyPrefix namespaces the single fixed key each client owns. The value
// is replaced wholesale on every submission; there is no merge, no version
// tag, and no expiry.
const formKeyPrefix = "intake:%s:tripFormData"

// ErrNoTripData is returned when a client has never submitted the form (or
// the store lost the key). Consumers surface it without calling upstream.
var ErrNoTripData = errors.New("no trip data found")

// Store persists the canonical TripRequest between the form submission and
// the results view reading it back.
type Store interface {
	SaveTripRequest(ctx context.Context, clientID string, req TripRequest) error
	LoadTripRequest(ctx context.Context, clientID string) (TripRequest, error)
}

type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(redis *redis.Client) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) SaveTripRequest(ctx context.Context, clientID string, req TripRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, formKey(clientID), payload, 0).Err()
}

func (s *RedisStore) LoadTripRequest(ctx context.Context, clientID string) (TripRequest, error) {
	val, err := s.redis.Get(ctx, formKey(clientID)).Result()
	if err == redis.Nil {
		return TripRequest{}, ErrNoTripData
	}
	if err != nil {
		return TripRequest{}, err
	}
	var req TripRequest
	if err := json.Unmarshal([]byte(val), &req); err != nil {
		return TripRequest{}, err
	}
	return req, nil
}

func formKey(clientID string) string {
	return fmt.Sprintf(formKeyPrefix, clientID)
}
