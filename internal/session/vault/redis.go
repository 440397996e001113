package vault

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/gallo-bet-platform/pkg/domain"
)

// Redis guarda a sessão em uma única chave Redis, sem TTL: a sessão só
// expira por logout explícito.
type Redis struct {
	R   *redis.Client
	Key string
}

func NewRedis(r *redis.Client, key string) *Redis { return &Redis{R: r, Key: key} }

func (v *Redis) Load(ctx context.Context) (domain.User, bool, error) {
	b, err := v.R.Get(ctx, v.Key).Bytes()
	if err == redis.Nil {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		return domain.User{}, false, ErrCorrupted
	}
	return u, true, nil
}

func (v *Redis) Save(ctx context.Context, u domain.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return v.R.Set(ctx, v.Key, b, 0).Err()
}

func (v *Redis) Clear(ctx context.Context) error {
	return v.R.Del(ctx, v.Key).Err()
}
