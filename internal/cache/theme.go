package cache

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeStore keeps each user's light/dark preference as a plain string
// under barberflow:theme:<id>, the server-side stand-in for the old
// browser storage key.
type ThemeStore struct {
	client *redis.Client
}

func NewThemeStore(client *redis.Client) *ThemeStore {
	return &ThemeStore{client: client}
}

func themeKey(userID uint) string {
	return fmt.Sprintf("barberflow:theme:%d", userID)
}

func (s *ThemeStore) Get(ctx context.Context, userID uint) (string, error) {
	v, err := s.client.Get(ctx, themeKey(userID)).Result()
	if err == redis.Nil {
		return ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *ThemeStore) Set(ctx context.Context, userID uint, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("invalid theme %q", theme)
	}
	return s.client.Set(ctx, themeKey(userID), theme, 0).Err()
}
