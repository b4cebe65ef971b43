package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildKey(t *testing.T) {
	t.Run(`same parts same key`, func(t *testing.T) {
		require.Equal(t, BuildKey("candidates", int64(3), "react"), BuildKey("candidates", int64(3), "react"))
	})
	t.Run(`revision changes the key`, func(t *testing.T) {
		require.NotEqual(t, BuildKey("candidates", int64(3), "react"), BuildKey("candidates", int64(4), "react"))
	})
	t.Run(`prefix is readable`, func(t *testing.T) {
		require.Contains(t, BuildKey("analytics", int64(1)), "ats:analytics:")
	})
}

func TestDisabledCache(t *testing.T) {
	c := NewRedis("", 0)
	require.NoError(t, c.SetJSON(context.Background(), "k", map[string]int{"a": 1}))
	var out map[string]int
	found, err := c.GetJSON(context.Background(), "k", &out)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, c.Close())
}
