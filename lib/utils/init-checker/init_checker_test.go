package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type service struct{}

func TestCheckInit(t *testing.T) {
	var typedNil *service
	t.Run("all set", func(t *testing.T) {
		require.NoError(t, CheckInit("a", &service{}, "b", 1))
	})
	t.Run("every missing name is reported", func(t *testing.T) {
		err := CheckInit("cache", nil, "store", typedNil, "ok", &service{})
		require.EqualError(t, err, "dependencies not initialized: cache, store")
	})
	t.Run("odd arguments", func(t *testing.T) {
		require.Error(t, CheckInit("a"))
	})
	t.Run("name must be a string", func(t *testing.T) {
		require.Error(t, CheckInit(1, &service{}))
	})
}
