package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateStatus(t *testing.T) {
	t.Run("every pipeline stage is valid and named", func(t *testing.T) {
		require.Len(t, PipelineStatuses, 8)
		for _, status := range PipelineStatuses {
			require.True(t, status.IsValid())
			require.NotEqual(t, string(status), status.ToHuman())
		}
	})
	t.Run("json decoding rejects unknown values", func(t *testing.T) {
		var status CandidateStatus
		require.NoError(t, json.Unmarshal([]byte(`"not_responding"`), &status))
		require.Equal(t, CandidateStatusNotResponding, status)
		require.Error(t, json.Unmarshal([]byte(`"archived"`), &status))
		require.Error(t, json.Unmarshal([]byte(`5`), &status))
	})
	t.Run("terminal stages", func(t *testing.T) {
		require.True(t, CandidateStatusHired.IsTerminal())
		require.True(t, CandidateStatusRejected.IsTerminal())
		require.False(t, CandidateStatusOffer.IsTerminal())
	})
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	require.NoError(t, verr.OrNil())
	verr.Add("name", "Name is required")
	verr.Add("email", "Valid email is required")
	err := verr.OrNil()
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "Name is required", verr.FirstMessage())
	require.True(t, verr.HasField("email"))
	require.Equal(t, "Name is required; Valid email is required", err.Error())

	require.ErrorIs(t, &NotFoundError{Entity: "candidate", ID: "x"}, ErrNotFound)
	require.ErrorIs(t, &ConflictError{ID: "x", Expected: 1, Actual: 2}, ErrConflict)
	require.ErrorIs(t, &DuplicateError{Entity: "subscription", Key: "a@b.c"}, ErrConflict)
}

func TestActor(t *testing.T) {
	require.True(t, SystemActor().IsSystem())
	require.Equal(t, SystemUser, Actor{}.DisplayName())
	require.Equal(t, "Sarah Johnson", Actor{ID: "1", Name: "Sarah Johnson"}.DisplayName())
}
