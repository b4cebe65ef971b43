package candidatestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttachmentOrder(t *testing.T) {
	t.Run(`every association keeps append order`, func(t *testing.T) {
		associations := map[string]string{}
		for _, item := range attachmentOrder {
			associations[item.association] = item.column
		}
		require.Equal(t, map[string]string{
			"Notes":      "created_at",
			"Documents":  "created_at",
			"Interviews": "created_at",
		}, associations)
	})
}
