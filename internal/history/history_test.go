package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordAndList(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "exchanges.db"))

	log.Record(Exchange{
		InvocationID: "inv-1",
		AppID:        "com.example.editor",
		Action:       "translate",
		Prompt:       "hello",
		Reply:        "bonjour",
		CreatedAt:    time.Now().UTC(),
	})
	log.Record(Exchange{
		InvocationID: "inv-2",
		AppID:        "other",
		Action:       "chat",
		Prompt:       "hi",
		Reply:        "hey",
		CreatedAt:    time.Now().UTC(),
	})

	got := log.List("com.example.editor")
	require.Len(t, got, 1)
	require.Equal(t, "inv-1", got[0].InvocationID)
	require.Equal(t, "bonjour", got[0].Reply)
}

func TestRecord_FallsBackToMemory(t *testing.T) {
	// A directory path cannot be opened as a database file.
	log := NewLog(t.TempDir())

	log.Record(Exchange{InvocationID: "inv-1", AppID: "app", Action: "chat"})

	got := log.List("app")
	require.Len(t, got, 1)
}
