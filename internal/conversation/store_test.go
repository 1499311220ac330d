package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for eviction tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestStore() (*Store, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(clk.Now), clk
}

func TestGetOrCreate_NewAppIsEmpty(t *testing.T) {
	s, _ := newTestStore()

	c := s.GetOrCreate("com.example.editor")
	require.Zero(t, c.Len())
	require.Empty(t, c.Messages())
}

func TestAppend_KeepsChronologicalOrder(t *testing.T) {
	s, _ := newTestStore()

	s.Append("app", Message{Role: RoleUser, Content: "first"})
	s.Append("app", Message{Role: RoleAssistant, Content: "second"})

	msgs := s.GetOrCreate("app").Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "first", msgs[0].Content)
	require.Equal(t, "second", msgs[1].Content)
}

func TestRollbackLast_UndoesFailedTurn(t *testing.T) {
	s, _ := newTestStore()

	s.Append("app", Message{Role: RoleUser, Content: "keep"})
	s.Append("app", Message{Role: RoleUser, Content: "drop"})
	s.RollbackLast("app")

	msgs := s.GetOrCreate("app").Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, "keep", msgs[0].Content)

	// Rollback on empty and unknown conversations must not panic.
	s.RollbackLast("app")
	s.RollbackLast("app")
	s.RollbackLast("never-seen")
}

func TestClear_EmptiesHistory(t *testing.T) {
	s, _ := newTestStore()

	s.Append("app", Message{Role: RoleUser, Content: "hi"})
	s.Clear("app")
	require.Zero(t, s.GetOrCreate("app").Len())
}

func TestSweepStale_Boundary(t *testing.T) {
	s, clk := newTestStore()

	s.Append("stale", Message{Role: RoleUser, Content: "old"})
	clk.Advance(2 * time.Millisecond)
	s.Append("fresh", Message{Role: RoleUser, Content: "new"})

	// "stale" is now 20m+1ms inactive, "fresh" 20m-1ms.
	s.SweepStale(clk.Now().Add(Staleness - time.Millisecond))

	require.Equal(t, 1, s.Len())
	require.Equal(t, 1, s.GetOrCreate("fresh").Len())
	require.Zero(t, s.GetOrCreate("stale").Len())
}

func TestSweepStale_ExactWindowIsStale(t *testing.T) {
	s, clk := newTestStore()

	s.Append("app", Message{Role: RoleUser, Content: "hi"})
	s.SweepStale(clk.Now().Add(Staleness))
	require.Zero(t, s.GetOrCreate("app").Len())
}

func TestSweepStale_Idempotent(t *testing.T) {
	s, clk := newTestStore()

	s.Append("a", Message{Role: RoleUser, Content: "x"})
	clk.Advance(Staleness + time.Second)
	s.Append("b", Message{Role: RoleUser, Content: "y"})

	now := clk.Now()
	s.SweepStale(now)
	after := s.Len()
	s.SweepStale(now)
	require.Equal(t, after, s.Len())
}

func TestAppend_RefreshesActivity(t *testing.T) {
	s, clk := newTestStore()

	s.Append("app", Message{Role: RoleUser, Content: "hi"})
	clk.Advance(15 * time.Minute)
	s.Append("app", Message{Role: RoleAssistant, Content: "hello"})
	clk.Advance(15 * time.Minute)

	// 30 minutes since creation, but only 15 since the last append.
	s.SweepStale(clk.Now())
	require.Equal(t, 2, s.GetOrCreate("app").Len())
}
