package logstore

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/kdiag/core"
)

func drain(t *testing.T, s *Store, level core.Level) []core.Entry {
	t.Helper()
	require.NoError(t, s.ReadStart(level))
	defer s.ReadEnd()

	var out []core.Entry
	for {
		e, err := s.ReadNext()
		if err != nil {
			require.ErrorIs(t, err, core.ErrEmpty)
			return out
		}
		out = append(out, e)
	}
}

func messages(entries []core.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, DefaultCapacity, s.Cap())
	assert.Equal(t, DefaultMessageLen, s.MessageLen())
	assert.Equal(t, core.LevelWarning, s.DefaultLevel())
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
}

func TestNew_InvalidDefaultFallsBack(t *testing.T) {
	for _, l := range []core.Level{core.LevelDefault, core.Level(9), core.Level(-1)} {
		s := New(WithDefaultLevel(l))
		assert.Equal(t, DefaultLevel, s.DefaultLevel(), "level %d", l)
	}
	assert.Equal(t, core.LevelInfo, New(WithDefaultLevel(core.LevelInfo)).DefaultLevel())
}

func TestNew_ClampsOptions(t *testing.T) {
	s := New(WithCapacity(0), WithMessageLen(1))
	assert.Equal(t, 1, s.Cap())
	assert.Equal(t, 3, s.MessageLen())

	assert.Equal(t, 254, New(WithCapacity(1000)).Cap())
}

func TestWrite_ReadBackReverseOrder(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		status, err := s.Write(core.LevelErr, fmt.Sprintf("m%d", i))
		require.NoError(t, err)
		assert.Equal(t, core.StatusOK, status)
	}
	assert.Equal(t, 5, s.Len())

	got := drain(t, s, core.LevelDebug)
	assert.Equal(t, []string{"m4", "m3", "m2", "m1", "m0"}, messages(got))
}

func TestWrite_EvictsOldest(t *testing.T) {
	s := New()
	for i := 0; i < 7; i++ {
		_, err := s.Write(core.LevelErr, fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}
	assert.Equal(t, 5, s.Len())

	got := drain(t, s, core.LevelDebug)
	assert.Equal(t, []string{"m6", "m5", "m4", "m3", "m2"}, messages(got))
	assert.Equal(t, uint64(2), s.Stats().Evicted)
}

func TestWrite_ManyWrapsKeepLastN(t *testing.T) {
	s := New(WithCapacity(3))
	for i := 0; i < 100; i++ {
		_, err := s.Write(core.LevelInfo, fmt.Sprintf("%d", i))
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Len(), 3)
	}
	assert.Equal(t, []string{"99", "98", "97"}, messages(drain(t, s, core.LevelDebug)))
}

func TestWrite_Truncation(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		want   string
		status core.Status
	}{
		{"short", "abc", "abc", core.StatusOK},
		{"exact length", "0123456789", "0123456789", core.StatusOK},
		{"one over", "0123456789A", "0123456...", core.StatusChanged},
		{"long", strings.Repeat("z", 40), "zzzzzzz...", core.StatusChanged},
		{"empty", "", "", core.StatusOK},
		{"stops at zero byte", "ab\x00cdefghijklmn", "ab", core.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			status, err := s.Write(core.LevelErr, tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)

			got := drain(t, s, core.LevelErr)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Message)
			assert.LessOrEqual(t, len(got[0].Message), s.MessageLen())
		})
	}
}

func TestWrite_DefaultLevelSubstituted(t *testing.T) {
	s := New()
	_, err := s.Write(core.LevelDefault, "x")
	require.NoError(t, err)

	got := drain(t, s, core.LevelDebug)
	require.Len(t, got, 1)
	assert.Equal(t, core.LevelWarning, got[0].Level)
}

func TestWrite_InvalidLevelRejected(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelErr, "keep")

	for _, l := range []core.Level{core.Level(9), core.Level(-1), core.Level(100)} {
		status, err := s.Write(l, "bad")
		assert.Equal(t, core.StatusError, status)
		assert.ErrorIs(t, err, core.ErrInvalidLevel)
	}

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"keep"}, messages(drain(t, s, core.LevelDebug)))
	assert.Equal(t, uint64(3), s.Stats().Rejected)
}

func TestSetDefaultLevel(t *testing.T) {
	s := New()
	require.NoError(t, s.SetDefaultLevel(core.LevelDebug))
	assert.Equal(t, core.LevelDebug, s.DefaultLevel())

	assert.ErrorIs(t, s.SetDefaultLevel(core.LevelDefault), core.ErrInvalidLevel)
	assert.ErrorIs(t, s.SetDefaultLevel(core.Level(9)), core.ErrInvalidLevel)
	assert.Equal(t, core.LevelDebug, s.DefaultLevel())
}

func TestRead_SeverityFilter(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelErr, "A")
	_, _ = s.Write(core.LevelInfo, "B")
	_, _ = s.Write(core.LevelCrit, "C")

	got := drain(t, s, core.LevelErr)
	assert.Equal(t, []string{"C", "A"}, messages(got))
	assert.Equal(t, core.LevelCrit, got[0].Level)
	assert.Equal(t, core.LevelErr, got[1].Level)

	assert.Equal(t, []string{"C", "B", "A"}, messages(drain(t, s, core.LevelDebug)))
	assert.Empty(t, drain(t, s, core.LevelEmerg))
}

func TestRead_OldestEntryMatches(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelEmerg, "old")
	_, _ = s.Write(core.LevelDebug, "new")

	assert.Equal(t, []string{"old"}, messages(drain(t, s, core.LevelEmerg)))
}

func TestRead_DefaultLevelSession(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelWarning, "w")
	_, _ = s.Write(core.LevelNotice, "n")

	assert.Equal(t, []string{"w"}, messages(drain(t, s, core.LevelDefault)))
}

func TestReadStart_Empty(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.ReadStart(core.LevelDebug), core.ErrEmpty)
	assert.Equal(t, core.StatusEmpty, core.StatusOf(s.ReadStart(core.LevelDebug)))
}

func TestReadStart_InvalidLevel(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelErr, "x")
	err := s.ReadStart(core.Level(9))
	assert.ErrorIs(t, err, core.ErrInvalidLevel)
	assert.Equal(t, core.StatusError, core.StatusOf(err))
}

func TestReadNext_ExhaustedRepeatsEmpty(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelErr, "only")
	require.NoError(t, s.ReadStart(core.LevelDebug))

	e, err := s.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, "only", e.Message)

	for i := 0; i < 3; i++ {
		_, err = s.ReadNext()
		assert.ErrorIs(t, err, core.ErrEmpty)
	}
	s.ReadEnd()

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"only"}, messages(drain(t, s, core.LevelDebug)))
}

func TestReadNext_NoSession(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelErr, "x")

	_, err := s.ReadNext()
	assert.ErrorIs(t, err, core.ErrNoSession)

	require.NoError(t, s.ReadStart(core.LevelDebug))
	s.ReadEnd()
	s.ReadEnd()

	_, err = s.ReadNext()
	assert.ErrorIs(t, err, core.ErrNoSession)
	assert.Equal(t, core.StatusError, core.StatusOf(err))
}

func TestRecent_DoesNotTouchSession(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelErr, "a")
	_, _ = s.Write(core.LevelErr, "b")

	require.NoError(t, s.ReadStart(core.LevelDebug))
	e, err := s.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, "b", e.Message)

	recent, err := s.Recent(core.LevelDebug)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, messages(recent))

	e, err = s.ReadNext()
	require.NoError(t, err)
	assert.Equal(t, "a", e.Message)
	s.ReadEnd()

	_, err = s.Recent(core.Level(12))
	assert.ErrorIs(t, err, core.ErrInvalidLevel)
}

func TestInit_Resets(t *testing.T) {
	s := New()
	_, _ = s.Write(core.LevelErr, "x")
	require.NoError(t, s.ReadStart(core.LevelDebug))

	require.NoError(t, s.Init(core.LevelInfo))
	assert.True(t, s.Empty())
	assert.Equal(t, core.LevelInfo, s.DefaultLevel())
	_, err := s.ReadNext()
	assert.ErrorIs(t, err, core.ErrNoSession)
	assert.Equal(t, Stats{}, s.Stats())
}

func TestStats(t *testing.T) {
	s := New(WithCapacity(2))
	_, _ = s.Write(core.LevelErr, "short")
	_, _ = s.Write(core.LevelErr, "much too long for it")
	_, _ = s.Write(core.LevelErr, "third")
	_, _ = s.Write(core.Level(42), "rejected")

	assert.Equal(t, Stats{Written: 3, Truncated: 1, Evicted: 1, Rejected: 1}, s.Stats())
}

func TestCopyBounded(t *testing.T) {
	dst := make([]byte, 4)

	n, tr := copyBounded(dst, "abcd")
	assert.Equal(t, 4, n)
	assert.False(t, tr)

	n, tr = copyBounded(dst, "abcde")
	assert.Equal(t, 4, n)
	assert.True(t, tr)

	n, tr = copyBounded(dst, "a\x00bcdef")
	assert.Equal(t, 1, n)
	assert.False(t, tr)
}

func TestStore_ConcurrentWriters(t *testing.T) {
	s := New(WithCapacity(8))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_, _ = s.Write(core.LevelInfo, fmt.Sprintf("g%d-%d", g, i))
				_, _ = s.Recent(core.LevelDebug)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 8, s.Len())
	assert.Equal(t, uint64(1600), s.Stats().Written)
	assert.Equal(t, uint64(1600-8), s.Stats().Evicted)
}

func BenchmarkStore_Write(b *testing.B) {
	s := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Write(core.LevelErr, "disk failure on sda")
	}
}

func TestWriteEntry_ReturnsStoredForm(t *testing.T) {
	s := New(WithMessageLen(6))

	e, status, err := s.WriteEntry(core.LevelDefault, "overflowing")
	require.NoError(t, err)
	assert.Equal(t, core.StatusChanged, status)
	assert.Equal(t, core.Entry{Level: core.LevelWarning, Message: "ove..."}, e)

	_, status, err = s.WriteEntry(core.Level(9), "x")
	assert.Equal(t, core.StatusError, status)
	assert.ErrorIs(t, err, core.ErrInvalidLevel)
}
