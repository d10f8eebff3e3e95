package requestlog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowbridge/plunet/pkg/util"
)

func TestNewEntry_TruncatesBody(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("x", util.MaxLogBodySize+100)
	e := NewEntry("getCustomerObject", "DataCustomer30", "action", "http://host/DataCustomer30", big)
	assert.NotEmpty(t, e.ID)
	assert.LessOrEqual(t, len(e.RequestBody), util.MaxLogBodySize+len("...(truncated)"))
	assert.True(t, strings.HasSuffix(e.RequestBody, "...(truncated)"))
}

func TestMemoryStore_EvictsOldest(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(3)
	for i := 0; i < 5; i++ {
		s.Record(Entry{ID: fmt.Sprintf("e%d", i), Operation: "op"})
	}
	require.Equal(t, 3, s.Len())

	entries := s.List(Filter{})
	require.Len(t, entries, 3)
	assert.Equal(t, "e4", entries[0].ID, "newest first")
	assert.Equal(t, "e2", entries[2].ID)
	_, ok := s.Get("e0")
	assert.False(t, ok, "oldest entries are evicted")
}

func TestMemoryStore_FilterByOperation(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(10)
	s.Record(Entry{ID: "a", Operation: "getCustomerObject"})
	s.Record(Entry{ID: "b", Operation: "getOrderObject"})
	s.Record(Entry{ID: "c", Operation: "getCustomerObject"})

	entries := s.List(Filter{Operation: "getCustomerObject"})
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
}

func TestMemoryStore_FilterByError(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(10)
	s.Record(Entry{ID: "ok"})
	s.Record(Entry{ID: "bad", Error: "fault: Invalid session"})

	failed := true
	entries := s.List(Filter{HasError: &failed})
	require.Len(t, entries, 1)
	assert.Equal(t, "bad", entries[0].ID)

	succeeded := false
	entries = s.List(Filter{HasError: &succeeded})
	require.Len(t, entries, 1)
	assert.Equal(t, "ok", entries[0].ID)
}

func TestMemoryStore_LimitAndOffset(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(10)
	for i := 0; i < 6; i++ {
		s.Record(Entry{ID: fmt.Sprintf("e%d", i)})
	}

	entries := s.List(Filter{Limit: 2, Offset: 1})
	require.Len(t, entries, 2)
	assert.Equal(t, "e4", entries[0].ID)
	assert.Equal(t, "e3", entries[1].ID)
}

func TestMemoryStore_GetByID(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(10)
	s.Record(Entry{ID: "x", Operation: "login"})
	e, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, "login", e.Operation)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}
