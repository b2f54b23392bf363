package todo

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/memstore"
)

func newTestStore(t *testing.T) (*Store, *memstore.Store) {
	t.Helper()
	kv := memstore.New()
	return New(kv), kv
}

func persisted(t *testing.T, kv *memstore.Store) []model.Item {
	t.Helper()
	b, err := kv.Get(StorageKey)
	require.NoError(t, err)
	items, err := Decode(b)
	require.NoError(t, err)
	return items
}

func TestNewStartsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.Items())
	assert.Equal(t, model.FilterAll, s.Filter())
	assert.Equal(t, "", s.ErrorMessage())
	assert.NoError(t, s.LastStorageError())
}

func TestAddExample(t *testing.T) {
	s, kv := newTestStore(t)

	require.NoError(t, s.Add("Buy milk"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Text)
	assert.False(t, items[0].Completed)
	assert.Equal(t, "", s.ErrorMessage())

	err := s.Add("buy milk")
	require.ErrorIs(t, err, ErrDuplicateItem)
	assert.Equal(t, "This to-do item already exists.", s.ErrorMessage())
	assert.Len(t, s.Items(), 1)

	s.Toggle(items[0].ID)
	got, ok := s.Lookup(items[0].ID)
	require.True(t, ok)
	assert.True(t, got.Completed)
	assert.Equal(t, 0, s.ActiveCount())
	assert.Equal(t, s.Items(), persisted(t, kv))
}

func TestAddRejectsBlank(t *testing.T) {
	s, kv := newTestStore(t)
	for _, in := range []string{"", "   ", "\t\n"} {
		err := s.Add(in)
		require.ErrorIs(t, err, ErrEmptyInput)
		assert.Equal(t, "A to-do item cannot be empty.", s.ErrorMessage())
		assert.Empty(t, s.Items())
	}
	_, err := kv.Get(StorageKey)
	assert.Error(t, err, "nothing written")
}

func TestAddTrimsAndAppendsLast(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Add("first"))
	require.NoError(t, s.Add("  second  "))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[1].Text)
	assert.Greater(t, items[1].ID, items[0].ID)
}

func TestDuplicateIgnoresSurroundingSpaceAndCase(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Add("Walk dog"))
	require.ErrorIs(t, s.Add("  WALK DOG "), ErrDuplicateItem)
	assert.Len(t, s.Items(), 1)
}

func TestSuccessfulAddClearsErrorAndPendingInput(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetPendingInput("   ")
	require.Error(t, s.Add(s.PendingInput()))
	assert.NotEmpty(t, s.ErrorMessage())
	assert.Equal(t, "   ", s.PendingInput(), "failed add keeps the input")

	s.SetPendingInput("Read book")
	require.NoError(t, s.Add(s.PendingInput()))
	assert.Equal(t, "", s.ErrorMessage())
	assert.Equal(t, "", s.PendingInput())
}

func TestToggleOnlyTouchesTarget(t *testing.T) {
	s, _ := newTestStore(t)
	for _, text := range []string{"a", "b", "c"} {
		require.NoError(t, s.Add(text))
	}
	before := s.Items()

	s.Toggle(before[1].ID)
	after := s.Items()
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.True(t, after[1].Completed)

	s.Toggle(before[1].ID)
	assert.Equal(t, before, s.Items())
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Add("a"))
	before := s.Items()
	s.Toggle(999)
	assert.Equal(t, before, s.Items())
}

func TestDelete(t *testing.T) {
	s, kv := newTestStore(t)
	require.NoError(t, s.Add("a"))
	require.NoError(t, s.Add("b"))
	items := s.Items()

	s.Delete(12345)
	assert.Len(t, s.Items(), 2)

	s.Delete(items[0].ID)
	assert.Equal(t, []model.Item{items[1]}, s.Items())
	assert.Equal(t, s.Items(), persisted(t, kv))

	// text is free again once deleted
	require.NoError(t, s.Add("A"))
}

func TestClearCompletedRemovesAllAndOnlyCompleted(t *testing.T) {
	s, kv := newTestStore(t)
	for _, text := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Add(text))
	}
	items := s.Items()
	s.Toggle(items[0].ID)
	s.Toggle(items[2].ID)

	s.ClearCompleted()
	once := s.Items()
	assert.Equal(t, []model.Item{items[1], items[3]}, once)
	assert.Equal(t, once, persisted(t, kv))

	s.ClearCompleted()
	assert.Equal(t, once, s.Items(), "idempotent")
}

func TestFilteredItemsAndActiveCount(t *testing.T) {
	s, _ := newTestStore(t)
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.Add(text))
	}
	items := s.Items()
	s.Toggle(items[1].ID)
	s.Toggle(items[4].ID)
	items = s.Items()

	assert.Equal(t, 3, s.ActiveCount())

	s.SetFilter(model.FilterAll)
	assert.Equal(t, items, s.FilteredItems())

	s.SetFilter(model.FilterActive)
	assert.Equal(t, []model.Item{items[0], items[2], items[3]}, s.FilteredItems())

	s.SetFilter(model.FilterCompleted)
	assert.Equal(t, []model.Item{items[1], items[4]}, s.FilteredItems())

	assert.Len(t, s.Items(), 5, "filter does not change items")
}

func TestItemsReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Add("a"))
	items := s.Items()
	items[0].Text = "changed"
	assert.Equal(t, "a", s.Items()[0].Text)
}

func TestReloadRestoresListAndContinuesIDs(t *testing.T) {
	kv := memstore.New()
	s := New(kv)
	require.NoError(t, s.Add("a"))
	require.NoError(t, s.Add("b"))
	s.Toggle(s.Items()[0].ID)
	want := s.Items()

	reloaded := New(kv)
	assert.Equal(t, want, reloaded.Items())

	require.NoError(t, reloaded.Add("c"))
	items := reloaded.Items()
	assert.Greater(t, items[2].ID, items[1].ID)
}

func TestLoadTreatsCorruptDataAsEmpty(t *testing.T) {
	cases := map[string]string{
		"not json":      `{oops`,
		"object":        `{"id":1}`,
		"wrong type":    `[{"id":"one","text":"a","completed":false}]`,
		"unknown field": `[{"id":1,"text":"a","completed":false,"due":"now"}]`,
		"blank text":    `[{"id":1,"text":"  ","completed":false}]`,
		"duplicate id":  `[{"id":1,"text":"a","completed":false},{"id":1,"text":"b","completed":false}]`,
		"duplicate txt": `[{"id":1,"text":"a","completed":false},{"id":2,"text":"A","completed":false}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			kv := memstore.New()
			require.NoError(t, kv.Set(StorageKey, []byte(raw)))

			var buf bytes.Buffer
			s := New(kv, WithLogger(logging.NewWriter(&buf, "debug")))
			assert.Empty(t, s.Items())
			assert.Contains(t, buf.String(), "discarding malformed todos")

			require.NoError(t, s.Add("fresh"))
			assert.Equal(t, 1, s.Items()[0].ID)
		})
	}
}

func TestLoadNullIsEmpty(t *testing.T) {
	kv := memstore.New()
	require.NoError(t, kv.Set(StorageKey, []byte("null")))
	s := New(kv)
	assert.Empty(t, s.Items())
	assert.NoError(t, s.LastStorageError())
}

func TestReadFailureStartsEmpty(t *testing.T) {
	kv := memstore.New()
	kv.GetErr = errors.New("permission denied")

	s := New(kv)
	assert.Empty(t, s.Items())
	require.ErrorIs(t, s.LastStorageError(), ErrStorageUnavailable)
}

func TestWriteFailureKeepsMutation(t *testing.T) {
	kv := memstore.New()
	var buf bytes.Buffer
	s := New(kv, WithLogger(logging.NewWriter(&buf, "warn")))

	kv.SetErr = errors.New("disk full")
	require.NoError(t, s.Add("a"), "storage failures are not returned")
	assert.Len(t, s.Items(), 1)
	require.ErrorIs(t, s.LastStorageError(), ErrStorageUnavailable)
	assert.Contains(t, buf.String(), "writing todos failed")

	s.Toggle(s.Items()[0].ID)
	assert.True(t, s.Items()[0].Completed)

	kv.SetErr = nil
	s.Toggle(s.Items()[0].ID)
	assert.NoError(t, s.LastStorageError())
	assert.Equal(t, s.Items(), persisted(t, kv))
}

func TestWithFilter(t *testing.T) {
	s := New(memstore.New(), WithFilter(model.FilterCompleted))
	assert.Equal(t, model.FilterCompleted, s.Filter())
}

func TestCorruptBackendIsNotAStorageFailure(t *testing.T) {
	kv := memstore.New()
	kv.GetErr = fmt.Errorf("%w: json unmarshal: bad", store.ErrCorrupt)

	var buf bytes.Buffer
	s := New(kv, WithLogger(logging.NewWriter(&buf, "warn")))
	assert.Empty(t, s.Items())
	assert.NoError(t, s.LastStorageError())
	assert.Contains(t, buf.String(), "discarding malformed todos")
}
