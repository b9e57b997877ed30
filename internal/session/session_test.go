package session

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianozunino/share/internal/backend"
	"github.com/marianozunino/share/internal/model"
	"github.com/marianozunino/share/internal/testutil"
	"github.com/marianozunino/share/internal/ui"
)

func newStore(t *testing.T, size int, ttl time.Duration) (*Store, *testutil.FakeBackend) {
	t.Helper()
	fake := testutil.NewFakeBackend(t)
	return NewStore(backend.NewClient(fake.Config()), "100 MB", size, ttl), fake
}

func TestCreateMountsPage(t *testing.T) {
	store, fake := newStore(t, 4, time.Hour)
	fake.Seed(model.FileRecord{ID: "a", Name: "a.txt", ExpiresAt: model.Timestamp{Time: time.Now().Add(time.Hour)}})

	sess := store.Create(context.Background())
	assert.Equal(t, 1, fake.ListCalls())
	assert.Len(t, sess.Page.Files(), 1)
	assert.Equal(t, ui.TabUpload, sess.Page.Tab())
	assert.Equal(t, "100 MB", sess.Panel.State().MaxSize)
	assert.Equal(t, 1, store.Len())
}

func TestCreateSurvivesListFailure(t *testing.T) {
	store, fake := newStore(t, 4, time.Hour)
	fake.FailList(http.StatusServiceUnavailable)

	sess := store.Create(context.Background())
	require.NotNil(t, sess)
	assert.Empty(t, sess.Page.Files())
}

func TestGetOrCreate(t *testing.T) {
	store, _ := newStore(t, 4, time.Hour)

	first, created := store.GetOrCreate(context.Background(), "")
	assert.True(t, created)

	again, created := store.GetOrCreate(context.Background(), first.ID.String())
	assert.False(t, created)
	assert.Same(t, first, again)

	_, created = store.GetOrCreate(context.Background(), "not-a-uuid")
	assert.True(t, created)
	assert.Equal(t, 2, store.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	store, _ := newStore(t, 4, time.Hour)
	a := store.Create(context.Background())
	b := store.Create(context.Background())

	a.Page.SetTab(ui.TabInfo)
	assert.Equal(t, ui.TabUpload, b.Page.Tab())
}

func TestPanelIsWiredToPage(t *testing.T) {
	store, fake := newStore(t, 4, time.Hour)
	sess := store.Create(context.Background())

	err := sess.Panel.Submit(context.Background(), ui.LocalFile{
		Name: "a.txt",
		Size: 1,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("a")), nil },
	})
	require.NoError(t, err)

	assert.Equal(t, 2, fake.ListCalls())
	assert.Equal(t, ui.TabFiles, sess.Page.Tab())
	assert.Len(t, sess.Toasts.Drain(), 1)
}

func TestStoreIsBounded(t *testing.T) {
	store, _ := newStore(t, 2, time.Hour)

	first := store.Create(context.Background())
	store.Create(context.Background())
	store.Create(context.Background())

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get(first.ID.String())
	assert.False(t, ok)
}

func TestSessionsExpire(t *testing.T) {
	store, _ := newStore(t, 4, 50*time.Millisecond)
	sess := store.Create(context.Background())

	assert.Eventually(t, func() bool {
		_, ok := store.Get(sess.ID.String())
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestAccessDoesNotExtendSession(t *testing.T) {
	store, _ := newStore(t, 4, 100*time.Millisecond)
	id := store.Create(context.Background()).ID.String()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Get(id); !ok {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("session outlived its ttl while being read")
}

func TestRemove(t *testing.T) {
	store, _ := newStore(t, 4, time.Hour)
	sess := store.Create(context.Background())

	store.Remove(sess.ID.String())
	assert.Equal(t, 0, store.Len())
}

func TestPurge(t *testing.T) {
	store, _ := newStore(t, 4, time.Hour)
	store.Create(context.Background())
	store.Create(context.Background())

	store.Purge()
	assert.Equal(t, 0, store.Len())
}
