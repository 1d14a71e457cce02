package filterstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/eventportal/internal/catalog"
)

func setupTestStore() (*Store, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return New(db, time.Hour), mock
}

func TestStore_Save(t *testing.T) {
	store, mock := setupTestStore()
	defer mock.ClearExpect()

	mock.ExpectSet("eventFilters:7", `{"keyword":"jazz","category":"CONCERT"}`, time.Hour).SetVal("OK")

	err := store.Save(context.Background(), 7, catalog.Criteria{Keyword: "  jazz ", Category: "CONCERT"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveZeroCriteriaClears(t *testing.T) {
	store, mock := setupTestStore()
	defer mock.ClearExpect()

	mock.ExpectDel("eventFilters:7").SetVal(1)

	err := store.Save(context.Background(), 7, catalog.Criteria{Category: "all"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Load(t *testing.T) {
	store, mock := setupTestStore()
	defer mock.ClearExpect()

	mock.ExpectGet("eventFilters:7").SetVal(`{"keyword":"jazz","location":"Lyon"}`)

	c, ok, err := store.Load(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, catalog.Criteria{Keyword: "jazz", Location: "Lyon"}, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadMissing(t *testing.T) {
	store, mock := setupTestStore()
	defer mock.ClearExpect()

	mock.ExpectGet("eventFilters:7").RedisNil()

	c, ok, err := store.Load(context.Background(), 7)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, c.IsZero())
}

func TestStore_LoadCorrupt(t *testing.T) {
	store, mock := setupTestStore()
	defer mock.ClearExpect()

	mock.ExpectGet("eventFilters:7").SetVal(`{not json`)

	_, ok, err := store.Load(context.Background(), 7)

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestStore_RedisError(t *testing.T) {
	store, mock := setupTestStore()
	defer mock.ClearExpect()

	mock.ExpectDel("eventFilters:7").SetErr(errors.New("connection refused"))

	err := store.Clear(context.Background(), 7)

	assert.ErrorContains(t, err, "connection refused")
}

func TestStore_Disabled(t *testing.T) {
	store := New(nil, 0)
	assert.False(t, store.Enabled())

	ctx := context.Background()
	assert.NoError(t, store.Save(ctx, 1, catalog.Criteria{Keyword: "x"}))
	assert.NoError(t, store.Clear(ctx, 1))

	_, ok, err := store.Load(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, ok)

	var nilStore *Store
	assert.False(t, nilStore.Enabled())
}
