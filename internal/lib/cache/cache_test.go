package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, time.Minute)

	mock.ExpectGet("catalog:salons").SetVal(`[{"id":1}]`)

	val, ok, err := c.Get(context.Background(), "catalog:salons")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(val))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, time.Minute)

	mock.ExpectGet("catalog:services").RedisNil()

	val, ok, err := c.Get(context.Background(), "catalog:services")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, time.Minute)

	mock.ExpectGet("catalog:masters").SetErr(errors.New("connection reset"))

	_, ok, err := c.Get(context.Background(), "catalog:masters")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, 60*time.Second)

	mock.ExpectSet("catalog:masters:salon=2", `[]`, 60*time.Second).SetVal("OK")

	require.NoError(t, c.Set(context.Background(), "catalog:masters:salon=2", []byte(`[]`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogKey(t *testing.T) {
	assert.Equal(t, "catalog:salons", CatalogKey("salons", 0))
	assert.Equal(t, "catalog:masters:salon=3", CatalogKey("masters", 3))
}
