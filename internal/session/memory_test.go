package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData(sellerID int64, email string) Data {
	return Data{
		ID:          uuid.New(),
		SellerID:    sellerID,
		SellerEmail: email,
		CreatedAt:   time.Now(),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	data := testData(42, "a@x.com")
	require.NoError(t, store.Create(ctx, "tok", data))

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, data.ID, got.ID)
	assert.Equal(t, int64(42), got.SellerID)
	assert.Equal(t, "a@x.com", got.SellerEmail)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Create(ctx, "tok", testData(1, "a@x.com")))

	now = now.Add(time.Hour + time.Second)

	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoSession)

	// Expired entry is gone even if the clock moves back
	now = now.Add(-time.Hour)
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreSlidingWindow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Create(ctx, "tok", testData(1, "a@x.com")))

	// Touch the session every 40 minutes; it outlives the original window
	for i := 0; i < 4; i++ {
		now = now.Add(40 * time.Minute)
		_, err := store.Get(ctx, "tok")
		require.NoError(t, err)
	}

	// Without activity it still expires
	now = now.Add(time.Hour + time.Second)
	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	require.NoError(t, store.Create(ctx, "tok", testData(1, "a@x.com")))

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err := store.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNoSession)

	// Deleting again, or deleting something that never existed, is a no-op
	require.NoError(t, store.Delete(ctx, "tok"))
	require.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestNewToken(t *testing.T) {
	first, err := NewToken()
	require.NoError(t, err)
	second, err := NewToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	// 32 random bytes in unpadded base64url
	assert.Len(t, first, 43)
}
