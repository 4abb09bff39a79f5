package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsidianspecter/demo-delivery/internal/domain/order"
)

func cartItems() []order.OrderItem {
	return []order.OrderItem{
		{ID: "item-1", Name: "Margherita Pizza", Price: 5.00, Quantity: 1},
		{ID: "item-5", Name: "Garlic Bread", Price: 3.00, Quantity: 1},
	}
}

func TestStore_Create(t *testing.T) {
	store := NewStore(nil)

	o, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, 8.00, o.TotalPrice)

	other, err := store.Create(cartItems(), 8.00, "Table-5")
	require.NoError(t, err)
	assert.NotEqual(t, o.ID, other.ID, "order ids must be unique")
}

func TestStore_Create_RejectsEmptyCart(t *testing.T) {
	store := NewStore(nil)

	_, err := store.Create(nil, 8.00, "Table-4")
	assert.ErrorIs(t, err, order.ErrEmptyItems)
	assert.Empty(t, store.GetAll())
}

func TestStore_UpdateStatus(t *testing.T) {
	store := NewStore(nil)
	o, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)

	ok := store.UpdateStatus(o.ID, order.StatusPreparing)
	require.True(t, ok)

	got, found := store.GetByID(o.ID)
	require.True(t, found)
	assert.Equal(t, order.StatusPreparing, got.Status)
	assert.Equal(t, o.TableNumber, got.TableNumber, "other fields stay intact")
	assert.False(t, got.UpdatedAt.Before(o.UpdatedAt), "updatedAt must not go backwards")
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestStore_UpdateStatus_UnknownID(t *testing.T) {
	store := NewStore(nil)
	o, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)

	notified := 0
	unsubscribe := store.Subscribe(func([]order.Order) { notified++ })
	defer unsubscribe()

	ok := store.UpdateStatus("missing-id", order.StatusDelivered)
	assert.False(t, ok)
	assert.Zero(t, notified, "no notification for a no-op")

	got, found := store.GetByID(o.ID)
	require.True(t, found)
	assert.Equal(t, order.StatusPending, got.Status)
}

func TestStore_UpdateTable_Idempotent(t *testing.T) {
	store := NewStore(nil)
	o, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)

	require.True(t, store.UpdateTable(o.ID, "Table-3"))
	first, _ := store.GetByID(o.ID)

	require.True(t, store.UpdateTable(o.ID, "Table-3"))
	second, _ := store.GetByID(o.ID)

	assert.Equal(t, "Table-3", first.TableNumber)
	assert.Equal(t, "Table-3", second.TableNumber)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	assert.False(t, store.UpdateTable("missing-id", "Table-1"))
}

func TestStore_Subscribe_OneNotificationPerMutation(t *testing.T) {
	store := NewStore(nil)

	var calls int
	var last []order.Order
	unsubscribe := store.Subscribe(func(snapshot []order.Order) {
		calls++
		last = snapshot
	})
	defer unsubscribe()

	o, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	store.UpdateStatus(o.ID, order.StatusPreparing)
	assert.Equal(t, 2, calls)

	require.Len(t, last, 1)
	assert.Equal(t, order.StatusPreparing, last[0].Status, "snapshot reflects the mutation")
}

func TestStore_Unsubscribe_OnlyRemovesOwnCallback(t *testing.T) {
	store := NewStore(nil)

	var first, second int
	stopFirst := store.Subscribe(func([]order.Order) { first++ })
	stopSecond := store.Subscribe(func([]order.Order) { second++ })
	defer stopSecond()

	_, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)
	stopFirst()

	_, err = store.Create(cartItems(), 8.00, "Table-5")
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestStore_PanickingSubscriberDoesNotStarveOthers(t *testing.T) {
	store := NewStore(nil)

	var survived int
	stopBad := store.Subscribe(func([]order.Order) { panic("observer bug") })
	defer stopBad()
	stopGood := store.Subscribe(func([]order.Order) { survived++ })
	defer stopGood()

	_, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)

	assert.Equal(t, 1, survived)
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	store := NewStore(nil)
	o, err := store.Create(cartItems(), 8.00, "Table-4")
	require.NoError(t, err)

	all := store.GetAll()
	require.Len(t, all, 1)
	all[0].Status = order.StatusDelivered
	all[0].Items[0].Quantity = 99

	got, _ := store.GetByID(o.ID)
	assert.Equal(t, order.StatusPending, got.Status)
	assert.Equal(t, 1, got.Items[0].Quantity)
}

func TestStore_GetAll_PreservesCreationOrder(t *testing.T) {
	store := NewStore(nil)

	var ids []string
	for _, table := range []string{"Table-1", "Table-2", "Table-3"} {
		o, err := store.Create(cartItems(), 8.00, table)
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}

	all := store.GetAll()
	require.Len(t, all, 3)
	for i, o := range all {
		assert.Equal(t, ids[i], o.ID)
	}
}
