package order

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsidianspecter/demo-delivery/internal/config"
	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/persistence/memory"
)

// recordingUpdater captures status transitions in firing order.
type recordingUpdater struct {
	mu          sync.Mutex
	transitions []domain.Status
}

func (r *recordingUpdater) UpdateStatus(id string, status domain.Status) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, status)
	return true
}

func (r *recordingUpdater) snapshot() []domain.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Status(nil), r.transitions...)
}

func TestSimulator_WalksOrderThroughKitchen(t *testing.T) {
	updater := &recordingUpdater{}
	sim := NewSimulator(updater, config.SimulationConfig{
		PreparingDelay: 20 * time.Millisecond,
		ReadyDelay:     60 * time.Millisecond,
	}, nil)

	sim.Begin("order-1")

	assert.Eventually(t, func() bool {
		got := updater.snapshot()
		return len(got) == 2 &&
			got[0] == domain.StatusPreparing &&
			got[1] == domain.StatusReady
	}, time.Second, 5*time.Millisecond)
}

func TestSimulator_AgainstRealStore(t *testing.T) {
	store := memory.NewStore(nil)
	sim := NewSimulator(store, config.SimulationConfig{
		PreparingDelay: 20 * time.Millisecond,
		ReadyDelay:     50 * time.Millisecond,
	}, nil)

	o, err := store.Create(cart(), 8.00, "Table-4")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, o.Status)

	sim.Begin(o.ID)

	assert.Eventually(t, func() bool {
		got, _ := store.GetByID(o.ID)
		return got.Status == domain.StatusPreparing
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		got, _ := store.GetByID(o.ID)
		return got.Status == domain.StatusReady
	}, time.Second, 5*time.Millisecond)
}

func TestSimulator_UnknownOrderIsSilent(t *testing.T) {
	store := memory.NewStore(nil)
	sim := NewSimulator(store, config.SimulationConfig{
		PreparingDelay: 10 * time.Millisecond,
		ReadyDelay:     20 * time.Millisecond,
	}, nil)

	// Timers for an id the store never saw must fire without effect.
	sim.Begin("missing-id")
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, store.GetAll())
}
