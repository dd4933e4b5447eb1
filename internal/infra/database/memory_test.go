package database_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/database"
)

func newLead(first string) *entity.Lead {
	return entity.NewLead(first, "Doe", first+"@example.com", "Brazil",
		"https://www.linkedin.com/in/"+first, "", "msg", []string{"O-1"})
}

func TestInMemoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := database.NewInMemoryLeadRepository()

	lead := newLead("john")
	require.NoError(t, repo.Create(ctx, lead))

	found, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, found.ID)
	assert.Equal(t, "john", found.FirstName)
}

func TestInMemoryDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := database.NewInMemoryLeadRepository()

	lead := newLead("john")
	require.NoError(t, repo.Create(ctx, lead))

	dup := newLead("jane")
	dup.ID = lead.ID
	assert.ErrorIs(t, repo.Create(ctx, dup), entity.ErrDuplicateLead)
	assert.Equal(t, 1, repo.Len())
}

func TestInMemoryFindAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := database.NewInMemoryLeadRepository()

	names := []string{"alpha", "bravo", "charlie", "delta"}
	for _, n := range names {
		require.NoError(t, repo.Create(ctx, newLead(n)))
	}

	leads, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, leads, len(names))
	for i, n := range names {
		assert.Equal(t, n, leads[i].FirstName)
	}
}

func TestInMemoryFindByIDNotFound(t *testing.T) {
	repo := database.NewInMemoryLeadRepository()
	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestInMemoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := database.NewInMemoryLeadRepository()

	lead := newLead("john")
	require.NoError(t, repo.Create(ctx, lead))

	at := time.Now().Add(time.Second)
	updated, err := repo.UpdateStatus(ctx, lead.ID, entity.StatusReachedOut, at)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReachedOut, updated.Status)
	assert.Equal(t, at, updated.UpdatedAt)
	assert.Equal(t, lead.CreatedAt, updated.CreatedAt)

	_, err = repo.UpdateStatus(ctx, "missing", entity.StatusClosed, at)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestInMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := database.NewInMemoryLeadRepository()

	lead := newLead("john")
	require.NoError(t, repo.Create(ctx, lead))

	// Mutating the handed-in lead after Create must not affect the store.
	lead.FirstName = "mutated"
	lead.VisaInterest[0] = "mutated"

	found, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "john", found.FirstName)
	assert.Equal(t, "O-1", found.VisaInterest[0])

	// Mutating a result must not leak back either.
	found.Status = entity.StatusClosed
	again, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, again.Status)
}

func TestInMemoryConcurrentUpdatesLoseNothing(t *testing.T) {
	ctx := context.Background()
	repo := database.NewInMemoryLeadRepository()

	lead := newLead("john")
	require.NoError(t, repo.Create(ctx, lead))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			repo.UpdateStatus(ctx, lead.ID, entity.StatusReachedOut, time.Now())
		}(i)
	}
	wg.Wait()

	found, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReachedOut, found.Status)
	assert.Equal(t, 1, repo.Len())
}

func TestInMemoryConcurrentCreatesKeepUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := database.NewInMemoryLeadRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Create(ctx, newLead("john"))
		}()
	}
	wg.Wait()

	leads, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 50)

	seen := make(map[string]bool)
	for _, l := range leads {
		assert.False(t, seen[l.ID])
		seen[l.ID] = true
	}
}
