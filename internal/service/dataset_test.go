package service

import (
	"context"
	"testing"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/repository"
	"theme-park-ticketing/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDataset loads a dataset over a fresh temp directory, so every test
// starts from the seed catalog and empty account and order collections.
func newTestDataset(t *testing.T) (*Dataset, *session.Manager) {
	t.Helper()
	return newTestDatasetAt(t, t.TempDir())
}

func newTestDatasetAt(t *testing.T, dir string) (*Dataset, *session.Manager) {
	t.Helper()
	ds, err := LoadDataset(context.Background(),
		repository.NewCustomerRepository(dir),
		repository.NewAdminRepository(dir),
		repository.NewTicketRepository(dir),
		repository.NewOrderRepository(dir),
	)
	require.NoError(t, err)
	return ds, session.NewManager()
}

// signupAndLogin registers a customer and returns its live session.
func signupAndLogin(t *testing.T, auth AuthService, username string) *session.Session {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, auth.Signup(ctx, session.RoleCustomer, username, "secret123", username+"@example.com"))
	sess, err := auth.Login(ctx, session.RoleCustomer, username, "secret123")
	require.NoError(t, err)
	return sess
}

func TestLoadDataset_SeedsCatalog(t *testing.T) {
	ds, _ := newTestDataset(t)

	require.Len(t, ds.tickets, 6)
	assert.Equal(t, "Single-Day Pass", ds.tickets[0].Type)
	assert.Equal(t, 275.0, ds.tickets[0].Price)
	assert.Equal(t, "VIP Experience Pass", ds.tickets[5].Type)
}

func TestLoadDataset_DoesNotReseedExistingCatalog(t *testing.T) {
	dir := t.TempDir()
	ds, _ := newTestDatasetAt(t, dir)

	catalog := NewCatalogService(ds)
	require.NoError(t, catalog.UpdateDiscounts(context.Background(), map[string]int{"Single-Day Pass": 30}))

	reloaded, _ := newTestDatasetAt(t, dir)
	require.Len(t, reloaded.tickets, 6)
	assert.Equal(t, 30, reloaded.tickets[0].Discount)
}

func TestOrderSequence(t *testing.T) {
	t.Run("empty starts at 1", func(t *testing.T) {
		seq := NewOrderSequence(nil)
		assert.Equal(t, 1, seq.Next())
		assert.Equal(t, 2, seq.Next())
	})

	t.Run("seeds from highest persisted ID", func(t *testing.T) {
		orders := []*model.Order{{ID: 3}, {ID: 7}, {ID: 5}}
		seq := NewOrderSequence(orders)
		assert.Equal(t, 8, seq.Next())
	})
}
