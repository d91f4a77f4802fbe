package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/adapters/out/memory"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
	userdom "storefront/internal/domain/user"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

// sequentialID yields "id-1", "id-2", ... so tests can predict assigned ids.
func sequentialID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func seedProduct(t *testing.T, repo productdom.Repository, id, name string, price float64, stock int) productdom.Product {
	t.Helper()
	p, err := productdom.New(id, name, "desc for "+name, price, "https://img/"+id, productdom.CategoryElectronics, stock, testNow)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func seedUser(t *testing.T, repo userdom.Repository, id, email, password string) userdom.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := userdom.New(id, email, "Test User", string(hash), false, testNow)
	require.NoError(t, err)
	created, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	return created
}

func validAddress() orderdom.Address {
	return orderdom.Address{
		Street:  "123 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "USA",
	}
}

// recordingMailer captures confirmation sends for assertions.
type recordingMailer struct {
	sent []string // recipient emails
	err  error
}

func (m *recordingMailer) SendOrderConfirmation(_ context.Context, toEmail string, _ orderdom.Order) error {
	m.sent = append(m.sent, toEmail)
	return m.err
}

func newMemStores() (*memory.ProductRepositoryMem, *memory.CartRepositoryMem, *memory.OrderRepositoryMem, *memory.UserRepositoryMem) {
	return memory.NewProductRepositoryMem(),
		memory.NewCartRepositoryMem(),
		memory.NewOrderRepositoryMem(),
		memory.NewUserRepositoryMem()
}
