// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/http/handler"
	"storefront/internal/adapters/out/db"
	fsadapter "storefront/internal/adapters/out/firestore"
	"storefront/internal/adapters/out/mail"
	"storefront/internal/adapters/out/memory"
	usecase "storefront/internal/application/usecase"
	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
	userdom "storefront/internal/domain/user"
	"storefront/internal/infra/config"
	"storefront/internal/infra/database"
	firestoreinfra "storefront/internal/infra/firestore"
	"storefront/internal/platform/seed"
)

type closer interface {
	Close() error
}

// Container wires repositories, usecases, and the HTTP router from config.
// Constructed once at process start; consumers receive dependencies
// explicitly (no ambient globals).
type Container struct {
	Products productdom.Repository
	Carts    cartdom.Repository
	Orders   orderdom.Repository
	Users    userdom.Repository

	CatalogUC  *usecase.CatalogUsecase
	CartUC     *usecase.CartUsecase
	AuthUC     *usecase.AuthUsecase
	CheckoutUC *usecase.CheckoutUsecase
	OrderUC    *usecase.OrderUsecase

	Handler http.Handler

	closers []closer
}

// New builds the container for cfg.
//
// Backends:
// - STORE=memory (default) | postgres   -> products + orders
// - CART_STORE=memory (default) | firestore
// - users are always in memory (demo accounts; see SEED_DEMO_DATA)
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("di: cfg is nil")
	}

	c := &Container{}

	// ── stores ──────────────────────────────────────────────
	switch cfg.Store {
	case config.StorePostgres:
		conn, err := database.NewConnection(cfg.PGHost, cfg.PGPort, cfg.PGUser, cfg.PGPassword, cfg.PGDatabase)
		if err != nil {
			return nil, fmt.Errorf("di: postgres: %w", err)
		}
		c.closers = append(c.closers, conn)
		c.Products = db.NewProductRepositoryPG(conn.Client)
		c.Orders = db.NewOrderRepositoryPG(conn.Client)
		log.Printf("[di] catalog/order store = postgres")
	case config.StoreMemory:
		c.Products = memory.NewProductRepositoryMem()
		c.Orders = memory.NewOrderRepositoryMem()
		log.Printf("[di] catalog/order store = memory")
	default:
		return nil, fmt.Errorf("di: unknown STORE %q", cfg.Store)
	}

	switch cfg.CartStore {
	case config.StoreFirestore:
		fs, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("di: firestore: %w", err)
		}
		c.closers = append(c.closers, fs)
		c.Carts = fsadapter.NewCartRepositoryFS(fs.Client)
		log.Printf("[di] cart store = firestore")
	case config.StoreMemory:
		c.Carts = memory.NewCartRepositoryMem()
		log.Printf("[di] cart store = memory")
	default:
		return nil, fmt.Errorf("di: unknown CART_STORE %q", cfg.CartStore)
	}

	c.Users = memory.NewUserRepositoryMem()

	// ── mailer (optional) ───────────────────────────────────
	var mailer usecase.OrderMailerPort
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewOrderMailer(mail.NewSendGridClient(cfg.SendGridAPIKey), cfg.SendGridFrom)
		log.Printf("[di] order mailer = sendgrid from=%s", cfg.SendGridFrom)
	} else {
		log.Printf("[di] order mailer disabled (SENDGRID_API_KEY empty)")
	}

	// ── usecases ────────────────────────────────────────────
	c.CatalogUC = usecase.NewCatalogUsecase(c.Products)
	c.CartUC = usecase.NewCartUsecase(c.Carts, c.Products)
	c.AuthUC = usecase.NewAuthUsecase(c.Users)
	c.CheckoutUC = usecase.NewCheckoutUsecase(c.Carts, c.Products, c.Orders, c.Users, mailer)
	c.OrderUC = usecase.NewOrderUsecase(c.Orders)

	// ── router ──────────────────────────────────────────────
	mux := http.NewServeMux()
	httpin.Register(mux, httpin.Deps{
		Catalog:  handler.NewCatalogHandler(c.CatalogUC, c.Users),
		Auth:     handler.NewAuthHandler(c.AuthUC),
		Cart:     handler.NewCartHandler(c.CartUC),
		Checkout: handler.NewCheckoutHandler(c.CheckoutUC),
		Order:    handler.NewOrderHandler(c.OrderUC, c.Users),
	})
	c.Handler = mux

	return c, nil
}

// Seed loads demo fixtures into the configured stores.
func (c *Container) Seed(ctx context.Context) error {
	now := time.Now()
	if err := seed.Products(ctx, c.Products, now); err != nil {
		return err
	}
	return seed.Users(ctx, c.Users, now)
}

// Close releases infra clients (reverse order).
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			log.Printf("[di] WARN: close failed: %v", err)
		}
	}
}
