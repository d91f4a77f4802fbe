// internal/platform/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	productdom "storefront/internal/domain/product"
	userdom "storefront/internal/domain/user"
)

// demoProduct is the fixture shape before entity construction.
type demoProduct struct {
	id          string
	name        string
	description string
	price       float64
	image       string
	category    productdom.Category
	stock       int
}

var demoProducts = []demoProduct{
	{"1", "iPhone 17 Pro", "Latest iPhone with advanced camera system and A17 Pro chip",
		2000000, "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400", productdom.CategoryElectronics, 25},
	{"2", "MacBook Air M2", "Powerful laptop with M2 chip and long battery life",
		5000000, "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400", productdom.CategoryElectronics, 15},
	{"3", "Nike Air Max 270", "Comfortable running shoes with Max Air cushioning",
		10490.99, "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400", productdom.CategoryClothing, 50},
	{"4", "Wireless Headphones", "Premium noise-cancelling wireless headphones",
		32000.99, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", productdom.CategoryElectronics, 30},
	{"5", "Coffee Maker", "Automatic drip coffee maker with programmable timer",
		89000, "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400", productdom.CategoryHome, 20},
	{"6", "Yoga Mat", "Non-slip yoga mat for all types of yoga practice",
		39000, "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400", productdom.CategorySports, 40},
	{"7", "Skincare Set", "Complete skincare routine with cleanser, toner, and moisturizer",
		50000, "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=400", productdom.CategoryBeauty, 35},
	{"8", "Gaming Controller", "Wireless gaming controller compatible with multiple platforms",
		19000, "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400", productdom.CategoryElectronics, 45},
}

type demoUser struct {
	id       string
	email    string
	name     string
	password string
	isAdmin  bool
}

var demoUsers = []demoUser{
	{"1", "admin@example.com", "Admin User", "admin123", true},
	{"2", "user@example.com", "John Doe", "password123", false},
}

// Products loads the demo catalog into repo. Existing ids are skipped, so
// seeding is idempotent against a durable store.
func Products(ctx context.Context, repo productdom.Repository, now time.Time) error {
	for _, d := range demoProducts {
		if _, err := repo.GetByID(ctx, d.id); err == nil {
			continue
		}
		p, err := productdom.New(d.id, d.name, d.description, d.price, d.image, d.category, d.stock, now)
		if err != nil {
			return fmt.Errorf("seed: building product %s: %w", d.id, err)
		}
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: inserting product %s: %w", d.id, err)
		}
	}
	log.Printf("[seed] catalog ready (%d products)", len(demoProducts))
	return nil
}

// Users loads the demo accounts into repo (passwords bcrypt-hashed).
func Users(ctx context.Context, repo userdom.Repository, now time.Time) error {
	for _, d := range demoUsers {
		if _, err := repo.GetByEmail(ctx, d.email); err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hashing password for %s: %w", d.email, err)
		}
		u, err := userdom.New(d.id, d.email, d.name, string(hash), d.isAdmin, now)
		if err != nil {
			return fmt.Errorf("seed: building user %s: %w", d.email, err)
		}
		if _, err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed: inserting user %s: %w", d.email, err)
		}
	}
	log.Printf("[seed] users ready (%d accounts)", len(demoUsers))
	return nil
}
