package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/tdstudios/storefront/internal/catalog"
	_ "modernc.org/sqlite"
)

const (
	numUsers       = 25
	numOrders      = 40
	numActiveCarts = 8
)

var (
	db      *sql.DB
	userIDs []string
)

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/storefront.db"
	}

	var err error
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("🌱 Starting database seeding...")
	fmt.Println()

	clearFakeData()

	seedUsers()
	seedOrders()
	seedActiveCarts()

	fmt.Println()
	fmt.Println("✅ Database seeding completed!")
	printSummary()
}

func clearFakeData() {
	fmt.Println("🧹 Clearing existing fake data...")

	// Clear in reverse dependency order
	tables := []string{
		"cart_items",
		"order_items",
		"orders",
		"user_roles",
		"users",
	}

	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			log.Printf("Warning: failed to clear %s: %v", table, err)
		}
	}

	fmt.Println("✓ Cleared existing fake data")
	fmt.Println()
}

func seedUsers() {
	fmt.Println("👥 Creating users...")

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	userStmt, err := tx.Prepare(`
		INSERT INTO users (id, clerk_id, email, first_name, last_name, full_name)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		log.Fatalf("Failed to prepare statement: %v", err)
	}
	defer userStmt.Close()

	roleStmt, err := tx.Prepare(`INSERT INTO user_roles (user_id, role) VALUES (?, ?)`)
	if err != nil {
		log.Fatalf("Failed to prepare statement: %v", err)
	}
	defer roleStmt.Close()

	for i := 0; i < numUsers; i++ {
		id := ulid.Make().String()
		first := gofakeit.FirstName()
		last := gofakeit.LastName()

		_, err = userStmt.Exec(
			id,
			fmt.Sprintf("user_%s", gofakeit.LetterN(24)),
			gofakeit.Email(),
			first,
			last,
			first+" "+last,
		)
		if err != nil {
			log.Fatalf("Failed to insert user: %v", err)
		}
		userIDs = append(userIDs, id)

		// First user is the admin, second the brand account; the rest get
		// no role record to mirror how real sign-ups arrive.
		role := ""
		switch i {
		case 0:
			role = "admin"
		case 1:
			role = "brand"
		}
		if role != "" {
			if _, err := roleStmt.Exec(id, role); err != nil {
				log.Fatalf("Failed to insert role: %v", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit users: %v", err)
	}

	fmt.Printf("✓ Created %d users\n", numUsers)
}

func seedOrders() {
	fmt.Println("🛍️ Creating orders...")

	products := catalog.Merch()

	for i := 0; i < numOrders; i++ {
		orderID := uuid.New().String()

		numItems := 1 + rand.Intn(3)
		var subtotal int64
		type line struct {
			name  string
			qty   int64
			price int64
			total int64
		}
		var lines []line
		for j := 0; j < numItems; j++ {
			p := products[rand.Intn(len(products))]
			qty := int64(1 + rand.Intn(2))
			lines = append(lines, line{p.Name, qty, p.PriceCents, p.PriceCents * qty})
			subtotal += p.PriceCents * qty
		}

		tax := int64(float64(subtotal) * 0.0875)
		total := subtotal + 499 + tax

		_, err := db.Exec(`
			INSERT INTO orders (
				id, stripe_checkout_session_id, stripe_payment_intent_id,
				customer_email, customer_name, subtotal_cents, tax_cents, total_cents, status, created_at
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			orderID,
			fmt.Sprintf("cs_test_%s", gofakeit.LetterN(24)),
			fmt.Sprintf("pi_%s", gofakeit.LetterN(24)),
			gofakeit.Email(),
			gofakeit.Name(),
			subtotal,
			tax,
			total,
			"confirmed",
			gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()).Format("2006-01-02 15:04:05"),
		)
		if err != nil {
			log.Fatalf("Failed to insert order: %v", err)
		}

		for _, l := range lines {
			_, err := db.Exec(`
				INSERT INTO order_items (id, order_id, product_name, quantity, price_cents, total_cents)
				VALUES (?, ?, ?, ?, ?, ?)
			`, ulid.Make().String(), orderID, l.name, l.qty, l.price, l.total)
			if err != nil {
				log.Fatalf("Failed to insert order item: %v", err)
			}
		}
	}

	fmt.Printf("✓ Created %d orders\n", numOrders)
}

func seedActiveCarts() {
	fmt.Println("🛒 Creating active carts...")

	products := catalog.Merch()

	for i := 0; i < numActiveCarts; i++ {
		sessionID := ulid.Make().String()
		numItems := 1 + rand.Intn(3)

		for j := 0; j < numItems; j++ {
			p := products[rand.Intn(len(products))]
			size := ""
			if catalog.RequiresSize(p.Category) {
				size = []string{"S", "M", "L", "XL"}[rand.Intn(4)]
			}

			_, err := db.Exec(`
				INSERT OR IGNORE INTO cart_items (id, session_id, product_id, product_name, size, price_cents, quantity)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, ulid.Make().String(), sessionID, p.ID, p.Name, size, p.PriceCents, int64(1+rand.Intn(2)))
			if err != nil {
				log.Fatalf("Failed to insert cart item: %v", err)
			}
		}
	}

	fmt.Printf("✓ Created %d active carts\n", numActiveCarts)
}

func printSummary() {
	fmt.Println()
	fmt.Println("Summary:")
	for _, table := range []string{"users", "user_roles", "orders", "order_items", "cart_items"} {
		var count int64
		if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
			continue
		}
		fmt.Printf("  %-12s %d\n", table, count)
	}
}
