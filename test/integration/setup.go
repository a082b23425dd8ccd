package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"seacoff/internal/database"
	"seacoff/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, connects a pool to it and
// applies the application schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedMenus inserts test menu data and returns the inserted rows.
func SeedMenus(t *testing.T, pool *pgxpool.Pool) []model.Menu {
	t.Helper()

	ctx := context.Background()

	menus := []model.Menu{
		{ID: uuid.New(), Name: "Americano", Description: "Espresso with hot water", Price: 15000, Category: "coffee"},
		{ID: uuid.New(), Name: "Cappuccino", Description: "Espresso with steamed milk", Price: 20000, Category: "coffee"},
		{ID: uuid.New(), Name: "Croissant", Description: "Butter croissant", Price: 15000, Category: "pastry"},
	}

	for _, m := range menus {
		_, err := pool.Exec(ctx,
			"INSERT INTO menus (id, name, description, price, category) VALUES ($1, $2, $3, $4, $5)",
			m.ID, m.Name, m.Description, m.Price, m.Category,
		)
		if err != nil {
			t.Fatalf("failed to seed menu %s: %v", m.Name, err)
		}
	}

	return menus
}

// SeedAdmin inserts an admin account with a bcrypt-hashed password and
// returns its ID.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, username, password string) uuid.UUID {
	t.Helper()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	id := uuid.New()
	_, err = pool.Exec(ctx,
		"INSERT INTO admins (id, username, password_hash) VALUES ($1, $2, $3)",
		id, username, string(hash),
	)
	if err != nil {
		t.Fatalf("failed to seed admin %s: %v", username, err)
	}

	return id
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "cart_items", "customers", "menus", "admins"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
