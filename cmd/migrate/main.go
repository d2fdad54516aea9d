package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get database URL
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	// Get command
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	// Connect to database
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("✅ Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`DROP TABLE IF EXISTS ballots CASCADE`,
		`DROP TABLE IF EXISTS candidates CASCADE`,
		`DROP TABLE IF EXISTS elections CASCADE`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		fmt.Printf("  Dropped: %s\n", query)
	}

	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		// Create elections table
		`CREATE TABLE IF NOT EXISTS elections (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'upcoming'
				CHECK (status IN ('upcoming', 'active', 'closed')),
			results_published BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Create candidates table
		`CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			department VARCHAR(255) NOT NULL,
			year VARCHAR(20) NOT NULL,
			photo TEXT,
			election_id UUID NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Create ballots table; the unique constraint is what actually
		// enforces one ballot per voter per election under concurrency
		`CREATE TABLE IF NOT EXISTS ballots (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			voter_id VARCHAR(255) NOT NULL,
			election_id UUID NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
			candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT ballots_voter_election_unique UNIQUE (voter_id, election_id)
		)`,

		// Create indexes
		`CREATE INDEX IF NOT EXISTS idx_candidates_election_id ON candidates(election_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ballots_election_id ON ballots(election_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ballots_candidate_id ON ballots(candidate_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ballots_voter_id ON ballots(voter_id)`,
		`CREATE INDEX IF NOT EXISTS idx_elections_status ON elections(status)`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w\nQuery: %s", err, query)
		}
		fmt.Printf("  Created: %s\n", describeQuery(query))
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	// Insert a sample election
	var electionID string
	err := conn.QueryRow(ctx, `
		INSERT INTO elections (name, description, start_date, end_date, status)
		VALUES (
			'Student Council President 2026',
			'Annual election for the student council president.',
			NOW() - INTERVAL '1 day',
			NOW() + INTERVAL '6 days',
			'active'
		)
		RETURNING id
	`).Scan(&electionID)
	if err != nil {
		return fmt.Errorf("failed to seed election: %w", err)
	}

	fmt.Println("  Seeded 1 election")

	// Insert sample candidates
	query := `
		INSERT INTO candidates (name, department, year, photo, election_id) VALUES
		('Aditi Sharma', 'Computer Science', '3', '', $1),
		('Rahul Verma', 'Mechanical Engineering', '4', '', $1),
		('Priya Nair', 'Electronics', '2', '', $1)
	`

	if _, err := conn.Exec(ctx, query, electionID); err != nil {
		return fmt.Errorf("failed to seed candidates: %w", err)
	}

	fmt.Println("  Seeded 3 candidates")

	return nil
}

func describeQuery(query string) string {
	if len(query) > 50 {
		return query[:50] + "..."
	}
	return query
}
