package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createAuthTables(db); err != nil {
		return err
	}

	if err := createBillingTables(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createAuthTables(db *sql.DB) error {
	query := `
		CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			username VARCHAR(100) NOT NULL DEFAULT '',
			first_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			acca_id VARCHAR(50) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(50) UNIQUE NOT NULL
		);

		CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		INSERT INTO roles (name) VALUES ('admin'), ('super_admin')
		ON CONFLICT (name) DO NOTHING;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for auth tables: %v", err)
		return err
	}
	return nil
}

func createBillingTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			student_id UUID NOT NULL REFERENCES users(id),
			invoice_number VARCHAR(50) UNIQUE NOT NULL,
			fee_type VARCHAR(100) NOT NULL DEFAULT '',
			subject VARCHAR(255) NOT NULL DEFAULT '',
			total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			issue_date DATE NOT NULL,
			due_date DATE NOT NULL,
			paid_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_invoices_student ON invoices(student_id);
		CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status);

		CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			invoice_id UUID NOT NULL REFERENCES invoices(id),
			fee_type VARCHAR(100) NOT NULL,
			subject VARCHAR(255) NOT NULL DEFAULT '',
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			original_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			discount_applied NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_fees_invoice ON fees(invoice_id);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for billing tables: %v", err)
		return err
	}
	return nil
}
