package db

import (
	"context"
	"fmt"
)

// Both dialects materialize the same logical tables: equivalent columns,
// the same uniqueness constraints (email, slug, (date,time) on slots and
// appointments) and the same user→appointments/reviews cascade.
//
// MySQL has no partial indexes, so appointments carry a full UNIQUE(date,time)
// there; Postgres scopes the constraint to non-cancelled rows.

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_active BOOLEAN DEFAULT FALSE,
		role ENUM('user', 'admin') DEFAULT 'user',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS available_slots (
		id INT AUTO_INCREMENT PRIMARY KEY,
		date DATE NOT NULL,
		time TIME NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY unique_slot (date, time)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		date DATE NOT NULL,
		time TIME NOT NULL,
		notes TEXT,
		status ENUM('pending', 'confirmed', 'cancelled') DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		UNIQUE KEY unique_appointment (date, time)
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		duration INT NOT NULL,
		category VARCHAR(100) NOT NULL,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) UNIQUE NOT NULL,
		excerpt TEXT NOT NULL,
		content LONGTEXT NOT NULL,
		image_url VARCHAR(500),
		category VARCHAR(100) NOT NULL,
		is_published BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		rating INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
		comment TEXT NOT NULL,
		is_approved BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS metamorphoses (
		id INT AUTO_INCREMENT PRIMARY KEY,
		treatment_name VARCHAR(255) NOT NULL,
		before_image VARCHAR(500) NOT NULL,
		after_image VARCHAR(500) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id INT AUTO_INCREMENT PRIMARY KEY,
		admin_id INT NOT NULL,
		action VARCHAR(50) NOT NULL,
		entity VARCHAR(50),
		entity_id INT,
		metadata TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_active BOOLEAN DEFAULT FALSE,
		role VARCHAR(10) DEFAULT 'user' CHECK (role IN ('user', 'admin')),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS available_slots (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		date DATE NOT NULL,
		time TIME NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (date, time)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		time TIME NOT NULL,
		notes TEXT,
		status VARCHAR(10) DEFAULT 'pending' CHECK (status IN ('pending', 'confirmed', 'cancelled')),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS unique_active_appointment
		ON appointments (date, time) WHERE status <> 'cancelled'`,
	`CREATE TABLE IF NOT EXISTS services (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		duration INT NOT NULL,
		category VARCHAR(100) NOT NULL,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) UNIQUE NOT NULL,
		excerpt TEXT NOT NULL,
		content TEXT NOT NULL,
		image_url VARCHAR(500),
		category VARCHAR(100) NOT NULL,
		is_published BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		rating INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
		comment TEXT NOT NULL,
		is_approved BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS metamorphoses (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		treatment_name VARCHAR(255) NOT NULL,
		before_image VARCHAR(500) NOT NULL,
		after_image VARCHAR(500) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id INT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		admin_id INT NOT NULL,
		action VARCHAR(50) NOT NULL,
		entity VARCHAR(50),
		entity_id INT,
		metadata TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Default admin credential: "admin123", same seeded hash the frontend expects.
const seededAdminHash = "$2b$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// InitSchema creates the tables for the active dialect and seeds the system
// admin account. Idempotent; safe to run on every start.
func InitSchema(ctx context.Context, adapter QueryAdapter) error {
	statements := mysqlSchema
	if adapter.Dialect() == "postgres" {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := adapter.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	seedAdmin := adapter.InsertIgnore(
		"users",
		[]string{"first_name", "last_name", "phone", "email", "password_hash", "is_active", "role"},
		[]string{"email"},
	)
	if _, err := adapter.Exec(ctx, seedAdmin,
		"Admin", "System", "123456789", "admin@example.com", seededAdminHash, true, "admin",
	); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return seedDemoContent(ctx, adapter)
}

var demoUsers = [][]any{
	{"Anna", "Kowalska", "123456789", "anna.kowalska@example.com", "manual_account", true},
	{"Piotr", "Nowak", "987654321", "piotr.nowak@example.com", seededAdminHash, true},
	{"Maria", "Wiśniewska", "555666777", "maria.wisniewska@example.com", "manual_account", false},
	{"Jan", "Kowalski", "111222333", "jan.kowalski@example.com", seededAdminHash, true},
	{"Katarzyna", "Zielińska", "444555666", "katarzyna.zielinska@example.com", "manual_account", true},
}

var demoServices = [][]any{
	{"Manicure klasyczny", "Profesjonalny manicure z lakierowaniem", 80.00, 60, "Manicure"},
	{"Manicure hybrydowy", "Trwały manicure hybrydowy", 120.00, 90, "Manicure"},
	{"Pedicure klasyczny", "Pielęgnacja stóp z lakierowaniem", 100.00, 75, "Pedicure"},
	{"Oczyszczanie twarzy", "Głębokie oczyszczanie skóry twarzy", 150.00, 60, "Pielęgnacja twarzy"},
	{"Peeling chemiczny", "Profesjonalny peeling kwasami", 200.00, 45, "Pielęgnacja twarzy"},
	{"Laminacja brwi", "Modelowanie i laminacja brwi", 80.00, 45, "Stylizacja brwi"},
	{"Mezoterapia igłowa", "Odmładzająca mezoterapia", 300.00, 60, "Medycyna estetyczna"},
}

var demoArticles = [][]any{
	{
		"Jak dbać o skórę po zabiegu oczyszczania", "jak-dbac-o-skore-po-zabiegu",
		"Poznaj najważniejsze zasady pielęgnacji skóry po profesjonalnym oczyszczaniu twarzy.",
		"<h2>Pielęgnacja po zabiegu</h2><p>Po zabiegu oczyszczania twarzy skóra wymaga szczególnej opieki.</p>",
		"Pielęgnacja", true,
	},
	{
		"Trendy w stylizacji brwi 2024", "trendy-stylizacja-brwi-2024",
		"Odkryj najgorętsze trendy w stylizacji brwi na nadchodzący sezon.",
		"<h2>Naturalne brwi</h2><p>W 2024 roku brwi nadal pozostają w centrum uwagi.</p>",
		"Stylizacja", true,
	},
	{
		"Przygotowanie do manicure hybrydowego", "przygotowanie-manicure-hybrydowy",
		"Dowiedz się jak przygotować paznokcie do trwałego manicure.",
		"<h2>Krok po kroku</h2><p>Manicure hybrydowy to doskonały sposób na piękne paznokcie.</p>",
		"Manicure", true,
	},
}

// seedDemoContent loads the starter dataset on a fresh database. Users and
// articles dedupe on their unique keys; services have none, so they are only
// inserted into an empty table.
func seedDemoContent(ctx context.Context, adapter QueryAdapter) error {
	seedUser := adapter.InsertIgnore(
		"users",
		[]string{"first_name", "last_name", "phone", "email", "password_hash", "is_active"},
		[]string{"email"},
	)
	for _, row := range demoUsers {
		if _, err := adapter.Exec(ctx, seedUser, row...); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	var serviceCount int
	if err := adapter.QueryRow(ctx, "SELECT COUNT(*) FROM services").Scan(&serviceCount); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if serviceCount == 0 {
		for _, row := range demoServices {
			if _, err := adapter.Exec(ctx,
				"INSERT INTO services (name, description, price, duration, category) VALUES (?, ?, ?, ?, ?)",
				row...,
			); err != nil {
				return fmt.Errorf("seed services: %w", err)
			}
		}
	}

	seedArticle := adapter.InsertIgnore(
		"articles",
		[]string{"title", "slug", "excerpt", "content", "category", "is_published"},
		[]string{"slug"},
	)
	for _, row := range demoArticles {
		if _, err := adapter.Exec(ctx, seedArticle, row...); err != nil {
			return fmt.Errorf("seed articles: %w", err)
		}
	}

	return nil
}
