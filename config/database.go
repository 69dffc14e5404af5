package config

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	once sync.Once
)

// ConnectDB 连接数据库
func ConnectDB() (*sql.DB, error) {
	c := Get()
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4",
		c.Database.Username, c.Database.Password, c.Database.Hostname, c.Database.Name)
	return sql.Open("mysql", dsn)
}

// InitDB 初始化数据库连接
func InitDB() {
	once.Do(func() {
		var err error
		DB, err = ConnectDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err = DB.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		// 自动迁移数据库
		if err = autoMigrate(DB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		log.Println("Database connected and migrated successfully")
	})
}

// autoMigrate 自动迁移数据库
func autoMigrate(db *sql.DB) error {
	// 创建 migrations 表用于跟踪迁移状态
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %v", err)
	}

	// 运行所有迁移
	migrations := getMigrations()
	for _, migration := range migrations {
		if err := runMigrationIfNotExists(db, migration); err != nil {
			return fmt.Errorf("failed to run migration %s: %v", migration.Name, err)
		}
	}

	return nil
}

// Migration 迁移结构
type Migration struct {
	Name string
	SQL  string
}

// createMigrationsTable 创建迁移表
func createMigrationsTable(db *sql.DB) error {
	createSQL := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`
	_, err := db.Exec(createSQL)
	return err
}

// getMigrations 获取所有迁移
func getMigrations() []Migration {
	return []Migration{
		{
			Name: "001_create_users_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INT AUTO_INCREMENT PRIMARY KEY,
				username VARCHAR(255) UNIQUE,
				password VARCHAR(255),
				phone VARCHAR(20),
				preferred_language VARCHAR(8) DEFAULT 'en',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_username (username),
				INDEX idx_phone (phone)
			)
			`,
		},
		{
			Name: "002_create_expert_requests_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS expert_requests (
				id INT AUTO_INCREMENT PRIMARY KEY,
				user_id INT,
				ticket VARCHAR(32) NOT NULL UNIQUE,
				phone VARCHAR(20) NOT NULL,
				question TEXT NOT NULL,
				language VARCHAR(8) DEFAULT 'en',
				intent VARCHAR(20),
				crops VARCHAR(255),
				symptoms VARCHAR(255),
				advice TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_ticket (ticket),
				INDEX idx_user_id (user_id),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
			)
			`,
		},
		{
			Name: "003_create_forum_posts_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS forum_posts (
				id INT AUTO_INCREMENT PRIMARY KEY,
				user_id INT,
				author VARCHAR(255),
				text TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_user_id (user_id),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
			)
			`,
		},
		{
			Name: "004_create_feedback_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS feedback (
				id INT AUTO_INCREMENT PRIMARY KEY,
				user_id INT,
				text TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_user_id (user_id),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
			)
			`,
		},
	}
}

// runMigrationIfNotExists 如果迁移不存在则运行
func runMigrationIfNotExists(db *sql.DB, migration Migration) error {
	// 检查迁移是否已执行
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", migration.Name).Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Printf("Migration %s already executed, skipping", migration.Name)
		return nil
	}

	// 执行迁移
	log.Printf("Running migration: %s", migration.Name)
	if _, err := db.Exec(migration.SQL); err != nil {
		return err
	}

	// 记录迁移已执行
	_, err = db.Exec("INSERT INTO migrations (name) VALUES (?)", migration.Name)
	return err
}
