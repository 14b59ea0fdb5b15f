// Package db provides the database connection and the generic queries the
// database suites are built from.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Open connects to MySQL using the given DSN. When dsn is empty the
// connection parameters are taken from the environment (a .env file in
// projectPath is loaded first if present).
func Open(dsn, projectPath string) (*sql.DB, error) {
	if dsn == "" {
		envPath := filepath.Join(projectPath, ".env")
		// .env file might not exist, that's okay - use environment variables
		_ = godotenv.Load(envPath)
		dsn = dsnFromEnv()
	}

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}
	return conn, nil
}

// dsnFromEnv builds a MySQL DSN from DB_* environment variables.
func dsnFromEnv() string {
	host := envOr("DB_HOST", "127.0.0.1")
	port := envOr("DB_PORT", "3306")
	user := envOr("DB_USERNAME", "root")
	password := os.Getenv("DB_PASSWORD")
	database := os.Getenv("DB_DATABASE")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, database)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ValidIdentifier validates a table or column name before it is interpolated
// into a query (identifiers cannot be bound as placeholders).
func ValidIdentifier(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// quoteIdent backtick-quotes a validated identifier.
func quoteIdent(name string) (string, error) {
	if !ValidIdentifier(name) {
		return "", fmt.Errorf("invalid identifier: %s", name)
	}
	return "`" + name + "`", nil
}

// TableNames lists the base tables of the connected schema.
func TableNames(conn *sql.DB) ([]string, error) {
	rows, err := conn.Query(
		"SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// FirstEmptyTable returns the name of the first table in the schema with no
// rows, or "" if every table has data.
func FirstEmptyTable(conn *sql.DB) (string, error) {
	tables, err := TableNames(conn)
	if err != nil {
		return "", err
	}
	for _, table := range tables {
		q, err := quoteIdent(table)
		if err != nil {
			return "", err
		}
		var count int64
		if err := conn.QueryRow("SELECT COUNT(*) FROM " + q).Scan(&count); err != nil {
			return "", fmt.Errorf("count %s: %w", table, err)
		}
		if count == 0 {
			return table, nil
		}
	}
	return "", nil
}

// FirstUnlinkedRow returns the value of sourceKey for the first row of
// sourceTable with no matching row in targetTable, or "" if every row links.
func FirstUnlinkedRow(conn *sql.DB, sourceTable, targetTable, sourceKey, targetKey string) (string, error) {
	st, err := quoteIdent(sourceTable)
	if err != nil {
		return "", err
	}
	tt, err := quoteIdent(targetTable)
	if err != nil {
		return "", err
	}
	sk, err := quoteIdent(sourceKey)
	if err != nil {
		return "", err
	}
	tk, err := quoteIdent(targetKey)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf(
		"SELECT s.%s FROM %s s LEFT JOIN %s t ON s.%s = t.%s WHERE t.%s IS NULL LIMIT 1",
		sk, st, tt, sk, tk, tk)
	var value string
	err = conn.QueryRow(query).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("link check %s -> %s: %w", sourceTable, targetTable, err)
	}
	return value, nil
}

// FirstMissingAttribute returns the primary key of the first row of table
// whose column is NULL or empty, or "" if every row has a value.
func FirstMissingAttribute(conn *sql.DB, table, column, primaryKey string) (string, error) {
	t, err := quoteIdent(table)
	if err != nil {
		return "", err
	}
	c, err := quoteIdent(column)
	if err != nil {
		return "", err
	}
	pk, err := quoteIdent(primaryKey)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NULL OR %s = '' LIMIT 1", pk, t, c, c)
	var value string
	err = conn.QueryRow(query).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("attribute check %s.%s: %w", table, column, err)
	}
	return value, nil
}

// SchemaName returns the name of the connected schema, for report messages.
func SchemaName(conn *sql.DB) string {
	var name sql.NullString
	if err := conn.QueryRow("SELECT DATABASE()").Scan(&name); err != nil || !name.Valid {
		return "database"
	}
	return name.String
}
