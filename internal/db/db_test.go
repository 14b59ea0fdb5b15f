package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIdentifier(t *testing.T) {
	valid := []string{"organism", "genome_release", "Table1", "a"}
	for _, name := range valid {
		assert.True(t, ValidIdentifier(name), name)
	}

	invalid := []string{
		"",
		"drop table x",
		"name;--",
		"back`tick",
		"dotted.name",
		string(make([]byte, 65)),
	}
	for _, name := range invalid {
		assert.False(t, ValidIdentifier(name), name)
	}
}

func TestDSNFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USERNAME", "checker")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE", "metadata")

	assert.Equal(t, "checker:secret@tcp(db.internal:3307)/metadata", dsnFromEnv())
}

func TestDSNFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USERNAME", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_DATABASE", "")

	assert.Equal(t, "root:@tcp(127.0.0.1:3306)/", dsnFromEnv())
}
