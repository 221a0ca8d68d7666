package database

import (
	"net/url"
	"path/filepath"
	"testing"

	"github.com/localnerve/imoveis/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func TestDialectorByType(t *testing.T) {
	tests := []struct {
		dbType string
		want   string
	}{
		{dbType: "sqlite", want: "sqlite"},
		{dbType: "sqlite3", want: "sqlite"},
		{dbType: "mysql", want: "mysql"},
		{dbType: "mariadb", want: "mysql"},
		{dbType: "postgres", want: "postgres"},
		{dbType: "sqlserver", want: "sqlserver"},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			cfg := &config.Config{DBType: tt.dbType, DBHost: "localhost", DBDatabase: "imoveis"}
			d, err := Dialector(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}

	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestDialectorFromURL(t *testing.T) {
	d, err := Dialector(&config.Config{
		DatabaseURL:  "postgresql://u:p@db.example.com:5432/imoveis",
		DBSSLRequire: true,
		DBType:       "sqlite",
	})
	require.NoError(t, err)
	require.Equal(t, "postgres", d.Name())
	pg, ok := d.(*postgres.Dialector)
	require.True(t, ok)
	assert.Contains(t, pg.DSN, "sslmode=require")
	assert.Contains(t, pg.DSN, "postgres://")

	d, err = Dialector(&config.Config{DatabaseURL: "postgres://u:p@db/imoveis?sslmode=disable", DBSSLRequire: true})
	require.NoError(t, err)
	assert.Contains(t, d.(*postgres.Dialector).DSN, "sslmode=disable")

	d, err = Dialector(&config.Config{DatabaseURL: "mysql://u:p@db:3306/imoveis"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = Dialector(&config.Config{DatabaseURL: "redis://cache:6379"})
	assert.Error(t, err)
}

func TestSQLitePath(t *testing.T) {
	tests := map[string]string{
		"sqlite:///db.sqlite3":      "db.sqlite3",
		"sqlite:////tmp/imoveis.db": "/tmp/imoveis.db",
		"sqlite://":                 ":memory:",
	}
	for raw, want := range tests {
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, want, sqlitePath(u), raw)
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "db.sqlite3?_pragma=foreign_keys(1)", sqliteDSN("db.sqlite3", "_pragma=foreign_keys(1)"))
	assert.Equal(t, "file:x.db?mode=rwc&_foreign_keys=on", sqliteDSN("file:x.db?mode=rwc", "_foreign_keys=on"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "postgres://u:xxxxx@db/imoveis", Describe(&config.Config{DatabaseURL: "postgres://u:secret@db/imoveis"}))
	assert.Equal(t, "sqlite:db.sqlite3", Describe(&config.Config{DBType: "sqlite", DBDatabase: "db.sqlite3"}))
}

func TestConnectSQLiteFile(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "imoveis.db"),
		DBConnectionLimit: 5,
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))
	for _, table := range []string{"imoveis", "locadores", "locatarios", "fiadores", "intermediarios", "contratos", "pagamentos", "manutencoes", "documentos"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}
