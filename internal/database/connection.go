// connection.go
//
// Property-management back office data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of imoveis.
// imoveis is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// imoveis is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with imoveis.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/localnerve/imoveis/internal/config"
	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	cgosqlite "gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a database connection from DATABASE_URL, or from the
// DB_* settings when no URL is configured.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Set connection pool settings. SQLite serialises writers, so one connection.
	limit := cfg.DBConnectionLimit
	if dialector.Name() == "sqlite" {
		limit = 1
	}
	sqlDB.SetMaxOpenConns(limit)
	sqlDB.SetMaxIdleConns(max(limit/2, 1))
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	utils.Logger.WithFields(logrus.Fields{
		"dialect":  dialector.Name(),
		"database": Describe(cfg),
	}).Info("Connected to database")

	return db, nil
}

// Open opens a gorm session that logs through the process logger and
// translates driver constraint errors into gorm errors.
func Open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(utils.Logger, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
}

// Dialector selects the driver: the scheme of DATABASE_URL when set,
// otherwise DB_TYPE.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	if cfg.DatabaseURL != "" {
		return urlDialector(cfg)
	}

	switch cfg.DBType {
	case "mysql", "mariadb":
		dsn := mysqldriver.NewConfig()
		dsn.User = cfg.DBUser
		dsn.Passwd = cfg.DBPassword
		dsn.Net = "tcp"
		dsn.Addr = hostPort(cfg.DBHost, cfg.DBPort, "3306")
		dsn.DBName = cfg.DBDatabase
		dsn.ParseTime = true
		dsn.Params = map[string]string{"charset": "utf8mb4"}
		return mysql.Open(dsn.FormatDSN()), nil

	case "postgres", "postgresql":
		sslmode := "disable"
		if cfg.DBSSLRequire && cfg.DBHost != "localhost" {
			sslmode = "require"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			orDefault(cfg.DBPort, "5432"),
			sslmode,
		)
		return postgres.Open(dsn), nil

	case "sqlite":
		// Pure Go driver; DBDatabase is the file path
		return sqlite.Open(sqliteDSN(cfg.DBDatabase, "_pragma=foreign_keys(1)")), nil

	case "sqlite3":
		// cgo driver
		return cgosqlite.Open(sqliteDSN(cfg.DBDatabase, "_foreign_keys=on")), nil

	case "sqlserver", "mssql":
		u := &url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
			Host:     hostPort(cfg.DBHost, cfg.DBPort, "1433"),
			RawQuery: url.Values{"database": {cfg.DBDatabase}}.Encode(),
		}
		return sqlserver.Open(u.String()), nil
	}

	return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
}

func urlDialector(cfg *config.Config) (gorm.Dialector, error) {
	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql", "pgsql":
		q := u.Query()
		if cfg.DBSSLRequire && q.Get("sslmode") == "" {
			q.Set("sslmode", "require")
		}
		u.Scheme = "postgres"
		u.RawQuery = q.Encode()
		return postgres.Open(u.String()), nil

	case "mysql", "mariadb":
		dsn := mysqldriver.NewConfig()
		dsn.User = u.User.Username()
		dsn.Passwd, _ = u.User.Password()
		dsn.Net = "tcp"
		dsn.Addr = hostPort(u.Hostname(), u.Port(), "3306")
		dsn.DBName = strings.TrimPrefix(u.Path, "/")
		dsn.ParseTime = true
		dsn.Params = map[string]string{"charset": "utf8mb4"}
		return mysql.Open(dsn.FormatDSN()), nil

	case "sqlite":
		return sqlite.Open(sqliteDSN(sqlitePath(u), "_pragma=foreign_keys(1)")), nil

	case "sqlserver", "mssql":
		u.Scheme = "sqlserver"
		return sqlserver.Open(u.String()), nil
	}

	return nil, fmt.Errorf("unsupported DATABASE_URL scheme: %q", u.Scheme)
}

// Describe names the configured database without credentials
func Describe(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		if u, err := url.Parse(cfg.DatabaseURL); err == nil {
			return u.Redacted()
		}
		return "DATABASE_URL"
	}
	return fmt.Sprintf("%s:%s", cfg.DBType, cfg.DBDatabase)
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN appends a connection parameter to a SQLite path or file: URI
func sqliteDSN(path, param string) string {
	if strings.Contains(path, "?") {
		return path + "&" + param
	}
	return path + "?" + param
}

// sqlitePath reads sqlite:///relative.db and sqlite:////absolute.db the way
// database URL parsers do.
func sqlitePath(u *url.URL) string {
	if u.Opaque != "" {
		return u.Opaque
	}
	p := strings.TrimPrefix(u.Path, "/")
	if u.Host != "" {
		p = u.Host + "/" + p
	}
	if p == "" || p == ":memory:" {
		return ":memory:"
	}
	return p
}

func hostPort(host, port, defaultPort string) string {
	return host + ":" + orDefault(port, defaultPort)
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
