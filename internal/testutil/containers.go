package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/localnerve/imoveis/internal/utils"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresImage is the image started by StartPostgres
const PostgresImage = "postgres:17-alpine"

const (
	postgresUser     = "imoveis"
	postgresPassword = "imoveis"
	postgresDatabase = "imoveis"
)

// PostgresContainer is a disposable PostgreSQL server
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
}

// Terminate stops and removes the container
func (pc *PostgresContainer) Terminate(t *testing.T) {
	if pc == nil || pc.Container == nil {
		return
	}
	if err := pc.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate PostgreSQL: %v", err)
	}
}

// StartPostgres runs PostgreSQL in a container and returns a DATABASE_URL
// for it. t may be nil when called outside of a test.
func StartPostgres(ctx context.Context, t *testing.T) (*PostgresContainer, error) {
	tcpPort, err := nat.NewPort("tcp", "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL port: %w", err)
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        PostgresImage,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"POSTGRES_USER":     postgresUser,
				"POSTGRES_PASSWORD": postgresPassword,
				"POSTGRES_DB":       postgresDatabase,
			},
			HostConfigModifier: func(hostConfig *container.HostConfig) {
				// data dir in memory; nothing outlives the container
				hostConfig.Tmpfs = map[string]string{"/var/lib/postgresql/data": "rw"}
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort(tcpPort),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start PostgreSQL: %w", err)
	}
	pc := &PostgresContainer{Container: pgContainer}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		pc.Terminate(t)
		return nil, fmt.Errorf("failed to get PostgreSQL host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, tcpPort)
	if err != nil {
		pc.Terminate(t)
		return nil, fmt.Errorf("failed to get PostgreSQL port: %w", err)
	}

	pc.URL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, host, port.Port(), postgresDatabase)
	logMessage(t, "DATABASE_URL=%s", pc.URL)

	return pc, nil
}

func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
		return
	}
	utils.Logger.Infof(format, args...)
}
