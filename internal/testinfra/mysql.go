package testinfra

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	MySQLImage        = "mysql:8.4"
	MySQLUser         = "root"
	MySQLPassword     = "sqlstage"
	MySQLDatabase     = "sqlstage"
	mysqlPort         = "3306/tcp"
	mysqlStartTimeout = 120 * time.Second
)

// MySQLContainer is a throwaway MySQL server with the mysql client inside,
// so it can serve as the target of a containerized load.
type MySQLContainer struct {
	testcontainers.Container
	ID  string
	DSN string
}

func StartMySQL(ctx context.Context) (*MySQLContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        MySQLImage,
		ExposedPorts: []string{mysqlPort},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": MySQLPassword,
			"MYSQL_DATABASE":      MySQLDatabase,
		},
		// The entrypoint starts a temporary server first; only the final one listens on 3306.
		WaitingFor: wait.ForAll(
			wait.ForLog("port: 3306  MySQL Community Server"),
			wait.ForListeningPort(mysqlPort),
		).WithDeadline(mysqlStartTimeout),
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start mysql: %w", err)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := ctr.MappedPort(ctx, mysqlPort)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	cfg := mysql.NewConfig()
	cfg.User = MySQLUser
	cfg.Passwd = MySQLPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, port.Port())
	cfg.DBName = MySQLDatabase

	return &MySQLContainer{
		Container: ctr,
		ID:        ctr.GetContainerID(),
		DSN:       cfg.FormatDSN(),
	}, nil
}

// Open connects to the container over TCP and waits until it answers.
func (c *MySQLContainer) Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("mysql", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows of %s: %w", table, err)
	}
	return n, nil
}
