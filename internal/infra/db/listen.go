package db

import (
	"context"
	"fmt"

	"hirebot/internal/pkg/config"
	"hirebot/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// DedicatedConnector opens a fresh connection outside the pool for every
// listener session; LISTEN state is connection-local.
type DedicatedConnector struct {
	dsn string
}

func NewDedicatedConnector(cfg config.Config) *DedicatedConnector {
	return &DedicatedConnector{dsn: cfg.DB.BuildDSN()}
}

func (c *DedicatedConnector) Connect(ctx context.Context) (shared.ListenConn, error) {
	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := pgx.Connect(connCtx, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open listener connection: %w", err)
	}
	return &listenConn{conn: conn}, nil
}

type listenConn struct {
	conn *pgx.Conn
}

func (c *listenConn) Listen(ctx context.Context, channel string) error {
	_, err := c.conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize())
	return err
}

func (c *listenConn) WaitForNotification(ctx context.Context) (*shared.Notification, error) {
	n, err := c.conn.WaitForNotification(ctx)
	if err != nil {
		return nil, err
	}
	return &shared.Notification{PID: n.PID, Channel: n.Channel, Payload: n.Payload}, nil
}

func (c *listenConn) Close(ctx context.Context) error {
	if c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close(ctx)
}
