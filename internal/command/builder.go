// Package command builds the command line of the external database client.
package command

import (
	"fmt"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// Build returns the client invocation for the connection's execution mode.
//
//	pure:   <client> -u<user> -p<password> <db>
//	docker: <runtime> exec <container> <client> -u<user> -p<password> <db>
//
// Credentials are concatenated to their short flags and passed as literal
// tokens; nothing is quoted or escaped.
func Build(conn sqlstage.ConnectionConfig) (sqlstage.Command, error) {
	conn = conn.WithDefaults()

	common := []string{
		"-u" + conn.Username,
		"-p" + conn.Password,
		conn.Database,
	}

	switch conn.Mode {
	case sqlstage.ModeDirect:
		return sqlstage.Command{Name: conn.Client, Args: common}, nil
	case sqlstage.ModeContainerized:
		if conn.Container == "" {
			return sqlstage.Command{}, fmt.Errorf("container name is required in %s mode: %w", conn.Mode, sqlstage.ErrInvalidConfig)
		}
		args := append([]string{"exec", conn.Container, conn.Client}, common...)
		return sqlstage.Command{Name: conn.Runtime, Args: args}, nil
	default:
		return sqlstage.Command{}, fmt.Errorf("cannot build command for execution mode %s: %w", conn.Mode, sqlstage.ErrInvalidConfig)
	}
}
