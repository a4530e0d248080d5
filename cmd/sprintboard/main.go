// Package main provides the sprintboard CLI, a thin driver around the
// board engine: it constructs the board from configuration, adds cards,
// issues moves, and reports velocity, persisting the iteration between
// invocations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/sprintboard/internal/sqlite"
	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode classifies an error: domain and usage errors are the
// caller's fault, anything else (I/O, database) is a system error.
func exitCode(err error) int {
	for _, sentinel := range []error{
		board.ErrNoStartColumn,
		board.ErrMultipleStartColumns,
		board.ErrNoDoneColumn,
		board.ErrMultipleDoneColumns,
		board.ErrCardNotFound,
		board.ErrColumnNotFound,
		board.ErrCardAlreadyAdded,
		board.ErrNoLastMove,
		board.ErrWIPLimitExceeded,
		board.ErrEmptyName,
		board.ErrNegativeEstimate,
		board.ErrNegativeLimit,
		board.ErrInvalidColumnType,
		sqlite.ErrNoSnapshot,
		errUsage,
	} {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}

// errUsage wraps argument and flag mistakes that carry no domain
// sentinel.
var errUsage = fmt.Errorf("usage error")
