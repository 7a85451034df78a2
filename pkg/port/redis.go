// The Redis-protocol port of chain: named lists exposed over the wire.
// Besides the usual LPUSH/RPUSH/LPOP/RPOP family it exposes the positional
// operations of the container (LINDEX/LSET/LINSERTAT/LREMAT) and the O(1)
// chain operations (LSPLIT/LMERGE). Positional indices wrap modulo the list
// length, same as the library's cursors.

package port

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tidwall/redcon"
)

const RedisOk = "OK"

var address = flag.String("address", ":6380", "The ip:port to listen on for Redis protocol.")

// redisCommand represents a Redis command with its arguments.
type redisCommand struct {
	command string
	args    []string
}

// redisOutput conforms to a real Redis server output on non pub / sub commands.
type redisOutput struct {
	closeConnection bool     // Closes the connection if true.
	writeNil        bool     // Writes a nil value if true.
	err             *string  // Error to return if set.
	writeInt        *int     // Writes an integer value if set.
	writeArray      []string // Writes a bulk string array if set.
	writeString     string   // Writes a string value if set.
}

func closeRedisConnection(msg string) redisOutput {
	return redisOutput{writeString: msg, closeConnection: true}
}

func writeRedisNil() redisOutput {
	return redisOutput{writeNil: true}
}

func writeRedisInt(i int) redisOutput {
	return redisOutput{writeInt: &i}
}

func writeRedisString(s string) redisOutput {
	return redisOutput{writeString: s}
}

func writeRedisArray(values []string) redisOutput {
	if values == nil {
		values = []string{}
	}
	return redisOutput{writeArray: values}
}

func writeRedisError(err error) redisOutput {
	msg := "ERR " + err.Error()
	return redisOutput{err: &msg}
}

// wrongArity is the Redis-style arity error for the given command.
func wrongArity(command string) redisOutput {
	return writeRedisError(fmt.Errorf("wrong number of arguments for '%s' command", command))
}

// parseIndex converts a positional argument into an int.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New("value is not an integer or out of range")
	}
	return index, nil
}

type redisHandler struct {
	store *ListStore
}

// newRedisHandler creates a new redisHandler.
func newRedisHandler(store *ListStore) (*redisHandler, error) {
	if store == nil {
		return nil, errors.New("expected a non-nil list store")
	}
	return &redisHandler{store: store}, nil
}

func (rh *redisHandler) handle(cmd redisCommand) redisOutput {
	switch cmd.command {
	case "PING":
		return writeRedisString("PONG")
	case "QUIT":
		return closeRedisConnection("OK")
	case "DEL":
		if len(cmd.args) < 1 {
			return wrongArity("DEL")
		}
		return writeRedisInt(rh.store.Delete(cmd.args...))
	case "EXISTS":
		if len(cmd.args) != 1 {
			return wrongArity("EXISTS")
		}
		if rh.store.Exists(cmd.args[0]) {
			return writeRedisInt(1)
		}
		return writeRedisInt(0)
	case "LPUSH":
		if len(cmd.args) < 2 {
			return wrongArity("LPUSH")
		}
		return writeRedisInt(rh.store.PushFront(cmd.args[0], cmd.args[1:]...))
	case "RPUSH":
		if len(cmd.args) < 2 {
			return wrongArity("RPUSH")
		}
		return writeRedisInt(rh.store.PushBack(cmd.args[0], cmd.args[1:]...))
	case "LPOP":
		if len(cmd.args) != 1 {
			return wrongArity("LPOP")
		}
		if value, err := rh.store.PopFront(cmd.args[0]); err != nil {
			return writeRedisNil()
		} else {
			return writeRedisString(value)
		}
	case "RPOP":
		if len(cmd.args) != 1 {
			return wrongArity("RPOP")
		}
		if value, err := rh.store.PopBack(cmd.args[0]); err != nil {
			return writeRedisNil()
		} else {
			return writeRedisString(value)
		}
	case "LLEN":
		if len(cmd.args) != 1 {
			return wrongArity("LLEN")
		}
		return writeRedisInt(rh.store.Len(cmd.args[0]))
	case "LRANGE":
		if len(cmd.args) != 3 {
			return wrongArity("LRANGE")
		}
		start, err := parseIndex(cmd.args[1])
		if err != nil {
			return writeRedisError(err)
		}
		stop, err := parseIndex(cmd.args[2])
		if err != nil {
			return writeRedisError(err)
		}
		values, err := rh.store.Range(cmd.args[0], start, stop)
		if errors.Is(err, ErrKeyNotFound) {
			return writeRedisArray(nil)
		} else if err != nil {
			return writeRedisError(err)
		}
		return writeRedisArray(values)
	case "LINDEX":
		if len(cmd.args) != 2 {
			return wrongArity("LINDEX")
		}
		index, err := parseIndex(cmd.args[1])
		if err != nil {
			return writeRedisError(err)
		}
		if value, err := rh.store.Index(cmd.args[0], index); err != nil {
			return writeRedisNil()
		} else {
			return writeRedisString(value)
		}
	case "LSET":
		if len(cmd.args) != 3 {
			return wrongArity("LSET")
		}
		index, err := parseIndex(cmd.args[1])
		if err != nil {
			return writeRedisError(err)
		}
		if err := rh.store.Set(cmd.args[0], index, cmd.args[2]); err != nil {
			return writeRedisError(err)
		}
		return writeRedisString(RedisOk)
	case "LINSERTAT":
		if len(cmd.args) != 3 {
			return wrongArity("LINSERTAT")
		}
		index, err := parseIndex(cmd.args[1])
		if err != nil {
			return writeRedisError(err)
		}
		return writeRedisInt(rh.store.InsertAt(cmd.args[0], index, cmd.args[2]))
	case "LREMAT":
		if len(cmd.args) != 2 {
			return wrongArity("LREMAT")
		}
		index, err := parseIndex(cmd.args[1])
		if err != nil {
			return writeRedisError(err)
		}
		if value, err := rh.store.RemoveAt(cmd.args[0], index); err != nil {
			return writeRedisNil()
		} else {
			return writeRedisString(value)
		}
	case "LSPLIT":
		if len(cmd.args) != 3 {
			return wrongArity("LSPLIT")
		}
		index, err := parseIndex(cmd.args[2])
		if err != nil {
			return writeRedisError(err)
		}
		moved, err := rh.store.Split(cmd.args[0], cmd.args[1], index)
		if err != nil {
			return writeRedisError(err)
		}
		return writeRedisInt(moved)
	case "LMERGE":
		if len(cmd.args) != 2 {
			return wrongArity("LMERGE")
		}
		length, err := rh.store.Merge(cmd.args[0], cmd.args[1])
		if err != nil {
			return writeRedisError(err)
		}
		return writeRedisInt(length)
	default:
		return writeRedisError(fmt.Errorf("unknown command '%s'", cmd.command))
	}
}

// writeOutput applies a redisOutput to the connection.
func writeOutput(conn redcon.Conn, output redisOutput) {
	switch {
	case output.closeConnection:
		conn.WriteString(output.writeString)
		if err := conn.Close(); err != nil {
			slog.Error("failed to close connection", "error", err)
		}
	case output.err != nil:
		conn.WriteError(*output.err)
	case output.writeNil:
		conn.WriteNull()
	case output.writeInt != nil:
		conn.WriteInt(*output.writeInt)
	case output.writeArray != nil:
		conn.WriteArray(len(output.writeArray))
		for _, value := range output.writeArray {
			conn.WriteBulkString(value)
		}
	default:
		conn.WriteString(output.writeString)
	}
}

// RunRedisServer starts a Redis protocol server that serves the provided ListStore.
func RunRedisServer(ctx context.Context, store *ListStore) error {
	if *address == "" {
		return errors.New("expected a non-empty --address flag")
	}

	redisHandler, err := newRedisHandler(store)
	if err != nil {
		return fmt.Errorf("failed to create a new redis handler: %w", err)
	}

	redisServer := redcon.NewServerNetwork("tcp" /*net*/, *address,
		/*handler*/ func(conn redcon.Conn, cmd redcon.Command) {
			// Convert redcon.Command to redisCommand.
			command := redisCommand{command: strings.ToUpper(string(cmd.Args[0])), args: make([]string, len(cmd.Args)-1)}
			for i := 1; i < len(cmd.Args); i++ {
				command.args[i-1] = string(cmd.Args[i])
			}
			writeOutput(conn, redisHandler.handle(command))
		},
		/*accept*/ func(conn redcon.Conn) bool {
			return true // Accept all connections.
		},
		/*close*/ func(conn redcon.Conn, err error) {
		})

	serverErrSignal := make(chan error, 1)
	go func() {
		if err := redisServer.ListenAndServe(); err != nil {
			serverErrSignal <- err
		}
		close(serverErrSignal)
	}()

	select {
	case <-ctx.Done():
		if err := redisServer.Close(); err != nil {
			return fmt.Errorf("failed to close chain server: %w", err)
		}
	case err := <-serverErrSignal:
		return fmt.Errorf("redis server stopped unexpectedly: %w", err)
	}

	return nil // Exited with no errors.
}
