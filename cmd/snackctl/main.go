// Command snackctl is a small command-line client for the snack API.
//
//	snackctl [-addr URL] list
//	snackctl [-addr URL] get ID
//	snackctl [-addr URL] create TITLE BODY AUTHOR
//	snackctl [-addr URL] update ID TITLE BODY AUTHOR
//	snackctl [-addr URL] delete ID
//	snackctl [-addr URL] register USER PASS
//
// Results are printed as indented JSON. Exit status is 1 on any error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/sakif/snack-api/internal/client"
)

var errUsage = errors.New("usage: snackctl [-addr URL] list|get ID|create TITLE BODY AUTHOR|update ID TITLE BODY AUTHOR|delete ID|register USER PASS")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("snackctl", flag.ContinueOnError)
	addr := fs.String("addr", envOr("SNACK_API_ADDR", client.DefaultBaseURL), "API base URL")
	timeout := fs.Duration("timeout", client.DefaultTimeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	c := client.New(client.Config{BaseURL: *addr, Timeout: *timeout})
	cmd, rest := rest[0], rest[1:]

	var (
		result any
		err    error
	)
	switch {
	case cmd == "list" && len(rest) == 0:
		result, err = c.ListSnacks(ctx)

	case cmd == "get" && len(rest) == 1:
		id, perr := parseID(rest[0])
		if perr != nil {
			return perr
		}
		result, err = c.GetSnack(ctx, id)

	case cmd == "create" && len(rest) == 3:
		author, perr := parseID(rest[2])
		if perr != nil {
			return perr
		}
		result, err = c.CreateSnack(ctx, rest[0], rest[1], author)

	case cmd == "update" && len(rest) == 4:
		id, perr := parseID(rest[0])
		if perr != nil {
			return perr
		}
		author, perr := parseID(rest[3])
		if perr != nil {
			return perr
		}
		result, err = c.UpdateSnack(ctx, id, rest[1], rest[2], author)

	case cmd == "delete" && len(rest) == 1:
		id, perr := parseID(rest[0])
		if perr != nil {
			return perr
		}
		if err = c.DeleteSnack(ctx, id); err == nil {
			_, err = fmt.Fprintf(out, "deleted snack %d\n", id)
			return err
		}

	case cmd == "register" && len(rest) == 2:
		result, err = c.CreateAccount(ctx, rest[0], rest[1])

	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
