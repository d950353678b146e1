// boardctl fetches a ticket snapshot and prints it as kanban columns.
//
//	boardctl [--url URL | --file PATH] [--grouping status|user|priority] [--ordering priority|title]
//	boardctl hash-key KEY
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"

	"github.com/spec-kit/kanban-board/internal/auth"
	"github.com/spec-kit/kanban-board/internal/board"
	"github.com/spec-kit/kanban-board/internal/render"
	"github.com/spec-kit/kanban-board/internal/source"
)

const defaultURL = "https://api.quicksell.co/v1/internal/frontend-assignment"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) > 0 && args[0] == "hash-key" {
		return hashKey(args[1:], out)
	}

	var (
		url      string
		file     string
		grouping string
		ordering string
		locale   string
		fallback string
		width    int
		color    bool
		asJSON   bool
		timeout  time.Duration
	)

	flagSet := pflag.NewFlagSet("boardctl", pflag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.StringVar(&url, "url", defaultURL, "snapshot endpoint")
	flagSet.StringVar(&file, "file", "", "read the snapshot from a JSON file instead of --url")
	flagSet.StringVarP(&grouping, "grouping", "g", string(board.GroupByStatus), "status, user or priority")
	flagSet.StringVarP(&ordering, "ordering", "o", string(board.OrderByPriority), "priority or title")
	flagSet.StringVar(&locale, "locale", "und", "BCP 47 locale for title ordering")
	flagSet.StringVar(&fallback, "fallback", string(board.FallbackDiscovery), "status/user column order: discovery or alphabetical")
	flagSet.IntVar(&width, "width", 32, "column width")
	flagSet.BoolVar(&color, "color", false, "colorize output")
	flagSet.BoolVar(&asJSON, "json", false, "print the board as JSON")
	flagSet.DurationVar(&timeout, "timeout", 10*time.Second, "fetch timeout")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	g, err := board.ParseGrouping(grouping)
	if err != nil {
		return err
	}
	o, err := board.ParseOrdering(ordering)
	if err != nil {
		return err
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid --locale %q: %w", locale, err)
	}
	fb, ok := board.ParseFallback(fallback)
	if !ok {
		return fmt.Errorf("invalid --fallback %q", fallback)
	}

	var loader source.Loader = source.NewHTTPSource(url, timeout)
	if file != "" {
		loader = source.FileSource{Path: file}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	snapshot, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	b := board.NewEngine(board.Options{Locale: tag, Fallback: fb}).Build(*snapshot, g, o)
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
	_, err = io.WriteString(out, render.Board(b, render.Options{ColumnWidth: width, Color: color}))
	return err
}

func hashKey(args []string, out io.Writer) error {
	if len(args) != 1 || args[0] == "" {
		return errors.New("usage: boardctl hash-key KEY")
	}
	hash, err := auth.HashAPIKey(args[0], bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
