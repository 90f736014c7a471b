// Command scores inspects and edits the leaderboard in any store.
//
//	scores [-scores DSN] list [-n N] [-json]
//	scores [-scores DSN] add NAME SCORE
//	scores [-scores DSN] clear
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"waveshooter/config"
	"waveshooter/leaderboard"
)

func main() {
	log.SetFlags(0)
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	scores := flag.String("scores", config.String("WAVESHOOTER_SCORES", "file:scores.json"), "leaderboard DSN")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: scores [-scores DSN] list [-n N] [-json] | add NAME SCORE | clear")
		flag.PrintDefaults()
	}
	flag.Parse()

	store, closer, err := leaderboard.Open(*scores)
	if err != nil {
		log.Fatalf("Failed to open leaderboard: %v", err)
	}
	defer closer.Close()

	if err := run(store, flag.Args(), os.Stdout, time.Now); err != nil {
		closer.Close()
		log.Fatal(err)
	}
}

func run(store leaderboard.Store, args []string, out io.Writer, now func() time.Time) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		n := fs.Int("n", leaderboard.MaxEntries, "entries to show")
		asJSON := fs.Bool("json", false, "print the stored JSON")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		b, err := leaderboard.Load(store)
		if err != nil && !errors.Is(err, leaderboard.ErrMalformed) {
			return err
		}
		if err != nil {
			fmt.Fprintf(out, "warning: %v\n", err)
		}
		b = b.Top(*n)
		if *asJSON {
			text, err := b.Encode()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		}
		return printBoard(out, b)

	case "add":
		if len(args) != 3 {
			return errors.New("usage: add NAME SCORE")
		}
		score, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[2], err)
		}
		b, err := leaderboard.Record(store, leaderboard.Entry{Name: args[1], Score: score, Timestamp: now().UnixMilli()})
		if errors.Is(err, leaderboard.ErrMalformed) {
			return fmt.Errorf("%w; run clear to start a new board", err)
		}
		if err != nil {
			return err
		}
		return printBoard(out, b)

	case "clear":
		return store.Write("[]")

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printBoard(out io.Writer, b leaderboard.Board) error {
	if len(b) == 0 {
		_, err := fmt.Fprintln(out, "no scores yet")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tSCORE\tWHEN")
	for i, e := range b {
		when := "-"
		if e.Timestamp > 0 {
			when = time.UnixMilli(e.Timestamp).UTC().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i+1, e.Name, e.Score, when)
	}
	return tw.Flush()
}
