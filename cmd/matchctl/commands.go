package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/riskibarqy/matchbook/external/matchbook"
	"github.com/riskibarqy/matchbook/internal/platform/logging"
)

type cli struct {
	session  *matchbook.Session
	password string
	out      io.Writer
	logger   *logging.Logger
}

type command func(ctx context.Context, c *cli, args []string) error

var commands = map[string]command{
	"list":      listCmd,
	"add":       addCmd,
	"update":    updateCmd,
	"delete":    deleteCmd,
	"next":      nextCmd,
	"set-next":  setNextCmd,
	"stats":     statsCmd,
	"add-stats": addStatsCmd,
	"watch":     watchCmd,
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

func (c *cli) login(ctx context.Context) error {
	if c.password == "" {
		return fmt.Errorf("%w: -password or MATCHBOOK_PASSWORD is required", errUsage)
	}
	return c.session.Login(ctx, c.password)
}

func matchFlags(fs *flag.FlagSet) (*string, *string, *string, *string) {
	date := fs.String("date", "", "match date YYYY-MM-DD")
	opponent := fs.String("opponent", "", "opponent name")
	score := fs.String("score", "", "final score X-Y")
	scorers := fs.String("scorers", "", "goal scorers")
	return date, opponent, score, scorers
}

func matchInput(date, opponent, score, scorers string) matchbook.MatchInput {
	in := matchbook.MatchInput{Date: date, Opponent: opponent, Score: score}
	if scorers != "" {
		in.Scorers = &scorers
	}
	return in
}

func listCmd(ctx context.Context, c *cli, args []string) error {
	if err := parse(newFlags("list"), args); err != nil {
		return err
	}
	if err := c.session.Refresh(ctx); err != nil {
		return err
	}
	printMatches(c.out, c.session.View().Matches)
	return nil
}

func addCmd(ctx context.Context, c *cli, args []string) error {
	fs := newFlags("add")
	date, opponent, score, scorers := matchFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := c.login(ctx); err != nil {
		return err
	}
	id, err := c.session.AddMatch(ctx, matchInput(*date, *opponent, *score, *scorers))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "match %d added\n", id)
	printMatches(c.out, c.session.View().Matches)
	return nil
}

func updateCmd(ctx context.Context, c *cli, args []string) error {
	fs := newFlags("update")
	id := fs.Int64("id", 0, "match id")
	date, opponent, score, scorers := matchFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := c.login(ctx); err != nil {
		return err
	}
	if err := c.session.UpdateMatch(ctx, *id, matchInput(*date, *opponent, *score, *scorers)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "match %d updated\n", *id)
	printMatches(c.out, c.session.View().Matches)
	return nil
}

func deleteCmd(ctx context.Context, c *cli, args []string) error {
	fs := newFlags("delete")
	id := fs.Int64("id", 0, "match id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := c.login(ctx); err != nil {
		return err
	}
	if err := c.session.DeleteMatch(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "match %d deleted\n", *id)
	return nil
}

func nextCmd(ctx context.Context, c *cli, args []string) error {
	if err := parse(newFlags("next"), args); err != nil {
		return err
	}
	if err := c.session.Refresh(ctx); err != nil {
		return err
	}
	printNextMatch(c.out, c.session.View().NextMatch)
	return nil
}

func setNextCmd(ctx context.Context, c *cli, args []string) error {
	fs := newFlags("set-next")
	date := fs.String("date", "", "match date YYYY-MM-DD")
	opponent := fs.String("opponent", "", "opponent name")
	kickoff := fs.String("time", "", "kick-off HH:MM")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := c.login(ctx); err != nil {
		return err
	}
	if err := c.session.SetNextMatch(ctx, matchbook.NextMatch{Date: *date, Opponent: *opponent, Time: *kickoff}); err != nil {
		return err
	}
	printNextMatch(c.out, c.session.View().NextMatch)
	return nil
}

func statsCmd(ctx context.Context, c *cli, args []string) error {
	if err := parse(newFlags("stats"), args); err != nil {
		return err
	}
	if err := c.session.RefreshStats(ctx); err != nil {
		return err
	}
	printStats(c.out, c.session.View().Stats)
	return nil
}

func addStatsCmd(ctx context.Context, c *cli, args []string) error {
	fs := newFlags("add-stats")
	wins := fs.Int64("wins", 0, "wins")
	draws := fs.Int64("draws", 0, "draws")
	losses := fs.Int64("losses", 0, "losses")
	goals := fs.Int64("goals", 0, "goals scored")
	against := fs.Int64("against", 0, "goals conceded")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := c.login(ctx); err != nil {
		return err
	}
	_, err := c.session.AddStats(ctx, matchbook.Stats{
		Wins:         *wins,
		Draws:        *draws,
		Losses:       *losses,
		Goals:        *goals,
		GoalsAgainst: *against,
	})
	if err != nil {
		return err
	}
	printStats(c.out, c.session.View().Stats)
	return nil
}

func watchCmd(ctx context.Context, c *cli, args []string) error {
	fs := newFlags("watch")
	interval := fs.Duration("interval", matchbook.DefaultPollInterval, "poll interval")
	if err := parse(fs, args); err != nil {
		return err
	}

	poller := matchbook.NewStatsPoller(c.session, matchbook.StatsPollerConfig{
		Interval: *interval,
		OnError: func(err error) {
			c.logger.WarnContext(ctx, "stats poll failed", "error", err)
		},
	})

	lastID := int64(-1)
	if err := c.session.RefreshStats(ctx); err != nil {
		c.logger.WarnContext(ctx, "initial stats fetch failed", "error", err)
	} else {
		current := c.session.View().Stats
		printStats(c.out, current)
		lastID = current.ID
	}

	// Snapshots are append-only, so a new id means new numbers.
	go func() {
		ticker := time.NewTicker(*interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if current := c.session.View().Stats; current.ID != lastID {
					printStats(c.out, current)
					lastID = current.ID
				}
			}
		}
	}()

	return poller.Run(ctx)
}

func printMatches(w io.Writer, matches []matchbook.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tOPPONENT\tSCORE\tSCORERS")
	for _, m := range matches {
		scorers := "-"
		if m.Scorers != nil {
			scorers = *m.Scorers
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Date, m.Opponent, m.Score, scorers)
	}
	_ = tw.Flush()
}

func printNextMatch(w io.Writer, next *matchbook.NextMatch) {
	if next == nil {
		fmt.Fprintln(w, "no next match scheduled")
		return
	}
	fmt.Fprintf(w, "next match: %s vs %s at %s\n", next.Date, next.Opponent, next.Time)
}

func printStats(w io.Writer, s matchbook.Stats) {
	fmt.Fprintf(w, "W %d  D %d  L %d  GF %d  GA %d\n", s.Wins, s.Draws, s.Losses, s.Goals, s.GoalsAgainst)
}
