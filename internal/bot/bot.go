// Package bot implements the interactive assistant: it reads lines, hands
// them to the intent dispatcher and runs the matching command handler.
package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"time"

	"chefbot/internal/catalog"
	"chefbot/internal/intent"
	"chefbot/internal/models"
	"chefbot/internal/monitoring"
)

// ExitWords end the session when typed on their own
var ExitWords = []string{"exit", "quit", "bye", "goodbye"}

// Journal records what happens during a session
type Journal interface {
	RecordInput(line string) error
	RecordOrder(order models.Order) error
	RecordRecommendation(keyword string, ceiling float64) error
}

// Clock returns the current local time
type Clock func() (time.Time, error)

// SystemClock reads the wall clock
func SystemClock() (time.Time, error) {
	return time.Now(), nil
}

// Bot is a single chat session
type Bot struct {
	catalog    *catalog.Catalog
	dispatcher *intent.Dispatcher
	journal    Journal
	monitor    *monitoring.Monitor
	clock      Clock
	hours      models.OpeningHours
	logger     *log.Logger
	color      bool

	in     *bufio.Reader
	out    io.Writer
	styles styles
}

// Option customises a Bot
type Option func(*Bot)

// WithClock replaces the wall clock used for opening hours
func WithClock(clock Clock) Option {
	return func(b *Bot) { b.clock = clock }
}

// WithLogger sets the operator logger
func WithLogger(logger *log.Logger) Option {
	return func(b *Bot) { b.logger = logger }
}

// WithColor turns styled headers on or off
func WithColor(enabled bool) Option {
	return func(b *Bot) { b.color = enabled }
}

// New creates a session reading from in and writing to out
func New(c *catalog.Catalog, journal Journal, monitor *monitoring.Monitor, in io.Reader, out io.Writer, opts ...Option) *Bot {
	b := &Bot{
		catalog:    c,
		dispatcher: intent.NewDispatcher(c.Names()),
		journal:    journal,
		monitor:    monitor,
		clock:      SystemClock,
		hours:      models.StandardHours,
		logger:     log.New(io.Discard, "", 0),
		color:      true,
		in:         bufio.NewReader(in),
		out:        out,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.styles = newStyles(out, b.color)
	return b
}

// Run greets the user and processes lines until an exit word, end of
// input, cancellation of ctx or an unexpected error
func (b *Bot) Run(ctx context.Context) error {
	b.greet()
	for {
		if err := ctx.Err(); err != nil {
			b.farewell()
			return nil
		}

		line, err := b.ask(ctx, "\n ChefBot: What can I help you with today? ")
		if endsSession(ctx, err) {
			b.farewell()
			return nil
		}
		if err != nil {
			return err
		}

		if isExitWord(line) {
			b.farewell()
			return nil
		}
		if line == "" {
			b.println(" Please enter a command. Type 'help' for assistance.")
			continue
		}

		if err := b.Handle(ctx, line); err != nil {
			if endsSession(ctx, err) {
				b.farewell()
				return nil
			}
			return err
		}
	}
}

// endsSession reports whether err means the user is gone rather than a failure
func endsSession(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, io.EOF) || (ctx.Err() != nil && errors.Is(err, ctx.Err()))
}

// Handle processes one line of input. Lookup misses are reported to the
// user and swallowed; any other error is returned.
func (b *Bot) Handle(ctx context.Context, line string) error {
	if err := b.journal.RecordInput(line); err != nil {
		b.monitor.RecordJournalFailure("chat")
		b.logger.Printf("Failed to record input: %v", err)
	}

	in := b.dispatcher.Classify(line)
	b.monitor.RecordIntent(string(in.Kind))

	err := b.dispatch(ctx, in)
	var lookup *LookupError
	if errors.As(err, &lookup) {
		b.reportLookup(lookup)
		return nil
	}
	return err
}

func (b *Bot) dispatch(ctx context.Context, in intent.Intent) error {
	switch in.Kind {
	case intent.KindHelp:
		b.ShowHelp()
		return nil
	case intent.KindRecommend:
		_, err := b.Recommend(ctx, in.Keyword)
		return err
	case intent.KindOrder:
		_, err := b.Order(ctx)
		return err
	case intent.KindBranchFinder:
		_, err := b.NearestBranch(ctx)
		return err
	case intent.KindOpenStatus:
		name, ok := in.Target()
		if !ok {
			b.println(" Please specify which restaurant's opening status you want to check.")
			b.println("Available: " + strings.Join(b.catalog.Names(), ", "))
			b.println("Example: 'cheezious open now'")
			return nil
		}
		_, err := b.CheckOpenStatus(name)
		return err
	case intent.KindShowRestaurant:
		return b.ShowRestaurants(in.Restaurants)
	case intent.KindShowField:
		return b.ShowByField(in.Field)
	case intent.KindShowAll:
		b.ShowAll()
		return nil
	case intent.KindVague:
		b.println(" I need more specific information. Try:")
		b.ShowQuickCommands()
		return nil
	default:
		b.printf(" Sorry, I don't understand '%s'.\n", in.Input)
		b.println("Type 'help' to see all available commands.")
		b.ShowQuickCommands()
		return nil
	}
}

type readResult struct {
	line string
	err  error
}

// ask prints prompt and reads one line without its line ending. It gives up
// when ctx is done; the pending read is abandoned with the session.
func (b *Bot) ask(ctx context.Context, prompt string) (string, error) {
	b.print(prompt)

	result := make(chan readResult, 1)
	go func() {
		line, err := b.in.ReadString('\n')
		result <- readResult{line: line, err: err}
	}()

	var r readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r = <-result:
	}

	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimRight(r.line, "\r\n"), nil
		}
		if errors.Is(r.err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", r.err)
	}
	return strings.TrimRight(r.line, "\r\n"), nil
}

func isExitWord(line string) bool {
	return slices.Contains(ExitWords, strings.ToLower(line))
}

func isYes(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y"
}
