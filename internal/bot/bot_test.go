package bot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"chefbot/internal/catalog"
	"chefbot/internal/models"
	"chefbot/internal/monitoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournal struct {
	inputs          []string
	orders          []models.Order
	recommendations []string

	failInputs          bool
	failOrders          bool
	failRecommendations bool
}

func (j *fakeJournal) RecordInput(line string) error {
	if j.failInputs {
		return errors.New("disk full")
	}
	j.inputs = append(j.inputs, line)
	return nil
}

func (j *fakeJournal) RecordOrder(order models.Order) error {
	if j.failOrders {
		return errors.New("disk full")
	}
	j.orders = append(j.orders, order)
	return nil
}

func (j *fakeJournal) RecordRecommendation(keyword string, ceiling float64) error {
	if j.failRecommendations {
		return errors.New("disk full")
	}
	j.recommendations = append(j.recommendations, keyword)
	return nil
}

type harness struct {
	bot     *Bot
	out     *bytes.Buffer
	journal *fakeJournal
	monitor *monitoring.Monitor
}

func newHarness(t *testing.T, input string, opts ...Option) *harness {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	h := &harness{
		out:     &bytes.Buffer{},
		journal: &fakeJournal{},
		monitor: monitoring.NewMonitor(),
	}
	opts = append([]Option{WithColor(false), WithClock(clockAt(13))}, opts...)
	h.bot = New(c, h.journal, h.monitor, strings.NewReader(input), h.out, opts...)
	return h
}

func (h *harness) metric(t *testing.T, key string) float64 {
	t.Helper()
	metrics, err := h.monitor.GetMetrics()
	require.NoError(t, err)
	return metrics[key]
}

func clockAt(hour int) Clock {
	return func() (time.Time, error) {
		return time.Date(2024, 3, 15, hour, 0, 0, 0, time.Local), nil
	}
}

func TestRun_ExitWords(t *testing.T) {
	for _, word := range []string{"exit", "QUIT", "bye", "Goodbye"} {
		h := newHarness(t, word+"\nhelp\n")
		require.NoError(t, h.bot.Run(context.Background()))

		out := h.out.String()
		assert.Contains(t, out, "Welcome to ChefBot")
		assert.Contains(t, out, "Thank you for using ChefBot!")
		assert.NotContains(t, out, "CHEFBOT COMMAND GUIDE", "nothing after the exit word is processed")
	}
}

func TestRun_Session(t *testing.T) {
	h := newHarness(t, "help\n\nwhat now\nexit\n")
	require.NoError(t, h.bot.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "CHEFBOT COMMAND GUIDE")
	assert.Equal(t, 1, strings.Count(out, "Please enter a command. Type 'help' for assistance."))
	assert.Contains(t, out, "Sorry, I don't understand 'what now'.")
	assert.Equal(t, []string{"help", "what now"}, h.journal.inputs, "blank lines and exit words are not logged")
}

func TestRun_ExitWordMustBeWholeLine(t *testing.T) {
	h := newHarness(t, " exit \n   \nexit\n")
	require.NoError(t, h.bot.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Sorry, I don't understand ' exit '.")
	assert.Contains(t, out, "Sorry, I don't understand '   '.")
	assert.NotContains(t, out, "Please enter a command.")
	assert.Equal(t, []string{" exit ", "   "}, h.journal.inputs)
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	go pw.Write([]byte("order\nCheezious\n"))

	out := &bytes.Buffer{}
	monitor := monitoring.NewMonitor()
	b := New(c, &fakeJournal{}, monitor, pr, out, WithColor(false))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, b.Run(ctx))

	text := out.String()
	assert.Contains(t, text, "Cheezious (Rating: 4.5/5)")
	assert.Contains(t, text, "Thank you for using ChefBot!")

	metrics, err := monitor.GetMetrics()
	require.NoError(t, err)
	assert.Equal(t, 1.0, metrics[`chefbot_orders_total{outcome="aborted"}`])
}

func TestRun_EndOfInput(t *testing.T) {
	h := newHarness(t, "order\nCheezious\n")
	require.NoError(t, h.bot.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Thank you for using ChefBot!")
	assert.Empty(t, h.journal.orders)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := newHarness(t, "help\n")
	require.NoError(t, h.bot.Run(ctx))
	assert.NotContains(t, h.out.String(), "CHEFBOT COMMAND GUIDE")
}

func TestRun_ReadError(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	b := New(c, &fakeJournal{}, monitoring.NewMonitor(), iotest.ErrReader(errors.New("broken pipe")), &bytes.Buffer{})

	err = b.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestHandle_RecordsInputAndIntent(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.bot.Handle(context.Background(), "tell me about ratings"))

	assert.Equal(t, []string{"tell me about ratings"}, h.journal.inputs)
	assert.Equal(t, 1.0, h.metric(t, `chefbot_intents_total{intent="show_field"}`))
	assert.Contains(t, h.out.String(), "RESTAURANT RATINGS:")
}

func TestHandle_ChatLogFailureIsSilent(t *testing.T) {
	h := newHarness(t, "")
	h.journal.failInputs = true

	require.NoError(t, h.bot.Handle(context.Background(), "tell me about names"))
	assert.Contains(t, h.out.String(), "RESTAURANT NAMES:")
	assert.NotContains(t, h.out.String(), "Warning")
	assert.Equal(t, 1.0, h.metric(t, `chefbot_journal_failures_total{log="chat"}`))
}

func TestHandle_Unknown(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.bot.Handle(context.Background(), "Make me a sandwich"))

	out := h.out.String()
	assert.Contains(t, out, "Sorry, I don't understand 'Make me a sandwich'.")
	assert.Contains(t, out, "Quick Commands:")
}

func TestHandle_Vague(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.bot.Handle(context.Background(), "tell me about the weather"))

	out := h.out.String()
	assert.Contains(t, out, "I need more specific information. Try:")
	assert.Contains(t, out, "Quick Commands:")
}

func TestHandle_OpenStatusNeedsRestaurant(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.bot.Handle(context.Background(), "who is open now"))

	out := h.out.String()
	assert.Contains(t, out, "Please specify which restaurant's opening status you want to check.")
	assert.Contains(t, out, "Available: Cheezious, Ranchers, Howdy")
	assert.NotContains(t, out, "OPENING STATUS")
}

func TestHandle_OpenStatusBeatsTellMeAbout(t *testing.T) {
	h := newHarness(t, "", WithClock(clockAt(20)))
	require.NoError(t, h.bot.Handle(context.Background(), "tell me about cheezious open now"))

	out := h.out.String()
	assert.Contains(t, out, "Cheezious is OPEN now! (12 PM - 11 PM)")
	assert.NotContains(t, out, "Branches:")
}

func TestHandle_ShowRestaurants(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.bot.Handle(context.Background(), "Tell me about Howdy and Ranchers"))

	out := h.out.String()
	ranchers := strings.Index(out, "Ranchers (Rating: 4.2/5)")
	howdy := strings.Index(out, "Howdy (Rating: 4/5)")
	require.NotEqual(t, -1, ranchers)
	require.NotEqual(t, -1, howdy)
	assert.Less(t, ranchers, howdy, "restaurants are shown in catalog order")
	assert.NotContains(t, out, "Cheezious (Rating")
}

func TestHandle_LookupMissContinues(t *testing.T) {
	h := newHarness(t, "Pizza Hut\n")
	require.NoError(t, h.bot.Handle(context.Background(), "order"))

	out := h.out.String()
	assert.Contains(t, out, "'Pizza Hut' is not a recognized restaurant.")
	assert.Contains(t, out, "Available restaurants: Cheezious, Ranchers, Howdy")
	assert.Equal(t, 1.0, h.metric(t, `chefbot_orders_total{outcome="aborted"}`))
}

func TestStyledOutputStaysReadable(t *testing.T) {
	h := newHarness(t, "", WithColor(true))
	h.bot.ShowHelp()
	assert.Contains(t, h.out.String(), "CHEFBOT COMMAND GUIDE")
	assert.Contains(t, h.out.String(), "'recommend sandwich' - Show sandwich recommendations")
}
