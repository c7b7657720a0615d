package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/blackjack"
)

const (
	paneTable = iota
	paneLog
)

// revealMsg advances the paced reveal of the dealer's auto-play
type revealMsg struct{}

// Options configure the table presentation. None of these change engine
// behaviour.
type Options struct {
	// HideHoleCard hides the dealer's first card while a round is live.
	HideHoleCard bool
	// MinStandTotal disallows standing below this total (0 = off). This is
	// a table policy of the UI only; the engine allows standing on any
	// total.
	MinStandTotal int
	// DealDelay paces the reveal of dealer draws after standing.
	DealDelay time.Duration
	// Clock drives the reveal pacing; defaults to the real clock.
	Clock quartz.Clock
	// TestMode captures log entries instead of driving the viewport.
	TestMode bool
}

// Model is the Bubble Tea model for the blackjack table. It observes a
// Game, issues its commands in response to key presses, and re-reads
// state to render.
type Model struct {
	game   *blackjack.Game
	logger *log.Logger
	clock  quartz.Clock
	styles Styles

	logViewport viewport.Model
	gameLog     []string

	hideHoleCard  bool
	minStandTotal int
	dealDelay     time.Duration

	// dealerShown lags the engine while dealer auto-play is replayed
	// visually, one card per revealMsg.
	dealerShown int
	revealing   bool

	focusedPane int
	width       int
	height      int
	initialized bool
	quitting    bool

	testMode bool
	captured []string
}

// New creates a table model observing the given game
func New(game *blackjack.Game, logger *log.Logger, styles Styles, opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	return &Model{
		game:          game,
		logger:        logger.WithPrefix("tui"),
		clock:         clock,
		styles:        styles,
		logViewport:   vp,
		gameLog:       []string{},
		hideHoleCard:  opts.HideHoleCard,
		minStandTotal: opts.MinStandTotal,
		dealDelay:     opts.DealDelay,
		focusedPane:   paneTable,
		testMode:      opts.TestMode,
		captured:      []string{},
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	m.addLog(m.styles.Info.Render("Welcome to Blackjack. Press n to deal."))
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

	case revealMsg:
		return m.advanceReveal()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == paneTable {
				m.focusedPane = paneLog
			} else {
				m.focusedPane = paneTable
			}
		case "n":
			return m.handleNewRound()
		case "h":
			return m.handleHit()
		case "s":
			return m.handleStand()
		case "S":
			return m.handleShuffle()
		case "R":
			return m.handleReset()
		case "up", "k":
			if m.focusedPane == paneLog {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == paneLog {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == paneLog {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == paneLog {
				m.logViewport.HalfPageDown()
			}
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) handleNewRound() (tea.Model, tea.Cmd) {
	if m.revealing {
		return m, nil
	}

	m.game.NewRound()
	m.logger.Info("new round",
		"player", m.game.Player().String(),
		"dealer", m.game.Dealer().String(),
		"remaining", m.game.Remaining())

	player := m.game.Player()
	m.addLog(m.styles.Label.Render("*** new round ***"))
	m.addLog(fmt.Sprintf("You are dealt %s (%d)", m.formatCards(player.Cards()), player.Value()))
	if m.hideHoleCard {
		upcard := m.game.Dealer().Cards()[1]
		m.addLog(fmt.Sprintf("Dealer shows %s", m.formatCard(upcard)))
	} else {
		dealer := m.game.Dealer()
		m.addLog(fmt.Sprintf("Dealer has %s (%d)", m.formatCards(dealer.Cards()), dealer.Value()))
	}
	if player.IsBlackjack() {
		m.addLog(m.styles.Success.Render("Blackjack!"))
	}
	return m, nil
}

func (m *Model) handleHit() (tea.Model, tea.Cmd) {
	if m.revealing || !m.game.InRound() {
		return m, nil
	}

	m.game.Hit()
	player := m.game.Player()
	drawn := player.Cards()[player.Count()-1]
	m.logger.Info("hit", "card", drawn.String(), "total", player.Value())
	m.addLog(fmt.Sprintf("You draw %s (%d)", m.formatCard(drawn), player.Value()))

	if !m.game.InRound() {
		// Busting resolves the round without dealer play.
		hole := m.game.Dealer().Cards()[0]
		if m.hideHoleCard {
			m.addLog(fmt.Sprintf("Dealer reveals %s", m.formatCard(hole)))
		}
		m.announceOutcome()
	}
	return m, nil
}

func (m *Model) handleStand() (tea.Model, tea.Cmd) {
	if m.revealing || !m.game.InRound() {
		return m, nil
	}

	if total := m.game.Player().Value(); m.minStandTotal > 0 && total < m.minStandTotal {
		m.addLog(m.styles.Warning.Render(
			fmt.Sprintf("House rule: you can only stand on %d or more (you have %d)", m.minStandTotal, total)))
		return m, nil
	}

	m.game.Stand()
	m.logger.Info("stand",
		"dealer", m.game.Dealer().String(),
		"outcome", m.game.Outcome().String())

	m.revealing = true
	m.dealerShown = 2
	hole := m.game.Dealer().Cards()[0]
	shown := blackjack.NewHand(m.game.Dealer().Cards()[:2]...)
	m.addLog(fmt.Sprintf("Dealer reveals %s (%d)", m.formatCard(hole), shown.Value()))
	return m, m.revealCmd()
}

// advanceReveal shows the next dealer draw, or announces the outcome once
// every card is on the table
func (m *Model) advanceReveal() (tea.Model, tea.Cmd) {
	dealer := m.game.Dealer()
	if m.dealerShown < dealer.Count() {
		card := dealer.Cards()[m.dealerShown]
		m.dealerShown++
		shown := blackjack.NewHand(dealer.Cards()[:m.dealerShown]...)
		m.addLog(fmt.Sprintf("Dealer draws %s (%d)", m.formatCard(card), shown.Value()))
		return m, m.revealCmd()
	}

	m.revealing = false
	if dealer.IsBust() {
		m.addLog(fmt.Sprintf("Dealer busts at %d", dealer.Value()))
	} else {
		m.addLog(fmt.Sprintf("Dealer stands at %d", dealer.Value()))
	}
	m.announceOutcome()
	return m, nil
}

// revealCmd schedules the next reveal step on the injected clock
func (m *Model) revealCmd() tea.Cmd {
	if m.dealDelay <= 0 {
		return func() tea.Msg { return revealMsg{} }
	}

	clock, delay := m.clock, m.dealDelay
	return func() tea.Msg {
		fired := make(chan struct{})
		timer := clock.AfterFunc(delay, func() { close(fired) })
		defer timer.Stop()
		<-fired
		return revealMsg{}
	}
}

func (m *Model) handleShuffle() (tea.Model, tea.Cmd) {
	if m.revealing {
		return m, nil
	}
	m.game.Shuffle()
	m.logger.Info("shuffled deck", "remaining", m.game.Remaining())
	m.addLog("Deck shuffled.")
	return m, nil
}

func (m *Model) handleReset() (tea.Model, tea.Cmd) {
	if m.revealing {
		return m, nil
	}
	m.game.Reset()
	m.logger.Info("session reset")
	m.gameLog = []string{}
	m.logViewport.SetContent("")
	m.addLog(m.styles.Info.Render("Fresh deck, fresh start. Press n to deal."))
	return m, nil
}

func (m *Model) announceOutcome() {
	switch m.game.Outcome() {
	case blackjack.OutcomePlayer:
		m.addLog(m.styles.Success.Render("You win!"))
	case blackjack.OutcomeDealer:
		if m.game.Player().IsBust() {
			m.addLog(m.styles.Error.Render("Bust! Dealer wins."))
		} else {
			m.addLog(m.styles.Error.Render("Dealer wins."))
		}
	case blackjack.OutcomePush:
		m.addLog(m.styles.Warning.Render("Push (tie)."))
	}
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	table := m.renderTablePane()

	logWidth := 40
	tableWidth := m.width - logWidth - 4
	if tableWidth < 20 {
		tableWidth = 20
		logWidth = m.width - tableWidth - 4
		if logWidth < 1 {
			logWidth = 1
		}
	}

	paneHeight := m.height - 3
	if paneHeight < 3 {
		paneHeight = 3
	}

	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	tableStyle := m.styles.PaneBorder.Width(tableWidth).Height(paneHeight)
	logStyle := m.styles.PaneBorder.Width(logWidth).Height(paneHeight)
	if m.focusedPane == paneTable {
		tableStyle = m.styles.FocusedPane.Width(tableWidth).Height(paneHeight)
	} else {
		logStyle = m.styles.FocusedPane.Width(logWidth).Height(paneHeight)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		tableStyle.Render(table),
		logStyle.Render(m.logViewport.View()))

	return lipgloss.JoinVertical(lipgloss.Top, top, m.styles.Help.Render(m.helpLine()))
}

func (m *Model) renderTablePane() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Dealer"))
	b.WriteString("\n")
	b.WriteString(m.renderDealerHand())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Player"))
	b.WriteString("\n")
	player := m.game.Player()
	b.WriteString(m.formatCards(player.Cards()))
	if player.Count() > 0 {
		b.WriteString(m.styles.Total.Render(fmt.Sprintf("  = %d", player.Value())))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Info.Render(fmt.Sprintf("Deck: %d", m.game.Remaining())))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderDealerHand() string {
	dealer := m.game.Dealer()
	cards := dealer.Cards()
	if len(cards) == 0 {
		return ""
	}

	switch {
	case m.game.InRound() && m.hideHoleCard:
		parts := []string{m.styles.CardBack.Render("[??]")}
		for _, c := range cards[1:] {
			parts = append(parts, m.formatCard(c))
		}
		return strings.Join(parts, " ")

	case m.revealing:
		shown := cards[:m.dealerShown]
		out := m.formatCards(shown)
		return out + m.styles.Total.Render(fmt.Sprintf("  = %d", blackjack.NewHand(shown...).Value()))

	default:
		return m.formatCards(cards) + m.styles.Total.Render(fmt.Sprintf("  = %d", dealer.Value()))
	}
}

func (m *Model) helpLine() string {
	if m.focusedPane == paneLog {
		return "log: ↑↓ scroll, pgup/pgdn half page • tab to table • q quit"
	}
	return "n new round • h hit • s stand • S shuffle • R reset • tab log • q quit"
}

// formatCards formats cards with suit colors
func (m *Model) formatCards(cards []blackjack.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = m.formatCard(c)
	}
	return strings.Join(parts, " ")
}

func (m *Model) formatCard(c blackjack.Card) string {
	if c.IsRed() {
		return m.styles.RedCard.Render("[" + c.String() + "]")
	}
	return m.styles.BlackCard.Render("[" + c.String() + "]")
}

// addLog appends an entry to the round log
func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.captured = append(m.captured, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// CapturedLog returns the captured log entries (test mode only)
func (m *Model) CapturedLog() []string {
	if !m.testMode {
		return nil
	}
	out := make([]string, len(m.captured))
	copy(out, m.captured)
	return out
}
