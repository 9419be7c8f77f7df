package videopoker

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"softypoker/internal/rng"
	"softypoker/pkg/deck"
	"softypoker/pkg/poker"
)

// Session is a single player's game of video poker
// A session is not safe for concurrent use. The host must serialize every call.
type Session struct {
	ID string

	options Options
	logger  logrus.FieldLogger
	deck    *deck.Deck
	hand    deck.Hand
	phase   Phase

	bet      int
	credits  int
	prize    int
	category poker.Category
	// canGamble is true while the last collected prize hasn't been risked yet
	canGamble bool
	// gamble is created on first use
	gamble *Gamble

	subscribers   []func(*Event)
	events        []*Event
	lastRejection error
}

// NewSession returns a new session in the idle phase
func NewSession(logger logrus.FieldLogger, options Options) (*Session, error) {
	if options.StartingCredits <= 0 {
		return nil, errors.New("starting credits must be > 0")
	}

	if options.MaxBet <= 0 {
		return nil, errors.New("max bet must be > 0")
	}

	if len(options.Paytable.Categories()) == 0 {
		return nil, errors.New("paytable has no paying categories")
	}

	if options.Generator == nil {
		options.Generator = rng.Crypto{}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	d := deck.New(options.Generator)
	d.Shuffle()

	return &Session{
		ID:       id,
		options:  options,
		logger:   logger.WithField("session", id),
		deck:     d,
		phase:    PhaseIdle,
		bet:      1,
		credits:  options.StartingCredits,
		category: poker.NoWin,
	}, nil
}

// Subscribe registers a function that is called after every state change
func (s *Session) Subscribe(fn func(*Event)) {
	s.subscribers = append(s.subscribers, fn)
}

// Perform runs the action and returns true if the state changed
// position is only used by ActionToggleHold.
func (s *Session) Perform(action Action, position int) bool {
	switch action {
	case ActionStart:
		return s.Start()
	case ActionIncreaseBet:
		return s.IncreaseBet()
	case ActionDeal:
		return s.Deal()
	case ActionToggleHold:
		return s.ToggleHold(position)
	case ActionRedraw:
		return s.Redraw()
	case ActionCollect:
		return s.Collect()
	case ActionGamble:
		return s.Gamble()
	case ActionGuessHigher:
		return s.Guess(true)
	case ActionGuessLower:
		return s.Guess(false)
	case ActionCashOut:
		return s.CashOut()
	case ActionReset:
		return s.Reset()
	}

	panic(fmt.Sprintf("invalid action: %d", action))
}

// Start moves an idle session to betting
func (s *Session) Start() bool {
	if !s.allowed(ActionStart) {
		return false
	}

	s.phase = PhaseBetting
	e := newEvent(EventGameStarted)
	e.Payouts = s.options.Paytable.Table(s.bet)
	s.emit(e)
	return true
}

// IncreaseBet cycles the bet up by one, wrapping to 1 after min(credits, max bet)
func (s *Session) IncreaseBet() bool {
	if !s.allowed(ActionIncreaseBet) {
		return false
	}

	limit := s.options.MaxBet
	if s.credits < limit {
		limit = s.credits
	}

	if s.bet < limit {
		s.bet++
	} else {
		s.bet = 1
	}

	e := newEvent(EventBetChanged)
	e.Payouts = s.options.Paytable.Table(s.bet)
	s.emit(e)
	return true
}

// Deal debits the bet and deals a fresh five-card hand
func (s *Session) Deal() bool {
	if !s.allowed(ActionDeal) {
		return false
	}

	if !s.deck.CanDraw(poker.HandSize) {
		panic(fmt.Sprintf("inconsistent state found, only %d cards left to deal", s.deck.CardsLeft()))
	}

	s.credits -= s.bet
	s.prize = 0
	s.category = poker.NoWin
	s.canGamble = false

	hand := make(deck.Hand, poker.HandSize)
	for i := range hand {
		hand[i] = s.draw()
	}

	hand.ClearHolds()
	s.hand = hand
	s.phase = PhaseDealt

	e := newEvent(EventHandDealt)
	e.Cards = s.hand.Clone()
	s.emit(e)
	return true
}

// ToggleHold flips the held flag on the card at the position (0-4)
func (s *Session) ToggleHold(position int) bool {
	if !s.allowed(ActionToggleHold) {
		return false
	}

	if position < 0 || position >= len(s.hand) {
		return s.reject(&InvalidTransitionError{
			Action: ActionToggleHold,
			Phase:  s.phase,
			Reason: fmt.Sprintf("invalid position %d", position),
		})
	}

	card := s.hand[position]
	card.Held = !card.Held

	e := newEvent(EventHoldToggled)
	e.Position = position
	e.Card = card.Clone()
	e.Held = card.Held
	s.emit(e)
	return true
}

// Redraw replaces every card that isn't held
// Held cards keep their position.
func (s *Session) Redraw() bool {
	if !s.allowed(ActionRedraw) {
		return false
	}

	replaced := make([]int, 0, len(s.hand))
	for i, card := range s.hand {
		if card.Held {
			continue
		}

		card := s.draw()
		if s.hand.HasCard(card) {
			panic(fmt.Sprintf("inconsistent state found, %s drawn while already in hand %s", card, s.hand))
		}

		s.hand[i] = card
		replaced = append(replaced, i)
	}

	s.phase = PhaseDrawn

	for _, i := range replaced {
		e := newEvent(EventCardReplaced)
		e.Position = i
		e.Card = s.hand[i].Clone()
		s.emit(e)
	}

	return true
}

// Collect evaluates the final hand and adds the prize to the credits
// The round deck is rebuilt for the next deal.
func (s *Session) Collect() bool {
	if !s.allowed(ActionCollect) {
		return false
	}

	prize, category, err := s.options.Paytable.Evaluate(s.hand, s.bet)
	if err != nil {
		panic(fmt.Sprintf("inconsistent state found, could not evaluate hand %s: %v", s.hand, err))
	}

	s.credits += prize
	s.prize = prize
	s.category = category
	s.canGamble = prize > 0
	s.deck.Shuffle()

	e := newEvent(EventPrizeAwarded)
	e.Amount = prize
	e.Category = category
	e.Cards = s.hand.Clone()
	e.Payouts = s.options.Paytable.Table(s.bet)

	s.logger.WithFields(logrus.Fields{
		"category": category.String(),
		"prize":    prize,
		"credits":  s.credits,
	}).Debug("collected")

	s.endRound(e)
	return true
}

// Gamble risks the last collected prize on the high-low game
// The prize is taken back out of the credits until it is cashed out.
func (s *Session) Gamble() bool {
	if !s.allowed(ActionGamble) {
		return false
	}

	if s.gamble == nil {
		s.gamble = newGamble(s.options.Generator)
	}

	s.credits -= s.prize
	s.gamble.prize = s.prize
	s.canGamble = false
	s.phase = PhaseGambling

	e := newEvent(EventGamblingStarted)
	e.Card = s.gamble.Current().Clone()
	e.Amount = s.gamble.Prize()
	s.emit(e)
	return true
}

// Guess reveals the next gamble card
// A correct guess doubles the prize; a wrong one forfeits it and ends the gamble.
func (s *Session) Guess(higher bool) bool {
	action := ActionGuessLower
	if higher {
		action = ActionGuessHigher
	}

	if !s.allowed(action) {
		return false
	}

	card, correct := s.gamble.reveal(higher)
	s.prize = s.gamble.Prize()

	e := newEvent(EventGamblingCardRevealed)
	e.Card = card.Clone()
	e.Correct = correct
	e.Amount = s.prize
	s.emit(e)

	if !correct {
		s.category = poker.NoWin
		s.endRound(newEvent(EventGamblingLost))
	}

	return true
}

// CashOut moves the whole gamble prize into the credits
func (s *Session) CashOut() bool {
	if !s.allowed(ActionCashOut) {
		return false
	}

	amount := s.gamble.takePrize()
	s.credits += amount
	s.prize = amount

	e := newEvent(EventGamblingCashedOut)
	e.Amount = amount
	s.endRound(e)
	return true
}

// Reset starts a new game after the credits have run out
func (s *Session) Reset() bool {
	if !s.allowed(ActionReset) {
		return false
	}

	s.credits = s.options.StartingCredits
	s.bet = 1
	s.prize = 0
	s.category = poker.NoWin
	s.canGamble = false
	s.hand = nil
	s.gamble = nil
	s.deck.Shuffle()
	s.phase = PhaseBetting

	e := newEvent(EventGameReset)
	e.Payouts = s.options.Paytable.Table(s.bet)
	s.emit(e)
	return true
}

// endRound emits the closing event and moves to betting or game over
func (s *Session) endRound(e *Event) {
	if s.credits <= 0 {
		s.phase = PhaseGameOver
		s.emit(e)

		s.logger.WithField("credits", s.credits).Info("game over")
		s.emit(newEvent(EventGameOverReached))
		return
	}

	s.phase = PhaseBetting
	s.emit(e)
}

// draw takes a card from the round deck
// The round deck is rebuilt every round, so running out is a bug.
func (s *Session) draw() *deck.Card {
	card, err := s.deck.Draw()
	if err != nil {
		panic(fmt.Sprintf("inconsistent state found, round deck could not draw: %v", err))
	}

	return card
}

// checkAction returns an *InvalidTransitionError if the action isn't allowed right now
func (s *Session) checkAction(action Action) error {
	var required Phase
	switch action {
	case ActionStart:
		required = PhaseIdle
	case ActionIncreaseBet, ActionDeal, ActionGamble:
		required = PhaseBetting
	case ActionToggleHold, ActionRedraw:
		required = PhaseDealt
	case ActionCollect:
		required = PhaseDrawn
	case ActionGuessHigher, ActionGuessLower, ActionCashOut:
		required = PhaseGambling
	case ActionReset:
		required = PhaseGameOver
	default:
		panic(fmt.Sprintf("invalid action: %d", action))
	}

	if s.phase != required {
		return &InvalidTransitionError{Action: action, Phase: s.phase}
	}

	reason := ""
	switch action {
	case ActionDeal:
		if s.credits < s.bet {
			reason = fmt.Sprintf("bet of %d exceeds credits of %d", s.bet, s.credits)
		}
	case ActionGamble:
		if !s.canGamble || s.prize <= 0 {
			reason = "no prize to gamble"
		}
	case ActionCashOut:
		if s.gamble.Prize() <= 0 {
			reason = "no prize to cash out"
		}
	}

	if reason != "" {
		return &InvalidTransitionError{Action: action, Phase: s.phase, Reason: reason}
	}

	return nil
}

// allowed checks the action and logs the rejection if it isn't
func (s *Session) allowed(action Action) bool {
	if err := s.checkAction(action); err != nil {
		return s.reject(err)
	}

	return true
}

func (s *Session) reject(err error) bool {
	s.lastRejection = err
	s.logger.WithError(err).Debug("ignored action")
	return false
}

// LastRejection returns the most recent ignored action, if any
func (s *Session) LastRejection() error {
	return s.lastRejection
}

func (s *Session) emit(e *Event) {
	e.Bet = s.bet
	e.Credits = s.credits

	events := append(s.events, e)
	if count := len(events); count > eventLogLimit {
		events = events[count-eventLogLimit:]
	}

	s.events = events

	for _, fn := range s.subscribers {
		fn(e)
	}
}

// Events returns the most recent events, oldest first
func (s *Session) Events() []*Event {
	events := make([]*Event, len(s.events))
	copy(events, s.events)
	return events
}
