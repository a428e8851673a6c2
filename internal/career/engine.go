package career

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"sync"
	"time"
)

const SnapshotVersion = 1

// MatchOracle produces finished match results. The engine never computes
// match physics itself; a failed or malformed response aborts the match
// start with no side effects.
type MatchOracle interface {
	SimulateMatch(ctx context.Context, req MatchRequest) (MatchResult, error)
}

// CandidateSource produces transfer-market and academy players, without
// identities or derived fields.
type CandidateSource interface {
	TransferCandidates(ctx context.Context, count int, averageRating float64) ([]Player, error)
	AcademyProspect(ctx context.Context, academyLevel int) (Player, error)
}

// SnapshotStore persists the full career snapshot as one opaque blob.
// Save must write the whole blob or nothing.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}

// MatchRequest describes the user club to the oracle.
type MatchRequest struct {
	ClubName         string        `json:"club_name"`
	Tier             int           `json:"tier"`
	Opponent         string        `json:"opponent"`
	OpponentStrength int           `json:"opponent_strength"`
	Mentality        Mentality     `json:"mentality"`
	Focus            Focus         `json:"focus"`
	Roster           []RosterEntry `json:"roster"`
	StadiumCapacity  int           `json:"stadium_capacity"`
	FacilityLevel    int           `json:"facility_level"`
}

type RosterEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Role     Role   `json:"role"`
	Rating   int    `json:"rating"`
	Starting bool   `json:"starting"`
}

// Engine owns the single career aggregate. Every mutation runs under one
// mutex and is applied as one transition, so readers never observe a
// half-resolved club. Mutations persist a fire-and-forget snapshot.
type Engine struct {
	mu   sync.Mutex
	rand *mathrand.Rand
	log  *slog.Logger

	oracle MatchOracle
	market CandidateSource
	store  SnapshotStore

	requireLineup bool

	club      Club
	standings []Standing
	status    CareerStatus
	offers    []JobOffer
	transfers []Player

	playback   *Playback
	lastResult *MatchResult
	fetching   bool
	lastSaved  time.Time

	// tickOverride, when set, replaces the speed-derived playback period.
	tickOverride time.Duration
}

type Option func(*Engine)

// WithLineupRule toggles the exactly-11 starters requirement at match
// start. Both behaviors exist in the wild; strict is the default.
func WithLineupRule(required bool) Option {
	return func(e *Engine) { e.requireLineup = required }
}

func NewEngine(oracle MatchOracle, market CandidateSource, store SnapshotStore, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		rand:          mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
		log:           logger,
		oracle:        oracle,
		market:        market,
		store:         store,
		requireLineup: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restore loads the persisted career, or starts a fresh one when no save
// exists or the blob does not parse.
func (e *Engine) Restore(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fresh := func(reason string, err error) {
		if err != nil {
			e.log.Warn("starting fresh career", "reason", reason, "err", err)
		}
		e.club = SeedClub(e.rand.Intn)
		e.standings = SeedStandings()
		e.status = StatusEmployed
		e.offers = nil
	}

	if e.store == nil {
		fresh("no store configured", nil)
		return
	}
	blob, err := e.store.Load(ctx)
	if err != nil || len(blob) == 0 {
		fresh("no saved career", err)
		return
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		fresh("snapshot parse failed", err)
		return
	}
	e.club = snap.Club
	e.standings = snap.Standings
	e.status = snap.Status
	e.offers = snap.Offers
	if e.club.Tactics.RoleAssignments == nil {
		e.club.Tactics.RoleAssignments = map[string]Role{}
	}
	e.log.Info("career restored", "club", e.club.Name, "matchday", e.club.Matchday)
}

// Close tears the engine down, cancelling any in-flight playback.
func (e *Engine) Close() {
	e.mu.Lock()
	pb := e.playback
	e.mu.Unlock()
	if pb != nil {
		pb.Cancel()
	}
}

// StartMatch asks the oracle for the next fixture's result and begins
// its live playback at the given speed (1, 2 or 4 minutes per second).
// At the end of the season it performs rollover instead.
func (e *Engine) StartMatch(ctx context.Context, speed int) (StartMatchOutcome, error) {
	e.mu.Lock()
	if e.inFlight() {
		e.mu.Unlock()
		return StartMatchOutcome{}, ErrMatchInProgress
	}
	if !e.status.Employed() {
		e.mu.Unlock()
		return StartMatchOutcome{}, ErrNotEmployed
	}
	if e.club.Matchday >= SeasonLength {
		released := RolloverSeason(&e.club, e.standings)
		e.club.Objectives = SeedObjectives()
		snap := e.snapshotLocked()
		e.mu.Unlock()
		e.log.Info("season rolled over", "released_players", len(released))
		e.saveAsync(snap)
		return StartMatchOutcome{SeasonComplete: true}, nil
	}
	if e.requireLineup {
		if err := ValidateLineup(&e.club); err != nil {
			e.mu.Unlock()
			return StartMatchOutcome{}, err
		}
	}
	opponent, ok := e.pickOpponentLocked()
	if !ok {
		e.mu.Unlock()
		return StartMatchOutcome{}, fmt.Errorf("no opponent available in tier %d", e.club.Tier)
	}
	req := e.matchRequestLocked(opponent)
	e.fetching = true
	e.mu.Unlock()

	result, err := e.oracle.SimulateMatch(ctx, req)

	e.mu.Lock()
	e.fetching = false
	if err != nil {
		e.mu.Unlock()
		return StartMatchOutcome{}, fmt.Errorf("%w: %v", ErrOracleFailure, err)
	}
	if result.HomeScore < 0 || result.AwayScore < 0 {
		e.mu.Unlock()
		return StartMatchOutcome{}, fmt.Errorf("%w: malformed scoreline", ErrOracleFailure)
	}
	pb := NewPlayback(result, e.resolve)
	e.playback = pb
	e.lastResult = &result
	e.mu.Unlock()

	period := tickPeriod(speed)
	if e.tickOverride > 0 {
		period = e.tickOverride
	}
	go pb.Run(period)
	return StartMatchOutcome{Opponent: opponent}, nil
}

// CancelMatch abandons the current playback without resolving it. It is
// idempotent and safe to call when nothing is playing.
func (e *Engine) CancelMatch() {
	e.mu.Lock()
	pb := e.playback
	e.mu.Unlock()
	if pb != nil {
		pb.Cancel()
	}
}

// resolve applies a completed match as one atomic transition across
// roster, ledger, job security, season record and objectives. Playback
// invokes it exactly once, on natural completion only.
func (e *Engine) resolve(result MatchResult) {
	e.mu.Lock()

	wages := WeeklyWages(&e.club)
	outcome := result.Outcome()

	status, security := EvaluateSecurity(e.status, e.club.JobSecurity, outcome)
	e.club.JobSecurity = security
	crisisOpened := status == StatusCrisis && e.status != StatusCrisis
	sacked := status == StatusSacked
	e.status = status

	e.club.Matchday++
	e.club.GoalsFor += result.HomeScore
	e.club.GoalsAgainst += result.AwayScore
	switch outcome {
	case OutcomeWin:
		e.club.Wins++
	case OutcomeDraw:
		e.club.Draws++
	case OutcomeLoss:
		e.club.Losses++
	}

	e.club.Players = ResolveRoster(e.club.Players, result, e.rand.Intn)
	SettleMatch(&e.club, result.Revenue, wages)
	e.applyAwayRecordLocked(result)
	e.advanceObjectivesLocked()

	if sacked {
		e.offers = GenerateOffers(OpponentClubs, e.rand.Intn)
	}
	snap := e.snapshotLocked()
	club, matchday := e.club.Name, e.club.Matchday
	e.mu.Unlock()

	e.log.Info("match resolved",
		"club", club,
		"matchday", matchday,
		"outcome", string(outcome),
		"score", fmt.Sprintf("%d-%d", result.HomeScore, result.AwayScore),
		"security", security,
		"crisis", crisisOpened,
		"sacked", sacked,
	)
	e.saveAsync(snap)
}

// applyAwayRecordLocked books the result on the opponent's standings row
// so the rest of the table keeps moving.
func (e *Engine) applyAwayRecordLocked(result MatchResult) {
	for i := range e.standings {
		if e.standings[i].Name != result.AwayTeam {
			continue
		}
		row := &e.standings[i]
		row.Played++
		row.GoalsFor += result.AwayScore
		row.GoalsAgainst += result.HomeScore
		switch result.Outcome() {
		case OutcomeWin:
			row.Losses++
		case OutcomeDraw:
			row.Draws++
			row.Points++
		case OutcomeLoss:
			row.Wins++
			row.Points += 3
		}
		return
	}
}

func (e *Engine) advanceObjectivesLocked() {
	for i := range e.club.Objectives {
		obj := &e.club.Objectives[i]
		switch obj.Type {
		case ObjectiveWins:
			obj.Current = e.club.Wins
		case ObjectiveGoals:
			obj.Current = e.club.GoalsFor
		case ObjectiveStability:
			if e.club.Financials.FFPStatus == FFPHealthy {
				obj.Current++
			}
		}
		if !obj.Completed && obj.Current >= obj.Target {
			obj.Completed = true
			Credit(&e.club, obj.Reward)
			e.log.Info("objective completed", "objective", obj.Title, "reward", obj.Reward)
		}
	}
}

// PledgeToBoard accepts the board's ultimatum and stays on under reduced
// security and a doubled loss penalty.
func (e *Engine) PledgeToBoard(ctx context.Context) error {
	e.mu.Lock()
	status, security, err := Pledge(e.status)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	e.status = status
	e.club.JobSecurity = security
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.saveAsync(snap)
	return nil
}

// ResignPost walks out during a crisis talk and moves straight to the
// job market.
func (e *Engine) ResignPost(ctx context.Context) error {
	e.mu.Lock()
	status, err := Resign(e.status)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	e.status = status
	e.offers = GenerateOffers(OpponentClubs, e.rand.Intn)
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.saveAsync(snap)
	return nil
}

// AcceptJobOffer re-employs the manager at one of the offered clubs. The
// squad follows the manager; club identity and season state reset.
func (e *Engine) AcceptJobOffer(ctx context.Context, offerID string) error {
	e.mu.Lock()
	if e.status != StatusSacked && e.status != StatusUnemployed {
		e.mu.Unlock()
		return ErrNotUnemployed
	}
	var offer *JobOffer
	for i := range e.offers {
		if e.offers[i].ID == offerID {
			offer = &e.offers[i]
			break
		}
	}
	if offer == nil {
		e.mu.Unlock()
		return ErrOfferNotFound
	}
	AcceptOffer(&e.club, *offer)
	e.status = StatusEmployed
	e.offers = nil
	snap := e.snapshotLocked()
	name := e.club.Name
	e.mu.Unlock()
	e.log.Info("job offer accepted", "club", name)
	e.saveAsync(snap)
	return nil
}

// RenewContract re-signs a player on a four-year deal with a 15% raise,
// charging the signing fee up front.
func (e *Engine) RenewContract(ctx context.Context, playerID string) error {
	e.mu.Lock()
	i, ok := findPlayer(e.club.Players, playerID)
	if !ok {
		e.mu.Unlock()
		return ErrPlayerNotFound
	}
	newSalary, fee := RenewalTerms(e.club.Players[i].Salary)
	if err := Spend(&e.club, fee, false); err != nil {
		e.mu.Unlock()
		return err
	}
	e.club.Players[i].Salary = newSalary
	e.club.Players[i].ContractYears = 4
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.saveAsync(snap)
	return nil
}

// ToggleStarter adds a squad player to the starting lineup or drops them
// from it. Adding a twelfth starter is rejected with no mutation.
func (e *Engine) ToggleStarter(ctx context.Context, playerID string) error {
	e.mu.Lock()
	if _, ok := findPlayer(e.club.Players, playerID); !ok {
		e.mu.Unlock()
		return ErrPlayerNotFound
	}
	xi := e.club.Tactics.StartingXI
	for i, id := range xi {
		if id == playerID {
			e.club.Tactics.StartingXI = append(xi[:i:i], xi[i+1:]...)
			snap := e.snapshotLocked()
			e.mu.Unlock()
			e.saveAsync(snap)
			return nil
		}
	}
	if len(xi) >= StartersRequired {
		e.mu.Unlock()
		return ErrLineupFull
	}
	e.club.Tactics.StartingXI = append(xi, playerID)
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.saveAsync(snap)
	return nil
}

// UpdateTactics merges a partial tactics change into the club.
func (e *Engine) UpdateTactics(ctx context.Context, update TacticsUpdate) error {
	e.mu.Lock()
	if update.Formation != nil {
		e.club.Tactics.Formation = *update.Formation
	}
	if update.Mentality != nil {
		e.club.Tactics.Mentality = *update.Mentality
	}
	if update.Focus != nil {
		e.club.Tactics.Focus = *update.Focus
	}
	for id, role := range update.Roles {
		e.club.Tactics.RoleAssignments[id] = role
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.saveAsync(snap)
	return nil
}

// RefreshTransferMarket fetches a new shortlist of signable players
// around the squad's average rating. A generator failure leaves the
// current list untouched.
func (e *Engine) RefreshTransferMarket(ctx context.Context) error {
	e.mu.Lock()
	avg := averageRating(e.club.Players)
	e.mu.Unlock()

	candidates, err := e.market.TransferCandidates(ctx, 4, avg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOracleFailure, err)
	}

	e.mu.Lock()
	signable := make([]Player, 0, len(candidates))
	for _, c := range candidates {
		signable = append(signable, PrepareSigning(c, e.rand.Intn))
	}
	e.transfers = signable
	e.mu.Unlock()
	return nil
}

// BuyPlayer signs a player off the current transfer shortlist, booking
// the fee as transfer spend.
func (e *Engine) BuyPlayer(ctx context.Context, playerID string) error {
	e.mu.Lock()
	idx := -1
	for i := range e.transfers {
		if e.transfers[i].ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.mu.Unlock()
		return ErrNoTransfer
	}
	signing := e.transfers[idx]
	if err := Spend(&e.club, signing.MarketValue, true); err != nil {
		e.mu.Unlock()
		return err
	}
	e.club.Players = append(e.club.Players, signing)
	e.transfers = append(e.transfers[:idx:idx], e.transfers[idx+1:]...)
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.log.Info("player signed", "player", signing.Name, "fee", signing.MarketValue)
	e.saveAsync(snap)
	return nil
}

// RecruitProspect pulls one youth player from the academy, charging the
// level-scaled intake fee. Fetch failure or missing funds leave the
// squad and ledger untouched.
func (e *Engine) RecruitProspect(ctx context.Context) error {
	e.mu.Lock()
	level := e.club.AcademyLevel
	fee := RecruitFee(level)
	if fee > e.club.Funds {
		e.mu.Unlock()
		return ErrInsufficientFunds
	}
	e.mu.Unlock()

	prospect, err := e.market.AcademyProspect(ctx, level)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOracleFailure, err)
	}

	e.mu.Lock()
	if err := Spend(&e.club, fee, false); err != nil {
		e.mu.Unlock()
		return err
	}
	signed := PrepareProspect(prospect)
	e.club.Players = append(e.club.Players, signed)
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.log.Info("academy prospect recruited", "player", signed.Name, "fee", fee)
	e.saveAsync(snap)
	return nil
}

// UpgradeAcademy raises the academy facility one level, up to the cap.
func (e *Engine) UpgradeAcademy(ctx context.Context) error {
	e.mu.Lock()
	if e.club.AcademyLevel >= MaxAcademyLevel {
		e.mu.Unlock()
		return ErrAcademyMaxed
	}
	if err := Spend(&e.club, UpgradeCost(e.club.AcademyLevel), false); err != nil {
		e.mu.Unlock()
		return err
	}
	e.club.AcademyLevel++
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.saveAsync(snap)
	return nil
}

// Save writes a snapshot synchronously, for the explicit save action.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	snap := e.snapshotLocked()
	e.mu.Unlock()
	if e.store == nil {
		return nil
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := e.store.Save(ctx, blob); err != nil {
		return err
	}
	e.mu.Lock()
	e.lastSaved = time.Now()
	e.mu.Unlock()
	return nil
}

// View snapshots the aggregate for presentation.
func (e *Engine) View() CareerView {
	e.mu.Lock()
	defer e.mu.Unlock()
	view := CareerView{
		Club:        copyClub(e.club),
		Status:      e.status,
		Warned:      e.club.JobSecurity < WarnThreshold,
		Offers:      append([]JobOffer(nil), e.offers...),
		Transfers:   append([]Player(nil), e.transfers...),
		WeeklyWages: WeeklyWages(&e.club),
		Simulating:  e.inFlight(),
	}
	if !e.lastSaved.IsZero() {
		view.LastSavedAt = e.lastSaved.Format(time.RFC3339)
	}
	return view
}

// Standings returns the sorted table for a tier, with the user club's
// live row merged in while the manager holds a job there.
func (e *Engine) Standings(tier int) []Standing {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SortedStandings(e.standings, &e.club, tier, e.status.Employed())
}

// Live reports the current playback state, or an inactive zero value
// when nothing has been played yet.
func (e *Engine) Live() LiveMatch {
	e.mu.Lock()
	pb := e.playback
	e.mu.Unlock()
	if pb == nil {
		return LiveMatch{}
	}
	return pb.Live()
}

// LastResult returns the most recent finalized result.
func (e *Engine) LastResult() (MatchResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastResult == nil {
		return MatchResult{}, false
	}
	return *e.lastResult, true
}

func (e *Engine) inFlight() bool {
	if e.fetching {
		return true
	}
	return e.playback != nil && e.playback.active()
}

func (e *Engine) pickOpponentLocked() (string, bool) {
	var pool []string
	for _, row := range e.standings {
		if row.Tier == e.club.Tier && row.Name != e.club.Name {
			pool = append(pool, row.Name)
		}
	}
	if len(pool) == 0 {
		return "", false
	}
	return pool[e.rand.Intn(len(pool))], true
}

func (e *Engine) matchRequestLocked(opponent string) MatchRequest {
	starters := make(map[string]struct{}, len(e.club.Tactics.StartingXI))
	for _, id := range e.club.Tactics.StartingXI {
		starters[id] = struct{}{}
	}
	roster := make([]RosterEntry, 0, len(e.club.Players))
	for _, p := range e.club.Players {
		_, starting := starters[p.ID]
		roster = append(roster, RosterEntry{
			ID:       p.ID,
			Name:     p.Name,
			Position: string(p.Position),
			Role:     e.club.Tactics.RoleAssignments[p.ID],
			Rating:   p.Rating,
			Starting: starting,
		})
	}
	strength := 74
	if e.club.Tier == 1 {
		strength = 84
	}
	return MatchRequest{
		ClubName:         e.club.Name,
		Tier:             e.club.Tier,
		Opponent:         opponent,
		OpponentStrength: strength,
		Mentality:        e.club.Tactics.Mentality,
		Focus:            e.club.Tactics.Focus,
		Roster:           roster,
		StadiumCapacity:  e.club.Stadium.Capacity,
		FacilityLevel:    e.club.Stadium.FacilityLevel,
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Version:   SnapshotVersion,
		Club:      copyClub(e.club),
		Standings: append([]Standing(nil), e.standings...),
		Status:    e.status,
		Offers:    append([]JobOffer(nil), e.offers...),
	}
}

// saveAsync persists a snapshot without blocking the action that
// produced it. Failures are logged, never fatal.
func (e *Engine) saveAsync(snap Snapshot) {
	if e.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		blob, err := json.Marshal(snap)
		if err != nil {
			e.log.Error("snapshot marshal failed", "err", err)
			return
		}
		if err := e.store.Save(ctx, blob); err != nil && !errors.Is(err, context.Canceled) {
			e.log.Error("snapshot save failed", "err", err)
			return
		}
		e.mu.Lock()
		e.lastSaved = time.Now()
		e.mu.Unlock()
	}()
}

func tickPeriod(speed int) time.Duration {
	if speed < 1 {
		speed = 1
	}
	if speed > 4 {
		speed = 4
	}
	return time.Second / time.Duration(speed)
}

func averageRating(players []Player) float64 {
	if len(players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range players {
		sum += p.Rating
	}
	return float64(sum) / float64(len(players))
}

func copyClub(c Club) Club {
	out := c
	out.Players = make([]Player, len(c.Players))
	for i, p := range c.Players {
		p.MatchHistory = append([]float64(nil), p.MatchHistory...)
		out.Players[i] = p
	}
	out.Objectives = append([]Objective(nil), c.Objectives...)
	out.Tactics.StartingXI = append([]string(nil), c.Tactics.StartingXI...)
	roles := make(map[string]Role, len(c.Tactics.RoleAssignments))
	for k, v := range c.Tactics.RoleAssignments {
		roles[k] = v
	}
	out.Tactics.RoleAssignments = roles
	return out
}
