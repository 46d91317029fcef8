package stats

import "time"

// Totals is the fully-named accumulator every computation folds into.
// Matches is always Wins+Draws+Losses; Penalties holds absolute magnitude.
type Totals struct {
	Presences   int
	Goals       int
	Assists     int
	Wins        int
	Draws       int
	Losses      int
	YellowCards int
	BlueCards   int
	Penalties   int
	TotalPoints int
	Matches     int
}

func (t Totals) Add(o Totals) Totals {
	return Totals{
		Presences:   t.Presences + o.Presences,
		Goals:       t.Goals + o.Goals,
		Assists:     t.Assists + o.Assists,
		Wins:        t.Wins + o.Wins,
		Draws:       t.Draws + o.Draws,
		Losses:      t.Losses + o.Losses,
		YellowCards: t.YellowCards + o.YellowCards,
		BlueCards:   t.BlueCards + o.BlueCards,
		Penalties:   t.Penalties + o.Penalties,
		TotalPoints: t.TotalPoints + o.TotalPoints,
		Matches:     t.Matches + o.Matches,
	}
}

// ParticipationRow is one closed (participant, round) record, written by the
// round-closing process and read-only here.
type ParticipationRow struct {
	RoundID     string
	RoundNumber int
	RoundDate   time.Time
	Presence    int
	Wins        int
	Draws       int
	Losses      int
	YellowCards int
	BlueCards   int
	TotalPoints int
}

// Totals folds the row into the accumulator shape. Presence counts once when
// the raw indicator is positive; goals, assists and penalties live in their
// own event rows and stay zero here.
func (r ParticipationRow) Totals() Totals {
	presence := 0
	if r.Presence > 0 {
		presence = 1
	}
	return Totals{
		Presences:   presence,
		Wins:        r.Wins,
		Draws:       r.Draws,
		Losses:      r.Losses,
		YellowCards: r.YellowCards,
		BlueCards:   r.BlueCards,
		TotalPoints: r.TotalPoints,
		Matches:     r.Wins + r.Draws + r.Losses,
	}
}

// GoalEvent is one non-own-goal scored by the participant. Own goals are
// excluded at fetch time and never reach this engine.
type GoalEvent struct {
	RoundID   string
	RoundDate time.Time
}

type AssistEvent struct {
	RoundID   string
	RoundDate time.Time
}

// PenaltyRow stores the deduction as signed points; totals carry the
// absolute magnitude.
type PenaltyRow struct {
	RoundID   string
	RoundDate time.Time
	Points    int
}

// EventSet is the full fetched history for one request scope. Fetches are
// never timestamp-bounded; snapshot/delta splitting happens afterwards.
type EventSet struct {
	Participation []ParticipationRow
	Goals         []GoalEvent
	Assists       []AssistEvent
	Penalties     []PenaltyRow
}

// Snapshot is the externally recomputed rolling aggregate. Its totals are
// trusted to equal a full fold over everything dated at or before UpdatedAt.
type Snapshot struct {
	Totals    Totals
	UpdatedAt time.Time
}

// Filter narrows a request. Zero values mean "not active"; Month is only
// meaningful together with Year.
type Filter struct {
	Year  int
	Month time.Month
}

type Mode string

const (
	// ModeHybrid combines the snapshot with the post-snapshot delta.
	ModeHybrid Mode = "hybrid"
	// ModeStandard recomputes everything from the fetched set and ignores
	// the snapshot entirely.
	ModeStandard Mode = "standard"
)

// RoundLine is one ground-truth record per round, scoped to exactly that
// round, used for charts and extremal-period search.
type RoundLine struct {
	RoundID     string
	RoundNumber int
	RoundDate   time.Time
	Totals      Totals
}

// MonthTotals groups round lines by calendar (year, month).
type MonthTotals struct {
	Year   int
	Month  time.Month
	Totals Totals
}

type Extremes struct {
	BestRound  RoundLine
	WorstRound RoundLine
	BestMonth  MonthTotals
	WorstMonth MonthTotals
}

type Ratios struct {
	GoalsPerMatch   float64
	AssistsPerMatch float64
	InvolvementPct  float64
	WinRatePct      float64
}

// Overview is the one object published per request.
type Overview struct {
	Mode           Mode
	Totals         Totals
	PerRound       []RoundLine
	AvailableYears []int
	Ratios         Ratios
	BestWorst      *Extremes
	IsLoading      bool
}
