package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/peladahub/league-stats/internal/domain/stats"
	qb "github.com/peladahub/league-stats/internal/platform/querybuilder"
)

// StatsRepository fetches the full per-scope event history. Queries are
// bounded by calendar year at most, never by the snapshot timestamp: the
// delta split happens downstream so chart consumers always see the whole
// period.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) ListParticipation(ctx context.Context, participantID string, year int) ([]stats.ParticipationRow, error) {
	builder := qb.Select(
		"rp.round_id",
		"r.round_number",
		"r.round_date",
		"rp.presence",
		"rp.wins",
		"rp.draws",
		"rp.losses",
		"rp.yellow_cards",
		"rp.blue_cards",
		"rp.total_points",
	).From("round_participants rp JOIN rounds r ON r.id = rp.round_id").
		Where(
			qb.Eq("rp.participant_id", participantID),
			qb.IsNull("rp.deleted_at"),
			qb.IsNull("r.deleted_at"),
		)
	if year > 0 {
		builder = builder.Where(qb.Expr("EXTRACT(YEAR FROM r.round_date) = ?", year))
	}
	query, args, err := builder.OrderBy("r.round_number").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list participation query")
	}

	var rows []participationDBRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list participation participant=%s", participantID)
	}

	out := make([]stats.ParticipationRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.ParticipationRow{
			RoundID:     row.RoundID,
			RoundNumber: row.RoundNumber,
			RoundDate:   row.RoundDate,
			Presence:    row.Presence,
			Wins:        row.Wins,
			Draws:       row.Draws,
			Losses:      row.Losses,
			YellowCards: row.YellowCards,
			BlueCards:   row.BlueCards,
			TotalPoints: row.TotalPoints,
		})
	}
	return out, nil
}

func (r *StatsRepository) ListGoals(ctx context.Context, participantID string, year int) ([]stats.GoalEvent, error) {
	builder := qb.Select(
		"r.id AS round_id",
		"r.round_date",
	).From("goals g JOIN matches m ON m.id = g.match_id JOIN rounds r ON r.id = m.round_id").
		Where(
			qb.Eq("g.participant_id", participantID),
			qb.IsFalse("g.own_goal"),
			qb.IsNull("g.deleted_at"),
			qb.IsNull("r.deleted_at"),
		)
	if year > 0 {
		builder = builder.Where(qb.Expr("EXTRACT(YEAR FROM r.round_date) = ?", year))
	}
	query, args, err := builder.OrderBy("r.round_date", "g.id").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list goals query")
	}

	var rows []eventDBRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list goals participant=%s", participantID)
	}

	out := make([]stats.GoalEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.GoalEvent{RoundID: row.RoundID, RoundDate: row.RoundDate})
	}
	return out, nil
}

func (r *StatsRepository) ListAssists(ctx context.Context, participantID string, year int) ([]stats.AssistEvent, error) {
	builder := qb.Select(
		"r.id AS round_id",
		"r.round_date",
	).From("assists a JOIN goals g ON g.id = a.goal_id JOIN matches m ON m.id = g.match_id JOIN rounds r ON r.id = m.round_id").
		Where(
			qb.Eq("a.participant_id", participantID),
			qb.IsNull("a.deleted_at"),
			qb.IsNull("r.deleted_at"),
		)
	if year > 0 {
		builder = builder.Where(qb.Expr("EXTRACT(YEAR FROM r.round_date) = ?", year))
	}
	query, args, err := builder.OrderBy("r.round_date", "a.id").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list assists query")
	}

	var rows []eventDBRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list assists participant=%s", participantID)
	}

	out := make([]stats.AssistEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.AssistEvent{RoundID: row.RoundID, RoundDate: row.RoundDate})
	}
	return out, nil
}

func (r *StatsRepository) ListPenalties(ctx context.Context, participantID string, year int) ([]stats.PenaltyRow, error) {
	builder := qb.Select(
		"r.id AS round_id",
		"r.round_date",
		"p.points",
	).From("penalties p JOIN rounds r ON r.id = p.round_id").
		Where(
			qb.Eq("p.participant_id", participantID),
			qb.IsNull("p.deleted_at"),
			qb.IsNull("r.deleted_at"),
		)
	if year > 0 {
		builder = builder.Where(qb.Expr("EXTRACT(YEAR FROM r.round_date) = ?", year))
	}
	query, args, err := builder.OrderBy("r.round_date", "p.id").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list penalties query")
	}

	var rows []penaltyDBRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list penalties participant=%s", participantID)
	}

	out := make([]stats.PenaltyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.PenaltyRow{RoundID: row.RoundID, RoundDate: row.RoundDate, Points: row.Points})
	}
	return out, nil
}

func (r *StatsRepository) ListYears(ctx context.Context, participantID string) ([]int, error) {
	query, args, err := qb.Select(
		"EXTRACT(YEAR FROM r.round_date)::int AS year",
	).From("round_participants rp JOIN rounds r ON r.id = rp.round_id").
		Where(
			qb.Eq("rp.participant_id", participantID),
			qb.IsNull("rp.deleted_at"),
			qb.IsNull("r.deleted_at"),
		).
		GroupBy("EXTRACT(YEAR FROM r.round_date)").
		OrderBy("year DESC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list years query")
	}

	var years []int
	if err := r.db.SelectContext(ctx, &years, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list years participant=%s", participantID)
	}
	return years, nil
}

type participationDBRow struct {
	RoundID     string    `db:"round_id"`
	RoundNumber int       `db:"round_number"`
	RoundDate   time.Time `db:"round_date"`
	Presence    int       `db:"presence"`
	Wins        int       `db:"wins"`
	Draws       int       `db:"draws"`
	Losses      int       `db:"losses"`
	YellowCards int       `db:"yellow_cards"`
	BlueCards   int       `db:"blue_cards"`
	TotalPoints int       `db:"total_points"`
}

type eventDBRow struct {
	RoundID   string    `db:"round_id"`
	RoundDate time.Time `db:"round_date"`
}

type penaltyDBRow struct {
	RoundID   string    `db:"round_id"`
	RoundDate time.Time `db:"round_date"`
	Points    int       `db:"points"`
}
