package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/peladahub/league-stats/internal/domain/stats"
	qb "github.com/peladahub/league-stats/internal/platform/querybuilder"
)

// SnapshotRepository reads the aggregate snapshot table maintained by the
// external batch recompute. At most one live row exists per participant.
type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) GetByParticipant(ctx context.Context, participantID string) (stats.Snapshot, bool, error) {
	query, args, err := qb.Select(
		"s.presences",
		"s.goals",
		"s.assists",
		"s.wins",
		"s.draws",
		"s.losses",
		"s.yellow_cards",
		"s.blue_cards",
		"s.penalties",
		"s.total_points",
		"s.matches",
		"s.updated_at",
	).From("participant_snapshots s").
		Where(
			qb.Eq("s.participant_id", participantID),
			qb.IsNull("s.deleted_at"),
		).
		ToSQL()
	if err != nil {
		return stats.Snapshot{}, false, crerr.Wrap(err, "build get snapshot query")
	}

	var row snapshotRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			// New participants have no snapshot yet; callers treat this
			// as an all-zero base, not a failure.
			return stats.Snapshot{}, false, nil
		}
		return stats.Snapshot{}, false, crerr.Wrapf(err, "get snapshot participant=%s", participantID)
	}

	return stats.Snapshot{
		Totals: stats.Totals{
			Presences:   row.Presences,
			Goals:       row.Goals,
			Assists:     row.Assists,
			Wins:        row.Wins,
			Draws:       row.Draws,
			Losses:      row.Losses,
			YellowCards: row.YellowCards,
			BlueCards:   row.BlueCards,
			Penalties:   row.Penalties,
			TotalPoints: row.TotalPoints,
			Matches:     row.Matches,
		},
		UpdatedAt: row.UpdatedAt,
	}, true, nil
}

type snapshotRow struct {
	Presences   int       `db:"presences"`
	Goals       int       `db:"goals"`
	Assists     int       `db:"assists"`
	Wins        int       `db:"wins"`
	Draws       int       `db:"draws"`
	Losses      int       `db:"losses"`
	YellowCards int       `db:"yellow_cards"`
	BlueCards   int       `db:"blue_cards"`
	Penalties   int       `db:"penalties"`
	TotalPoints int       `db:"total_points"`
	Matches     int       `db:"matches"`
	UpdatedAt   time.Time `db:"updated_at"`
}
