package postgres

import (
	"context"
	"database/sql"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/peladahub/league-stats/internal/domain/participant"
	qb "github.com/peladahub/league-stats/internal/platform/querybuilder"
)

type ParticipantRepository struct {
	db *sqlx.DB
}

func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) List(ctx context.Context) ([]participant.Participant, error) {
	query, args, err := qb.Select(
		"p.id",
		"p.name",
		"p.nickname",
		"p.image_url",
	).From("participants p").
		Where(qb.IsNull("p.deleted_at")).
		OrderBy("p.name").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list participants query")
	}

	var rows []participantRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list participants")
	}

	out := make([]participant.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, participantID string) (participant.Participant, bool, error) {
	query, args, err := qb.Select(
		"p.id",
		"p.name",
		"p.nickname",
		"p.image_url",
	).From("participants p").
		Where(
			qb.Eq("p.id", participantID),
			qb.IsNull("p.deleted_at"),
		).
		ToSQL()
	if err != nil {
		return participant.Participant{}, false, crerr.Wrap(err, "build get participant query")
	}

	var row participantRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return participant.Participant{}, false, nil
		}
		return participant.Participant{}, false, crerr.Wrapf(err, "get participant id=%s", participantID)
	}

	return row.toDomain(), true, nil
}

type participantRow struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	Nickname sql.NullString `db:"nickname"`
	ImageURL sql.NullString `db:"image_url"`
}

func (r participantRow) toDomain() participant.Participant {
	return participant.Participant{
		ID:       r.ID,
		Name:     r.Name,
		Nickname: nullStringToString(r.Nickname),
		ImageURL: nullStringToString(r.ImageURL),
	}
}
