package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/academy/internal/progression"
)

const tableLearners = "learners"

var learnerColumns = []string{
	"id", "name", "total_xp", "streak_days", "readiness_score",
	"sessions_completed", "created_at", "updated_at",
}

// learnerRepo implements LearnerRepo with ent's SQL builder.
type learnerRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *learnerRepo) Create(ctx context.Context, name string) (*Learner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("learner name is empty")
	}
	if _, err := r.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	l := &Learner{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query, args := builder().Insert(tableLearners).
		Columns(learnerColumns...).
		Values(l.ID, l.Name, 0, 0, 0, 0, l.CreatedAt, l.UpdatedAt).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return nil, fmt.Errorf("insert learner: %w", err)
	}
	return l, nil
}

func (r *learnerRepo) Get(ctx context.Context, id string) (*Learner, error) {
	return r.queryOne(ctx, entsql.EQ("id", id))
}

func (r *learnerRepo) GetByName(ctx context.Context, name string) (*Learner, error) {
	return r.queryOne(ctx, entsql.EQ("name", strings.TrimSpace(name)))
}

func (r *learnerRepo) Resolve(ctx context.Context, ref string) (*Learner, error) {
	if _, err := uuid.Parse(ref); err == nil {
		l, err := r.Get(ctx, ref)
		if !errors.Is(err, ErrNotFound) {
			return l, err
		}
	}
	return r.GetByName(ctx, ref)
}

func (r *learnerRepo) List(ctx context.Context) ([]Learner, error) {
	query, args := builder().Select(learnerColumns...).
		From(entsql.Table(tableLearners)).
		OrderBy("name").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query learners: %w", err)
	}
	defer rows.Close()

	var out []Learner
	for rows.Next() {
		l, err := scanLearner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learners: %w", err)
	}
	return out, nil
}

func (r *learnerRepo) UpdateCounters(ctx context.Context, id string, snap progression.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	query, args := builder().Update(tableLearners).
		Set("total_xp", snap.TotalXP).
		Set("streak_days", snap.StreakDays).
		Set("readiness_score", snap.ReadinessScore).
		Set("sessions_completed", snap.SessionsCompleted).
		Set("updated_at", time.Now().UTC()).
		Where(entsql.EQ("id", id)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update learner counters: %w", err)
	}
	return requireAffected(res, id)
}

func (r *learnerRepo) Delete(ctx context.Context, id string) error {
	query, args := builder().Delete(tableLearners).
		Where(entsql.EQ("id", id)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete learner: %w", err)
	}
	return requireAffected(res, id)
}

func (r *learnerRepo) queryOne(ctx context.Context, where *entsql.Predicate) (*Learner, error) {
	query, args := builder().Select(learnerColumns...).
		From(entsql.Table(tableLearners)).
		Where(where).
		Limit(1).
		Query()
	l, err := scanLearner(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return l, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLearner(row rowScanner) (*Learner, error) {
	var l Learner
	err := row.Scan(&l.ID, &l.Name, &l.TotalXP, &l.StreakDays, &l.ReadinessScore,
		&l.SessionsCompleted, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan learner: %w", err)
	}
	return &l, nil
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
