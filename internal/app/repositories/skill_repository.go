package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/db"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// ISkillRepository defines skill persistence
type ISkillRepository interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetOrCreate(ctx context.Context, name string) (*models.Skill, error)
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

// SkillRepository handles database operations for skills
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// List returns all skills ordered by name
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY LOWER(name)`)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing skills")
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

// GetOrCreate looks a skill up case-insensitively and creates it on a miss.
// The unique index on LOWER(name) makes concurrent creation converge on one row.
func (r *SkillRepository) GetOrCreate(ctx context.Context, name string) (*models.Skill, error) {
	return getOrCreateSkill(ctx, r.db, name)
}

func getOrCreateSkill(ctx context.Context, q db.Querier, name string) (*models.Skill, error) {
	name = strings.TrimSpace(name)

	var s models.Skill
	err := q.QueryRow(ctx, `
		INSERT INTO skills (name) VALUES ($1)
		ON CONFLICT ((LOWER(name))) DO NOTHING
		RETURNING id, name`, name).Scan(&s.ID, &s.Name)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("skill", name).Msg("Error inserting skill")
		return nil, err
	}

	err = q.QueryRow(ctx, `SELECT id, name FROM skills WHERE LOWER(name) = LOWER($1)`, name).Scan(&s.ID, &s.Name)
	if err != nil {
		logger.Error().Err(err).Str("skill", name).Msg("Error selecting existing skill")
		return nil, err
	}
	return &s, nil
}

// CountExisting returns how many of ids reference existing skills
func (r *SkillRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	sql, args, err := squirrel.Select("COUNT(*)").From("skills").
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count skills SQL")
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanSkills(rows pgx.Rows) ([]models.Skill, error) {
	skills := []models.Skill{}
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// skillsFor loads the skills attached to owners through a join table such as job_skills
func skillsFor(ctx context.Context, q db.Querier, joinTable, ownerColumn string, ownerIDs []int64) (map[int64][]models.Skill, error) {
	result := make(map[int64][]models.Skill, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return result, nil
	}

	sql, args, err := squirrel.Select("x."+ownerColumn, "s.id", "s.name").
		From(joinTable + " x").
		Join("skills s ON s.id = x.skill_id").
		Where(squirrel.Eq{"x." + ownerColumn: ownerIDs}).
		OrderBy("s.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", joinTable).Msg("Error building skills lookup SQL")
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", joinTable).Msg("Error executing skills lookup")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var owner int64
		var s models.Skill
		if err := rows.Scan(&owner, &s.ID, &s.Name); err != nil {
			return nil, err
		}
		result[owner] = append(result[owner], s)
	}
	return result, rows.Err()
}

// patchSkillLinks applies the difference between the current and desired
// skill ids of one owner, touching only the rows that change.
func patchSkillLinks(ctx context.Context, tx pgx.Tx, joinTable, ownerColumn string, ownerID int64, desired []int64) error {
	rows, err := tx.Query(ctx, "SELECT skill_id FROM "+joinTable+" WHERE "+ownerColumn+" = $1", ownerID)
	if err != nil {
		return err
	}
	var current []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		current = append(current, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	added, removed := DiffIDs(current, desired)

	if len(removed) > 0 {
		sql, args, err := squirrel.Delete(joinTable).
			Where(squirrel.Eq{ownerColumn: ownerID, "skill_id": removed}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	return insertSkillLinks(ctx, tx, joinTable, ownerColumn, ownerID, added)
}

func insertSkillLinks(ctx context.Context, q db.Querier, joinTable, ownerColumn string, ownerID int64, skillIDs []int64) error {
	if len(skillIDs) == 0 {
		return nil
	}
	builder := squirrel.Insert(joinTable).
		Columns(ownerColumn, "skill_id").
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
	for _, id := range skillIDs {
		builder = builder.Values(ownerID, id)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}

// DiffIDs returns the ids present only in desired (added) and only in current (removed).
// Duplicates in desired are collapsed.
func DiffIDs(current, desired []int64) (added, removed []int64) {
	have := make(map[int64]bool, len(current))
	for _, id := range current {
		have[id] = true
	}
	want := make(map[int64]bool, len(desired))
	for _, id := range desired {
		if want[id] {
			continue
		}
		want[id] = true
		if !have[id] {
			added = append(added, id)
		}
	}
	for _, id := range current {
		if !want[id] {
			removed = append(removed, id)
		}
	}
	return added, removed
}
