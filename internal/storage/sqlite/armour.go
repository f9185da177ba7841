package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/storage"
)

var armourSchema = []string{
	`CREATE TABLE IF NOT EXISTS armour (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		type TEXT NOT NULL,
		cost TEXT NOT NULL,
		armourClass TEXT NOT NULL,
		strength TEXT,
		stealth TEXT,
		weight TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_armour_name ON armour(name)`,
}

const armourColumns = `id, name, description, type, cost, armourClass, strength, stealth, weight`

// ArmourRepository stores armour in a single table
type ArmourRepository struct {
	db   *DB
	seed []model.Armour
}

var (
	_ storage.ArmourRepository = (*ArmourRepository)(nil)
	_ storage.CatalogueStore   = (*ArmourRepository)(nil)
)

// NewArmourRepository creates an armour repository that seeds itself from the given rows
func NewArmourRepository(db *DB, seed []model.Armour) *ArmourRepository {
	return &ArmourRepository{db: db, seed: seed}
}

func (r *ArmourRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.exec(ctx, armourSchema); err != nil {
		return fmt.Errorf("failed to create armour schema: %w", err)
	}
	return nil
}

// Seed inserts each fixture row whose name is not stored yet
func (r *ArmourRepository) Seed(ctx context.Context) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		inserted := 0
		for _, a := range r.seed {
			var id int64
			err := tx.QueryRowContext(ctx, `SELECT id FROM armour WHERE name = ? LIMIT 1`, a.Name).Scan(&id)
			if err == nil {
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("failed to look up armour %q: %w", a.Name, err)
			}
			if _, err := insertArmour(ctx, tx, a); err != nil {
				return err
			}
			inserted++
		}
		if inserted > 0 {
			r.db.logger.Info("seeded armour", "inserted", inserted)
		}
		return nil
	})
}

func (r *ArmourRepository) Create(ctx context.Context, armour model.Armour) (storage.ID, error) {
	return insertArmour(ctx, r.db.conn, armour)
}

func insertArmour(ctx context.Context, q querier, a model.Armour) (storage.ID, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO armour (name, description, type, cost, armourClass, strength, stealth, weight)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, a.Name, a.Description, string(a.Category), string(a.Cost), a.ArmourClass,
		nullString(a.Strength), nullString(string(a.Stealth)), string(a.Weight))
	if err != nil {
		return 0, fmt.Errorf("failed to insert armour %q: %w", a.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read armour id: %w", err)
	}
	return storage.ID(id), nil
}

// Read returns nil when no armour has the given id
func (r *ArmourRepository) Read(ctx context.Context, id storage.ID) (*storage.Entity[model.Armour], error) {
	row := r.db.conn.QueryRowContext(ctx, `SELECT `+armourColumns+` FROM armour WHERE id = ?`, int64(id))

	entity, err := scanArmour(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read armour %d: %w", id, err)
	}
	return &entity, nil
}

func (r *ArmourRepository) ReadAll(ctx context.Context) ([]storage.Entity[model.Armour], error) {
	return r.query(ctx, `SELECT `+armourColumns+` FROM armour ORDER BY id`)
}

// ReadByName returns every armour whose name contains the given text
func (r *ArmourRepository) ReadByName(ctx context.Context, name string) ([]storage.Entity[model.Armour], error) {
	return r.query(ctx,
		`SELECT `+armourColumns+` FROM armour WHERE name LIKE ? ESCAPE '\' ORDER BY id`,
		likePattern(name))
}

// ReadDescriptionByName looks up the description of the armour with exactly this name
func (r *ArmourRepository) ReadDescriptionByName(ctx context.Context, name string) (string, bool, error) {
	var description string
	err := r.db.conn.QueryRowContext(ctx,
		`SELECT description FROM armour WHERE name = ? ORDER BY id LIMIT 1`, name).Scan(&description)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read armour description %q: %w", name, err)
	}
	return description, true, nil
}

func (r *ArmourRepository) Update(context.Context, storage.Entity[model.Armour]) model.OperationResult {
	return model.NotImplemented("Update", "armour")
}

func (r *ArmourRepository) Delete(context.Context, storage.ID) model.OperationResult {
	return model.NotImplemented("Delete", "armour")
}

func (r *ArmourRepository) query(ctx context.Context, query string, args ...any) ([]storage.Entity[model.Armour], error) {
	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query armour: %w", err)
	}
	defer func() { _ = rows.Close() }()

	armours := []storage.Entity[model.Armour]{}
	for rows.Next() {
		entity, err := scanArmour(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan armour: %w", err)
		}
		armours = append(armours, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate armour: %w", err)
	}
	return armours, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArmour(s scanner) (storage.Entity[model.Armour], error) {
	var (
		id                                            int64
		name, description, category, cost, ac, weight string
		strength, stealth                             sql.NullString
	)
	if err := s.Scan(&id, &name, &description, &category, &cost, &ac, &strength, &stealth, &weight); err != nil {
		return storage.Entity[model.Armour]{}, err
	}

	return storage.Entity[model.Armour]{
		ID: storage.ID(id),
		Data: model.Armour{
			Name:        name,
			Description: description,
			Category:    model.ArmourCategory(category),
			Cost:        model.Cost(cost),
			ArmourClass: ac,
			Strength:    strength.String,
			Stealth:     model.Stealth(stealth.String),
			Weight:      model.Weight(weight),
		},
	}, nil
}
