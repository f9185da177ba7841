package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/storage"
)

var weaponSchema = []string{
	`CREATE TABLE IF NOT EXISTS weapons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		cost TEXT NOT NULL,
		damageDie TEXT,
		damageType TEXT,
		weight TEXT,
		rangeNormal INTEGER,
		rangeLong INTEGER,
		versatileDamageDie TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS weapon_properties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS weapon_property_relations (
		weapon_id INTEGER NOT NULL REFERENCES weapons(id) ON DELETE CASCADE,
		property_id INTEGER NOT NULL REFERENCES weapon_properties(id),
		PRIMARY KEY (weapon_id, property_id)
	)`,
}

const weaponColumns = `id, name, type, cost, damageDie, damageType, weight, rangeNormal, rangeLong, versatileDamageDie`

// WeaponRepository stores weapons across three tables: the flat weapon rows,
// the property reference data and the relation between them.
type WeaponRepository struct {
	db         *DB
	seed       []model.Weapon
	properties []model.WeaponProperty
}

var (
	_ storage.WeaponRepository = (*WeaponRepository)(nil)
	_ storage.CatalogueStore   = (*WeaponRepository)(nil)
)

// NewWeaponRepository creates a weapon repository.
// properties is the vocabulary new property rows take their description from.
func NewWeaponRepository(db *DB, seed []model.Weapon, properties []model.WeaponProperty) *WeaponRepository {
	return &WeaponRepository{db: db, seed: seed, properties: properties}
}

func (r *WeaponRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.exec(ctx, weaponSchema); err != nil {
		return fmt.Errorf("failed to create weapon schema: %w", err)
	}
	return nil
}

// Seed stores the property vocabulary and every fixture weapon not stored yet
func (r *WeaponRepository) Seed(ctx context.Context) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, p := range r.properties {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO weapon_properties (name, description) VALUES (?, ?)`,
				string(p.Name), p.Description); err != nil {
				return fmt.Errorf("failed to insert weapon property %q: %w", p.Name, err)
			}
		}

		inserted := 0
		for _, w := range r.seed {
			var id int64
			err := tx.QueryRowContext(ctx, `SELECT id FROM weapons WHERE name = ?`, w.Name).Scan(&id)
			if err == nil {
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("failed to look up weapon %q: %w", w.Name, err)
			}
			if _, err := r.insertWeapon(ctx, tx, w); err != nil {
				return err
			}
			inserted++
		}
		if inserted > 0 {
			r.db.logger.Info("seeded weapons", "inserted", inserted)
		}
		return nil
	})
}

// Create stores the weapon and its property associations atomically.
// A tag outside the vocabulary fails with model.ErrNoPropertyDescription and nothing is stored.
func (r *WeaponRepository) Create(ctx context.Context, weapon model.Weapon) (storage.ID, error) {
	var id storage.ID
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = r.insertWeapon(ctx, tx, weapon)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *WeaponRepository) insertWeapon(ctx context.Context, tx *sql.Tx, w model.Weapon) (storage.ID, error) {
	var rangeNormal, rangeLong sql.NullInt64
	if w.Range != nil {
		rangeNormal = sql.NullInt64{Int64: int64(w.Range.Normal), Valid: true}
		rangeLong = sql.NullInt64{Int64: int64(w.Range.Long), Valid: true}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO weapons (name, type, cost, damageDie, damageType, weight, rangeNormal, rangeLong, versatileDamageDie)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, w.Name, string(w.Category), string(w.Cost),
		nullString(string(w.DamageDie)), nullString(string(w.DamageType)), nullString(string(w.Weight)),
		rangeNormal, rangeLong, nullString(string(w.VersatileDamageDie)))
	if err != nil {
		return 0, fmt.Errorf("failed to insert weapon %q: %w", w.Name, err)
	}

	weaponID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read weapon id: %w", err)
	}

	for _, tag := range w.Properties {
		propertyID, err := r.ensureProperty(ctx, tx, tag)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO weapon_property_relations (weapon_id, property_id) VALUES (?, ?)`,
			weaponID, propertyID); err != nil {
			return 0, fmt.Errorf("failed to link weapon %q to %q: %w", w.Name, tag, err)
		}
	}

	return storage.ID(weaponID), nil
}

// ensureProperty returns the id of the property row for tag, inserting it when missing
func (r *WeaponRepository) ensureProperty(ctx context.Context, tx *sql.Tx, tag model.WeaponPropertyType) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM weapon_properties WHERE name = ?`, string(tag)).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up weapon property %q: %w", tag, err)
	}

	description, ok := r.describe(tag)
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrNoPropertyDescription, tag)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO weapon_properties (name, description) VALUES (?, ?)`, string(tag), description)
	if err != nil {
		return 0, fmt.Errorf("failed to insert weapon property %q: %w", tag, err)
	}
	return res.LastInsertId()
}

func (r *WeaponRepository) describe(tag model.WeaponPropertyType) (string, bool) {
	for _, p := range r.properties {
		if p.Name == tag {
			return p.Description, true
		}
	}
	return "", false
}

// Read returns nil when no weapon has the given id
func (r *WeaponRepository) Read(ctx context.Context, id storage.ID) (*storage.Entity[model.Weapon], error) {
	weapons, err := r.query(ctx, `SELECT `+weaponColumns+` FROM weapons WHERE id = ?`, int64(id))
	if err != nil {
		return nil, err
	}
	if len(weapons) == 0 {
		return nil, nil
	}
	return &weapons[0], nil
}

func (r *WeaponRepository) ReadAll(ctx context.Context) ([]storage.Entity[model.Weapon], error) {
	return r.query(ctx, `SELECT `+weaponColumns+` FROM weapons ORDER BY id`)
}

// ReadByName returns every weapon whose name contains the given text
func (r *WeaponRepository) ReadByName(ctx context.Context, name string) ([]storage.Entity[model.Weapon], error) {
	return r.query(ctx,
		`SELECT `+weaponColumns+` FROM weapons WHERE name LIKE ? ESCAPE '\' ORDER BY id`,
		likePattern(name))
}

func (r *WeaponRepository) Update(context.Context, storage.Entity[model.Weapon]) model.OperationResult {
	return model.NotImplemented("Update", "weapon")
}

func (r *WeaponRepository) Delete(context.Context, storage.ID) model.OperationResult {
	return model.NotImplemented("Delete", "weapon")
}

// ReadWeaponProperty returns nil when no property has the given id
func (r *WeaponRepository) ReadWeaponProperty(ctx context.Context, id storage.ID) (*storage.Entity[model.WeaponProperty], error) {
	properties, err := r.queryProperties(ctx,
		`SELECT id, name, description FROM weapon_properties WHERE id = ?`, int64(id))
	if err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return nil, nil
	}
	return &properties[0], nil
}

func (r *WeaponRepository) ReadAllWeaponProperties(ctx context.Context) ([]storage.Entity[model.WeaponProperty], error) {
	return r.queryProperties(ctx, `SELECT id, name, description FROM weapon_properties ORDER BY id`)
}

// ReadWeaponPropertyByName returns every property whose name contains the given text
func (r *WeaponRepository) ReadWeaponPropertyByName(ctx context.Context, name string) ([]storage.Entity[model.WeaponProperty], error) {
	return r.queryProperties(ctx,
		`SELECT id, name, description FROM weapon_properties WHERE name LIKE ? ESCAPE '\' ORDER BY id`,
		likePattern(name))
}

// query reads the flat weapon rows, then attaches the property tags of each.
// The rows are drained first: the store runs on a single connection.
func (r *WeaponRepository) query(ctx context.Context, query string, args ...any) ([]storage.Entity[model.Weapon], error) {
	weapons, err := r.queryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	for i := range weapons {
		properties, err := r.propertiesOf(ctx, weapons[i].ID)
		if err != nil {
			return nil, err
		}
		weapons[i].Data.Properties = properties
	}
	return weapons, nil
}

func (r *WeaponRepository) queryRows(ctx context.Context, query string, args ...any) ([]storage.Entity[model.Weapon], error) {
	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query weapons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	weapons := []storage.Entity[model.Weapon]{}
	for rows.Next() {
		entity, err := scanWeapon(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weapon: %w", err)
		}
		weapons = append(weapons, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weapons: %w", err)
	}
	return weapons, nil
}

func (r *WeaponRepository) propertiesOf(ctx context.Context, weaponID storage.ID) ([]model.WeaponPropertyType, error) {
	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT p.name
		FROM weapon_properties p
		JOIN weapon_property_relations rel ON rel.property_id = p.id
		WHERE rel.weapon_id = ?
		ORDER BY p.name
	`, int64(weaponID))
	if err != nil {
		return nil, fmt.Errorf("failed to query properties of weapon %d: %w", weaponID, err)
	}
	defer func() { _ = rows.Close() }()

	properties := []model.WeaponPropertyType{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan weapon property: %w", err)
		}
		properties = append(properties, model.WeaponPropertyType(name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weapon properties: %w", err)
	}
	return properties, nil
}

func (r *WeaponRepository) queryProperties(ctx context.Context, query string, args ...any) ([]storage.Entity[model.WeaponProperty], error) {
	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query weapon properties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	properties := []storage.Entity[model.WeaponProperty]{}
	for rows.Next() {
		var (
			id                int64
			name, description string
		)
		if err := rows.Scan(&id, &name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan weapon property: %w", err)
		}
		properties = append(properties, storage.Entity[model.WeaponProperty]{
			ID:   storage.ID(id),
			Data: model.WeaponProperty{Name: model.WeaponPropertyType(name), Description: description},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weapon properties: %w", err)
	}
	return properties, nil
}

func scanWeapon(s scanner) (storage.Entity[model.Weapon], error) {
	var (
		id                            int64
		name, category, cost          string
		damageDie, damageType, weight sql.NullString
		versatile                     sql.NullString
		rangeNormal, rangeLong        sql.NullInt64
	)
	if err := s.Scan(&id, &name, &category, &cost, &damageDie, &damageType, &weight,
		&rangeNormal, &rangeLong, &versatile); err != nil {
		return storage.Entity[model.Weapon]{}, err
	}

	w := model.Weapon{
		Name:               name,
		Category:           model.WeaponCategory(category),
		Cost:               model.Cost(cost),
		DamageDie:          model.WeaponDamage(damageDie.String),
		DamageType:         model.DamageType(damageType.String),
		Weight:             model.Weight(weight.String),
		VersatileDamageDie: model.Die(versatile.String),
	}
	if rangeNormal.Valid && rangeLong.Valid {
		w.Range = &model.WeaponRange{Normal: int(rangeNormal.Int64), Long: int(rangeLong.Int64)}
	}
	return storage.Entity[model.Weapon]{ID: storage.ID(id), Data: w}, nil
}
