package weapon

import (
	"context"
	"strings"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/storage"
)

// Service provides read-only queries over the weapon catalogue and its property rules
type Service struct {
	repo storage.WeaponRepository
}

// New creates a new weapon Service
func New(repo storage.WeaponRepository) *Service {
	return &Service{repo: repo}
}

// GetAllWeapons returns every weapon in catalogue order
func (s *Service) GetAllWeapons(ctx context.Context) ([]model.Weapon, error) {
	entities, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return storage.Values(entities), nil
}

// GetAllWeaponsForTable returns every weapon as a display row
func (s *Service) GetAllWeaponsForTable(ctx context.Context) ([]model.WeaponTableRow, error) {
	weapons, err := s.GetAllWeapons(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]model.WeaponTableRow, 0, len(weapons))
	for _, w := range weapons {
		rows = append(rows, model.ToTableRow(w))
	}
	return rows, nil
}

// GetWeaponByID returns nil when no weapon has the given id
func (s *Service) GetWeaponByID(ctx context.Context, id storage.ID) (*model.Weapon, error) {
	entity, err := s.repo.Read(ctx, id)
	if err != nil || entity == nil {
		return nil, err
	}
	weapon := entity.Data
	return &weapon, nil
}

// SearchWeaponsByName returns weapons whose name contains the given text
func (s *Service) SearchWeaponsByName(ctx context.Context, name string) ([]model.Weapon, error) {
	entities, err := s.repo.ReadByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return storage.Values(entities), nil
}

func (s *Service) GetAllWeaponProperties(ctx context.Context) ([]model.WeaponProperty, error) {
	entities, err := s.repo.ReadAllWeaponProperties(ctx)
	if err != nil {
		return nil, err
	}
	return storage.Values(entities), nil
}

// GetWeaponPropertyByName returns the first property whose name contains the given text,
// or nil when none does.
func (s *Service) GetWeaponPropertyByName(ctx context.Context, name string) (*model.WeaponProperty, error) {
	entities, err := s.repo.ReadWeaponPropertyByName(ctx, name)
	if err != nil || len(entities) == 0 {
		return nil, err
	}
	property := entities[0].Data
	return &property, nil
}

// GetWeaponsByType groups the catalogue by weapon category
func (s *Service) GetWeaponsByType(ctx context.Context) (map[model.WeaponCategory][]model.Weapon, error) {
	all, err := s.GetAllWeapons(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[model.WeaponCategory][]model.Weapon)
	for _, w := range all {
		grouped[w.Category] = append(grouped[w.Category], w)
	}
	return grouped, nil
}

func (s *Service) GetSimpleWeapons(ctx context.Context) ([]model.Weapon, error) {
	return s.filterByCategory(ctx, "Simple")
}

func (s *Service) GetMartialWeapons(ctx context.Context) ([]model.Weapon, error) {
	return s.filterByCategory(ctx, "Martial")
}

func (s *Service) GetMeleeWeapons(ctx context.Context) ([]model.Weapon, error) {
	return s.filterByCategory(ctx, "Melee")
}

func (s *Service) GetRangedWeapons(ctx context.Context) ([]model.Weapon, error) {
	return s.filterByCategory(ctx, "Ranged")
}

// GetWeaponsByProperty returns the weapons tagged with the given property
func (s *Service) GetWeaponsByProperty(ctx context.Context, property model.WeaponPropertyType) ([]model.Weapon, error) {
	return s.filter(ctx, func(w model.Weapon) bool {
		return w.HasProperty(property)
	})
}

func (s *Service) filterByCategory(ctx context.Context, part string) ([]model.Weapon, error) {
	return s.filter(ctx, func(w model.Weapon) bool {
		return strings.Contains(string(w.Category), part)
	})
}

func (s *Service) filter(ctx context.Context, keep func(model.Weapon) bool) ([]model.Weapon, error) {
	all, err := s.GetAllWeapons(ctx)
	if err != nil {
		return nil, err
	}

	matched := []model.Weapon{}
	for _, w := range all {
		if keep(w) {
			matched = append(matched, w)
		}
	}
	return matched, nil
}
