package armour

import (
	"context"

	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/storage"
)

// Service provides read-only queries over the armour catalogue
type Service struct {
	repo storage.ArmourRepository
}

// New creates a new armour Service
func New(repo storage.ArmourRepository) *Service {
	return &Service{repo: repo}
}

// GetAllArmour returns every armour in catalogue order
func (s *Service) GetAllArmour(ctx context.Context) ([]model.Armour, error) {
	entities, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return storage.Values(entities), nil
}

// GetArmourByID returns nil when no armour has the given id
func (s *Service) GetArmourByID(ctx context.Context, id storage.ID) (*model.Armour, error) {
	entity, err := s.repo.Read(ctx, id)
	if err != nil || entity == nil {
		return nil, err
	}
	armour := entity.Data
	return &armour, nil
}

// SearchArmourByName returns armour whose name contains the given text
func (s *Service) SearchArmourByName(ctx context.Context, name string) ([]model.Armour, error) {
	entities, err := s.repo.ReadByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return storage.Values(entities), nil
}

// GetArmourDescription returns the description of the named armour.
// An armour with an empty description counts as not found.
func (s *Service) GetArmourDescription(ctx context.Context, name string) (string, bool, error) {
	description, ok, err := s.repo.ReadDescriptionByName(ctx, name)
	if err != nil {
		return "", false, err
	}
	return description, ok && description != "", nil
}

// GetArmourByType groups the catalogue by armour category
func (s *Service) GetArmourByType(ctx context.Context) (map[model.ArmourCategory][]model.Armour, error) {
	all, err := s.GetAllArmour(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[model.ArmourCategory][]model.Armour)
	for _, a := range all {
		grouped[a.Category] = append(grouped[a.Category], a)
	}
	return grouped, nil
}
