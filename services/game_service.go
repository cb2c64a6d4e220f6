package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gameshelf/models"
	"gameshelf/repository"

	"gorm.io/gorm"
)

const releaseDateLayout = "2006-01-02"

type GameService struct {
	repo repository.GameRepository
}

func NewGameService(repo repository.GameRepository) *GameService {
	return &GameService{repo: repo}
}

// GameRequest is the client-supplied draft for create and update. The
// boolean fields are pointers so that a missing field can be told apart
// from an explicit false.
type GameRequest struct {
	Name        string  `json:"name"`
	ReleaseDate *string `json:"releaseDate"`
	System      string  `json:"system"`
	Owned       *bool   `json:"owned"`
	HasBackup   *bool   `json:"hasBackup"`
}

// SearchFilters carries the optional query filters of the search
// operation. Nil booleans mean the filter was not supplied.
type SearchFilters struct {
	Name      string
	System    string
	Owned     *bool
	HasBackup *bool
}

// GameResponse is the wire representation of a game. releaseDate is a
// plain YYYY-MM-DD string (or null), timestamps are RFC3339.
type GameResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	ReleaseDate *string   `json:"releaseDate"`
	System      string    `json:"system"`
	Owned       bool      `json:"owned"`
	HasBackup   bool      `json:"hasBackup"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToGameResponse maps the internal record to its wire representation
// field by field.
func ToGameResponse(game *models.Game) GameResponse {
	var releaseDate *string
	if game.ReleaseDate != nil {
		s := game.ReleaseDate.Format(releaseDateLayout)
		releaseDate = &s
	}
	return GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		ReleaseDate: releaseDate,
		System:      game.System,
		Owned:       game.Owned,
		HasBackup:   game.HasBackup,
		CreatedAt:   game.CreatedAt,
		UpdatedAt:   game.UpdatedAt,
	}
}

func ToGameResponses(games []models.Game) []GameResponse {
	responses := make([]GameResponse, 0, len(games))
	for i := range games {
		responses = append(responses, ToGameResponse(&games[i]))
	}
	return responses
}

func (s *GameService) ListAll(ctx context.Context) ([]models.Game, error) {
	return s.repo.FindAll(ctx)
}

func (s *GameService) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &GameNotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) Create(ctx context.Context, req *GameRequest) (*models.Game, error) {
	releaseDate, verr := validateGameRequest(req)
	if verr != nil {
		return nil, verr
	}

	game := models.Game{
		Name:        req.Name,
		ReleaseDate: releaseDate,
		System:      req.System,
		Owned:       *req.Owned,
		HasBackup:   *req.HasBackup,
	}

	if err := s.repo.Insert(ctx, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

// Update replaces all mutable fields of an existing record. Fields
// absent from the request are validation failures, never carried over
// from the stored record.
func (s *GameService) Update(ctx context.Context, id uint, req *GameRequest) (*models.Game, error) {
	game, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	releaseDate, verr := validateGameRequest(req)
	if verr != nil {
		return nil, verr
	}

	game.Name = req.Name
	game.ReleaseDate = releaseDate
	game.System = req.System
	game.Owned = *req.Owned
	game.HasBackup = *req.HasBackup

	if err := s.repo.Update(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (s *GameService) Delete(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &GameNotFoundError{ID: id}
	}

	return s.repo.DeleteByID(ctx, id)
}

// Search applies at most one filter, picked by fixed precedence:
// name (case-insensitive substring) over system (exact) over owned
// over hasBackup. Filters are never combined; with no filters it
// behaves like ListAll. This mirrors the behavior clients already
// depend on, so it must not silently change to AND-combination.
func (s *GameService) Search(ctx context.Context, filters *SearchFilters) ([]models.Game, error) {
	switch {
	case filters.Name != "":
		return s.repo.FindByNameContaining(ctx, filters.Name)
	case filters.System != "":
		return s.repo.FindBySystem(ctx, filters.System)
	case filters.Owned != nil:
		return s.repo.FindByOwned(ctx, *filters.Owned)
	case filters.HasBackup != nil:
		return s.repo.FindByHasBackup(ctx, *filters.HasBackup)
	default:
		return s.repo.FindAll(ctx)
	}
}

// validateGameRequest applies the shared rule set for create and
// update, collecting every violation instead of stopping at the first.
func validateGameRequest(req *GameRequest) (*time.Time, *ValidationError) {
	fields := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required and must not be blank"
	}
	if strings.TrimSpace(req.System) == "" {
		fields["system"] = "system is required and must not be blank"
	}
	if req.Owned == nil {
		fields["owned"] = "owned is required"
	}
	if req.HasBackup == nil {
		fields["hasBackup"] = "hasBackup is required"
	}

	var releaseDate *time.Time
	if req.ReleaseDate != nil && *req.ReleaseDate != "" {
		parsed, err := time.Parse(releaseDateLayout, *req.ReleaseDate)
		if err != nil {
			fields["releaseDate"] = "releaseDate must be a date in YYYY-MM-DD format"
		} else {
			releaseDate = &parsed
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return releaseDate, nil
}
