// Package viewstates is the container for the selection a monitoring view is
// opened with. State is loaded once when a view initializes and saved on every
// change; there is no process-wide current state.
package viewstates

import (
	"context"
	"errors"
	"time"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/propertyfilters"
	"mcp-monitoring/internal/shared/loggers"
	"mcp-monitoring/internal/shared/validators"
	"mcp-monitoring/internal/stores"
	"mcp-monitoring/internal/timeranges"
)

const idRules = `required,max=64,excludesall=/\`

//go:generate mockgen -source=service.go -destination=./mocks/view_state_service_mock.go -package=mocks
type ViewStateService interface {
	// Load returns the saved state, or the defaults when nothing was saved yet.
	Load(ctx context.Context, id string) (*models.ViewState, error)
	// Update applies patch on top of the current state, validates and saves it.
	Update(ctx context.Context, id string, patch models.ViewStatePatch) (*models.ViewState, error)
}

type viewStateService struct {
	store    stores.ViewStateStore
	validate *validators.Validate
	now      func() time.Time
}

func NewViewStateService(store stores.ViewStateStore, now func() time.Time) ViewStateService {
	if now == nil {
		now = time.Now
	}
	return &viewStateService{
		store:    store,
		validate: validators.NewJSON(),
		now:      now,
	}
}

func (s *viewStateService) Load(ctx context.Context, id string) (*models.ViewState, error) {
	loggers.Ctx(ctx).Debug().Str(loggers.FieldViewStateID, id).Msg("loading view state")

	if err := s.validate.Var(id, idRules); err != nil {
		return nil, errValidationFailed("invalid view state id", err)
	}

	state, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrViewStateNotFound) {
			return models.DefaultViewState(id), nil
		}
		return nil, errInternalViewStateStoreFailed(err)
	}
	return state, nil
}

func (s *viewStateService) Update(ctx context.Context, id string, patch models.ViewStatePatch) (*models.ViewState, error) {
	current, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(*current)
	next.ID = id
	// Store filters in canonical form so equal selections serialize equally.
	next.Filters = propertyfilters.Serialize(propertyfilters.Deserialize(next.Filters))

	if err := s.validate.Struct(next); err != nil {
		return nil, errValidationFailed("invalid view state: "+validators.Describe(err), err)
	}
	now := s.now()
	if _, err := timeranges.ResolveRange(next.From, next.To, now); err != nil {
		return nil, errValidationFailed(err.Error(), err)
	}

	next.UpdatedAt = now.UTC()
	if err := s.store.Put(ctx, &next); err != nil {
		return nil, errInternalViewStateStoreFailed(err)
	}

	loggers.Ctx(ctx).Info().Str(loggers.FieldViewStateID, id).Msg("view state saved")
	return &next, nil
}
