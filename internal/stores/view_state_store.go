package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/shared/filestorages"
)

var (
	ErrViewStateNotFound = errors.New("view state not found")
)

//go:generate mockgen -source=view_state_store.go -destination=./mocks/view_state_store_mock.go -package=mocks
type ViewStateStore interface {
	Get(ctx context.Context, id string) (*models.ViewState, error)
	Put(ctx context.Context, state *models.ViewState) error
}

type viewStateStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewViewStateStore(fileStorage filestorages.FileStorage) ViewStateStore {
	return &viewStateStore{fileStorage: fileStorage, dir: "view-states"}
}

func (s *viewStateStore) Get(ctx context.Context, id string) (*models.ViewState, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(id))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrViewStateNotFound
		}
		return nil, fmt.Errorf("failed to get view state: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read view state: %w", err)
	}
	var state models.ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view state: %w", err)
	}
	return &state, nil
}

func (s *viewStateStore) Put(ctx context.Context, state *models.ViewState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal view state: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(state.ID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put view state: %w", err)
	}
	return nil
}

func (s *viewStateStore) getKey(id string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, id)
}
