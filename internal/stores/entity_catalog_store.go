package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"mcp-monitoring/internal/models"
	"mcp-monitoring/internal/shared/filestorages"

	"gopkg.in/yaml.v3"
)

const catalogDir = "catalog"

// catalogFile is the on-disk layout of a catalog:
//
//	entities:
//	  - id: conn_github
//	    title: GitHub
//	    icon: github
type catalogFile struct {
	Entities []models.Entity `yaml:"entities"`
}

// EntityCatalogStore holds the connection and agent catalogs rankings are
// joined with, one YAML file per dimension.
//
//go:generate mockgen -source=entity_catalog_store.go -destination=./mocks/entity_catalog_store_mock.go -package=mocks
type EntityCatalogStore interface {
	// List returns the catalog in file order; a missing catalog is empty.
	List(ctx context.Context, groupBy models.GroupBy) ([]models.Entity, error)
	Replace(ctx context.Context, groupBy models.GroupBy, entities []models.Entity) error
}

type entityCatalogStore struct {
	fileStorage filestorages.FileStorage
}

func NewEntityCatalogStore(fileStorage filestorages.FileStorage) EntityCatalogStore {
	return &entityCatalogStore{fileStorage: fileStorage}
}

func (s *entityCatalogStore) List(ctx context.Context, groupBy models.GroupBy) ([]models.Entity, error) {
	readCloser, err := s.fileStorage.Get(ctx, catalogKey(groupBy))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return []models.Entity{}, nil
		}
		return nil, fmt.Errorf("failed to get %s catalog: %w", groupBy, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s catalog: %w", groupBy, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s catalog: %w", groupBy, err)
	}
	if file.Entities == nil {
		return []models.Entity{}, nil
	}
	return file.Entities, nil
}

func (s *entityCatalogStore) Replace(ctx context.Context, groupBy models.GroupBy, entities []models.Entity) error {
	data, err := yaml.Marshal(catalogFile{Entities: entities})
	if err != nil {
		return fmt.Errorf("failed to marshal %s catalog: %w", groupBy, err)
	}
	_, err = s.fileStorage.Put(ctx, catalogKey(groupBy), bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put %s catalog: %w", groupBy, err)
	}
	return nil
}

func catalogKey(groupBy models.GroupBy) string {
	return fmt.Sprintf("%s/%ss.yaml", catalogDir, groupBy)
}
