package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog-pipeline/core/logger"
	"catalog-pipeline/core/storage"
	"catalog-pipeline/feature/catalog/bscribe"
	"catalog-pipeline/feature/catalog/models"

	"go.uber.org/zap"
)

// Service runs the transformation pipeline: fetch documents, parse, index,
// assemble, merge. It owns no state between runs; every compile produces a
// complete bundle from scratch.
type Service struct {
	source storage.Source
	logger *zap.Logger
}

// NewService creates a new pipeline service.
func NewService(source storage.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// CompileFaction builds one faction from its document set. Missing
// documents are logged and skipped; a structurally unparseable document
// aborts this faction only. A faction yielding zero units returns nil and
// should be skipped by the caller.
func (s *Service) CompileFaction(ctx context.Context, set FactionSet) (*models.Faction, error) {
	log := logger.WithFaction(s.logger, set.Name)

	var bundles []*DocumentBundle
	for _, name := range set.Documents {
		data, err := s.source.Fetch(ctx, name)
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("Document missing, skipping", zap.String("document", name))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("faction %s: %w", set.Name, err)
		}

		cat, err := bscribe.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("faction %s: document %s: %w", set.Name, name, err)
		}

		idx := bscribe.BuildIndex(cat)
		bundle := BuildDocument(cat, idx)
		log.Debug("Document assembled",
			zap.String("document", name),
			zap.Int("units", len(bundle.Units)),
			zap.Int("detachments", len(bundle.Detachments)))
		bundles = append(bundles, bundle)
	}

	faction := MergeBundles(set.Name, bundles)
	if len(faction.Units) == 0 {
		log.Warn("Faction yielded no units, skipping")
		return nil, nil
	}

	log.Info("Faction compiled",
		zap.Int("units", len(faction.Units)),
		zap.Int("detachments", len(faction.Detachments)))
	return faction, nil
}

// CompileAll processes every faction in the manifest. A failing faction is
// logged and does not abort its siblings.
func (s *Service) CompileAll(ctx context.Context, manifest *Manifest) []*models.Faction {
	var out []*models.Faction
	for _, set := range manifest.Factions {
		faction, err := s.CompileFaction(ctx, set)
		if err != nil {
			s.logger.Error("Faction compile failed", zap.String("faction", set.Name), zap.Error(err))
			continue
		}
		if faction == nil {
			continue
		}
		out = append(out, faction)
	}
	return out
}
