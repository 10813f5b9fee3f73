package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpulse/internal/analysis"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/storage"
)

// MarketService loads the current snapshot and derives market views from it.
// Every call loads a fresh, fully materialized record list; nothing is shared
// between calls.
type MarketService interface {
	Stocks(ctx context.Context) ([]models.StockRecord, error)
	Heatmap(ctx context.Context) (models.HeatmapNode, error)
	DetailedHeatmap(ctx context.Context) (models.HeatmapNode, error)
	Summary(ctx context.Context) (models.MarketSummary, error)
	Overview(ctx context.Context) (models.MarketOverview, error)
}

type marketService struct {
	repo storage.StocksRepository
}

func NewMarketService(repo storage.StocksRepository) MarketService {
	return &marketService{repo: repo}
}

func (s *marketService) load(ctx context.Context, view string) ([]models.StockRecord, error) {
	records, err := s.repo.ListStocks(ctx)
	if err != nil {
		logger.L().Error().Err(err).Str("view", view).Msg("load stock data failed")
		return nil, fmt.Errorf("load stock data: %w", err)
	}
	logger.L().Debug().Str("view", view).Int("records", len(records)).Msg("stock data loaded")
	return records, nil
}

func (s *marketService) Stocks(ctx context.Context) ([]models.StockRecord, error) {
	return s.load(ctx, "stocks")
}

func (s *marketService) Heatmap(ctx context.Context) (models.HeatmapNode, error) {
	records, err := s.load(ctx, "heatmap")
	if err != nil {
		return models.HeatmapNode{}, err
	}
	return analysis.BuildSectorHeatmap(records), nil
}

func (s *marketService) DetailedHeatmap(ctx context.Context) (models.HeatmapNode, error) {
	records, err := s.load(ctx, "heatmap_detailed")
	if err != nil {
		return models.HeatmapNode{}, err
	}
	return analysis.BuildDetailedSectorHeatmap(records), nil
}

func (s *marketService) Summary(ctx context.Context) (models.MarketSummary, error) {
	records, err := s.load(ctx, "summary")
	if err != nil {
		return models.MarketSummary{}, err
	}
	return analysis.Summarize(records), nil
}

// Overview loads the snapshot once and computes the three views concurrently.
// The engines only read records.
func (s *marketService) Overview(ctx context.Context) (models.MarketOverview, error) {
	records, err := s.load(ctx, "overview")
	if err != nil {
		return models.MarketOverview{}, err
	}

	var out models.MarketOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Heatmap = analysis.BuildSectorHeatmap(records)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.DetailedHeatmap = analysis.BuildDetailedSectorHeatmap(records)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Summary = analysis.Summarize(records)
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.MarketOverview{}, err
	}
	return out, nil
}
