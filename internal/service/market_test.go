package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/stockpulse/internal/analysis"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/storage"
)

type stubRepo struct {
	records []models.StockRecord
	err     error
	calls   int
}

func (s *stubRepo) ListStocks(ctx context.Context) ([]models.StockRecord, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.records, s.err
}
func (s *stubRepo) Ping() error { return s.err }

var _ storage.StocksRepository = (*stubRepo)(nil)

func fixture() []models.StockRecord {
	return []models.StockRecord{
		{Symbol: "AAPL", Name: "Apple", Sector: "Technology", DailyChange: 1, MarketCap: 10, Volume: 1},
		{Symbol: "XOM", Name: "Exxon", Sector: "Energy", DailyChange: -2, MarketCap: 5, Volume: 2},
		{Symbol: "MSFT", Name: "Microsoft", Sector: "Technology", DailyChange: 3, MarketCap: 20, Volume: 3},
	}
}

func TestMarketService_Views(t *testing.T) {
	repo := &stubRepo{records: fixture()}
	svc := NewMarketService(repo)
	ctx := context.Background()

	stocks, err := svc.Stocks(ctx)
	if err != nil || len(stocks) != 3 {
		t.Fatalf("Stocks: err=%v len=%d", err, len(stocks))
	}

	hm, err := svc.Heatmap(ctx)
	if err != nil || len(hm.Children) != 2 {
		t.Fatalf("Heatmap: err=%v children=%d", err, len(hm.Children))
	}

	dhm, err := svc.DetailedHeatmap(ctx)
	if err != nil || len(dhm.Children) != 2 || len(dhm.Children[0].Children) != 2 {
		t.Fatalf("DetailedHeatmap: err=%v out=%+v", err, dhm)
	}

	sum, err := svc.Summary(ctx)
	if err != nil || sum.TotalMarketCap != 35 || sum.TopGainers[0].Symbol != "MSFT" {
		t.Fatalf("Summary: err=%v out=%+v", err, sum)
	}

	if repo.calls != 4 {
		t.Fatalf("expected one load per view, got %d", repo.calls)
	}
}

func TestMarketService_Overview(t *testing.T) {
	records := fixture()
	repo := &stubRepo{records: records}
	svc := NewMarketService(repo)

	out, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("overview must load once, got %d", repo.calls)
	}

	want := models.MarketOverview{
		Heatmap:         analysis.BuildSectorHeatmap(records),
		DetailedHeatmap: analysis.BuildDetailedSectorHeatmap(records),
		Summary:         analysis.Summarize(records),
	}
	if out.Heatmap.Name != want.Heatmap.Name || len(out.Heatmap.Children) != len(want.Heatmap.Children) {
		t.Fatalf("unexpected heatmap: %+v", out.Heatmap)
	}
	if len(out.DetailedHeatmap.Children[0].Children) != len(want.DetailedHeatmap.Children[0].Children) {
		t.Fatalf("unexpected detailed heatmap: %+v", out.DetailedHeatmap)
	}
	if out.Summary.AverageDailyChange != want.Summary.AverageDailyChange {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
}

func TestMarketService_LoadFailureIsFatal(t *testing.T) {
	repo := &stubRepo{records: fixture(), err: storage.ErrMalformedSnapshot}
	svc := NewMarketService(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{name: "stocks", call: func() error { _, err := svc.Stocks(ctx); return err }},
		{name: "heatmap", call: func() error { _, err := svc.Heatmap(ctx); return err }},
		{name: "detailed", call: func() error { _, err := svc.DetailedHeatmap(ctx); return err }},
		{name: "summary", call: func() error { _, err := svc.Summary(ctx); return err }},
		{name: "overview", call: func() error { _, err := svc.Overview(ctx); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, storage.ErrMalformedSnapshot) {
				t.Fatalf("expected ErrMalformedSnapshot, got %v", err)
			}
		})
	}
}

func TestMarketService_StocksReturnsNoPartialList(t *testing.T) {
	svc := NewMarketService(&stubRepo{records: fixture(), err: errors.New("disk")})
	out, err := svc.Stocks(context.Background())
	if err == nil || out != nil {
		t.Fatalf("expected nil list and error, got out=%v err=%v", out, err)
	}
}

func TestMarketService_CanceledContext(t *testing.T) {
	svc := NewMarketService(&stubRepo{records: fixture()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Overview(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
