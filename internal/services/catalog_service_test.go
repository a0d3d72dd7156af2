package services

import (
	"context"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"

	"catalog/internal/derive"
	apperrors "catalog/internal/errors"
	"catalog/internal/models"
	"catalog/internal/testutil"
	"catalog/internal/viewstate"
)

func newTestCatalogService(t *testing.T, fx models.Fixtures) CatalogServicer {
	t.Helper()
	svc, err := NewCatalogService(fx)
	testutil.AssertNoError(t, err)
	return svc
}

func TestNewCatalogService(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := newTestCatalogService(t, testutil.SampleFixtures())

		if got := len(svc.GetUsers()); got != 2 {
			t.Errorf("expected 2 users, got %d", got)
		}
		if got := len(svc.GetCategories()); got != 2 {
			t.Errorf("expected 2 categories, got %d", got)
		}
	})

	t.Run("dangling_category", func(t *testing.T) {
		fx := testutil.SampleFixtures()
		fx.Products[0].CategoryID = 404

		_, err := NewCatalogService(fx)
		testutil.AssertAppError(t, err, apperrors.ErrDataIntegrity)
	})
}

func TestBrowse(t *testing.T) {
	t.Run("default_state", func(t *testing.T) {
		svc := newTestCatalogService(t, testutil.SampleFixtures())

		result, err := svc.Browse(context.Background(), viewstate.New())
		testutil.AssertNoError(t, err)

		if result.Total != 2 || result.Matched != 2 {
			t.Errorf("expected 2/2 products, got %d/%d", result.Matched, result.Total)
		}
		if result.Message != "" {
			t.Errorf("expected no message, got %q", result.Message)
		}
		if !result.Panel.AllOwners || !result.Panel.AllCategories {
			t.Error("expected 'all' owner and category options to be active")
		}
	})

	t.Run("owner_filter", func(t *testing.T) {
		svc := newTestCatalogService(t, testutil.SampleFixtures())
		owner := testutil.OwnerAnna

		result, err := svc.Browse(context.Background(), viewstate.New().SetOwnerFilter(&owner))
		testutil.AssertNoError(t, err)

		if result.Matched != 1 || result.Products[0].Name != "Banana" {
			t.Fatalf("expected only Banana, got %+v", result.Products)
		}
		if !result.Panel.Owners[1].Selected {
			t.Error("expected Anna to be the selected owner")
		}
	})

	t.Run("no_match_sets_message", func(t *testing.T) {
		svc := newTestCatalogService(t, testutil.SampleFixtures())

		result, err := svc.Browse(context.Background(), viewstate.New().SetSearchTerm("kiwi"))
		testutil.AssertNoError(t, err)

		if result.Matched != 0 || len(result.Products) != 0 {
			t.Errorf("expected no products, got %d", result.Matched)
		}
		if result.Message != derive.NoMatchMessage {
			t.Errorf("expected no-match message, got %q", result.Message)
		}
	})

	t.Run("empty_catalog", func(t *testing.T) {
		fx := testutil.SampleFixtures()
		fx.Products = nil
		svc := newTestCatalogService(t, fx)

		result, err := svc.Browse(context.Background(), viewstate.New().SetSort(viewstate.SortByName))
		testutil.AssertNoError(t, err)

		if result.Total != 0 || result.Message != derive.NoMatchMessage {
			t.Errorf("expected empty result with message, got %+v", result)
		}
	})

	t.Run("normalizes_state", func(t *testing.T) {
		svc := newTestCatalogService(t, testutil.SampleFixtures())

		result, err := svc.Browse(context.Background(), viewstate.ViewState{
			SelectedCategoryIDs: []uint{20, 10, 20},
			SortKey:             viewstate.SortByName,
		})
		testutil.AssertNoError(t, err)

		if result.State.SortDirection != viewstate.Ascending {
			t.Errorf("expected asc direction, got %q", result.State.SortDirection)
		}
		if len(result.State.SelectedCategoryIDs) != 2 || result.State.SelectedCategoryIDs[0] != 10 {
			t.Errorf("expected categories [10 20], got %v", result.State.SelectedCategoryIDs)
		}
	})

	t.Run("unsupported_sort", func(t *testing.T) {
		svc := newTestCatalogService(t, testutil.SampleFixtures())

		_, err := svc.Browse(context.Background(), viewstate.ViewState{SortKey: "price"})
		testutil.AssertAppError(t, err, apperrors.ErrInvalidSort)
	})

	t.Run("records_server_timing", func(t *testing.T) {
		svc := newTestCatalogService(t, testutil.SampleFixtures())
		header := &servertiming.Header{}
		ctx := servertiming.NewContext(context.Background(), header)

		_, err := svc.Browse(ctx, viewstate.New())
		testutil.AssertNoError(t, err)

		if len(header.Metrics) != 1 || header.Metrics[0].Name != "derive" {
			t.Errorf("expected one derive metric, got %+v", header.Metrics)
		}
	})
}
