package services

import (
	"context"
	"errors"
	"testing"

	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
)

type fakeProductRepo struct {
	added []*models.Product
	err   error
}

func (f *fakeProductRepo) Add(ctx context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, product)
	return nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id models.ProductID) (*models.Product, error) {
	for _, p := range f.added {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, invdomain.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id models.ProductID) error {
	return f.err
}

func (f *fakeProductRepo) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	return f.added, len(f.added), nil
}

func TestProductService_Add(t *testing.T) {
	ctx := context.Background()
	board, _ := models.NewProductID("Centryno", "SL666", models.NoVariant)

	t.Run("valid defaults reach the repository", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := NewProductService(repo, models.DefaultRegistry())

		product := models.NewProduct(board).WithFeature("type", "motherboard").WithFeature("color", "green")
		if err := svc.Add(ctx, product); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.added) != 1 {
			t.Fatal("product did not reach the repository")
		}
	})

	t.Run("invalid default feature is rejected", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := NewProductService(repo, models.DefaultRegistry())

		product := models.NewProduct(board).WithFeature("working", "sometimes")
		err := svc.Add(ctx, product)
		if !errors.Is(err, invdomain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if len(repo.added) != 0 {
			t.Fatal("invalid product must not reach the repository")
		}
	})

	t.Run("duplicate identity sentinel passes through", func(t *testing.T) {
		repo := &fakeProductRepo{err: invdomain.ErrDuplicateProduct}
		svc := NewProductService(repo, models.DefaultRegistry())

		err := svc.Add(ctx, models.NewProduct(board))
		if !errors.Is(err, invdomain.ErrDuplicateProduct) {
			t.Fatalf("expected ErrDuplicateProduct, got %v", err)
		}
	})
}

func TestProductService_Get(t *testing.T) {
	ctx := context.Background()
	board, _ := models.NewProductID("Centryno", "SL666", models.NoVariant)
	repo := &fakeProductRepo{}
	svc := NewProductService(repo, models.DefaultRegistry())

	if err := svc.Add(ctx, models.NewProduct(board).WithFeature("color", "green")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		product, err := svc.Get(ctx, board)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Features["color"] != "green" {
			t.Fatalf("unexpected defaults: %v", product.Features)
		}
	})

	t.Run("unknown identity", func(t *testing.T) {
		other, _ := models.NewProductID("Centryno", "SL666", "v2")
		_, err := svc.Get(ctx, other)
		if !errors.Is(err, invdomain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductService_Delete_InUse(t *testing.T) {
	repo := &fakeProductRepo{err: invdomain.ErrProductInUse}
	svc := NewProductService(repo, models.DefaultRegistry())

	board, _ := models.NewProductID("Centryno", "SL666", models.NoVariant)
	if err := svc.Delete(context.Background(), board); !errors.Is(err, invdomain.ErrProductInUse) {
		t.Fatalf("expected ErrProductInUse, got %v", err)
	}
}
