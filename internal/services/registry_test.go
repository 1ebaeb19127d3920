package services

import (
	"context"
	"testing"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	apperrors "calibration-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBrandRepo struct {
	brands   []entities.Brand
	listHits int
}

func (r *fakeBrandRepo) CreateBrand(_ context.Context, brand entities.Brand) (*entities.Brand, error) {
	for _, b := range r.brands {
		if b.Name == brand.Name {
			return nil, apperrors.ErrConflict
		}
	}
	r.brands = append(r.brands, brand)
	out := brand
	return &out, nil
}

func (r *fakeBrandRepo) GetBrands(_ context.Context, _ uint64) ([]entities.Brand, error) {
	r.listHits++
	return append([]entities.Brand(nil), r.brands...), nil
}

type fakeModelRepo struct{ models []entities.Model }

func (r *fakeModelRepo) CreateModel(_ context.Context, model entities.Model) (*entities.Model, error) {
	r.models = append(r.models, model)
	out := model
	return &out, nil
}

func (r *fakeModelRepo) GetModels(_ context.Context, _ uint64) ([]entities.Model, error) {
	return append([]entities.Model(nil), r.models...), nil
}

type fakeTechnicianRepo struct{ technicians []entities.Technician }

func (r *fakeTechnicianRepo) CreateTechnician(_ context.Context, tech entities.Technician) (*entities.Technician, error) {
	r.technicians = append(r.technicians, tech)
	out := tech
	return &out, nil
}

func (r *fakeTechnicianRepo) GetTechnicians(_ context.Context, _ uint64) ([]entities.Technician, error) {
	return append([]entities.Technician(nil), r.technicians...), nil
}

type fakeClientRepo struct{ clients []entities.Client }

func (r *fakeClientRepo) CreateClient(_ context.Context, client entities.Client) (*entities.Client, error) {
	for _, c := range r.clients {
		if c.CIF == client.CIF {
			return nil, apperrors.ErrConflict
		}
	}
	r.clients = append(r.clients, client)
	out := client
	return &out, nil
}

func (r *fakeClientRepo) GetClients(_ context.Context, _ uint64) ([]entities.Client, error) {
	return append([]entities.Client(nil), r.clients...), nil
}

func (r *fakeClientRepo) FindClientByCIF(_ context.Context, cif string) (*entities.Client, error) {
	for _, c := range r.clients {
		if c.CIF == cif {
			out := c
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func newTestRegistryService() (*RegistryService, *fakeBrandRepo, *fakeCache) {
	brandRepo := &fakeBrandRepo{}
	cache := newFakeCache()
	svc := NewRegistryService(brandRepo, &fakeModelRepo{}, &fakeTechnicianRepo{}, &fakeClientRepo{}, cache, zap.NewNop())
	return svc, brandRepo, cache
}

func TestGetBrandsUsesCacheOnSecondRead(t *testing.T) {
	svc, brandRepo, _ := newTestRegistryService()
	ctx := context.Background()

	_, err := svc.CreateBrand(ctx, dto.CreateNamedEntityDTO{Name: "Dräger"})
	require.NoError(t, err)

	first, err := svc.GetBrands(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.GetBrands(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, brandRepo.listHits)
}

func TestCreateBrandInvalidatesCache(t *testing.T) {
	svc, brandRepo, _ := newTestRegistryService()
	ctx := context.Background()

	_, err := svc.CreateBrand(ctx, dto.CreateNamedEntityDTO{Name: "Dräger"})
	require.NoError(t, err)
	_, err = svc.GetBrands(ctx)
	require.NoError(t, err)

	_, err = svc.CreateBrand(ctx, dto.CreateNamedEntityDTO{Name: "MSA"})
	require.NoError(t, err)

	brands, err := svc.GetBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 2)
	assert.Equal(t, 2, brandRepo.listHits)
}

func TestCreateDuplicateBrandIsConflict(t *testing.T) {
	svc, _, _ := newTestRegistryService()
	ctx := context.Background()

	_, err := svc.CreateBrand(ctx, dto.CreateNamedEntityDTO{Name: "Dräger"})
	require.NoError(t, err)

	_, err = svc.CreateBrand(ctx, dto.CreateNamedEntityDTO{Name: "Dräger"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateClient(t *testing.T) {
	svc, _, _ := newTestRegistryService()

	created, err := svc.CreateClient(context.Background(), dto.CreateClientDTO{
		Name: "Bodegas del Norte S.L.",
		CIF:  "B12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "B12345678", created.CIF)
}
