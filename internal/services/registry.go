package services

import (
	"context"
	"encoding/json"
	"time"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	"calibration-system/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	registryCacheTTL  = 10 * time.Minute
	registryListLimit = 1000

	brandsCacheKey      = "registry:brands"
	modelsCacheKey      = "registry:models"
	techniciansCacheKey = "registry:technicians"
	clientsCacheKey     = "registry:clients"
)

// RegistryService manages the reference registries used to populate intake
// forms. Lists are hot and change rarely, so they are served from a TTL cache
// that every successful create invalidates.
type RegistryServiceInterface interface {
	CreateBrand(ctx context.Context, payload dto.CreateNamedEntityDTO) (*entities.Brand, error)
	GetBrands(ctx context.Context) ([]entities.Brand, error)
	CreateModel(ctx context.Context, payload dto.CreateNamedEntityDTO) (*entities.Model, error)
	GetModels(ctx context.Context) ([]entities.Model, error)
	CreateTechnician(ctx context.Context, payload dto.CreateNamedEntityDTO) (*entities.Technician, error)
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error)
	GetClients(ctx context.Context) ([]entities.Client, error)
	GetClientByCIF(ctx context.Context, cif string) (*entities.Client, error)
}

type RegistryService struct {
	brandRepo      repositories.BrandRepositoryInterface
	modelRepo      repositories.ModelRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	clientRepo     repositories.ClientRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
}

func NewRegistryService(
	brandRepo repositories.BrandRepositoryInterface,
	modelRepo repositories.ModelRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *RegistryService {
	return &RegistryService{
		brandRepo:      brandRepo,
		modelRepo:      modelRepo,
		technicianRepo: technicianRepo,
		clientRepo:     clientRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
	}
}

// cachedList serves a registry list through the cache. Cache failures
// degrade to a direct repository read.
func cachedList[T any](ctx context.Context, s *RegistryService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if raw, found, err := s.cacheRepo.Get(ctx, key); err != nil {
		s.logger.Warn("registry cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
		s.logger.Warn("registry cache entry is corrupt, dropping it", zap.String("key", key))
		_ = s.cacheRepo.Delete(ctx, key)
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(items); err == nil {
		if err := s.cacheRepo.Set(ctx, key, string(encoded), registryCacheTTL); err != nil {
			s.logger.Warn("registry cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return items, nil
}

func (s *RegistryService) invalidate(ctx context.Context, key string) {
	if err := s.cacheRepo.Delete(ctx, key); err != nil {
		s.logger.Warn("registry cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RegistryService) CreateBrand(ctx context.Context, payload dto.CreateNamedEntityDTO) (*entities.Brand, error) {
	created, err := s.brandRepo.CreateBrand(ctx, entities.Brand{ID: uuid.NewString(), Name: payload.Name})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, brandsCacheKey)
	return created, nil
}

func (s *RegistryService) GetBrands(ctx context.Context) ([]entities.Brand, error) {
	return cachedList(ctx, s, brandsCacheKey, func(ctx context.Context) ([]entities.Brand, error) {
		return s.brandRepo.GetBrands(ctx, registryListLimit)
	})
}

func (s *RegistryService) CreateModel(ctx context.Context, payload dto.CreateNamedEntityDTO) (*entities.Model, error) {
	created, err := s.modelRepo.CreateModel(ctx, entities.Model{ID: uuid.NewString(), Name: payload.Name})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, modelsCacheKey)
	return created, nil
}

func (s *RegistryService) GetModels(ctx context.Context) ([]entities.Model, error) {
	return cachedList(ctx, s, modelsCacheKey, func(ctx context.Context) ([]entities.Model, error) {
		return s.modelRepo.GetModels(ctx, registryListLimit)
	})
}

func (s *RegistryService) CreateTechnician(ctx context.Context, payload dto.CreateNamedEntityDTO) (*entities.Technician, error) {
	created, err := s.technicianRepo.CreateTechnician(ctx, entities.Technician{ID: uuid.NewString(), Name: payload.Name})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, techniciansCacheKey)
	return created, nil
}

func (s *RegistryService) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return cachedList(ctx, s, techniciansCacheKey, func(ctx context.Context) ([]entities.Technician, error) {
		return s.technicianRepo.GetTechnicians(ctx, registryListLimit)
	})
}

func (s *RegistryService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	client := entities.Client{
		ID:            uuid.NewString(),
		Name:          payload.Name,
		CIF:           payload.CIF,
		Departamentos: payload.Departamentos,
	}
	created, err := s.clientRepo.CreateClient(ctx, client)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, clientsCacheKey)
	return created, nil
}

func (s *RegistryService) GetClients(ctx context.Context) ([]entities.Client, error) {
	return cachedList(ctx, s, clientsCacheKey, func(ctx context.Context) ([]entities.Client, error) {
		return s.clientRepo.GetClients(ctx, registryListLimit)
	})
}

// GetClientByCIF looks a client up by its tax id, used by the intake form to
// prefill client fields.
func (s *RegistryService) GetClientByCIF(ctx context.Context, cif string) (*entities.Client, error) {
	return s.clientRepo.FindClientByCIF(ctx, cif)
}
