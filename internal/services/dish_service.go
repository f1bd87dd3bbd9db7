package services

import (
	"context"
	"encoding/json"
	"time"

	"diner-service/internal/apperr"
	"diner-service/internal/domain"
	"diner-service/internal/repository"

	"github.com/redis/go-redis/v9"
)

const dishListCacheKey = "dishes:all"

type DishService struct {
	store       repository.Store
	redisClient *redis.Client
}

func NewDishService(store repository.Store) *DishService {
	return &DishService{store: store}
}

func (s *DishService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *DishService) Create(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish.Name == "" {
		return nil, apperr.New(apperr.InvalidArgument, "dish name is required")
	}
	if dish.Price < 0 {
		return nil, apperr.New(apperr.InvalidArgument, "dish price must not be negative")
	}

	dish.ID = 0
	if err := s.store.Dishes().Save(ctx, dish); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return dish, nil
}

func (s *DishService) Get(ctx context.Context, id uint64) (*domain.Dish, error) {
	dish, err := s.store.Dishes().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, apperr.Newf(apperr.NotFound, "dish %d not found", id)
	}
	return dish, nil
}

func (s *DishService) GetByName(ctx context.Context, name string) (*domain.Dish, error) {
	dish, err := s.store.Dishes().FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, apperr.Newf(apperr.NotFound, "dish %q not found", name)
	}
	return dish, nil
}

// List serves the catalog from Redis when possible; the menu changes
// rarely and is the hottest read in the admin UI.
func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, dishListCacheKey).Result()
		if err == nil {
			var dishes []domain.Dish
			if err := json.Unmarshal([]byte(cached), &dishes); err == nil {
				return dishes, nil
			}
		}
	}

	dishes, err := s.store.Dishes().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(dishes); err == nil {
			s.redisClient.Set(ctx, dishListCacheKey, data, time.Minute)
		}
	}

	return dishes, nil
}

// Update overwrites every mutable field unconditionally.
func (s *DishService) Update(ctx context.Context, id uint64, updated *domain.Dish) (*domain.Dish, error) {
	dish, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dish.Name = updated.Name
	dish.Category = updated.Category
	dish.Price = updated.Price
	dish.Description = updated.Description
	dish.Ingredients = updated.Ingredients
	dish.ImageURL = updated.ImageURL

	if err := s.store.Dishes().Save(ctx, dish); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return dish, nil
}

func (s *DishService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Dishes().Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *DishService) invalidateCache(ctx context.Context) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, dishListCacheKey)
	}
}
