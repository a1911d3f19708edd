package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"smartretail/internal/models"
	"smartretail/internal/repositories"
	"smartretail/pkg/rabbitmq"
)

// CatalogEventPublisher publishes product lifecycle events. rabbitmq.Client
// satisfies it; tests substitute their own.
type CatalogEventPublisher interface {
	PublishCatalogEvent(evt rabbitmq.CatalogEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events CatalogEventPublisher // nil disables event publishing
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, events CatalogEventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// CreateProduct persists a new product and announces it on the catalog queue.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.publish(rabbitmq.CatalogEvent{
		Type:      "product.created",
		ProductID: product.ID.Hex(),
		Name:      product.Name,
	})
	return nil
}

// GetProductByID retrieves a single product by its id.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteProduct deletes a product by its id and announces the removal.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(rabbitmq.CatalogEvent{
		Type:      "product.deleted",
		ProductID: id,
	})
	return nil
}

// publish is fire-and-forget: a broker hiccup never fails the request that
// triggered the event.
func (s *ProductService) publish(evt rabbitmq.CatalogEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(evt); err != nil {
		log.Warn().Err(err).Str("type", evt.Type).Str("product_id", evt.ProductID).
			Msg("failed to publish catalog event")
	}
}
