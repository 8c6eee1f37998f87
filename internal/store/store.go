package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Alturino/inventory/internal/cache"
	"github.com/Alturino/inventory/internal/log"
	inOtel "github.com/Alturino/inventory/internal/otel"
	"github.com/Alturino/inventory/pkg/request"
	"github.com/Alturino/inventory/pkg/response"
)

// KeyProducts is the logical name of the cached product collection.
const KeyProducts = "products"

type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

type Notification struct {
	Level   Level
	Message string
}

// ProductAPI is the surface of the REST client the store depends on.
type ProductAPI interface {
	ListProducts(c context.Context) ([]response.Product, error)
	CreateProduct(c context.Context, param request.CreateProduct) (json.RawMessage, error)
	UpdateProduct(c context.Context, id int64, param request.CreateProduct) (json.RawMessage, error)
	DeleteProduct(c context.Context, id int64) error
}

// ProductStore caches the product collection and wraps every mutation with
// cache invalidation plus a user-facing notification. Overlapping calls to
// the same mutation are permitted; whichever response arrives last wins on
// the cache.
type ProductStore struct {
	api           ProductAPI
	cache         *cache.Store[[]response.Product]
	notifications chan Notification

	mu       sync.Mutex
	creating int
	updating int
	deleting int
}

func NewProductStore(api ProductAPI) *ProductStore {
	return &ProductStore{
		api:           api,
		cache:         cache.New[[]response.Product](),
		notifications: make(chan Notification, 16),
	}
}

// Notifications delivers success/failure events of mutations. The channel is
// buffered; events are dropped rather than blocking a mutation when nobody
// is draining it.
func (s *ProductStore) Notifications() <-chan Notification {
	return s.notifications
}

// Products returns the cached collection, fetching it first when the cache
// is cold or invalidated. A failed fetch returns the error together with an
// empty collection so callers can still render.
func (s *ProductStore) Products(c context.Context) ([]response.Product, error) {
	c, span := inOtel.Tracer.Start(c, "ProductStore Products")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductStore Products").
		Str(log.KeyCacheKey, KeyProducts).
		Logger()

	if products, ok := s.cache.Get(KeyProducts); ok {
		logger.Trace().Msg("found products in cache")
		return products, nil
	}

	logger = logger.With().Str(log.KeyProcess, "fetching products").Logger()
	logger.Trace().Msg("fetching products")
	span.AddEvent("fetching products")
	c = logger.WithContext(c)
	products, err := s.api.ListProducts(c)
	if err != nil {
		err = fmt.Errorf("failed fetching products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return []response.Product{}, err
	}
	s.cache.Set(KeyProducts, products)
	span.AddEvent("fetched products")
	logger.Info().Int("count", len(products)).Msg("fetched products")

	return products, nil
}

func (s *ProductStore) CreateProduct(c context.Context, param request.CreateProduct) error {
	c, span := inOtel.Tracer.Start(c, "ProductStore CreateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductStore CreateProduct").
		Logger()

	s.begin(&s.creating)
	defer s.end(&s.creating)

	logger = logger.With().Str(log.KeyProcess, "creating product").Logger()
	logger.Trace().Msg("creating product")
	span.AddEvent("creating product")
	c = logger.WithContext(c)
	if _, err := s.api.CreateProduct(c, param); err != nil {
		err = fmt.Errorf("failed creating product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.notify(LevelError, "error creating product")
		return err
	}
	span.AddEvent("created product")
	logger.Info().Msg("created product")

	s.cache.Invalidate(KeyProducts)
	s.notify(LevelSuccess, "product created successfully")
	return nil
}

func (s *ProductStore) UpdateProduct(
	c context.Context,
	id int64,
	param request.CreateProduct,
) error {
	c, span := inOtel.Tracer.Start(c, "ProductStore UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductStore UpdateProduct").
		Int64(log.KeyProductID, id).
		Logger()

	s.begin(&s.updating)
	defer s.end(&s.updating)

	logger = logger.With().Str(log.KeyProcess, "updating product").Logger()
	logger.Trace().Msg("updating product")
	span.AddEvent("updating product")
	c = logger.WithContext(c)
	if _, err := s.api.UpdateProduct(c, id, param); err != nil {
		err = fmt.Errorf("failed updating product with id=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.notify(LevelError, "error updating product")
		return err
	}
	span.AddEvent("updated product")
	logger.Info().Msg("updated product")

	s.cache.Invalidate(KeyProducts)
	s.notify(LevelSuccess, "product updated successfully")
	return nil
}

func (s *ProductStore) DeleteProduct(c context.Context, id int64) error {
	c, span := inOtel.Tracer.Start(c, "ProductStore DeleteProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductStore DeleteProduct").
		Int64(log.KeyProductID, id).
		Logger()

	s.begin(&s.deleting)
	defer s.end(&s.deleting)

	logger = logger.With().Str(log.KeyProcess, "deleting product").Logger()
	logger.Trace().Msg("deleting product")
	span.AddEvent("deleting product")
	c = logger.WithContext(c)
	if err := s.api.DeleteProduct(c, id); err != nil {
		err = fmt.Errorf("failed deleting product with id=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.notify(LevelError, "error deleting product")
		return err
	}
	span.AddEvent("deleted product")
	logger.Info().Msg("deleted product")

	s.cache.Invalidate(KeyProducts)
	s.notify(LevelSuccess, "product deleted successfully")
	return nil
}

func (s *ProductStore) IsCreating() bool { return s.pending(&s.creating) }
func (s *ProductStore) IsUpdating() bool { return s.pending(&s.updating) }
func (s *ProductStore) IsDeleting() bool { return s.pending(&s.deleting) }

func (s *ProductStore) begin(counter *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*counter++
}

func (s *ProductStore) end(counter *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*counter--
}

func (s *ProductStore) pending(counter *int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *counter > 0
}

func (s *ProductStore) notify(level Level, message string) {
	select {
	case s.notifications <- Notification{Level: level, Message: message}:
	default:
	}
}
