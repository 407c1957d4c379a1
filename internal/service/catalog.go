package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"sushishop/internal/es"
	"sushishop/internal/models"
	"sushishop/internal/mykafka"
	"sushishop/internal/repo"
	"sushishop/internal/transport"
	"sushishop/internal/upload"
	"sushishop/internal/util"
	"sushishop/pkg/logging"
)

// CatalogService owns product CRUD, slug uniqueness and image files.
// Search is optional: when nil the catalog is not mirrored to elasticsearch.
type CatalogService struct {
	Repo     *repo.GormRepo
	Files    *upload.Store
	Producer *mykafka.Producer
	Search   *es.Indexer
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}

func (s *CatalogService) index(ctx context.Context, p *models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Error("es index error", "product_id", p.ID, "error", err)
	}
}

// ensureUniqueSlug probes slug, slug-1, slug-2, ... until one is free.
func (s *CatalogService) ensureUniqueSlug(ctx context.Context, slug string, excludeID uint) (string, error) {
	candidate := slug
	for i := 1; ; i++ {
		taken, err := s.Repo.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}

func (s *CatalogService) List(ctx context.Context, search string, page, pageSize int) (int64, []models.Product, error) {
	offset, limit := util.Calculate(page, pageSize)
	return s.Repo.ListProducts(ctx, trimmed(search), offset, limit)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.Repo.GetProductBySlug(ctx, trimmed(slug))
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (s *CatalogService) Create(ctx context.Context, req transport.CreateProductRequest, image *multipart.FileHeader) (*models.Product, error) {
	base := req.Slug
	if trimmed(base) == "" {
		base = req.Name
	}
	slug, err := s.ensureUniqueSlug(ctx, util.ToSlug(base), 0)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := models.Product{
		Name:          trimmed(req.Name),
		Slug:          slug,
		Description:   optional(trimmed(req.Description)),
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Sku:           trimmed(req.Sku),
		Stock:         req.Stock,
		IsActive:      isActive,
	}

	if image != nil && image.Size > 0 {
		name, err := s.Files.Save(upload.ProductsDir, image)
		if err != nil {
			return nil, err
		}
		product.ImageFileName = &name
	}

	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(product.ID), map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})
	s.index(ctx, &product)

	return &product, nil
}

// Update overwrites every field. The slug only changes when a non-empty
// override normalizes to something different from the current slug.
func (s *CatalogService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest, image *multipart.FileHeader) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = trimmed(req.Name)
	product.Description = optional(trimmed(req.Description))
	product.Price = req.Price
	product.DiscountPrice = req.DiscountPrice
	product.Sku = trimmed(req.Sku)
	product.Stock = req.Stock

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	product.IsActive = isActive

	if trimmed(req.Slug) != "" {
		newSlug := util.ToSlug(req.Slug)
		if newSlug != product.Slug {
			unique, err := s.ensureUniqueSlug(ctx, newSlug, id)
			if err != nil {
				return nil, err
			}
			product.Slug = unique
		}
	}

	if image != nil && image.Size > 0 {
		if product.ImageFileName != nil {
			if err := s.Files.Remove(upload.ProductsDir, *product.ImageFileName); err != nil {
				logging.FromContext(ctx).Warn("old image not removed", "file", *product.ImageFileName, "error", err)
			}
		}

		name, err := s.Files.Save(upload.ProductsDir, image)
		if err != nil {
			return nil, err
		}
		product.ImageFileName = &name
	}

	now := time.Now().UTC()
	product.UpdatedAt = &now

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(product.ID), map[string]any{
		"type":       "product_updated",
		"product_id": product.ID,
		"name":       product.Name,
	})
	s.index(ctx, product)

	return product, nil
}

// Delete removes the row and then the image file, if one exists.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if product.ImageFileName != nil {
		if err := s.Files.Remove(upload.ProductsDir, *product.ImageFileName); err != nil {
			logging.FromContext(ctx).Warn("image not removed", "file", *product.ImageFileName, "error", err)
		}
	}

	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("es delete error", "product_id", id, "error", err)
		}
	}

	return nil
}
