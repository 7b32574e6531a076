// Package store implements the persistence layer over gorm.
package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"shopapi/internal/apperr"
	"shopapi/internal/models"
)

// AssetRemover is the slice of the upload manager the stores need for
// image cleanup.
type AssetRemover interface {
	Remove(path string)
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// CreateProduct is the input for ProductStore.Create. Image must already
// be stored on disk; the store only persists the path.
type CreateProduct struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Image       string
}

// UpdateProduct overwrites every scalar field unconditionally. NewImage,
// when non-empty, replaces the stored path and the old file is removed.
type UpdateProduct struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	NewImage    string
}

// ListParams are coerced, not validated: page and limit at or below zero
// fall back to 1 and 10.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// ProductPage is the paginated listing response shape.
type ProductPage struct {
	Data        []models.Product `json:"data"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	Total       int64            `json:"total"`
	HasMore     bool             `json:"hasMore"`
}

// ProductStore owns the products table and delegates file lifecycle to
// the asset manager. Database writes always land before file cleanup, so
// a crash between the two leaves at worst a stale file, never a row
// pointing at a missing one.
type ProductStore struct {
	db     *gorm.DB
	assets AssetRemover
}

func NewProductStore(db *gorm.DB, assets AssetRemover) *ProductStore {
	return &ProductStore{db: db, assets: assets}
}

func validateProduct(name, description string, price float64, stock int) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return apperr.Validation("All fields are required")
	}
	if price < 0 {
		return apperr.Validation("Price must be non-negative")
	}
	if stock < 0 {
		return apperr.Validation("Stock must be non-negative")
	}
	return nil
}

// Create persists a new product and returns its id.
func (s *ProductStore) Create(ctx context.Context, in CreateProduct) (uint, error) {
	if err := validateProduct(in.Name, in.Description, in.Price, in.Stock); err != nil {
		return 0, err
	}
	if in.Image == "" {
		return 0, apperr.Validation("All fields are required")
	}

	p := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, apperr.Internal(err)
	}
	return p.ID, nil
}

// List returns a page of products, newest first. Search matches a
// case-insensitive substring of name or description.
func (s *ProductStore) List(ctx context.Context, p ListParams) (ProductPage, error) {
	page := p.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	filtered := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&models.Product{})
		if p.Search != "" {
			pat := "%" + strings.ToLower(p.Search) + "%"
			q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pat, pat)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return ProductPage{}, apperr.Internal(err)
	}

	items := []models.Product{}
	err := filtered().
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&items).Error
	if err != nil {
		return ProductPage{}, apperr.Internal(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return ProductPage{
		Data:        items,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasMore:     page < totalPages,
	}, nil
}

// GetByID returns the product or a not-found error.
func (s *ProductStore) GetByID(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, apperr.NotFound("Product not found")
	}
	if err != nil {
		return models.Product{}, apperr.Internal(err)
	}
	return p, nil
}

// Update overwrites the product's scalar fields. When NewImage is set the
// row is written with the new path first and the old file is removed
// afterwards, best-effort.
func (s *ProductStore) Update(ctx context.Context, id uint, in UpdateProduct) error {
	if err := validateProduct(in.Name, in.Description, in.Price, in.Stock); err != nil {
		return err
	}

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	oldImage := p.Image
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	if in.NewImage != "" {
		p.Image = in.NewImage
	}

	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return apperr.Internal(err)
	}

	if in.NewImage != "" && oldImage != "" && oldImage != in.NewImage {
		s.assets.Remove(oldImage)
	}
	return nil
}

// Delete removes the row, then the image file best-effort. Repeating the
// call for the same id yields not-found.
func (s *ProductStore) Delete(ctx context.Context, id uint) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Product{}, p.ID).Error; err != nil {
		return apperr.Internal(err)
	}

	s.assets.Remove(p.Image)
	return nil
}
