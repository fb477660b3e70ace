package catalog

import (
	"context"
	"regexp"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
)

// Repository exposes the read-only catalog surface. Catalog writes happen
// through migrations and the seed command only.
type Repository interface {
	ListByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var kitNumberRe = regexp.MustCompile(`\d+`)

func (r *repository) ListByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	// Kit names carry an index ("Kit 2", "Kit 11"); lexical order would put
	// Kit 11 before Kit 2, so the second pool sorts numerically.
	if category == enums.ProductCategoryChoice2 {
		sort.SliceStable(products, func(i, j int) bool {
			return kitNumber(products[i].Name) < kitNumber(products[j].Name)
		})
	}
	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func kitNumber(name string) int {
	match := kitNumberRe.FindString(name)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
