package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func (s *Store) CreateMaterial(ctx context.Context, material *model.Material) error {
	if err := s.db.WithContext(ctx).Create(material).Error; err != nil {
		if serr := asStoreError(err); errors.Is(serr, errstore.ErrNotUniqueData) {
			return serr
		}
		return fmt.Errorf("failed create material: %w", err)
	}

	return nil
}

func (s *Store) UpdateMaterial(ctx context.Context, material *model.Material) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := model.Material{}
		if err := tx.First(&existing, material.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select material: %w", err)
		}
		material.CreatedAt = existing.CreatedAt
		if err := tx.Save(material).Error; err != nil {
			return fmt.Errorf("failed save material: %w", asStoreError(err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed update material id=`%d`: %w", material.ID, err)
	}

	return nil
}

func (s *Store) DeleteMaterial(ctx context.Context, materialID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&model.OrderMaterial{}).Where("material_id = ?", materialID).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed count material usages: %w", err)
		}
		if refs > 0 {
			return errstore.ErrMaterialInUse
		}
		result := tx.Delete(&model.Material{}, materialID)
		if err := result.Error; err != nil {
			return fmt.Errorf("failed delete material: %w", err)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrNotFoundData
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed delete material id=`%d`: %w", materialID, err)
	}

	return nil
}

func (s *Store) ListMaterials(ctx context.Context) ([]model.Material, error) {
	materials := []model.Material{}
	if err := s.db.WithContext(ctx).Order("material_id").Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("failed list materials: %w", err)
	}

	return materials, nil
}

func (s *Store) CreateProductType(ctx context.Context, productType *model.ProductType) error {
	if err := s.db.WithContext(ctx).Create(productType).Error; err != nil {
		if serr := asStoreError(err); errors.Is(serr, errstore.ErrNotUniqueData) {
			return serr
		}
		return fmt.Errorf("failed create product type: %w", err)
	}

	return nil
}

func (s *Store) UpdateProductType(ctx context.Context, productType *model.ProductType) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := model.ProductType{}
		if err := tx.First(&existing, productType.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select product type: %w", err)
		}
		productType.CreatedAt = existing.CreatedAt
		if err := tx.Save(productType).Error; err != nil {
			return fmt.Errorf("failed save product type: %w", asStoreError(err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed update product type id=`%d`: %w", productType.ID, err)
	}

	return nil
}

func (s *Store) DeleteProductType(ctx context.Context, typeID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&model.Order{}).Where("product_type_id = ?", typeID).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed count product type usages: %w", err)
		}
		if refs > 0 {
			return errstore.ErrProductTypeInUse
		}
		result := tx.Delete(&model.ProductType{}, typeID)
		if err := result.Error; err != nil {
			return fmt.Errorf("failed delete product type: %w", err)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrNotFoundData
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed delete product type id=`%d`: %w", typeID, err)
	}

	return nil
}

func (s *Store) ListProductTypes(ctx context.Context) ([]model.ProductType, error) {
	types := []model.ProductType{}
	if err := s.db.WithContext(ctx).Order("type_id").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed list product types: %w", err)
	}

	return types, nil
}
