package workshop

import (
	"context"
	"fmt"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func (w *Workshop) AddMaterial(ctx context.Context, material *model.Material) error {
	if err := validateMaterial(material); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.CreateMaterial(ctx, material); err != nil {
		return fmt.Errorf("failed create material: %w", err)
	}
	w.cache.PutMaterial(*material)

	return nil
}

func (w *Workshop) UpdateMaterial(ctx context.Context, material *model.Material) error {
	if err := validateMaterial(material); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.UpdateMaterial(ctx, material); err != nil {
		return fmt.Errorf("failed update material: %w", err)
	}
	w.cache.PutMaterial(*material)

	return nil
}

func (w *Workshop) DeleteMaterial(ctx context.Context, materialID uint) error {
	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.DeleteMaterial(ctx, materialID); err != nil {
		return fmt.Errorf("failed delete material: %w", err)
	}
	w.cache.RemoveMaterial(materialID)

	return nil
}

func (w *Workshop) Materials() []model.Material {
	return w.cache.Materials()
}

func (w *Workshop) AddProductType(ctx context.Context, productType *model.ProductType) error {
	if err := validateProductType(productType); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.CreateProductType(ctx, productType); err != nil {
		return fmt.Errorf("failed create product type: %w", err)
	}
	w.cache.PutProductType(*productType)

	return nil
}

func (w *Workshop) UpdateProductType(ctx context.Context, productType *model.ProductType) error {
	if err := validateProductType(productType); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.UpdateProductType(ctx, productType); err != nil {
		return fmt.Errorf("failed update product type: %w", err)
	}
	w.cache.PutProductType(*productType)

	return nil
}

func (w *Workshop) DeleteProductType(ctx context.Context, typeID uint) error {
	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.DeleteProductType(ctx, typeID); err != nil {
		return fmt.Errorf("failed delete product type: %w", err)
	}
	w.cache.RemoveProductType(typeID)

	return nil
}

func (w *Workshop) ProductTypes() []model.ProductType {
	return w.cache.ProductTypes()
}
