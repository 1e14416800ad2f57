package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/internal/domain"
	"github.com/vstock/ventas-api/internal/domain/entity"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// ImageStore es el puerto de almacenamiento de imágenes de producto.
// La implementación local escribe en un directorio plano y devuelve la ruta
// persistible.
type ImageStore interface {
	Save(filename string, r io.Reader) (string, error)
	Remove(path string) error
}

// ImageUpload es una imagen subida en el formulario (opcional).
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

var percentMax = decimal.NewFromInt(100)

// ProductUseCase casos de uso CRUD del catálogo de productos del vendedor.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ImageStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images ImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

// Create valida el formulario, guarda la imagen (si viene) y persiste el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, img *ImageUpload) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Category, in.MRP, in.Discount); err != nil {
		return nil, err
	}

	imagePath := ""
	if img != nil {
		path, err := uc.images.Save(img.Filename, img.Reader)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		MRP:       in.MRP,
		Discount:  in.Discount,
		ImagePath: imagePath,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo paginado.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto. Si no viene imagen nueva conserva la ruta almacenada.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, img *ImageUpload) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Category, in.MRP, in.Discount); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if img != nil {
		path, err := uc.images.Save(img.Filename, img.Reader)
		if err != nil {
			return nil, err
		}
		product.ImagePath = path
	}

	product.Name = in.Name
	product.Category = in.Category
	product.MRP = in.MRP
	product.Discount = in.Discount
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y, si la tenía, su imagen local.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if product.ImagePath != "" {
		// La fila ya se borró; un fallo al quitar el archivo no revierte nada.
		_ = uc.images.Remove(product.ImagePath)
	}
	return nil
}

func validateProductFields(name, category string, mrp, discount decimal.Decimal) error {
	if name == "" || category == "" {
		return domain.NewValidationError("product_name and category are required")
	}
	if mrp.IsNegative() {
		return domain.NewValidationError("mrp must be >= 0")
	}
	if discount.IsNegative() || discount.GreaterThan(percentMax) {
		return domain.NewValidationError("discount must be between 0 and 100")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		MRP:       p.MRP,
		Discount:  p.Discount,
		ImagePath: p.ImagePath,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
