package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/domain"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/domain/repository"
	"github.com/techstore/inventario-api/pkg/logger"
)

// Deps dependencias del Store. Cuando la configuración es inválida o el pool
// no pudo crearse, se construye con ConfigErr y el resto en nil: el Store
// arranca directo en modo offline con datos de muestra.
type Deps struct {
	Tx        TxRunner
	Prober    Prober
	Products  repository.ProductRepository
	Movements repository.MovementRepository
	History   repository.PriceHistoryRepository
	ConfigErr error
}

// StatusInfo estado de conectividad observable desde fuera.
type StatusInfo struct {
	Status    string
	Message   string
	ErrorType string
}

// Store es la única fuente de verdad de productos, movimientos e historial de
// precios durante la sesión. Media todas las escrituras a través del gateway
// (una transacción por operación) y tras cada escritura recarga las tres
// colecciones completas, de modo que toda lectura posterior es consistente.
type Store struct {
	mu   sync.RWMutex
	log  *logger.Logger
	deps Deps

	products  []*entity.Product
	movements []*entity.Movement
	history   []*entity.PriceHistory

	status    string
	statusMsg string
	errorType string
}

// NewStore construye el Store sin tocar la base de datos; llamar Initialize después.
func NewStore(log *logger.Logger, deps Deps) *Store {
	return &Store{log: log, deps: deps, status: StatusConnecting}
}

// Initialize establece conectividad: chequeo de configuración, sonda de esquema
// y carga completa. Cualquier fallo transiciona a offline con datos de muestra;
// las lecturas siguen funcionando y las escrituras se rechazan con ErrOffline.
func (s *Store) Initialize(ctx context.Context) {
	s.setStatus(StatusConnecting, "conectando a la base de datos", "")

	if s.deps.ConfigErr != nil {
		s.log.Warn().Err(s.deps.ConfigErr).Msg("configuración de base de datos inválida, modo offline")
		s.goOffline(s.deps.ConfigErr.Error(), ErrTypeConfig)
		return
	}
	if s.deps.Prober == nil || s.deps.Tx == nil {
		s.goOffline("gateway de persistencia no disponible", ErrTypeUnknown)
		return
	}

	result := s.deps.Prober.Probe(ctx)
	if !result.Success {
		s.log.Warn().Str("error_type", result.ErrorType).Str("detail", result.Message).Msg("sonda de conectividad falló, modo offline")
		s.setStatus(StatusError, result.Message, result.ErrorType)
		s.goOffline(result.Message, result.ErrorType)
		return
	}

	if err := s.LoadAll(ctx); err != nil {
		s.log.Error().Err(err).Msg("carga inicial falló, modo offline")
		s.setStatus(StatusError, err.Error(), ErrTypeUnknown)
		s.goOffline(err.Error(), ErrTypeUnknown)
		return
	}

	s.setStatus(StatusConnected, "conexión exitosa", "")
	s.log.Info().Int("productos", len(s.Products())).Msg("inventario cargado")
}

// Retry reintenta la conexión tras un fallo; reentra en connecting.
func (s *Store) Retry(ctx context.Context) {
	s.Initialize(ctx)
}

// goOffline puebla los datos de muestra y fija el estado terminal-hasta-retry.
func (s *Store) goOffline(message, errorType string) {
	s.mu.Lock()
	s.products = sampleProducts()
	s.movements = nil
	s.history = nil
	s.status = StatusOffline
	s.statusMsg = message
	s.errorType = errorType
	s.mu.Unlock()
}

func (s *Store) setStatus(status, message, errorType string) {
	s.mu.Lock()
	s.status = status
	s.statusMsg = message
	s.errorType = errorType
	s.mu.Unlock()
}

// Status devuelve el estado de conectividad actual.
func (s *Store) Status() StatusInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatusInfo{Status: s.status, Message: s.statusMsg, ErrorType: s.errorType}
}

// ensureOnline rechaza escrituras fuera del estado connected.
func (s *Store) ensureOnline() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status != StatusConnected {
		return domain.ErrOffline
	}
	return nil
}

// LoadAll recarga productos activos, movimientos e historial de precios y
// reemplaza las tres colecciones bajo el lock, o ninguna si algo falla.
func (s *Store) LoadAll(ctx context.Context) error {
	products, err := s.deps.Products.ListActive()
	if err != nil {
		return fmt.Errorf("cargar productos: %w", err)
	}
	movements, err := s.deps.Movements.ListAll()
	if err != nil {
		return fmt.Errorf("cargar movimientos: %w", err)
	}
	history, err := s.deps.History.ListAll()
	if err != nil {
		return fmt.Errorf("cargar historial de precios: %w", err)
	}

	s.mu.Lock()
	s.products = products
	s.movements = movements
	s.history = history
	s.mu.Unlock()
	return nil
}

// ProductInput datos para crear un producto. Category es el nombre libre; se
// resuelve a un id con get-or-create dentro de la transacción de alta.
type ProductInput struct {
	Code        string
	Name        string
	Category    string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Quantity    int
	MinStock    int
	Description string
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: código, nombre y categoría son obligatorios", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 || in.MinStock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return fmt.Errorf("%w: precio y costo no pueden ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

// AddProduct crea el producto resolviendo la categoría por nombre en la misma
// transacción y recarga el estado.
func (s *Store) AddProduct(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if err := s.ensureOnline(); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        strings.TrimSpace(in.Code),
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Cost:        in.Cost,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.deps.Tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository, _ repository.MovementRepository, _ repository.PriceHistoryRepository) error {
		category, err := categories.GetOrCreate(strings.TrimSpace(in.Category))
		if err != nil {
			return err
		}
		product.CategoryID = category.ID
		product.Category = category.Name
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	if err := s.LoadAll(ctx); err != nil {
		return nil, err
	}
	return product, nil
}

// ProductPatch actualización parcial; solo los campos no-nil se aplican.
type ProductPatch struct {
	Code        *string
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	Quantity    *int
	MinStock    *int
	Description *string
}

// IsEmpty indica si el parche no toca ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Code == nil && p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Cost == nil && p.Quantity == nil && p.MinStock == nil && p.Description == nil
}

// validate aplica a los campos presentes las mismas reglas que el alta.
func (p ProductPatch) validate() error {
	if (p.Code != nil && strings.TrimSpace(*p.Code) == "") ||
		(p.Name != nil && strings.TrimSpace(*p.Name) == "") ||
		(p.Category != nil && strings.TrimSpace(*p.Category) == "") {
		return fmt.Errorf("%w: código, nombre y categoría no pueden quedar en blanco", domain.ErrInvalidInput)
	}
	if (p.Quantity != nil && *p.Quantity < 0) || (p.MinStock != nil && *p.MinStock < 0) {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if (p.Price != nil && p.Price.IsNegative()) || (p.Cost != nil && p.Cost.IsNegative()) {
		return fmt.Errorf("%w: precio y costo no pueden ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

// UpdateProduct aplica una actualización parcial. Si el parche cambia el precio
// de venta se registra un renglón de historial en la misma transacción.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch ProductPatch) error {
	if err := s.ensureOnline(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return domain.ErrEmptyUpdate
	}
	if err := patch.validate(); err != nil {
		return err
	}

	err := s.deps.Tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository, _ repository.MovementRepository, history repository.PriceHistoryRepository) error {
		current, err := products.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		fields := repository.ProductUpdate{
			Code:        patch.Code,
			Name:        patch.Name,
			Quantity:    patch.Quantity,
			MinStock:    patch.MinStock,
			Cost:        patch.Cost,
			Price:       patch.Price,
			Description: patch.Description,
		}
		if patch.Category != nil {
			category, err := categories.GetOrCreate(strings.TrimSpace(*patch.Category))
			if err != nil {
				return err
			}
			fields.CategoryID = &category.ID
		}

		if patch.Price != nil && !patch.Price.Equal(current.Price) {
			record := &entity.PriceHistory{
				ProductID:     id,
				PreviousPrice: current.Price,
				NewPrice:      *patch.Price,
				Date:          time.Now(),
				Reason:        "Actualización manual de precio",
			}
			if err := history.Create(record); err != nil {
				return err
			}
		}

		return products.Update(id, fields)
	})
	if err != nil {
		return err
	}
	return s.LoadAll(ctx)
}

// DeleteProduct marca el producto como eliminado y devuelve su nombre previo
// para el mensaje de confirmación.
func (s *Store) DeleteProduct(ctx context.Context, id string) (string, error) {
	if err := s.ensureOnline(); err != nil {
		return "", err
	}

	var name string
	err := s.deps.Tx.Run(ctx, func(products repository.ProductRepository, _ repository.CategoryRepository, _ repository.MovementRepository, _ repository.PriceHistoryRepository) error {
		var err error
		name, err = products.SoftDelete(id)
		return err
	})
	if err != nil {
		return "", err
	}
	if err := s.LoadAll(ctx); err != nil {
		return "", err
	}
	return name, nil
}

// AddMovement registra una entrada o salida de stock. Lee el stock actual con
// la fila bloqueada, valida que una salida no deje stock negativo e inserta el
// movimiento y el nuevo stock en una sola transacción.
func (s *Store) AddMovement(ctx context.Context, productID, movementType string, quantity int, reason string) (*entity.Movement, error) {
	if err := s.ensureOnline(); err != nil {
		return nil, err
	}
	if movementType != entity.MovementEntrada && movementType != entity.MovementSalida {
		return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, movementType)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrEmptyReason
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}

	var movement *entity.Movement
	err := s.deps.Tx.Run(ctx, func(products repository.ProductRepository, _ repository.CategoryRepository, movements repository.MovementRepository, _ repository.PriceHistoryRepository) error {
		product, err := products.GetByIDForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.Quantity + quantity
		if movementType == entity.MovementSalida {
			newQuantity = product.Quantity - quantity
			if newQuantity < 0 {
				return &domain.InsufficientStockError{Available: product.Quantity, Requested: quantity}
			}
		}

		movement = &entity.Movement{
			ID:               uuid.New().String(),
			ProductID:        productID,
			Type:             movementType,
			Quantity:         quantity,
			Reason:           reason,
			Date:             time.Now(),
			PreviousQuantity: product.Quantity,
			NewQuantity:      newQuantity,
			TotalValue:       product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		}
		if err := movements.Create(movement); err != nil {
			return err
		}
		return products.UpdateQuantity(productID, newQuantity)
	})
	if err != nil {
		return nil, err
	}
	if err := s.LoadAll(ctx); err != nil {
		return nil, err
	}
	return movement, nil
}

// UpdatePricesByCategory aplica un ajuste porcentual al precio de venta de
// todos los productos activos de la categoría, redondeando a la unidad, y
// registra un renglón de historial por producto tocado. Devuelve cuántos
// productos fueron actualizados.
func (s *Store) UpdatePricesByCategory(ctx context.Context, categoryName string, percent float64) (int, error) {
	if err := s.ensureOnline(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(categoryName) == "" {
		return 0, fmt.Errorf("%w: la categoría es obligatoria", domain.ErrInvalidInput)
	}
	if percent < -100 {
		return 0, fmt.Errorf("%w: un ajuste menor a -100%% dejaría precios negativos", domain.ErrInvalidInput)
	}

	factor := decimal.NewFromFloat(1 + percent/100)
	reason := fmt.Sprintf("Ajuste de precios %.1f%% en categoría %s", percent, categoryName)

	var updated int
	err := s.deps.Tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository, _ repository.MovementRepository, history repository.PriceHistoryRepository) error {
		category, err := categories.GetByName(strings.TrimSpace(categoryName))
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}

		list, err := products.ListActiveByCategory(category.ID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, p := range list {
			newPrice := p.Price.Mul(factor).Round(0)
			if err := products.UpdatePrice(p.ID, newPrice); err != nil {
				return err
			}
			record := &entity.PriceHistory{
				ProductID:     p.ID,
				PreviousPrice: p.Price,
				NewPrice:      newPrice,
				Date:          now,
				Reason:        reason,
			}
			if err := history.Create(record); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if err := s.LoadAll(ctx); err != nil {
		return 0, err
	}
	return updated, nil
}

// ClearAllMovements borra todo el historial de movimientos y recarga.
func (s *Store) ClearAllMovements(ctx context.Context) error {
	if err := s.ensureOnline(); err != nil {
		return err
	}
	err := s.deps.Tx.Run(ctx, func(_ repository.ProductRepository, _ repository.CategoryRepository, movements repository.MovementRepository, _ repository.PriceHistoryRepository) error {
		return movements.DeleteAll()
	})
	if err != nil {
		return err
	}
	return s.LoadAll(ctx)
}
