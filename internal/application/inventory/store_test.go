package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/domain"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del Store sobre repositorios en memoria: derivaciones puras, semántica
// de movimientos con snapshot antes/después, validaciones de entrada, ajuste
// masivo de precios y el modo offline con datos de muestra.
// ──────────────────────────────────────────────────────────────────────────────

func newOnlineStore(t *testing.T, db *fakeDB) *inventory.Store {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store := inventory.NewStore(log, inventory.Deps{
		Tx:        &fakeTxRunner{db},
		Prober:    &fakeProber{inventory.ProbeResult{Success: true}},
		Products:  &fakeProductRepo{db},
		Movements: &fakeMovementRepo{db},
		History:   &fakeHistoryRepo{db},
	})
	store.Initialize(context.Background())
	require.Equal(t, inventory.StatusConnected, store.Status().Status,
		"con sonda exitosa el Store debe quedar conectado")
	return store
}

func TestTotalesDeInventario(t *testing.T) {
	db := &fakeDB{}
	seedProduct(db, "P-1", "Alfa", "Notebooks", 100, 60, 3, 1)  // valor 300, costo 180
	seedProduct(db, "P-2", "Beta", "Periféricos", 50, 20, 4, 1) // valor 200, costo 80
	store := newOnlineStore(t, db)

	assert.True(t, store.TotalInventoryValue().Equal(decimal.NewFromInt(500)),
		"el valor total debe ser Σ precio × stock")
	assert.True(t, store.TotalInventoryCost().Equal(decimal.NewFromInt(260)),
		"el costo total debe ser Σ costo × stock")
}

func TestLowStockAlerts(t *testing.T) {
	db := &fakeDB{}
	seedProduct(db, "P-1", "Sobrado", "Notebooks", 100, 60, 10, 4)
	low := seedProduct(db, "P-2", "Justo", "Notebooks", 100, 60, 4, 4)
	critical := seedProduct(db, "P-3", "Crítico", "Periféricos", 50, 20, 1, 8)
	store := newOnlineStore(t, db)

	alerts := store.LowStockAlerts()
	require.Len(t, alerts, 2, "solo los productos con stock <= mínimo generan alerta")

	byID := map[string]entity.StockAlert{}
	for _, a := range alerts {
		byID[a.Product.ID] = a
	}
	assert.Equal(t, 0, byID[low.ID].Difference, "stock igual al mínimo: diferencia cero")
	assert.Equal(t, 7, byID[critical.ID].Difference, "la diferencia debe ser mínimo - stock actual")
}

func TestAddMovement_EntradaRegistraSnapshot(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	movement, err := store.AddMovement(context.Background(), p.ID, entity.MovementEntrada, 3, "Compra proveedor")
	require.NoError(t, err)

	assert.Equal(t, 5, movement.PreviousQuantity)
	assert.Equal(t, 8, movement.NewQuantity)
	assert.True(t, movement.TotalValue.Equal(decimal.NewFromInt(2850000)),
		"el valor del movimiento es precio de venta × cantidad")

	latest := store.MovementsByProduct(p.ID)
	require.NotEmpty(t, latest)
	assert.Equal(t, movement.ID, latest[0].ID, "el movimiento más reciente va primero")
	assert.Equal(t, 8, store.ProductByID(p.ID).Quantity, "el stock recargado refleja la entrada")
}

func TestAddMovement_SalidaInsuficienteNoMuta(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Teclado", "Periféricos", 135000, 85000, 2, 8)
	store := newOnlineStore(t, db)

	_, err := store.AddMovement(context.Background(), p.ID, entity.MovementSalida, 5, "Venta")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)

	assert.Equal(t, 2, store.ProductByID(p.ID).Quantity, "el stock no debe cambiar tras el rechazo")
	assert.Empty(t, store.MovementsByProduct(p.ID), "no debe quedar ningún movimiento registrado")
}

func TestAddMovement_MotivoEnBlancoRechazado(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Mouse", "Periféricos", 45000, 20000, 10, 3)
	store := newOnlineStore(t, db)

	_, err := store.AddMovement(context.Background(), p.ID, entity.MovementSalida, 1, "   ")
	require.ErrorIs(t, err, domain.ErrEmptyReason)
	assert.Empty(t, store.Movements(), "la validación debe cortar antes de cualquier escritura")
}

func TestAddMovement_CantidadNoPositivaRechazada(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Mouse", "Periféricos", 45000, 20000, 10, 3)
	store := newOnlineStore(t, db)

	_, err := store.AddMovement(context.Background(), p.ID, entity.MovementEntrada, 0, "Ajuste")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestEscenarioVentas reproduce el flujo completo: una salida válida deja el
// snapshot correcto y saca al producto de la zona de alerta; la siguiente
// salida excede el stock y debe rechazarse sin tocar nada.
func TestEscenarioVentas(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Monitor", "Monitores", 100000, 80000, 10, 5)
	store := newOnlineStore(t, db)

	movement, err := store.AddMovement(context.Background(), p.ID, entity.MovementSalida, 3, "Venta")
	require.NoError(t, err)
	assert.Equal(t, 10, movement.PreviousQuantity)
	assert.Equal(t, 7, movement.NewQuantity)
	assert.Equal(t, 7, store.ProductByID(p.ID).Quantity)
	assert.Empty(t, store.LowStockAlerts(), "con stock 7 y mínimo 5 no hay alerta")

	_, err = store.AddMovement(context.Background(), p.ID, entity.MovementSalida, 10, "Venta")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 7, stockErr.Available)
	assert.Equal(t, 10, stockErr.Requested)
	assert.Equal(t, 7, store.ProductByID(p.ID).Quantity, "el stock queda en 7 tras el rechazo")
}

func TestUpdatePricesByCategory(t *testing.T) {
	db := &fakeDB{}
	nb1 := seedProduct(db, "P-1", "Notebook Dell", "Notebooks", 950000, 690000, 5, 2)
	nb2 := seedProduct(db, "P-2", "Notebook HP", "Notebooks", 835500, 600000, 3, 2)
	kb := seedProduct(db, "P-3", "Teclado", "Periféricos", 135000, 85000, 2, 8)
	store := newOnlineStore(t, db)

	updated, err := store.UpdatePricesByCategory(context.Background(), "Notebooks", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	assert.True(t, store.ProductByID(nb1.ID).Price.Equal(decimal.NewFromInt(1045000)),
		"950000 × 1.10 = 1045000")
	assert.True(t, store.ProductByID(nb2.ID).Price.Equal(decimal.NewFromInt(919050)),
		"835500 × 1.10 = 919050, redondeado a la unidad")
	assert.True(t, store.ProductByID(kb.ID).Price.Equal(decimal.NewFromInt(135000)),
		"las otras categorías quedan intactas")

	assert.Len(t, store.PriceHistoryByProduct(nb1.ID), 1,
		"cada producto tocado registra un renglón de historial")
	assert.Empty(t, store.PriceHistoryByProduct(kb.ID))
}

func TestUpdatePricesByCategory_CategoriaInexistente(t *testing.T) {
	db := &fakeDB{}
	seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	_, err := store.UpdatePricesByCategory(context.Background(), "NoExiste", 10)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePricesByCategory_AjusteMenorAMenos100Rechazado(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	_, err := store.UpdatePricesByCategory(context.Background(), "Notebooks", -150)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, store.ProductByID(p.ID).Price.Equal(decimal.NewFromInt(950000)),
		"un ajuste rechazado no toca los precios")
	assert.Empty(t, store.PriceHistoryByProduct(p.ID))

	// -100 es el borde permitido: deja los precios en cero.
	updated, err := store.UpdatePricesByCategory(context.Background(), "Notebooks", -100)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.True(t, store.ProductByID(p.ID).Price.IsZero())
}

func TestAddProduct_CategoriaGetOrCreate(t *testing.T) {
	db := &fakeDB{}
	store := newOnlineStore(t, db)

	first, err := store.AddProduct(context.Background(), inventory.ProductInput{
		Code: "P-1", Name: "Notebook Dell", Category: "NuevaCat",
		Price: decimal.NewFromInt(950000), Cost: decimal.NewFromInt(690000),
		Quantity: 5, MinStock: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countCategories(db, "NuevaCat"), "la primera alta crea exactamente una categoría")

	second, err := store.AddProduct(context.Background(), inventory.ProductInput{
		Code: "P-2", Name: "Notebook HP", Category: "NuevaCat",
		Price: decimal.NewFromInt(835000), Cost: decimal.NewFromInt(600000),
		Quantity: 3, MinStock: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countCategories(db, "NuevaCat"), "la segunda alta reutiliza la categoría existente")
	assert.Equal(t, first.CategoryID, second.CategoryID, "ambos productos referencian el mismo id de categoría")
}

func TestAddProduct_ValidacionesDeEntrada(t *testing.T) {
	db := &fakeDB{}
	store := newOnlineStore(t, db)

	_, err := store.AddProduct(context.Background(), inventory.ProductInput{
		Code: "P-1", Name: "", Category: "Notebooks",
		Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío se rechaza")

	_, err = store.AddProduct(context.Background(), inventory.ProductInput{
		Code: "P-1", Name: "Algo", Category: "Notebooks",
		Price: decimal.NewFromInt(-1), Cost: decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo se rechaza")
	assert.Empty(t, store.Products(), "nada se escribe cuando la validación falla")
}

func TestUpdateProduct_CambioDePrecioRegistraHistorial(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	newPrice := decimal.NewFromInt(999000)
	err := store.UpdateProduct(context.Background(), p.ID, inventory.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	history := store.PriceHistoryByProduct(p.ID)
	require.Len(t, history, 1)
	assert.True(t, history[0].PreviousPrice.Equal(decimal.NewFromInt(950000)))
	assert.True(t, history[0].NewPrice.Equal(newPrice))
	assert.True(t, store.ProductByID(p.ID).Price.Equal(newPrice))
}

func TestUpdateProduct_ValoresNegativosRechazados(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	negPrice := decimal.NewFromInt(-100)
	err := store.UpdateProduct(context.Background(), p.ID, inventory.ProductPatch{Price: &negPrice})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	negQty := -3
	err = store.UpdateProduct(context.Background(), p.ID, inventory.ProductPatch{Quantity: &negQty})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	blank := "   "
	err = store.UpdateProduct(context.Background(), p.ID, inventory.ProductPatch{Name: &blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	current := store.ProductByID(p.ID)
	assert.True(t, current.Price.Equal(decimal.NewFromInt(950000)), "el producto no debe mutar")
	assert.Equal(t, 5, current.Quantity)
	assert.Empty(t, store.PriceHistoryByProduct(p.ID), "un parche rechazado no deja historial")
}

func TestUpdateProduct_ParcheVacioRechazado(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	err := store.UpdateProduct(context.Background(), p.ID, inventory.ProductPatch{})
	require.ErrorIs(t, err, domain.ErrEmptyUpdate)
}

func TestDeleteProduct_DevuelveNombrePrevio(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Notebook Dell", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	name, err := store.DeleteProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notebook Dell", name)
	assert.Nil(t, store.ProductByID(p.ID), "el producto eliminado desaparece de las cargas siguientes")
}

func TestClearAllMovements(t *testing.T) {
	db := &fakeDB{}
	p := seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)
	store := newOnlineStore(t, db)

	_, err := store.AddMovement(context.Background(), p.ID, entity.MovementEntrada, 2, "Compra")
	require.NoError(t, err)
	require.NotEmpty(t, store.Movements())

	require.NoError(t, store.ClearAllMovements(context.Background()))
	assert.Empty(t, store.Movements(), "el borrado masivo vacía todo el historial")
}

func TestCategorySummaries(t *testing.T) {
	db := &fakeDB{}
	seedProduct(db, "P-1", "Notebook Dell", "Notebooks", 100, 60, 2, 1) // valor 200, costo 120
	seedProduct(db, "P-2", "Notebook HP", "Notebooks", 50, 30, 2, 1)   // valor 100, costo 60
	seedProduct(db, "P-3", "Teclado", "Periféricos", 10, 5, 1, 1)
	store := newOnlineStore(t, db)

	summaries := store.CategorySummaries()
	require.Len(t, summaries, 2)
	assert.Equal(t, "Notebooks", summaries[0].Name, "el orden es alfabético por categoría")

	nb := summaries[0]
	assert.Equal(t, 2, nb.ProductCount)
	assert.Equal(t, 4, nb.TotalQuantity)
	assert.True(t, nb.TotalValue.Equal(decimal.NewFromInt(300)))
	assert.True(t, nb.TotalCost.Equal(decimal.NewFromInt(180)))
	assert.True(t, nb.MarginPercent.Equal(decimal.NewFromInt(40)),
		"(300-180)/300 × 100 = 40")
}

// ── modo offline ──────────────────────────────────────────────────────────────

func newOfflineStore(t *testing.T) *inventory.Store {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	db := &fakeDB{}
	store := inventory.NewStore(log, inventory.Deps{
		Tx:        &fakeTxRunner{db},
		Prober:    &fakeProber{inventory.ProbeResult{Message: "error de red; verifica la conexión y la URL de la base de datos", ErrorType: inventory.ErrTypeNetwork}},
		Products:  &fakeProductRepo{db},
		Movements: &fakeMovementRepo{db},
		History:   &fakeHistoryRepo{db},
	})
	store.Initialize(context.Background())
	return store
}

func TestOffline_SondaFallidaCargaDatosDeMuestra(t *testing.T) {
	store := newOfflineStore(t)

	status := store.Status()
	assert.Equal(t, inventory.StatusOffline, status.Status)
	assert.Equal(t, inventory.ErrTypeNetwork, status.ErrorType)

	products := store.Products()
	require.Len(t, products, 3, "el modo offline puebla los tres productos de muestra")
	assert.Empty(t, store.Movements())

	assert.NotEmpty(t, store.LowStockAlerts(),
		"las derivaciones siguen funcionando sobre los datos de muestra")
	assert.False(t, store.TotalInventoryValue().IsZero())
}

func TestOffline_EscriturasRechazadas(t *testing.T) {
	store := newOfflineStore(t)
	demo := store.Products()[0]

	_, err := store.AddMovement(context.Background(), demo.ID, entity.MovementEntrada, 1, "Compra")
	require.ErrorIs(t, err, domain.ErrOffline)

	_, err = store.AddProduct(context.Background(), inventory.ProductInput{
		Code: "X", Name: "X", Category: "X",
		Price: decimal.NewFromInt(1), Cost: decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrOffline)

	_, err = store.DeleteProduct(context.Background(), demo.ID)
	require.ErrorIs(t, err, domain.ErrOffline)

	require.ErrorIs(t, store.ClearAllMovements(context.Background()), domain.ErrOffline)
}

func TestOffline_ConfigInvalida(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store := inventory.NewStore(log, inventory.Deps{ConfigErr: assert.AnError})
	store.Initialize(context.Background())

	status := store.Status()
	assert.Equal(t, inventory.StatusOffline, status.Status)
	assert.Equal(t, inventory.ErrTypeConfig, status.ErrorType)
	assert.Len(t, store.Products(), 3)
}

func TestRetry_ReconectaTrasFallo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	db := &fakeDB{}
	seedProduct(db, "P-1", "Notebook", "Notebooks", 950000, 690000, 5, 2)

	prober := &fakeProber{inventory.ProbeResult{Message: "timeout", ErrorType: inventory.ErrTypeNetwork}}
	store := inventory.NewStore(log, inventory.Deps{
		Tx:        &fakeTxRunner{db},
		Prober:    prober,
		Products:  &fakeProductRepo{db},
		Movements: &fakeMovementRepo{db},
		History:   &fakeHistoryRepo{db},
	})
	store.Initialize(context.Background())
	require.Equal(t, inventory.StatusOffline, store.Status().Status)

	prober.result = inventory.ProbeResult{Success: true}
	store.Retry(context.Background())

	assert.Equal(t, inventory.StatusConnected, store.Status().Status)
	require.Len(t, store.Products(), 1, "tras reconectar se cargan los datos reales, no los de muestra")
	assert.Equal(t, "P-1", store.Products()[0].Code)
}
