package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restock-api/internal/application/dto"
	"github.com/jhoicas/Restock-api/internal/application/inventory"
	"github.com/jhoicas/Restock-api/internal/domain"
	"github.com/jhoicas/Restock-api/internal/domain/entity"
	"github.com/jhoicas/Restock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	for _, it := range r.items {
		if it.SKU == item.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(locationID string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if locationID != "" && it.LocationID != locationID {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) ListLowStock(locationID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if locationID != "" && it.LocationID != locationID {
			continue
		}
		if it.Quantity <= it.ReorderLevel || it.Status == entity.ItemStatusCritical {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListExpiring(locationID string, days int) ([]*entity.Item, error) {
	horizon := time.Now().AddDate(0, 0, days)
	var out []*entity.Item
	for _, it := range r.items {
		if locationID != "" && it.LocationID != locationID {
			continue
		}
		if !it.ExpiryDate.Before(time.Now().Truncate(24*time.Hour)) && !it.ExpiryDate.After(horizon) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeAlertRepo struct {
	alerts map[string]*entity.Alert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[string]*entity.Alert)}
}

func (r *fakeAlertRepo) Create(alert *entity.Alert) error {
	cp := *alert
	r.alerts[alert.ID] = &cp
	return nil
}

func (r *fakeAlertRepo) GetByID(id string) (*entity.Alert, error) {
	a, ok := r.alerts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAlertRepo) ListUnresolved(locationID, severity string, limit, offset int) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range r.alerts {
		if a.Resolved {
			continue
		}
		if locationID != "" && a.LocationID != locationID {
			continue
		}
		if severity != "" && a.Severity != severity {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAlertRepo) FindUnresolvedByItemAndType(itemID, alertType string) (*entity.Alert, error) {
	for _, a := range r.alerts {
		if !a.Resolved && a.ItemID == itemID && a.Type == alertType {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) Update(alert *entity.Alert) error {
	if _, ok := r.alerts[alert.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *alert
	r.alerts[alert.ID] = &cp
	return nil
}

func (r *fakeAlertRepo) Delete(id string) error {
	delete(r.alerts, id)
	return nil
}

func (r *fakeAlertRepo) DeleteByItem(itemID string) error {
	for id, a := range r.alerts {
		if a.ItemID == itemID {
			delete(r.alerts, id)
		}
	}
	return nil
}

// fakeTxRunner ejecuta el closure directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	items  *fakeItemRepo
	alerts *fakeAlertRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.AlertRepository) error) error {
	return fn(r.items, r.alerts)
}

func newTestUseCase() (*inventory.UseCase, *fakeItemRepo, *fakeAlertRepo) {
	items := newFakeItemRepo()
	alertRepo := newFakeAlertRepo()
	uc := inventory.NewUseCase(items, &fakeTxRunner{items: items, alerts: alertRepo})
	return uc, items, alertRepo
}

func createReq(name, sku string, qty, reorder int, expiry time.Time) dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:         name,
		SKU:          sku,
		Quantity:     qty,
		ReorderLevel: reorder,
		UnitPrice:    decimal.NewFromFloat(2.50),
		Unit:         "kg",
		ExpiryDate:   expiry,
		LocationID:   "loc-1",
	}
}

func intPtr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Artículo sano: stock holgado y vencimiento lejano → persiste sin alertas.
func TestCreate_ItemSano_SinAlertas(t *testing.T) {
	uc, items, alertRepo := newTestUseCase()

	out, err := uc.Create(context.Background(), createReq("Harina", "HAR-001", 100, 20, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.ItemStatusGood, out.Status, "status por defecto debe ser good")
	assert.Equal(t, "general", out.Category, "category por defecto debe ser general")
	assert.Len(t, items.items, 1)
	assert.Empty(t, alertRepo.alerts, "un artículo sano no debe generar alertas")
}

// Stock en el punto de reorden → una alerta low_stock estampada con el artículo.
func TestCreate_StockBajo_GeneraAlerta(t *testing.T) {
	uc, _, alertRepo := newTestUseCase()

	out, err := uc.Create(context.Background(), createReq("Tomate", "TOM-001", 5, 30, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)

	require.Len(t, alertRepo.alerts, 1)
	for _, a := range alertRepo.alerts {
		assert.Equal(t, entity.AlertTypeLowStock, a.Type)
		assert.Equal(t, entity.SeverityWarning, a.Severity)
		assert.Equal(t, out.ID, a.ItemID, "la alerta debe quedar ligada al artículo")
		assert.Equal(t, "loc-1", a.LocationID, "la alerta hereda la sede del artículo")
		assert.False(t, a.Resolved)
	}
}

// SKU repetido → domain.ErrDuplicate y sin efectos secundarios.
func TestCreate_SKUDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, items, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, createReq("Harina", "HAR-001", 100, 20, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)

	_, err = uc.Create(ctx, createReq("Harina premium", "HAR-001", 50, 10, time.Now().AddDate(0, 6, 0)))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, items.items, 1, "el segundo artículo no debe persistirse")
}

// Cantidades negativas → domain.ErrInvalidInput.
func TestCreate_CantidadNegativa_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), createReq("Harina", "HAR-002", -1, 20, time.Now().AddDate(0, 6, 0)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Status fuera del conjunto cerrado → domain.ErrInvalidInput.
func TestCreate_StatusInvalido_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := createReq("Harina", "HAR-003", 100, 20, time.Now().AddDate(0, 6, 0))
	in.Status = "urgente"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Update(context.Background(), "11111111-1111-1111-1111-111111111111", dto.UpdateItemRequest{Quantity: intPtr(5)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Bajar la cantidad bajo el punto de reorden en un update dispara la alerta.
func TestUpdate_BajaStock_GeneraAlerta(t *testing.T) {
	uc, _, alertRepo := newTestUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, createReq("Arroz", "ARR-001", 100, 20, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)
	require.Empty(t, alertRepo.alerts)

	updated, err := uc.Update(ctx, out.ID, dto.UpdateItemRequest{Quantity: intPtr(10)})
	require.NoError(t, err)

	assert.Equal(t, 10, updated.Quantity)
	assert.Len(t, alertRepo.alerts, 1, "bajar del punto de reorden debe generar una alerta")
}

// Dos evaluaciones consecutivas con el mismo tipo de alerta activa no duplican:
// se refresca la existente (mensaje y severidad) y el conteo se mantiene en 1.
func TestUpdate_AlertaActivaMismoTipo_RefrescaSinDuplicar(t *testing.T) {
	uc, _, alertRepo := newTestUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, createReq("Tomate", "TOM-001", 5, 30, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)
	require.Len(t, alertRepo.alerts, 1)

	var firstID, firstMsg string
	for id, a := range alertRepo.alerts {
		firstID, firstMsg = id, a.Message
	}

	// La cantidad sigue bajo el punto de reorden: misma alerta, mensaje nuevo.
	_, err = uc.Update(ctx, out.ID, dto.UpdateItemRequest{Quantity: intPtr(3)})
	require.NoError(t, err)

	require.Len(t, alertRepo.alerts, 1, "no debe insertarse una alerta duplicada")
	refreshed := alertRepo.alerts[firstID]
	require.NotNil(t, refreshed, "debe conservarse la alerta original")
	assert.NotEqual(t, firstMsg, refreshed.Message, "el mensaje debe reflejar la cantidad nueva")
	assert.Contains(t, refreshed.Message, "Current quantity: 3")
}

// Una alerta ya resuelta no bloquea la creación de una nueva del mismo tipo.
func TestUpdate_AlertaResuelta_PermiteNuevaAlerta(t *testing.T) {
	uc, _, alertRepo := newTestUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, createReq("Tomate", "TOM-001", 5, 30, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)
	require.Len(t, alertRepo.alerts, 1)

	for _, a := range alertRepo.alerts {
		a.Resolved = true
	}

	_, err = uc.Update(ctx, out.ID, dto.UpdateItemRequest{Quantity: intPtr(2)})
	require.NoError(t, err)

	assert.Len(t, alertRepo.alerts, 2, "resuelta la anterior, debe crearse una alerta nueva")
}

func TestUpdate_CantidadNegativa_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, createReq("Arroz", "ARR-001", 100, 20, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)

	_, err = uc.Update(ctx, out.ID, dto.UpdateItemRequest{Quantity: intPtr(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Borrar el artículo arrastra sus alertas asociadas.
func TestDelete_EliminaAlertasAsociadas(t *testing.T) {
	uc, items, alertRepo := newTestUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, createReq("Tomate", "TOM-001", 5, 30, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)
	require.Len(t, alertRepo.alerts, 1)

	require.NoError(t, uc.Delete(ctx, out.ID))

	assert.Empty(t, items.items)
	assert.Empty(t, alertRepo.alerts, "las alertas del artículo deben eliminarse con él")
}

func TestDelete_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	err := uc.Delete(context.Background(), "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

// La consulta de stock bajo incluye artículos con status critical manual aunque
// su cantidad esté sobre el punto de reorden (el OR es intencional).
func TestListLowStock_IncluyeStatusCriticalManual(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, createReq("Harina", "HAR-001", 100, 20, time.Now().AddDate(0, 6, 0)))
	require.NoError(t, err)

	in := createReq("Aceite", "ACE-001", 100, 20, time.Now().AddDate(0, 6, 0))
	in.Status = entity.ItemStatusCritical
	_, err = uc.Create(ctx, in)
	require.NoError(t, err)

	out, err := uc.ListLowStock("")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "ACE-001", out[0].SKU)
}

func TestGetByID_NoExiste_RetornaNil(t *testing.T) {
	uc, _, _ := newTestUseCase()

	out, err := uc.GetByID("11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Nil(t, out)
}
