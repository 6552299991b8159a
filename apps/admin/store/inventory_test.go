package store

import (
	"testing"

	"toolmart-admin/apps/admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInventoryComputesAvailable(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)

	inv := &model.Inventory{
		ProductID:        p.ID,
		Location:         "A1-3",
		QuantityOnHand:   50,
		QuantityReserved: 5,
		// 传入的 available 应被忽略
		QuantityAvailable: 999,
	}
	require.NoError(t, s.CreateInventory(inv))
	assert.Equal(t, 45, inv.QuantityAvailable)

	got, err := s.GetInventoryByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.QuantityAvailable)
}

func TestCreateInventoryZeroReorderPointPersisted(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)

	// 显式 0 不被列默认值改写，阈值兜底在 LowStockItems 里做
	inv := &model.Inventory{ProductID: p.ID, Location: "A1", ReorderPoint: 0}
	require.NoError(t, s.CreateInventory(inv))

	got, err := s.GetInventoryByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReorderPoint)
}

func TestCreateInventoryRejectsUnknownProduct(t *testing.T) {
	s := newTestStore(t)
	err := s.CreateInventory(&model.Inventory{ProductID: 9999, Location: "A1"})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestUpdateInventoryRecomputesAvailable(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)

	inv := &model.Inventory{ProductID: p.ID, Location: "A1-3", QuantityOnHand: 50, QuantityReserved: 5}
	require.NoError(t, s.CreateInventory(inv))

	reserved := 20
	got, err := s.UpdateInventory(inv.ID, InventoryPatch{QuantityReserved: &reserved})
	require.NoError(t, err)
	assert.Equal(t, 30, got.QuantityAvailable)

	onHand := 10
	got, err = s.UpdateInventory(inv.ID, InventoryPatch{QuantityOnHand: &onHand})
	require.NoError(t, err)
	assert.Equal(t, -10, got.QuantityAvailable)
}

func TestLowStockItems(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p1 := seedProduct(t, s, "DRL-001", cat.ID)
	p2 := seedProduct(t, s, "SAW-002", cat.ID)

	require.NoError(t, s.CreateInventory(&model.Inventory{ProductID: p1.ID, Location: "A1", QuantityOnHand: 8}))
	require.NoError(t, s.CreateInventory(&model.Inventory{ProductID: p2.ID, Location: "A2", QuantityOnHand: 80}))

	// 缺省阈值 10
	rows, err := s.LowStockItems(0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, p1.ID, rows[0].ProductID)

	// 抬高阈值后两条都命中
	rows, err = s.LowStockItems(100)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
