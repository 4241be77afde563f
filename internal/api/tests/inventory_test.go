package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmsight/server/internal/api/testutils"
	"github.com/farmsight/server/internal/models"
)

func float64Ptr(v float64) *float64 { return &v }
func strPtr(v string) *string       { return &v }

func createItem(t *testing.T, testCtx *testutils.TestContext, token string, req models.CreateInventoryItemRequest) models.InventoryItem {
	t.Helper()
	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/inventory", req, testutils.AuthHeaders(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func TestInventoryCRUD(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "Home Farm", Area: "3 ha", City: "Ballarat",
	})

	item := createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name:              "Urea",
		Category:          models.CategoryFertilizers,
		Quantity:          float64Ptr(100),
		Unit:              "kg",
		Price:             float64Ptr(0.8),
		Supplier:          "AgriCo",
		StockLevel:        100,
		MinimumStockLevel: 10,
		Farms:             []string{farm.ID},
	})
	assert.Equal(t, 100.0, item.Quantity)
	assert.Equal(t, []string{farm.ID}, []string(item.Farms))

	// Partial update.
	w := testutils.PerformRequest(testCtx.Router, "PUT", "/api/inventory/"+item.ID, models.UpdateInventoryItemRequest{
		Price:    float64Ptr(0.95),
		Supplier: strPtr("FarmSupplies"),
	}, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 0.95, updated.Price)
	assert.Equal(t, "FarmSupplies", updated.Supplier)
	assert.Equal(t, 100.0, updated.Quantity)

	// Delete.
	w = testutils.PerformRequest(testCtx.Router, "DELETE", "/api/inventory/"+item.ID, nil, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(testCtx.Router, "GET", "/api/inventory/"+item.ID, nil, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryDuplicateName(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	req := models.CreateInventoryItemRequest{
		Name:     "Wheat Seeds",
		Category: models.CategorySeeds,
		Quantity: float64Ptr(50),
		Unit:     "kg",
		Price:    float64Ptr(2.5),
		Supplier: "SeedCo",
	}
	createItem(t, testCtx, testCtx.UserToken, req)

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/inventory", req, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusConflict, w.Code)

	// A different user can reuse the name.
	_, otherToken := testCtx.RegisterUser(t, "other@example.com", "Other User")
	createItem(t, testCtx, otherToken, req)
}

func TestDeleteConsumedInventoryItem(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "Back Paddock", Area: "5 ha", City: "Albury",
	})
	item := createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Potash", Category: models.CategoryFertilizers,
		Quantity: float64Ptr(60), Unit: "kg", Price: float64Ptr(1.2),
		Supplier: "AgriCo", StockLevel: 60,
	})

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/activities", models.CreateActivityRequest{
		Farm:        farm.ID,
		Type:        models.ActivityFertilizing,
		Description: "Top-dress the back paddock",
		InventoryItems: []models.ActivityLineRequest{
			{Item: item.ID, Quantity: 15, Unit: "kg"},
		},
	}, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// An item consumed by an activity cannot be deleted; the activity log
	// must stay resolvable.
	w = testutils.PerformRequest(testCtx.Router, "DELETE", "/api/inventory/"+item.ID, nil, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Item is referenced by activities", resp.Error)

	// The item and its decremented stock survive the attempt.
	after := getItem(t, testCtx, testCtx.UserToken, item.ID)
	assert.Equal(t, 45.0, after.Quantity)
}

func TestInventoryUnknownFarmLink(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	req := models.CreateInventoryItemRequest{
		Name: "Lime", Category: models.CategoryFertilizers,
		Quantity: float64Ptr(20), Unit: "kg", Price: float64Ptr(0.5),
		Supplier: "AgriCo", StockLevel: 20,
		Farms: []string{"00000000-0000-0000-0000-000000000000"},
	}
	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/inventory", req, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// Another user's farm is just as unknown as a missing one.
	_, otherToken := testCtx.RegisterUser(t, "other@example.com", "Other User")
	foreignFarm := createFarm(t, testCtx, otherToken, models.CreateFarmRequest{
		Name: "Not Yours", Area: "2 ha", City: "Dubbo",
	})

	req.Farms = []string{foreignFarm.ID}
	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/inventory", req, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// Same check on update.
	req.Farms = nil
	item := createItem(t, testCtx, testCtx.UserToken, req)

	w = testutils.PerformRequest(testCtx.Router, "PUT", "/api/inventory/"+item.ID, models.UpdateInventoryItemRequest{
		Farms: &[]string{foreignFarm.ID},
	}, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	assert.Empty(t, []string(getItem(t, testCtx, testCtx.UserToken, item.ID).Farms))
}

func TestInventoryOwnerIsolation(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	item := createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Private Stock", Category: models.CategorySeeds,
		Quantity: float64Ptr(12), Unit: "kg", Price: float64Ptr(2),
		Supplier: "SeedCo", StockLevel: 12,
	})

	_, otherToken := testCtx.RegisterUser(t, "other@example.com", "Other User")

	// A foreign item looks exactly like a missing one.
	existing := testutils.PerformRequest(testCtx.Router, "GET", "/api/inventory/"+item.ID, nil, testutils.AuthHeaders(otherToken))
	missing := testutils.PerformRequest(testCtx.Router, "GET", "/api/inventory/00000000-0000-0000-0000-000000000000", nil, testutils.AuthHeaders(otherToken))
	assert.Equal(t, http.StatusNotFound, existing.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, missing.Body.String(), existing.Body.String())

	// Foreign updates and deletes do not touch the item.
	w := testutils.PerformRequest(testCtx.Router, "PUT", "/api/inventory/"+item.ID, models.UpdateInventoryItemRequest{
		Price: float64Ptr(99),
	}, testutils.AuthHeaders(otherToken))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutils.PerformRequest(testCtx.Router, "DELETE", "/api/inventory/"+item.ID, nil, testutils.AuthHeaders(otherToken))
	assert.Equal(t, http.StatusNotFound, w.Code)

	after := getItem(t, testCtx, testCtx.UserToken, item.ID)
	assert.Equal(t, 2.0, after.Price)

	// Each user only sees their own list.
	w = testutils.PerformRequest(testCtx.Router, "GET", "/api/inventory", nil, testutils.AuthHeaders(otherToken))
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestFarmInventoryFilter(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "Field A", Area: "2 ha", City: "Bendigo",
	})

	createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "In Stock", Category: models.CategorySeeds,
		Quantity: float64Ptr(10), Unit: "kg", Price: float64Ptr(1),
		Supplier: "S", StockLevel: 10, Farms: []string{farm.ID},
	})
	createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Out Of Stock", Category: models.CategorySeeds,
		Quantity: float64Ptr(0), Unit: "kg", Price: float64Ptr(1),
		Supplier: "S", StockLevel: 0, Farms: []string{farm.ID},
	})
	createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Unlinked", Category: models.CategorySeeds,
		Quantity: float64Ptr(5), Unit: "kg", Price: float64Ptr(1),
		Supplier: "S", StockLevel: 5,
	})

	w := testutils.PerformRequest(testCtx.Router, "GET", "/api/inventory/farm/"+farm.ID, nil, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "In Stock", items[0].Name)
}

func TestInventoryValidation(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	// Unknown category.
	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/inventory", models.CreateInventoryItemRequest{
		Name: "Oddity", Category: "Gadgets",
		Quantity: float64Ptr(1), Unit: "kg", Price: float64Ptr(1), Supplier: "S",
	}, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative quantity.
	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/inventory", models.CreateInventoryItemRequest{
		Name: "Negative", Category: models.CategorySeeds,
		Quantity: float64Ptr(-5), Unit: "kg", Price: float64Ptr(1), Supplier: "S",
	}, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing price.
	w = testutils.PerformRequest(testCtx.Router, "POST", "/api/inventory", models.CreateInventoryItemRequest{
		Name: "Free", Category: models.CategorySeeds,
		Quantity: float64Ptr(1), Unit: "kg", Supplier: "S",
	}, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
