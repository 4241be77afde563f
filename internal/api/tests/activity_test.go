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

func getItem(t *testing.T, testCtx *testutils.TestContext, token, itemID string) models.InventoryItem {
	t.Helper()
	w := testutils.PerformRequest(testCtx.Router, "GET", "/api/inventory/"+itemID, nil, testutils.AuthHeaders(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func TestCreateActivityConsumesInventory(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "East Paddock", Area: "8 ha", City: "Shepparton",
	})
	item := createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Urea", Category: models.CategoryFertilizers,
		Quantity: float64Ptr(100), Unit: "kg", Price: float64Ptr(0.8),
		Supplier: "AgriCo", StockLevel: 100,
	})

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/activities", models.CreateActivityRequest{
		Farm:        farm.ID,
		Type:        models.ActivityFertilizing,
		Description: "Spread urea on east paddock",
		Date:        "2025-04-01",
		InventoryItems: []models.ActivityLineRequest{
			{Item: item.ID, Quantity: 20, Unit: "kg"},
		},
	}, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var activity models.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activity))
	assert.Equal(t, models.StatusPlanned, activity.Status)
	require.Len(t, activity.InventoryItems, 1)
	assert.Equal(t, 20.0, activity.InventoryItems[0].Quantity)
	require.NotNil(t, activity.InventoryItems[0].Item)
	require.NotNil(t, activity.Farm)
	assert.Equal(t, farm.ID, activity.Farm.ID)

	// Stock decremented and the farm joined the item's farm set.
	after := getItem(t, testCtx, testCtx.UserToken, item.ID)
	assert.Equal(t, 80.0, after.Quantity)
	assert.Contains(t, []string(after.Farms), farm.ID)
}

func TestCreateActivityInsufficientStockRollsBack(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "West Paddock", Area: "6 ha", City: "Horsham",
	})
	seeds := createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Canola Seeds", Category: models.CategorySeeds,
		Quantity: float64Ptr(30), Unit: "kg", Price: float64Ptr(3),
		Supplier: "SeedCo", StockLevel: 30,
	})
	fertilizer := createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Phosphate", Category: models.CategoryFertilizers,
		Quantity: float64Ptr(5), Unit: "kg", Price: float64Ptr(1.5),
		Supplier: "AgriCo", StockLevel: 5,
	})

	// Second line overdraws, so the first line's decrement must be undone.
	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/activities", models.CreateActivityRequest{
		Farm:        farm.ID,
		Type:        models.ActivityPlanting,
		Description: "Sow canola",
		InventoryItems: []models.ActivityLineRequest{
			{Item: seeds.ID, Quantity: 10, Unit: "kg"},
			{Item: fertilizer.ID, Quantity: 50, Unit: "kg"},
		},
	}, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	assert.Equal(t, 30.0, getItem(t, testCtx, testCtx.UserToken, seeds.ID).Quantity)
	assert.Equal(t, 5.0, getItem(t, testCtx, testCtx.UserToken, fertilizer.ID).Quantity)

	// No activity was recorded either.
	w = testutils.PerformRequest(testCtx.Router, "GET", "/api/activities", nil, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusOK, w.Code)
	var activities []models.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	assert.Empty(t, activities)
}

func TestCreateActivityUnknownItem(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "South Paddock", Area: "4 ha", City: "Sale",
	})

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/activities", models.CreateActivityRequest{
		Farm:        farm.ID,
		Type:        models.ActivityIrrigation,
		Description: "Water the field",
		InventoryItems: []models.ActivityLineRequest{
			{Item: "00000000-0000-0000-0000-000000000000", Quantity: 1, Unit: "piece"},
		},
	}, testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateActivityForeignFarm(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "Mine", Area: "1 ha", City: "Colac",
	})

	_, otherToken := testCtx.RegisterUser(t, "other@example.com", "Other User")

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/activities", models.CreateActivityRequest{
		Farm:        farm.ID,
		Type:        models.ActivityHarvesting,
		Description: "Harvest someone else's field",
	}, testutils.AuthHeaders(otherToken))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateActivityStatus(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farm := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "Main Field", Area: "10 ha", City: "Echuca",
	})
	item := createItem(t, testCtx, testCtx.UserToken, models.CreateInventoryItemRequest{
		Name: "Pesticide X", Category: models.CategoryPesticides,
		Quantity: float64Ptr(40), Unit: "l", Price: float64Ptr(12),
		Supplier: "ChemCo", StockLevel: 40,
	})

	w := testutils.PerformRequest(testCtx.Router, "POST", "/api/activities", models.CreateActivityRequest{
		Farm:        farm.ID,
		Type:        models.ActivityPestControl,
		Description: "Spray for aphids",
		InventoryItems: []models.ActivityLineRequest{
			{Item: item.ID, Quantity: 5, Unit: "l"},
		},
	}, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusCreated, w.Code)

	var activity models.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activity))

	w = testutils.PerformRequest(testCtx.Router, "PATCH", "/api/activities/"+activity.ID+"/status",
		models.UpdateActivityStatusRequest{Status: models.StatusCompleted},
		testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.Len(t, updated.InventoryItems, 1)

	// Status changes never touch stock.
	assert.Equal(t, 35.0, getItem(t, testCtx, testCtx.UserToken, item.ID).Quantity)

	// Unknown status labels are rejected.
	w = testutils.PerformRequest(testCtx.Router, "PATCH", "/api/activities/"+activity.ID+"/status",
		models.UpdateActivityStatusRequest{Status: "Done"},
		testutils.AuthHeaders(testCtx.UserToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFarmActivities(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)
	defer testutils.CleanupTestContext(testCtx)

	farmA := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "Farm A", Area: "2 ha", City: "Swan Hill",
	})
	farmB := createFarm(t, testCtx, testCtx.UserToken, models.CreateFarmRequest{
		Name: "Farm B", Area: "2 ha", City: "Mildura",
	})

	for _, req := range []models.CreateActivityRequest{
		{Farm: farmA.ID, Type: models.ActivityPlanting, Description: "Plant A", Date: "2025-03-01"},
		{Farm: farmA.ID, Type: models.ActivityIrrigation, Description: "Water A", Date: "2025-03-05"},
		{Farm: farmB.ID, Type: models.ActivityPlanting, Description: "Plant B", Date: "2025-03-02"},
	} {
		w := testutils.PerformRequest(testCtx.Router, "POST", "/api/activities", req, testutils.AuthHeaders(testCtx.UserToken))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := testutils.PerformRequest(testCtx.Router, "GET", "/api/activities/farm/"+farmA.ID, nil, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusOK, w.Code)

	var activities []models.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.Len(t, activities, 2)
	// Newest first.
	assert.Equal(t, "Water A", activities[0].Description)
	assert.Equal(t, "Plant A", activities[1].Description)

	w = testutils.PerformRequest(testCtx.Router, "GET", "/api/activities", nil, testutils.AuthHeaders(testCtx.UserToken))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	assert.Len(t, activities, 3)
}
