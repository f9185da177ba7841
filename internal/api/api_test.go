package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/armoury/internal/api"
	"github.com/mcoot/armoury/internal/api/apierr"
	"github.com/mcoot/armoury/internal/api/response"
	"github.com/mcoot/armoury/internal/factory"
	"github.com/mcoot/armoury/internal/middleware"
	"github.com/mcoot/armoury/internal/model"
	"github.com/mcoot/armoury/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	app := factory.NewTestApp(t)

	return api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		ArmourService: app.ArmourService,
		WeaponService: app.WeaponService,
		SharedService: app.SharedService,
		Metrics:       app.Metrics,
	})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, resp.Error.Code)
}

func TestHealthCheck(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[response.Health](t, rr).Status)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestListArmour(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/armour")

	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[response.ArmourList](t, rr)
	assert.Equal(t, 13, list.Count)
	assert.Equal(t, "padded", list.Armour[0].Name)
}

func TestGetArmour(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/armour/2")

	require.Equal(t, http.StatusOK, rr.Code)
	a := decode[model.Armour](t, rr)
	assert.Equal(t, "leather", a.Name)
	assert.Equal(t, model.ArmourLight, a.Category)
}

func TestGetArmourNotFound(t *testing.T) {
	h := newTestRouter(t)

	assertErrorCode(t, get(t, h, "/api/v1/armour/999"), http.StatusNotFound, apierr.CodeArmourNotFound)
}

func TestSearchArmour(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/armour/search?name=leather")

	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[response.ArmourList](t, rr)
	require.Equal(t, 2, list.Count)
	assert.Equal(t, "leather", list.Armour[0].Name)
	assert.Equal(t, "studded leather", list.Armour[1].Name)
}

func TestSearchRequiresName(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/armour/search",
		"/api/v1/weapons/search?name=",
		"/api/v1/equipment/search?name=%20",
	} {
		t.Run(path, func(t *testing.T) {
			assertErrorCode(t, get(t, h, path), http.StatusBadRequest, apierr.CodeInvalidRequest)
		})
	}
}

func TestDescribeArmour(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/armour/chain%20mail/description")

	require.Equal(t, http.StatusOK, rr.Code)
	d := decode[response.ArmourDescription](t, rr)
	assert.Equal(t, "chain mail", d.Name)
	assert.Contains(t, d.Description, "interlocking metal rings")
}

func TestDescribeArmourNotFound(t *testing.T) {
	h := newTestRouter(t)

	assertErrorCode(t, get(t, h, "/api/v1/armour/chain/description"), http.StatusNotFound, apierr.CodeArmourNotFound)
}

func TestArmourByType(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/armour/by-type")

	require.Equal(t, http.StatusOK, rr.Code)
	grouped := decode[response.ArmourByType](t, rr)
	assert.Len(t, grouped[model.ArmourMedium], 5)
	assert.Len(t, grouped[model.ArmourShield], 1)
}

func TestListWeaponsByCategory(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		category string
		count    int
	}{
		{"", 37},
		{"simple", 14},
		{"Martial", 23},
		{"melee", 28},
		{"ranged", 9},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			rr := get(t, h, "/api/v1/weapons?category="+tt.category)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.count, decode[response.WeaponList](t, rr).Count)
		})
	}
}

func TestListWeaponsByProperty(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/weapons?category=simple&property=thrown")

	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[response.WeaponList](t, rr)
	names := make([]string, 0, list.Count)
	for _, w := range list.Weapons {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{"Dagger", "Handaxe", "Javelin", "Light hammer", "Spear", "Dart"}, names)
}

func TestListWeaponsRejectsUnknownFilters(t *testing.T) {
	h := newTestRouter(t)

	assertErrorCode(t, get(t, h, "/api/v1/weapons?category=exotic"), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertErrorCode(t, get(t, h, "/api/v1/weapons?property=glowing"), http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestGetWeapon(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/weapons/1")

	require.Equal(t, http.StatusOK, rr.Code)
	w := decode[model.Weapon](t, rr)
	assert.Equal(t, "Club", w.Name)
	assert.Equal(t, []model.WeaponPropertyType{model.PropertyLight}, w.Properties)
}

func TestGetWeaponNotFound(t *testing.T) {
	h := newTestRouter(t)

	assertErrorCode(t, get(t, h, "/api/v1/weapons/999"), http.StatusNotFound, apierr.CodeWeaponNotFound)
}

func TestNonNumericIDIsNotRouted(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/v1/weapons/club").Code)
}

func TestWeaponTable(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/weapons/table")

	require.Equal(t, http.StatusOK, rr.Code)
	table := decode[response.WeaponTable](t, rr)
	require.Len(t, table.Rows, 37)
	dagger := table.Rows[1]
	assert.Equal(t, "Dagger", dagger.Name)
	require.NotNil(t, dagger.Damage)
	assert.Equal(t, "1d4 piercing damage", *dagger.Damage)
	assert.Equal(t, []string{"finesse", "light", "thrown (range 20/60)"}, dagger.Properties)
}

func TestWeaponProperties(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/weapons/properties")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[response.WeaponProperties](t, rr).Properties, len(model.AllWeaponPropertyTypes))

	rr = get(t, h, "/api/v1/weapons/properties/reach")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.PropertyReach, decode[model.WeaponProperty](t, rr).Name)

	assertErrorCode(t, get(t, h, "/api/v1/weapons/properties/glowing"), http.StatusNotFound, apierr.CodePropertyNotFound)
}

func TestSearchEquipment(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/equipment/search?name=sh")

	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[response.EquipmentSearch](t, rr)
	require.Len(t, result.Armour, 2)
	assert.Equal(t, "chain shirt", result.Armour[0].Name)
	require.Len(t, result.Weapons, 2)
	assert.Equal(t, "Shortbow", result.Weapons[0].Name)
}

func TestEquipmentCosts(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/equipment/costs")

	require.Equal(t, http.StatusOK, rr.Code)
	costs := decode[response.EquipmentCosts](t, rr)
	assert.Len(t, costs.Armour, 13)
	assert.Len(t, costs.Weapons, 37)
	assert.Equal(t, model.Cost("5 gp"), costs.Armour[0].Cost)
}

func TestEquipmentByType(t *testing.T) {
	h := newTestRouter(t)

	rr := get(t, h, "/api/v1/equipment/by-type")

	require.Equal(t, http.StatusOK, rr.Code)
	grouped := decode[response.EquipmentByType](t, rr)
	assert.Len(t, grouped.Armour[model.ArmourHeavy], 4)
	assert.Len(t, grouped.Weapons[model.WeaponMartialRanged], 5)
}
