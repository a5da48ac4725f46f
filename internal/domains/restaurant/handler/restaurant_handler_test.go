package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/domains/restaurant/repository"
	"eco-restaurants/internal/domains/restaurant/service"
	"eco-restaurants/internal/infrastructure/lock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewRestaurantService(repository.NewMemoryStore(), lock.NewLocalLocker(), model.DefaultCatalog())
	h := NewRestaurantHandler(svc)

	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func naTelha() map[string]interface{} {
	return map[string]interface{}{
		"name":       "Na Telha",
		"image":      "https://example.com/na-telha.jpg",
		"instagram":  "@natelhabelm",
		"hours":      "Almoço - das 11h às 15h",
		"phones":     []string{"(91) 99315-4021"},
		"categories": []string{"restaurants", "rio-guama"},
		"location":   "9.2 km - Rio Guamá",
		"rating":     4.2,
	}
}

func createRestaurant(t *testing.T, router *gin.Engine, body map[string]interface{}) model.Restaurant {
	t.Helper()
	w, env := do(t, router, http.MethodPost, "/api/restaurants", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var r model.Restaurant
	require.NoError(t, json.Unmarshal(env.Data, &r))
	return r
}

func TestCreateAndGetRestaurant(t *testing.T) {
	router := setupRouter()

	created := createRestaurant(t, router, naTelha())
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Nenhum comentário", created.Comments)

	w, env := do(t, router, http.MethodGet, "/api/restaurants/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var got model.Restaurant
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "@natelhabelm", *got.Instagram)
}

func TestCreateRestaurantErrors(t *testing.T) {
	router := setupRouter()
	createRestaurant(t, router, naTelha())

	dup := naTelha()
	dup["name"] = "NA TELHA"
	w, env := do(t, router, http.MethodPost, "/api/restaurants", dup)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.CodeNameTaken, env.Error.Code)
	assert.Equal(t, "a restaurant with this name already exists", env.Error.Message)

	invalid := naTelha()
	invalid["name"] = "Outro"
	invalid["rating"] = 6
	w, env = do(t, router, http.MethodPost, "/api/restaurants", invalid)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.CodeInvalidArgument, env.Error.Code)

	w, _ = do(t, router, http.MethodPost, "/api/restaurants", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRestaurants(t *testing.T) {
	router := setupRouter()
	createRestaurant(t, router, naTelha())

	vila := naTelha()
	vila["name"] = "Resto Da Vila"
	vila["hasPool"] = true
	vila["categories"] = []string{"restaurants", "piscina"}
	vila["rating"] = 4.4
	createRestaurant(t, router, vila)

	w, env := do(t, router, http.MethodGet, "/api/restaurants?hasPool=true&rating_min=4&category=piscina", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []model.Restaurant
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Resto Da Vila", list[0].Name)

	w, env = do(t, router, http.MethodGet, "/api/restaurants?category=all&search=TELHA", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Na Telha", list[0].Name)

	w, env = do(t, router, http.MethodGet, "/api/restaurants?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Resto Da Vila", list[0].Name)
}

func TestListRestaurantsBadParameters(t *testing.T) {
	router := setupRouter()

	for _, query := range []string{
		"hasPool=maybe",
		"rating_min=high",
		"limit=ten",
		"limit=0",
		"limit=101",
		"skip=-1",
		"rating_max=5.5",
	} {
		t.Run(query, func(t *testing.T) {
			w, env := do(t, router, http.MethodGet, "/api/restaurants?"+query, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, model.CodeInvalidArgument, env.Error.Code)
		})
	}
}

func TestUpdateAndDeleteRestaurant(t *testing.T) {
	router := setupRouter()
	created := createRestaurant(t, router, naTelha())

	w, env := do(t, router, http.MethodPut, "/api/restaurants/"+created.ID, map[string]interface{}{
		"hasPool": true,
		"rating":  4.5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.Restaurant
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.True(t, updated.HasPool)
	assert.Equal(t, 4.5, *updated.Rating)
	assert.Equal(t, "Na Telha", updated.Name)

	w, _ = do(t, router, http.MethodPut, "/api/restaurants/missing", map[string]interface{}{"hasPool": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodDelete, "/api/restaurants/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, router, http.MethodDelete, "/api/restaurants/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, model.CodeRestaurantNotFound, env.Error.Code)
}

func TestSuggestions(t *testing.T) {
	router := setupRouter()
	tokyo := naTelha()
	tokyo["name"] = "Tokyo Temakeria"
	createRestaurant(t, router, tokyo)

	w, env := do(t, router, http.MethodGet, "/api/restaurants/search/suggestions?q=To", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Equal(t, []string{"Tokyo Temakeria"}, names)

	w, env = do(t, router, http.MethodGet, "/api/restaurants/search/suggestions?q=zzz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = do(t, router, http.MethodGet, "/api/restaurants/search/suggestions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsAndCategories(t *testing.T) {
	router := setupRouter()

	w, env := do(t, router, http.MethodGet, "/api/restaurants/stats/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats model.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(0), stats.TotalRestaurants)
	assert.Equal(t, 0.0, stats.PoolPercentage)

	w, env = do(t, router, http.MethodGet, "/api/restaurants/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []model.Category
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 9)
}
