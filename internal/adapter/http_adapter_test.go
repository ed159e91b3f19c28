//go:build unit

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"game-library/api"
	"game-library/internal/core"
	"game-library/internal/core/model"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listResponse struct {
	Data  []model.GameCard `json:"data"`
	Total int              `json:"total"`
}

// test wiring: handler + real core services over an in-memory store (no network)
func newServer(t *testing.T, store core.GameStore, loader core.Loader) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))
	vocab, err := LoadVocabulary("")
	require.NoError(t, err)

	catalog := core.NewCatalog(core.NewRepository(loader, logger), core.Sorter{}, core.DefaultCardMapper())
	admin := core.NewAdminService(store, logger)
	h := NewHTTPHandler(catalog, admin, core.NewImageValidator(1024, false), vocab, logger)

	r := chi.NewRouter()
	api.HandlerWithOptions(h, api.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: ParamErrorHandler})
	return r
}

func seededServer(t *testing.T) (http.Handler, *GameRepo) {
	t.Helper()
	archivedGame := testGame("old")
	archivedGame.Archived = true
	long := testGame("long")
	long.PlayDuration = model.PlayDurationLong
	long.MinPlayers, long.MaxPlayers = 3, 6
	long.Favorite = true
	repo := NewGameRepo(testGame("azul"), archivedGame, long)
	return newServer(t, repo, repo), repo
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	r := httptest.NewRequest(method, target, rd)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) api.ErrorBody {
	t.Helper()
	var out api.Error
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out.Error
}

func TestListGames_VisitorHidesArchived(t *testing.T) {
	h, _ := seededServer(t)
	w := do(t, h, http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out listResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "azul", out.Data[0].ID)
	assert.Equal(t, "2-4 joueurs", out.Data[0].PlayerCount)
	assert.True(t, out.Data[0].HasAwards)
	assert.Equal(t, "3-6+ joueurs", out.Data[1].PlayerCount)
}

func TestAdminListGames_IncludesArchived(t *testing.T) {
	h, _ := seededServer(t)
	w := do(t, h, http.MethodGet, "/api/v1/admin/games", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out listResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, 3, out.Total)
}

func TestListGames_FiltersAndSort(t *testing.T) {
	h, _ := seededServer(t)
	w := do(t, h, http.MethodGet, "/api/v1/games?players_min=1&players_max=3&duration=LONG&duration=MEDIUM&sort=PLAY_DURATION_ASC", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out listResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	require.Len(t, out.Data, 2)
	assert.Equal(t, "long", out.Data[0].ID)
	assert.Equal(t, "azul", out.Data[1].ID)

	w = do(t, h, http.MethodGet, "/api/v1/games?players_min=5&favorite_only=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "long", out.Data[0].ID)
}

func TestListGames_BadRequests(t *testing.T) {
	h, _ := seededServer(t)
	cases := map[string]string{
		"/api/v1/games?duration=FOREVER": string(model.CodeInvalidFilterValue),
		"/api/v1/games?sort=TITLE_ASC":   string(model.CodeUnsupportedSortMode),
		"/api/v1/games?players_min=many": "INVALID_PARAMETER",
		"/api/v1/games?has_awards=maybe": "INVALID_PARAMETER",
	}
	for target, code := range cases {
		w := do(t, h, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, code, errorCode(t, w).Code, target)
	}
}

func TestGetGame_Visibility(t *testing.T) {
	h, _ := seededServer(t)

	w := do(t, h, http.MethodGet, "/api/v1/games/azul", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var g model.Game
	require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
	assert.Equal(t, "azul", g.ID)
	assert.Equal(t, "A game", g.Description)

	w = do(t, h, http.MethodGet, "/api/v1/games/old", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := errorCode(t, w)
	assert.Equal(t, string(model.CodeGameArchivedNotVisible), body.Code)
	assert.Equal(t, "old", body.Details["id"])

	w = do(t, h, http.MethodGet, "/api/v1/admin/games/old", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/games/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(model.CodeGameNotFound), errorCode(t, w).Code)
}

func TestAdminAddGame_201_then_409(t *testing.T) {
	h, repo := seededServer(t)
	w := do(t, h, http.MethodPost, "/api/v1/admin/games", testGame("catan"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/admin/games/catan", w.Header().Get("Location"))
	assert.Equal(t, 4, repo.Len())

	w = do(t, h, http.MethodPost, "/api/v1/admin/games", testGame("catan"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(model.CodeDuplicateGameID), errorCode(t, w).Code)
}

func TestAdminAddGame_Validation400(t *testing.T) {
	h, repo := seededServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/admin/games", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := errorCode(t, w)
	assert.Equal(t, string(model.CodeInvalidGameData), body.Code)
	assert.NotEmpty(t, body.Details["errors"])

	w = do(t, h, http.MethodPost, "/api/v1/admin/games", `[1, 2]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JSON", errorCode(t, w).Code)

	g := testGame("wargame")
	g.Categories = []string{"Wargame"}
	w = do(t, h, http.MethodPost, "/api/v1/admin/games", g)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(model.CodeInvalidGameData), errorCode(t, w).Code)
	assert.Equal(t, 3, repo.Len())
}

func TestAdminUpdateGame(t *testing.T) {
	h, repo := seededServer(t)
	g := testGame("azul")
	g.Title = "Azul: Summer Pavilion"

	w := do(t, h, http.MethodPut, "/api/v1/admin/games/azul", g)
	require.Equal(t, http.StatusOK, w.Code)
	stored, err := repo.GetByID(context.Background(), "azul")
	require.NoError(t, err)
	assert.Equal(t, "Azul: Summer Pavilion", stored.Title)

	w = do(t, h, http.MethodPut, "/api/v1/admin/games/ghost", testGame("ghost"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminArchiveRestore(t *testing.T) {
	h, _ := seededServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/admin/games/azul/archive", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var g model.Game
	require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
	assert.True(t, g.Archived)

	w = do(t, h, http.MethodGet, "/api/v1/games/azul", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/admin/games/azul/archive", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(model.CodeGameAlreadyArchived), errorCode(t, w).Code)

	w = do(t, h, http.MethodPost, "/api/v1/admin/games/azul/restore", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/admin/games/azul/restore", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(model.CodeGameNotArchived), errorCode(t, w).Code)
}

type brokenStore struct {
	*GameRepo
	err error
}

func (s brokenStore) Save(context.Context, model.Game) error { return s.err }

func TestAdmin_PersistenceErrors(t *testing.T) {
	repo := NewGameRepo(testGame("azul"))

	h := newServer(t, brokenStore{GameRepo: repo, err: model.WriteConflict("azul")}, repo)
	w := do(t, h, http.MethodPost, "/api/v1/admin/games/azul/archive", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	body := errorCode(t, w)
	assert.Equal(t, string(model.CodeOperationFailed), body.Code)
	assert.Equal(t, string(model.CodeWriteConflict), body.Details["cause"])

	h = newServer(t, brokenStore{GameRepo: repo, err: model.RepositoryUnavailable(nil)}, repo)
	w = do(t, h, http.MethodPost, "/api/v1/admin/games/azul/archive", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, string(model.CodeOperationFailed), errorCode(t, w).Code)
}

func TestListGames_LoadFailure(t *testing.T) {
	repo := NewGameRepo()
	loader := core.LoaderFunc(func(context.Context) ([]model.RawGame, error) {
		return nil, model.RepositoryUnavailable(nil)
	})
	h := newServer(t, repo, loader)
	w := do(t, h, http.MethodGet, "/api/v1/games", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, string(model.CodeDataLoadFailure), errorCode(t, w).Code)
}

func TestAdminValidateImage(t *testing.T) {
	h, _ := seededServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/admin/images/validate",
		map[string]any{"filename": "azul cover.jpg", "contentType": "image/jpeg", "sizeInBytes": 512, "attribution": "Plan B"})
	require.Equal(t, http.StatusOK, w.Code)
	var img model.Image
	require.NoError(t, json.NewDecoder(w.Body).Decode(&img))
	assert.Equal(t, "azul_cover", img.ID)
	require.NotNil(t, img.Attribution)
	assert.Equal(t, "Plan B", *img.Attribution)

	w = do(t, h, http.MethodPost, "/api/v1/admin/images/validate",
		map[string]any{"filename": "a.gif", "contentType": "image/gif", "sizeInBytes": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(model.CodeUnsupportedImageFormat), errorCode(t, w).Code)

	w = do(t, h, http.MethodPost, "/api/v1/admin/images/validate",
		map[string]any{"filename": "a.png", "contentType": "image/png", "sizeInBytes": 4096})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestListGames_ZeroPlayerGameRenders(t *testing.T) {
	h, _ := seededServer(t)
	zero := testGame("zero")
	zero.MinPlayers, zero.MaxPlayers = 0, 0
	w := do(t, h, http.MethodPost, "/api/v1/admin/games", zero)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out listResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, 3, out.Total)
	var found *model.GameCard
	for i := range out.Data {
		if out.Data[i].ID == "zero" {
			found = &out.Data[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "0 joueur", found.PlayerCount)
}

func TestAdminValidateImage_MissingSize(t *testing.T) {
	h, _ := seededServer(t)
	w := do(t, h, http.MethodPost, "/api/v1/admin/images/validate",
		map[string]any{"filename": "cover.jpg", "contentType": "image/jpeg", "attribution": "Plan B"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := errorCode(t, w)
	assert.Equal(t, string(model.CodeCorruptedImage), body.Code)
	assert.Contains(t, body.Message, "invalid size")
}
