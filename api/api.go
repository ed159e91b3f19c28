// Package api provides primitives to interact with the game library HTTP API.
//
// This file is maintained by hand; it is not generated. Its layout follows
// oapi-codegen's chi-server output (a ServerInterface, a wrapper that binds
// parameters, HandlerFromMux to mount it), so routes and parameter types are
// edited here directly.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ListGamesParams defines parameters for ListGames and AdminListGames.
type ListGamesParams struct {
	// PlayersMin lower bound of the wanted player count.
	PlayersMin *int `form:"players_min,omitempty" json:"players_min,omitempty"`
	// PlayersMax upper bound of the wanted player count.
	PlayersMax   *int      `form:"players_max,omitempty" json:"players_max,omitempty"`
	Duration     *[]string `form:"duration,omitempty" json:"duration,omitempty"`
	Complexity   *[]string `form:"complexity,omitempty" json:"complexity,omitempty"`
	Category     *[]string `form:"category,omitempty" json:"category,omitempty"`
	Mechanic     *[]string `form:"mechanic,omitempty" json:"mechanic,omitempty"`
	HasAwards    *bool     `form:"has_awards,omitempty" json:"has_awards,omitempty"`
	FavoriteOnly *bool     `form:"favorite_only,omitempty" json:"favorite_only,omitempty"`
	Sort         *string   `form:"sort,omitempty" json:"sort,omitempty"`
}

// Error is the error envelope of every non-2xx response.
type Error struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List visible games as cards
	// (GET /api/v1/games)
	ListGames(w http.ResponseWriter, r *http.Request, params ListGamesParams)
	// Get a visible game
	// (GET /api/v1/games/{id})
	GetGameById(w http.ResponseWriter, r *http.Request, id string)
	// List all games as cards, archived included
	// (GET /api/v1/admin/games)
	AdminListGames(w http.ResponseWriter, r *http.Request, params ListGamesParams)
	// Get any game
	// (GET /api/v1/admin/games/{id})
	AdminGetGameById(w http.ResponseWriter, r *http.Request, id string)
	// Add a game
	// (POST /api/v1/admin/games)
	AdminAddGame(w http.ResponseWriter, r *http.Request)
	// Replace a game
	// (PUT /api/v1/admin/games/{id})
	AdminUpdateGame(w http.ResponseWriter, r *http.Request, id string)
	// Archive a game
	// (POST /api/v1/admin/games/{id}/archive)
	AdminArchiveGame(w http.ResponseWriter, r *http.Request, id string)
	// Restore an archived game
	// (POST /api/v1/admin/games/{id}/restore)
	AdminRestoreGame(w http.ResponseWriter, r *http.Request, id string)
	// Validate image metadata
	// (POST /api/v1/admin/images/validate)
	AdminValidateImage(w http.ResponseWriter, r *http.Request)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) bindListParams(w http.ResponseWriter, r *http.Request) (ListGamesParams, bool) {
	var params ListGamesParams
	q := r.URL.Query()
	binds := []struct {
		name string
		dest interface{}
	}{
		{"players_min", &params.PlayersMin},
		{"players_max", &params.PlayersMax},
		{"duration", &params.Duration},
		{"complexity", &params.Complexity},
		{"category", &params.Category},
		{"mechanic", &params.Mechanic},
		{"has_awards", &params.HasAwards},
		{"favorite_only", &params.FavoriteOnly},
		{"sort", &params.Sort},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: b.name, Err: err})
			return params, false
		}
	}
	return params, true
}

func (siw *ServerInterfaceWrapper) bindID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return "", false
	}
	return id, true
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, fn http.HandlerFunc) {
	handler := http.Handler(fn)
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// ListGames operation middleware
func (siw *ServerInterfaceWrapper) ListGames(w http.ResponseWriter, r *http.Request) {
	params, ok := siw.bindListParams(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) { siw.Handler.ListGames(w, r, params) })
}

// GetGameById operation middleware
func (siw *ServerInterfaceWrapper) GetGameById(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) { siw.Handler.GetGameById(w, r, id) })
}

// AdminListGames operation middleware
func (siw *ServerInterfaceWrapper) AdminListGames(w http.ResponseWriter, r *http.Request) {
	params, ok := siw.bindListParams(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) { siw.Handler.AdminListGames(w, r, params) })
}

// AdminGetGameById operation middleware
func (siw *ServerInterfaceWrapper) AdminGetGameById(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) { siw.Handler.AdminGetGameById(w, r, id) })
}

// AdminAddGame operation middleware
func (siw *ServerInterfaceWrapper) AdminAddGame(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.AdminAddGame)
}

// AdminUpdateGame operation middleware
func (siw *ServerInterfaceWrapper) AdminUpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) { siw.Handler.AdminUpdateGame(w, r, id) })
}

// AdminArchiveGame operation middleware
func (siw *ServerInterfaceWrapper) AdminArchiveGame(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) { siw.Handler.AdminArchiveGame(w, r, id) })
}

// AdminRestoreGame operation middleware
func (siw *ServerInterfaceWrapper) AdminRestoreGame(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) { siw.Handler.AdminRestoreGame(w, r, id) })
}

// AdminValidateImage operation middleware
func (siw *ServerInterfaceWrapper) AdminValidateImage(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.AdminValidateImage)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/v1/games", wrapper.ListGames)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/v1/games/{id}", wrapper.GetGameById)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/v1/admin/games", wrapper.AdminListGames)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/v1/admin/games", wrapper.AdminAddGame)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/v1/admin/games/{id}", wrapper.AdminGetGameById)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/api/v1/admin/games/{id}", wrapper.AdminUpdateGame)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/v1/admin/games/{id}/archive", wrapper.AdminArchiveGame)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/v1/admin/games/{id}/restore", wrapper.AdminRestoreGame)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/v1/admin/images/validate", wrapper.AdminValidateImage)
	})

	return r
}
