package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"game-library/api"
	"game-library/internal/core/model"
	"log/slog"
	"math"
	"net/http"
)

type CatalogService interface {
	List(ctx context.Context, q model.Query) ([]model.GameCard, error)
	Get(ctx context.Context, id string, v model.Visibility) (model.Game, error)
}

type AdminService interface {
	AddGame(ctx context.Context, in model.RawGame) (model.Game, error)
	UpdateGame(ctx context.Context, id string, in model.RawGame) (model.Game, error)
	ArchiveGame(ctx context.Context, id string) (model.Game, error)
	RestoreGame(ctx context.Context, id string) (model.Game, error)
}

type ImageValidator interface {
	Validate(f *model.ImageFile, meta model.ImageMetadata) (model.Image, error)
}

// Handler implements api.ServerInterface on top of the catalog and admin
// services.
type Handler struct {
	Catalog CatalogService
	Admin   AdminService
	Images  ImageValidator
	Vocab   *Vocabulary
	log     *slog.Logger
}

func NewHTTPHandler(catalog CatalogService, admin AdminService, images ImageValidator, vocab *Vocabulary, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{Catalog: catalog, Admin: admin, Images: images, Vocab: vocab, log: logger}
}

var _ api.ServerInterface = (*Handler)(nil)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string, details map[string]interface{}) {
	e := api.Error{}
	e.Error.Code = code
	e.Error.Message = msg
	e.Error.Details = details
	writeJSON(w, status, e)
}

// ParamErrorHandler renders parameter binding failures with the error envelope.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var pe *api.InvalidParamFormatError
	if errors.As(err, &pe) {
		writeError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), map[string]interface{}{"param": pe.ParamName})
		return
	}
	writeError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
}

var statusByCode = map[model.Code]int{
	model.CodeMissingMandatoryField:      http.StatusBadRequest,
	model.CodeInvalidEnumValue:           http.StatusBadRequest,
	model.CodeInvalidPlayerRange:         http.StatusBadRequest,
	model.CodeAtLeastOneImageRequired:    http.StatusBadRequest,
	model.CodeValidationFailed:           http.StatusBadRequest,
	model.CodeInvalidGameData:            http.StatusBadRequest,
	model.CodeEmptyFilterValues:          http.StatusBadRequest,
	model.CodeInvalidFilterValue:         http.StatusBadRequest,
	model.CodeUnsupportedSortMode:        http.StatusBadRequest,
	model.CodeMissingArchiveFlag:         http.StatusBadRequest,
	model.CodeUnsupportedImageFormat:     http.StatusBadRequest,
	model.CodeImageTooLarge:              http.StatusRequestEntityTooLarge,
	model.CodeMissingAttributionMetadata: http.StatusBadRequest,
	model.CodeCorruptedImage:             http.StatusBadRequest,
	model.CodeGameNotFound:               http.StatusNotFound,
	model.CodeGameArchivedNotVisible:     http.StatusNotFound,
	model.CodeDuplicateGameID:            http.StatusConflict,
	model.CodeGameAlreadyArchived:        http.StatusConflict,
	model.CodeGameNotArchived:            http.StatusConflict,
	model.CodeDataLoadFailure:            http.StatusBadGateway,
	model.CodeOperationFailed:            http.StatusBadGateway,
}

// writeDomainError maps a catalog error to its HTTP status. The code of the
// outermost error is kept so clients can branch on it; for OPERATION_FAILED the
// underlying persistence code is reported as a detail.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var e *model.Error
	if !errors.As(err, &e) {
		h.log.ErrorContext(r.Context(), "unexpected error", "err", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
		return
	}
	status, ok := statusByCode[e.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	details := map[string]interface{}{}
	if e.GameID != "" {
		details["id"] = e.GameID
	}
	if e.Field != "" {
		details["field"] = e.Field
	}
	if e.FilterName != "" {
		details["filter"] = e.FilterName
	}
	if e.SortMode != "" {
		details["sort"] = e.SortMode
	}
	if e.Value != "" {
		details["value"] = e.Value
	}
	if len(e.Validation) > 0 {
		errs := make([]map[string]string, 0, len(e.Validation))
		for _, v := range e.Validation {
			errs = append(errs, map[string]string{"code": string(v.Code), "field": v.Field, "message": v.Message})
		}
		details["errors"] = errs
	}
	if cause := model.CodeOf(e.Err); cause != "" {
		details["cause"] = string(cause)
		if cause == model.CodeWriteConflict {
			status = http.StatusConflict
		}
	}
	if len(details) == 0 {
		details = nil
	}
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", "code", e.Code, "err", err)
	}
	writeError(w, status, string(e.Code), e.Message, details)
}

// toQuery turns bound query parameters into a catalog query. A player-count
// filter with a single bound is open on the other side.
func toQuery(v model.Visibility, p api.ListGamesParams) model.Query {
	q := model.Query{Visibility: v}
	if p.PlayersMin != nil || p.PlayersMax != nil {
		pc := &model.PlayerCountFilter{MinPlayers: 0, MaxPlayers: math.MaxInt32}
		if p.PlayersMin != nil {
			pc.MinPlayers = *p.PlayersMin
		}
		if p.PlayersMax != nil {
			pc.MaxPlayers = *p.PlayersMax
		}
		q.Filters.PlayerCount = pc
	}
	if p.Duration != nil {
		q.Filters.PlayDuration = &model.ValuesFilter[model.PlayDuration]{Values: convert[model.PlayDuration](*p.Duration)}
	}
	if p.Complexity != nil {
		q.Filters.FirstPlayComplexity = &model.ValuesFilter[model.Complexity]{Values: convert[model.Complexity](*p.Complexity)}
	}
	if p.Category != nil {
		q.Filters.Categories = &model.ValuesFilter[string]{Values: *p.Category}
	}
	if p.Mechanic != nil {
		q.Filters.Mechanics = &model.ValuesFilter[string]{Values: *p.Mechanic}
	}
	q.Filters.HasAwards = p.HasAwards != nil && *p.HasAwards
	q.Filters.FavoriteOnly = p.FavoriteOnly != nil && *p.FavoriteOnly
	if p.Sort != nil {
		q.Sort = model.SortMode(*p.Sort)
	}
	return q
}

func convert[T ~string](in []string) []T {
	out := make([]T, 0, len(in))
	for _, s := range in {
		out = append(out, T(s))
	}
	return out
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, v model.Visibility, params api.ListGamesParams) {
	cards, err := h.Catalog.List(r.Context(), toQuery(v, params))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": cards, "total": len(cards)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id string, v model.Visibility) {
	g, err := h.Catalog.Get(r.Context(), id, v)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request, params api.ListGamesParams) {
	h.list(w, r, model.Visitor, params)
}

func (h *Handler) GetGameById(w http.ResponseWriter, r *http.Request, id string) {
	h.get(w, r, id, model.Visitor)
}

func (h *Handler) AdminListGames(w http.ResponseWriter, r *http.Request, params api.ListGamesParams) {
	h.list(w, r, model.Admin, params)
}

func (h *Handler) AdminGetGameById(w http.ResponseWriter, r *http.Request, id string) {
	h.get(w, r, id, model.Admin)
}

// decodeGame reads a raw record body and applies the form vocabulary.
func (h *Handler) decodeGame(w http.ResponseWriter, r *http.Request) (model.RawGame, bool) {
	var raw model.RawGame
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object", nil)
		return nil, false
	}
	if h.Vocab != nil {
		if errs := h.Vocab.Check(raw); len(errs) > 0 {
			h.writeDomainError(w, r, model.InvalidGameData("", errs))
			return nil, false
		}
	}
	return raw, true
}

func (h *Handler) AdminAddGame(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.decodeGame(w, r)
	if !ok {
		return
	}
	g, err := h.Admin.AddGame(r.Context(), raw)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/admin/games/"+g.ID)
	writeJSON(w, http.StatusCreated, g)
}

func (h *Handler) AdminUpdateGame(w http.ResponseWriter, r *http.Request, id string) {
	raw, ok := h.decodeGame(w, r)
	if !ok {
		return
	}
	g, err := h.Admin.UpdateGame(r.Context(), id, raw)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *Handler) AdminArchiveGame(w http.ResponseWriter, r *http.Request, id string) {
	g, err := h.Admin.ArchiveGame(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *Handler) AdminRestoreGame(w http.ResponseWriter, r *http.Request, id string) {
	g, err := h.Admin.RestoreGame(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

type validateImageRequest struct {
	Filename    string  `json:"filename"`
	ContentType string  `json:"contentType"`
	SizeInBytes *int64  `json:"sizeInBytes"`
	Source      *string `json:"source"`
	Attribution *string `json:"attribution"`
}

func (h *Handler) AdminValidateImage(w http.ResponseWriter, r *http.Request) {
	var req validateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object", nil)
		return
	}
	if req.SizeInBytes == nil {
		h.writeDomainError(w, r, model.CorruptedImage("invalid size"))
		return
	}
	f := model.ImageFile{Filename: req.Filename, ContentType: req.ContentType, SizeInBytes: *req.SizeInBytes}
	img, err := h.Images.Validate(&f, model.ImageMetadata{Source: req.Source, Attribution: req.Attribution})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, img)
}
