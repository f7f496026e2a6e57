package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/snack-api/internal/dto"
)

// SnackHandler exposes CRUD over snacks.
//
// Each request goes Received → Validated → Executed → Responded:
// decode the payload into a dto, let the dto check field presence, call the
// service, and translate the result (or error) into a status code.
type SnackHandler struct {
	snacks SnackService
	logger *slog.Logger
}

func NewSnackHandler(snacks SnackService, logger *slog.Logger) *SnackHandler {
	return &SnackHandler{snacks: snacks, logger: logger}
}

// Routes mounts under /snacks.
//
//	GET    /      → list
//	POST   /      → create
//	GET    /{id}  → get
//	PUT    /{id}  → update (full replace)
//	DELETE /{id}  → delete
func (h *SnackHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}

// HandleList returns every snack ordered by id; an empty store gives [].
func (h *SnackHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	snacks, err := h.snacks.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewSnackListResponse(snacks))
}

// HandleGet returns one snack or 404.
func (h *SnackHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "snack")
	if err != nil {
		writeError(w, err)
		return
	}

	snack, err := h.snacks.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewSnackResponse(snack))
}

// HandleCreate stores a new snack and answers 201 with its wire form.
func (h *SnackHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSnackRequest(r)
	if err != nil {
		h.logger.Debug("rejected snack payload", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	snack, err := h.snacks.Create(r.Context(), *req.Title, *req.Body, *req.Author)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewSnackResponse(snack))
}

// HandleUpdate replaces every field of an existing snack.
//
// The {id} is resolved first, so a malformed id is 404 whatever the body.
// A well-formed id with a malformed body is 400; the service then reports
// a missing snack as 404 before judging the author.
func (h *SnackHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "snack")
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := decodeSnackRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	snack, err := h.snacks.Update(r.Context(), id, *req.Title, *req.Body, *req.Author)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewSnackResponse(snack))
}

// HandleDelete answers 204 with no body, or 404.
func (h *SnackHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "snack")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.snacks.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeSnackRequest(r *http.Request) (*dto.SnackRequest, error) {
	var req dto.SnackRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}
