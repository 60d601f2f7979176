package httptransport

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/registro/pkg/core"
	"github.com/aretw0/registro/pkg/export"
)

// Store defines the record operations the HTTP API needs.
type Store interface {
	core.Registry
	Len() int
}

// Handler is the thin HTTP layer over the Record Store. It translates
// requests into store calls and store results into envelopes.
type Handler struct {
	store   Store
	exports *export.Set
	logger  *slog.Logger
	version string
}

// New creates a Handler. A nil exports set serves JSON and XML.
func New(store Store, exports *export.Set, logger *slog.Logger, version string) *Handler {
	if exports == nil {
		exports = export.New(export.WithFormats(export.JSON, export.XML))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		store:   store,
		exports: exports,
		logger:  logger,
		version: version,
	}
}

// Register registers the API routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/personas", h.handleList)
		r.Post("/personas", h.handleCreate)
		r.Get("/personas/{control}", h.handleGet)
		r.Put("/personas/{control}", h.handleUpdate)
		r.Delete("/personas/{control}", h.handleDelete)
		r.Get("/exportar/{format}", h.handleExport)
		r.Get("/status", h.handleStatus)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	people := h.store.Find(r.Context(), r.URL.Query().Get("busqueda"))
	writeJSON(w, http.StatusOK, success(people).withCount(len(people)))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	control := chi.URLParam(r, "control")

	p, ok := h.store.GetByControl(r.Context(), control)
	if !ok {
		writeError(w, http.StatusNotFound, core.ErrNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, success(p))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := decodePerson(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid create request",
			"request_id", GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, http.StatusBadRequest, errBodyRequired.Error())
		return
	}

	p, err := h.store.Add(ctx, in.Name, in.Control, in.Specialty)
	if err != nil {
		h.fail(w, r, "failed to add record", err)
		return
	}
	writeJSON(w, http.StatusCreated, success(p).withMessage("record added"))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	control := chi.URLParam(r, "control")

	in, err := decodePerson(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid update request",
			"request_id", GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, http.StatusBadRequest, errBodyRequired.Error())
		return
	}

	p, err := h.store.Update(ctx, control, in.Name, in.Control, in.Specialty)
	if err != nil {
		// An unknown control on update is a client error, not a missing resource.
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, r, "failed to update record", err)
		return
	}
	writeJSON(w, http.StatusOK, success(p).withMessage("record updated"))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	control := chi.URLParam(r, "control")

	if !h.store.Remove(r.Context(), control) {
		writeError(w, http.StatusNotFound, core.ErrNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: statusSuccess, Message: "record deleted"})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := strings.ToLower(chi.URLParam(r, "format"))

	enc, err := h.exports.Lookup(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	people := h.store.Find(ctx, "")
	if export.Format(format) == export.JSON {
		writeJSON(w, http.StatusOK, success(people))
		return
	}

	w.Header().Set("Content-Type", enc.ContentType())
	w.WriteHeader(http.StatusOK)
	if err := enc.Encode(w, people); err != nil {
		// Headers are gone; all that is left is to log.
		h.logger.ErrorContext(ctx, "export failed",
			"request_id", GetRequestID(ctx),
			"format", format,
			"error", err.Error(),
		)
	}
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		Status:  statusSuccess,
		Message: "API running",
		Version: h.version,
	}.withCount(h.store.Len()))
}

// fail writes a domain error as a client error and anything else as a
// generic server error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg,
			"request_id", GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, status, msgInternal)
		return
	}
	h.logger.WarnContext(ctx, msg,
		"request_id", GetRequestID(ctx),
		"error", err.Error(),
	)
	writeError(w, status, err.Error())
}
