package post

import (
	"errors"
	"net/http"
	"strconv"

	"social-feed-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func RegisterRoutes(mux *http.ServeMux, svc Service) {
	h := &Handler{svc: svc}
	mux.Handle("GET /api/posts", httpx.Wrap(h.list))
	mux.Handle("POST /api/posts", httpx.Wrap(h.create))
	mux.Handle("DELETE /api/posts/{id}", httpx.Wrap(h.delete))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	userID := r.URL.Query().Get("userId")
	views, err := h.svc.List(r.Context(), userID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, views, http.StatusOK)
	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[CreatePostRequest](r)
	if err != nil {
		return httpx.BadRequest("invalid body")
	}
	view, err := h.svc.Create(r.Context(), in)
	if errors.Is(err, ErrEmptyContent) {
		return httpx.BadRequest(err.Error())
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, view, http.StatusCreated)
	return nil
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return httpx.BadRequest("invalid post id")
	}
	if err := h.svc.Delete(r.Context(), uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.NotFound(err.Error())
		}
		return err
	}
	httpx.WriteJSON(w, map[string]string{"message": "post deleted"}, http.StatusOK)
	return nil
}
