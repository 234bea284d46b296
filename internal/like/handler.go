package like

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"social-feed-service/internal/shared/httpx"
)

type Handler struct{ svc Service }

func RegisterRoutes(mux *http.ServeMux, svc Service) {
	h := &Handler{svc: svc}
	mux.Handle("POST /api/posts/{id}/like", httpx.Wrap(h.like))
	mux.Handle("DELETE /api/posts/{id}/like", httpx.Wrap(h.unlike))
}

func (h *Handler) like(w http.ResponseWriter, r *http.Request) error {
	postID, userID, err := likeParams(r)
	if err != nil {
		return err
	}
	count, err := h.svc.Like(r.Context(), postID, userID)
	if errors.Is(err, ErrAlreadyLiked) {
		return httpx.BadRequest("already liked")
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, LikeResponse{PostID: postID, LikeCount: count, IsLiked: true}, http.StatusCreated)
	return nil
}

func (h *Handler) unlike(w http.ResponseWriter, r *http.Request) error {
	postID, userID, err := likeParams(r)
	if err != nil {
		return err
	}
	count, err := h.svc.Unlike(r.Context(), postID, userID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, LikeResponse{PostID: postID, LikeCount: count, IsLiked: false}, http.StatusOK)
	return nil
}

func likeParams(r *http.Request) (uint, string, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, "", httpx.BadRequest("invalid post id")
	}
	body, err := httpx.Decode[LikeRequest](r)
	if err != nil {
		return 0, "", httpx.BadRequest("invalid body")
	}
	userID := strings.TrimSpace(body.UserID)
	if userID == "" {
		return 0, "", httpx.BadRequest("userId is required")
	}
	return uint(id), userID, nil
}
