package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthenticated)
		return
	}
	threadId := mux.Vars(r)["threadId"]

	var payload map[string]interface{}
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteError(w, err)
		return
	}

	addedComment, err := h.comment.AddComment(payload, threadId, user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"addedComment": addedComment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthenticated)
		return
	}
	vars := mux.Vars(r)

	if err := h.comment.DeleteComment(vars["threadId"], vars["commentId"], user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

func (h *Handler) PutCommentLike(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthenticated)
		return
	}
	vars := mux.Vars(r)

	if err := h.like.ToggleLike(vars["threadId"], vars["commentId"], user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
