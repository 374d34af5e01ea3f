package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) PostReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthenticated)
		return
	}
	vars := mux.Vars(r)

	var payload map[string]interface{}
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteError(w, err)
		return
	}

	addedReply, err := h.reply.AddReply(payload, vars["commentId"], vars["threadId"], user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"addedReply": addedReply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthenticated)
		return
	}
	vars := mux.Vars(r)

	if err := h.reply.DeleteReply(vars["threadId"], vars["commentId"], vars["replyId"], user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
