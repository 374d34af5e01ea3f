package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) PostThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthenticated)
		return
	}

	var payload map[string]interface{}
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteError(w, err)
		return
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["owner"] = user.Id

	addedThread, err := h.thread.AddThread(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"addedThread": addedThread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["threadId"]

	thread, err := h.thread.GetThreadDetail(threadId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"thread": thread})
}
