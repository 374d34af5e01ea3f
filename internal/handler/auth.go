package handler

import (
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteError(w, err)
		return
	}

	addedUser, err := h.auth.Register(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"addedUser": addedUser})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteError(w, err)
		return
	}

	accessToken, err := h.auth.Login(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"accessToken": accessToken})
}
