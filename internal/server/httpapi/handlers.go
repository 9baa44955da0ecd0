package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type userResponse struct {
	User models.UserView `json:"user"`
}

type clickResponse struct {
	ClickCount int64 `json:"clickCount"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	Message     string `json:"message"`
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to Linkfo API"})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	db := "connected"
	if h.storage.Backend() == repomanager.BackendMemory {
		db = "in-memory"
	} else if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Warn(r.Context(), "database ping failed", "error", err)
		db = "not connected"
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Timestamp:   h.now().UTC().Format(time.RFC3339Nano),
		Environment: h.environment,
		Database:    db,
		Message:     "If you can see this, the API is working!",
	})
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.Users.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.metrics.UsersRegistered.Inc()
	h.logger.Info(r.Context(), "user registered", "userID", res.User.ID)
	writeJSON(w, http.StatusCreated, res)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.Users.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.metrics.LoginFailures.Inc()
			h.logger.Warn(r.Context(), "login failed", "email", req.Email)
		}
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.GetByID(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: u.View()})
}

func (h *handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.ProfilePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	u, err := h.Users.UpdateProfile(r.Context(), ownerID(r), patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: u.View()})
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Users.Stats(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *handler) avatar(w http.ResponseWriter, r *http.Request) {
	var req services.AvatarUploadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	up, err := h.Avatars.PresignUpload(r.Context(), ownerID(r), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, up)
}

func (h *handler) listLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.Links.List(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (h *handler) addLink(w http.ResponseWriter, r *http.Request) {
	var req models.NewLink
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	link, err := h.Links.Add(r.Context(), ownerID(r), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *handler) updateLink(w http.ResponseWriter, r *http.Request) {
	var patch models.LinkPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	link, err := h.Links.Update(r.Context(), ownerID(r), chi.URLParam(r, "linkID"), patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *handler) removeLink(w http.ResponseWriter, r *http.Request) {
	if err := h.Links.Remove(r.Context(), ownerID(r), chi.URLParam(r, "linkID")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Link deleted successfully"})
}

func (h *handler) getPersona(w http.ResponseWriter, r *http.Request) {
	p, err := h.Personas.Get(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *handler) updatePersona(w http.ResponseWriter, r *http.Request) {
	st, err := h.Personas.RequestUpdate(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *handler) listSources(w http.ResponseWriter, r *http.Request) {
	src, err := h.Personas.ListSources(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

func (h *handler) addSource(w http.ResponseWriter, r *http.Request) {
	var req models.NewContentSource
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	src, err := h.Personas.AddSource(r.Context(), ownerID(r), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, src)
}

func (h *handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Chat.History(r.Context(), ownerID(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *handler) chatMessage(w http.ResponseWriter, r *http.Request) {
	var req models.NewChatMessage
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	reply, err := h.Chat.Send(r.Context(), ownerID(r), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.metrics.ChatMessages.Inc()
	writeJSON(w, http.StatusOK, reply)
}

func (h *handler) publicProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Profiles.Public(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.metrics.ProfileViews.Inc()
	writeJSON(w, http.StatusOK, p)
}

func (h *handler) clickLink(w http.ResponseWriter, r *http.Request) {
	n, err := h.Profiles.Click(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "linkID"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.metrics.LinkClicks.Inc()
	writeJSON(w, http.StatusOK, clickResponse{ClickCount: n})
}
