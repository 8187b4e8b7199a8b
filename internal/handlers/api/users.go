package api

import (
	"net/http"

	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.orchestrator.SignUp(r.Context(), &orchestrator.SignUpInput{
		Token:    token(r),
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.orchestrator.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.orchestrator.GetUser(r.Context(), &orchestrator.GetUserInput{
		Username: r.PathValue("username"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUsername(w http.ResponseWriter, r *http.Request) {
	var req updateUsernameRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.orchestrator.UpdateUsername(r.Context(), &orchestrator.UpdateUsernameInput{
		Token:    token(r),
		Username: req.Username,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	err := h.orchestrator.UpdatePassword(r.Context(), &orchestrator.UpdatePasswordInput{
		Token:           token(r),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, message{Msg: "Password updated!"})
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.DeleteAccount(r.Context(), &orchestrator.SessionInput{Token: token(r)}); err != nil {
		h.fail(w, r, err)
		return
	}

	h.clearSession(w)
	writeJSON(w, http.StatusOK, message{Msg: "Account deleted!"})
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	out, err := h.orchestrator.LogIn(r.Context(), &orchestrator.LogInInput{
		Token:    token(r),
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, logInResponse{Msg: "Logged in!", Token: out.Token, User: out.User})
}

func (h *Handler) logOut(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.LogOut(r.Context(), &orchestrator.SessionInput{Token: token(r)}); err != nil {
		h.fail(w, r, err)
		return
	}

	h.clearSession(w)
	writeJSON(w, http.StatusOK, message{Msg: "Logged out!"})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.orchestrator.CurrentUser(r.Context(), &orchestrator.SessionInput{Token: token(r)})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) selectMood(w http.ResponseWriter, r *http.Request) {
	var req selectMoodRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	selection, err := h.orchestrator.SelectMood(r.Context(), &orchestrator.SelectMoodInput{
		Token:  token(r),
		MoodID: req.MoodID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, selection)
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
	})
}
