package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/service"
	"github.com/aussiebroadwan/finance/pkg/financesdk"
	"github.com/aussiebroadwan/finance/pkg/httpx"
)

// RegisterHandler creates accounts.
type RegisterHandler struct {
	CredentialService *service.CredentialService
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Creates an account. The passcode must be exactly 10 characters and match passcode_confirm.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username			formData	string	true	"Username (case-sensitive, surrounding spaces trimmed)"
//	@Param			passcode			formData	string	true	"10 character passcode"
//	@Param			passcode_confirm	formData	string	true	"Passcode again"
//	@Success		201					{object}	financesdk.RegisterResponse
//	@Failure		400					{object}	financesdk.ErrorResponse	"invalid_input or invalid_credentials"
//	@Router			/v1/users [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeInvalidRequest(w, "invalid form body")
		return
	}

	username := r.PostForm.Get("username")
	passcode := r.PostForm.Get("passcode")
	if passcode != r.PostForm.Get("passcode_confirm") {
		writeInvalidInput(w, "passcodes do not match")
		return
	}

	user, err := h.CredentialService.CreateUser(r.Context(), username, passcode)
	if err != nil {
		writeServiceError(w, r, http.StatusBadRequest, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, financesdk.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

// LoginHandler exchanges a username and passcode for a session token.
type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Verifies the passcode and issues a signed session token. Sign out by discarding the token.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			passcode	formData	string	true	"10 character passcode"
//	@Success		200			{object}	financesdk.SessionResponse
//	@Failure		400			{object}	financesdk.ErrorResponse	"invalid_input"
//	@Failure		401			{object}	financesdk.ErrorResponse	"invalid_credentials"
//	@Router			/v1/session [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeInvalidRequest(w, "invalid form body")
		return
	}

	sess, err := h.SessionService.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("passcode"))
	if err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, financesdk.SessionResponse{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(sess.ExpiresAt).Seconds()),
		UserID:      sess.UserID,
		Username:    sess.Username,
	})
}

// MeHandler serves the current user's account.
type MeHandler struct {
	CredentialService *service.CredentialService
}

// HandleGet godoc
//
//	@Summary		Current user
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	financesdk.UserResponse
//	@Failure		401	{object}	financesdk.ErrorResponse
//	@Router			/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	user, err := h.CredentialService.GetUser(r.Context(), userID)
	if errors.Is(err, service.ErrNotFound) {
		httpx.WriteError(w, http.StatusUnauthorized, financesdk.ErrorCodeInvalidToken, "user no longer exists")
		return
	}
	if err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, financesdk.UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// HandleChangePasscode godoc
//
//	@Summary		Change passcode
//	@Description	Replaces the passcode of the authenticated user. The old passcode is not asked for again.
//	@Tags			Accounts
//	@Accept			x-www-form-urlencoded
//	@Security		BearerAuth
//	@Param			passcode	formData	string	true	"New 10 character passcode"
//	@Success		204
//	@Failure		400	{object}	financesdk.ErrorResponse	"invalid_input"
//	@Failure		401	{object}	financesdk.ErrorResponse
//	@Router			/v1/me/passcode [put].
func (h *MeHandler) HandleChangePasscode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeInvalidRequest(w, "invalid form body")
		return
	}
	userID, _ := httpx.UserIDFromContext(r.Context())

	if err := h.CredentialService.ChangePasscode(r.Context(), userID, r.PostForm.Get("passcode")); err != nil {
		writeServiceError(w, r, http.StatusUnauthorized, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
