package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/readsync/models"
)

// maxCredentialsSize limits a register or login body.
const maxCredentialsSize = 4 << 10

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err, "error registering user")
		return
	}

	h.issueToken(w, r, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err, "error logging user in")
		return
	}

	h.issueToken(w, r, user)
}

func (h *Handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, bool) {
	var creds models.Credentials
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCredentialsSize))
	if err := decoder.Decode(&creds); err != nil {
		h.writeError(w, r, errDecode(err), "invalid credentials body")
		return models.Credentials{}, false
	}
	return creds, true
}

// issueToken answers with the bearer token of user in the Authorization
// header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, "creation of token failed")
		return
	}

	h.requestLogger(r).Debug().Str("account", user.Account).Msg("token issued")
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
