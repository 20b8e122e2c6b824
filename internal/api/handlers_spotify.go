package api

import (
	"net/http"

	"github.com/sadopc/wyrm/internal/spotify"
)

type SpotifyHandler struct {
	client *spotify.Client
}

type spotifyExchangeRequest struct {
	ClientID     string `json:"client_id"`
	Code         string `json:"code"`
	CodeVerifier string `json:"code_verifier"`
	RedirectURI  string `json:"redirect_uri"`
}

type spotifyRefreshRequest struct {
	ClientID     string `json:"client_id"`
	RefreshToken string `json:"refresh_token"`
}

// Exchange handles POST /spotify/exchange. Upstream failures map to
// 502 since the accounts service is a third party.
func (h *SpotifyHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req spotifyExchangeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ClientID == "" || req.Code == "" || req.CodeVerifier == "" || req.RedirectURI == "" {
		writeError(w, http.StatusBadRequest, "client_id, code, code_verifier, and redirect_uri are required")
		return
	}

	token, err := h.client.ExchangeCode(r.Context(), req.ClientID, req.Code, req.CodeVerifier, req.RedirectURI)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeData(w, http.StatusOK, token)
}

// Refresh handles POST /spotify/refresh.
func (h *SpotifyHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req spotifyRefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ClientID == "" || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "client_id and refresh_token are required")
		return
	}

	token, err := h.client.Refresh(r.Context(), req.ClientID, req.RefreshToken)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeData(w, http.StatusOK, token)
}
