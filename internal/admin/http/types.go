package http

import (
	"strings"

	"github.com/folio-labs/portfolio-backend/internal/admin/auth"
	"github.com/folio-labs/portfolio-backend/internal/admin/service"
)

type Handler struct {
	verifier     auth.Verifier
	issuer       *auth.Issuer
	dash         *service.DashboardService
	secureCookie bool
}

// New builds the admin session and dashboard handler. secureCookie marks the
// session cookie Secure and should be set in production.
func New(verifier auth.Verifier, issuer *auth.Issuer, dash *service.DashboardService, secureCookie bool) *Handler {
	return &Handler{verifier: verifier, issuer: issuer, dash: dash, secureCookie: secureCookie}
}

// loginReq carries either a username/password pair or a Firebase ID token,
// depending on the configured provider.
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IDToken  string `json:"id_token"`
}

func (r loginReq) toCredentials() (auth.Credentials, bool) {
	c := auth.Credentials{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
		IDToken:  strings.TrimSpace(r.IDToken),
	}
	if c.IDToken == "" && (c.Username == "" || c.Password == "") {
		return auth.Credentials{}, false
	}
	return c, true
}
