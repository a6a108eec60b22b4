package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/logger"
	"gorm.io/gorm"
)

const (
	RefreshTTL    = 30 * 24 * time.Hour
	RefreshCookie = "rt"
)

// Sessoes emite access tokens e faz a rotação dos refresh tokens.
type Sessoes struct {
	DB           *gorm.DB
	Tokens       *TokenService
	CookieSecure bool
}

func NewSessoes(db *gorm.DB, tokens *TokenService, cookieSecure bool) *Sessoes {
	return &Sessoes{DB: db, Tokens: tokens, CookieSecure: cookieSecure}
}

type RespostaToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func genRaw() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashRaw(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// Em localhost (http) o cookie precisa de Secure=false.
func (s *Sessoes) setRTCookie(w http.ResponseWriter, raw string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    raw,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   s.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

func (s *Sessoes) clearRTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/auth",
		HttpOnly: true,
		Secure:   s.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (s *Sessoes) novoRefresh(w http.ResponseWriter, userID uint, isAdmin bool, familia string) error {
	raw, err := genRaw()
	if err != nil {
		return err
	}
	rt := RefreshToken{
		UserID:    userID,
		FamilyID:  familia,
		Hash:      hashRaw(raw),
		IsAdmin:   isAdmin,
		ExpiresAt: time.Now().Add(RefreshTTL),
	}
	if err := s.DB.Create(&rt).Error; err != nil {
		return err
	}
	s.setRTCookie(w, raw, rt.ExpiresAt)
	return nil
}

// IniciarSessao é chamado no login, depois de validar usuário e senha.
func (s *Sessoes) IniciarSessao(w http.ResponseWriter, userID uint, isAdmin bool) (RespostaToken, error) {
	access, err := s.Tokens.GerarToken(userID, isAdmin)
	if err != nil {
		return RespostaToken{}, err
	}
	if err := s.novoRefresh(w, userID, isAdmin, fmt.Sprintf("fam-%d-%d", userID, time.Now().UnixNano())); err != nil {
		return RespostaToken{}, err
	}
	return RespostaToken{AccessToken: access, TokenType: "Bearer", ExpiresIn: int(s.Tokens.ttl.Seconds())}, nil
}

// POST /auth/refresh
func (s *Sessoes) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(RefreshCookie)
	if err != nil || c.Value == "" {
		http.Error(w, "Sessão ausente", http.StatusUnauthorized)
		return
	}

	var cur RefreshToken
	if err := s.DB.Where("hash = ?", hashRaw(c.Value)).First(&cur).Error; err != nil {
		s.clearRTCookie(w)
		http.Error(w, "Sessão inválida", http.StatusUnauthorized)
		return
	}
	if cur.RevokedAt != nil {
		// reuso de token já rotacionado: derruba a família inteira
		now := time.Now()
		s.DB.Model(&RefreshToken{}).Where("family_id = ? AND revoked_at IS NULL", cur.FamilyID).Update("revoked_at", &now)
		logger.Warn().Uint("user_id", cur.UserID).Str("family", cur.FamilyID).Msg("Refresh token reutilizado")
		s.clearRTCookie(w)
		http.Error(w, "Sessão inválida", http.StatusUnauthorized)
		return
	}
	if time.Now().After(cur.ExpiresAt) {
		s.clearRTCookie(w)
		http.Error(w, "Sessão expirada", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	if err := s.DB.Model(&cur).Update("revoked_at", &now).Error; err != nil {
		http.Error(w, "Erro ao renovar sessão", http.StatusInternalServerError)
		return
	}

	access, err := s.Tokens.GerarToken(cur.UserID, cur.IsAdmin)
	if err != nil {
		http.Error(w, "Erro ao renovar sessão", http.StatusInternalServerError)
		return
	}
	if err := s.novoRefresh(w, cur.UserID, cur.IsAdmin, cur.FamilyID); err != nil {
		s.clearRTCookie(w)
		http.Error(w, "Erro ao renovar sessão", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RespostaToken{AccessToken: access, TokenType: "Bearer", ExpiresIn: int(s.Tokens.ttl.Seconds())})
}

// POST /auth/logout
func (s *Sessoes) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(RefreshCookie); err == nil && c.Value != "" {
		now := time.Now()
		s.DB.Model(&RefreshToken{}).Where("hash = ?", hashRaw(c.Value)).Update("revoked_at", &now)
	}
	s.clearRTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// RevogarUsuario encerra todas as sessões do usuário (troca de senha).
func (s *Sessoes) RevogarUsuario(userID uint) error {
	now := time.Now()
	return s.DB.Model(&RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", &now).Error
}
