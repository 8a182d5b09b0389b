package pasetotoken

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/alfassih/praxis_backend/config"
)

const CtxKeyClaims = "auth.claims"

func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// BearerToken pulls the token out of an Authorization header.
func BearerToken(c fiber.Ctx) (string, bool) {
	h := c.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// NewPasetoManager creates a new PASETO manager from config.
// Returns an error if the configuration is invalid.
func NewPasetoManager(cfg *config.Config) (*Manager, error) {
	p := cfg.Authentication.Paseto

	keys, err := LoadKeys(KeyStrings{
		Mode:         Mode(p.Mode),
		SymmetricHex: p.LocalKeyHex,
		SecretHex:    p.SecretKeyHex,
		PublicHex:    p.PublicKeyHex,
	})
	if err != nil {
		return nil, err
	}

	mgr, err := New(Config{
		Mode:       Mode(p.Mode),
		Issuer:     p.Issuer,
		Audience:   p.Audience,
		AccessTTL:  time.Duration(p.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(p.RefreshTTLDays) * 24 * time.Hour,
		Implicit:   nil,
	}, keys)
	if err != nil {
		return nil, err
	}

	return mgr, nil
}
