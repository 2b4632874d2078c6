package service

import (
	"context"
	"errors"

	"repairshop-backend/config"
)

var ErrInvalidIdentityToken = errors.New("invalid identity token")

// Identity is the verified principal returned by the external identity
// provider.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// IdentityVerifier checks an opaque provider token and returns the identity
// behind it. Production wires an implementation backed by the real provider;
// the dev verifier below accepts a single configured token.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type devIdentityVerifier struct {
	cfg config.IdentityConfig
}

func NewDevIdentityVerifier(cfg config.IdentityConfig) IdentityVerifier {
	return &devIdentityVerifier{cfg: cfg}
}

func (v *devIdentityVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token != v.cfg.DevToken {
		return nil, ErrInvalidIdentityToken
	}
	return &Identity{
		UID:   v.cfg.DevUID,
		Email: v.cfg.DevEmail,
		Name:  v.cfg.DevName,
	}, nil
}
