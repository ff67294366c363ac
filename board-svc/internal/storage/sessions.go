package storage

import (
	"context"
	"fmt"

	"github.com/GlennDumoulin/food-orders/board-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// SessionVerifier checks session tokens issued by storefront-svc against the shared secret
// and the shared revocation keys.
type SessionVerifier struct {
	rdb    *redis.Client
	secret []byte
}

func NewSessionVerifier(rdb *redis.Client, secret string) *SessionVerifier {
	return &SessionVerifier{rdb: rdb, secret: []byte(secret)}
}

func (v *SessionVerifier) Verify(ctx context.Context, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}

	revoked, err := v.rdb.Exists(ctx, "revoked:"+claims.ID).Result()
	if err != nil {
		return "", fmt.Errorf("check revocation: %w", err)
	}
	if revoked > 0 {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
