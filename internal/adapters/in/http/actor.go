package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"shipflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorContextKey = "actorID"
	ActorHeader     = "X-Actor-ID"
)

var errNoActor = errors.New("actor identity missing")

// ActorMiddleware resolves the acting party of every request. With a secret
// the identity is the subject of an HS256 bearer token; without one the
// X-Actor-ID header is trusted, which is meant for deployments behind an
// authenticating gateway.
func ActorMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var (
				actor kernel.UUID
				err   error
			)
			if secret == "" {
				actor, err = kernel.UUIDFromString(strings.TrimSpace(ctx.Request().Header.Get(ActorHeader)))
			} else {
				actor, err = actorFromBearer(ctx.Request().Header.Get(echo.HeaderAuthorization), []byte(secret))
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: "+err.Error())
			}
			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromBearer(header string, secret []byte) (kernel.UUID, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return kernel.UUID{}, errNoActor
	}

	token, err := jwt.Parse(strings.TrimSpace(raw), func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("parse token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return kernel.UUID{}, errNoActor
	}
	return kernel.UUIDFromString(subject)
}

func actorFrom(ctx echo.Context) (kernel.UUID, error) {
	actor, ok := ctx.Get(actorContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, errNoActor.Error())
	}
	return actor, nil
}
