package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/minhhquann88/DoAn-sub001/config"
	"github.com/minhhquann88/DoAn-sub001/internal/dto"
	"github.com/minhhquann88/DoAn-sub001/internal/service"
	"github.com/rs/zerolog/log"
)

const callerKey = "caller"

// Claims carries the caller identity. Sub is the numeric user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{secret: []byte(cfg.JWT.Secret), issuer: cfg.JWT.Issuer}
}

// IssueToken signs an HS256 token. Tests and the admin CLI use it; identities are issued
// elsewhere in production.
func (a *Authenticator) IssueToken(userID uint, role service.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) Parse(tokenStr string) (service.Caller, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return service.Caller{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return service.Caller{}, errors.New("invalid token claims")
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return service.Caller{}, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	role := service.Role(claims.Role)
	if !role.Valid() {
		return service.Caller{}, fmt.Errorf("unknown role %q", claims.Role)
	}
	return service.Caller{UserID: uint(userID), Role: role}, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the caller.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		caller, err := a.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Str("request_id", RequestID(ctx)).Msg("Rejected bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid bearer token"})
			return
		}
		ctx.Set(callerKey, caller)
		ctx.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role service.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		caller, ok := CallerFrom(ctx)
		if !ok || caller.Role != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: fmt.Sprintf("%s role required", role)})
			return
		}
		ctx.Next()
	}
}

func CallerFrom(ctx *gin.Context) (service.Caller, bool) {
	v, ok := ctx.Get(callerKey)
	if !ok {
		return service.Caller{}, false
	}
	caller, ok := v.(service.Caller)
	return caller, ok
}
