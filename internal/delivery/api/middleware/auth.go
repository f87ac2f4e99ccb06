package middleware

import (
	"log/slog"
	"strings"

	"planner/internal/delivery/api/response"
	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// HeaderAuthToken carries a raw access token. Login also returns the token in it.
	HeaderAuthToken = "auth-token"

	claimsKey = "claims"
)

// TokenExtractor pulls a candidate token out of a request. An empty result means none was found.
type TokenExtractor func(c echo.Context) string

// BearerExtractor reads the Authorization header. A "Bearer <token>" value yields the token and
// a bare value is taken as the token itself. Any other scheme, such as Basic, yields nothing so
// the next extractor is tried.
func BearerExtractor(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))

	scheme, token, hasScheme := strings.Cut(header, " ")
	if !hasScheme {
		if strings.EqualFold(header, "Bearer") {
			return ""
		}

		return header
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// AuthTokenExtractor reads the raw token from the auth-token header.
func AuthTokenExtractor(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(HeaderAuthToken))
}

// DefaultExtractors is the order in which requests are searched for a token.
var DefaultExtractors = []TokenExtractor{BearerExtractor, AuthTokenExtractor}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware guards routes behind a verified access token.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	extractors []TokenExtractor
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return newAuthMiddleware(params.TokenService, params.Logger, DefaultExtractors...)
}

func newAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger, extractors ...TokenExtractor) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		extractors: extractors,
		logger:     logger,
	}
}

// Authenticate rejects requests without a valid token and stores the verified claims otherwise.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extract(c)
		if token == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenMissing.Message())
		}

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.Message())
		}

		c.Set(claimsKey, claims)
		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

func (m *AuthMiddleware) extract(c echo.Context) string {
	for _, extractor := range m.extractors {
		if token := extractor(c); token != "" {
			return token
		}
	}

	return ""
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}

// GetUserID returns the account id of the verified token.
func GetUserID(c echo.Context) (string, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return "", false
	}

	return claims.UserID, true
}
