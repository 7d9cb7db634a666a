package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/portal/internal/entity"
	"github.com/samandr77/microservices/portal/pkg/i18n"
	"github.com/samandr77/microservices/portal/pkg/logger"
)

// TokenCookieName carries the role token for visitors without an Authorization header.
const TokenCookieName = "portal_token"

type Middleware struct {
	catalog       *i18n.Catalog
	defaultLocale i18n.Locale
	jwtSecret     []byte
}

func NewMiddleware(catalog *i18n.Catalog, defaultLocale i18n.Locale, jwtSecret string) *Middleware {
	m := &Middleware{
		catalog:       catalog,
		defaultLocale: defaultLocale,
	}

	if jwtSecret != "" {
		m.jwtSecret = []byte(jwtSecret)
	}

	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.String())

		w.Header().Set("X-Request-Id", logger.RequestIDFromCtx(ctx))

		slog.DebugContext(ctx, "incoming request", "user_agent", r.UserAgent())

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		slog.InfoContext(ctx, "request served", "status", rec.status, "duration", time.Since(start).String())
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err),
					m.catalog.Message(m.defaultLocale, "error.internal"))
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Origin, Accept, Accept-Language, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetIP(r.Context(), r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Locale resolves the request language and persists an explicit ?lang choice in a cookie.
func (m *Middleware) Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l, persist := i18n.Resolve(r, m.defaultLocale)
		if persist {
			i18n.SetCookie(w, l)
		}

		w.Header().Set("Content-Language", l.String())
		w.Header().Add("Vary", "Accept-Language")

		ctx := entity.CtxWithLocale(r.Context(), l)
		ctx = logger.SetLocale(ctx, l.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type roleClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// DetectRole reads the visitor role from a bearer token or the token cookie. It never rejects a
// request: missing or unusable tokens make the visitor a guest.
func (m *Middleware) DetectRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		role, err := m.roleFromRequest(r)
		if err != nil {
			slog.DebugContext(ctx, "role detection failed, using guest", "error", err)

			role = entity.RoleGuest
		}

		ctx = entity.CtxWithRole(ctx, role)
		ctx = logger.SetRole(ctx, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) roleFromRequest(r *http.Request) (string, error) {
	token, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		cookie, cookieErr := r.Cookie(TokenCookieName)
		if cookieErr != nil {
			return entity.RoleGuest, nil
		}

		token = cookie.Value
	}

	var claims roleClaims

	if m.jwtSecret != nil {
		_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	} else {
		_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	}

	if err != nil {
		return "", fmt.Errorf("parse role token: %w", err)
	}

	if !entity.IsValidRole(claims.Role) {
		return "", fmt.Errorf("role %q: %w", claims.Role, entity.ErrInvalidRole)
	}

	return claims.Role, nil
}

// RequirePermission lets the request through only when the detected role holds permission.
func (m *Middleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			role := entity.RoleFromCtx(ctx)

			if !entity.HasPermission(role, permission) {
				err := errors.Join(entity.ErrForbidden, fmt.Errorf("role %s lacks %s", role, permission))
				SendErr(ctx, w, http.StatusForbidden, err, m.catalog.Message(entity.LocaleFromCtx(ctx), "error.forbidden"))

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
