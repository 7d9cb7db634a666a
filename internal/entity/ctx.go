package entity

import (
	"context"

	"github.com/samandr77/microservices/portal/pkg/i18n"
)

type CtxKey int

const (
	CtxKeyLocale CtxKey = iota
	CtxKeyRole
)

func CtxWithLocale(ctx context.Context, l i18n.Locale) context.Context {
	return context.WithValue(ctx, CtxKeyLocale, l)
}

// LocaleFromCtx returns the request locale, or Arabic if none was set.
func LocaleFromCtx(ctx context.Context) i18n.Locale {
	l, ok := ctx.Value(CtxKeyLocale).(i18n.Locale)
	if !ok {
		return i18n.Arabic
	}

	return l
}

func CtxWithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, CtxKeyRole, role)
}

// RoleFromCtx returns the detected role or RoleGuest.
func RoleFromCtx(ctx context.Context) string {
	role, ok := ctx.Value(CtxKeyRole).(string)
	if !ok || role == "" {
		return RoleGuest
	}

	return role
}
