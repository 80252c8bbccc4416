package httpx

import (
	"context"

	"github.com/moodachu/moodachu/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyIdentity ctxKey = "identity" // full jwtx.Claims from the identity token
)

// IdentityFromContext returns the verified identity claims for the request,
// or false if the request was not authenticated.
func IdentityFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyIdentity).(jwtx.Claims)
	return c, ok
}

func subjectFromCtx(ctx context.Context) string {
	if c, ok := IdentityFromContext(ctx); ok {
		return c.Subject
	}
	return ""
}
