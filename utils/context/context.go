package context

import (
	"context"

	"github.com/muhammadheryan/account-service/constant"
)

func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, constant.AccountIDKey, accountID)
}

func GetAccountID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AccountIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
