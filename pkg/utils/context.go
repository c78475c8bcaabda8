package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	StaffIDKey contextKey = "staff_id"
	RoleKey    contextKey = "role"
	TokenKey   contextKey = "token"
)

func GetStaffIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	staffIDVal := ctx.Value(StaffIDKey)
	if staffIDVal == nil {
		return uuid.Nil, false
	}

	staffIDStr, ok := staffIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	staffID, err := uuid.Parse(staffIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return staffID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetStaffContext(ctx context.Context, staffID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, StaffIDKey, staffID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
