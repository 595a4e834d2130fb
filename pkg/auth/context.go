package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const (
	memberIDKey contextKey = "member_id"
	circleIDKey contextKey = "circle_id"
)

// ErrMemberNotFound is returned when no member identity exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrMemberNotFound = errors.New("member identity not found in context")

// MemberIDFromCtx extracts the authenticated member ID from the request context.
// Returns uuid.Nil and ErrMemberNotFound if no member is set (unauthenticated request).
func MemberIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	memberID, ok := ctx.Value(memberIDKey).(uuid.UUID)
	if !ok || memberID == uuid.Nil {
		return uuid.Nil, ErrMemberNotFound
	}
	return memberID, nil
}

// CircleIDFromCtx extracts the member's active circle ID from the request context.
// Returns uuid.Nil and ErrMemberNotFound if no circle is set.
func CircleIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	circleID, ok := ctx.Value(circleIDKey).(uuid.UUID)
	if !ok || circleID == uuid.Nil {
		return uuid.Nil, ErrMemberNotFound
	}
	return circleID, nil
}

// WithMember returns a new context with the member and circle IDs attached.
// Used by authentication middleware after validating the session.
func WithMember(ctx context.Context, memberID, circleID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, memberIDKey, memberID)
	return context.WithValue(ctx, circleIDKey, circleID)
}
