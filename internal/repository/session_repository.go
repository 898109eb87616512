package repository

import "azmedical/internal/domain/model"

// Session is the current auth state. IsAuthenticated holds exactly when a
// token is present; User may lag behind only if stored state was corrupted
// out-of-band, never through this interface.
type Session struct {
	IsAuthenticated bool
	User            *model.UserProfile
	Token           string
}

// SessionRepository owns the token and profile keys. Set and Clear write
// both keys as a pair; there is deliberately no way to write one alone.
//
// This is mock auth: the token is opaque, never verified, never expired.
type SessionRepository interface {
	Get() Session
	Set(user model.UserProfile, token string)
	Clear()
}
