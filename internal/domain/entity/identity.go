// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenAccessAuth is the purpose recorded for tokens issued by register and login.
const TokenAccessAuth = "auth"

// Identity is a registered account that can authenticate and own todos.
type Identity struct {
	ID           uuid.UUID       // The Global Unique Identifier (GUID) for the identity.
	Email        string          // Unique login identifier, compared case-sensitively.
	PasswordHash string          // Salted one-way digest of the password. Never serialized.
	Tokens       []IdentityToken // Live tokens in issuance order.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IdentityToken is one issued bearer token. It is valid only while present in its
// identity's token list.
type IdentityToken struct {
	Token  string // The signed token string handed to the client.
	Access string // Purpose of the token, e.g. "auth".
}

// HasToken reports whether token is currently live for this identity.
func (i *Identity) HasToken(token string) bool {
	for _, t := range i.Tokens {
		if t.Token == token {
			return true
		}
	}

	return false
}

// AddToken appends token to the live list unless it is already present.
func (i *Identity) AddToken(token, access string) {
	if i.HasToken(token) {
		return
	}
	i.Tokens = append(i.Tokens, IdentityToken{Token: token, Access: access})
}

// RemoveToken drops every entry matching token and reports whether one was removed.
func (i *Identity) RemoveToken(token string) bool {
	kept := i.Tokens[:0]
	removed := false
	for _, t := range i.Tokens {
		if t.Token == token {
			removed = true

			continue
		}
		kept = append(kept, t)
	}
	i.Tokens = kept

	return removed
}
