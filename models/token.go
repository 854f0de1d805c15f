package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to a synchronization node.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for claim access. The subject claim carries the node identifier.
type Token struct {
	// Token is the underlying JWT. Only the compact form leaves the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// NodeID caches the subject claim.
	NodeID string `json:"-"`
}

// GetNodeID returns the node identifier stored in the subject claim.
func (t *Token) GetNodeID() (string, error) {
	nodeID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting NodeID from token: %w", err)
	}
	if nodeID == "" {
		return "", fmt.Errorf("error extracting NodeID from token: empty subject")
	}

	return nodeID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
