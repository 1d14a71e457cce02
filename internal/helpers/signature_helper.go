package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPass = errors.New("invalid pass")

// PassClaims identifies the registration a pass was issued for.
type PassClaims struct {
	RegistrationID int64 `json:"registrationId"`
	EventID        int64 `json:"eventId"`
	UserID         int64 `json:"userId"`
}

// PassSigner signs and verifies registration pass codes of the form
// "EVP.<registration>.<event>.<user>.<signature>".
type PassSigner struct {
	secret []byte
}

func NewPassSigner(secret string) *PassSigner {
	return &PassSigner{secret: []byte(secret)}
}

func (p *PassSigner) payload(claims PassClaims) string {
	return fmt.Sprintf("EVP.%d.%d.%d", claims.RegistrationID, claims.EventID, claims.UserID)
}

func (p *PassSigner) signature(payload string) string {
	mac := hmac.New(sha256.New, p.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (p *PassSigner) Sign(claims PassClaims) string {
	payload := p.payload(claims)
	return payload + "." + p.signature(payload)
}

func (p *PassSigner) Verify(code string) (PassClaims, error) {
	parts := strings.Split(strings.TrimSpace(code), ".")
	if len(parts) != 5 || parts[0] != "EVP" {
		return PassClaims{}, ErrInvalidPass
	}

	ids := make([]int64, 3)
	for i, raw := range parts[1:4] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return PassClaims{}, ErrInvalidPass
		}
		ids[i] = id
	}

	claims := PassClaims{RegistrationID: ids[0], EventID: ids[1], UserID: ids[2]}
	expected := p.signature(p.payload(claims))
	if !hmac.Equal([]byte(expected), []byte(parts[4])) {
		return PassClaims{}, ErrInvalidPass
	}
	return claims, nil
}
