package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// SlotTokenIssuer mints and verifies the opaque tokens that identify a
// generated slot. The booking endpoint only accepts these tokens, never
// a free-form client datetime. A token stops verifying once its slot's
// start time has passed.
type SlotTokenIssuer struct {
	secret []byte
}

func NewSlotTokenIssuer(secret string) *SlotTokenIssuer {
	return &SlotTokenIssuer{secret: []byte(secret)}
}

type slotClaims struct {
	CompanyID int64  `json:"cid"`
	Slot      string `json:"slot"`
	jwt.RegisteredClaims
}

// Issue signs a token for one slot of one company.
func (i *SlotTokenIssuer) Issue(companyID int64, startAt time.Time) (string, error) {
	claims := slotClaims{
		CompanyID: companyID,
		Slot:      startAt.Format(time.RFC3339),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(startAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign slot token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and expiry and returns the company id and
// slot start time the token was minted for. Any failure surfaces as a
// ValidationError so the caller re-renders the listing, not a 500.
func (i *SlotTokenIssuer) Verify(tokenStr string) (int64, time.Time, error) {
	var claims slotClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil {
		return 0, time.Time{}, model.NewValidationError("slot_token", "invalid or expired slot token")
	}

	startAt, err := time.Parse(time.RFC3339, claims.Slot)
	if err != nil {
		return 0, time.Time{}, model.NewValidationError("slot_token", "malformed slot time")
	}

	return claims.CompanyID, startAt, nil
}
