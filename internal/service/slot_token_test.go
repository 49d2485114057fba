package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

func TestSlotTokenRoundTrip(t *testing.T) {
	issuer := NewSlotTokenIssuer("test-secret")
	startAt := time.Now().Add(72 * time.Hour).Truncate(time.Minute)

	token, err := issuer.Issue(42, startAt)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	companyID, got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), companyID)
	assert.True(t, got.Equal(startAt))
}

func TestSlotTokenRejectsTampering(t *testing.T) {
	issuer := NewSlotTokenIssuer("test-secret")
	token, err := issuer.Issue(42, time.Now().Add(72*time.Hour))
	require.NoError(t, err)

	_, _, err = issuer.Verify(token + "x")

	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSlotTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewSlotTokenIssuer("secret-a").Issue(42, time.Now().Add(72*time.Hour))
	require.NoError(t, err)

	_, _, err = NewSlotTokenIssuer("secret-b").Verify(token)

	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSlotTokenExpiresWithSlot(t *testing.T) {
	issuer := NewSlotTokenIssuer("test-secret")
	token, err := issuer.Issue(42, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, _, err = issuer.Verify(token)

	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSlotTokenGarbage(t *testing.T) {
	_, _, err := NewSlotTokenIssuer("test-secret").Verify("not-a-token")

	var vErr *model.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
