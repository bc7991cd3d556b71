package ranks

import (
	"errors"
	"testing"

	"novabot/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseError_BusinessRejectionsAreUserErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		userMessage string
	}{
		{"unknown rank", entities.ErrUnknownRank, "**Uwu** is not in the shop. Check `/ranks shop`."},
		{"already owned", entities.ErrAlreadyOwned, "You already own **Uwu**."},
		{"insufficient funds", entities.ErrInsufficientFunds, "You don't have enough coins for **Uwu**."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			botErr := purchaseError("uwu", tt.err)
			assert.Equal(t, tt.userMessage, botErr.UserMessage)
			assert.NoError(t, botErr.Unwrap())
		})
	}
}

func TestPurchaseError_StorageFailureStaysInternal(t *testing.T) {
	cause := errors.New("connection reset")
	botErr := purchaseError("uwu", cause)

	// The user sees the generic message; the cause stays in the chain for
	// the log.
	assert.Equal(t, "Something went wrong. Please try again later.", botErr.UserMessage)
	assert.ErrorIs(t, botErr, cause)
	assert.Contains(t, botErr.Error(), "connection reset")
}

func TestEquipError_NotOwnedIsUserError(t *testing.T) {
	botErr := equipError("angel", entities.ErrNotOwned)
	assert.Equal(t, "You don't own a purchasable rank called **Angel**.", botErr.UserMessage)
	assert.NoError(t, botErr.Unwrap())

	cause := errors.New("connection reset")
	assert.ErrorIs(t, equipError("angel", cause), cause)
}
