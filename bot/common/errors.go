package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError carries both a user-facing message and an internal one, so
// handlers can render business-rule failures without leaking details.
type BotError struct {
	UserMessage string // Message shown to the Discord user
	LogMessage  string // Internal message for logging
	Err         error  // Underlying error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (unknown rank,
// insufficient coins, etc)
func NewUserError(userMessage, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// NewSystemError creates an error for system issues (database, unexpected
// state)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Err:         err,
	}
}

// RespondWithError sends an error message as an ephemeral interaction
// response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// HandleError logs an error and responds with its user-facing message
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	if botErr, ok := err.(*BotError); ok {
		log.WithFields(log.Fields{
			"user_id": i.Member.User.ID,
			"command": i.ApplicationCommandData().Name,
			"error":   botErr.Error(),
		}).Error(botErr.LogMessage)
		RespondWithError(s, i, botErr.UserMessage)
		return
	}

	log.WithFields(log.Fields{
		"user_id": i.Member.User.ID,
		"command": i.ApplicationCommandData().Name,
		"error":   err.Error(),
	}).Error("Unexpected error in bot command")
	RespondWithError(s, i, "Something went wrong. Please try again later.")
}
