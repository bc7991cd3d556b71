package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// GetDisplayName returns the server-specific display name for a user,
// falling back to the username and then a placeholder.
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// GetDisplayNameInt64 is a convenience wrapper accepting int64 user IDs
func GetDisplayNameInt64(s *discordgo.Session, guildID string, userID int64) string {
	return GetDisplayName(s, guildID, strconv.FormatInt(userID, 10))
}

// ParseSnowflake converts a Discord ID string to int64
func ParseSnowflake(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// FormatSnowflake converts an int64 Discord ID to string
func FormatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID int64) string {
	return "<@" + FormatSnowflake(userID) + ">"
}
