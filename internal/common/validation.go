package common

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// AllowedEmojis is the fixed reaction set, keyed by emoji.
var AllowedEmojis = map[string]string{
	"👍":  "thumbs_up",
	"❤️": "heart",
	"😂":  "laughing",
	"😮":  "surprised",
	"😢":  "sad",
	"🎉":  "celebration",
	"🔥":  "fire",
	"💯":  "hundred",
}

const MaxCommentLength = 5000

func ValidateEmoji(emoji string) error {
	if _, ok := AllowedEmojis[emoji]; !ok {
		return errors.New("emoji is not in the allowed set")
	}
	return nil
}

// ValidateCommentContent trims the content and enforces the 1-5000 character
// bounds. The trimmed form is what gets stored.
func ValidateCommentContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", errors.New("comment content cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxCommentLength {
		return "", errors.New("comment content cannot exceed 5000 characters")
	}
	return trimmed, nil
}
