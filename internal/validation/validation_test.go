package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid password", "hunter2hunter2", false},
		{"Valid with digit", "hunter2222", false},
		{"Too short", "ab1", true},
		{"No digit", "onlyletters", true},
		{"No letter", "12345678", true},
		{"Too long", strings.Repeat("a1", 70), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "jane_doe42", false},
		{"Valid with hyphen", "jane-doe", false},
		{"Too short", "jd", true},
		{"Too long", strings.Repeat("a", 31), true},
		{"Invalid chars", "jane doe", true},
		{"Leading underscore", "_jane", true},
		{"Trailing hyphen", "jane-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("jane@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("jane@"))
	assert.Error(t, ValidateEmail("@example.com"))
}

func TestValidatePostTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"Minimum length", "abcde", false},
		{"One below minimum", "abcd", true},
		{"Whitespace does not count", "  ab  ", true},
		{"Unicode counted as runes", "héllo", false},
		{"Too long", strings.Repeat("a", 121), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePostDescription(t *testing.T) {
	assert.NoError(t, ValidatePostDescription("a cozy place"))
	assert.Error(t, ValidatePostDescription("   "))
	assert.Error(t, ValidatePostDescription(strings.Repeat("x", MaxDescriptionLength+1)))
}

func TestValidateMessageContent(t *testing.T) {
	assert.NoError(t, ValidateMessageContent("hello there"))
	assert.Error(t, ValidateMessageContent(""))
	assert.Error(t, ValidateMessageContent("  \n "))
	assert.Error(t, ValidateMessageContent(strings.Repeat("x", MaxMessageLength+1)))
}
