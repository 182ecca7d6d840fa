package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/letterdrop/pkg/email"
)

func TestSendEmailParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  email.SendEmailParams
		wantErr bool
	}{
		{
			name: "valid with both bodies",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				Subject:  "Welcome!",
				BodyHTML: "<p>hi</p>",
				BodyText: "hi",
			},
		},
		{
			name: "valid with text only",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				Subject:  "Welcome!",
				BodyText: "hi",
			},
		},
		{
			name: "invalid recipient",
			params: email.SendEmailParams{
				SendTo:   "not-an-email",
				Subject:  "Welcome!",
				BodyHTML: "<p>hi</p>",
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				BodyHTML: "<p>hi</p>",
			},
			wantErr: true,
		},
		{
			name: "missing both bodies",
			params: email.SendEmailParams{
				SendTo:  "user@example.com",
				Subject: "Welcome!",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPostmarkClientConfigValidation(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "no-reply@example.com",
		SupportEmail:         "support@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		sender, err := email.NewPostmarkClient(valid)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("missing server token", func(t *testing.T) {
		cfg := valid
		cfg.PostmarkServerToken = ""
		_, err := email.NewPostmarkClient(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("bad sender email", func(t *testing.T) {
		cfg := valid
		cfg.SenderEmail = "nope"
		_, err := email.NewPostmarkClient(cfg)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})
}

func TestDevSenderWritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Welcome!",
		BodyHTML: "<p>confirm here</p>",
		BodyText: "confirm here",
		Tag:      "confirmation",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var jsonFile string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, jsonFile)

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "user@example.com", envelope["send_to"])
	assert.Equal(t, "Welcome!", envelope["subject"])
	assert.Equal(t, "confirm here", envelope["body_text"])
}
