package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "qwen-plus", s.IntentModel)
	assert.Equal(t, "qwen-plus", s.SQLModel)
	assert.Equal(t, 0.6, s.IntentConfidenceThreshold)
	assert.Equal(t, 2, s.HiddenContextMaxRetries)
	assert.Equal(t, StreamModeStream, s.ChatStreamMode)
	assert.Equal(t, "HS256", s.JWTAlgorithm)
	assert.Equal(t, 120*time.Minute, s.AccessTokenExpires)
	assert.Equal(t, 72*time.Hour, s.ExportRetention)
	assert.Equal(t, "./config/schema_kb.json", s.SchemaKBPath)
	assert.Equal(t, "./exports/chat", s.ChatExportDir)
	assert.Nil(t, s.StepMessagePlaceholders)
}

func TestLoad_StepMessagePlaceholders(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHAT_STREAM_STEP_MESSAGE_PLACEHOLDERS",
		`{"intent_recognition":{"start":"意图识别中","end":"意图已识别"}}`)

	s, err := Load()
	require.NoError(t, err)

	require.Contains(t, s.StepMessagePlaceholders, "intent_recognition")
	assert.Equal(t, "意图识别中", s.StepMessagePlaceholders["intent_recognition"]["start"])
	assert.Equal(t, "意图已识别", s.StepMessagePlaceholders["intent_recognition"]["end"])
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("INTENT_MODEL_NAME", "qwen-turbo")
	t.Setenv("SQL_MODEL_NAME", "qwen-max")
	t.Setenv("INTENT_CONFIDENCE_THRESHOLD", "0.8")
	t.Setenv("HIDDEN_CONTEXT_MAX_RETRIES", "3")
	t.Setenv("CHAT_STREAM_MODE", "sync")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("CHAT_EXPORT_RETENTION_HOURS", "24")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "qwen-turbo", s.IntentModel)
	assert.Equal(t, "qwen-max", s.SQLModel)
	assert.Equal(t, 0.8, s.IntentConfidenceThreshold)
	assert.Equal(t, 3, s.HiddenContextMaxRetries)
	assert.Equal(t, StreamModeSync, s.ChatStreamMode)
	assert.Equal(t, 30*time.Minute, s.AccessTokenExpires)
	assert.Equal(t, 24*time.Hour, s.ExportRetention)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api key", map[string]string{"LLM_API_KEY": "", "JWT_SECRET": "x"}},
		{"missing jwt secret", map[string]string{"LLM_API_KEY": "sk", "JWT_SECRET": ""}},
		{"threshold out of range", map[string]string{"INTENT_CONFIDENCE_THRESHOLD": "1.5"}},
		{"threshold not a number", map[string]string{"INTENT_CONFIDENCE_THRESHOLD": "high"}},
		{"negative retries", map[string]string{"HIDDEN_CONTEXT_MAX_RETRIES": "-1"}},
		{"bad stream mode", map[string]string{"CHAT_STREAM_MODE": "websocket"}},
		{"unsupported jwt algorithm", map[string]string{"JWT_ALGORITHM": "RS256"}},
		{"malformed step placeholders", map[string]string{"CHAT_STREAM_STEP_MESSAGE_PLACEHOLDERS": "not json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
