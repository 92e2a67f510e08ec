package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxLoggingCarriesRequestFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { InitWithWriter("test", &bytes.Buffer{}) })

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-9")
	CtxWithError(ctx, "moderation failed", errors.New("db closed"), "review_id", "r1")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "moderation failed", line["msg"])
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "user-9", line["user_id"])
	assert.Equal(t, "db closed", line["error"])
	assert.Equal(t, "r1", line["review_id"])
}

func TestProductionDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { InitWithWriter("test", &bytes.Buffer{}) })

	CtxDebug(context.Background(), "noisy")
	assert.Zero(t, buf.Len())
}
