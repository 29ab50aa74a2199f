package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

func sign(t *testing.T, secret, msgID, timestamp string, body []byte) string {
	t.Helper()

	key, err := base64.StdEncoding.DecodeString(secret[len("whsec_"):])
	assert.NoError(t, err)

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.%s", msgID, timestamp, body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhook(t *testing.T) {
	body := []byte(`{"type":"user.created"}`)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := sign(t, testSecret, "msg_1", ts, body)

	assert.NoError(t, VerifyWebhook(testSecret, "msg_1", ts, sig, body))
}

func TestVerifyWebhookMultipleSignatures(t *testing.T) {
	body := []byte(`{}`)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := "v1,Zm9vYmFy " + sign(t, testSecret, "msg_1", ts, body)

	assert.NoError(t, VerifyWebhook(testSecret, "msg_1", ts, sig, body))
}

func TestVerifyWebhookTamperedBody(t *testing.T) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	sig := sign(t, testSecret, "msg_1", ts, []byte(`{"a":1}`))

	assert.Error(t, VerifyWebhook(testSecret, "msg_1", ts, sig, []byte(`{"a":2}`)))
}

func TestVerifyWebhookStaleTimestamp(t *testing.T) {
	body := []byte(`{}`)
	ts := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	sig := sign(t, testSecret, "msg_1", ts, body)

	assert.Error(t, VerifyWebhook(testSecret, "msg_1", ts, sig, body))
}

func TestVerifyWebhookMissingHeaders(t *testing.T) {
	assert.Error(t, VerifyWebhook(testSecret, "", "", "", nil))
}
