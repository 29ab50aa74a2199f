package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// webhookTolerance допустимый разбег часов между Clerk и нами
const webhookTolerance = 5 * time.Minute

// VerifyWebhook проверяет svix-подпись вебхука Clerk.
// Подписывается строка "{id}.{timestamp}.{body}" ключом из секрета
// (base64 после префикса whsec_), в заголовке svix-signature может быть
// несколько версий подписи через пробел, достаточно одного совпадения.
func VerifyWebhook(secret, msgID, timestamp, sigHeader string, body []byte) error {
	if msgID == "" || timestamp == "" || sigHeader == "" {
		return fmt.Errorf("missing webhook signature headers")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("bad webhook timestamp: %w", err)
	}
	if drift := time.Since(time.Unix(ts, 0)); drift > webhookTolerance || drift < -webhookTolerance {
		return fmt.Errorf("webhook timestamp outside tolerance")
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return fmt.Errorf("bad webhook secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.%s", msgID, timestamp, body)
	expected := mac.Sum(nil)

	for _, part := range strings.Fields(sigHeader) {
		versioned := strings.SplitN(part, ",", 2)
		if len(versioned) != 2 || versioned[0] != "v1" {
			continue
		}
		got, err := base64.StdEncoding.DecodeString(versioned[1])
		if err != nil {
			continue
		}
		if hmac.Equal(expected, got) {
			return nil
		}
	}

	return fmt.Errorf("no matching webhook signature")
}
