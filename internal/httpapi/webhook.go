package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/auth"
	"github.com/Crystallized21/spacecase/internal/telemetry"
)

// clerkEvent конверт события Clerk; data разбираем отдельно по типу
type clerkEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type clerkWebhookUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// handleClerkWebhook принимает события Clerk. Интересен только
// user.created, всё остальное подтверждаем и игнорируем.
func (s *Server) handleClerkWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error reading webhook body")
		return
	}

	err = auth.VerifyWebhook(
		s.cfg.ClerkWebhookSecret,
		r.Header.Get("svix-id"),
		r.Header.Get("svix-timestamp"),
		r.Header.Get("svix-signature"),
		body,
	)
	if err != nil {
		s.logger.Error("❌ Webhook verification failed", zap.Error(err))
		telemetry.CaptureError(err, "webhook.verify", nil)
		writeError(w, http.StatusBadRequest, "Error verifying webhook")
		return
	}

	var event clerkEvent
	if err := json.Unmarshal(body, &event); err != nil {
		writeError(w, http.StatusBadRequest, "Error parsing webhook body")
		return
	}

	if event.Type != "user.created" {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Webhook received"})
		return
	}

	var user clerkWebhookUser
	if err := json.Unmarshal(event.Data, &user); err != nil || len(user.EmailAddresses) == 0 {
		// событие без email нам не интересно, но подтверждаем чтобы Clerk не ретраил
		writeJSON(w, http.StatusOK, map[string]string{"message": "Webhook received"})
		return
	}

	err = s.users.SyncCreatedUser(
		r.Context(),
		user.ID,
		user.FirstName,
		user.LastName,
		user.EmailAddresses[0].EmailAddress,
	)
	if err != nil {
		// не отдаём ошибку: Clerk будет ретраить, а дубликаты мы и так ловим
		s.logger.Error("Failed to sync created user", zap.String("user_id", user.ID), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Webhook received"})
}
