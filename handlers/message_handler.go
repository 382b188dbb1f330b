package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mailguard-live/mailguard-backend/contract"
	apperrors "github.com/mailguard-live/mailguard-backend/errors"
	"github.com/mailguard-live/mailguard-backend/internal/store"
	"github.com/mailguard-live/mailguard-backend/logger"
	"github.com/mailguard-live/mailguard-backend/types"
)

// EmailSender relays a created message to the configured recipient.
// Implemented by services.EmailService.
type EmailSender interface {
	SendFeedbackEmail(ctx context.Context, msg *types.Message) error
}

// defaultEmailTimeout bounds the single relay attempt so a stalled SMTP
// connection cannot hold up the HTTP response indefinitely.
const defaultEmailTimeout = 10 * time.Second

// MessageHandler handles feedback message submission.
type MessageHandler struct {
	messageStore store.MessageStore
	email        EmailSender
	emailTimeout time.Duration
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageStore store.MessageStore, email EmailSender) *MessageHandler {
	return &MessageHandler{
		messageStore: messageStore,
		email:        email,
		emailTimeout: defaultEmailTimeout,
	}
}

// CreateMessage godoc
// @Summary      Submit a feedback message
// @Description  Validates, persists, and best-effort relays a feedback message from the landing page
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      types.MessageCreate  true  "Message payload"
// @Success      201   {object}  types.Message
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req types.MessageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	if verr := contract.Validate(&req); verr != nil {
		_ = c.Error(verr)
		return
	}

	msg, err := h.messageStore.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	h.relayFeedbackEmail(msg)

	c.JSON(http.StatusCreated, msg)
}

// relayFeedbackEmail makes a single time-bounded delivery attempt. Failure or
// timeout is logged as a warning and never affects the response.
func (h *MessageHandler) relayFeedbackEmail(msg *types.Message) {
	log := logger.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), h.emailTimeout)
	done := make(chan error, 1)
	go func() {
		defer cancel()
		done <- h.email.SendFeedbackEmail(ctx, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Warnw("Feedback email failed", "error", err, "messageID", msg.ID)
		}
	case <-ctx.Done():
		log.Warnw("Feedback email timed out", "messageID", msg.ID, "timeout", h.emailTimeout)
	}
}
