package handlers

import (
	"crypto/subtle"
	request "mecanica_xpto/internal/adapter/http/dto/request"
	response "mecanica_xpto/internal/adapter/http/dto/response"
	"mecanica_xpto/internal/usecase"
	"mecanica_xpto/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const webhookTokenHeader = "X-Webhook-Token"

var errInvalidWebhookToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid webhook token", http.StatusUnauthorized)

// StockWebhookHandler receives deduction results from the stock service.
type StockWebhookHandler struct {
	saga  usecase.IStockSagaUseCase
	token string
	log   zerolog.Logger
}

// NewStockWebhookHandler accepts any caller when token is empty.
func NewStockWebhookHandler(saga usecase.IStockSagaUseCase, token string, log zerolog.Logger) *StockWebhookHandler {
	return &StockWebhookHandler{saga: saga, token: token, log: log}
}

// HandleStockResult godoc
// @Summary      Stock deduction result
// @Description  success=true confirms the deduction; success=false compensates the saga. A result whose attempt_id is not the order's current attempt is ignored.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Webhook-Token  header    string                       false  "shared secret"
// @Param        body             body      request.StockWebhookRequest  true   "result"
// @Success      200              {object}  response.ServiceOrderResponse
// @Failure      401              {object}  map[string]interface{}
// @Router       /webhooks/estoque [post]
func (h *StockWebhookHandler) HandleStockResult(c *gin.Context) {
	if h.token != "" && subtle.ConstantTimeCompare([]byte(c.GetHeader(webhookTokenHeader)), []byte(h.token)) != 1 {
		h.log.Warn().Str("remote", c.ClientIP()).Msg("[stock][webhook] rejected: bad token")
		c.JSON(errInvalidWebhookToken.HTTPStatus, errInvalidWebhookToken.ToHTTPError())
		return
	}

	var payload request.StockWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	osID := payload.ResolveOSID()
	success := *payload.Success
	h.log.Info().Str("os_id", osID).Str("attempt_id", payload.AttemptID).Bool("success", success).Msg("[stock][webhook] result received")

	order, err := h.saga.HandleStockResult(c.Request.Context(), osID, payload.AttemptID, success)
	if err != nil {
		h.log.Error().Err(err).Str("os_id", osID).Msg("[stock][webhook] result not applied")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
