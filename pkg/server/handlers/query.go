package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	kgquery "github.com/narrativegraph/kgquery"
	"github.com/narrativegraph/kgquery/pkg/server/dto"
)

// QueryHandler answers structured natural-language questions against
// the Graph Store through a kgquery.Client.
type QueryHandler struct {
	client *kgquery.Client
}

// NewQueryHandler builds a query handler around an already-constructed
// Client.
func NewQueryHandler(client *kgquery.Client) *QueryHandler {
	return &QueryHandler{client: client}
}

// Ask handles POST /api/v1/query.
func (h *QueryHandler) Ask(c *gin.Context) {
	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "not_ready", Message: "graph store not loaded"})
		return
	}

	res, err := h.client.Ask(c.Request.Context(), req.Question)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "query_failed", Message: err.Error()})
		return
	}

	c.Header("X-Query-ID", res.CorrelationID)
	c.JSON(http.StatusOK, dto.AnswerResponse{Answer: res.Answer, CorrelationID: res.CorrelationID})
}
