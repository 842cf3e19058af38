package handler

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// StateCodeHandler handles GST state-code master endpoints.
type StateCodeHandler struct {
	stateCodeService service.StateCodeService
}

// NewStateCodeHandler creates a new StateCodeHandler.
func NewStateCodeHandler(stateCodeService service.StateCodeService) *StateCodeHandler {
	return &StateCodeHandler{stateCodeService: stateCodeService}
}

// List handles GET /api/v1/state-codes
// @Summary List the GST state-code master
// @Tags state-codes
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.StateCode}
// @Router /state-codes [get]
func (h *StateCodeHandler) List(c *gin.Context) {
	codes, err := h.stateCodeService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, codes)
}
