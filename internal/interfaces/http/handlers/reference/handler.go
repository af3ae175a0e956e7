package reference

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/shared/utils"
)

type ListReferencesExecutor interface {
	Execute(ctx context.Context) ([]appdto.ReferenceDTO, error)
}

// Handler serves the organization and platform lookup lists the dashboard
// uses to populate ticket forms.
type Handler struct {
	listOrganizationsUC ListReferencesExecutor
	listPlatformsUC     ListReferencesExecutor
}

func NewHandler(listOrganizationsUC, listPlatformsUC ListReferencesExecutor) *Handler {
	return &Handler{
		listOrganizationsUC: listOrganizationsUC,
		listPlatformsUC:     listPlatformsUC,
	}
}

// ListOrganizations handles GET /organizations
// @Summary List organizations
// @Tags references
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /organizations [get]
func (h *Handler) ListOrganizations(c *gin.Context) {
	result, err := h.listOrganizationsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlatforms handles GET /platforms
// @Summary List platforms
// @Tags references
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /platforms [get]
func (h *Handler) ListPlatforms(c *gin.Context) {
	result, err := h.listPlatformsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
