package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type Handler struct {
	createTicketUC  CreateTicketExecutor
	getTicketUC     GetTicketExecutor
	listTicketsUC   ListTicketsExecutor
	patchTicketUC   PatchTicketExecutor
	changeStatusUC  ChangeStatusExecutor
	updateRemarksUC UpdateRemarksExecutor
	deleteTicketUC  DeleteTicketExecutor
	getStatsUC      GetStatsExecutor
	addCommentUC    AddCommentExecutor
	listCommentsUC  ListCommentsExecutor
	logger          logger.Interface
}

func NewHandler(
	createTicketUC CreateTicketExecutor,
	getTicketUC GetTicketExecutor,
	listTicketsUC ListTicketsExecutor,
	patchTicketUC PatchTicketExecutor,
	changeStatusUC ChangeStatusExecutor,
	updateRemarksUC UpdateRemarksExecutor,
	deleteTicketUC DeleteTicketExecutor,
	getStatsUC GetStatsExecutor,
	addCommentUC AddCommentExecutor,
	listCommentsUC ListCommentsExecutor,
) *Handler {
	return &Handler{
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		patchTicketUC:   patchTicketUC,
		changeStatusUC:  changeStatusUC,
		updateRemarksUC: updateRemarksUC,
		deleteTicketUC:  deleteTicketUC,
		getStatsUC:      getStatsUC,
		addCommentUC:    addCommentUC,
		listCommentsUC:  listCommentsUC,
		logger:          logger.NewLogger(),
	}
}

func actorFromContext(c *gin.Context) string {
	if name := c.GetString(constants.ContextKeyAdminName); name != "" {
		return name
	}
	return "system"
}

// CreateTicket handles POST /tickets
// @Summary Create a new ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tickets [post]
func (h *Handler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
// @Summary Get ticket by ID
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param include_activities query bool false "Include the audit trail"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [get]
func (h *Handler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:          ticketID,
		IncludeActivities: c.Query("include_activities") == "true",
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Status filter"
// @Param search query string false "Title substring filter"
// @Success 200 {object} utils.APIResponse
// @Router /tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	var req ListTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// PatchTicket handles PATCH /tickets/:id
// @Summary Update ticket fields
// @Description Applies a partial update over the allow-listed fields
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body PatchTicketRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [patch]
func (h *Handler) PatchTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PatchTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.patchTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, actorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ChangeStatus handles PUT /tickets/:id/status
// @Summary Change ticket status
// @Description Moves the ticket along the lifecycle; resolving requires remarks
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body ChangeStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tickets/{id}/status [put]
func (h *Handler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
		Remarks:  req.Remarks,
		Actor:    actorFromContext(c),
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// UpdateRemarks handles PUT /tickets/:id/remarks
// @Summary Update resolved remarks
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body UpdateRemarksRequest true "Remarks"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{id}/remarks [put]
func (h *Handler) UpdateRemarks(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRemarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateRemarksCommand{
		TicketID: ticketID,
		Remarks:  req.Remarks,
		Actor:    actorFromContext(c),
	}

	result, err := h.updateRemarksUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Remarks updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
// @Summary Delete a ticket
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [delete]
func (h *Handler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID: ticketID,
		Actor:    actorFromContext(c),
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetStats handles GET /tickets/stats
// @Summary Ticket counts by lifecycle bucket
// @Tags tickets
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /tickets/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /tickets/:id/comments
// @Summary Add a comment
// @Description Comment content is markdown; the response carries sanitized HTML
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body AddCommentRequest true "Comment data"
// @Success 201 {object} utils.APIResponse
// @Router /tickets/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID: ticketID,
		Author:   actorFromContext(c),
		Content:  req.Content,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
// @Summary List comments
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
