package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskcherry/internal/dashboard"
	"taskcherry/internal/dnd"
	"taskcherry/internal/model"
	"taskcherry/internal/repository"
)

type WidgetHandler struct {
	widgetRepo repository.WidgetRepositoryInterface
	cardRepo   repository.CardRepositoryInterface
	columnRepo repository.ColumnRepositoryInterface
	boardRepo  repository.BoardRepositoryInterface
}

func NewWidgetHandler(
	widgetRepo repository.WidgetRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
	columnRepo repository.ColumnRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
) *WidgetHandler {
	return &WidgetHandler{
		widgetRepo: widgetRepo,
		cardRepo:   cardRepo,
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
	}
}

type CreateWidgetRequest struct {
	BoardID    string               `json:"board_id" binding:"required,uuid"`
	WidgetType string               `json:"widget_type" binding:"required"`
	Title      string               `json:"title" binding:"required"`
	Icon       string               `json:"icon"`
	Settings   model.WidgetSettings `json:"settings"`
}

type UpdateWidgetRequest struct {
	Title    *string               `json:"title"`
	Icon     *string               `json:"icon"`
	Settings *model.WidgetSettings `json:"settings"`
}

type WidgetResponse struct {
	ID         string               `json:"id"`
	BoardID    string               `json:"board_id"`
	WidgetType string               `json:"widget_type"`
	Title      string               `json:"title"`
	Icon       string               `json:"icon"`
	Settings   model.WidgetSettings `json:"settings"`
	Order      int                  `json:"order"`
}

// DashboardWidgetResponse is a widget plus its computed display value and
// progress percentage.
type DashboardWidgetResponse struct {
	WidgetResponse
	Value    string  `json:"value"`
	Progress float64 `json:"progress"`
}

func widgetResponse(w *model.Widget) WidgetResponse {
	return WidgetResponse{
		ID:         w.ID.String(),
		BoardID:    w.BoardID.String(),
		WidgetType: w.WidgetType,
		Title:      w.Title,
		Icon:       w.Icon,
		Settings:   w.Settings,
		Order:      w.Order,
	}
}

func validWidgetType(t string) bool {
	for _, known := range model.WidgetTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (h *WidgetHandler) requireWidget(c *gin.Context, widgetID, userID uuid.UUID) (*model.Widget, bool) {
	widget, err := h.widgetRepo.GetByID(c.Request.Context(), widgetID)
	if err != nil {
		if err == repository.ErrWidgetNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Widget not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widget"})
		}
		return nil, false
	}
	if _, ok := requireBoard(c, h.boardRepo, widget.BoardID, userID); !ok {
		return nil, false
	}
	return widget, true
}

// Create adds a widget to the end of the board's dashboard strip.
func (h *WidgetHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !validWidgetType(req.WidgetType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown widget type"})
		return
	}

	boardID, _ := uuid.Parse(req.BoardID)
	if _, ok := requireBoard(c, h.boardRepo, boardID, userID); !ok {
		return
	}

	maxOrder, err := h.widgetRepo.GetMaxOrder(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine widget order"})
		return
	}

	widget := &model.Widget{
		BoardID:    boardID,
		WidgetType: req.WidgetType,
		Title:      req.Title,
		Icon:       req.Icon,
		Settings:   req.Settings,
		Order:      maxOrder + 1,
	}

	if err := h.widgetRepo.Create(c.Request.Context(), widget); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create widget"})
		return
	}

	c.JSON(http.StatusCreated, widgetResponse(widget))
}

func (h *WidgetHandler) GetByBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := requireBoard(c, h.boardRepo, boardID, userID); !ok {
		return
	}

	widgets, err := h.widgetRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widgets"})
		return
	}

	response := make([]WidgetResponse, len(widgets))
	for i := range widgets {
		response[i] = widgetResponse(&widgets[i])
	}

	c.JSON(http.StatusOK, response)
}

// Dashboard returns the board's widgets with their computed values and
// progress bars, evaluated against the board's live cards and columns.
func (h *WidgetHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := requireBoard(c, h.boardRepo, boardID, userID); !ok {
		return
	}

	widgets, err := h.widgetRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widgets"})
		return
	}
	cards, err := h.cardRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}
	columns, err := h.columnRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	response := make([]DashboardWidgetResponse, len(widgets))
	for i := range widgets {
		response[i] = DashboardWidgetResponse{
			WidgetResponse: widgetResponse(&widgets[i]),
			Value:          dashboard.Value(widgets[i], cards, columns),
			Progress:       dashboard.Progress(widgets[i], cards, columns),
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *WidgetHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	widgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	widget, ok := h.requireWidget(c, widgetID, userID)
	if !ok {
		return
	}

	var req UpdateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != nil {
		widget.Title = *req.Title
	}
	if req.Icon != nil {
		widget.Icon = *req.Icon
	}
	if req.Settings != nil {
		widget.Settings = *req.Settings
	}

	if err := h.widgetRepo.Update(c.Request.Context(), widget); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update widget"})
		return
	}

	c.JSON(http.StatusOK, widgetResponse(widget))
}

func (h *WidgetHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	widgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.requireWidget(c, widgetID, userID); !ok {
		return
	}

	if err := h.widgetRepo.Delete(c.Request.Context(), widgetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete widget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Widget deleted successfully"})
}

// Move handles a widget drag on the dashboard strip; always a same-list
// reorder.
func (h *WidgetHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	widgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	widget, ok := h.requireWidget(c, widgetID, userID)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	overID, _ := uuid.Parse(req.OverID)

	widgets, err := h.widgetRepo.GetByBoardID(c.Request.Context(), widget.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widgets"})
		return
	}

	plan := dnd.PlanWidgetDrop(widgets, widgetID, overID)
	if len(plan) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to move"})
		return
	}

	updates := make([]repository.OrderUpdate, len(plan))
	for i, u := range plan {
		updates[i] = repository.OrderUpdate{ID: u.ID, Order: u.Order}
	}
	if err := h.widgetRepo.Reorder(c.Request.Context(), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder widgets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Widgets reordered successfully"})
}
