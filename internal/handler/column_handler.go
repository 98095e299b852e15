package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskcherry/internal/dnd"
	"taskcherry/internal/model"
	"taskcherry/internal/ordering"
	"taskcherry/internal/repository"
)

type ColumnHandler struct {
	columnRepo repository.ColumnRepositoryInterface
	cardRepo   repository.CardRepositoryInterface
	boardRepo  repository.BoardRepositoryInterface
}

func NewColumnHandler(
	columnRepo repository.ColumnRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
) *ColumnHandler {
	return &ColumnHandler{
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		boardRepo:  boardRepo,
	}
}

type CreateColumnRequest struct {
	Title   string `json:"title" binding:"required"`
	BoardID string `json:"board_id" binding:"required,uuid"`
}

type UpdateColumnRequest struct {
	Title  string  `json:"title"`
	Pinned *bool   `json:"pinned"`
	SortBy *string `json:"sort_by" binding:"omitempty,oneof=order priority_high priority_low price_high price_low date_asc date_desc title"`
}

type ColumnResponse struct {
	ID      string `json:"id"`
	BoardID string `json:"board_id"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
	Pinned  bool   `json:"pinned"`
	SortBy  string `json:"sort_by"`
}

func columnResponse(col *model.Column) ColumnResponse {
	return ColumnResponse{
		ID:      col.ID.String(),
		BoardID: col.BoardID.String(),
		Title:   col.Title,
		Order:   col.Order,
		Pinned:  col.Pinned,
		SortBy:  col.SortBy,
	}
}

// requireColumn loads a column and checks board ownership in one step.
func (h *ColumnHandler) requireColumn(c *gin.Context, columnID, userID uuid.UUID) (*model.Column, bool) {
	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return nil, false
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return nil, false
	}
	if _, ok := requireBoard(c, h.boardRepo, column.BoardID, userID); !ok {
		return nil, false
	}
	return column, true
}

// Create appends a new column to the end of the board.
func (h *ColumnHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	boardID, _ := uuid.Parse(req.BoardID)
	if _, ok := requireBoard(c, h.boardRepo, boardID, userID); !ok {
		return
	}

	maxOrder, err := h.columnRepo.GetMaxOrder(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine column order"})
		return
	}

	column := &model.Column{
		BoardID: boardID,
		Title:   req.Title,
		Order:   maxOrder + 1,
		SortBy:  model.SortManual,
	}

	if err := h.columnRepo.Create(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create column"})
		return
	}

	c.JSON(http.StatusCreated, columnResponse(column))
}

func (h *ColumnHandler) GetAll(c *gin.Context) {
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

	columns, err := h.columnRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	response := make([]ColumnResponse, len(columns))
	for i := range columns {
		response[i] = columnResponse(&columns[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *ColumnHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	column, ok := h.requireColumn(c, columnID, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, columnResponse(column))
}

// GetCards returns the column's cards. By default they come back in the
// manual order sequence; ?sorted=true applies the column's sort_by
// projection instead. The projection never writes anything back.
func (h *ColumnHandler) GetCards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	column, ok := h.requireColumn(c, columnID, userID)
	if !ok {
		return
	}

	cards, err := h.cardRepo.GetByColumnID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	if c.Query("sorted") == "true" {
		cards = ordering.Project(cards, column.SortBy)
	}

	response := make([]CardResponse, len(cards))
	for i := range cards {
		response[i] = cardResponse(&cards[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *ColumnHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	column, ok := h.requireColumn(c, columnID, userID)
	if !ok {
		return
	}

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != "" {
		column.Title = req.Title
	}
	if req.Pinned != nil {
		column.Pinned = *req.Pinned
	}
	if req.SortBy != nil {
		column.SortBy = *req.SortBy
	}

	if err := h.columnRepo.Update(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column"})
		return
	}

	c.JSON(http.StatusOK, columnResponse(column))
}

// Delete refuses to remove a column that still holds cards. The rule lives
// here rather than in the database: the client shows it as a blocking
// dialog, and no delete call is issued while cards remain.
func (h *ColumnHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.requireColumn(c, columnID, userID); !ok {
		return
	}

	count, err := h.cardRepo.CountByColumnID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cards"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Column still contains cards; move or delete them first"})
		return
	}

	if err := h.columnRepo.Delete(c.Request.Context(), columnID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete column"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted successfully"})
}

// Move handles the end of a column-header drag: the dragged column takes
// the dropped-on column's position and every column's order is rewritten.
// Pinned and unpinned columns share the one order sequence.
func (h *ColumnHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	column, ok := h.requireColumn(c, columnID, userID)
	if !ok {
		return
	}

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	overID, _ := uuid.Parse(req.OverID)

	columns, err := h.columnRepo.GetByBoardID(c.Request.Context(), column.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	plan := dnd.PlanColumnDrop(columns, columnID, overID)
	if len(plan) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to move"})
		return
	}

	updates := make([]repository.OrderUpdate, len(plan))
	for i, u := range plan {
		updates[i] = repository.OrderUpdate{ID: u.ID, Order: u.Order}
	}
	if err := h.columnRepo.Reorder(c.Request.Context(), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder columns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Columns reordered successfully"})
}
