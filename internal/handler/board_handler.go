package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskcherry/internal/dnd"
	"taskcherry/internal/model"
	"taskcherry/internal/repository"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface) *BoardHandler {
	return &BoardHandler{boardRepo: boardRepo}
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBoardRequest struct {
	Name string `json:"name"`
}

type MoveRequest struct {
	OverID string `json:"over_id" binding:"required,uuid"`
}

type BoardResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

func boardResponse(b *model.Board) BoardResponse {
	return BoardResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Order:     b.Order,
		OwnerID:   b.OwnerID.String(),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// Create creates a new board for the authenticated user, appended after
// their existing boards.
func (h *BoardHandler) Create(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	maxOrder, err := h.boardRepo.GetMaxOrder(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine board order"})
		return
	}

	board := &model.Board{
		Name:    req.Name,
		Order:   maxOrder + 1,
		OwnerID: ownerID,
	}

	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, boardResponse(board))
}

func (h *BoardHandler) GetAll(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boardRepo.GetOwned(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = boardResponse(&boards[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, ok := requireBoard(c, h.boardRepo, boardID, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, boardResponse(board))
}

func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, ok := requireBoard(c, h.boardRepo, boardID, userID)
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name != "" {
		board.Name = req.Name
	}

	if err := h.boardRepo.Update(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}

	c.JSON(http.StatusOK, boardResponse(board))
}

// Delete removes a board; columns, cards, widgets and reports under it go
// with it.
func (h *BoardHandler) Delete(c *gin.Context) {
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

	if err := h.boardRepo.Delete(c.Request.Context(), boardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}

// Move handles the end of a board-tab drag: the dragged board takes the
// position of the tab it was dropped on and the whole set is renumbered.
func (h *BoardHandler) Move(c *gin.Context) {
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

	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	overID, _ := uuid.Parse(req.OverID)

	boards, err := h.boardRepo.GetOwned(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	plan := dnd.PlanBoardDrop(boards, boardID, overID)
	if len(plan) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to move"})
		return
	}

	updates := make([]repository.OrderUpdate, len(plan))
	for i, u := range plan {
		updates[i] = repository.OrderUpdate{ID: u.ID, Order: u.Order}
	}
	if err := h.boardRepo.Reorder(c.Request.Context(), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder boards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Boards reordered successfully"})
}
