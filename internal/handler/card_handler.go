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

type CardHandler struct {
	cardRepo   repository.CardRepositoryInterface
	columnRepo repository.ColumnRepositoryInterface
	boardRepo  repository.BoardRepositoryInterface
}

func NewCardHandler(
	cardRepo repository.CardRepositoryInterface,
	columnRepo repository.ColumnRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
) *CardHandler {
	return &CardHandler{
		cardRepo:   cardRepo,
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
	}
}

type CreateCardRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Priority    *int    `json:"priority" binding:"omitempty,gte=0,lte=5"`
	Note        string  `json:"note"`
	ColumnID    string  `json:"column_id" binding:"required,uuid"`
}

type UpdateCardRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Priority    *int     `json:"priority" binding:"omitempty,gte=0,lte=5"`
	Note        *string  `json:"note"`
}

// CardMoveRequest carries a drag-end: the card was dropped over over_id,
// which may identify another card or a column body. The server classifies
// the target.
type CardMoveRequest struct {
	OverID string `json:"over_id" binding:"required,uuid"`
}

type CardResponse struct {
	ID          string  `json:"id"`
	BoardID     string  `json:"board_id"`
	ColumnID    string  `json:"column_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Priority    *int    `json:"priority"`
	Note        string  `json:"note"`
	Order       int     `json:"order"`
	CreatedAt   string  `json:"created_at"`
}

func cardResponse(card *model.Card) CardResponse {
	return CardResponse{
		ID:          card.ID.String(),
		BoardID:     card.BoardID.String(),
		ColumnID:    card.ColumnID.String(),
		Title:       card.Title,
		Description: card.Description,
		Price:       card.Price,
		Priority:    card.Priority,
		Note:        card.Note,
		Order:       card.Order,
		CreatedAt:   card.CreatedAt.Format(time.RFC3339),
	}
}

func (h *CardHandler) requireCard(c *gin.Context, cardID, userID uuid.UUID) (*model.Card, bool) {
	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		if err == repository.ErrCardNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return nil, false
	}
	if _, ok := requireBoard(c, h.boardRepo, card.BoardID, userID); !ok {
		return nil, false
	}
	return card, true
}

// Create adds a card at the end of its column: order = max(existing)+1.
func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	columnID, _ := uuid.Parse(req.ColumnID)
	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	if _, ok := requireBoard(c, h.boardRepo, column.BoardID, userID); !ok {
		return
	}

	maxOrder, err := h.cardRepo.GetMaxOrder(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine card order"})
		return
	}

	card := &model.Card{
		BoardID:     column.BoardID,
		ColumnID:    columnID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Priority:    req.Priority,
		Note:        req.Note,
		Order:       maxOrder + 1,
	}

	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, cardResponse(card))
}

func (h *CardHandler) GetByBoard(c *gin.Context) {
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

	cards, err := h.cardRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	response := make([]CardResponse, len(cards))
	for i := range cards {
		response[i] = cardResponse(&cards[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *CardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, ok := h.requireCard(c, cardID, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, ok := h.requireCard(c, cardID, userID)
	if !ok {
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.Price != nil {
		card.Price = *req.Price
	}
	if req.Priority != nil {
		card.Priority = req.Priority
	}
	if req.Note != nil {
		card.Note = *req.Note
	}

	if err := h.cardRepo.Update(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.requireCard(c, cardID, userID); !ok {
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), cardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}

// Move finishes a card drag. The drop target decides what happens:
// a column body appends the card there, a sibling in the same column
// triggers a full renumber of that column, and a card in another column
// takes just that one slot. The persisted writes are exactly the plan's
// updates, nothing more.
func (h *CardHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, ok := h.requireCard(c, cardID, userID)
	if !ok {
		return
	}

	var req CardMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	overID, _ := uuid.Parse(req.OverID)

	cards, err := h.cardRepo.GetByBoardID(c.Request.Context(), card.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}
	columns, err := h.columnRepo.GetByBoardID(c.Request.Context(), card.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	plan := dnd.PlanCardDrop(cards, columns, cardID, overID)

	switch plan.Kind {
	case dnd.CardPlanNone:
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to move"})
		return

	case dnd.CardPlanAppend, dnd.CardPlanMove:
		u := plan.Updates[0]
		if err := h.cardRepo.Move(c.Request.Context(), u.ID, u.ColumnID, u.Order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move card"})
			return
		}

	case dnd.CardPlanReorder:
		updates := make([]repository.OrderUpdate, len(plan.Updates))
		for i, u := range plan.Updates {
			updates[i] = repository.OrderUpdate{ID: u.ID, Order: u.Order}
		}
		if err := h.cardRepo.Reorder(c.Request.Context(), updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder cards"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card moved successfully"})
}
