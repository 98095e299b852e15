package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskcherry/internal/model"
	"taskcherry/internal/repository"
)

type ReportHandler struct {
	reportRepo   repository.ReportRepositoryInterface
	boardRepo    repository.BoardRepositoryInterface
	columnRepo   repository.ColumnRepositoryInterface
	cardRepo     repository.CardRepositoryInterface
	widgetRepo   repository.WidgetRepositoryInterface
	settingsRepo repository.SettingsRepositoryInterface
}

func NewReportHandler(
	reportRepo repository.ReportRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	columnRepo repository.ColumnRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
	widgetRepo repository.WidgetRepositoryInterface,
	settingsRepo repository.SettingsRepositoryInterface,
) *ReportHandler {
	return &ReportHandler{
		reportRepo:   reportRepo,
		boardRepo:    boardRepo,
		columnRepo:   columnRepo,
		cardRepo:     cardRepo,
		widgetRepo:   widgetRepo,
		settingsRepo: settingsRepo,
	}
}

type CreateReportRequest struct {
	BoardID     string `json:"board_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type ReportResponse struct {
	ID          string                 `json:"id"`
	BoardID     string                 `json:"board_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Metadata    model.SnapshotMetadata `json:"metadata"`
	CreatedAt   string                 `json:"created_at"`
}

type ReportDetailResponse struct {
	ReportResponse
	SnapshotData model.Snapshot `json:"snapshot_data"`
}

func reportResponse(r *model.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID.String(),
		BoardID:     r.BoardID.String(),
		Title:       r.Title,
		Description: r.Description,
		Metadata:    r.SnapshotData.Metadata,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func (h *ReportHandler) requireReport(c *gin.Context, reportID, userID uuid.UUID) (*model.Report, bool) {
	report, err := h.reportRepo.GetByID(c.Request.Context(), reportID)
	if err != nil {
		if err == repository.ErrReportNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return nil, false
	}
	if _, ok := requireBoard(c, h.boardRepo, report.BoardID, userID); !ok {
		return nil, false
	}
	return report, true
}

// Create captures the board's current columns, cards, widgets and the
// owner's settings into a snapshot and stores it with the report. The
// snapshot is frozen at this point: later board edits never show through.
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	boardID, _ := uuid.Parse(req.BoardID)
	if _, ok := requireBoard(c, h.boardRepo, boardID, userID); !ok {
		return
	}

	ctx := c.Request.Context()

	columns, err := h.columnRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}
	cards, err := h.cardRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}
	widgets, err := h.widgetRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widgets"})
		return
	}
	settings, err := h.settingsRepo.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	snapshotSettings := model.UserSettings{
		UserID:            userID,
		StarCount:         model.DefaultStarCount,
		WidgetDisplayMode: model.DefaultWidgetDisplayMode,
	}
	if settings != nil {
		snapshotSettings = *settings
	}

	totalPrice := 0.0
	for _, card := range cards {
		totalPrice += card.Price
	}

	report := &model.Report{
		BoardID:     boardID,
		Title:       req.Title,
		Description: req.Description,
		SnapshotData: model.Snapshot{
			Columns:      columns,
			Cards:        cards,
			Widgets:      widgets,
			UserSettings: snapshotSettings,
			Metadata: model.SnapshotMetadata{
				TotalCards:  len(cards),
				TotalPrice:  totalPrice,
				ColumnCount: len(columns),
				CaptureDate: time.Now().UTC(),
			},
		},
	}

	if err := h.reportRepo.Create(ctx, report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, reportResponse(report))
}

// GetAll lists the user's reports, optionally narrowed to one board with
// ?board_id=. List rows carry only the metadata, not the full snapshot.
func (h *ReportHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var reports []model.Report
	var err error

	if boardParam := c.Query("board_id"); boardParam != "" {
		boardID, parseErr := uuid.Parse(boardParam)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
			return
		}
		if _, ok := requireBoard(c, h.boardRepo, boardID, userID); !ok {
			return
		}
		reports, err = h.reportRepo.GetByBoardID(c.Request.Context(), boardID)
	} else {
		reports, err = h.reportRepo.GetOwned(c.Request.Context(), userID)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reports"})
		return
	}

	response := make([]ReportResponse, len(reports))
	for i := range reports {
		response[i] = reportResponse(&reports[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns the report with its full snapshot.
func (h *ReportHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, ok := h.requireReport(c, reportID, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ReportDetailResponse{
		ReportResponse: reportResponse(report),
		SnapshotData:   report.SnapshotData,
	})
}

func (h *ReportHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.requireReport(c, reportID, userID); !ok {
		return
	}

	if err := h.reportRepo.Delete(c.Request.Context(), reportID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
