package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneymap/internal/errors"
	"moneymap/internal/models"
	"moneymap/internal/services"
	"moneymap/internal/uuid"
)

// InvestmentHandler handles investment requests
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// InvestmentRequest is the payload for creating or replacing an investment.
type InvestmentRequest struct {
	UserID      string          `json:"userId" binding:"required"`
	Description string          `json:"description" binding:"required"`
	StartDate   time.Time       `json:"startDate" binding:"required"`
	EndDate     time.Time       `json:"endDate" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Firm        string          `json:"firm" binding:"required"`
}

func (r *InvestmentRequest) draft() services.InvestmentDraft {
	return services.InvestmentDraft{
		UserID:      r.UserID,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Amount:      r.Amount,
		Firm:        r.Firm,
	}
}

// DeleteInvestmentResponse confirms a deletion with the removed investment's prior state.
type DeleteInvestmentResponse struct {
	Message    string            `json:"message"`
	Investment models.Investment `json:"investment"`
}

// GetAllByUserID handles fetching every investment owned by a user
// @Summary     Get all investments for a user
// @Description Get all investments owned by the given user ID
// @Tags        investments
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array} models.Investment "List of investments"
// @Failure     400 {object} ErrorResponse "Missing user ID"
// @Failure     403 {object} ErrorResponse "Subject mismatch"
// @Failure     404 {object} ErrorResponse "No investments found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/getAllByUserID/{userId} [get]
func (h *InvestmentHandler) GetAllByUserID(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required."})
		return
	}
	if err := checkOwnership(c, userID); err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.investmentService.FindByUser(userID)
	if err != nil {
		respondWithDetail(c, http.StatusInternalServerError, "An error occurred while fetching investments.", err)
		return
	}
	if len(investments) == 0 {
		respondWithError(c, apperrors.ErrNoInvestments)
		return
	}

	c.JSON(http.StatusOK, investments)
}

// GetByUserAndDateRange handles fetching a user's investments inside a date range
// @Summary     Get investments by date range
// @Description Get a user's investments whose start and end dates both fall within [startDate, endDate]
// @Tags        investments
// @Produce     json
// @Param       userId path string true "User ID"
// @Param       startDate query string true "Range start (YYYY-MM-DD or RFC3339)"
// @Param       endDate query string true "Range end (YYYY-MM-DD or RFC3339)"
// @Success     200 {array} models.Investment "List of investments"
// @Failure     400 {object} ErrorResponse "Missing or unparseable dates"
// @Failure     404 {object} ErrorResponse "No investments found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/getByUserAndDateRange/{userId} [get]
func (h *InvestmentHandler) GetByUserAndDateRange(c *gin.Context) {
	userID := c.Param("userId")
	if err := checkOwnership(c, userID); err != nil {
		respondWithError(c, err)
		return
	}

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		respondWithError(c, apperrors.ErrDateRangeRequired)
		return
	}

	start, errS := parseDate(startStr)
	end, errE := parseDate(endStr)
	if errS != nil || errE != nil {
		respondWithError(c, apperrors.ErrInvalidDateFormat)
		return
	}

	investments, err := h.investmentService.FindByUserAndDateRange(userID, start, end)
	if err != nil {
		respondWithDetail(c, http.StatusInternalServerError, "An error occurred while fetching investments by date range.", err)
		return
	}
	if len(investments) == 0 {
		respondWithError(c, apperrors.ErrNoInvestmentsInRange)
		return
	}

	c.JSON(http.StatusOK, investments)
}

// Create handles the creation of a new investment
// @Summary     Create an investment
// @Description Create a new investment holding
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       request body InvestmentRequest true "Investment draft"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Validation failure"
// @Failure     403 {object} ErrorResponse "Subject mismatch"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) Create(c *gin.Context) {
	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithDetail(c, http.StatusBadRequest, "Failed to create a new investment.", err)
		return
	}
	if err := checkOwnership(c, req.UserID); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.Create(req.draft())
	if err != nil {
		status := http.StatusInternalServerError
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			status = appErr.StatusCode
		}
		respondWithDetail(c, status, "Failed to create a new investment.", err)
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// Update handles replacing an investment by ID
// @Summary     Replace an investment
// @Description Overwrite all mutable fields of an investment with the request body
// @Tags        investments
// @Accept      json
// @Produce     json
// @Param       id path string true "Investment ID"
// @Param       request body InvestmentRequest true "Full desired state"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid ID or validation failure"
// @Failure     403 {object} ErrorResponse "Subject mismatch"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		respondWithError(c, apperrors.ErrInvalidInvestmentID)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithDetail(c, http.StatusBadRequest, "Failed to update the investment.", err)
		return
	}
	if err := checkOwnership(c, req.UserID); err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.Replace(id, req.draft())
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.StatusCode == http.StatusNotFound {
			respondWithError(c, err)
			return
		}
		status := http.StatusInternalServerError
		if errors.As(err, &appErr) {
			status = appErr.StatusCode
		}
		respondWithDetail(c, status, "Failed to update the investment.", err)
		return
	}

	c.JSON(http.StatusOK, investment)
}

// Delete handles deleting an investment by ID
// @Summary     Delete an investment
// @Description Delete an investment and return its prior state for confirmation
// @Tags        investments
// @Produce     json
// @Param       id path string true "Investment ID"
// @Success     200 {object} DeleteInvestmentResponse "Investment deleted"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		respondWithError(c, apperrors.ErrInvalidInvestmentID)
		return
	}

	investment, err := h.investmentService.Delete(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteInvestmentResponse{
		Message:    "Investment successfully deleted.",
		Investment: *investment,
	})
}
