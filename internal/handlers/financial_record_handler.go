package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneymap/internal/errors"
	"moneymap/internal/models"
	"moneymap/internal/services"
	"moneymap/internal/uuid"
)

// FinancialRecordHandler handles financial record requests
type FinancialRecordHandler struct {
	recordService services.FinancialRecordServicer
}

// NewFinancialRecordHandler creates a new FinancialRecordHandler
func NewFinancialRecordHandler(recordService services.FinancialRecordServicer) *FinancialRecordHandler {
	return &FinancialRecordHandler{recordService: recordService}
}

// FinancialRecordRequest is the payload for creating or replacing a record.
// A PUT must carry the full desired state; fields are not merged.
type FinancialRecordRequest struct {
	UserID        string          `json:"userId" binding:"required"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category" binding:"required,record_category"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,payment_method"`
}

func (r *FinancialRecordRequest) draft() services.FinancialRecordDraft {
	return services.FinancialRecordDraft{
		UserID:        r.UserID,
		Date:          r.Date,
		Description:   r.Description,
		Amount:        r.Amount,
		Category:      models.RecordCategory(r.Category),
		PaymentMethod: models.PaymentMethod(r.PaymentMethod),
	}
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// DeleteRecordResponse confirms a deletion with the removed record's prior state.
type DeleteRecordResponse struct {
	Message string                 `json:"message"`
	Record  models.FinancialRecord `json:"record"`
}

// GetAllByUserID handles fetching every record owned by a user
// @Summary     Get all financial records for a user
// @Description Get all financial records owned by the given user ID
// @Tags        financial-records
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array} models.FinancialRecord "List of records"
// @Failure     403 {object} ErrorResponse "Subject mismatch"
// @Failure     404 {object} ErrorResponse "No records found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /financial-records/getAllByUserID/{userId} [get]
func (h *FinancialRecordHandler) GetAllByUserID(c *gin.Context) {
	userID := c.Param("userId")
	if err := checkOwnership(c, userID); err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.recordService.FindByUser(userID)
	if err != nil {
		respondWithDetail(c, http.StatusInternalServerError, "An error occurred while fetching records.", err)
		return
	}
	if len(records) == 0 {
		respondWithError(c, apperrors.ErrNoRecords)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetByUserAndMonth handles fetching a user's records for one calendar month
// @Summary     Get financial records by month
// @Description Get a user's financial records whose date falls in the given month and year
// @Tags        financial-records
// @Produce     json
// @Param       userId path string true "User ID"
// @Param       month query int true "Month (1-12)"
// @Param       year query int true "Year (1900 to current)"
// @Success     200 {array} models.FinancialRecord "List of records"
// @Failure     400 {object} ErrorResponse "Invalid month or year"
// @Failure     404 {object} ErrorResponse "No records found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /financial-records/getByUserAndMonth/{userId} [get]
func (h *FinancialRecordHandler) GetByUserAndMonth(c *gin.Context) {
	userID := c.Param("userId")
	if err := checkOwnership(c, userID); err != nil {
		respondWithError(c, err)
		return
	}

	month, errM := strconv.Atoi(c.Query("month"))
	year, errY := strconv.Atoi(c.Query("year"))
	if errM != nil || errY != nil {
		respondWithError(c, apperrors.ErrMonthYearRequired)
		return
	}

	records, err := h.recordService.FindByUserAndMonth(userID, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if len(records) == 0 {
		respondWithError(c, apperrors.ErrNoRecordsForMonth)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Create handles the creation of a new financial record
// @Summary     Create a financial record
// @Description Create a new income or expense record
// @Tags        financial-records
// @Accept      json
// @Produce     json
// @Param       request body FinancialRecordRequest true "Record draft"
// @Success     201 {object} models.FinancialRecord "Record created"
// @Failure     400 {object} ErrorResponse "Validation failure"
// @Failure     403 {object} ErrorResponse "Subject mismatch"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /financial-records [post]
func (h *FinancialRecordHandler) Create(c *gin.Context) {
	var req FinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithDetail(c, http.StatusBadRequest, "Failed to create a new record.", err)
		return
	}
	if err := checkOwnership(c, req.UserID); err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.Create(req.draft())
	if err != nil {
		status := http.StatusInternalServerError
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			status = appErr.StatusCode
		}
		respondWithDetail(c, status, "Failed to create a new record.", err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Update handles replacing a financial record by ID
// @Summary     Replace a financial record
// @Description Overwrite all mutable fields of a record with the request body
// @Tags        financial-records
// @Accept      json
// @Produce     json
// @Param       id path string true "Record ID"
// @Param       request body FinancialRecordRequest true "Full desired state"
// @Success     200 {object} models.FinancialRecord "Updated record"
// @Failure     400 {object} ErrorResponse "Invalid ID or validation failure"
// @Failure     403 {object} ErrorResponse "Subject mismatch"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /financial-records/{id} [put]
func (h *FinancialRecordHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		respondWithError(c, apperrors.ErrInvalidRecordID)
		return
	}

	var req FinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithDetail(c, http.StatusBadRequest, "Failed to update the record.", err)
		return
	}
	if err := checkOwnership(c, req.UserID); err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.Replace(id, req.draft())
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
		respondWithDetail(c, status, "Failed to update the record.", err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete handles deleting a financial record by ID
// @Summary     Delete a financial record
// @Description Delete a record and return its prior state for confirmation
// @Tags        financial-records
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} DeleteRecordResponse "Record deleted"
// @Failure     400 {object} ErrorResponse "Invalid record ID"
// @Failure     403 {object} ErrorResponse "Subject mismatch"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /financial-records/{id} [delete]
func (h *FinancialRecordHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		respondWithError(c, apperrors.ErrInvalidRecordID)
		return
	}

	record, err := h.recordService.Delete(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteRecordResponse{
		Message: "Record successfully deleted.",
		Record:  *record,
	})
}
