package handlers

import (
	"net/http"

	reviewRepo "gobookhotel/database/repository/review"
	"gobookhotel/models"
	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves review submission and listing.
type ReviewHandler struct {
	Repo   reviewRepo.ReviewRepository
	Logger *zap.Logger
}

func NewReviewHandler(repo reviewRepo.ReviewRepository, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Repo: repo, Logger: logger}
}

// SubmitReviewHandler inserts the posted review and returns the store's
// insert acknowledgement.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid review payload", err.Error())
		return
	}

	insertedID, err := h.Repo.Create(&review)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while submitting the review", err.Error())
		return
	}

	h.Logger.Debug("review submitted", zap.String("insertedId", insertedID), zap.String("refId", review.RefID))
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": insertedID})
}

// ListReviewsHandler returns reviews, filtered on the generic "id" field when
// ?id= is given.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Repo.GetAll(c.Query("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while fetching reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}
