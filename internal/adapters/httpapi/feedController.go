package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController {
	return &FeedController{fc: fc}
}

func (ctl *FeedController) GetRecent(c *gin.Context) {
	startStr := c.DefaultQuery("start", "0")
	limitStr := c.DefaultQuery("limit", "20")

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	posts, err := ctl.fc.GetRecent(c.Request.Context(), start, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed": posts})
}
