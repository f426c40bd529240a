package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/portfolio_end/utils"
)

// GetUsers 获取用户目录
// GET /api/users
func GetUsers(c *gin.Context) {
	users := identityProvider.List()
	c.JSON(http.StatusOK, users)
}

// GetCurrentUser 获取当前用户
// GET /api/users/me
func GetCurrentUser(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":        user.ID,
		"preferredName": user.Username,
		"role":          user.Role,
	})
}
