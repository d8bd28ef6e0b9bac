package controllers

import (
	"net/http"
	"strconv"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/models"
	"journal-portal-api/services"

	"github.com/gin-gonic/gin"
)

// GetUsers lists portal accounts for administration.
func GetUsers(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionChangeUserRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	query := config.DB.Model(&models.User{}).Where("delete_at IS NULL")
	if raw := c.Query("role"); raw != "" {
		filter, err := models.ParseRole(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		query = query.Where("role = ?", filter)
	}

	var users []models.User
	if err := query.Order("user_id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users, "total": len(users)})
}

// ChangeUserRole sets another user's role. Admin only; an admin cannot
// demote themselves, so the portal always keeps at least one admin.
func ChangeUserRole(c *gin.Context) {
	actorID, role, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if !services.CanPerform(role, services.ActionChangeUserRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newRole, err := models.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if userID == actorID && newRole != models.RoleAdmin {
		c.JSON(http.StatusConflict, gin.H{"error": "Admins cannot demote themselves"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	user.Role = newRole
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
