package http

import (
	"errors"
	"net/http"

	"github.com/digivend/credit-shop/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

type credentialsRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	authCase AuthCase
}

func NewAuthHandler(authCase AuthCase) *AuthHandler {
	return &AuthHandler{
		authCase: authCase,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body credentialsRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	user, err := h.authCase.Register(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, &domain.UsernameTakenError{}) {
			c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body credentialsRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, err := h.authCase.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, &domain.CredentialsMismatchError{}) {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
