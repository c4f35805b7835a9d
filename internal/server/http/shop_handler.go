package http

import (
	"errors"
	"net/http"

	"github.com/digivend/credit-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

type purchaseRequestBody struct {
	ItemID int `json:"itemId" binding:"required"`
}

type createItemRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       int     `json:"price"`
	ItemType    string  `json:"type" binding:"required"`
	Content     *string `json:"content"`
	Stock       *int    `json:"stock"`
}

type ShopHandler struct {
	catalogCase  CatalogCase
	purchaseCase PurchaseCase
	accountCase  AccountCase
}

func NewShopHandler(catalogCase CatalogCase, purchaseCase PurchaseCase, accountCase AccountCase) *ShopHandler {
	return &ShopHandler{
		catalogCase:  catalogCase,
		purchaseCase: purchaseCase,
		accountCase:  accountCase,
	}
}

func (h *ShopHandler) ListItems(c *gin.Context) {
	items, err := h.catalogCase.ListItems(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ShopHandler) CreateItem(c *gin.Context) {
	var body createItemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	newItem := domain.NewItem{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		ItemType:    body.ItemType,
		Content:     body.Content,
		Stock:       domain.UnlimitedStock,
	}
	if body.Stock != nil {
		newItem.Stock = *body.Stock
	}

	item, err := h.catalogCase.CreateItem(c.Request.Context(), newItem)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ShopHandler) Purchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	userId := c.GetInt(UserIDContextKey)

	purchase, err := h.purchaseCase.BuyItem(c.Request.Context(), userId, body.ItemID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (h *ShopHandler) GetAccount(c *gin.Context) {
	userId := c.GetInt(UserIDContextKey)

	info, err := h.accountCase.GetAccount(c.Request.Context(), userId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.ItemNotFoundError{}), errors.Is(err, &domain.UserNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientCreditsError{}):
		c.JSON(http.StatusPaymentRequired, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
