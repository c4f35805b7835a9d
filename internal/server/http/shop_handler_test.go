package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/digivend/credit-shop/gen/mocks/server"
	"github.com/digivend/credit-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopHandler_ListItems(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) CatalogCase
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	expectedItems := []domain.Item{
		{ID: 1, Name: "sticker", Price: 25, ItemType: "physical", Stock: domain.UnlimitedStock},
		{ID: 2, Name: "license key", Price: 100, ItemType: "digital", Stock: 5},
	}

	tests := []testCase{
		{
			name:           "successful listing",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CatalogCase {
				mockCase := mocks.NewMockCatalogCase(ctrl)
				mockCase.EXPECT().
					ListItems(gomock.Any()).
					Return(expectedItems, nil).
					Times(1)

				return mockCase
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Items []domain.Item `json:"items"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, expectedItems, response.Items)
			},
		},
		{
			name:           "internal_server_error",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CatalogCase {
				mockCase := mocks.NewMockCatalogCase(ctrl)
				mockCase.EXPECT().
					ListItems(gomock.Any()).
					Return(nil, &domain.StoreError{Msg: "failed to list items", Err: assert.AnError})

				return mockCase
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			handler := NewShopHandler(tt.prepareFn(t, ctrl), mocks.NewMockPurchaseCase(ctrl), mocks.NewMockAccountCase(ctrl))

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handler.ListItems(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestShopHandler_CreateItem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn func(t *testing.T, ctrl *gomock.Controller) CatalogCase
	}

	tests := []testCase{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"name":  "sticker",
				"price": 25,
				"type":  "physical",
			},
			expectedStatus: http.StatusCreated,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CatalogCase {
				mockCase := mocks.NewMockCatalogCase(ctrl)
				mockCase.EXPECT().
					CreateItem(gomock.Any(), domain.NewItem{
						Name:     "sticker",
						Price:    25,
						ItemType: "physical",
						Stock:    domain.UnlimitedStock,
					}).
					Return(domain.Item{ID: 1, Name: "sticker", Price: 25, ItemType: "physical", Stock: domain.UnlimitedStock}, nil).
					Times(1)

				return mockCase
			},
		},
		{
			name: "explicit stock is forwarded",
			requestBody: map[string]interface{}{
				"name":  "license key",
				"price": 100,
				"type":  "digital",
				"stock": 5,
			},
			expectedStatus: http.StatusCreated,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CatalogCase {
				mockCase := mocks.NewMockCatalogCase(ctrl)
				mockCase.EXPECT().
					CreateItem(gomock.Any(), domain.NewItem{
						Name:     "license key",
						Price:    100,
						ItemType: "digital",
						Stock:    5,
					}).
					Return(domain.Item{ID: 2, Name: "license key", Price: 100, ItemType: "digital", Stock: 5}, nil)

				return mockCase
			},
		},
		{
			name: "invalid_request_body",
			requestBody: map[string]interface{}{
				"price": 25,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CatalogCase {
				return mocks.NewMockCatalogCase(ctrl)
			},
		},
		{
			name: "invalid_argument_error",
			requestBody: map[string]interface{}{
				"name":  "sticker",
				"price": -1,
				"type":  "physical",
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) CatalogCase {
				mockCase := mocks.NewMockCatalogCase(ctrl)
				mockCase.EXPECT().
					CreateItem(gomock.Any(), gomock.Any()).
					Return(domain.Item{}, &domain.InvalidArgumentsError{Msg: "item price must not be negative"})

				return mockCase
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			handler := NewShopHandler(tt.prepareFn(t, ctrl), mocks.NewMockPurchaseCase(ctrl), mocks.NewMockAccountCase(ctrl))

			bodyBytes, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateItem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestShopHandler_Purchase(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		userId         int
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) PurchaseCase
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	expectedPurchase := domain.Purchase{
		ID:       10,
		UserID:   1,
		ItemID:   3,
		ItemName: "sticker",
		Price:    25,
	}

	tests := []testCase{
		{
			name:           "successful purchase",
			requestBody:    purchaseRequestBody{ItemID: 3},
			userId:         1,
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) PurchaseCase {
				mockCase := mocks.NewMockPurchaseCase(ctrl)
				mockCase.EXPECT().
					BuyItem(gomock.Any(), 1, 3).
					Return(expectedPurchase, nil).
					Times(1)

				return mockCase
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response domain.Purchase
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, expectedPurchase, response)
			},
		},
		{
			name: "invalid_request_body",
			requestBody: map[string]interface{}{
				"invalid": "data",
			},
			userId:         1,
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) PurchaseCase {
				return mocks.NewMockPurchaseCase(ctrl)
			},
		},
		{
			name:           "item_not_found",
			requestBody:    purchaseRequestBody{ItemID: 42},
			userId:         1,
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) PurchaseCase {
				mockCase := mocks.NewMockPurchaseCase(ctrl)
				mockCase.EXPECT().
					BuyItem(gomock.Any(), 1, 42).
					Return(domain.Purchase{}, &domain.ItemNotFoundError{Msg: "item with id 42 not found"})

				return mockCase
			},
		},
		{
			name:           "insufficient_credits",
			requestBody:    purchaseRequestBody{ItemID: 3},
			userId:         1,
			expectedStatus: http.StatusPaymentRequired,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) PurchaseCase {
				mockCase := mocks.NewMockPurchaseCase(ctrl)
				mockCase.EXPECT().
					BuyItem(gomock.Any(), 1, 3).
					Return(domain.Purchase{}, &domain.InsufficientCreditsError{Msg: "not enough credits"})

				return mockCase
			},
		},
		{
			name:           "user_not_found",
			requestBody:    purchaseRequestBody{ItemID: 3},
			userId:         99,
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) PurchaseCase {
				mockCase := mocks.NewMockPurchaseCase(ctrl)
				mockCase.EXPECT().
					BuyItem(gomock.Any(), 99, 3).
					Return(domain.Purchase{}, &domain.UserNotFoundError{Msg: "user with id 99 not found"})

				return mockCase
			},
		},
		{
			name:           "store_error",
			requestBody:    purchaseRequestBody{ItemID: 3},
			userId:         1,
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) PurchaseCase {
				mockCase := mocks.NewMockPurchaseCase(ctrl)
				mockCase.EXPECT().
					BuyItem(gomock.Any(), 1, 3).
					Return(domain.Purchase{}, &domain.StoreError{Msg: "failed to commit transaction", Err: assert.AnError})

				return mockCase
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			handler := NewShopHandler(mocks.NewMockCatalogCase(ctrl), tt.prepareFn(t, ctrl), mocks.NewMockAccountCase(ctrl))

			bodyBytes, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(UserIDContextKey, tt.userId)

			handler.Purchase(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestShopHandler_GetAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		userId         int
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) AccountCase
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	expectedInfo := domain.TotalAccountInfo{
		AccountInfo: domain.AccountInfo{
			ID:       1,
			Username: "testuser",
			Role:     "user",
			Credits:  75,
		},
		Purchases: []domain.Purchase{
			{ID: 10, UserID: 1, ItemID: 3, ItemName: "sticker", Price: 25},
		},
	}

	tests := []testCase{
		{
			name:           "successful get account",
			userId:         1,
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) AccountCase {
				mockCase := mocks.NewMockAccountCase(ctrl)
				mockCase.EXPECT().
					GetAccount(gomock.Any(), 1).
					Return(expectedInfo, nil).
					Times(1)

				return mockCase
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response domain.TotalAccountInfo
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, expectedInfo, response)
			},
		},
		{
			name:           "user_not_found",
			userId:         99,
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) AccountCase {
				mockCase := mocks.NewMockAccountCase(ctrl)
				mockCase.EXPECT().
					GetAccount(gomock.Any(), 99).
					Return(domain.TotalAccountInfo{}, &domain.UserNotFoundError{Msg: "user with id 99 not found"})

				return mockCase
			},
		},
		{
			name:           "internal_server_error",
			userId:         1,
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) AccountCase {
				mockCase := mocks.NewMockAccountCase(ctrl)
				mockCase.EXPECT().
					GetAccount(gomock.Any(), 1).
					Return(domain.TotalAccountInfo{}, assert.AnError)

				return mockCase
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			handler := NewShopHandler(mocks.NewMockCatalogCase(ctrl), mocks.NewMockPurchaseCase(ctrl), tt.prepareFn(t, ctrl))

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(UserIDContextKey, tt.userId)

			handler.GetAccount(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
