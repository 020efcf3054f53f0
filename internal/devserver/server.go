// Package devserver is a small in-memory stand-in for the remote shop
// backend, used for local development and manual testing of the storefront.
// It implements the three endpoints the client consumes and persists nothing.
package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/domain/shop"
)

// orderRequest is the POST /order payload.
type orderRequest struct {
	Payment string          `json:"payment" binding:"required,payment"`
	Email   string          `json:"email" binding:"required"`
	Phone   string          `json:"phone" binding:"required"`
	Address string          `json:"address" binding:"required"`
	Total   decimal.Decimal `json:"total"`
	Items   []string        `json:"items" binding:"required,min=1"`
}

// validPayment restricts the payment field to the two supported methods.
func validPayment(fl validator.FieldLevel) bool {
	switch shop.PaymentMethod(fl.Field().String()) {
	case shop.PaymentCard, shop.PaymentCash:
		return true
	}
	return false
}

// Server serves the shop API from an in-memory fixture.
type Server struct {
	log      *zap.Logger
	products []shop.Product
}

// New creates a server over the given product fixture.
func New(log *zap.Logger, products []shop.Product) *Server {
	return &Server{log: log, products: products}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment", validPayment)
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	api := router.Group("/api/weblarek")
	api.GET("/product", s.listProducts)
	api.GET("/product/:id", s.getProduct)
	api.POST("/order", s.createOrder)

	return router
}

func (s *Server) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total": len(s.products),
		"items": s.products,
	})
}

func (s *Server) getProduct(c *gin.Context) {
	id := c.Param("id")
	for _, item := range s.products {
		if item.ID == id {
			c.JSON(http.StatusOK, item)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "NotFound"})
}

func (s *Server) createOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The fixture is authoritative for prices: reject a total that does not
	// match the ordered items.
	expected := decimal.Zero
	for _, id := range req.Items {
		found := false
		for _, item := range s.products {
			if item.ID == id {
				expected = expected.Add(item.PriceOrZero())
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown product " + id})
			return
		}
	}
	if !req.Total.Equal(expected) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order total mismatch"})
		return
	}

	orderID := uuid.NewString()
	s.log.Info("order accepted",
		zap.String("order_id", orderID),
		zap.String("total", req.Total.String()),
		zap.Int("items", len(req.Items)),
	)
	c.JSON(http.StatusOK, gin.H{"id": orderID, "total": req.Total})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
