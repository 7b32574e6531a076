// Package handlers maps the REST surface onto the stores.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shopapi/internal/apperr"
	"shopapi/internal/auth"
	"shopapi/internal/models"
	"shopapi/internal/store"
	"shopapi/internal/upload"
)

type Handler struct {
	products *store.ProductStore
	settings *store.SettingsStore
	contact  *store.ContactStore
	gate     *auth.Gate
	uploads  *upload.Manager
	db       *gorm.DB
	log      *zap.Logger
}

func New(
	products *store.ProductStore,
	settings *store.SettingsStore,
	contact *store.ContactStore,
	gate *auth.Gate,
	uploads *upload.Manager,
	db *gorm.DB,
	log *zap.Logger,
) *Handler {
	return &Handler{
		products: products,
		settings: settings,
		contact:  contact,
		gate:     gate,
		uploads:  uploads,
		db:       db,
		log:      log,
	}
}

// fail translates an error into the JSON error body at the boundary.
// Anything outside the taxonomy is logged and reported as a generic 500.
func (h *Handler) fail(c *gin.Context, err error) {
	code, msg := apperr.Status(err)
	if code == http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(code, gin.H{"error": msg})
}

// ---------- auth ----------

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Validation("Invalid request body"))
		return
	}
	token, err := h.gate.Login(req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "message": "Login successful"})
}

func (h *Handler) verify(c *gin.Context) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		h.fail(c, apperr.Unauthorized("Access token required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  gin.H{"username": claims.Username},
	})
}

// ---------- products ----------

func (h *Handler) listProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.products.List(c.Request.Context(), store.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// productForm parses and validates the multipart scalar fields. It runs
// before the image is written to disk so a bad form never leaves an
// orphaned file behind.
func productForm(c *gin.Context) (name, description string, price float64, stock int, err error) {
	name = c.PostForm("name")
	description = c.PostForm("description")
	priceStr := c.PostForm("price")
	stockStr := c.PostForm("stock")

	if name == "" || description == "" || priceStr == "" || stockStr == "" {
		return "", "", 0, 0, apperr.Validation("All fields are required")
	}
	price, perr := strconv.ParseFloat(priceStr, 64)
	if perr != nil {
		return "", "", 0, 0, apperr.Validation("Price must be a number")
	}
	stock, serr := strconv.Atoi(stockStr)
	if serr != nil {
		return "", "", 0, 0, apperr.Validation("Stock must be a number")
	}
	return name, description, price, stock, nil
}

func (h *Handler) createProduct(c *gin.Context) {
	name, description, price, stock, err := productForm(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		h.fail(c, apperr.Validation("All fields are required"))
		return
	}
	path, err := h.uploads.Store(fh)
	if err != nil {
		h.fail(c, err)
		return
	}

	id, err := h.products.Create(c.Request.Context(), store.CreateProduct{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Image:       path,
	})
	if err != nil {
		h.uploads.Remove(path)
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Product created successfully"})
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	name, description, price, stock, err := productForm(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	var newImage string
	if fh, ferr := c.FormFile("image"); ferr == nil {
		newImage, err = h.uploads.Store(fh)
		if err != nil {
			h.fail(c, err)
			return
		}
	}

	err = h.products.Update(c.Request.Context(), id, store.UpdateProduct{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		NewImage:    newImage,
	})
	if err != nil {
		h.uploads.Remove(newImage)
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func productID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Product not found")
	}
	return uint(id), nil
}

// ---------- settings ----------

func (h *Handler) getSettings(c *gin.Context) {
	st, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) updateSettings(c *gin.Context) {
	var st models.Settings
	if err := c.ShouldBindJSON(&st); err != nil {
		h.fail(c, apperr.Validation("Invalid request body"))
		return
	}
	if err := h.settings.Update(c.Request.Context(), st); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}

// ---------- contact ----------

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Validation("Invalid request body"))
		return
	}
	err := h.contact.Submit(c.Request.Context(), models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

// ---------- health ----------

func (h *Handler) health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
