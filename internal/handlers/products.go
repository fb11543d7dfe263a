// internal/handlers/products.go
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/models"
	"github.com/appdevg6/boost-web/internal/utils"
	"github.com/appdevg6/boost-web/internal/viewstate"
)

type ProductHandler struct {
	products *backend.ProductClient
	flashes  FlashSetter
	render   *Renderer
}

func NewProductHandler(products *backend.ProductClient, flashes FlashSetter, render *Renderer) *ProductHandler {
	return &ProductHandler{
		products: products,
		flashes:  flashes,
		render:   render,
	}
}

// GET /products — the signed-in seller's own listings.
func (h *ProductHandler) MyProducts(c *gin.Context) {
	identity := mustIdentity(c)

	list := viewstate.NewRemoteList(func(ctx context.Context) ([]models.Product, error) {
		return h.products.GetProductsByUser(ctx, identity.UserID)
	})

	list.Load(c.Request.Context())

	h.render.HTML(c, http.StatusOK, "my_products.html", gin.H{
		"Products": list.Items(),
		"Error":    list.Err(),
	})
}

// GET /products/new
func (h *ProductHandler) NewProductPage(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "product_form.html", gin.H{
		"EditMode": false,
		"Form":     &models.ProductPayload{ProductStatus: models.ProductStatusAvailable},
	})
}

// POST /products/new
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	identity := mustIdentity(c)

	payload, errMsg := readProductForm(c)
	if errMsg != "" {
		h.render.HTML(c, http.StatusBadRequest, "product_form.html", gin.H{
			"EditMode": false,
			"Form":     payload,
			"Error":    errMsg,
		})
		return
	}

	payload.ProductDate = time.Now().Format(models.DateLayout)
	payload.User = &models.UserRef{UserID: identity.UserID}

	if _, err := h.products.CreateProduct(c.Request.Context(), payload); err != nil {
		h.render.HTML(c, http.StatusBadGateway, "product_form.html", gin.H{
			"EditMode": false,
			"Form":     payload,
			"Error":    err.Error(),
		})
		return
	}

	h.flashes.Set(c, "success", "Product added successfully!")
	c.Redirect(http.StatusFound, "/products")
}

// GET /products/edit/:id
func (h *ProductHandler) EditProductPage(c *gin.Context) {
	identity := mustIdentity(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/products")
		return
	}

	product, err := h.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.flashes.Set(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/products")
		return
	}
	if product.OwnerID() != identity.UserID && identity.Role != models.RoleAdmin {
		h.flashes.Set(c, "error", "You can only edit your own products.")
		c.Redirect(http.StatusFound, "/products")
		return
	}

	h.render.HTML(c, http.StatusOK, "product_form.html", gin.H{
		"EditMode":  true,
		"ProductID": id,
		"Form": &models.ProductPayload{
			ProductName:        product.ProductName,
			ProductDescription: product.ProductDescription,
			ProductPrice:       product.ProductPrice,
			ProductImage:       product.ProductImage,
			ProductCategory:    product.ProductCategory,
			ProductStatus:      product.ProductStatus,
			ProductDate:        product.ProductDate,
		},
	})
}

// POST /products/edit/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	identity := mustIdentity(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/products")
		return
	}

	payload, errMsg := readProductForm(c)
	if errMsg != "" {
		h.render.HTML(c, http.StatusBadRequest, "product_form.html", gin.H{
			"EditMode":  true,
			"ProductID": id,
			"Form":      payload,
			"Error":     errMsg,
		})
		return
	}

	payload.ProductDate = time.Now().Format(models.DateLayout)
	payload.User = &models.UserRef{UserID: identity.UserID}

	if _, err := h.products.UpdateProduct(c.Request.Context(), id, payload); err != nil {
		h.render.HTML(c, http.StatusBadGateway, "product_form.html", gin.H{
			"EditMode":  true,
			"ProductID": id,
			"Form":      payload,
			"Error":     err.Error(),
		})
		return
	}

	h.flashes.Set(c, "success", "Product updated successfully!")
	c.Redirect(http.StatusFound, "/products")
}

// POST /products/delete/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/products")
		return
	}

	if !confirmed(c) {
		h.flashes.Set(c, "error", "Deletion requires confirmation.")
		c.Redirect(http.StatusFound, "/products")
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		h.flashes.Set(c, "error", err.Error())
	} else {
		h.flashes.Set(c, "success", "Product deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/products")
}

// readProductForm parses and locally validates the product form. The returned
// message is empty when the payload is valid.
func readProductForm(c *gin.Context) (*models.ProductPayload, string) {
	price, priceErr := strconv.ParseFloat(strings.TrimSpace(c.PostForm("productPrice")), 64)

	payload := &models.ProductPayload{
		ProductName:        strings.TrimSpace(c.PostForm("productName")),
		ProductDescription: strings.TrimSpace(c.PostForm("productDescription")),
		ProductImage:       c.PostForm("productImage"),
		ProductCategory:    strings.TrimSpace(c.PostForm("productCategory")),
		ProductStatus:      models.ProductStatus(c.DefaultPostForm("productStatus", string(models.ProductStatusAvailable))),
	}
	if priceErr == nil {
		payload.ProductPrice = price
	}

	if payload.ProductName == "" || c.PostForm("productPrice") == "" {
		return payload, "Please fill in all required fields"
	}
	if priceErr != nil || payload.ProductPrice <= 0 {
		return payload, "Price must be greater than 0"
	}
	if err := utils.ValidateStruct(payload); err != nil {
		return payload, utils.FirstValidationMessage(err)
	}
	return payload, ""
}
