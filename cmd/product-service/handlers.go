package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/billing-ecom/docs"
	"github.com/MikeMC777/billing-ecom/internal/httpx"
	prod "github.com/MikeMC777/billing-ecom/internal/product"
)

func newRouter(repo prod.Repository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", httpx.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName("product")))

	api := r.Group("/api")
	api.GET("/products", listProductsHandler(repo))
	api.GET("/products/:id", getProductHandler(repo))
	api.POST("/products", createProductHandler(repo))
	return r
}

// listProductsHandler godoc
// @Summary  List products
// @Tags     products
// @Produce  json
// @Param    limit   query  int  false  "page size (max 100)"
// @Param    offset  query  int  false  "rows to skip"
// @Success  200  {object}  prod.ListResponse
// @Router   /products [get]
func listProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Page(c)
		items, err := repo.List(c.Request.Context(), limit, offset)
		if err != nil {
			log.Printf("[products] list: %v", err)
			httpx.Abort(c, http.StatusInternalServerError, "list error")
			return
		}
		total, err := repo.Count(c.Request.Context())
		if err != nil {
			log.Printf("[products] count: %v", err)
			httpx.Abort(c, http.StatusInternalServerError, "list error")
			return
		}
		c.JSON(http.StatusOK, prod.ListResponse{Limit: limit, Offset: offset, Total: total, Items: items})
	}
}

// getProductHandler godoc
// @Summary  Get product by id
// @Tags     products
// @Produce  json
// @Param    id  path  int  true  "product id"
// @Success  200  {object}  prod.Product
// @Failure  400  {object}  httpx.HTTPError
// @Failure  404  {object}  httpx.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParseID(c)
		if err != nil {
			httpx.Abort(c, http.StatusBadRequest, err.Error())
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, prod.ErrNotFound) {
				httpx.Abort(c, http.StatusNotFound, "product not found")
				return
			}
			log.Printf("[products] get %d: %v", id, err)
			httpx.Abort(c, http.StatusInternalServerError, "get error")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary  Create product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body  body  prod.CreateProductRequest  true  "product"
// @Success  201  {object}  prod.Product
// @Failure  400  {object}  httpx.HTTPError
// @Router   /products [post]
func createProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in prod.CreateProductRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		price, err := decimal.NewFromString(in.Price)
		if err != nil || price.IsNegative() {
			httpx.Abort(c, http.StatusBadRequest, "price must be a non-negative decimal")
			return
		}
		p := &prod.Product{Name: in.Name, Price: price.Round(2)}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			log.Printf("[products] create: %v", err)
			httpx.Abort(c, http.StatusInternalServerError, "create error")
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}
