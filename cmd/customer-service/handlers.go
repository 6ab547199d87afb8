package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/billing-ecom/docs"
	"github.com/MikeMC777/billing-ecom/internal/customer"
	"github.com/MikeMC777/billing-ecom/internal/httpx"
)

func newRouter(repo customer.Repository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", httpx.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName("customer")))

	api := r.Group("/api")
	api.GET("/customers", listCustomersHandler(repo))
	api.GET("/customers/:id", getCustomerHandler(repo))
	api.POST("/customers", createCustomerHandler(repo))
	return r
}

// listCustomersHandler godoc
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Param    limit   query  int  false  "page size (max 100)"
// @Param    offset  query  int  false  "rows to skip"
// @Success  200  {object}  customer.ListResponse
// @Router   /customers [get]
func listCustomersHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Page(c)
		items, err := repo.List(c.Request.Context(), limit, offset)
		if err != nil {
			log.Printf("[customers] list: %v", err)
			httpx.Abort(c, http.StatusInternalServerError, "list error")
			return
		}
		total, err := repo.Count(c.Request.Context())
		if err != nil {
			log.Printf("[customers] count: %v", err)
			httpx.Abort(c, http.StatusInternalServerError, "list error")
			return
		}
		c.JSON(http.StatusOK, customer.ListResponse{Limit: limit, Offset: offset, Total: total, Items: items})
	}
}

// getCustomerHandler godoc
// @Summary  Get customer by id
// @Tags     customers
// @Produce  json
// @Param    id  path  int  true  "customer id"
// @Success  200  {object}  customer.Customer
// @Failure  400  {object}  httpx.HTTPError
// @Failure  404  {object}  httpx.HTTPError
// @Router   /customers/{id} [get]
func getCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParseID(c)
		if err != nil {
			httpx.Abort(c, http.StatusBadRequest, err.Error())
			return
		}
		cu, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, customer.ErrNotFound) {
				httpx.Abort(c, http.StatusNotFound, "customer not found")
				return
			}
			log.Printf("[customers] get %d: %v", id, err)
			httpx.Abort(c, http.StatusInternalServerError, "get error")
			return
		}
		c.JSON(http.StatusOK, cu)
	}
}

// createCustomerHandler godoc
// @Summary  Create customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body  body  customer.CreateCustomerRequest  true  "customer"
// @Success  201  {object}  customer.Customer
// @Failure  400  {object}  httpx.HTTPError
// @Failure  409  {object}  httpx.HTTPError
// @Router   /customers [post]
func createCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.CreateCustomerRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json: "+err.Error())
			return
		}
		cu := &customer.Customer{Name: in.Name, Email: in.Email}
		if err := repo.Create(c.Request.Context(), cu); err != nil {
			if errors.Is(err, customer.ErrAlreadyExists) {
				httpx.Abort(c, http.StatusConflict, "email already registered")
				return
			}
			log.Printf("[customers] create: %v", err)
			httpx.Abort(c, http.StatusInternalServerError, "create error")
			return
		}
		c.JSON(http.StatusCreated, cu)
	}
}
