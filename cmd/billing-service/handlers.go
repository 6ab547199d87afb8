package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/billing-ecom/docs"
	"github.com/MikeMC777/billing-ecom/internal/billing"
	"github.com/MikeMC777/billing-ecom/internal/httpx"
)

func newRouter(svc *billing.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", httpx.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName("billing")))

	api := r.Group("/api")
	api.GET("/bills", listBillsHandler(svc))
	api.GET("/bills/:id", getBillHandler(svc))
	api.DELETE("/bills/:id", deleteBillHandler(svc))
	return r
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, op string, err error) {
	var rre *billing.RemoteResolutionError
	switch {
	case errors.Is(err, billing.ErrNotFound):
		httpx.Abort(c, http.StatusNotFound, err.Error())
	case errors.As(err, &rre):
		log.Printf("[bills] %s: %v", op, err)
		httpx.Abort(c, http.StatusBadGateway, err.Error())
	default:
		log.Printf("[bills] %s: %v", op, err)
		httpx.Abort(c, http.StatusInternalServerError, op+" error")
	}
}

// getBillHandler godoc
// @Summary  Get bill with customer and products attached
// @Tags     bills
// @Produce  json
// @Param    id  path  int  true  "bill id"
// @Success  200  {object}  billing.Bill
// @Failure  400  {object}  httpx.HTTPError
// @Failure  404  {object}  httpx.HTTPError
// @Failure  502  {object}  httpx.HTTPError
// @Router   /bills/{id} [get]
func getBillHandler(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParseID(c)
		if err != nil {
			httpx.Abort(c, http.StatusBadRequest, err.Error())
			return
		}
		bill, err := svc.GetBill(c.Request.Context(), id)
		if err != nil {
			writeError(c, "get", err)
			return
		}
		c.JSON(http.StatusOK, bill)
	}
}

// listBillsHandler godoc
// @Summary  List bills without customer/product data
// @Tags     bills
// @Produce  json
// @Param    limit   query  int  false  "page size (max 100)"
// @Param    offset  query  int  false  "rows to skip"
// @Success  200  {object}  billing.ListResponse
// @Router   /bills [get]
func listBillsHandler(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Page(c)
		bills, total, err := svc.ListBills(c.Request.Context(), limit, offset)
		if err != nil {
			writeError(c, "list", err)
			return
		}
		c.JSON(http.StatusOK, billing.ListResponse{Limit: limit, Offset: offset, Total: total, Items: bills})
	}
}

// deleteBillHandler godoc
// @Summary  Delete bill and its items
// @Tags     bills
// @Param    id  path  int  true  "bill id"
// @Success  204
// @Failure  404  {object}  httpx.HTTPError
// @Router   /bills/{id} [delete]
func deleteBillHandler(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParseID(c)
		if err != nil {
			httpx.Abort(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := svc.DeleteBill(c.Request.Context(), id); err != nil {
			writeError(c, "delete", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
