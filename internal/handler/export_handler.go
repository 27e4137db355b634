package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sowbrand/manager-sowbrand/internal/service"
)

type ExportHandler struct {
	svc      *service.ExportService
	orderSvc *service.OrderService
}

func NewExportHandler(svc *service.ExportService, orderSvc *service.OrderService) *ExportHandler {
	return &ExportHandler{svc: svc, orderSvc: orderSvc}
}

// Export streams the filtered order list as an xlsx workbook. The list
// honors the same keyword/client/tab filters as the order list view.
func (h *ExportHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.orderSvc.ListFiltered(ctx, c.Query("keyword"), c.Query("client_id"), c.DefaultQuery("tab", service.TabAll))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	f, name, err := h.svc.ExportOrders(ctx, orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// Print renders the filtered order list as a print-formatted HTML
// document, portrait by default.
func (h *ExportHandler) Print(c *gin.Context) {
	ctx := c.Request.Context()
	orders, err := h.orderSvc.ListFiltered(ctx, c.Query("keyword"), c.Query("client_id"), c.DefaultQuery("tab", service.TabAll))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	doc, err := h.svc.RenderPrint(ctx, orders, c.DefaultQuery("orientation", service.OrientationPortrait))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}
