package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/arjun-dev/shopsphere/config"
	"github.com/arjun-dev/shopsphere/models"
	"github.com/arjun-dev/shopsphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// salesReportRange parses the from/to query params, defaulting to the last
// 30 days.
func salesReportRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, utils.BadRequestError("Invalid from date, expected YYYY-MM-DD", err)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, utils.BadRequestError("Invalid to date, expected YYYY-MM-DD", err)
		}
		// Include the whole end day.
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func salesReportOrders(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := config.DB.Preload("Customer").
		Where("created_at >= ? AND created_at < ? AND status <> ?", from, to, models.OrderStatusCancelled).
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}

// AdminSalesReport summarizes orders in a date range
func AdminSalesReport(c *gin.Context) {
	from, to, err := salesReportRange(c)
	if err != nil {
		utils.BadRequest(c, err.(*utils.AppError).Message, nil)
		return
	}

	orders, err := salesReportOrders(from, to)
	if err != nil {
		utils.LogError("Failed to fetch sales report orders: %v", err)
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}

	var gross, discount, net float64
	for _, order := range orders {
		gross += order.Subtotal
		discount += order.Discount + float64(order.PointsRedeemed)
		net += order.FinalTotal
	}

	utils.Success(c, "Sales report", gin.H{
		"from":           from.Format("2006-01-02"),
		"to":             to.AddDate(0, 0, -1).Format("2006-01-02"),
		"order_count":    len(orders),
		"gross_sales":    gross,
		"total_discount": discount,
		"net_sales":      net,
	})
}

// AdminSalesReportExport streams the same report as an xlsx workbook
func AdminSalesReportExport(c *gin.Context) {
	utils.LogInfo("AdminSalesReportExport called")

	from, to, err := salesReportRange(c)
	if err != nil {
		utils.BadRequest(c, err.(*utils.AppError).Message, nil)
		return
	}

	orders, err := salesReportOrders(from, to)
	if err != nil {
		utils.LogError("Failed to fetch sales report orders: %v", err)
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales Report")
	if err != nil {
		utils.LogError("Failed to create sheet: %v", err)
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"Order", "Date", "Customer", "Status", "Subtotal", "Discount", "Points", "Total"} {
		header.AddCell().SetString(title)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(order.Reference)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02"))
		row.AddCell().SetString(order.Customer.Email)
		row.AddCell().SetString(order.Status)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.Discount)
		row.AddCell().SetInt(order.PointsRedeemed)
		row.AddCell().SetFloat(order.FinalTotal)
	}

	if admin, ok := currentAdmin(c); ok {
		utils.LogInfo("Sales report exported by admin %d covering %d orders", admin.ID, len(orders))
	}

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to stream report: %v", err)
	}
}
