package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rental/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/tealeg/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"Order ID", "Customer", "Email", "Status", "Start", "End",
	"Days", "Total", "Estimate", "Created At", "Items",
}

// ExportOrders handles GET /api/v1/admin/orders/export: every submitted order as one
// spreadsheet row.
func (s *Server) ExportOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(actor(ctx), nil)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	var buf bytes.Buffer
	if err = writeOrdersSheet(&buf, orders); err != nil {
		return s.fail(ctx, err)
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().UTC().Format("20060102"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func writeOrdersSheet(buf *bytes.Buffer, orders []queries.OrderResponse) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID.String())
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.CustomerEmail)
		row.AddCell().SetValue(o.Status.String())
		row.AddCell().SetValue(o.StartDate.Format(time.DateOnly))
		row.AddCell().SetValue(o.EndDate.Format(time.DateOnly))
		row.AddCell().SetInt(o.Days)
		row.AddCell().SetValue(o.Total.String())
		row.AddCell().SetValue(o.Estimate.String())
		row.AddCell().SetValue(o.CreatedAt.UTC().Format(time.DateTime))
		row.AddCell().SetValue(itemsOf(o.Lines))
	}

	if err = file.Write(buf); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func itemsOf(lines []queries.OrderLineResponse) string {
	items := make([]string, len(lines))
	for i, l := range lines {
		items[i] = fmt.Sprintf("%s x%d", l.ProductName, l.Quantity)
	}
	return strings.Join(items, ", ")
}
