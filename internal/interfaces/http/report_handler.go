package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/export"
)

// ReportHandler descargas CSV y PDF (protegido).
type ReportHandler struct {
	uc *export.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *export.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryCSV godoc
// @Summary      Reporte de inventario valorizado (CSV)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/reports/inventory.csv [get]
func (h *ReportHandler) InventoryCSV(c *fiber.Ctx) error {
	data, err := h.uc.InventoryCSV()
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.csv"`)
	return c.Send(data)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario valorizado (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, err := h.uc.InventoryPDF(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(data)
}

// MovementsCSV godoc
// @Summary      Libro de movimientos (CSV)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/reports/movements.csv [get]
func (h *ReportHandler) MovementsCSV(c *fiber.Ctx) error {
	data, err := h.uc.MovementsCSV()
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
	return c.Send(data)
}

// PurchasesCSV godoc
// @Summary      Órdenes de compra (CSV)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/reports/purchases.csv [get]
func (h *ReportHandler) PurchasesCSV(c *fiber.Ctx) error {
	data, err := h.uc.PurchasesCSV()
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="compras.csv"`)
	return c.Send(data)
}
