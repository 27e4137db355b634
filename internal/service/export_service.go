package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/sowbrand/manager-sowbrand/internal/entity"
	"github.com/sowbrand/manager-sowbrand/internal/repository"
	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	orderRepo    *repository.OrderRepository
	settingsRepo *repository.SettingsRepository
}

func NewExportService(orderRepo *repository.OrderRepository, settingsRepo *repository.SettingsRepository) *ExportService {
	return &ExportService{orderRepo: orderRepo, settingsRepo: settingsRepo}
}

var orderExportBaseHeaders = []string{
	"Pedido", "Cliente", "Produto", "Qtd", "Status", "Prazo",
}

// orderExportHeaders flattens the stage columns after the base ones:
// provider, status, date in and date out per pipeline stage.
func orderExportHeaders() []string {
	headers := append([]string{}, orderExportBaseHeaders...)
	for _, key := range entity.StageKeys {
		label := entity.StageLabel(key)
		headers = append(headers,
			label+" Fornecedor",
			label+" Status",
			label+" Entrada",
			label+" Saída",
		)
	}
	return headers
}

func formatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return "-"
	}
	return deadline.Format("02/01/2006")
}

func dashWhenEmpty(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

// OrderRow flattens one order for the spreadsheet and print renderers.
func orderRow(o *entity.ProductionOrder) []interface{} {
	row := []interface{}{
		o.OrderNumber,
		dashWhenEmpty(o.ClientCompany()),
		o.Product,
		o.Quantity,
		o.Status,
		formatDeadline(o.Deadline),
	}
	for _, key := range entity.StageKeys {
		stage := o.Stages.Get(key)
		row = append(row,
			dashWhenEmpty(stage.Provider),
			entity.StageStatusLabel(stage.Status),
			dashWhenEmpty(stage.DateIn),
			dashWhenEmpty(stage.DateOut),
		)
	}
	return row
}

// BuildWorkbook renders an order list to a styled xlsx workbook, one
// row per order with the stage columns flattened.
func BuildWorkbook(orders []entity.ProductionOrder) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Pedidos"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, h := range orderExportHeaders() {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx := range orders {
		row := rowIdx + 2
		for colIdx, value := range orderRow(&orders[rowIdx]) {
			col, _ := excelize.ColumnNumberToName(colIdx + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), value)
		}
	}

	return f, nil
}

// ExportOrders builds the spreadsheet for the given filtered orders and
// returns the file plus a download name.
func (s *ExportService) ExportOrders(ctx context.Context, orders []entity.ProductionOrder) (*excelize.File, string, error) {
	f, err := BuildWorkbook(orders)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("pedidos-%s.xlsx", time.Now().Format("20060102"))
	return f, name, nil
}

// Print layout orientations.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

type printStage struct {
	Label    string
	Provider string
	Status   string
	DateIn   string
	DateOut  string
}

type printCard struct {
	OrderNumber string
	Company     string
	Product     string
	Quantity    int
	Status      string
	Deadline    string
	Stages      []printStage
}

type printDocument struct {
	Settings    *entity.CompanySettings
	Orientation string
	GeneratedAt string
	Cards       []printCard
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Pedidos de Produção</title>
<style>
  @page { size: A4 {{.Orientation}}; margin: 12mm; }
  body { font-family: Arial, Helvetica, sans-serif; font-size: 11px; color: #1a1a1a; }
  header { display: flex; justify-content: space-between; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; margin-bottom: 12px; }
  h1 { font-size: 16px; margin: 0; }
  .meta { text-align: right; color: #555; }
  .card { border: 1px solid #ccc; border-radius: 6px; padding: 10px; margin-bottom: 10px; page-break-inside: avoid; }
  .card h2 { font-size: 13px; margin: 0 0 6px; }
  table { width: 100%; border-collapse: collapse; margin-top: 6px; }
  th, td { border: 1px solid #ddd; padding: 3px 6px; text-align: left; }
  th { background: #f3f4f6; }
  footer { margin-top: 16px; text-align: center; color: #777; font-size: 10px; }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Settings.CompanyName}}</h1>
    {{if .Settings.CNPJ}}<div>CNPJ: {{.Settings.CNPJ}}</div>{{end}}
    {{if .Settings.Address}}<div>{{.Settings.Address}}</div>{{end}}
  </div>
  <div class="meta">
    <div>Pedidos de Produção</div>
    <div>{{.GeneratedAt}}</div>
  </div>
</header>
{{range .Cards}}
<div class="card">
  <h2>#{{.OrderNumber}} - {{.Company}}</h2>
  <div>{{.Product}} · {{.Quantity}} peças · {{.Status}} · Prazo: {{.Deadline}}</div>
  <table>
    <tr><th>Etapa</th><th>Fornecedor</th><th>Status</th><th>Entrada</th><th>Saída</th></tr>
    {{range .Stages}}
    <tr><td>{{.Label}}</td><td>{{.Provider}}</td><td>{{.Status}}</td><td>{{.DateIn}}</td><td>{{.DateOut}}</td></tr>
    {{end}}
  </table>
</div>
{{end}}
<footer>{{.Settings.FooterText}}</footer>
</body>
</html>
`))

// RenderPrint renders the print-formatted document, one card per order,
// with human-readable stage labels.
func (s *ExportService) RenderPrint(ctx context.Context, orders []entity.ProductionOrder, orientation string) ([]byte, error) {
	if orientation != OrientationLandscape {
		orientation = OrientationPortrait
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	doc := printDocument{
		Settings:    settings,
		Orientation: orientation,
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
	}
	for i := range orders {
		o := &orders[i]
		card := printCard{
			OrderNumber: o.OrderNumber,
			Company:     dashWhenEmpty(o.ClientCompany()),
			Product:     o.Product,
			Quantity:    o.Quantity,
			Status:      o.Status,
			Deadline:    formatDeadline(o.Deadline),
		}
		for _, key := range entity.StageKeys {
			stage := o.Stages.Get(key)
			card.Stages = append(card.Stages, printStage{
				Label:    entity.StageLabel(key),
				Provider: dashWhenEmpty(stage.Provider),
				Status:   entity.StageStatusLabel(stage.Status),
				DateIn:   dashWhenEmpty(stage.DateIn),
				DateOut:  dashWhenEmpty(stage.DateOut),
			})
		}
		doc.Cards = append(doc.Cards, card)
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render print document: %w", err)
	}
	return buf.Bytes(), nil
}
