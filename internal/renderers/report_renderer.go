package renderers

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"flocking-report/internal/models"

	"github.com/Masterminds/sprig/v3"
	"github.com/olekukonko/tablewriter"
)

//go:embed template_flocking.html
var defaultTemplate string

//go:generate mockgen -source=report_renderer.go -destination=./mocks/report_renderer_mock.go -package=mocks
type ReportRenderer interface {
	HTML(report *models.Report) (string, error)
	Text(report *models.Report) string
	CSV(report *models.Report) ([]byte, error)
}

type reportRenderer struct {
	tmpl *template.Template
}

// NewReportRenderer parses the HTML template at templatePath, or the built-in
// template when templatePath is empty.
func NewReportRenderer(templatePath string) (ReportRenderer, error) {
	source := defaultTemplate
	name := "template_flocking.html"
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %q: %w", templatePath, err)
		}
		source = string(data)
		name = templatePath
	}

	tmpl, err := template.New(name).Funcs(sprig.HtmlFuncMap()).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
	}
	return &reportRenderer{tmpl: tmpl}, nil
}

// templateData is what the HTML template sees.
type templateData struct {
	Title   string
	Columns []string
	Rows    [][]string
	Numeric []bool
}

func (r *reportRenderer) HTML(report *models.Report) (string, error) {
	data := templateData{
		Title:   report.Title,
		Columns: report.Columns,
		Rows:    formatRows(report),
		Numeric: make([]bool, len(report.Columns)),
	}
	for i, column := range report.Columns {
		data.Numeric[i] = column == models.ColumnWallHours
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func (r *reportRenderer) Text(report *models.Report) string {
	var buf bytes.Buffer
	if report.Title != "" {
		buf.WriteString(report.Title)
		buf.WriteString("\n\n")
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(report.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	alignments := make([]int, len(report.Columns))
	for i, column := range report.Columns {
		if column == models.ColumnWallHours {
			alignments[i] = tablewriter.ALIGN_RIGHT
		} else {
			alignments[i] = tablewriter.ALIGN_LEFT
		}
	}
	table.SetColumnAlignment(alignments)
	table.AppendBulk(formatRows(report))
	table.Render()

	return buf.String()
}

func (r *reportRenderer) CSV(report *models.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(report.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(formatRows(report)); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatRows(report *models.Report) [][]string {
	rows := make([][]string, report.RowCount())
	for i := range rows {
		row := report.Row(i)
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = FormatCell(cell)
		}
		rows[i] = cells
	}
	return rows
}

// FormatCell renders hours with two decimals and everything else verbatim.
func FormatCell(cell any) string {
	switch v := cell.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
