package notion

import (
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

// Property names of the destination database. The database is created by
// hand once; the names are part of the integration contract.
const (
	PropName       = "Nombre"
	PropDate       = "Fecha"
	PropCompany    = "Empresa"
	PropFile       = "Archivo"
	PropGross      = "Devengado"
	PropDeductions = "Deducciones"
	PropNet        = "Liquido"
)

// recordProperties builds the Notion property set for one payslip:
// title, payment date, company select, file link and the three amounts.
// Amount properties are only set when extraction produced them.
func recordProperties(p *domain.Payslip) (notionapi.Properties, error) {
	parsed, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return nil, fmt.Errorf("payment date %q: %w", p.Date, err)
	}
	date := notionapi.Date(parsed)

	props := notionapi.Properties{
		PropName: notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{Text: &notionapi.Text{Content: p.Name}},
			},
		},
		PropDate: notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &date},
		},
		PropCompany: notionapi.SelectProperty{
			Select: notionapi.Option{Name: p.Company},
		},
		PropFile: notionapi.URLProperty{
			URL: p.ViewURL,
		},
	}

	if p.Gross != nil {
		props[PropGross] = notionapi.NumberProperty{Number: *p.Gross}
	}
	if p.Deductions != nil {
		props[PropDeductions] = notionapi.NumberProperty{Number: *p.Deductions}
	}
	if p.Net != nil {
		props[PropNet] = notionapi.NumberProperty{Number: *p.Net}
	}

	return props, nil
}
