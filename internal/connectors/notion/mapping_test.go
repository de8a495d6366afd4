package notion

import (
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

func amt(v float64) *float64 { return &v }

func TestRecordProperties(t *testing.T) {
	p := &domain.Payslip{
		FileName:   "2023-04.pdf",
		Name:       "2023 Abril",
		Date:       "2023-04-25",
		Company:    "Ejemplo S.L.",
		Gross:      amt(2345.67),
		Deductions: amt(400.00),
		Net:        amt(1945.67),
		ViewURL:    "https://drive.google.com/file/d/abc/view",
	}

	props, err := recordProperties(p)
	require.NoError(t, err)

	title, ok := props[PropName].(notionapi.TitleProperty)
	require.True(t, ok)
	require.Len(t, title.Title, 1)
	assert.Equal(t, "2023 Abril", title.Title[0].Text.Content)

	date, ok := props[PropDate].(notionapi.DateProperty)
	require.True(t, ok)
	require.NotNil(t, date.Date.Start)
	assert.Equal(t, 25, time.Time(*date.Date.Start).Day())
	assert.Equal(t, time.April, time.Time(*date.Date.Start).Month())

	sel, ok := props[PropCompany].(notionapi.SelectProperty)
	require.True(t, ok)
	assert.Equal(t, "Ejemplo S.L.", sel.Select.Name)

	url, ok := props[PropFile].(notionapi.URLProperty)
	require.True(t, ok)
	assert.Equal(t, "https://drive.google.com/file/d/abc/view", url.URL)

	gross, ok := props[PropGross].(notionapi.NumberProperty)
	require.True(t, ok)
	assert.InDelta(t, 2345.67, gross.Number, 1e-9)

	net, ok := props[PropNet].(notionapi.NumberProperty)
	require.True(t, ok)
	assert.InDelta(t, 1945.67, net.Number, 1e-9)
}

func TestRecordPropertiesOmitsUnsetAmounts(t *testing.T) {
	p := &domain.Payslip{
		Name:    "2023 Abril",
		Date:    "2023-04-25",
		Company: "Ejemplo S.L.",
		Net:     amt(1945.67),
	}

	props, err := recordProperties(p)
	require.NoError(t, err)

	_, hasGross := props[PropGross]
	_, hasDeductions := props[PropDeductions]
	_, hasNet := props[PropNet]
	assert.False(t, hasGross)
	assert.False(t, hasDeductions)
	assert.True(t, hasNet)
}

func TestRecordPropertiesRejectsBadDate(t *testing.T) {
	p := &domain.Payslip{Name: "x", Date: "not-a-date"}
	_, err := recordProperties(p)
	assert.Error(t, err)
}

func TestSortedPropertyNames(t *testing.T) {
	schema := map[string]string{"b": "number", "a": "title", "c": "url"}
	assert.Equal(t, []string{"a", "b", "c"}, SortedPropertyNames(schema))
}
