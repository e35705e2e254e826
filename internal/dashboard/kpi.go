package dashboard

import (
	"strconv"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/entity"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

// NotAvailable is shown for a KPI that has no value in the current view.
const NotAvailable = "N/A"

type KPIs struct {
	TotalArticles   int    `json:"total_articles"`
	Total           string `json:"total"`
	TopKeyword      string `json:"top_keyword"`
	TopPerson       string `json:"top_person"`
	TopOrganization string `json:"top_organization"`
}

// ComputeKPIs summarizes a filtered view. The top keyword ignores the
// keywords already selected, since those trivially dominate the view.
func ComputeKPIs(view []model.Article, sel model.Selection) KPIs {
	return KPIs{
		TotalArticles:   len(view),
		Total:           FormatCount(len(view)),
		TopKeyword:      modeOrNA(entity.Explode(view, model.Keywords), sel.Keywords),
		TopPerson:       modeOrNA(entity.Explode(view, model.People), nil),
		TopOrganization: modeOrNA(entity.Explode(view, model.Organizations), nil),
	}
}

func modeOrNA(values, exclude []string) string {
	if m, ok := entity.Mode(values, exclude); ok {
		return m
	}
	return NotAvailable
}

// FormatCount renders n with a space as thousands separator: 12345 -> "12 345".
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	head := len(s) % 3
	if head > 0 {
		out = append(out, s[:head]...)
	}
	for i := head; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i:i+3]...)
	}
	return sign + string(out)
}
