package services

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// BuildMonthlyTrendsPDF renders the trend comparison as a one-page report.
func BuildMonthlyTrendsPDF(data models.MonthlyTrendsData) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(10, 15, 10)

	grayText := color.Color{Red: 120, Green: 120, Blue: 120}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("MONTHLY KPI TRENDS", props.Text{
				Size:  18,
				Style: consts.Bold,
				Align: consts.Center,
			})
		})
	})

	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s vs %s", data.CurrentPeriod.Label, data.PreviousPeriod.Label), props.Text{
				Size:  11,
				Align: consts.Center,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated %s — D'Busana Fashion Dashboard", time.Now().UTC().Format("Jan 02, 2006")), props.Text{
				Size:  8,
				Align: consts.Center,
				Color: grayText,
			})
		})
	})

	m.Row(6, func() {})

	header := []string{"Metric", "Current", "Previous", "Change %", "Direction"}
	contents := make([][]string, 0, len(data.Trends))
	for _, key := range sortedTrendKeys(data.Trends) {
		t := data.Trends[key]
		contents = append(contents, []string{
			key,
			fmt.Sprintf("%.2f", t.Current),
			fmt.Sprintf("%.2f", t.Previous),
			fmt.Sprintf("%+.1f%%", t.PercentageChange),
			t.Direction,
		})
	}

	lightGray := color.Color{Red: 240, Green: 240, Blue: 240}
	m.TableList(header, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{4, 2, 2, 2, 2},
		},
		ContentProp: props.TableListContent{
			Size:      8,
			GridSizes: []uint{4, 2, 2, 2, 2},
		},
		Align:                consts.Left,
		AlternatedBackground: &lightGray,
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("KPIs: %d total, %d improving, %d declining, %d neutral",
				data.Summary.TotalKPIs, data.Summary.ImprovingKPIs,
				data.Summary.DecliningKPIs, data.Summary.NeutralKPIs), props.Text{
				Size:  9,
				Style: consts.Bold,
			})
		})
	})

	if data.StockMetrics != nil {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Stock: %d products, %d low, %d out of stock, %d units worth %.2f",
					data.StockMetrics.TotalProducts, data.StockMetrics.LowStockCount,
					data.StockMetrics.OutOfStockCount, data.StockMetrics.TotalStockUnits,
					data.StockMetrics.TotalStockValue), props.Text{
					Size: 9,
				})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}

func sortedTrendKeys(trends map[string]models.TrendResult) []string {
	keys := make([]string, 0, len(trends))
	for key := range trends {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
