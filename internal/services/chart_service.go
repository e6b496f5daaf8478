package services

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pennywise/internal/models"

	"github.com/wcharczuk/go-chart/v2"
)

var (
	ErrNoChartData = errors.New("no data to chart")
)

// ChartService renders spending reports into PNG charts
type ChartService struct {
	logger *slog.Logger
}

// NewChartService creates a new chart service
func NewChartService(logger *slog.Logger) ChartServiceInterface {
	return &ChartService{
		logger: logger,
	}
}

// DailySpendingChart renders the report's daily totals as a time series line chart
func (s *ChartService) DailySpendingChart(report *models.SpendingReport) ([]byte, error) {
	if len(report.DailyTotals) == 0 {
		return nil, ErrNoChartData
	}

	xValues := make([]time.Time, len(report.DailyTotals))
	yValues := make([]float64, len(report.DailyTotals))
	for i, dt := range report.DailyTotals {
		xValues[i] = dt.Date
		yValues[i] = dt.Total.InexactFloat64()
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01/02"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("$%.2f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Daily spend",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render daily spending chart: %w", err)
	}
	return buf.Bytes(), nil
}

// CategoryBreakdownChart renders the report's category totals as a pie chart
func (s *ChartService) CategoryBreakdownChart(report *models.SpendingReport) ([]byte, error) {
	if len(report.CategoryTotals) == 0 || !report.Total.IsPositive() {
		return nil, ErrNoChartData
	}

	values := make([]chart.Value, 0, len(report.CategoryTotals))
	for _, ct := range report.CategoryTotals {
		if !ct.Total.IsPositive() {
			continue
		}
		percentage := ct.Total.Div(report.Total).InexactFloat64() * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: $%s (%.1f%%)", ct.Category, ct.Total.StringFixed(2), percentage),
			Value: ct.Total.InexactFloat64(),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}
	if len(values) == 0 {
		return nil, ErrNoChartData
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render category breakdown chart: %w", err)
	}
	return buf.Bytes(), nil
}
