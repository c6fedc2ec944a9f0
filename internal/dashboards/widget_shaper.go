// Package dashboards turns externally computed widget results into
// presentation-ready views. It never aggregates; grouping and interval
// bucketing belong to the query service that produced the results.
package dashboards

import (
	"time"

	"mcp-monitoring/internal/models"
)

// longSpan is the point span past which timeseries labels switch to dates.
const longSpan = 24 * time.Hour

type WidgetShaper interface {
	// Shape returns one view per widget, in widget order. Widgets without a
	// result are marked missing; results for unknown widgets are ignored.
	Shape(widgets []models.Widget, results []models.WidgetResult) []models.WidgetView
}

type widgetShaper struct {
	location *time.Location
}

func NewWidgetShaper(location *time.Location) WidgetShaper {
	if location == nil {
		location = time.Local
	}
	return &widgetShaper{location: location}
}

func (s *widgetShaper) Shape(widgets []models.Widget, results []models.WidgetResult) []models.WidgetView {
	byID := make(map[string]*models.WidgetResult, len(results))
	for i := range results {
		byID[results[i].WidgetID] = &results[i]
	}

	views := make([]models.WidgetView, 0, len(widgets))
	for _, widget := range widgets {
		view := models.WidgetView{
			WidgetID: widget.ID,
			Name:     widget.Name,
			Type:     widget.Type,
		}

		result, ok := byID[widget.ID]
		if !ok {
			view.Missing = true
			views = append(views, view)
			continue
		}

		switch widget.Type {
		case models.WidgetMetric:
			shapeMetric(&view, result)
		case models.WidgetTable:
			shapeTable(&view, result)
		case models.WidgetTimeseries:
			s.shapeTimeseries(&view, result)
		default:
			view.Missing = true
		}
		views = append(views, view)
	}
	return views
}

func shapeMetric(view *models.WidgetView, result *models.WidgetResult) {
	if result.Value == nil {
		view.FormattedValue = MissingValue
		return
	}
	value := *result.Value
	view.Value = &value
	view.FormattedValue = FormatNumber(value)
}

func shapeTable(view *models.WidgetView, result *models.WidgetResult) {
	maxValue := 1.0
	for _, g := range result.Groups {
		if g.Value > maxValue {
			maxValue = g.Value
		}
	}

	view.Rows = make([]models.TableRow, 0, len(result.Groups))
	for _, g := range result.Groups {
		view.Rows = append(view.Rows, models.TableRow{
			Label:          g.Key,
			Value:          g.Value,
			FormattedValue: FormatNumber(g.Value),
			Percentage:     g.Value / maxValue * 100,
		})
	}
}

func (s *widgetShaper) shapeTimeseries(view *models.WidgetView, result *models.WidgetResult) {
	points := result.Timeseries

	layout := "15:04"
	if len(points) > 1 && points[len(points)-1].Timestamp.Sub(points[0].Timestamp) > longSpan {
		layout = "Jan 2"
	}

	view.Points = make([]models.TimeseriesPointView, 0, len(points))
	var total float64
	for _, p := range points {
		total += p.Value
		t := p.Timestamp.In(s.location)
		view.Points = append(view.Points, models.TimeseriesPointView{
			T:              t,
			Label:          t.Format(layout),
			Value:          p.Value,
			FormattedValue: FormatNumber(p.Value),
		})
	}
	view.Total = &total
	view.FormattedTotal = FormatNumber(total)
}
