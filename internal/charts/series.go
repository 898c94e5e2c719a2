// Package charts supplies the static series consumed by the browser-side
// chart renderer. This process only provides data and render options; the
// chart math and drawing belong to the front-end library.
package charts

type (
	// DataItem is one labeled point of a series.
	DataItem struct {
		Name  string `json:"name"`
		Value int64  `json:"value"`
	}

	// Series is one chart payload: its points plus render options.
	Series struct {
		Title      string     `json:"title"`
		Kind       string     `json:"kind"`
		ShowLegend bool       `json:"show_legend"`
		Items      []DataItem `json:"items"`
	}
)

const (
	KindLine = "line"
	KindBar  = "bar"
)

// MonthlyRevenue returns the six-point monthly revenue series, Jan-Jun.
func MonthlyRevenue() Series {
	return Series{
		Title:      "Monthly Revenue",
		Kind:       KindLine,
		ShowLegend: true,
		Items: []DataItem{
			{Name: "Jan", Value: 62000},
			{Name: "Feb", Value: 54000},
			{Name: "Mar", Value: 71000},
			{Name: "Apr", Value: 78000},
			{Name: "May", Value: 66000},
			{Name: "Jun", Value: 90000},
		},
	}
}

// ProductSales returns the five-category product sales series.
func ProductSales() Series {
	return Series{
		Title:      "Product Sales",
		Kind:       KindBar,
		ShowLegend: false,
		Items: []DataItem{
			{Name: "Cement", Value: 180},
			{Name: "Steel", Value: 140},
			{Name: "Sand", Value: 460},
			{Name: "Bricks", Value: 120},
			{Name: "Paint", Value: 95},
		},
	}
}
