package eventmodels

// Chart display configuration marshaled to the browser renderer. Field names
// follow the lightweight-charts option names, so these structs serialize
// straight into applyOptions calls.

type ChartOptions struct {
	Layout    ChartLayoutOptions    `json:"layout"`
	Grid      ChartGridOptions      `json:"grid"`
	TimeScale ChartTimeScaleOptions `json:"timeScale"`
}

type ChartLayoutOptions struct {
	TextColor  string                 `json:"textColor"`
	Background ChartBackgroundOptions `json:"background"`
}

type ChartBackgroundOptions struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

type ChartGridOptions struct {
	VertLines ChartGridLineOptions `json:"vertLines"`
	HorzLines ChartGridLineOptions `json:"horzLines"`
}

type ChartGridLineOptions struct {
	Color string `json:"color"`
}

type ChartTimeScaleOptions struct {
	TimeVisible    bool `json:"timeVisible"`
	SecondsVisible bool `json:"secondsVisible"`
}

type SeriesPriceFormat struct {
	Type      string  `json:"type"`
	Precision int     `json:"precision,omitempty"`
	MinMove   float64 `json:"minMove,omitempty"`
}

type AreaSeriesOptions struct {
	TopColor    string            `json:"topColor"`
	BottomColor string            `json:"bottomColor"`
	LineColor   string            `json:"lineColor"`
	LineWidth   int               `json:"lineWidth"`
	PriceFormat SeriesPriceFormat `json:"priceFormat"`
}

type HistogramSeriesOptions struct {
	Color        string            `json:"color"`
	PriceFormat  SeriesPriceFormat `json:"priceFormat"`
	PriceScaleID string            `json:"priceScaleId"`
}

type PriceScaleOptions struct {
	ScaleMargins ScaleMarginsOptions `json:"scaleMargins"`
}

type ScaleMarginsOptions struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ChartConfig bundles everything the renderer needs besides the data itself.
type ChartConfig struct {
	Chart            ChartOptions           `json:"chart"`
	PriceSeries      AreaSeriesOptions      `json:"priceSeries"`
	VolumeSeries     HistogramSeriesOptions `json:"volumeSeries"`
	VolumePriceScale PriceScaleOptions      `json:"volumePriceScale"`
}

// NewChartConfig returns the static display configuration: a white area chart
// with four decimal places of price precision, overlaid by a volume histogram
// pinned to the bottom fifth of the pane.
func NewChartConfig() ChartConfig {
	return ChartConfig{
		Chart: ChartOptions{
			Layout: ChartLayoutOptions{
				TextColor: "black",
				Background: ChartBackgroundOptions{
					Type:  "solid",
					Color: "white",
				},
			},
			Grid: ChartGridOptions{
				VertLines: ChartGridLineOptions{Color: "#eee"},
				HorzLines: ChartGridLineOptions{Color: "#eee"},
			},
			TimeScale: ChartTimeScaleOptions{
				TimeVisible:    true,
				SecondsVisible: false,
			},
		},
		PriceSeries: AreaSeriesOptions{
			TopColor:    "rgba(38,198,218, 0.56)",
			BottomColor: "rgba(38,198,218, 0.04)",
			LineColor:   "rgba(38,198,218, 1)",
			LineWidth:   2,
			PriceFormat: SeriesPriceFormat{
				Type:      "price",
				Precision: 4,
				MinMove:   0.0001,
			},
		},
		VolumeSeries: HistogramSeriesOptions{
			Color: "#26a69a",
			PriceFormat: SeriesPriceFormat{
				Type: "volume",
			},
			// an empty id overlays the volume on the main chart pane
			PriceScaleID: "",
		},
		VolumePriceScale: PriceScaleOptions{
			ScaleMargins: ScaleMarginsOptions{
				Top:    0.8,
				Bottom: 0,
			},
		},
	}
}
