package report

// Metric names used as series keys in the overview payload.
const (
	MetricTemperature = "temperature"
	MetricHumidity    = "humidity"
	MetricLight       = "light"
	MetricShock       = "shock"
	MetricTilt        = "tilt"
	MetricBattery     = "battery"
	MetricPressure    = "pressure"
	MetricProbe       = "probe"
)

// metricOrder fixes the series iteration order for deterministic
// payloads.
var metricOrder = []string{
	MetricTemperature,
	MetricHumidity,
	MetricLight,
	MetricShock,
	MetricTilt,
	MetricBattery,
	MetricPressure,
	MetricProbe,
}

// Alert status values attached to report rows and markers.
const (
	AlertStatusYes       = "YES"
	AlertStatusRecovered = "RECOVERED"
	AlertStatusNone      = "-"
)

// Marker is one deduplicated map point. The first entry seen at a
// coordinate pair wins; later readings at the same spot are dropped.
type Marker struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Timestamp   string   `json:"timestamp"`
	GatewayIMEI string   `json:"gateway_imei"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Battery     *float64 `json:"battery"`
	AlertStatus string   `json:"alert_status"`
}

// SeriesPoint is one charted value. Unix carries the raw ordering key;
// Timestamp is preformatted for the axis labels.
type SeriesPoint struct {
	Timestamp string  `json:"timestamp"`
	Unix      int64   `json:"unix"`
	Value     float64 `json:"value"`
}

// ReportRow is one entry in the tabular report list. Rows are kept even
// when the entry has no usable coordinates.
type ReportRow struct {
	GatewayIMEI string   `json:"gateway_imei"`
	Timestamp   string   `json:"timestamp"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Light       *float64 `json:"light"`
	Shock       *float64 `json:"shock"`
	Battery     *float64 `json:"battery"`
	AlertStatus string   `json:"alert_status"`
}

// Overview is the aggregated shipment view the map and graph pages
// consume.
type Overview struct {
	Markers []*Marker                `json:"markers"`
	Series  map[string][]SeriesPoint `json:"series"`
	Reports []*ReportRow             `json:"reports"`

	TemperatureUnit string `json:"temperature_unit"`
	Skipped         int    `json:"skipped_entries"`
}

// AlertRow is one formatted alert for the alerts table and CSV export.
type AlertRow struct {
	ID              string   `json:"id"`
	ParameterType   string   `json:"parameter_type"`
	AlertType       string   `json:"alert_type"`
	Title           string   `json:"title"`
	Severity        string   `json:"severity"`
	Timestamp       string   `json:"timestamp"`
	ReportTimestamp string   `json:"report_timestamp"`
	Location        string   `json:"location"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}
