package fixture

// Document is the YAML form of a snapshot plus optional settings.
type Document struct {
	Settings   *SettingsDoc  `yaml:"settings,omitempty"`
	Stations   []StationDoc  `yaml:"stations"`
	Deliveries []DeliveryDoc `yaml:"deliveries"`
}

// SettingsDoc is the YAML form of tracing.Settings.
type SettingsDoc struct {
	CrossContTraceType string `yaml:"cross_cont_trace_type,omitempty"`
}

// StationDoc is the YAML form of a core.Station (inputs only).
type StationDoc struct {
	ID                 string          `yaml:"id"`
	Outbreak           bool            `yaml:"outbreak,omitempty"`
	CrossContamination bool            `yaml:"cross_contamination,omitempty"`
	KillContamination  bool            `yaml:"kill_contamination,omitempty"`
	Observed           string          `yaml:"observed,omitempty"`
	Contained          bool            `yaml:"contained,omitempty"`
	Invisible          bool            `yaml:"invisible,omitempty"`
	Connections        []ConnectionDoc `yaml:"connections,omitempty"`
}

// ConnectionDoc routes delivery From into delivery To at the owning station.
type ConnectionDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DeliveryDoc is the YAML form of a core.Delivery (inputs only).
type DeliveryDoc struct {
	ID                 string `yaml:"id"`
	Source             string `yaml:"source"`
	Target             string `yaml:"target"`
	DateOut            string `yaml:"date_out,omitempty"`
	DateIn             string `yaml:"date_in,omitempty"`
	CrossContamination bool   `yaml:"cross_contamination,omitempty"`
	KillContamination  bool   `yaml:"kill_contamination,omitempty"`
	Observed           string `yaml:"observed,omitempty"`
	Invisible          bool   `yaml:"invisible,omitempty"`
}

// Report is the YAML output of a score and/or trace run.
type Report struct {
	Settings   SettingsDoc         `yaml:"settings"`
	Outbreaks  *int                `yaml:"outbreaks,omitempty"`
	MaxScore   *float64            `yaml:"max_score,omitempty"`
	Stations   []StationResultDoc  `yaml:"stations"`
	Deliveries []DeliveryResultDoc `yaml:"deliveries"`
}

// StationResultDoc holds the outputs of one station.
type StationResultDoc struct {
	ID         string   `yaml:"id"`
	Score      *float64 `yaml:"score,omitempty"`
	CommonLink bool     `yaml:"common_link,omitempty"`
	Forward    bool     `yaml:"forward,omitempty"`
	Backward   bool     `yaml:"backward,omitempty"`
}

// DeliveryResultDoc holds the outputs of one delivery.
type DeliveryResultDoc struct {
	ID       string   `yaml:"id"`
	Score    *float64 `yaml:"score,omitempty"`
	Forward  bool     `yaml:"forward,omitempty"`
	Backward bool     `yaml:"backward,omitempty"`
}

// DatesReport is the YAML output of the date processor.
type DatesReport struct {
	Deliveries []DeliveryDatesDoc `yaml:"deliveries"`
}

// DeliveryDatesDoc holds the processed ranges of one delivery.
type DeliveryDatesDoc struct {
	ID             string `yaml:"id"`
	ExpOut         string `yaml:"exp_out"`
	ExpIn          string `yaml:"exp_in"`
	CompOut        string `yaml:"comp_out"`
	CompIn         string `yaml:"comp_in"`
	ImplausibleOut bool   `yaml:"implausible_out,omitempty"`
	ImplausibleIn  bool   `yaml:"implausible_in,omitempty"`
}
