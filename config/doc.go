// Package config loads the fcltrace CLI configuration from YAML.
//
// Every field is optional; absent fields keep their defaults:
//
//	cross_cont_trace_type: USE_INFERED_DELIVERY_DATES_LIMITS
//	log_level: info          # debug | info | warn | error
//	log_format: text         # text | json
//
// Command-line flags override the file. The delivery date layout is fixed
// (YYYY-MM-DD) and not configurable.
package config
