// Package config loads the YAML run configuration of a rolling regression run.
//
// A configuration file looks like:
//
//	window_size: 20
//	on_step_error: abort      # or skip
//	require_adequate: false
//	regression:
//	  alpha: 0.05
//	  confidence: 0.95
//	  solver: inverse         # or pinv
//	data:
//	  path: data/electricity.csv
//	  day_column: day
//	  covariate_column: temperature
//	  response_column: y
//	report:
//	  path: report.json
//	  compress: false
//	log:
//	  level: info
//	  development: false
//
// Missing keys keep their Default values. Unknown keys are rejected.
package config
