package csvdata

// Package csvdata implements the CSV data manager at the core of the app:
// parsing semicolon-delimited telemetry logs, grouping headers, classifying
// columns, and deriving the time axis and chart series. It also provides an
// asynchronous load service that manages task lifecycle, concurrency limits,
// and progress propagation to the UI.
