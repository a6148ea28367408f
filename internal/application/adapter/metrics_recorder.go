package adapter

// MetricsRecorder records application-level metrics emitted by use cases.
type MetricsRecorder interface {
	// RecordMalformedRecords counts transactions skipped by an engine operation.
	RecordMalformedRecords(operation string, count int)

	// RecordReportCache counts report snapshot lookups by outcome.
	RecordReportCache(hit bool)
}
