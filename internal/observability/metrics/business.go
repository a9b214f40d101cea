package metrics

import "time"

// RecordContentGenerated records a successfully generated and saved record.
func RecordContentGenerated(contentType, language string) {
	ContentGeneratedTotal.WithLabelValues(contentType, language).Inc()
}

// ObserveSEOScore records the SEO score assigned to a generated record.
func ObserveSEOScore(score int) {
	SEOScoreDistribution.Observe(float64(score))
}

// RecordAuthAttempt records the result of an authentication attempt.
func RecordAuthAttempt(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	AuthAttemptsTotal.WithLabelValues(result).Inc()
}

// UpdateContentsTotal updates the total count of content records in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateContentsTotal(count int64) {
	ContentsTotal.Set(float64(count))
}

// UpdateUsersTotal updates the total count of registered users in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateUsersTotal(count int64) {
	UsersTotal.Set(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_contents", "insert_content").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
