package config

// MergeConfig contains merge engine batching configuration.
//
// Batches are executed strictly sequentially to bound load on the store and
// keep partial-failure reasoning attributable to a specific batch index.
type MergeConfig struct {
	// BatchSize is the number of row operations per remove/add batch.
	BatchSize int `env:"MERGE_BATCH_SIZE" envDefault:"500"`

	// PageSize is the page size used when reading a department's persisted
	// set; a short page signals exhaustion.
	PageSize int `env:"MERGE_PAGE_SIZE" envDefault:"1000"`
}

// Sanitize applies guardrails to merge configuration values.
func (m *MergeConfig) Sanitize() {
	if m.BatchSize < 1 {
		m.BatchSize = 500
	}
	if m.PageSize < 1 {
		m.PageSize = 1000
	}
}
