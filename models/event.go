package models

// AnalyticsEvent is the inbound analytics trigger. The nested envelope keys
// are fixed by the event pipeline; only the dimension names are configurable.
type AnalyticsEvent struct {
	PipelineMessage *PipelineMessage `json:"com.adobe.mcloud.pipeline.pipelineMessage"`
}

type PipelineMessage struct {
	Trigger *Trigger `json:"com.adobe.mcloud.protocol.trigger"`
}

type Trigger struct {
	Enrichments Enrichments `json:"enrichments"`
}

type Enrichments struct {
	AnalyticsHitSummary AnalyticsHitSummary `json:"analyticsHitSummary"`
}

type AnalyticsHitSummary struct {
	Dimensions map[string]Dimension `json:"dimensions"`
}

// Dimension holds the recorded values of one analytics variable. Repeated
// hits append to Data, so the freshest value is the last entry.
type Dimension struct {
	Name string   `json:"name,omitempty"`
	Data []string `json:"data"`
}
