package service

// DefaultEscalationThreshold is the priority at which ingestion opens a
// ticket automatically.
const DefaultEscalationThreshold = 4

// EscalationPolicy decides whether a classified message warrants a ticket.
// Kept as its own unit so the criteria can grow (tag, sentiment) without
// touching the pipeline.
type EscalationPolicy struct {
	Threshold int
}

// NewEscalationPolicy returns the default priority-threshold policy.
func NewEscalationPolicy() EscalationPolicy {
	return EscalationPolicy{Threshold: DefaultEscalationThreshold}
}

// ShouldEscalate reports whether a message with the given final priority
// must be escalated into a ticket.
func (p EscalationPolicy) ShouldEscalate(priority int) bool {
	return priority >= p.Threshold
}
