// Package audit records who changed which dashboard configuration and when.
package audit

import "time"

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers changes that alter what live inquiries run.
	CategoryCompliance EventCategory = "compliance"
	// CategoryOperations covers routine edits.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from service logic to capture key actions. Subject is the
// id or name of the record acted on.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	Action    string        `json:"action"`
	Subject   string        `json:"subject"`
	Kind      string        `json:"kind,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	RequestID string        `json:"requestId,omitempty"`
	ClientIP  string        `json:"clientIp,omitempty"`
}

type AuditEvent string

const (
	// Template events
	EventTemplateCreated   AuditEvent = "template_created"
	EventTemplateUpdated   AuditEvent = "template_updated"
	EventTemplatePublished AuditEvent = "template_published"
	EventTemplateArchived  AuditEvent = "template_archived"
	EventTemplateDeleted   AuditEvent = "template_deleted"

	// Tag events
	EventTagRenamed AuditEvent = "tag_renamed"
	EventTagDeleted AuditEvent = "tag_deleted"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventTemplatePublished: CategoryCompliance,
	EventTemplateArchived:  CategoryCompliance,
	EventTemplateDeleted:   CategoryCompliance,

	EventTemplateCreated: CategoryOperations,
	EventTemplateUpdated: CategoryOperations,
	EventTagRenamed:      CategoryOperations,
	EventTagDeleted:      CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}
