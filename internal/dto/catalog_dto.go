package dto

import "fikse-agent-be/pkg/catalog"

// PublishEmbedServiceMessage is the payload queued for the embedding consumer,
// one per catalog row.
type PublishEmbedServiceMessage struct {
	Record catalog.Record `json:"record"`
}
