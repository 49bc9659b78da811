// Package queue defines message payloads exchanged over the message broker.
package queue

// InquiryReceivedEvent is published when a visitor submits the public
// inquiry form. It carries enough information for downstream consumers to
// log or notify staff without querying the primary database.
type InquiryReceivedEvent struct {
	InquiryID   uint64 `json:"inquiry_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	TourName    string `json:"tour_name,omitempty"`
	TourType    string `json:"tour_type,omitempty"`
	Destination string `json:"destination,omitempty"`
	ReceivedAt  string `json:"received_at"`
}
