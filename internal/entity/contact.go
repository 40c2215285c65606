package entity

import "time"

// ContactStatusNew is the status assigned to every fresh submission. Entries are
// never updated by the running system, so no other status is produced here.
const ContactStatusNew = "new"

// ContactEntry is a persisted contact-form submission.
type ContactEntry struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
