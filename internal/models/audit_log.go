package models

import "time"

type AuditLog struct {
	ID       int64  `json:"id"`
	AdminID  int64  `json:"admin_id"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID *int64 `json:"entity_id"`
	Metadata string `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
