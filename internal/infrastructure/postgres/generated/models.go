package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Party struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Phone               string             `json:"phone"`
	Address             string             `json:"address"`
	CommissionRate      pgtype.Numeric     `json:"commission_rate"`
	CommissionDirection string             `json:"commission_direction"`
	OpeningBalance      pgtype.Numeric     `json:"opening_balance"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

type Entry struct {
	ID           string             `json:"id"`
	PartyID      string             `json:"party_id"`
	EntryDate    pgtype.Timestamptz `json:"entry_date"`
	Remarks      string             `json:"remarks"`
	Credit       pgtype.Numeric     `json:"credit"`
	Debit        pgtype.Numeric     `json:"debit"`
	Balance      pgtype.Numeric     `json:"balance"`
	Kind         string             `json:"kind"`
	RefEntryID   pgtype.Text        `json:"ref_entry_id"`
	SettlementID pgtype.Text        `json:"settlement_id"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type Settlement struct {
	ID             string             `json:"id"`
	PartyID        string             `json:"party_id"`
	OpeningBalance pgtype.Numeric     `json:"opening_balance"`
	ClosingBalance pgtype.Numeric     `json:"closing_balance"`
	EntryCount     int64              `json:"entry_count"`
	Note           string             `json:"note"`
	SettledAt      pgtype.Timestamptz `json:"settled_at"`
}

type OutboxEvent struct {
	ID            string             `json:"id"`
	AggregateID   string             `json:"aggregate_id"`
	AggregateType string             `json:"aggregate_type"`
	EventType     string             `json:"event_type"`
	Payload       []byte             `json:"payload"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	PublishedAt   pgtype.Timestamptz `json:"published_at"`
	Published     bool               `json:"published"`
}

type AuditLog struct {
	ID           string             `json:"id"`
	Action       string             `json:"action"`
	ResourceType string             `json:"resource_type"`
	ResourceID   string             `json:"resource_id"`
	IpAddress    string             `json:"ip_address"`
	RequestID    string             `json:"request_id"`
	BeforeState  []byte             `json:"before_state"`
	AfterState   []byte             `json:"after_state"`
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}
