package entities

import "time"

// Read models for collaborator-owned collections. The billing ledger never
// writes these; invoicing reads time entries, and the reporting aggregator
// joins all four.

// TimeEntry is a tracked block of work on a project.
type TimeEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProjectID   string    `json:"project_id"`
	Description string    `json:"description"`
	Hours       float64   `json:"hours"`
	Billable    bool      `json:"billable"`
	Date        time.Time `json:"date"`
}

// ExpenseCategory is free-form; reports group by it verbatim.
type Expense struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ProjectID     string    `json:"project_id,omitempty"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	TaxDeductible bool      `json:"tax_deductible"`
	Date          time.Time `json:"date"`
}

// Client is a billing counterparty.
type Client struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// ProjectStatus mirrors the collaborator's project lifecycle; reports only
// distinguish active from everything else.
type ProjectStatus string

const ProjectStatusActive ProjectStatus = "active"

type Project struct {
	ID       string        `json:"id"`
	UserID   string        `json:"user_id"`
	ClientID string        `json:"client_id"`
	Name     string        `json:"name"`
	Status   ProjectStatus `json:"status"`
}
