package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"freelanceflow/internal/domain/entities"
	"freelanceflow/internal/usecase/interfaces"
)

// Report shapes. All grouped rows sort descending by their primary metric with
// ascending id/name as the tie-break, so output is reproducible.

type MonthlyCashflow struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

type FinancialReport struct {
	TotalRevenue  float64           `json:"total_revenue"`
	TotalExpenses float64           `json:"total_expenses"`
	NetProfit     float64           `json:"net_profit"`
	ProfitMargin  float64           `json:"profit_margin"`
	Outstanding   float64           `json:"outstanding"`
	Monthly       []MonthlyCashflow `json:"monthly"`
}

type ProjectHours struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
}

type ClientHours struct {
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Hours      float64 `json:"hours"`
}

type DailyHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type TimeReport struct {
	TotalHours       float64        `json:"total_hours"`
	BillableHours    float64        `json:"billable_hours"`
	NonBillableHours float64        `json:"non_billable_hours"`
	ByProject        []ProjectHours `json:"by_project"`
	ByClient         []ClientHours  `json:"by_client"`
	DailyTrend       []DailyHours   `json:"daily_trend"`
}

type ClientMetric struct {
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Amount     float64 `json:"amount"`
}

type ClientProjectCount struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	Count      int    `json:"count"`
}

type ClientReport struct {
	Revenue        []ClientMetric       `json:"revenue"`
	Outstanding    []ClientMetric       `json:"outstanding"`
	ActiveProjects []ClientProjectCount `json:"active_projects"`
}

type ProjectProfit struct {
	ProjectID           string  `json:"project_id"`
	ProjectName         string  `json:"project_name"`
	Revenue             float64 `json:"revenue"`
	Expenses            float64 `json:"expenses"`
	Profit              float64 `json:"profit"`
	Hours               float64 `json:"hours"`
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`
}

type ProjectProfitabilityReport struct {
	Projects []ProjectProfit `json:"projects"`
}

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type TaxReport struct {
	Year                 int              `json:"year"`
	GrossIncome          float64          `json:"gross_income"`
	TotalDeductible      float64          `json:"total_deductible"`
	TaxableIncome        float64          `json:"taxable_income"`
	DeductibleByCategory []CategoryAmount `json:"deductible_by_category"`
}

// IReportUseCase is the reporting aggregator: read-only queries over the
// ledger plus the collaborator collections. From/To windows are inclusive;
// zero times leave that side open.

type IReportUseCase interface {
	Financial(ctx context.Context, userID string, from, to time.Time) (FinancialReport, error)
	Time(ctx context.Context, userID string, from, to time.Time) (TimeReport, error)
	Clients(ctx context.Context, userID string, from, to time.Time) (ClientReport, error)
	ProjectProfitability(ctx context.Context, userID string, from, to time.Time) (ProjectProfitabilityReport, error)
	Tax(ctx context.Context, userID string, year int) (TaxReport, error)
}

type ReportUseCase struct {
	invoices    interfaces.IInvoiceRepository
	expenses    interfaces.IExpenseReader
	timeEntries interfaces.ITimeEntryReader
	directory   interfaces.IDirectoryReader

	// Cache is optional; nil disables report caching.
	Cache    interfaces.IReportCache
	CacheTTL time.Duration

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	invoices interfaces.IInvoiceRepository,
	expenses interfaces.IExpenseReader,
	timeEntries interfaces.ITimeEntryReader,
	directory interfaces.IDirectoryReader,
) *ReportUseCase {
	return &ReportUseCase{invoices: invoices, expenses: expenses, timeEntries: timeEntries, directory: directory}
}

func (u *ReportUseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now().UTC()
}

// inWindow reports whether t falls in the inclusive [from, to] window.
func inWindow(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (u *ReportUseCase) Financial(ctx context.Context, userID string, from, to time.Time) (FinancialReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return FinancialReport{}, ErrInvalidUserID
	}

	var report FinancialReport
	key := reportCacheKey("financial", userID, from, to)
	if u.fromCache(ctx, key, &report) {
		return report, nil
	}

	invoices, err := u.invoices.ListByUser(ctx, userID)
	if err != nil {
		return FinancialReport{}, err
	}
	expenses, err := u.expenses.ListByUser(ctx, userID)
	if err != nil {
		return FinancialReport{}, err
	}

	now := u.now()
	type monthKey struct{ year, month int }
	revenueByMonth := map[monthKey]float64{}
	expensesByMonth := map[monthKey]float64{}

	for _, inv := range invoices {
		status := inv.DerivedStatus(now)
		if status == entities.InvoiceStatusPaid {
			if inWindow(inv.UpdatedAt, from, to) {
				report.TotalRevenue += inv.AmountPaid
				k := monthKey{inv.UpdatedAt.Year(), int(inv.UpdatedAt.Month())}
				revenueByMonth[k] += inv.AmountPaid
			}
			continue
		}
		// Outstanding covers every non-paid invoice issued in the window.
		if inWindow(inv.IssueDate, from, to) {
			report.Outstanding += inv.AmountDue()
		}
	}
	for _, e := range expenses {
		if !inWindow(e.Date, from, to) {
			continue
		}
		report.TotalExpenses += e.Amount
		k := monthKey{e.Date.Year(), int(e.Date.Month())}
		expensesByMonth[k] += e.Amount
	}

	report.NetProfit = report.TotalRevenue - report.TotalExpenses
	if report.TotalRevenue > 0 {
		report.ProfitMargin = round2(report.NetProfit / report.TotalRevenue * 100)
	}

	// Sparse merge: only months with at least one side present appear.
	seen := map[monthKey]bool{}
	for k := range revenueByMonth {
		seen[k] = true
	}
	for k := range expensesByMonth {
		seen[k] = true
	}
	report.Monthly = make([]MonthlyCashflow, 0, len(seen))
	for k := range seen {
		report.Monthly = append(report.Monthly, MonthlyCashflow{
			Year:     k.year,
			Month:    k.month,
			Revenue:  revenueByMonth[k],
			Expenses: expensesByMonth[k],
		})
	}
	sort.Slice(report.Monthly, func(i, j int) bool {
		if report.Monthly[i].Year != report.Monthly[j].Year {
			return report.Monthly[i].Year < report.Monthly[j].Year
		}
		return report.Monthly[i].Month < report.Monthly[j].Month
	})

	u.storeCache(ctx, key, report)
	return report, nil
}

func (u *ReportUseCase) Time(ctx context.Context, userID string, from, to time.Time) (TimeReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return TimeReport{}, ErrInvalidUserID
	}

	var report TimeReport
	key := reportCacheKey("time", userID, from, to)
	if u.fromCache(ctx, key, &report) {
		return report, nil
	}

	entries, err := u.timeEntries.ListByUser(ctx, userID)
	if err != nil {
		return TimeReport{}, err
	}
	projects, err := u.directory.ListProjects(ctx, userID)
	if err != nil {
		return TimeReport{}, err
	}
	clients, err := u.directory.ListClients(ctx, userID)
	if err != nil {
		return TimeReport{}, err
	}

	projectByID := map[string]entities.Project{}
	for _, p := range projects {
		projectByID[p.ID] = p
	}
	clientNames := map[string]string{}
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	hoursByProject := map[string]float64{}
	hoursByClient := map[string]float64{}
	hoursByDay := map[string]float64{}

	for _, e := range entries {
		if !inWindow(e.Date, from, to) {
			continue
		}
		report.TotalHours += e.Hours
		if e.Billable {
			report.BillableHours += e.Hours
		} else {
			report.NonBillableHours += e.Hours
		}
		hoursByProject[e.ProjectID] += e.Hours
		if p, ok := projectByID[e.ProjectID]; ok {
			hoursByClient[p.ClientID] += e.Hours
		}
		hoursByDay[e.Date.Format("2006-01-02")] += e.Hours
	}

	report.ByProject = make([]ProjectHours, 0, len(hoursByProject))
	for id, hours := range hoursByProject {
		report.ByProject = append(report.ByProject, ProjectHours{
			ProjectID:   id,
			ProjectName: projectByID[id].Name,
			Hours:       hours,
		})
	}
	sort.Slice(report.ByProject, func(i, j int) bool {
		if report.ByProject[i].Hours != report.ByProject[j].Hours {
			return report.ByProject[i].Hours > report.ByProject[j].Hours
		}
		return report.ByProject[i].ProjectID < report.ByProject[j].ProjectID
	})

	report.ByClient = make([]ClientHours, 0, len(hoursByClient))
	for id, hours := range hoursByClient {
		report.ByClient = append(report.ByClient, ClientHours{
			ClientID:   id,
			ClientName: clientNames[id],
			Hours:      hours,
		})
	}
	sort.Slice(report.ByClient, func(i, j int) bool {
		if report.ByClient[i].Hours != report.ByClient[j].Hours {
			return report.ByClient[i].Hours > report.ByClient[j].Hours
		}
		return report.ByClient[i].ClientID < report.ByClient[j].ClientID
	})

	// Daily trend: the most recent 30 grouped days, returned ascending.
	days := make([]string, 0, len(hoursByDay))
	for d := range hoursByDay {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	if len(days) > 30 {
		days = days[:30]
	}
	sort.Strings(days)
	report.DailyTrend = make([]DailyHours, 0, len(days))
	for _, d := range days {
		report.DailyTrend = append(report.DailyTrend, DailyHours{Date: d, Hours: hoursByDay[d]})
	}

	u.storeCache(ctx, key, report)
	return report, nil
}

func (u *ReportUseCase) Clients(ctx context.Context, userID string, from, to time.Time) (ClientReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ClientReport{}, ErrInvalidUserID
	}

	var report ClientReport
	key := reportCacheKey("clients", userID, from, to)
	if u.fromCache(ctx, key, &report) {
		return report, nil
	}

	invoices, err := u.invoices.ListByUser(ctx, userID)
	if err != nil {
		return ClientReport{}, err
	}
	projects, err := u.directory.ListProjects(ctx, userID)
	if err != nil {
		return ClientReport{}, err
	}
	clients, err := u.directory.ListClients(ctx, userID)
	if err != nil {
		return ClientReport{}, err
	}

	clientNames := map[string]string{}
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	now := u.now()
	revenue := map[string]float64{}
	outstanding := map[string]float64{}
	for _, inv := range invoices {
		if inv.DerivedStatus(now) == entities.InvoiceStatusPaid {
			if inWindow(inv.UpdatedAt, from, to) {
				revenue[inv.ClientID] += inv.AmountPaid
			}
		} else if inWindow(inv.IssueDate, from, to) {
			outstanding[inv.ClientID] += inv.AmountDue()
		}
	}

	activeProjects := map[string]int{}
	for _, p := range projects {
		if p.Status == entities.ProjectStatusActive {
			activeProjects[p.ClientID]++
		}
	}

	report.Revenue = clientMetrics(revenue, clientNames)
	report.Outstanding = clientMetrics(outstanding, clientNames)

	report.ActiveProjects = make([]ClientProjectCount, 0, len(activeProjects))
	for id, count := range activeProjects {
		report.ActiveProjects = append(report.ActiveProjects, ClientProjectCount{
			ClientID:   id,
			ClientName: clientNames[id],
			Count:      count,
		})
	}
	sort.Slice(report.ActiveProjects, func(i, j int) bool {
		if report.ActiveProjects[i].Count != report.ActiveProjects[j].Count {
			return report.ActiveProjects[i].Count > report.ActiveProjects[j].Count
		}
		return report.ActiveProjects[i].ClientID < report.ActiveProjects[j].ClientID
	})

	u.storeCache(ctx, key, report)
	return report, nil
}

func clientMetrics(amounts map[string]float64, names map[string]string) []ClientMetric {
	out := make([]ClientMetric, 0, len(amounts))
	for id, amount := range amounts {
		out = append(out, ClientMetric{ClientID: id, ClientName: names[id], Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].ClientID < out[j].ClientID
	})
	return out
}

func (u *ReportUseCase) ProjectProfitability(ctx context.Context, userID string, from, to time.Time) (ProjectProfitabilityReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ProjectProfitabilityReport{}, ErrInvalidUserID
	}

	var report ProjectProfitabilityReport
	key := reportCacheKey("projects", userID, from, to)
	if u.fromCache(ctx, key, &report) {
		return report, nil
	}

	invoices, err := u.invoices.ListByUser(ctx, userID)
	if err != nil {
		return ProjectProfitabilityReport{}, err
	}
	expenses, err := u.expenses.ListByUser(ctx, userID)
	if err != nil {
		return ProjectProfitabilityReport{}, err
	}
	entries, err := u.timeEntries.ListByUser(ctx, userID)
	if err != nil {
		return ProjectProfitabilityReport{}, err
	}
	projects, err := u.directory.ListProjects(ctx, userID)
	if err != nil {
		return ProjectProfitabilityReport{}, err
	}

	now := u.now()
	revenue := map[string]float64{}
	expenseTotals := map[string]float64{}
	hours := map[string]float64{}

	for _, inv := range invoices {
		if inv.ProjectID == "" {
			continue
		}
		if inv.DerivedStatus(now) == entities.InvoiceStatusPaid && inWindow(inv.UpdatedAt, from, to) {
			revenue[inv.ProjectID] += inv.AmountPaid
		}
	}
	for _, e := range expenses {
		if e.ProjectID != "" && inWindow(e.Date, from, to) {
			expenseTotals[e.ProjectID] += e.Amount
		}
	}
	for _, e := range entries {
		if inWindow(e.Date, from, to) {
			hours[e.ProjectID] += e.Hours
		}
	}

	report.Projects = make([]ProjectProfit, 0, len(projects))
	for _, p := range projects {
		rev := revenue[p.ID]
		exp := expenseTotals[p.ID]
		h := hours[p.ID]
		rate := 0.0
		if h > 0 {
			rate = round2(rev / h)
		}
		report.Projects = append(report.Projects, ProjectProfit{
			ProjectID:           p.ID,
			ProjectName:         p.Name,
			Revenue:             rev,
			Expenses:            exp,
			Profit:              rev - exp,
			Hours:               h,
			EffectiveHourlyRate: rate,
		})
	}
	sort.Slice(report.Projects, func(i, j int) bool {
		if report.Projects[i].Profit != report.Projects[j].Profit {
			return report.Projects[i].Profit > report.Projects[j].Profit
		}
		return report.Projects[i].ProjectID < report.Projects[j].ProjectID
	})

	u.storeCache(ctx, key, report)
	return report, nil
}

func (u *ReportUseCase) Tax(ctx context.Context, userID string, year int) (TaxReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return TaxReport{}, ErrInvalidUserID
	}
	if year == 0 {
		year = u.now().Year()
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 999999999, time.UTC)

	report := TaxReport{Year: year}
	key := reportCacheKey("tax", userID, from, to)
	if u.fromCache(ctx, key, &report) {
		return report, nil
	}

	invoices, err := u.invoices.ListByUser(ctx, userID)
	if err != nil {
		return TaxReport{}, err
	}
	expenses, err := u.expenses.ListByUser(ctx, userID)
	if err != nil {
		return TaxReport{}, err
	}

	now := u.now()
	for _, inv := range invoices {
		if inv.DerivedStatus(now) == entities.InvoiceStatusPaid && inWindow(inv.UpdatedAt, from, to) {
			report.GrossIncome += inv.AmountPaid
		}
	}

	byCategory := map[string]float64{}
	for _, e := range expenses {
		if !e.TaxDeductible || !inWindow(e.Date, from, to) {
			continue
		}
		report.TotalDeductible += e.Amount
		byCategory[e.Category] += e.Amount
	}
	report.TaxableIncome = report.GrossIncome - report.TotalDeductible

	report.DeductibleByCategory = make([]CategoryAmount, 0, len(byCategory))
	for c, amount := range byCategory {
		report.DeductibleByCategory = append(report.DeductibleByCategory, CategoryAmount{Category: c, Amount: amount})
	}
	sort.Slice(report.DeductibleByCategory, func(i, j int) bool {
		if report.DeductibleByCategory[i].Amount != report.DeductibleByCategory[j].Amount {
			return report.DeductibleByCategory[i].Amount > report.DeductibleByCategory[j].Amount
		}
		return report.DeductibleByCategory[i].Category < report.DeductibleByCategory[j].Category
	})

	u.storeCache(ctx, key, report)
	return report, nil
}

func reportCacheKey(report, userID string, from, to time.Time) string {
	return fmt.Sprintf("reports:%s:%s:%d:%d", report, userID, from.Unix(), to.Unix())
}

func (u *ReportUseCase) fromCache(ctx context.Context, key string, out any) bool {
	if u.Cache == nil {
		return false
	}
	b, err := u.Cache.Get(ctx, key)
	if err != nil {
		zlog().Warnf("[report][usecase] cache get failed key=%s err=%v", key, err)
		return false
	}
	if b == nil {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		zlog().Warnf("[report][usecase] cache decode failed key=%s err=%v", key, err)
		return false
	}
	return true
}

func (u *ReportUseCase) storeCache(ctx context.Context, key string, v any) {
	if u.Cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	ttl := u.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := u.Cache.Set(ctx, key, b, ttl); err != nil {
		zlog().Warnf("[report][usecase] cache set failed key=%s err=%v", key, err)
	}
}
