package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"freelanceflow/internal/domain/entities"
	mock_interfaces "freelanceflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_Financial(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil, nil, nil)
		_, err := uc.Financial(context.Background(), "  ", time.Time{}, time.Time{})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("totals, margin and outstanding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseReader(ctrl)
		uc := NewReportUseCase(invoices, expenses, nil, nil)
		uc.Now = func() time.Time { return now }

		may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
		invoices.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Invoice{
			{ID: "inv-1", UserID: "user-1", TotalAmount: 1000, AmountPaid: 1000, Status: entities.InvoiceStatusPaid, UpdatedAt: may, IssueDate: may},
			{ID: "inv-2", UserID: "user-1", TotalAmount: 500, AmountPaid: 100, Status: entities.InvoiceStatusPartial, UpdatedAt: may, IssueDate: may},
		}, nil)
		expenses.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Expense{
			{ID: "exp-1", UserID: "user-1", Amount: 200, Date: may},
		}, nil)

		report, err := uc.Financial(context.Background(), "user-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalRevenue != 1000 {
			t.Fatalf("expected revenue 1000, got %v", report.TotalRevenue)
		}
		if report.TotalExpenses != 200 {
			t.Fatalf("expected expenses 200, got %v", report.TotalExpenses)
		}
		if report.NetProfit != 800 {
			t.Fatalf("expected net profit 800, got %v", report.NetProfit)
		}
		if report.ProfitMargin != 80.00 {
			t.Fatalf("expected margin 80.00, got %v", report.ProfitMargin)
		}
		if report.Outstanding != 400 {
			t.Fatalf("expected outstanding 400, got %v", report.Outstanding)
		}
	})

	t.Run("sparse monthly merge stays chronological", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseReader(ctrl)
		uc := NewReportUseCase(invoices, expenses, nil, nil)
		uc.Now = func() time.Time { return now }

		jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		mar := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
		invoices.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Invoice{
			{ID: "inv-1", UserID: "user-1", TotalAmount: 300, AmountPaid: 300, Status: entities.InvoiceStatusPaid, UpdatedAt: mar},
		}, nil)
		expenses.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Expense{
			{ID: "exp-1", UserID: "user-1", Amount: 50, Date: jan},
		}, nil)

		report, err := uc.Financial(context.Background(), "user-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Monthly) != 2 {
			t.Fatalf("expected 2 sparse months, got %d", len(report.Monthly))
		}
		if report.Monthly[0].Month != 1 || report.Monthly[0].Expenses != 50 || report.Monthly[0].Revenue != 0 {
			t.Fatalf("unexpected january row: %+v", report.Monthly[0])
		}
		if report.Monthly[1].Month != 3 || report.Monthly[1].Revenue != 300 || report.Monthly[1].Expenses != 0 {
			t.Fatalf("unexpected march row: %+v", report.Monthly[1])
		}
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cacheMock := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewReportUseCase(nil, nil, nil, nil)
		uc.Cache = cacheMock

		cached, _ := json.Marshal(FinancialReport{TotalRevenue: 42})
		cacheMock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)

		report, err := uc.Financial(context.Background(), "user-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalRevenue != 42 {
			t.Fatalf("expected cached report, got %+v", report)
		}
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseReader(ctrl)
		cacheMock := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewReportUseCase(invoices, expenses, nil, nil)
		uc.Cache = cacheMock
		uc.CacheTTL = 30 * time.Second
		uc.Now = func() time.Time { return now }

		cacheMock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		invoices.EXPECT().ListByUser(gomock.Any(), "user-1").Return(nil, nil)
		expenses.EXPECT().ListByUser(gomock.Any(), "user-1").Return(nil, nil)
		cacheMock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), 30*time.Second).Return(nil)

		if _, err := uc.Financial(context.Background(), "user-1", time.Time{}, time.Time{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReportUseCase_Time(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("hours split and deterministic ordering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		entries := mock_interfaces.NewMockITimeEntryReader(ctrl)
		directory := mock_interfaces.NewMockIDirectoryReader(ctrl)
		uc := NewReportUseCase(nil, nil, entries, directory)
		uc.Now = func() time.Time { return now }

		day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		entries.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.TimeEntry{
			{ID: "t-1", ProjectID: "proj-a", Hours: 5, Billable: true, Date: day},
			{ID: "t-2", ProjectID: "proj-b", Hours: 5, Billable: true, Date: day},
			{ID: "t-3", ProjectID: "proj-c", Hours: 8, Billable: false, Date: day.AddDate(0, 0, 1)},
		}, nil)
		directory.EXPECT().ListProjects(gomock.Any(), "user-1").Return([]entities.Project{
			{ID: "proj-a", ClientID: "client-1", Name: "Alpha"},
			{ID: "proj-b", ClientID: "client-1", Name: "Beta"},
			{ID: "proj-c", ClientID: "client-2", Name: "Gamma"},
		}, nil)
		directory.EXPECT().ListClients(gomock.Any(), "user-1").Return([]entities.Client{
			{ID: "client-1", Name: "Acme"},
			{ID: "client-2", Name: "Globex"},
		}, nil)

		report, err := uc.Time(context.Background(), "user-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalHours != 18 || report.BillableHours != 10 || report.NonBillableHours != 8 {
			t.Fatalf("unexpected hour totals: %+v", report)
		}
		// proj-c leads on hours; proj-a beats proj-b on the id tie-break.
		if report.ByProject[0].ProjectID != "proj-c" || report.ByProject[1].ProjectID != "proj-a" || report.ByProject[2].ProjectID != "proj-b" {
			t.Fatalf("unexpected project ordering: %+v", report.ByProject)
		}
		if report.ByClient[0].ClientID != "client-1" || report.ByClient[0].Hours != 10 {
			t.Fatalf("unexpected client ordering: %+v", report.ByClient)
		}
		if len(report.DailyTrend) != 2 || report.DailyTrend[0].Date != "2025-06-10" || report.DailyTrend[1].Date != "2025-06-11" {
			t.Fatalf("expected ascending daily trend, got %+v", report.DailyTrend)
		}
	})

	t.Run("daily trend keeps most recent 30 days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		entries := mock_interfaces.NewMockITimeEntryReader(ctrl)
		directory := mock_interfaces.NewMockIDirectoryReader(ctrl)
		uc := NewReportUseCase(nil, nil, entries, directory)
		uc.Now = func() time.Time { return now }

		start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		all := make([]entities.TimeEntry, 0, 40)
		for i := 0; i < 40; i++ {
			all = append(all, entities.TimeEntry{
				ID: "t", ProjectID: "proj-a", Hours: 1, Billable: true, Date: start.AddDate(0, 0, i),
			})
		}
		entries.EXPECT().ListByUser(gomock.Any(), "user-1").Return(all, nil)
		directory.EXPECT().ListProjects(gomock.Any(), "user-1").Return(nil, nil)
		directory.EXPECT().ListClients(gomock.Any(), "user-1").Return(nil, nil)

		report, err := uc.Time(context.Background(), "user-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.DailyTrend) != 30 {
			t.Fatalf("expected 30 days, got %d", len(report.DailyTrend))
		}
		if report.DailyTrend[0].Date != "2025-05-11" {
			t.Fatalf("expected oldest kept day 2025-05-11, got %s", report.DailyTrend[0].Date)
		}
		if report.DailyTrend[29].Date != "2025-06-09" {
			t.Fatalf("expected newest day 2025-06-09, got %s", report.DailyTrend[29].Date)
		}
	})
}

func TestReportUseCase_Clients(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("revenue, outstanding and active projects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryReader(ctrl)
		uc := NewReportUseCase(invoices, nil, nil, directory)
		uc.Now = func() time.Time { return now }

		may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
		invoices.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Invoice{
			{ID: "inv-1", UserID: "user-1", ClientID: "client-1", TotalAmount: 1000, AmountPaid: 1000, Status: entities.InvoiceStatusPaid, UpdatedAt: may},
			{ID: "inv-2", UserID: "user-1", ClientID: "client-2", TotalAmount: 700, AmountPaid: 200, Status: entities.InvoiceStatusPartial, IssueDate: may},
		}, nil)
		directory.EXPECT().ListProjects(gomock.Any(), "user-1").Return([]entities.Project{
			{ID: "proj-a", ClientID: "client-1", Status: entities.ProjectStatusActive},
			{ID: "proj-b", ClientID: "client-1", Status: entities.ProjectStatusActive},
			{ID: "proj-c", ClientID: "client-2", Status: "archived"},
		}, nil)
		directory.EXPECT().ListClients(gomock.Any(), "user-1").Return([]entities.Client{
			{ID: "client-1", Name: "Acme"},
			{ID: "client-2", Name: "Globex"},
		}, nil)

		report, err := uc.Clients(context.Background(), "user-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Revenue) != 1 || report.Revenue[0].ClientID != "client-1" || report.Revenue[0].Amount != 1000 {
			t.Fatalf("unexpected revenue rows: %+v", report.Revenue)
		}
		if len(report.Outstanding) != 1 || report.Outstanding[0].ClientID != "client-2" || report.Outstanding[0].Amount != 500 {
			t.Fatalf("unexpected outstanding rows: %+v", report.Outstanding)
		}
		if len(report.ActiveProjects) != 1 || report.ActiveProjects[0].ClientID != "client-1" || report.ActiveProjects[0].Count != 2 {
			t.Fatalf("unexpected active projects: %+v", report.ActiveProjects)
		}
	})
}

func TestReportUseCase_ProjectProfitability(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("profit ordering and effective rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseReader(ctrl)
		entries := mock_interfaces.NewMockITimeEntryReader(ctrl)
		directory := mock_interfaces.NewMockIDirectoryReader(ctrl)
		uc := NewReportUseCase(invoices, expenses, entries, directory)
		uc.Now = func() time.Time { return now }

		may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
		invoices.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Invoice{
			{ID: "inv-1", UserID: "user-1", ProjectID: "proj-a", TotalAmount: 900, AmountPaid: 900, Status: entities.InvoiceStatusPaid, UpdatedAt: may},
			{ID: "inv-2", UserID: "user-1", ProjectID: "proj-b", TotalAmount: 500, AmountPaid: 500, Status: entities.InvoiceStatusPaid, UpdatedAt: may},
		}, nil)
		expenses.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Expense{
			{ID: "exp-1", UserID: "user-1", ProjectID: "proj-a", Amount: 100, Date: may},
		}, nil)
		entries.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.TimeEntry{
			{ID: "t-1", ProjectID: "proj-a", Hours: 6, Date: may},
		}, nil)
		directory.EXPECT().ListProjects(gomock.Any(), "user-1").Return([]entities.Project{
			{ID: "proj-a", Name: "Alpha"},
			{ID: "proj-b", Name: "Beta"},
			{ID: "proj-c", Name: "Idle"},
		}, nil)

		report, err := uc.ProjectProfitability(context.Background(), "user-1", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Projects) != 3 {
			t.Fatalf("expected all projects listed, got %d", len(report.Projects))
		}
		if report.Projects[0].ProjectID != "proj-a" || report.Projects[0].Profit != 800 {
			t.Fatalf("unexpected top project: %+v", report.Projects[0])
		}
		if report.Projects[0].EffectiveHourlyRate != 150 {
			t.Fatalf("expected 900/6=150, got %v", report.Projects[0].EffectiveHourlyRate)
		}
		if report.Projects[2].ProjectID != "proj-c" || report.Projects[2].EffectiveHourlyRate != 0 {
			t.Fatalf("expected idle project with zero rate last, got %+v", report.Projects[2])
		}
	})
}

func TestReportUseCase_Tax(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("year window and deductible grouping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseReader(ctrl)
		uc := NewReportUseCase(invoices, expenses, nil, nil)
		uc.Now = func() time.Time { return now }

		in2025 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		in2024 := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		invoices.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Invoice{
			{ID: "inv-1", UserID: "user-1", TotalAmount: 2000, AmountPaid: 2000, Status: entities.InvoiceStatusPaid, UpdatedAt: in2025},
			{ID: "inv-2", UserID: "user-1", TotalAmount: 999, AmountPaid: 999, Status: entities.InvoiceStatusPaid, UpdatedAt: in2024},
		}, nil)
		expenses.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]entities.Expense{
			{ID: "exp-1", UserID: "user-1", Category: "software", Amount: 300, TaxDeductible: true, Date: in2025},
			{ID: "exp-2", UserID: "user-1", Category: "hardware", Amount: 500, TaxDeductible: true, Date: in2025},
			{ID: "exp-3", UserID: "user-1", Category: "meals", Amount: 100, TaxDeductible: false, Date: in2025},
			{ID: "exp-4", UserID: "user-1", Category: "software", Amount: 50, TaxDeductible: true, Date: in2024},
		}, nil)

		report, err := uc.Tax(context.Background(), "user-1", 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Year != 2025 {
			t.Fatalf("expected year 2025, got %d", report.Year)
		}
		if report.GrossIncome != 2000 {
			t.Fatalf("expected gross income 2000, got %v", report.GrossIncome)
		}
		if report.TotalDeductible != 800 {
			t.Fatalf("expected deductible 800, got %v", report.TotalDeductible)
		}
		if report.TaxableIncome != 1200 {
			t.Fatalf("expected taxable 1200, got %v", report.TaxableIncome)
		}
		if len(report.DeductibleByCategory) != 2 ||
			report.DeductibleByCategory[0].Category != "hardware" ||
			report.DeductibleByCategory[1].Category != "software" {
			t.Fatalf("unexpected category rows: %+v", report.DeductibleByCategory)
		}
	})
}
