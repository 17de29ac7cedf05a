package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/calendar"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	TotalPaidKeyPrefix = "payroll:total_paid:"
	totalPaidTTL       = 10 * time.Minute
)

// TotalPaidVersionKey holds a counter bumped after every committed pay batch
// of the period. Cached totals are stored under the version they were read at.
func TotalPaidVersionKey(year, month int) string {
	return fmt.Sprintf("%s%d-%d:version", TotalPaidKeyPrefix, year, month)
}

func TotalPaidKey(year, month int, version int64) string {
	return fmt.Sprintf("%s%d-%d:v%d", TotalPaidKeyPrefix, year, month, version)
}

// SettingsStore supplies the configured daily rate.
type SettingsStore interface {
	DailyRate(ctx context.Context) (decimal.Decimal, error)
}

type PayCommand struct {
	EmployeeIDs   []int64
	Year          int
	Month         int
	Actor         string
	PaymentMethod string
	Reference     string
}

type PayResult struct {
	Requested int
	Paid      int
	Skipped   int
}

type PeriodSummary struct {
	PaidTotal    decimal.Decimal
	PendingTotal decimal.Decimal
	GrandTotal   decimal.Decimal
	PaidCount    int
	PendingCount int
}

type OvertimeSummaryRow struct {
	EmployeeID     int64
	Name           string
	EmploymentType employee.Category
	WeekdayHours   decimal.Decimal
	WeekendHours   decimal.Decimal
	DaysWorked     int
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	// ListForPeriod returns one row per employee: frozen figures for PAID
	// settlements, live figures for active employees otherwise. Nothing is written.
	ListForPeriod(ctx context.Context, year, month int) ([]Row, error)
	MaterializePending(ctx context.Context, employeeIDs []int64, year, month int) error
	Pay(ctx context.Context, cmd PayCommand) (PayResult, error)
	// Status is PENDING when no settlement exists yet.
	Status(ctx context.Context, employeeID int64, year, month int) (Status, error)
	TotalPaid(ctx context.Context, year, month int) (decimal.Decimal, error)
	Summary(ctx context.Context, year, month int) (PeriodSummary, error)
	PaymentInfo(ctx context.Context, employeeID int64, year, month int) (PaymentInfo, error)
	OvertimeSummary(ctx context.Context, year, month int) ([]OvertimeSummaryRow, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	agg       PeriodAggregates
	settings  SettingsStore
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	agg PeriodAggregates,
	settings SettingsStore,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, employees, agg, settings, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	agg PeriodAggregates,
	settings SettingsStore,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		agg:       agg,
		settings:  settings,
		outbox:    outboxRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) ListForPeriod(ctx context.Context, year, month int) ([]Row, error) {
	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.repo.FindAllByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[int64]SettlementRecord, len(recs))
	for _, rec := range recs {
		byEmployee[rec.EmployeeID] = rec
	}

	rate, err := s.settings.DailyRate(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(emps))
	for _, emp := range emps {
		rec, stored := byEmployee[emp.ID]
		if stored && rec.Status == StatusPaid {
			row, err := s.frozenRow(ctx, emp, rec, rate)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
			continue
		}
		if !emp.IsActive {
			continue
		}

		row, err := s.compute(ctx, emp, year, month, rate)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// compute prices the employee from live data.
func (s *service) compute(ctx context.Context, emp employee.Employee, year, month int, dailyRate decimal.Decimal) (Row, error) {
	base := decimal.Zero
	if emp.EmploymentType == employee.CategorySalaried && emp.PayBand != nil {
		amount, err := s.employees.PayBandBaseAmount(ctx, *emp.PayBand)
		if err != nil {
			return Row{}, err
		}
		base = amount
	}

	calc, err := NewCalculator(emp, base, dailyRate, s.agg)
	if err != nil {
		return Row{}, err
	}
	total, err := calc.GrossPay(ctx, year, month)
	if err != nil {
		return Row{}, err
	}
	breakdown, err := calc.Breakdown(ctx, total, year, month)
	if err != nil {
		return Row{}, err
	}

	return Row{
		EmployeeID:     emp.ID,
		Name:           emp.Name,
		EmploymentType: emp.EmploymentType,
		PayBand:        emp.PayBand,
		Total:          total,
		Breakdown:      breakdown,
		Status:         StatusPending,
	}, nil
}

// frozenRow rebuilds a row from a PAID settlement. Live category and band are
// only used for records paid before snapshots were written.
func (s *service) frozenRow(ctx context.Context, emp employee.Employee, rec SettlementRecord, dailyRate decimal.Decimal) (Row, error) {
	category, band := emp.EmploymentType, emp.PayBand
	if rec.SnapshotType != nil {
		category, band = *rec.SnapshotType, rec.SnapshotBand
	}

	breakdown := Breakdown{Base: rec.BaseAmount, Variable: rec.VariableAmount}
	switch category {
	case employee.CategoryDailyRate:
		days, err := s.agg.DaysWorked(ctx, emp.ID, rec.Year, rec.Month)
		if err != nil {
			return Row{}, err
		}
		if days == 0 {
			days = FrozenDays(rec.TotalAmount, dailyRate)
		}
		breakdown.Days = days
	default:
		breakdown.Days = calendar.StandardWorkingDays(rec.Year, rec.Month)
	}

	return Row{
		EmployeeID:     emp.ID,
		Name:           emp.Name,
		EmploymentType: category,
		PayBand:        band,
		Total:          rec.TotalAmount,
		Breakdown:      breakdown,
		Status:         StatusPaid,
		Frozen:         true,
	}, nil
}

func (s *service) MaterializePending(ctx context.Context, employeeIDs []int64, year, month int) error {
	log := s.log(ctx).With(zap.Int("year", year), zap.Int("month", month))

	rate, err := s.settings.DailyRate(ctx)
	if err != nil {
		return err
	}

	recs := make([]SettlementRecord, 0, len(employeeIDs))
	for _, id := range uniqueIDs(employeeIDs) {
		emp, err := s.employees.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("materialize skipped unknown employee", zap.Int64("employee_id", id))
			continue
		}
		if err != nil {
			return err
		}
		if !emp.IsActive {
			continue
		}

		row, err := s.compute(ctx, *emp, year, month, rate)
		if err != nil {
			return fmt.Errorf("compute settlement for employee %d: %w", id, err)
		}
		recs = append(recs, SettlementRecord{
			EmployeeID:     id,
			Year:           year,
			Month:          month,
			BaseAmount:     row.Breakdown.Base,
			VariableAmount: row.Breakdown.Variable,
			TotalAmount:    row.Total,
		})
	}
	if len(recs) == 0 {
		return nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		for i := range recs {
			if err := qtx.UpsertPending(ctx, &recs[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("materialize pending failed", zap.Error(err))
		return fmt.Errorf("materialize pending: %w", err)
	}
	return nil
}

func (s *service) Pay(ctx context.Context, cmd PayCommand) (PayResult, error) {
	log := s.log(ctx).With(
		zap.Int("year", cmd.Year),
		zap.Int("month", cmd.Month),
		zap.String("actor", cmd.Actor),
	)

	ids := uniqueIDs(cmd.EmployeeIDs)
	result := PayResult{Requested: len(ids)}
	if len(ids) == 0 {
		return result, nil
	}

	if err := s.MaterializePending(ctx, ids, cmd.Year, cmd.Month); err != nil {
		return PayResult{}, err
	}

	paidAt := s.now().UTC()
	requestID := contextutil.GetRequestID(ctx)
	paid, skipped := 0, 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		etx := s.employees.WithTx(tx)
		var otx kafka.OutboxRepository
		if s.outbox != nil {
			otx = s.outbox.WithTx(tx)
		}

		for _, id := range ids {
			rec, err := qtx.FindForUpdate(ctx, id, cmd.Year, cmd.Month)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped++
				continue
			}
			if err != nil {
				return err
			}
			if rec.Status == StatusPaid {
				skipped++
				continue
			}

			emp, err := etx.FindByID(ctx, id)
			if err != nil {
				return err
			}

			ok, err := qtx.MarkPaid(ctx, rec.ID, emp.EmploymentType, emp.PayBand, paidAt)
			if err != nil {
				return err
			}
			if !ok {
				skipped++
				continue
			}

			entry := &PaymentLog{
				SettlementID:  rec.ID,
				PaidBy:        cmd.Actor,
				Amount:        rec.TotalAmount,
				PaymentMethod: cmd.PaymentMethod,
				Reference:     cmd.Reference,
				PaidAt:        paidAt,
			}
			if err := qtx.CreatePaymentLog(ctx, entry); err != nil {
				return err
			}

			if otx != nil {
				event, err := settlementPaidOutbox(requestID, *rec, *emp, *entry)
				if err != nil {
					return err
				}
				if err := otx.Create(ctx, event); err != nil {
					return err
				}
			}
			paid++
		}
		return nil
	})
	if err != nil {
		log.Error("pay batch rolled back", zap.Int("requested", len(ids)), zap.Error(err))
		return PayResult{}, fmt.Errorf("pay settlements: %w", err)
	}

	result.Paid, result.Skipped = paid, skipped
	if paid > 0 {
		s.bumpTotalPaidVersion(ctx, cmd.Year, cmd.Month)
	}
	log.Info("pay batch committed",
		zap.Int("requested", result.Requested),
		zap.Int("paid", result.Paid),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func settlementPaidOutbox(requestID string, rec SettlementRecord, emp employee.Employee, entry PaymentLog) (kafka.OutboxEvent, error) {
	payload, err := json.Marshal(events.SettlementPaidEvent{
		EventType:      events.SettlementPaidEventType,
		RequestID:      requestID,
		SettlementID:   rec.ID,
		EmployeeID:     rec.EmployeeID,
		Year:           rec.Year,
		Month:          rec.Month,
		EmploymentType: string(emp.EmploymentType),
		PayBand:        emp.PayBand,
		Amount:         entry.Amount.StringFixed(2),
		PaidBy:         entry.PaidBy,
		PaymentMethod:  entry.PaymentMethod,
		Reference:      entry.Reference,
		OccurredAt:     entry.PaidAt,
	})
	if err != nil {
		return kafka.OutboxEvent{}, err
	}
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "settlement",
		AggregateID:   strconv.FormatInt(rec.ID, 10),
		EventType:     events.SettlementPaidEventType,
		Topic:         events.SettlementPaidTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}, nil
}

func (s *service) bumpTotalPaidVersion(ctx context.Context, year, month int) {
	if s.rdb == nil {
		return
	}
	key := TotalPaidVersionKey(year, month)
	if err := s.rdb.Incr(ctx, key).Err(); err != nil {
		s.log(ctx).Error("failed to bump total paid cache version",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// totalPaidCacheKey reports false when the period version cannot be read;
// the total is then computed without touching the cache.
func (s *service) totalPaidCacheKey(ctx context.Context, year, month int) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	version, err := s.rdb.Get(ctx, TotalPaidVersionKey(year, month)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.log(ctx).Warn("total paid cache version unavailable", zap.Error(err))
		return "", false
	}
	return TotalPaidKey(year, month, version), true
}

func (s *service) Status(ctx context.Context, employeeID int64, year, month int) (Status, error) {
	rec, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, year, month)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StatusPending, nil
	}
	if err != nil {
		return "", err
	}
	return rec.Status, nil
}

func (s *service) TotalPaid(ctx context.Context, year, month int) (decimal.Decimal, error) {
	key, cacheable := s.totalPaidCacheKey(ctx, year, month)
	if cacheable {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			if total, err := decimal.NewFromString(cached); err == nil {
				return total, nil
			}
		}
	}

	flightKey := key
	if !cacheable {
		flightKey = fmt.Sprintf("total_paid:%d-%d", year, month)
	}
	// A sum read while a batch commits is stored under the retired version.
	v, err, _ := s.sf.Do(flightKey, func() (interface{}, error) {
		total, err := s.repo.SumPaid(ctx, year, month)
		if err != nil {
			return nil, err
		}
		if cacheable {
			s.rdb.Set(ctx, key, total.StringFixed(2), totalPaidTTL)
		}
		return total, nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return v.(decimal.Decimal), nil
}

func (s *service) Summary(ctx context.Context, year, month int) (PeriodSummary, error) {
	rows, err := s.ListForPeriod(ctx, year, month)
	if err != nil {
		return PeriodSummary{}, err
	}

	sum := PeriodSummary{PaidTotal: decimal.Zero, PendingTotal: decimal.Zero}
	for _, row := range rows {
		if row.Status == StatusPaid {
			sum.PaidTotal = sum.PaidTotal.Add(row.Total)
			sum.PaidCount++
		} else {
			sum.PendingTotal = sum.PendingTotal.Add(row.Total)
			sum.PendingCount++
		}
	}
	sum.GrandTotal = sum.PaidTotal.Add(sum.PendingTotal)
	return sum, nil
}

func (s *service) PaymentInfo(ctx context.Context, employeeID int64, year, month int) (PaymentInfo, error) {
	info, err := s.repo.FindPaymentInfo(ctx, employeeID, year, month)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PaymentInfo{}, payrollerrors.ErrPaymentNotFound
	}
	if err != nil {
		return PaymentInfo{}, err
	}
	return *info, nil
}

// OvertimeSummary lists weekday and weekend hours for salaried staff and days
// worked for daily-rate staff. Employees with nothing recorded are omitted.
func (s *service) OvertimeSummary(ctx context.Context, year, month int) ([]OvertimeSummaryRow, error) {
	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]OvertimeSummaryRow, 0)
	for _, emp := range emps {
		row := OvertimeSummaryRow{
			EmployeeID:     emp.ID,
			Name:           emp.Name,
			EmploymentType: emp.EmploymentType,
			WeekdayHours:   decimal.Zero,
			WeekendHours:   decimal.Zero,
		}

		switch emp.EmploymentType {
		case employee.CategorySalaried:
			totals, err := s.agg.AggregateOvertime(ctx, emp.ID, year, month)
			if err != nil {
				return nil, err
			}
			row.WeekdayHours = totals.WeekdayHours.Round(2)
			row.WeekendHours = totals.WeekendHours.Round(2)
		case employee.CategoryDailyRate:
			days, err := s.agg.DaysWorked(ctx, emp.ID, year, month)
			if err != nil {
				return nil, err
			}
			row.DaysWorked = days
		}

		if row.WeekdayHours.IsZero() && row.WeekendHours.IsZero() && row.DaysWorked == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
