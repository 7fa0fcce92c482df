package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// maxOccurrencesPerRun bounds how many ledger entries one Process call may
// materialize per definition. A definition more than this many periods
// overdue needs additional Process calls to fully catch up.
const maxOccurrencesPerRun = 100

// transactionCreator is the slice of the transaction ledger the scheduler
// uses to materialize occurrences.
type transactionCreator interface {
	Add(ctx context.Context, input AddTransactionInput) model.Transaction
}

// Recurring owns recurring transaction definitions and advances them.
type Recurring struct {
	kv           service.KV
	clock        service.Clock
	ids          service.IDGenerator
	transactions transactionCreator
	definitions  []model.RecurringTransaction
}

// NewRecurring creates an empty recurring scheduler.
func NewRecurring(kv service.KV, clock service.Clock, ids service.IDGenerator, transactions transactionCreator) *Recurring {
	return &Recurring{kv: kv, clock: clock, ids: ids, transactions: transactions}
}

// Load rehydrates the recurring collection from storage.
func (r *Recurring) Load(ctx context.Context) error {
	return loadCollection(ctx, r.kv, service.KeyRecurring, &r.definitions)
}

func (r *Recurring) reset() {
	r.definitions = nil
}

func (r *Recurring) persist(ctx context.Context) {
	persistCollection(ctx, r.kv, service.KeyRecurring, r.definitions)
}

// AddRecurringInput holds the fields for creating a recurring definition.
type AddRecurringInput struct {
	StartDate   time.Time
	EndDate     *time.Time
	ToAmount    *float64
	Description string
	Currency    string
	WalletID    string
	CategoryID  string
	ToWalletID  string
	Type        model.TransactionType
	Frequency   model.Frequency
	Interval    int
	Amount      float64
}

// Add creates an active recurring definition. The next run date starts at
// the start date itself: the first occurrence is never pre-skipped, even
// for start dates in the past, because the Process catch-up loop handles
// overdue occurrences.
func (r *Recurring) Add(ctx context.Context, input AddRecurringInput) model.RecurringTransaction {
	now := r.clock.Now()
	interval := input.Interval
	if interval < 1 {
		interval = 1
	}
	def := model.RecurringTransaction{
		ID:          r.ids.NewID(),
		Amount:      input.Amount,
		Currency:    input.Currency,
		Type:        input.Type,
		WalletID:    input.WalletID,
		CategoryID:  input.CategoryID,
		ToWalletID:  input.ToWalletID,
		ToAmount:    input.ToAmount,
		Frequency:   input.Frequency,
		Interval:    interval,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		NextRunDate: input.StartDate,
		Description: input.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.definitions = append(r.definitions, def)
	r.persist(ctx)

	slog.Info("created recurring transaction",
		"id", def.ID,
		"frequency", def.Frequency,
		"interval", def.Interval,
		"next_run", def.NextRunDate.Format("2006-01-02"))
	return def
}

// UpdateRecurringInput holds the optional fields for a partial update.
type UpdateRecurringInput struct {
	StartDate   *time.Time
	EndDate     *time.Time
	ToAmount    *float64
	Description *string
	WalletID    *string
	CategoryID  *string
	ToWalletID  *string
	Type        *model.TransactionType
	Frequency   *model.Frequency
	Interval    *int
	Amount      *float64
}

// Update applies a partial update. Changing the start date, and only that,
// resets the next run date to the new start; every other edit preserves the
// scheduler position. Unknown ids are a silent no-op.
func (r *Recurring) Update(ctx context.Context, id string, input UpdateRecurringInput) {
	def := r.find(id)
	if def == nil {
		return
	}
	if input.StartDate != nil && !input.StartDate.Equal(def.StartDate) {
		def.StartDate = *input.StartDate
		def.NextRunDate = *input.StartDate
	}
	if input.EndDate != nil {
		def.EndDate = input.EndDate
	}
	if input.ToAmount != nil {
		def.ToAmount = input.ToAmount
	}
	if input.Description != nil {
		def.Description = *input.Description
	}
	if input.WalletID != nil {
		def.WalletID = *input.WalletID
	}
	if input.CategoryID != nil {
		def.CategoryID = *input.CategoryID
	}
	if input.ToWalletID != nil {
		def.ToWalletID = *input.ToWalletID
	}
	if input.Type != nil {
		def.Type = *input.Type
	}
	if input.Frequency != nil {
		def.Frequency = *input.Frequency
	}
	if input.Interval != nil && *input.Interval >= 1 {
		def.Interval = *input.Interval
	}
	if input.Amount != nil {
		def.Amount = *input.Amount
	}
	def.UpdatedAt = r.clock.Now()
	r.persist(ctx)
}

// ToggleActive flips a definition between active and paused without
// touching the next run date, so resuming catches up from where it left
// off. Unknown ids are a silent no-op.
func (r *Recurring) ToggleActive(ctx context.Context, id string) {
	def := r.find(id)
	if def == nil {
		return
	}
	def.IsActive = !def.IsActive
	def.UpdatedAt = r.clock.Now()
	r.persist(ctx)

	slog.Info("toggled recurring transaction", "id", id, "active", def.IsActive)
}

// Delete removes a definition. Transactions it already materialized stay in
// the ledger. Unknown ids are a silent no-op.
func (r *Recurring) Delete(ctx context.Context, id string) {
	for i := range r.definitions {
		if r.definitions[i].ID == id {
			r.definitions = append(r.definitions[:i], r.definitions[i+1:]...)
			r.persist(ctx)
			return
		}
	}
}

func (r *Recurring) find(id string) *model.RecurringTransaction {
	for i := range r.definitions {
		if r.definitions[i].ID == id {
			return &r.definitions[i]
		}
	}
	return nil
}

// Get returns the definition with the given id.
func (r *Recurring) Get(id string) (model.RecurringTransaction, bool) {
	if def := r.find(id); def != nil {
		return *def, true
	}
	return model.RecurringTransaction{}, false
}

// List returns every recurring definition.
func (r *Recurring) List() []model.RecurringTransaction {
	out := make([]model.RecurringTransaction, len(r.definitions))
	copy(out, r.definitions)
	return out
}

// ProcessDetail reports what one definition produced during a Process call.
type ProcessDetail struct {
	ID          string
	Description string
	Created     int
}

// ProcessResult summarizes one Process call.
type ProcessResult struct {
	Details   []ProcessDetail
	Processed int // definitions that produced at least one entry
	Created   int // total ledger entries materialized
}

// Process advances every active, unexpired definition: while the next run
// date is at or before the end of today, one ledger entry is materialized
// dated at the occurrence with the definition's frozen fields, and the next
// run date advances by one period. Advancement is monotonic; no occurrence
// is ever materialized twice. Each definition creates at most
// maxOccurrencesPerRun entries per call.
func (r *Recurring) Process(ctx context.Context) ProcessResult {
	now := r.clock.Now()
	today := endOfDay(now)
	var result ProcessResult

	for i := range r.definitions {
		def := &r.definitions[i]
		if !def.IsActive || def.Ended(now) {
			continue
		}

		created := 0
		next := def.NextRunDate
		for !next.After(today) && created < maxOccurrencesPerRun {
			r.transactions.Add(ctx, AddTransactionInput{
				Amount:      def.Amount,
				Type:        def.Type,
				Date:        next,
				Description: def.Description,
				WalletID:    def.WalletID,
				CategoryID:  def.CategoryID,
				ToWalletID:  def.ToWalletID,
				ToAmount:    def.ToAmount,
			})
			created++

			next = def.NextOccurrence(next)
			if def.EndDate != nil && next.After(*def.EndDate) {
				break
			}
		}

		if created > 0 {
			def.NextRunDate = next
			def.LastRunDate = &now
			def.UpdatedAt = now
			result.Processed++
			result.Created += created
			result.Details = append(result.Details, ProcessDetail{
				ID:          def.ID,
				Description: def.Description,
				Created:     created,
			})
		}
	}

	if result.Created > 0 {
		r.persist(ctx)
	}

	slog.Info("processed recurring transactions",
		"definitions", len(r.definitions),
		"processed", result.Processed,
		"created", result.Created)
	return result
}

// endOfDay returns the last instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
