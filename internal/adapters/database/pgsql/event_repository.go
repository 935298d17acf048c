package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	"github.com/parishlife/parish_community_app/internal/models"
)

type PgxEventRepository struct {
	db *pgxpool.Pool
}

func newPgxEventRepository(db *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{db: db}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

const eventColumns = `event_id, channel_id, name, description, event_date, end_date, location, image_url, max_attendees, registration_deadline, requires_payment, price, currency, created_at, updated_at`

func toDomainEvent(m models.Event) domain.Event {
	d := domain.Event{
		EventID:              m.EventID,
		ChannelID:            m.ChannelID,
		Name:                 m.Name,
		EventDate:            m.EventDate,
		EndDate:              m.EndDate,
		MaxAttendees:         m.MaxAttendees,
		RegistrationDeadline: m.RegistrationDeadline,
		RequiresPayment:      m.RequiresPayment,
		Price:                m.Price,
		Currency:             m.Currency,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	if m.Location != nil {
		d.Location = *m.Location
	}
	if m.ImageURL != nil {
		d.ImageURL = *m.ImageURL
	}
	return d
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID, &m.ChannelID, &m.Name, &m.Description, &m.EventDate, &m.EndDate,
		&m.Location, &m.ImageURL, &m.MaxAttendees, &m.RegistrationDeadline,
		&m.RequiresPayment, &m.Price, &m.Currency, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	query := `
        INSERT INTO events (event_id, channel_id, name, description, event_date, end_date, location, image_url, max_attendees, registration_deadline, requires_payment, price, currency, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		event.EventID, event.ChannelID, event.Name, nullable(event.Description),
		event.EventDate, event.EndDate, nullable(event.Location), nullable(event.ImageURL),
		event.MaxAttendees, event.RegistrationDeadline, event.RequiresPayment,
		event.Price, event.Currency, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE event_id = $1;`, eventColumns)
	m, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	d := toDomainEvent(*m)
	return &d, nil
}

func (r *PgxEventRepository) ListEventsForUser(ctx context.Context, userID string, filter portsrepo.EventFeedFilter) ([]domain.Event, int, error) {
	// The feed is scoped to channels the user subscribes to; the optional
	// filters narrow within that scope.
	where := `
        FROM events e
        JOIN channel_subscriptions s ON s.channel_id = e.channel_id AND s.user_id = $1
        WHERE ($2 = '' OR e.channel_id = $2)
          AND (NOT $3 OR e.event_date >= now())
          AND (NOT $4 OR EXISTS (
                SELECT 1 FROM event_registrations reg
                WHERE reg.event_id = e.event_id AND reg.user_id = $1
          ))
          AND ($5 = '' OR e.name ILIKE '%' || $5 || '%' OR COALESCE(e.description, '') ILIKE '%' || $5 || '%' OR COALESCE(e.location, '') ILIKE '%' || $5 || '%')
    `
	args := []any{userID, filter.ChannelID, filter.UpcomingOnly, filter.RegisteredOnly, filter.Search}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	query := fmt.Sprintf(`SELECT %s %s ORDER BY e.event_date ASC LIMIT $6 OFFSET $7;`, eventColumnsPrefixed("e"), where)
	rows, err := r.db.Query(ctx, query, append(args, pageSize, (page-1)*pageSize)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, toDomainEvent(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, total, nil
}

func eventColumnsPrefixed(alias string) string {
	return fmt.Sprintf(`%[1]s.event_id, %[1]s.channel_id, %[1]s.name, %[1]s.description, %[1]s.event_date, %[1]s.end_date, %[1]s.location, %[1]s.image_url, %[1]s.max_attendees, %[1]s.registration_deadline, %[1]s.requires_payment, %[1]s.price, %[1]s.currency, %[1]s.created_at, %[1]s.updated_at`, alias)
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	query := `
        UPDATE events
        SET name = $1, description = $2, event_date = $3, end_date = $4, location = $5,
            image_url = $6, max_attendees = $7, registration_deadline = $8,
            requires_payment = $9, price = $10, currency = $11, updated_at = $12
        WHERE event_id = $13;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		event.Name, nullable(event.Description), event.EventDate, event.EndDate,
		nullable(event.Location), nullable(event.ImageURL), event.MaxAttendees,
		event.RegistrationDeadline, event.RequiresPayment, event.Price, event.Currency,
		event.UpdatedAt, event.EventID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM events WHERE event_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func toDomainRegistration(m models.EventRegistration) domain.EventRegistration {
	return domain.EventRegistration{
		RegistrationID: m.RegistrationID,
		EventID:        m.EventID,
		UserID:         m.UserID,
		TicketCode:     m.TicketCode,
		CheckedIn:      m.CheckedIn,
		CheckInTime:    m.CheckInTime,
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		PaymentAmount:  m.PaymentAmount,
		RegisteredAt:   m.RegisteredAt,
	}
}

const registrationColumns = `registration_id, event_id, user_id, ticket_code, checked_in, check_in_time, payment_status, payment_amount, registered_at`

func scanRegistration(row pgx.Row) (*models.EventRegistration, error) {
	var m models.EventRegistration
	err := row.Scan(
		&m.RegistrationID, &m.EventID, &m.UserID, &m.TicketCode, &m.CheckedIn,
		&m.CheckInTime, &m.PaymentStatus, &m.PaymentAmount, &m.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxEventRepository) CreateRegistration(ctx context.Context, reg domain.EventRegistration) error {
	query := `
        INSERT INTO event_registrations (registration_id, event_id, user_id, ticket_code, checked_in, check_in_time, payment_status, payment_amount, registered_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		reg.RegistrationID, reg.EventID, reg.UserID, reg.TicketCode, reg.CheckedIn,
		reg.CheckInTime, string(reg.PaymentStatus), reg.PaymentAmount, reg.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("already registered for event: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) DeleteRegistration(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("registration not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) FindRegistration(ctx context.Context, eventID, userID string) (*domain.EventRegistration, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_registrations WHERE event_id = $1 AND user_id = $2;`, registrationColumns)
	m, err := scanRegistration(r.db.QueryRow(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}
	d := toDomainRegistration(*m)
	return &d, nil
}

func (r *PgxEventRepository) FindRegistrationByTicket(ctx context.Context, ticketCode string) (*domain.EventRegistration, error) {
	query := fmt.Sprintf(`SELECT %s FROM event_registrations WHERE ticket_code = $1;`, registrationColumns)
	m, err := scanRegistration(r.db.QueryRow(ctx, query, ticketCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find registration by ticket: %w", err)
	}
	d := toDomainRegistration(*m)
	return &d, nil
}

func (r *PgxEventRepository) ListRegistrations(ctx context.Context, eventID string, page, pageSize int) ([]domain.EventRegistration, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM event_registrations WHERE event_id = $1;`, eventID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	query := fmt.Sprintf(`
        SELECT %s FROM event_registrations
        WHERE event_id = $1
        ORDER BY registered_at ASC
        LIMIT $2 OFFSET $3;
    `, registrationColumns)
	rows, err := r.db.Query(ctx, query, eventID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var regs []domain.EventRegistration
	for rows.Next() {
		m, err := scanRegistration(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan registration row: %w", err)
		}
		regs = append(regs, toDomainRegistration(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating registration rows: %w", err)
	}
	return regs, total, nil
}

func (r *PgxEventRepository) CountRegistrations(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM event_registrations WHERE event_id = $1;`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}

func (r *PgxEventRepository) CountRegistrationsByStatus(ctx context.Context, eventID string, status domain.PaymentStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM event_registrations WHERE event_id = $1 AND payment_status = $2;`,
		eventID, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations by status: %w", err)
	}
	return count, nil
}

func (r *PgxEventRepository) MarkRegistrationPaid(ctx context.Context, registrationID string, amount decimal.Decimal) error {
	query := `
        UPDATE event_registrations
        SET payment_status = $1, payment_amount = $2
        WHERE registration_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, string(domain.PaymentPaid), amount, registrationID)
	if err != nil {
		return fmt.Errorf("failed to mark registration paid: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("registration not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventRepository) MarkCheckedIn(ctx context.Context, registrationID string, at time.Time) error {
	// checked_in guard makes a ticket scannable only once.
	query := `
        UPDATE event_registrations
        SET checked_in = TRUE, check_in_time = $1
        WHERE registration_id = $2 AND checked_in = FALSE;
    `
	cmdTag, err := r.db.Exec(ctx, query, at, registrationID)
	if err != nil {
		return fmt.Errorf("failed to mark check-in: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ticket already used or missing: %w", apperrors.ErrValidation)
	}
	return nil
}

func toDomainDiscount(m models.DiscountCode) domain.DiscountCode {
	return domain.DiscountCode{
		DiscountID:    m.DiscountID,
		EventID:       m.EventID,
		Code:          m.Code,
		DiscountType:  domain.DiscountType(m.DiscountType),
		DiscountValue: m.DiscountValue,
		MaxUses:       m.MaxUses,
		TimesUsed:     m.TimesUsed,
		ValidUntil:    m.ValidUntil,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *PgxEventRepository) SaveDiscountCode(ctx context.Context, code domain.DiscountCode) error {
	query := `
        INSERT INTO discount_codes (discount_id, event_id, code, discount_type, discount_value, max_uses, times_used, valid_until, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		code.DiscountID, code.EventID, code.Code, string(code.DiscountType),
		code.DiscountValue, code.MaxUses, code.TimesUsed, code.ValidUntil, code.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("discount code already exists for event: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save discount code: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindDiscountCode(ctx context.Context, eventID, code string) (*domain.DiscountCode, error) {
	query := `
        SELECT discount_id, event_id, code, discount_type, discount_value, max_uses, times_used, valid_until, created_at
        FROM discount_codes
        WHERE event_id = $1 AND code = $2;
    `
	var m models.DiscountCode
	err := r.db.QueryRow(ctx, query, eventID, code).Scan(
		&m.DiscountID, &m.EventID, &m.Code, &m.DiscountType, &m.DiscountValue,
		&m.MaxUses, &m.TimesUsed, &m.ValidUntil, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find discount code: %w", err)
	}
	d := toDomainDiscount(m)
	return &d, nil
}

func (r *PgxEventRepository) ConsumeDiscountCode(ctx context.Context, eventID, code string) error {
	// Single guarded UPDATE: the cap check and the increment happen in one
	// statement, so concurrent redemptions can never push times_used past
	// max_uses.
	query := `
        UPDATE discount_codes
        SET times_used = times_used + 1
        WHERE event_id = $1 AND code = $2
          AND (max_uses IS NULL OR times_used < max_uses);
    `
	cmdTag, err := r.db.Exec(ctx, query, eventID, code)
	if err != nil {
		return fmt.Errorf("failed to consume discount code: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("discount code exhausted or missing: %w", apperrors.ErrValidation)
	}
	return nil
}

func (r *PgxEventRepository) SaveTransaction(ctx context.Context, txn domain.EventTransaction) error {
	query := `
        INSERT INTO event_transactions (transaction_id, event_id, user_id, registration_id, amount, currency, payment_method, provider_intent_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID, txn.EventID, txn.UserID, txn.RegistrationID,
		txn.Amount, txn.Currency, txn.PaymentMethod, nullable(txn.ProviderIntentID),
		string(txn.Status), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.EventTransaction, error) {
	query := `
        UPDATE event_transactions
        SET status = $1
        WHERE transaction_id = $2
        RETURNING transaction_id, event_id, user_id, registration_id, amount, currency, payment_method, provider_intent_id, status, created_at;
    `
	var m models.EventTransaction
	err := r.db.QueryRow(ctx, query, string(status), transactionID).Scan(
		&m.TransactionID, &m.EventID, &m.UserID, &m.RegistrationID, &m.Amount,
		&m.Currency, &m.PaymentMethod, &m.ProviderIntentID, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}
	d := domain.EventTransaction{
		TransactionID:  m.TransactionID,
		EventID:        m.EventID,
		UserID:         m.UserID,
		RegistrationID: m.RegistrationID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		PaymentMethod:  m.PaymentMethod,
		Status:         domain.TransactionStatus(m.Status),
		CreatedAt:      m.CreatedAt,
	}
	if m.ProviderIntentID != nil {
		d.ProviderIntentID = *m.ProviderIntentID
	}
	return &d, nil
}

func (r *PgxEventRepository) SumCompletedTransactions(ctx context.Context, eventID string) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM event_transactions
        WHERE event_id = $1 AND status = $2;
    `
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, eventID, string(domain.TransactionCompleted)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed transactions: %w", err)
	}
	return total, nil
}

func (r *PgxEventRepository) SaveAlert(ctx context.Context, alert domain.EventAlert) error {
	query := `
        INSERT INTO event_alerts (alert_id, event_id, title, message, created_by, created_at, sent_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		alert.AlertID, alert.EventID, alert.Title, alert.Message,
		alert.CreatedBy, alert.CreatedAt, alert.SentAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) ListAlerts(ctx context.Context, eventID string, page, pageSize int) ([]domain.EventAlert, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM event_alerts WHERE event_id = $1;`, eventID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	query := `
        SELECT alert_id, event_id, title, message, created_by, created_at, sent_at
        FROM event_alerts
        WHERE event_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, eventID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.EventAlert
	for rows.Next() {
		var m models.EventAlert
		if err := rows.Scan(&m.AlertID, &m.EventID, &m.Title, &m.Message, &m.CreatedBy, &m.CreatedAt, &m.SentAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, domain.EventAlert{
			AlertID:   m.AlertID,
			EventID:   m.EventID,
			Title:     m.Title,
			Message:   m.Message,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
			SentAt:    m.SentAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating alert rows: %w", err)
	}
	return alerts, total, nil
}
