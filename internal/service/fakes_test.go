package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/notify"
)

// In-memory repository fakes backing the service tests.

type fakeResidentRepo struct {
	residents map[string]*domain.Resident
	nextID    int
}

func newFakeResidentRepo() *fakeResidentRepo {
	return &fakeResidentRepo{residents: map[string]*domain.Resident{}}
}

func (f *fakeResidentRepo) Create(_ context.Context, r *domain.Resident) error {
	f.nextID++
	r.ID = fmt.Sprintf("res-%d", f.nextID)
	r.CreatedAt = time.Now()
	f.residents[r.ID] = r
	return nil
}

func (f *fakeResidentRepo) GetByID(_ context.Context, id string) (*domain.Resident, error) {
	r, ok := f.residents[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r, nil
}

func (f *fakeResidentRepo) GetByLoginID(_ context.Context, loginID string) (*domain.Resident, error) {
	for _, r := range f.residents {
		if r.LoginID == loginID {
			return r, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeResidentRepo) ExistsByLoginIDOrEmail(_ context.Context, loginID, email string) (bool, error) {
	for _, r := range f.residents {
		if r.LoginID == loginID || r.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeResidentRepo) ListAll(_ context.Context) ([]domain.Resident, error) {
	out := make([]domain.Resident, 0, len(f.residents))
	for _, r := range f.residents {
		out = append(out, *r)
	}
	return out, nil
}

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*domain.Admin{}}
}

func (f *fakeAdminRepo) Create(_ context.Context, a *domain.Admin) error {
	f.nextID++
	a.ID = fmt.Sprintf("adm-%d", f.nextID)
	f.admins[a.ID] = a
	return nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return a, nil
}

func (f *fakeAdminRepo) GetByAdminID(_ context.Context, adminID string) (*domain.Admin, error) {
	for _, a := range f.admins {
		if a.AdminID == adminID {
			return a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*domain.Booking{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	f.nextID++
	b.ID = fmt.Sprintf("bkg-%d", f.nextID)
	b.CreatedAt = time.Now()
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) ListByResident(_ context.Context, residentID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.ResidentID == residentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, amenity string, start, end time.Time) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.AmenityName != amenity {
			continue
		}
		if b.Status != domain.BookingStatusPending && b.Status != domain.BookingStatusApproved {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			count++
		}
	}
	return count, nil
}

type fakeDueRepo struct {
	dues   map[string]*domain.Due
	nextID int
}

func newFakeDueRepo() *fakeDueRepo {
	return &fakeDueRepo{dues: map[string]*domain.Due{}}
}

func (f *fakeDueRepo) Create(_ context.Context, d *domain.Due) error {
	f.nextID++
	d.ID = fmt.Sprintf("due-%d", f.nextID)
	d.CreatedAt = time.Now()
	cp := *d
	f.dues[d.ID] = &cp
	return nil
}

func (f *fakeDueRepo) Update(_ context.Context, d *domain.Due) error {
	if _, ok := f.dues[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *d
	f.dues[d.ID] = &cp
	return nil
}

func (f *fakeDueRepo) GetByID(_ context.Context, id string) (*domain.Due, error) {
	d, ok := f.dues[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDueRepo) ListAll(_ context.Context) ([]domain.Due, error) {
	var out []domain.Due
	for _, d := range f.dues {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDueRepo) CurrentForResident(_ context.Context, residentID string) (*domain.Due, error) {
	var current *domain.Due
	for _, d := range f.dues {
		if d.ResidentID != residentID {
			continue
		}
		if d.Status != domain.DueStatusPending && d.Status != domain.DueStatusOverdue {
			continue
		}
		if current == nil || d.DueDate.Before(current.DueDate) {
			current = d
		}
	}
	if current == nil {
		return nil, pgx.ErrNoRows
	}
	cp := *current
	return &cp, nil
}

type fakeGuestPassRepo struct {
	passes map[string]*domain.GuestPass
	nextID int
}

func newFakeGuestPassRepo() *fakeGuestPassRepo {
	return &fakeGuestPassRepo{passes: map[string]*domain.GuestPass{}}
}

func (f *fakeGuestPassRepo) Create(_ context.Context, p *domain.GuestPass) error {
	f.nextID++
	p.ID = fmt.Sprintf("gp-%d", f.nextID)
	p.CreatedAt = time.Now()
	cp := *p
	f.passes[p.ID] = &cp
	return nil
}

func (f *fakeGuestPassRepo) Update(_ context.Context, p *domain.GuestPass) error {
	if _, ok := f.passes[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	f.passes[p.ID] = &cp
	return nil
}

func (f *fakeGuestPassRepo) GetByID(_ context.Context, id string) (*domain.GuestPass, error) {
	p, ok := f.passes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (f *fakeGuestPassRepo) ListByResident(_ context.Context, residentID string) ([]domain.GuestPass, error) {
	var out []domain.GuestPass
	for _, p := range f.passes {
		if p.ResidentID == residentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeGuestPassRepo) ListAll(_ context.Context) ([]domain.GuestPass, error) {
	var out []domain.GuestPass
	for _, p := range f.passes {
		out = append(out, *p)
	}
	return out, nil
}

type fakeTicketRepo struct {
	tickets map[string]*domain.Ticket
	nextID  int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[string]*domain.Ticket{}}
}

func (f *fakeTicketRepo) Create(_ context.Context, t *domain.Ticket) error {
	f.nextID++
	t.ID = fmt.Sprintf("tkt-%d", f.nextID)
	t.CreatedAt = time.Now()
	due := t.CreatedAt.Add(time.Duration(t.SLAHours) * time.Hour)
	t.SLADueAt = &due
	cp := *t
	f.tickets[t.ID] = &cp
	return nil
}

func (f *fakeTicketRepo) Update(_ context.Context, t *domain.Ticket) error {
	if _, ok := f.tickets[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *t
	f.tickets[t.ID] = &cp
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTicketRepo) ListByResident(_ context.Context, residentID string) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range f.tickets {
		if t.ResidentID == residentID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) ListAll(_ context.Context) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range f.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTicketRepo) Overview(_ context.Context) (*domain.TicketOverview, error) {
	ov := &domain.TicketOverview{}
	for _, t := range f.tickets {
		ov.Total++
		switch t.Status {
		case domain.TicketStatusOpen:
			ov.Open++
		case domain.TicketStatusAssigned:
			ov.Assigned++
		case domain.TicketStatusClosed:
			ov.Closed++
		}
	}
	return ov, nil
}

func (f *fakeTicketRepo) ListSLABreached(_ context.Context) ([]domain.Ticket, error) {
	var out []domain.Ticket
	now := time.Now()
	for _, t := range f.tickets {
		if t.Status != domain.TicketStatusClosed && t.SLADueAt != nil && t.SLADueAt.Before(now) {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakePollRepo struct {
	polls  map[string]*domain.Poll
	nextID int
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{polls: map[string]*domain.Poll{}}
}

func (f *fakePollRepo) Create(_ context.Context, p *domain.Poll) error {
	f.nextID++
	p.ID = fmt.Sprintf("poll-%d", f.nextID)
	p.CreatedAt = time.Now()
	cp := *p
	cp.Options = append([]domain.PollOption(nil), p.Options...)
	f.polls[p.ID] = &cp
	return nil
}

func (f *fakePollRepo) GetByID(_ context.Context, id string) (*domain.Poll, error) {
	p, ok := f.polls[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	cp.Options = append([]domain.PollOption(nil), p.Options...)
	return &cp, nil
}

func (f *fakePollRepo) ListAll(_ context.Context) ([]domain.Poll, error) {
	var out []domain.Poll
	for _, p := range f.polls {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePollRepo) IncrementVote(_ context.Context, pollID string, position int) error {
	p, ok := f.polls[pollID]
	if !ok {
		return pgx.ErrNoRows
	}
	for i := range p.Options {
		if p.Options[i].Position == position {
			p.Options[i].Votes++
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakePollRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.polls[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.polls, id)
	return nil
}

// captureSender records sent messages and optionally fails.
type captureSender struct {
	sent    []notify.Message
	failure error
}

func (s *captureSender) Send(_ context.Context, msg notify.Message) error {
	if s.failure != nil {
		return s.failure
	}
	s.sent = append(s.sent, msg)
	return nil
}

var errDeliveryDown = errors.New("broker unreachable")
