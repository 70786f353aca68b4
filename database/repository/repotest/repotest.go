// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Services is an in-memory serviceRepo.ServiceRepository.
type Services struct {
	mu    sync.Mutex
	items []models.Service
	Calls int
	Err   error
}

func NewServices(items ...models.Service) *Services {
	return &Services{items: items}
}

func (r *Services) GetAll(context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]models.Service, len(r.items))
	for i, s := range r.items {
		s.Slots = append([]string{}, s.Slots...)
		out[i] = s
	}
	return out, nil
}

func (r *Services) GetSummaries(ctx context.Context) ([]models.ServiceSummary, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ServiceSummary, len(all))
	for i, s := range all {
		out[i] = models.ServiceSummary{ID: s.ID, Name: s.Name}
	}
	return out, nil
}

type bookingKey struct{ treatment, date, patient string }

// Bookings is an in-memory bookingRepo.BookingRepository that enforces the
// (treatment, date, patient) uniqueness like the Mongo index does.
type Bookings struct {
	mu    sync.Mutex
	items []models.Booking
	keys  map[bookingKey]int

	// BeforeInsert, when set, runs before each insert while no lock is held.
	BeforeInsert func(b *models.Booking)
	Err          error
}

func NewBookings(items ...models.Booking) *Bookings {
	r := &Bookings{keys: make(map[bookingKey]int)}
	for _, b := range items {
		b := b
		if _, err := r.Insert(context.Background(), &b); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Bookings) All() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Booking{}, r.items...)
}

func (r *Bookings) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Date == date })
}

func (r *Bookings) FindByPatient(_ context.Context, patient string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Patient == patient })
}

func (r *Bookings) FindByKey(_ context.Context, treatment, date, patient string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	i, ok := r.keys[bookingKey{treatment, date, patient}]
	if !ok {
		return nil, nil
	}
	b := r.items[i]
	return &b, nil
}

func (r *Bookings) Insert(_ context.Context, b *models.Booking) (models.InsertResult, error) {
	if r.BeforeInsert != nil {
		r.BeforeInsert(b)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return models.InsertResult{}, r.Err
	}
	key := bookingKey{b.Treatment, b.Date, b.Patient}
	if _, exists := r.keys[key]; exists {
		return models.InsertResult{}, fmt.Errorf("%w: %v", bookingRepo.ErrDuplicate, key)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	r.keys[key] = len(r.items)
	r.items = append(r.items, *b)
	return models.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
}

func (r *Bookings) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []models.Booking{}
	for _, b := range r.items {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Users is an in-memory userRepo.UserRepository.
type Users struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	order   []string
	Lookups int
	Err     error
}

func NewUsers(items ...models.User) *Users {
	r := &Users{byEmail: make(map[string]*models.User)}
	for _, u := range items {
		u := u
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		r.byEmail[u.Email] = &u
		r.order = append(r.order, u.Email)
	}
	return r
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.GetByEmailWithProjection(ctx, email, nil)
}

func (r *Users) GetByEmailWithProjection(_ context.Context, email string, _ bson.M) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lookups++
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *Users) GetAll(context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]models.User, 0, len(r.order))
	for _, email := range r.order {
		out = append(out, *r.byEmail[email])
	}
	return out, nil
}

func (r *Users) Upsert(_ context.Context, email string, fields bson.M) (models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return models.UpdateResult{}, r.Err
	}

	res := models.UpdateResult{Acknowledged: true}
	u, ok := r.byEmail[email]
	if ok {
		res.MatchedCount, res.ModifiedCount = 1, 1
	} else {
		u = &models.User{ID: primitive.NewObjectID(), Email: email}
		r.byEmail[email] = u
		r.order = append(r.order, email)
		res.UpsertedCount, res.UpsertedID = 1, u.ID
	}
	for k, v := range fields {
		switch k {
		case "role":
			u.Role, _ = v.(string)
		case "name":
			u.Name, _ = v.(string)
		default:
			if u.Profile == nil {
				u.Profile = map[string]interface{}{}
			}
			u.Profile[k] = v
		}
	}
	return res, nil
}

func (r *Users) SetRole(_ context.Context, email, role string) (models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return models.UpdateResult{}, r.Err
	}
	u, ok := r.byEmail[email]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if u.Role != role {
		u.Role = role
		res.ModifiedCount = 1
	}
	return res, nil
}

// Doctors is an in-memory doctorRepo.DoctorRepository.
type Doctors struct {
	mu    sync.Mutex
	items []models.Doctor
}

func NewDoctors() *Doctors { return &Doctors{} }

func (r *Doctors) Create(_ context.Context, d *models.Doctor) (models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = primitive.NewObjectID()
	r.items = append(r.items, *d)
	return models.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (r *Doctors) GetAll(context.Context) ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Doctor{}, r.items...), nil
}

// Notifier records published events.
type Notifier struct {
	mu     sync.Mutex
	Events []PublishedEvent
	Err    error
}

type PublishedEvent struct {
	Type    string
	Key     string
	Payload interface{}
}

func (n *Notifier) Publish(_ context.Context, eventType, key string, payload interface{}) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, PublishedEvent{Type: eventType, Key: key, Payload: payload})
	return n.Err
}

func (n *Notifier) Close() error { return nil }

func (n *Notifier) Published() []PublishedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]PublishedEvent{}, n.Events...)
}
