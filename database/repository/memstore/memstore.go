// Package memstore holds in-memory repositories used by service and handler tests.
package memstore

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	bookingRepo "eventra/database/repository/booking"
	chatRepo "eventra/database/repository/chat"
	eventRepo "eventra/database/repository/event"
	providerRepo "eventra/database/repository/provider"
	userRepo "eventra/database/repository/user"
	"eventra/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Store keeps every collection behind one lock.
type Store struct {
	mu        sync.Mutex
	Users     map[string]*models.User
	Events    map[string]*models.Event
	Profiles  map[string]*models.ProviderProfile
	Bookings  map[string]*models.Booking
	Chats     map[string]*models.Chat
	FailWrite error
}

func New() *Store {
	return &Store{
		Users:    map[string]*models.User{},
		Events:   map[string]*models.Event{},
		Profiles: map[string]*models.ProviderProfile{},
		Bookings: map[string]*models.Booking{},
		Chats:    map[string]*models.Chat{},
	}
}

func (s *Store) UserRepo() userRepo.UserRepository             { return &users{s} }
func (s *Store) EventRepo() eventRepo.EventRepository          { return &events{s} }
func (s *Store) ProviderRepo() providerRepo.ProviderRepository { return &profiles{s} }
func (s *Store) BookingRepo() bookingRepo.BookingRepository    { return &bookings{s} }
func (s *Store) ChatRepo() chatRepo.ChatRepository             { return &chats{s} }

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// ---- users ----

type users struct{ s *Store }

func (r *users) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrite != nil {
		return r.s.FailWrite
	}
	for _, existing := range r.s.Users {
		if existing.Email == u.Email {
			return userRepo.ErrDuplicateEmail
		}
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	r.s.Users[u.ID] = &cp
	return nil
}

func (r *users) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.Users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *users) GetByIDs(_ context.Context, ids []string) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.User{}
	for _, id := range ids {
		if u, ok := r.s.Users[id]; ok {
			cp := *u
			cp.PasswordHash, cp.TokenHash, cp.FCMToken = "", "", ""
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *users) UpdateSetDocument(_ context.Context, id string, fields bson.M) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrite != nil {
		return r.s.FailWrite
	}
	u, ok := r.s.Users[id]
	if !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	if email, ok := fields["email"].(string); ok {
		for _, other := range r.s.Users {
			if other.ID != id && other.Email == email {
				return userRepo.ErrDuplicateEmail
			}
		}
	}
	for k, v := range fields {
		str, _ := v.(string)
		switch k {
		case "name":
			u.Name = str
		case "email":
			u.Email = str
		case "passwordHash":
			u.PasswordHash = str
		case "tokenHash":
			u.TokenHash = str
		case "fcmToken":
			u.FCMToken = str
		case "profileRef":
			u.ProfileRef = str
		}
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *users) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.Users[id]; !ok {
		return fmt.Errorf("user with id %s not found", id)
	}
	delete(r.s.Users, id)
	return nil
}

// ---- events ----

type events struct{ s *Store }

func (r *events) Create(_ context.Context, e *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrite != nil {
		return r.s.FailWrite
	}
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	cp := *e
	r.s.Events[e.ID] = &cp
	return nil
}

func (r *events) GetByID(_ context.Context, id string) (*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.Events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *events) GetByIDs(_ context.Context, ids []string) ([]models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Event{}
	for _, id := range ids {
		if e, ok := r.s.Events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *events) GetByOrganizer(_ context.Context, organizerID string) ([]models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Event{}
	for _, e := range r.s.Events {
		if e.Organizer == organizerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *events) IDsByOrganizer(ctx context.Context, organizerID string) ([]string, error) {
	list, _ := r.GetByOrganizer(ctx, organizerID)
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	return ids, nil
}

func (r *events) UpdateSetDocument(_ context.Context, id string, fields bson.M) (*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.Events[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			e.Title = v.(string)
		case "type":
			e.Type = v.(string)
		case "date":
			e.Date = v.(time.Time)
		case "location":
			e.Location = v.(string)
		case "guestCount":
			e.GuestCount = v.(int)
		case "budget":
			e.Budget = v.(float64)
		case "description":
			e.Description = v.(string)
		}
	}
	e.UpdatedAt = time.Now()
	cp := *e
	return &cp, nil
}

func (r *events) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.Events, id)
	return nil
}

func (r *events) DeleteByOrganizer(_ context.Context, organizerID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, e := range r.s.Events {
		if e.Organizer == organizerID {
			delete(r.s.Events, id)
			n++
		}
	}
	return n, nil
}

// ---- provider profiles ----

type profiles struct{ s *Store }

func (r *profiles) Upsert(_ context.Context, u models.ProviderProfileUpdate) (*models.ProviderProfile, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrite != nil {
		return nil, false, r.s.FailWrite
	}
	now := time.Now()
	var target *models.ProviderProfile
	for _, existing := range r.s.Profiles {
		if existing.User == u.User {
			target = existing
			break
		}
	}
	created := target == nil
	if created {
		target = &models.ProviderProfile{
			ID:              uuid.New().String(),
			User:            u.User,
			Rating:          u.Rating,
			PricingPackages: []models.PricingPackage{},
			Portfolio:       []models.PortfolioItem{},
			Availability:    []time.Time{},
			CreatedAt:       now,
		}
		r.s.Profiles[target.ID] = target
	}
	target.Category = u.Category
	if u.Bio != nil {
		target.Bio = *u.Bio
	}
	if u.Location != nil {
		target.Location = *u.Location
	}
	if u.PricingPackages != nil {
		target.PricingPackages = u.PricingPackages
	}
	if u.Portfolio != nil {
		target.Portfolio = u.Portfolio
	}
	if u.Availability != nil {
		target.Availability = u.Availability
	}
	target.UpdatedAt = now
	cp := *target
	return &cp, created, nil
}

func (r *profiles) GetByID(_ context.Context, id string) (*models.ProviderProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.Profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *profiles) GetByUser(_ context.Context, userID string) (*models.ProviderProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.Profiles {
		if p.User == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *profiles) view(p *models.ProviderProfile) models.ProviderProfileView {
	v := models.ProviderProfileView{ProviderProfile: *p}
	if u, ok := r.s.Users[p.User]; ok {
		v.UserInfo = u.Summary()
	}
	return v
}

func (r *profiles) Search(_ context.Context, c models.ProviderSearchCriteria) ([]models.ProviderProfileView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.ProviderProfileView{}
	for _, p := range r.s.Profiles {
		if c.Category != "" && !strings.EqualFold(p.Category, c.Category) {
			continue
		}
		if c.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(c.Location)) {
			continue
		}
		if p.Rating < c.MinRating {
			continue
		}
		out = append(out, r.view(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if c.Limit > 0 && int64(len(out)) > c.Limit {
		out = out[:c.Limit]
	}
	return out, nil
}

func (r *profiles) Sample(_ context.Context, n int) ([]models.ProviderProfileView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.ProviderProfileView{}
	for _, p := range r.s.Profiles {
		out = append(out, r.view(p))
	}
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *profiles) AddPortfolioItem(_ context.Context, userID string, item models.PortfolioItem) (*models.ProviderProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrite != nil {
		return nil, r.s.FailWrite
	}
	for _, p := range r.s.Profiles {
		if p.User == userID {
			p.Portfolio = append(p.Portfolio, item)
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *profiles) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, p := range r.s.Profiles {
		if p.User == userID {
			delete(r.s.Profiles, id)
			n++
		}
	}
	return n, nil
}

// ---- bookings ----

type bookings struct{ s *Store }

func (r *bookings) Create(_ context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrite != nil {
		return r.s.FailWrite
	}
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	cp := *b
	r.s.Bookings[b.ID] = &cp
	return nil
}

func (r *bookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.Bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *bookings) filter(keep func(*models.Booking) bool) []models.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Booking{}
	for _, b := range r.s.Bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *bookings) GetByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return b.Provider == providerID }), nil
}

func (r *bookings) GetByEvents(_ context.Context, eventIDs []string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return contains(eventIDs, b.Event) }), nil
}

func (r *bookings) ExistsForProviderOnEvent(_ context.Context, providerID, eventID string) (bool, error) {
	found := r.filter(func(b *models.Booking) bool {
		return b.Provider == providerID && b.Event == eventID && b.Status != models.BookingCancelled
	})
	return len(found) > 0, nil
}

func (r *bookings) UpdateStatus(_ context.Context, id, from, to string) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.Bookings[id]
	if !ok || b.Status != from {
		return nil, nil
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

func (r *bookings) DeleteByProvider(_ context.Context, providerID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, b := range r.s.Bookings {
		if b.Provider == providerID {
			delete(r.s.Bookings, id)
			n++
		}
	}
	return n, nil
}

func (r *bookings) DeleteByEvents(_ context.Context, eventIDs []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, b := range r.s.Bookings {
		if contains(eventIDs, b.Event) {
			delete(r.s.Bookings, id)
			n++
		}
	}
	return n, nil
}

// ---- chats ----

type chats struct{ s *Store }

func copyChat(c *models.Chat) *models.Chat {
	cp := *c
	cp.Participants = append([]string{}, c.Participants...)
	cp.Messages = append([]models.Message{}, c.Messages...)
	return &cp
}

func (r *chats) Create(_ context.Context, c *models.Chat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrite != nil {
		return r.s.FailWrite
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	if c.Messages == nil {
		c.Messages = []models.Message{}
	}
	r.s.Chats[c.ID] = copyChat(c)
	return nil
}

func (r *chats) find(match func(*models.Chat) bool) *models.Chat {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.Chats {
		if match(c) {
			return copyChat(c)
		}
	}
	return nil
}

func (r *chats) GetByID(_ context.Context, id string) (*models.Chat, error) {
	return r.find(func(c *models.Chat) bool { return c.ID == id }), nil
}

func (r *chats) FindByEvent(_ context.Context, eventID string) (*models.Chat, error) {
	return r.find(func(c *models.Chat) bool { return c.Event == eventID }), nil
}

func (r *chats) FindDirect(_ context.Context, a, b string) (*models.Chat, error) {
	return r.find(func(c *models.Chat) bool {
		return c.Event == "" && len(c.Participants) == 2 && contains(c.Participants, a) && contains(c.Participants, b)
	}), nil
}

func (r *chats) GetForUser(_ context.Context, userID string) ([]models.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Chat{}
	for _, c := range r.s.Chats {
		if contains(c.Participants, userID) {
			out = append(out, *copyChat(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *chats) AddParticipant(_ context.Context, chatID, userID string) (*models.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Chats[chatID]
	if !ok {
		return nil, nil
	}
	if !contains(c.Participants, userID) {
		c.Participants = append(c.Participants, userID)
	}
	c.UpdatedAt = time.Now()
	return copyChat(c), nil
}

func (r *chats) AppendMessage(_ context.Context, chatID string, msg models.Message) (*models.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Chats[chatID]
	if !ok {
		return nil, nil
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = msg.CreatedAt
	return copyChat(c), nil
}

func (r *chats) DeleteByParticipant(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, c := range r.s.Chats {
		if contains(c.Participants, userID) {
			delete(r.s.Chats, id)
			n++
		}
	}
	return n, nil
}

func (r *chats) DeleteByEvents(_ context.Context, eventIDs []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, c := range r.s.Chats {
		if c.Event != "" && contains(eventIDs, c.Event) {
			delete(r.s.Chats, id)
			n++
		}
	}
	return n, nil
}

// Counts returns the number of documents per collection.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"users":    len(s.Users),
		"events":   len(s.Events),
		"profiles": len(s.Profiles),
		"bookings": len(s.Bookings),
		"chats":    len(s.Chats),
	}
}
