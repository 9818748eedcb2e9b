package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"eventra/config"
	"eventra/database"
	bookingRepo "eventra/database/repository/booking"
	eventRepo "eventra/database/repository/event"
	providerRepo "eventra/database/repository/provider"
	userRepo "eventra/database/repository/user"
	"eventra/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "password123"

var collections = []string{"users", "providerprofiles", "events", "bookings", "chats"}

var providerSeeds = []struct {
	Name     string
	Category string
	Location string
	Packages []models.PricingPackage
}{
	{"Savory Bites Catering", "Catering", "Nairobi", []models.PricingPackage{{Name: "Buffet", Price: 1500}, {Name: "Plated", Price: 2800}}},
	{"Lens & Light Studio", "Photography", "Mombasa", []models.PricingPackage{{Name: "Half day", Price: 600}, {Name: "Full day", Price: 1100}}},
	{"Bloom Decor", "Decoration", "Nairobi", []models.PricingPackage{{Name: "Classic", Price: 900}}},
	{"Beat Drop DJs", "Entertainment", "Kisumu", []models.PricingPackage{{Name: "Evening set", Price: 700}}},
	{"Glow Makeup", "Makeup", "Nakuru", []models.PricingPackage{{Name: "Bridal", Price: 400}, {Name: "Party", Price: 150}}},
	{"SafeGuard Events", "Security", "Nairobi", []models.PricingPackage{{Name: "Team of four", Price: 800}}},
}

var organizerSeeds = []struct {
	Name   string
	Events []models.Event
}{
	{"Olivia Organizer", []models.Event{
		{Title: "Wanjiru & Tom Wedding", Type: "Wedding", Location: "Nairobi", GuestCount: 180, Budget: 12000},
		{Title: "Product Launch", Type: "Corporate", Location: "Nairobi", GuestCount: 60, Budget: 4000},
	}},
	{"Brian Planner", []models.Event{
		{Title: "Amani's 30th", Type: "Birthday", Location: "Mombasa", GuestCount: 40, Budget: 2500},
	}},
}

func main() {
	config.LoadConfig()
	database.InitDB()
	defer database.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.DB()
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	users := userRepo.NewMongoUserRepo(db)
	providers := providerRepo.NewMongoProviderRepo(db)
	events := eventRepo.NewMongoEventRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	var providerUsers []*models.User
	for i, p := range providerSeeds {
		u := &models.User{
			ID:           uuid.New().String(),
			Name:         p.Name,
			Email:        fmt.Sprintf("provider%d@eventra.test", i+1),
			PasswordHash: string(hash),
			Role:         models.RoleProvider,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("Failed to insert provider user %s: %v", u.Email, err)
		}

		bio, location := fmt.Sprintf("%s serving events across %s.", p.Name, p.Location), p.Location
		profile, _, err := providers.Upsert(ctx, models.ProviderProfileUpdate{
			User:            u.ID,
			Category:        p.Category,
			Bio:             &bio,
			Location:        &location,
			PricingPackages: p.Packages,
			Rating:          float64(35+rand.Intn(16)) / 10,
		})
		if err != nil {
			log.Fatalf("Failed to insert profile for %s: %v", u.Email, err)
		}
		if err := users.UpdateSetDocument(ctx, u.ID, bson.M{"profileRef": profile.ID}); err != nil {
			log.Fatalf("Failed to link profile for %s: %v", u.Email, err)
		}
		providerUsers = append(providerUsers, u)
	}

	statuses := []string{models.BookingPending, models.BookingConfirmed, models.BookingCompleted}
	eventCount, bookingCount := 0, 0
	for i, o := range organizerSeeds {
		u := &models.User{
			ID:           uuid.New().String(),
			Name:         o.Name,
			Email:        fmt.Sprintf("organizer%d@eventra.test", i+1),
			PasswordHash: string(hash),
			Role:         models.RoleOrganizer,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("Failed to insert organizer %s: %v", u.Email, err)
		}

		for j, e := range o.Events {
			ev := e
			ev.ID = uuid.New().String()
			ev.Organizer = u.ID
			ev.Date = time.Now().AddDate(0, 1+j, 0).Truncate(24 * time.Hour).UTC()
			if err := events.Create(ctx, &ev); err != nil {
				log.Fatalf("Failed to insert event %q: %v", ev.Title, err)
			}
			eventCount++

			for k := 0; k < 2; k++ {
				p := providerUsers[rand.Intn(len(providerUsers))]
				b := &models.Booking{
					ID:          uuid.New().String(),
					Event:       ev.ID,
					Provider:    p.ID,
					ServiceName: p.Name,
					Date:        ev.Date,
					Status:      statuses[(j+k)%len(statuses)],
					Price:       float64(300 + rand.Intn(20)*50),
				}
				if err := bookings.Create(ctx, b); err != nil {
					log.Fatalf("Failed to insert booking: %v", err)
				}
				bookingCount++
			}
		}
	}

	log.Printf("Seeded %d providers, %d organizers, %d events and %d bookings (password %q)",
		len(providerUsers), len(organizerSeeds), eventCount, bookingCount, demoPassword)
}
