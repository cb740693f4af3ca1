package main

import (
	"fmt"
	"log"

	"github.com/BelkinSergey/shareit-server/models"
	"github.com/BelkinSergey/shareit-server/storage"
)

// Seeds a couple of users and items so the API can be exercised by hand
// against a fresh database. Safe to run more than once.
func main() {
	db := storage.InitializeDB()

	users := []models.User{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	}
	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("Error seeding user %s: %v", users[i].Email, err)
		}
	}

	available := true
	items := []models.Item{
		{Name: "Cordless drill", Description: "18V drill with two batteries", Available: &available, OwnerID: users[0].ID},
		{Name: "Camping tent", Description: "Two person tent, waterproof", Available: &available, OwnerID: users[1].ID},
	}
	for i := range items {
		if err := db.Where("name = ? AND owner_id = ?", items[i].Name, items[i].OwnerID).FirstOrCreate(&items[i]).Error; err != nil {
			log.Fatalf("Error seeding item %s: %v", items[i].Name, err)
		}
	}

	fmt.Println("Demo data seeding completed successfully!")
}
