package main

import (
	"context"
	"fmt"
	"list-sync/auth"
	"list-sync/domain"
	"list-sync/infrastructure/storage"
	"list-sync/internal"
	"log"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type seedUser struct {
	name string
	role domain.Role
}

var seedUsers = []seedUser{
	{name: "Alice", role: domain.RoleOwner},
	{name: "Bob", role: domain.RoleEditor},
	{name: "Carol", role: domain.RoleViewer},
	{name: "Dave"},
}

// Seeds a shared list with one member per role, plus an outsider, and prints a bearer token
// for each of them so that several push channels can be opened by hand.
func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	users := storage.NewUserRepository(db)
	lists := storage.NewListRepository(db, logger)
	todos := storage.NewTodoRepository(db)
	tokens := auth.NewTokenService(config.JWTSecret)
	now := time.Now().UTC()

	ids := make([]domain.UserID, len(seedUsers))
	for i, u := range seedUsers {
		ids[i] = domain.NewUserID()
		if err := users.SaveUser(domain.User{ID: ids[i], DisplayName: u.name, CreatedAt: now}); err != nil {
			log.Fatalf("Saving user %s failed: %v", u.name, err)
		}
	}

	list := domain.List{ID: domain.NewListID(), Name: "Groceries", OwnerID: ids[0], CreatedAt: now, UpdatedAt: now}
	if err := lists.CreateList(ctx, list); err != nil {
		log.Fatalf("Creating list failed: %v", err)
	}
	for i, u := range seedUsers {
		if u.role == "" || u.role == domain.RoleOwner {
			continue
		}
		if _, err := lists.AddMember(ctx, domain.Member{ListID: list.ID, UserID: ids[i], Role: u.role, AddedAt: now}); err != nil {
			log.Fatalf("Adding member %s failed: %v", u.name, err)
		}
	}

	todo := domain.TodoRecord{
		ID: domain.NewTodoID(), ListID: list.ID, Title: "Buy milk",
		Author: domain.AuthorRef{ID: ids[0]}, CreatedAt: now, UpdatedAt: now,
	}
	if err := todos.SaveTodo(ctx, todo); err != nil {
		log.Fatalf("Saving todo failed: %v", err)
	}

	color.Cyan.Printf("List %q seeded: %s\n\n", list.Name, list.ID)
	for i, u := range seedUsers {
		token, err := tokens.GenerateToken(ids[i].String(), []string{"user"}, config.AuthTokenDuration)
		if err != nil {
			log.Fatalf("Token generation failed: %v", err)
		}
		role := string(u.role)
		if role == "" {
			role = "not a member"
		}
		color.Green.Printf("%-6s", u.name)
		fmt.Printf(" (%s) id=%s\n", role, ids[i])
		color.Gray.Printf("  curl -N 'http://localhost:%d/api/events?token=%s'\n\n", config.Port, token)
	}
}
