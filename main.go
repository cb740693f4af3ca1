package main

import (
	"fmt"
	"log"
	"os"

	"github.com/BelkinSergey/shareit-server/routes"
	"github.com/BelkinSergey/shareit-server/storage"
	"github.com/BelkinSergey/shareit-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	// Only load .env in development
	if os.Getenv("APP_ENV") != "production" {
		godotenv.Load()
	}

	// Initialize services
	db := storage.InitializeDB()
	storage.InitializeRedis()
	routes.Init(db)

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, "+utils.CallerHeader)
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)
	app.Use(utils.RequestIDMiddleware)

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	// User CRUD carries no caller header; identity management is out of
	// scope and the first user could never present one.
	user := app.Party("/users")
	{
		user.Post("/", routes.CreateUser)
		user.Get("/", routes.ListUsers)
		user.Get("/{id:uint}", routes.GetUser)
		user.Patch("/{id:uint}", routes.UpdateUser)
		user.Delete("/{id:uint}", routes.DeleteUser)
	}

	item := app.Party("/items", utils.CallerIDMiddleware)
	{
		item.Post("/", routes.CreateItem)
		item.Get("/", routes.ListOwnerItems)
		item.Get("/search", routes.SearchItems)
		item.Get("/{id:uint}", routes.GetItem)
		item.Patch("/{id:uint}", routes.UpdateItem)
		item.Delete("/{id:uint}", routes.DeleteItem)
		item.Post("/{id:uint}/comment", routes.AddComment)
	}

	booking := app.Party("/bookings", utils.CallerIDMiddleware)
	{
		booking.Post("/", routes.CreateBooking)
		booking.Get("/", routes.ListBookerBookings)
		booking.Get("/owner", routes.ListOwnerBookings)
		booking.Get("/{id:uint}", routes.GetBooking)
		booking.Patch("/{id:uint}", routes.UpdateBookingStatus)
	}

	request := app.Party("/requests", utils.CallerIDMiddleware)
	{
		request.Post("/", routes.CreateRequest)
		request.Get("/", routes.ListOwnRequests)
		request.Get("/all", routes.ListOtherRequests)
		request.Get("/{id:uint}", routes.GetRequest)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "9090"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
