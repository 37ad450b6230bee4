package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/julienschmidt/httprouter"

	employees "github.com/kirti136/mock05-backend"
	"github.com/kirti136/mock05-backend/auth"
	"github.com/kirti136/mock05-backend/config"
)

func main() {
	cfg := config.Load()
	if cfg.SigningKey == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		log.Fatal(err)
	}

	// The driver connects lazily, so a failed ping only gets logged
	// and the server starts anyway.
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("cannot connect to database: %v", err)
	} else {
		log.Println("connected to database")
	}

	db := client.Database(cfg.Database)
	accountSvc := auth.NewService(auth.NewMongoAccountRepository(db.Collection("users")))
	issuer := auth.NewTokenIssuer([]byte(cfg.SigningKey))
	employeeSvc := employees.NewService(employees.NewMongoEmployeeRepository(db.Collection("employees")))

	router := httprouter.New()
	router.Handler(http.MethodPost, "/user/signup", auth.SignupHandler(accountSvc))
	router.Handler(http.MethodPost, "/user/login", auth.LoginHandler(accountSvc, issuer))
	router.Handler(http.MethodPost, "/employees", employees.CreateEmployeeHandler(employeeSvc))
	router.Handler(http.MethodGet, "/employees", employees.ListEmployeesHandler(employeeSvc))
	router.Handler(http.MethodPatch, "/employees/:id", employees.UpdateEmployeeHandler(employeeSvc))
	router.Handler(http.MethodDelete, "/employees/:id", employees.DeleteEmployeeHandler(employeeSvc))
	router.Handler(http.MethodGet, "/employees/pagination", employees.ListEmployeePageHandler(employeeSvc))
	router.Handler(http.MethodGet, "/employees/filter/:department", employees.FilterEmployeesHandler(employeeSvc))
	router.Handler(http.MethodGet, "/employees/sort/:order", employees.SortEmployeesHandler(employeeSvc))
	router.Handler(http.MethodGet, "/employees/search/:firstName", employees.SearchEmployeesHandler(employeeSvc))

	log.Printf("Server started. Listening on port: %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
