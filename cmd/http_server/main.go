package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres

	"github.com/lqCintern/farm-management-sub001/handler"
	"github.com/lqCintern/farm-management-sub001/infra/db/model"
	"github.com/lqCintern/farm-management-sub001/middlewares"
	exchangeUsecase "github.com/lqCintern/farm-management-sub001/usecase/exchange"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		fmt.Printf("\n Cannot connect to database %s", DbName)
		log.Fatal("This is the error:", err)
	} else {
		fmt.Printf("We are connected to the database %s", DbName)
	}

	a.DB.Debug().AutoMigrate(
		&model.ExchangePair{},
		&model.ExchangeTransaction{},
		&model.Assignment{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func RegisterExchangeRoutes(router *mux.Router, h *handler.ExchangeHandler) {
	router.HandleFunc("/pairs", h.FindOrCreatePair).Methods("POST")
	router.HandleFunc("/pairs/{id}/balance", h.GetBalance).Methods("GET")
	router.HandleFunc("/pairs/{id}/transactions", h.ListTransactions).Methods("GET")
	router.HandleFunc("/pairs/{id}/reset", h.ResetBalance).Methods("POST")
	router.HandleFunc("/transactions", h.AddTransaction).Methods("POST")
	router.HandleFunc("/assignments/{id}/process", h.ProcessAssignment).Methods("POST")
	router.HandleFunc("/balances/recalculate", h.RecalculateBalance).Methods("POST")
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	exchangeUc := exchangeUsecase.NewExchangeUsecase(a.DB, nil)
	handler := handler.NewExchangeHandler(exchangeUc)
	RegisterExchangeRoutes(a.Router, handler)
}

func (a *App) RunServer() {
	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Printf("\nServer starting on port %v", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
}

func main() {
	app := App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
