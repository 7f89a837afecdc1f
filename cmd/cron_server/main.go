package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/handler"
	"github.com/lqCintern/farm-management-sub001/infra/locker"
	exchangeUsecase "github.com/lqCintern/farm-management-sub001/usecase/exchange"
	"github.com/lqCintern/farm-management-sub001/utils"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startExchangeExecutorWorker(h *handler.ExchangeHandler, workerID int) {
	for {
		ctx := context.Background()
		err := h.ExchangeExecution(ctx)
		switch {
		case errors.Is(err, handler.ErrNoAssignmentHandled):
			// idle poll
		case err != nil:
			log.Printf("[Worker %d] error: %s", workerID, err.Error())
		default:
			log.Printf("[Worker %d] success", workerID)
		}

		time.Sleep(cfg.Interval)
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
}

func (a *App) startCronWorker(cfg CronWorkerConfig) {
	var wg sync.WaitGroup

	exchangeUc := exchangeUsecase.NewExchangeUsecase(a.DB, a.Locker)
	h := handler.NewExchangeHandler(exchangeUc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Printf("spawn [Worker %d]", workerID)
			cfg.startExchangeExecutorWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		fmt.Printf("\n Cannot connect to database %s", DbName)
		log.Fatal("This is the error:", err)
	}

	a.Locker = locker.New()
}

func (a *App) RunServer() {
	a.startCronWorker(CronWorkerConfig{
		Workers:  envInt("WORKER_NUMBER", consts.DefaultWorkerNumber),
		Interval: time.Duration(envInt("WORKER_INTERVAL_SEC", consts.DefaultIntervalInSec)) * time.Second,
	})
}

func envInt(key string, fallback int) int {
	raw := utils.GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
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
