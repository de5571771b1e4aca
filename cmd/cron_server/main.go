package main

import (
	"context"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	_ "github.com/jinzhu/gorm/dialects/sqlite"   //sqlite
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/abjp/driver-payroll/config"
	"github.com/abjp/driver-payroll/handler"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/locker"
	advanceUsecase "github.com/abjp/driver-payroll/usecase/advance"
	backupUsecase "github.com/abjp/driver-payroll/usecase/backup"
	driverUsecase "github.com/abjp/driver-payroll/usecase/driver"
	pixUsecase "github.com/abjp/driver-payroll/usecase/pix"
	processingUsecase "github.com/abjp/driver-payroll/usecase/processing"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startFormWindowWorker(h *handler.PayrollHandler, workerID int) {
	for {
		ctx := context.Background()
		if err := h.FormWindowExecution(ctx); err != nil {
			log.Errorf("[FormWorker %d] error: %s", workerID, err)
		}
		time.Sleep(cfg.Interval)
	}
}

func (cfg CronWorkerConfig) startBackupWorker(h *handler.PayrollHandler, workerID int) {
	for {
		ctx := context.Background()
		taken, err := h.DailyBackupExecution(ctx)
		if err != nil {
			log.Errorf("[BackupWorker %d] error: %s", workerID, err)
		} else if taken {
			log.Infof("[BackupWorker %d] snapshot taken", workerID)
		}
		time.Sleep(cfg.Interval)
	}
}

type App struct {
	Config config.Config
	DB     *gorm.DB
	Locker *locker.Locker
}

type registryDirectory struct {
	dao dao.DaoMethod
}

func (r registryDirectory) ActiveDriverIDs() ([]string, error) {
	return r.dao.ListActiveDriverIDs()
}

func (a *App) buildHandler() *handler.PayrollHandler {
	d := dao.NewDaoMethod(a.DB)

	processing := processingUsecase.NewProcessingUsecase(d, registryDirectory{dao: d}, a.Locker, processingUsecase.Params{
		AdvancePercent: decimal.NewFromFloat(a.Config.Payroll.AdvancePercent),
		FlatFee:        decimal.NewFromFloat(a.Config.Payroll.FlatFee),
	})
	drivers := driverUsecase.NewDriverUsecase(d)
	pix := pixUsecase.NewPixUsecase(d)
	advance := advanceUsecase.NewAdvanceUsecase(d)
	backup := backupUsecase.NewBackupUsecase(d, a.Config.Cron.BackupHour)

	return handler.NewPayrollHandler(processing, drivers, pix, advance, backup, a.Config.Server.UploadDir)
}

func (a *App) startCronWorkers() {
	var wg sync.WaitGroup
	h := a.buildHandler()

	formCfg := CronWorkerConfig{
		Workers:  a.Config.Cron.Workers,
		Interval: time.Duration(a.Config.Cron.FormCheckIntervalSec) * time.Second,
	}
	for i := 0; i < formCfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Infof("spawn [FormWorker %d]", workerID)
			formCfg.startFormWindowWorker(h, workerID)
		}(i + 1)
	}

	backupCfg := CronWorkerConfig{
		Workers:  1,
		Interval: time.Minute,
	}
	wg.Add(1)
	go func(workerID int) {
		log.Infof("spawn [BackupWorker %d]", workerID)
		backupCfg.startBackupWorker(h, workerID)
	}(1)

	wg.Wait()
}

func (a *App) Initialize(cfg config.Config) {
	a.Config = cfg

	dialect, args := cfg.Database.DSN()
	var err error
	a.DB, err = gorm.Open(dialect, args)
	if err != nil {
		log.Fatalf("Cannot connect to database (%s): %s", dialect, err)
	}
	log.Infof("Connected to %s database", dialect)

	a.Locker = locker.New()
}

func (a *App) RunServer() {
	a.startCronWorkers()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load configuration: %s", err)
	}

	app := App{}
	app.Initialize(cfg)
	app.RunServer()
}
