package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	_ "github.com/jinzhu/gorm/dialects/sqlite"   //sqlite
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/abjp/driver-payroll/config"
	"github.com/abjp/driver-payroll/handler"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
	"github.com/abjp/driver-payroll/infra/locker"
	"github.com/abjp/driver-payroll/middlewares"
	advanceUsecase "github.com/abjp/driver-payroll/usecase/advance"
	backupUsecase "github.com/abjp/driver-payroll/usecase/backup"
	driverUsecase "github.com/abjp/driver-payroll/usecase/driver"
	pixUsecase "github.com/abjp/driver-payroll/usecase/pix"
	processingUsecase "github.com/abjp/driver-payroll/usecase/processing"
)

type App struct {
	Config config.Config
	DB     *gorm.DB
	Router *mux.Router
}

// registryDirectory exposes the driver registry to the batch orchestrator.
type registryDirectory struct {
	dao dao.DaoMethod
}

func (r registryDirectory) ActiveDriverIDs() ([]string, error) {
	return r.dao.ListActiveDriverIDs()
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

	a.DB.AutoMigrate(
		&model.Driver{},
		&model.PixKeyRecord{},
		&model.AdvanceRequest{},
		&model.FormConfig{},
		&model.FormLog{},
		&model.ProcessingResult{},
		&model.BackupLog{},
		&model.DriverBackup{},
		&model.AdvanceRequestBackup{},
		&model.PixKeyRecordBackup{},
	) //database migration

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func RegisterPayrollRoutes(router *mux.Router, h *handler.PayrollHandler) {
	// Batch processing
	router.HandleFunc("/upload", h.UploadFile).Methods("POST")
	router.HandleFunc("/process_batch", h.ProcessBatch).Methods("POST")
	router.HandleFunc("/get_result", h.GetResult).Methods("GET")
	router.HandleFunc("/results", h.ListResults).Methods("GET")
	router.HandleFunc("/results", h.DeleteResult).Methods("DELETE")
	router.HandleFunc("/report/excel", h.ExportReport).Methods("GET")

	// Driver registry
	router.HandleFunc("/drivers", h.ListDrivers).Methods("GET")
	router.HandleFunc("/drivers", h.CreateDriver).Methods("POST")
	router.HandleFunc("/drivers/{id}", h.GetDriver).Methods("GET")
	router.HandleFunc("/drivers/{id}", h.UpdateDriver).Methods("PUT")
	router.HandleFunc("/drivers/{id}", h.DeleteDriver).Methods("DELETE")

	// Public PIX key intake and review
	router.HandleFunc("/pix", h.SubmitPix).Methods("POST")
	router.HandleFunc("/pix/pending", h.ListPendingPix).Methods("GET")
	router.HandleFunc("/pix/{id}/approve", h.ApprovePix).Methods("POST")
	router.HandleFunc("/pix/{id}/reject", h.RejectPix).Methods("POST")

	// Public advance form
	router.HandleFunc("/advance/form_status", h.AdvanceFormStatus).Methods("GET")
	router.HandleFunc("/advance", h.SubmitAdvance).Methods("POST")

	// Form administration
	router.HandleFunc("/advance/requests", h.ListAdvanceRequests).Methods("GET")
	router.HandleFunc("/form/open", h.OpenAdvanceForm).Methods("POST")
	router.HandleFunc("/form/close", h.CloseAdvanceForm).Methods("POST")
	router.HandleFunc("/form/schedule", h.ScheduleAdvanceForm).Methods("POST")
	router.HandleFunc("/form/auto", h.ConfigureAdvanceFormAuto).Methods("POST")
	router.HandleFunc("/form/config", h.GetAdvanceFormConfig).Methods("GET")
	router.HandleFunc("/form/logs", h.ListAdvanceFormLogs).Methods("GET")
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)

	d := dao.NewDaoMethod(a.DB)
	lk := locker.New()

	processing := processingUsecase.NewProcessingUsecase(d, registryDirectory{dao: d}, lk, processingUsecase.Params{
		AdvancePercent: decimal.NewFromFloat(a.Config.Payroll.AdvancePercent),
		FlatFee:        decimal.NewFromFloat(a.Config.Payroll.FlatFee),
	})
	drivers := driverUsecase.NewDriverUsecase(d)
	pix := pixUsecase.NewPixUsecase(d)
	advance := advanceUsecase.NewAdvanceUsecase(d)
	backup := backupUsecase.NewBackupUsecase(d, a.Config.Cron.BackupHour)

	h := handler.NewPayrollHandler(processing, drivers, pix, advance, backup, a.Config.Server.UploadDir)
	RegisterPayrollRoutes(a.Router, h)
}

func (a *App) RunServer() {
	port := a.Config.Server.Port
	log.Infof("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, a.Router))
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
