package main

import (
	"fmt"
	"net/http"

	"github.com/wagebook/wagebook-backend-go/internal/config"
	appHTTP "github.com/wagebook/wagebook-backend-go/internal/handler/http"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
	"github.com/wagebook/wagebook-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wagebook/wagebook-backend-go/internal/service/attendance"
	employeeService "github.com/wagebook/wagebook-backend-go/internal/service/employee"
	ledgerService "github.com/wagebook/wagebook-backend-go/internal/service/ledger"
	settlementService "github.com/wagebook/wagebook-backend-go/internal/service/settlement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryPaymentRepo := postgresql.NewSalaryPaymentRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	ledgerSvc := ledgerService.NewLedgerService(db, transactionRepo, employeeRepo)
	settlementSvc := settlementService.NewSettlementService(db, salaryPaymentRepo, transactionRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)

	statusHandler := appHTTP.NewStatusHandler(cfg)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	transactionHandler := appHTTP.NewTransactionHandler(ledgerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	settlementHandler := appHTTP.NewSettlementHandler(settlementSvc)

	router := appHTTP.NewRouter(
		cfg,
		statusHandler,
		employeeHandler,
		transactionHandler,
		attendanceHandler,
		settlementHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
