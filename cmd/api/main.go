package main

import (
	"fmt"
	"net/http"

	"github.com/meridianhr/console-backend-go/internal/config"
	appHTTP "github.com/meridianhr/console-backend-go/internal/handler/http"
	"github.com/meridianhr/console-backend-go/internal/pkg/erp"
	"github.com/meridianhr/console-backend-go/internal/pkg/jwt"
	"github.com/meridianhr/console-backend-go/internal/repository/erpnext"
	authService "github.com/meridianhr/console-backend-go/internal/service/auth"
	payrollRunService "github.com/meridianhr/console-backend-go/internal/service/payrollrun"
	statementService "github.com/meridianhr/console-backend-go/internal/service/statement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	erpClient := erp.NewClient(cfg.ERP)

	payrollGateway := erpnext.NewPayrollGateway(erpClient)
	slipRepo := erpnext.NewSlipRepository(erpClient)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	runStore := payrollRunService.NewRunStore()

	authSvc := authService.NewAuthService(erpClient, JWTService)
	runSvc := payrollRunService.NewRunService(payrollGateway, runStore)
	slipSvc := statementService.NewSlipService(slipRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	payrollRunHandler := appHTTP.NewPayrollRunHandler(runSvc)
	statementHandler := appHTTP.NewStatementHandler(slipSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		payrollRunHandler,
		statementHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
