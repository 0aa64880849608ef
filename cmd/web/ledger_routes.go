package main

import (
	"net/http"

	"github.com/PlanetSoftweb/sppl/internal/db"
	"github.com/PlanetSoftweb/sppl/internal/httputil"
	"github.com/PlanetSoftweb/sppl/internal/service"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/go-chi/chi/v5"
)

func ledgerRoutes(r chi.Router) {
	dbConn := db.GetDB()
	ledgerService := service.NewLedgerService(dbConn, store.NewLedgerStore(dbConn))

	r.Get("/api/ledger", func(w http.ResponseWriter, r *http.Request) {
		data, err := ledgerService.GetLedger(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to load ledger", err)
			return
		}
		httputil.JSON(w, http.StatusOK, data)
	})

	r.Post("/api/expenses", func(w http.ResponseWriter, r *http.Request) {
		var input service.ExpenseInput
		if err := httputil.Decode(r, &input); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		expense, err := ledgerService.AddExpense(r.Context(), input)
		if err != nil {
			serviceError(w, err, "Expense not found", "Failed to add expense")
			return
		}
		httputil.JSON(w, http.StatusCreated, expense)
	})

	r.Delete("/api/expenses/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := ledgerService.DeleteExpense(r.Context(), id); err != nil {
			serviceError(w, err, "Expense not found", "Failed to delete expense")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Delete("/api/sponsors/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := ledgerService.DeleteSponsor(r.Context(), id); err != nil {
			serviceError(w, err, "Sponsor not found", "Failed to delete sponsor")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Post("/api/budget", func(w http.ResponseWriter, r *http.Request) {
		var input service.BudgetInput
		if err := httputil.Decode(r, &input); err != nil {
			httputil.BadRequest(w, "Invalid request body", err)
			return
		}
		budget, err := ledgerService.UpdateBudget(r.Context(), input)
		if err != nil {
			serviceError(w, err, "Budget not found", "Failed to update budget")
			return
		}
		httputil.JSON(w, http.StatusOK, budget)
	})
}
