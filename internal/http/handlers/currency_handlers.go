package handlers

import (
	"net/http"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
)

// ListCurrenciesHandler godoc
// @Summary The supported currency catalog
// @Tags currency
// @Produce json
// @Success 200 {array} models.Currency
// @Router /currencies [get]
func ListCurrenciesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Currencies())
}

// GetCurrencyHandler godoc
// @Summary The active display currency
// @Tags currency
// @Produce json
// @Success 200 {object} models.Currency
// @Router /currency [get]
func GetCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currencyRepo.Current())
}

// SetCurrencyHandler godoc
// @Summary Select the display currency by code
// @Tags currency
// @Accept json
// @Produce json
// @Param currency body CurrencyRequest true "Currency code"
// @Success 200 {object} models.Currency
// @Failure 400 {string} string "Unknown currency"
// @Router /currency [put]
func SetCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	var req CurrencyRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	currency, ok := models.CurrencyByCode(req.Code)
	if !ok {
		http.Error(w, "unknown currency code", http.StatusBadRequest)
		return
	}
	currencyRepo.Set(r.Context(), currency)
	writeJSON(w, http.StatusOK, currencyRepo.Current())
}
