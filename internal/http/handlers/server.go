// Package handlers implements the HTTP contract of the dashboard's
// presentation layer: it serves the query pipeline's output and applies the
// state container mutations in response to user input.
package handlers

import (
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/repo"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/report"
)

var (
	productRepo  *repo.ProductRepository
	filterRepo   *repo.FilterRepository
	currencyRepo *repo.CurrencyRepository
	notifier     report.Notifier
)

func SetProductRepo(r *repo.ProductRepository) {
	productRepo = r
}

func SetFilterRepo(r *repo.FilterRepository) {
	filterRepo = r
}

func SetCurrencyRepo(r *repo.CurrencyRepository) {
	currencyRepo = r
}

func SetNotifier(n report.Notifier) {
	notifier = n
}
