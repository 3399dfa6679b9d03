package service

import (
	"log/slog"

	"library/cache"
	"library/db"
	"library/library"
	"library/notification"
)

type Server struct {
	Library  *library.Library
	Loans    *library.LoanManager
	Catalog  db.Catalog
	Activity cache.RequestCacher
	Journal  *notification.Journal
	Logger   *slog.Logger
}
