package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library/db"
	"library/models"
)

type addBookRequest struct {
	models.Book
	Quantity int `json:"quantity"`
}

type reportRequest struct {
	ReportType       string `json:"report_type"`
	NotificationType string `json:"notification_type" binding:"required"`
}

type loanRequest struct {
	models.User
	Isbn string `json:"isbn" binding:"required"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidIsbn),
		errors.Is(err, models.ErrUnknownNotificationType),
		errors.Is(err, models.ErrUnknownReportType):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrRecordNotFound), errors.Is(err, db.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (server *Server) abort(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		server.Logger.Error("request failed", "method", c.Request.Method, "route", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}

func (server *Server) CreateBook(c *gin.Context) {
	var request addBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book := &request.Book
	if err := book.ValidateIsbn(); err != nil {
		server.abort(c, err)
		return
	}

	if err := server.Catalog.Index(c, book); err != nil {
		server.abort(c, err)
		return
	}

	server.Library.AddBook(book, request.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"status":   "created",
		"isbn":     book.Isbn,
		"quantity": server.Library.Quantity(book.Isbn),
	})
}

func (server *Server) GetBookByIsbn(c *gin.Context) {
	isbn := c.Param("isbn")

	book, err := server.Catalog.GetByIsbn(c, isbn)
	if err != nil {
		server.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"book":     book,
		"display":  book.LongDisplayFormat(),
		"quantity": server.Library.Quantity(isbn),
	})
}

func (server *Server) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	authorName := c.Query("author_name")
	genre := c.Query("genre")

	if title == "" && authorName == "" && genre == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "at least one query parameter is required for search"})
		return
	}

	books, err := server.Catalog.Search(c, title, authorName, genre)
	if err != nil {
		server.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

func (server *Server) ListInventory(c *gin.Context) {
	c.JSON(http.StatusOK, server.Library.Inventory().Entries())
}

func (server *Server) Availability(c *gin.Context) {
	c.String(http.StatusOK, server.Library.AvailabilityReport())
}

func (server *Server) Report(c *gin.Context) {
	var request reportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	report, err := server.Library.GenerateReportAndNotify(request.ReportType, request.NotificationType)
	if err != nil {
		server.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

func (server *Server) ListLoans(c *gin.Context) {
	c.JSON(http.StatusOK, server.Loans.Loans())
}

func (server *Server) BorrowBook(c *gin.Context) {
	user, book, ok := server.bindLoan(c)
	if !ok {
		return
	}

	if err := server.Loans.Borrow(user, book); err != nil {
		server.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "borrowed", "isbn": book.Isbn})
}

func (server *Server) ReturnBook(c *gin.Context) {
	user, book, ok := server.bindLoan(c)
	if !ok {
		return
	}

	if err := server.Loans.Return(user, book); err != nil {
		server.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "returned", "isbn": book.Isbn})
}

func (server *Server) bindLoan(c *gin.Context) (models.User, *models.Book, bool) {
	var request loanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return models.User{}, nil, false
	}

	book, err := server.Catalog.GetByIsbn(c, request.Isbn)
	if err != nil {
		server.abort(c, err)
		return models.User{}, nil, false
	}

	return request.User, book, true
}

func (server *Server) ListNotifications(c *gin.Context) {
	recipient := c.Param("recipient")

	entries, err := server.Journal.Recent(recipient)
	if err != nil {
		server.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (server *Server) GetActivity(c *gin.Context) {
	username := c.Param("username")

	userRequests, err := server.Activity.Read(username)

	if err != nil {
		server.abort(c, err)
		return
	}

	userRequestsRaw := make([]models.UserRequest, 0)

	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			server.abort(c, err)
			return
		}
		userRequestsRaw = append(userRequestsRaw, userRequest)
	}

	c.JSON(http.StatusOK, userRequestsRaw)
}

func (server *Server) CacheUserRequest(c *gin.Context) {
	username, ok := c.GetQuery("username")

	if !ok {
		c.Next()
		return
	}

	userRequest := models.UserRequest{
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
	}

	// Not failing a request if there's a problem caching it
	request, err := json.Marshal(userRequest)
	if err == nil {
		err = server.Activity.Write(username, request)
	}
	if err != nil {
		server.Logger.Warn("failed to cache user request", "username", username, "error", err)
	}

	c.Next()
}
