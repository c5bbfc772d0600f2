package controllers

import (
	"database/sql"
	"net/http"

	"SportHub/middleware"

	"github.com/gin-gonic/gin"
)

type VenueController struct {
	DB *sql.DB
}

// GetVenueInfo gets information about one bookable venue
// @Summary Venue details
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} object{id=integer,name=string}
// @Failure 404 {object} object{error=string}
// @Router /api/venues/{id} [get]
func (vc *VenueController) GetVenueInfo(c *gin.Context) {
	id := c.Param("id")

	var venue struct {
		ID           int     `json:"id"`
		Name         string  `json:"name"`
		Sport        string  `json:"sport"`
		Address      string  `json:"address"`
		City         string  `json:"city"`
		Capacity     int     `json:"capacity"`
		PricePerHour float64 `json:"price_per_hour"`
	}

	err := vc.DB.QueryRow(`
		SELECT id, name, sport, address, city, capacity, price_per_hour
		FROM venues
		WHERE id = $1
	`, id).Scan(
		&venue.ID, &venue.Name, &venue.Sport, &venue.Address,
		&venue.City, &venue.Capacity, &venue.PricePerHour,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying database: " + err.Error()})
		}
		return
	}

	// How many bookings does this venue already hold
	var bookingCount int
	err = vc.DB.QueryRow(`
		SELECT COUNT(*)
		FROM venue_bookings
		WHERE venue_id = $1 AND status != 'cancelled'
	`, id).Scan(&bookingCount)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting bookings: " + err.Error()})
		return
	}

	response := gin.H{
		"id":             venue.ID,
		"name":           venue.Name,
		"sport":          venue.Sport,
		"address":        venue.Address,
		"city":           venue.City,
		"capacity":       venue.Capacity,
		"price_per_hour": venue.PricePerHour,
		"booking_count":  bookingCount,
	}

	c.JSON(http.StatusOK, response)
}

// ListVenues returns every venue, optionally filtered by city or sport
// @Summary List venues
// @Tags venues
// @Produce json
// @Param city query string false "City"
// @Param sport query string false "Sport"
// @Success 200 {array} object{id=integer,name=string}
// @Router /api/venues [get]
func (vc *VenueController) ListVenues(c *gin.Context) {
	query := `
		SELECT id, name, sport, city, price_per_hour
		FROM venues
		WHERE ($1 = '' OR city = $1) AND ($2 = '' OR sport = $2)
		ORDER BY name
	`
	rows, err := vc.DB.Query(query, c.Query("city"), c.Query("sport"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying database: " + err.Error()})
		return
	}
	defer rows.Close()

	venues := []gin.H{}
	for rows.Next() {
		var id int
		var name, sport, city string
		var price float64
		if err := rows.Scan(&id, &name, &sport, &city, &price); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading venues: " + err.Error()})
			return
		}
		venues = append(venues, gin.H{
			"id":             id,
			"name":           name,
			"sport":          sport,
			"city":           city,
			"price_per_hour": price,
		})
	}

	c.JSON(http.StatusOK, venues)
}

// CreateBooking books a venue time slot for the authenticated user
// @Summary Book a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Venue ID"
// @Success 201 {object} object{id=integer,status=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/venues/{id}/bookings [post]
// @Security ApiKeyAuth
func (vc *VenueController) CreateBooking(c *gin.Context) {
	email, err := middleware.JWT_decoder(c)
	if err != nil {
		return
	}

	var username string
	if err := vc.DB.QueryRow(`SELECT username FROM users WHERE email = $1`, email).Scan(&username); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
		return
	}

	var body struct {
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Date == "" || body.StartTime == "" || body.EndTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, startTime and endTime are required"})
		return
	}

	venueID := c.Param("id")

	// The slot must not overlap a non-cancelled booking
	var overlap int
	err = vc.DB.QueryRow(`
		SELECT COUNT(*)
		FROM venue_bookings
		WHERE venue_id = $1 AND date = $2 AND status != 'cancelled'
		  AND start_time < $4 AND end_time > $3
	`, venueID, body.Date, body.StartTime, body.EndTime).Scan(&overlap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking availability: " + err.Error()})
		return
	}
	if overlap > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "That time slot is already booked"})
		return
	}

	var bookingID int
	err = vc.DB.QueryRow(`
		INSERT INTO venue_bookings (venue_id, username, date, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id
	`, venueID, username, body.Date, body.StartTime, body.EndTime).Scan(&bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating booking: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": bookingID, "status": "pending"})
}

// ListBookings returns the authenticated user's bookings
// @Summary List own bookings
// @Tags venues
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} object{id=integer,venue=string}
// @Router /api/bookings [get]
// @Security ApiKeyAuth
func (vc *VenueController) ListBookings(c *gin.Context) {
	email, err := middleware.JWT_decoder(c)
	if err != nil {
		return
	}

	var username string
	if err := vc.DB.QueryRow(`SELECT username FROM users WHERE email = $1`, email).Scan(&username); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
		return
	}

	rows, err := vc.DB.Query(`
		SELECT b.id, v.name, b.date, b.start_time, b.end_time, b.status
		FROM venue_bookings b
		JOIN venues v ON v.id = b.venue_id
		WHERE b.username = $1
		ORDER BY b.date, b.start_time
	`, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying database: " + err.Error()})
		return
	}
	defer rows.Close()

	bookings := []gin.H{}
	for rows.Next() {
		var id int
		var venue, date, start, end, status string
		if err := rows.Scan(&id, &venue, &date, &start, &end, &status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading bookings: " + err.Error()})
			return
		}
		bookings = append(bookings, gin.H{
			"id":         id,
			"venue":      venue,
			"date":       date,
			"start_time": start,
			"end_time":   end,
			"status":     status,
		})
	}

	c.JSON(http.StatusOK, bookings)
}
