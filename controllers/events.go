package controllers

import (
	"SportHub/middleware"
	models "SportHub/models/postgres"
	"SportHub/services/eventform"
	"SportHub/utils"
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func imageContentType(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}

// currentUser resolves the authenticated user or aborts the request.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	email, err := middleware.JWT_decoder(c)
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
		return nil, false
	}
	return &user, true
}

func eventResponse(db *gorm.DB, event *models.Event) gin.H {
	var location, rules, equipment interface{}
	json.Unmarshal(event.Location, &location)
	json.Unmarshal(event.Rules, &rules)
	json.Unmarshal(event.Equipment, &equipment)

	images := make([]gin.H, 0, len(event.Images))
	for _, img := range event.Images {
		images = append(images, gin.H{"id": img.ID, "filename": img.Filename, "position": img.Position})
	}

	count, _ := utils.CountParticipants(db, event.ID)

	return gin.H{
		"id":               event.ID,
		"name":             event.Name,
		"category":         event.Category,
		"description":      event.Description,
		"date":             event.Date,
		"time":             event.Time,
		"location":         location,
		"maxParticipants":  event.MaxParticipants,
		"registrationFee":  event.RegistrationFee,
		"difficulty":       event.Difficulty,
		"eventType":        event.EventType,
		"rules":            rules,
		"equipment":        equipment,
		"images":           images,
		"creator":          event.CreatorUsername,
		"participantCount": count,
		"createdAt":        event.CreatedAt,
	}
}

// @Summary List events
// @Description Returns events, optionally filtered by category, city or difficulty
// @Tags events
// @Produce json
// @Param category query string false "Category"
// @Param city query string false "City"
// @Param difficulty query string false "Difficulty"
// @Success 200 {array} object{id=string,name=string}
// @Failure 500 {object} object{error=string}
// @Router /api/events [get]
func ListEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Event{}).Preload("Images")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if difficulty := c.Query("difficulty"); difficulty != "" {
			query = query.Where("difficulty = ?", difficulty)
		}
		if city := c.Query("city"); city != "" {
			query = query.Where("location ->> 'city' = ?", city)
		}

		var events []models.Event
		if err := query.Order("created_at DESC").Find(&events).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
			return
		}

		out := make([]gin.H, 0, len(events))
		for i := range events {
			out = append(out, eventResponse(db, &events[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Get event
// @Description Returns one event with images and participant count
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} object{id=string,name=string}
// @Failure 404 {object} object{error=string}
// @Router /api/events/{id} [get]
func GetEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := db.Preload("Images").Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching event"})
			}
			return
		}
		c.JSON(http.StatusOK, eventResponse(db, &event))
	}
}

// @Summary Create event
// @Description Creates an event from a multipart form. Rejected unless every required field is filled (completion 100).
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 201 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/events [post]
// @Security ApiKeyAuth
func CreateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}

		draft, err := eventform.ParseSubmission(form.Value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Publish gate: all ten required-field predicates, no rounding.
		if !eventform.Complete(draft) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    "Event form is incomplete",
				"progress": eventform.Progress(draft),
			})
			return
		}

		files := form.File["images"]
		for _, fh := range files {
			if err := draft.Images.AddPending(eventform.PendingImage{
				Filename:    fh.Filename,
				ContentType: imageContentType(fh),
				Size:        fh.Size,
			}); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		event, err := draftToEvent(draft)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error encoding event"})
			return
		}
		event.CreatorUsername = user.Username

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event"})
			return
		}
		if err := tx.Create(event).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event"})
			return
		}
		// Creator joins their own event
		if err := tx.Create(&models.EventParticipant{EventID: event.ID, Username: user.Username}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event"})
			return
		}
		if err := storeImages(c, tx, event.ID, files, 0); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing images"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating event"})
			return
		}

		log.Printf("[EVENT-CREATE] %s created event %s", user.Username, event.ID)
		c.JSON(http.StatusCreated, gin.H{"id": event.ID})
	}
}

// @Summary Update event
// @Description Updates an event from a multipart form; deletedImages removes persisted images by id
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event ID"
// @Success 200 {object} object{id=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/events/{id} [put]
// @Security ApiKeyAuth
func UpdateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}

		var event models.Event
		if err := db.Preload("Images").Where("id = ?", c.Param("id")).First(&event).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching event"})
			}
			return
		}
		if event.CreatorUsername != user.Username {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator can edit an event"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}

		draft, err := eventform.ParseSubmission(form.Value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !eventform.Complete(draft) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    "Event form is incomplete",
				"progress": eventform.Progress(draft),
			})
			return
		}

		// Deleted and retained ids must both belong to this event.
		byID := make(map[string]*models.EventImage, len(event.Images))
		for _, img := range event.Images {
			byID[img.ID] = img
		}
		for _, id := range draft.Images.Deleted {
			if _, ok := byID[id]; !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown image id in deletedImages"})
				return
			}
		}
		for i := range draft.Images.Existing {
			img, ok := byID[draft.Images.Existing[i].ID]
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown image id in existingImages"})
				return
			}
			draft.Images.Existing[i].Filename = img.Filename
		}

		// The image cap counts what the database will actually retain, not
		// what the client chose to list: every persisted row that is not
		// being deleted stays, whether or not existingImages named it.
		draft.Images.Existing = retainedImages(event.Images, draft.Images.Deleted)

		files := form.File["images"]
		for _, fh := range files {
			if err := draft.Images.AddPending(eventform.PendingImage{
				Filename:    fh.Filename,
				ContentType: imageContentType(fh),
				Size:        fh.Size,
			}); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		updated, err := draftToEvent(draft)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error encoding event"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating event"})
			return
		}

		if err := tx.Model(&event).Updates(map[string]interface{}{
			"name":             updated.Name,
			"category":         updated.Category,
			"description":      updated.Description,
			"date":             updated.Date,
			"time":             updated.Time,
			"location":         updated.Location,
			"max_participants": updated.MaxParticipants,
			"registration_fee": updated.RegistrationFee,
			"difficulty":       updated.Difficulty,
			"event_type":       updated.EventType,
			"rules":            updated.Rules,
			"equipment":        updated.Equipment,
		}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating event"})
			return
		}

		// Server-side deletion of persisted images, by stable identifier
		if len(draft.Images.Deleted) > 0 {
			if err := tx.Where("event_id = ? AND id IN (?)", event.ID, draft.Images.Deleted).
				Delete(&models.EventImage{}).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting images"})
				return
			}
		}

		if err := storeImages(c, tx, event.ID, files, len(draft.Images.Existing)); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing images"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating event"})
			return
		}

		// Files on disk go after the transaction commits.
		for _, id := range draft.Images.Deleted {
			if img := byID[id]; img != nil {
				if err := os.Remove(filepath.Join(uploadDir(), img.Filename)); err != nil && !os.IsNotExist(err) {
					log.Printf("[EVENT-UPDATE] Error removing image file %s: %v", img.Filename, err)
				}
			}
		}

		log.Printf("[EVENT-UPDATE] %s updated event %s", user.Username, event.ID)
		c.JSON(http.StatusOK, gin.H{"id": event.ID})
	}
}

// retainedImages rebuilds the server-side image set of an event after the
// requested deletions are applied.
func retainedImages(persisted []*models.EventImage, deletedIDs []string) []eventform.ExistingImage {
	deleted := make(map[string]bool, len(deletedIDs))
	for _, id := range deletedIDs {
		deleted[id] = true
	}
	retained := make([]eventform.ExistingImage, 0, len(persisted))
	for _, img := range persisted {
		if !deleted[img.ID] {
			retained = append(retained, eventform.ExistingImage{ID: img.ID, Filename: img.Filename})
		}
	}
	return retained
}

func draftToEvent(draft *eventform.Draft) (*models.Event, error) {
	location, err := json.Marshal(draft.Location)
	if err != nil {
		return nil, err
	}
	rules, err := json.Marshal(draft.Rules)
	if err != nil {
		return nil, err
	}
	equipment, err := json.Marshal(draft.Equipment)
	if err != nil {
		return nil, err
	}

	return &models.Event{
		Name:            draft.Name,
		Category:        draft.Category,
		Description:     draft.Description,
		Date:            draft.Date,
		Time:            draft.Time,
		Location:        datatypes.JSON(location),
		MaxParticipants: draft.MaxParticipants,
		RegistrationFee: draft.RegistrationFee,
		Difficulty:      draft.Difficulty,
		EventType:       draft.EventType,
		Rules:           datatypes.JSON(rules),
		Equipment:       datatypes.JSON(equipment),
	}, nil
}

func storeImages(c *gin.Context, tx *gorm.DB, eventID string, files []*multipart.FileHeader, startPos int) error {
	if len(files) == 0 {
		return nil
	}
	if err := os.MkdirAll(uploadDir(), 0o755); err != nil {
		return err
	}
	for i, fh := range files {
		filename := uuid.NewString() + filepath.Ext(fh.Filename)
		if err := c.SaveUploadedFile(fh, filepath.Join(uploadDir(), filename)); err != nil {
			return err
		}
		img := models.EventImage{EventID: eventID, Filename: filename, Position: startPos + i}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}

// @Summary Join event
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/events/{id}/join [post]
// @Security ApiKeyAuth
func JoinEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}

		event, err := utils.CheckEventExists(db, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		already, err := utils.IsParticipant(db, event.ID, user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining event"})
			return
		}
		if already {
			c.JSON(http.StatusConflict, gin.H{"error": "You already joined this event"})
			return
		}

		count, err := utils.CountParticipants(db, event.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining event"})
			return
		}
		if event.MaxParticipants > 0 && count >= int64(event.MaxParticipants) {
			c.JSON(http.StatusConflict, gin.H{"error": "Event is full"})
			return
		}

		participant := models.EventParticipant{EventID: event.ID, Username: user.Username}
		if err := db.Create(&participant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining event"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Joined event"})
	}
}

// @Summary Leave event
// @Tags events
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/events/{id}/leave [post]
// @Security ApiKeyAuth
func LeaveEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}

		result := db.Where("event_id = ? AND username = ?", c.Param("id"), user.Username).
			Delete(&models.EventParticipant{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error leaving event"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "You are not a participant of this event"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Left event"})
	}
}

// @Summary Rate event
// @Description Creates or replaces the caller's rating for an event
// @Tags events
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Event ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/events/{id}/ratings [post]
// @Security ApiKeyAuth
func RateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db)
		if !ok {
			return
		}

		event, err := utils.CheckEventExists(db, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		var body struct {
			Score   int    `json:"score"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating payload"})
			return
		}
		if body.Score < 1 || body.Score > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 1 and 5"})
			return
		}

		isParticipant, err := utils.IsParticipant(db, event.ID, user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving rating"})
			return
		}
		if !isParticipant {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only participants can rate an event"})
			return
		}

		var rating models.EventRating
		err = db.Where("event_id = ? AND username = ?", event.ID, user.Username).First(&rating).Error
		if err == gorm.ErrRecordNotFound {
			rating = models.EventRating{
				EventID:  event.ID,
				Username: user.Username,
				Score:    body.Score,
				Comment:  body.Comment,
			}
			err = db.Create(&rating).Error
		} else if err == nil {
			err = db.Model(&rating).Updates(map[string]interface{}{
				"score":   body.Score,
				"comment": body.Comment,
			}).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving rating"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Rating saved"})
	}
}
