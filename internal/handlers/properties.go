package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	apperrors "property-listings/internal/common/errors"
	"property-listings/internal/common/logging"
	"property-listings/internal/storage"
)

// pricePattern accepts non-negative fixed-point decimals with at most two
// fractional digits
var pricePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

type propertyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Location    string `json:"location"`
}

func (r *propertyRequest) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ValidationError("title is required")
	}
	if len(r.Title) > 200 {
		return apperrors.ValidationError("title must be at most 200 characters")
	}
	if strings.TrimSpace(r.Location) == "" {
		return apperrors.ValidationError("location is required")
	}
	if len(r.Location) > 100 {
		return apperrors.ValidationError("location must be at most 100 characters")
	}
	if !pricePattern.MatchString(r.Price) {
		return apperrors.ValidationError("price must be a non-negative decimal with at most two decimal places")
	}
	return nil
}

// normalizedPrice pads the price to exactly two decimal places
func (r *propertyRequest) normalizedPrice() string {
	whole, fraction, found := strings.Cut(r.Price, ".")
	if !found {
		return whole + ".00"
	}
	for len(fraction) < 2 {
		fraction += "0"
	}
	return whole + "." + fraction
}

// ListProperties returns the full property listing as JSON
// @Summary List all properties
// @Description Returns every property listing, newest first. Served through the response cache and the queryset cache.
// @Tags properties
// @Produce json
// @Success 200 {object} map[string]interface{} "Property listing"
// @Failure 500 {object} map[string]string "Data layer failure"
// @Router /api/properties [get]
func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.cache.GetAll(r.Context())
	if err != nil {
		logging.Error("Failed to list properties", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"properties": properties,
		"count":      len(properties),
		"cached":     true,
	})
}

// ListPropertiesHTML renders the property listing as an HTML page
// @Summary List all properties as HTML
// @Description Renders the property listing as HTML. Served through the same cache tiers as the JSON listing.
// @Tags properties
// @Produce html
// @Success 200 {string} string "Property listing page"
// @Failure 500 {string} string "Data layer failure"
// @Router /properties/html [get]
func (h *Handlers) ListPropertiesHTML(w http.ResponseWriter, r *http.Request) {
	properties, err := h.cache.GetAll(r.Context())
	if err != nil {
		logging.Error("Failed to list properties", err)
		http.Error(w, "Failed to retrieve properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.ExecuteTemplate(w, "property_list.html", map[string]interface{}{
		"Properties": properties,
		"Count":      len(properties),
	}); err != nil {
		logging.Error("Failed to render property listing", err)
	}
}

// CreateProperty creates a new property listing
// @Summary Create a property
// @Description Creates a property listing and invalidates the queryset cache.
// @Tags properties
// @Accept json
// @Produce json
// @Success 201 {object} storage.Property "Created property"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Data layer failure"
// @Router /api/properties [post]
func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := req.validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	property := &storage.Property{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.normalizedPrice(),
		Location:    req.Location,
	}
	if err := h.storage.CreateProperty(property); err != nil {
		logging.Error("Failed to create property", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	h.writeJSON(w, http.StatusCreated, property)
}

// UpdateProperty updates an existing property listing
// @Summary Update a property
// @Description Updates a property listing and invalidates the queryset cache. The creation timestamp is immutable.
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} storage.Property "Updated property"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Data layer failure"
// @Router /api/properties/{id} [put]
func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := req.validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	property := &storage.Property{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.normalizedPrice(),
		Location:    req.Location,
	}
	if err := h.storage.UpdateProperty(property); err != nil {
		if apperrors.IsType(err, apperrors.ErrTypeNotFound) {
			h.writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		logging.Error("Failed to update property", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}

	h.writeJSON(w, http.StatusOK, property)
}

// DeleteProperty deletes a property listing
// @Summary Delete a property
// @Description Deletes a property listing and invalidates the queryset cache.
// @Tags properties
// @Param id path int true "Property ID"
// @Success 204 {string} string "Deleted"
// @Failure 400 {object} map[string]string "Invalid property ID"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Data layer failure"
// @Router /api/properties/{id} [delete]
func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}

	if err := h.storage.DeleteProperty(id); err != nil {
		if apperrors.IsType(err, apperrors.ErrTypeNotFound) {
			h.writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		logging.Error("Failed to delete property", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
