package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRecords godoc
// @Summary List DNS records
// @Description Returns the DNS records of a zone
// @Tags records
// @Produce json
// @Param zoneId path string true "Zone ID"
// @Success 200 {array} models.DNSRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /zones/{zoneId}/dns_records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	result, err := h.gateway.ListRecords(c.Request.Context(), c.Param("zoneId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondRaw(c, http.StatusOK, result)
}

// CreateRecord godoc
// @Summary Create a DNS record
// @Description Creates a record in the zone; field validation is left to Cloudflare
// @Tags records
// @Accept json
// @Produce json
// @Param zoneId path string true "Zone ID"
// @Param record body models.RecordFields true "Record to create"
// @Success 201 {object} models.DNSRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /zones/{zoneId}/dns_records [post]
func (h *Handler) CreateRecord(c *gin.Context) {
	body, ok := h.readJSONBody(c)
	if !ok {
		return
	}
	result, err := h.gateway.CreateRecord(c.Request.Context(), c.Param("zoneId"), body)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.logger.Info("dns record created", "zone_id", c.Param("zoneId"))
	respondRaw(c, http.StatusCreated, result)
}

// UpdateRecord godoc
// @Summary Update a DNS record
// @Description Overwrites a record; field validation is left to Cloudflare
// @Tags records
// @Accept json
// @Produce json
// @Param zoneId path string true "Zone ID"
// @Param recordId path string true "Record ID"
// @Param record body models.RecordFields true "Record fields"
// @Success 200 {object} models.DNSRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /zones/{zoneId}/dns_records/{recordId} [put]
func (h *Handler) UpdateRecord(c *gin.Context) {
	body, ok := h.readJSONBody(c)
	if !ok {
		return
	}
	result, err := h.gateway.UpdateRecord(c.Request.Context(), c.Param("zoneId"), c.Param("recordId"), body)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.logger.Info("dns record updated", "zone_id", c.Param("zoneId"), "record_id", c.Param("recordId"))
	respondRaw(c, http.StatusOK, result)
}

// DeleteRecord godoc
// @Summary Delete a DNS record
// @Description Deletes a record from the zone
// @Tags records
// @Produce json
// @Param zoneId path string true "Zone ID"
// @Param recordId path string true "Record ID"
// @Success 200 {object} models.DeleteResult
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /zones/{zoneId}/dns_records/{recordId} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	result, err := h.gateway.DeleteRecord(c.Request.Context(), c.Param("zoneId"), c.Param("recordId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.logger.Info("dns record deleted", "zone_id", c.Param("zoneId"), "record_id", c.Param("recordId"))
	respondRaw(c, http.StatusOK, result)
}
