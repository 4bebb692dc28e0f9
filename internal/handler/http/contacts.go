package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/models"
)

const contactIDParam = "id"

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.ListContacts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewContactResponses(contacts), http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.services.ContactService.GetContact(r.Context(), chi.URLParam(r, contactIDParam))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewContactResponse(contact), http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	var request models.ContactRequest
	if err := decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.CreateContact(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewContactResponse(contact), http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	var request models.ContactRequest
	if err := decodeBody(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.UpdateContact(r.Context(), chi.URLParam(r, contactIDParam), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewContactResponse(contact), http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ContactService.DeleteContact(r.Context(), chi.URLParam(r, contactIDParam)); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Contact deleted"}, http.StatusOK)
}

// searchContacts matches the "q" query parameter. A missing or blank q
// yields an empty list.
func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.SearchContacts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewContactResponses(contacts), http.StatusOK)
}
