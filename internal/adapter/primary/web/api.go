package web

import (
	"encoding/json"
	"net/http"

	"folio/internal/core"
	"folio/internal/domain"
)

type imagePayload struct {
	ID  string `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type galleryPayload struct {
	Status  string         `json:"status"`
	Images  []imagePayload `json:"images"`
	Message string         `json:"message,omitempty"`
}

func galleryToView(o domain.GalleryOutcome) galleryPayload {
	images := make([]imagePayload, 0, len(o.Images))
	for _, img := range o.Images {
		images = append(images, imagePayload{ID: img.ID, Src: img.Source, Alt: img.Caption})
	}
	return galleryPayload{Status: o.Kind.String(), Images: images, Message: o.Message}
}

func (s *Server) handleAPIGallery(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, galleryToView(s.gallery.Load(r.Context())))
}

type formPayload struct {
	Values        map[string]string `json:"values"`
	Errors        map[string]string `json:"errors"`
	SubmitEnabled bool              `json:"submitEnabled"`
	SubmitStatus  string            `json:"submitStatus,omitempty"`
}

// formToView reports only the errors that are currently displayed.
func formToView(st core.FormState) formPayload {
	p := formPayload{
		Values:        make(map[string]string, len(st.Values)),
		Errors:        make(map[string]string, len(st.Visible)),
		SubmitEnabled: st.SubmitEnabled,
		SubmitStatus:  st.SubmitStatus,
	}
	for k, v := range st.Values {
		p.Values[string(k)] = v
	}
	for k, v := range st.Visible {
		p.Errors[string(k)] = v
	}
	return p
}

type fieldPayload struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func decodeField(r *http.Request) (domain.FieldName, string, error) {
	var req fieldPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", err
	}
	field, err := domain.ParseFieldName(req.Field)
	if err != nil {
		return "", "", err
	}
	return field, req.Value, nil
}

func (s *Server) handleAPIContact(w http.ResponseWriter, r *http.Request) {
	st, err := s.contact.State(s.session(w, r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, formToView(st))
}

func (s *Server) handleAPIContactChange(w http.ResponseWriter, r *http.Request) {
	sid := s.session(w, r)
	field, value, err := decodeField(r)
	if err != nil {
		respondFieldError(w, err)
		return
	}
	st, err := s.contact.Change(sid, field, value)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, formToView(st))
}

func (s *Server) handleAPIContactBlur(w http.ResponseWriter, r *http.Request) {
	sid := s.session(w, r)
	field, _, err := decodeField(r)
	if err != nil {
		respondFieldError(w, err)
		return
	}
	st, err := s.contact.Blur(sid, field)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, formToView(st))
}

// handleAPIContactSubmit answers 422 when validation rejects the form.
func (s *Server) handleAPIContactSubmit(w http.ResponseWriter, r *http.Request) {
	st, ok, err := s.contact.Submit(r.Context(), s.session(w, r))
	if err != nil {
		respondError(w, err)
		return
	}
	status := http.StatusOK
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, formToView(st))
}

func respondFieldError(w http.ResponseWriter, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	respondError(w, err)
}
