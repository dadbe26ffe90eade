package web

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/flosch/pongo2/v6"

	"folio/internal/core"
	"folio/internal/domain"
	"folio/internal/logging"
	"folio/internal/usecase"
)

// bannerModel is a server-rendered carousel. Prev and Next are the slide
// indices the no-script controls link to.
type bannerModel struct {
	Page string
	View core.View
	Prev int
	Next int
}

// bannerFor renders the page banner at the slide requested by ?slide=N.
// Missing or out-of-range values show the first slide.
func (s *Server) bannerFor(page string, r *http.Request) (bannerModel, error) {
	cfg, err := s.carousels.Banner(page)
	if err != nil {
		return bannerModel{}, err
	}
	state, _, err := core.NewState(cfg)
	if err != nil {
		return bannerModel{}, err
	}
	if raw := r.URL.Query().Get("slide"); raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil {
			next, _, err := core.HandleEvent(state, core.Event{Type: core.EventGoTo, Data: core.GoToData{Index: idx}})
			if err == nil {
				state = next
			}
		}
	}

	view := state.View()
	svc := domain.NewCarouselService()
	return bannerModel{
		Page: page,
		View: view,
		Prev: svc.Previous(view.ActiveIndex, view.SlideCount),
		Next: svc.Next(view.ActiveIndex, view.SlideCount),
	}, nil
}

func (s *Server) page(w http.ResponseWriter, r *http.Request, name, title string, data pongo2.Context) {
	if data == nil {
		data = pongo2.Context{}
	}
	data["title"] = title
	data["nav"] = navFor(r.URL.Path)

	var buf bytes.Buffer
	if err := s.pages.render(&buf, name, data); err != nil {
		logging.Errorf("render %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	banner, err := s.bannerFor(usecase.PageHome, r)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	s.page(w, r, "home.html", "Home", pongo2.Context{
		"banner":   banner,
		"features": homeFeatures,
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, "about.html", "About", pongo2.Context{"about": about})
}

func (s *Server) handlePlaceholder(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.page(w, r, "placeholder.html", title, nil)
	}
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	banner, err := s.bannerFor(usecase.PageGallery, r)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	outcome := s.gallery.Load(r.Context())
	data := pongo2.Context{
		"banner":  banner,
		"gallery": outcome,
	}
	if id := r.URL.Query().Get("image"); id != "" {
		if img, ok := outcome.Find(id); ok {
			data["selected"] = img
		}
	}
	s.page(w, r, "gallery.html", "Gallery", data)
}

type fieldView struct {
	fieldMeta
	Value string
	Error string
}

func contactView(st core.FormState) []fieldView {
	out := make([]fieldView, 0, len(contactFields))
	for _, meta := range contactFields {
		out = append(out, fieldView{
			fieldMeta: meta,
			Value:     st.Values[meta.Name],
			Error:     st.Visible[meta.Name],
		})
	}
	return out
}

func (s *Server) renderContact(w http.ResponseWriter, r *http.Request, st core.FormState) {
	s.page(w, r, "contact.html", "Contact", pongo2.Context{
		"form":   st,
		"fields": contactView(st),
	})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	sid := s.session(w, r)
	st, err := s.contact.State(sid)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	s.renderContact(w, r, st)
}

// handleContactPost is the no-script submit path: every posted value is
// applied as a change before the form is submitted.
func (s *Server) handleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sid := s.session(w, r)
	for _, field := range domain.Fields {
		if _, err := s.contact.Change(sid, field, r.PostFormValue(string(field))); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
	}
	st, _, err := s.contact.Submit(r.Context(), sid)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	s.renderContact(w, r, st)
}
