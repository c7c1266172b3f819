package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cafes-service/cmd/api/cafe"
	"github.com/cafes-service/cmd/api/formtoken"
	"github.com/rs/zerolog"
)

const msgNameTaken = "A cafe with this name already exists."

type CafeHandler struct {
	cafeService cafe.ServiceAPI
	tokens      *formtoken.Issuer
}

func NewCafeHandler(cafeService cafe.ServiceAPI, tokens *formtoken.Issuer) *CafeHandler {
	return &CafeHandler{cafeService: cafeService, tokens: tokens}
}

/* Renders the list of every stored cafe. */
func (h *CafeHandler) listCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.cafeService.ListCafes(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	render(w, r, http.StatusOK, "index.html", listPage{Title: "All Cafes", Cafes: cafes})
}

func (h *CafeHandler) showAddForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, addPage(cafe.Form{}))
}

/* Validates the submitted form, then stores it as a new cafe. */
func (h *CafeHandler) addCafe(w http.ResponseWriter, r *http.Request) {
	page, in, ok := h.readForm(w, r, addPage)
	if !ok {
		return
	}

	_, err := h.cafeService.CreateCafe(r.Context(), in)
	if err != nil {
		if errors.Is(err, cafe.ErrResponseCafeNameConflict) {
			page.Errors = cafe.FieldErrors{"name": msgNameTaken}
			h.renderForm(w, r, http.StatusConflict, page)
			return
		}
		serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/* Renders the edit form pre-filled with the stored cafe. */
func (h *CafeHandler) showEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := cafeID(w, r)
	if !ok {
		return
	}

	stored, err := h.cafeService.GetCafe(r.Context(), id)
	if err != nil {
		cafeError(w, r, err)
		return
	}

	form, err := cafe.FormFromCafe(stored)
	if err != nil {
		serverError(w, r, err)
		return
	}

	h.renderForm(w, r, http.StatusOK, editPage(id)(form))
}

/* Validates the submitted form, then overwrites the cafe with it. */
func (h *CafeHandler) editCafe(w http.ResponseWriter, r *http.Request) {
	id, ok := cafeID(w, r)
	if !ok {
		return
	}

	_, err := h.cafeService.GetCafe(r.Context(), id)
	if err != nil {
		cafeError(w, r, err)
		return
	}

	page, in, ok := h.readForm(w, r, editPage(id))
	if !ok {
		return
	}

	_, err = h.cafeService.UpdateCafe(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, cafe.ErrResponseCafeNameConflict) {
			page.Errors = cafe.FieldErrors{"name": msgNameTaken}
			h.renderForm(w, r, http.StatusConflict, page)
			return
		}
		cafeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/* Deletes the cafe right away, there is no confirmation step. */
func (h *CafeHandler) deleteCafe(w http.ResponseWriter, r *http.Request) {
	id, ok := cafeID(w, r)
	if !ok {
		return
	}

	deleted, err := h.cafeService.DeleteCafe(r.Context(), id)
	if err != nil {
		cafeError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("cafe_id", deleted.ID).Str("name", deleted.Name).Msg("cafe deleted")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func addPage(form cafe.Form) formPage {
	return formPage{Title: "Add a new cafe", Action: "/add", Form: form}
}

func editPage(id int64) func(cafe.Form) formPage {
	return func(form cafe.Form) formPage {
		return formPage{Title: "Edit cafe", Action: fmt.Sprintf("/edit/%d", id), Form: form}
	}
}

// readForm parses and checks a submitted cafe form. When it returns false
// the response (bad token or validation errors) has already been written.
func (h *CafeHandler) readForm(w http.ResponseWriter, r *http.Request, newPage func(cafe.Form) formPage) (formPage, cafe.CafeInput, bool) {
	err := r.ParseForm()
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("parsing form")
		renderError(w, r, http.StatusBadRequest, "The submitted form could not be read.")
		return formPage{}, cafe.CafeInput{}, false
	}

	page := newPage(cafe.FormFromValues(r.PostForm))

	err = h.tokens.Verify(r.PostForm.Get(formtoken.FieldName), page.Action)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rejecting form")
		page.FormError = cafe.ErrResponseFormTokenInvalid.Message
		h.renderForm(w, r, http.StatusBadRequest, page)
		return formPage{}, cafe.CafeInput{}, false
	}

	in, fieldErrs := cafe.Validate(page.Form)
	if len(fieldErrs) > 0 {
		page.Errors = fieldErrs
		h.renderForm(w, r, http.StatusUnprocessableEntity, page)
		return formPage{}, cafe.CafeInput{}, false
	}

	return page, in, true
}

/* Renders a cafe form with a freshly issued token. */
func (h *CafeHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, page formPage) {
	token, err := h.tokens.Issue(page.Action)
	if err != nil {
		serverError(w, r, err)
		return
	}
	page.Token = token
	page.Seats = cafe.SeatChoices

	render(w, r, status, "add.html", page)
}

/* Isolates the ID from the URL. Anything but a non-negative integer is an unknown page. */
func cafeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		zerolog.Ctx(r.Context()).Info().Str("id", r.PathValue("id")).Msg(cafe.ErrResponseIdInvalidFormat.Message)
		renderError(w, r, http.StatusNotFound, "This page does not exist.")
		return 0, false
	}
	return id, true
}

func cafeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cafe.ErrResponseCafeNotFound) {
		zerolog.Ctx(r.Context()).Info().Err(err).Msg("cafe not found")
		renderError(w, r, http.StatusNotFound, "This cafe does not exist.")
		return
	}
	serverError(w, r, err)
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("handling request")
	renderError(w, r, http.StatusInternalServerError, "Something went wrong on our side.")
}
