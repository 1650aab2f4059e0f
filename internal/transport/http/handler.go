package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aleksandr-shch/sun-finance/internal/config"
	"github.com/aleksandr-shch/sun-finance/internal/domain"
	"github.com/aleksandr-shch/sun-finance/internal/dto"
	"github.com/aleksandr-shch/sun-finance/internal/middleware"
	"github.com/aleksandr-shch/sun-finance/internal/pkg/log"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	Clients      domain.ClientUsecase
	Applications domain.ApplicationUsecase
	PageSize     int
}

func NewHandler(c domain.ClientUsecase, a domain.ApplicationUsecase, pageSize int) *Handler {
	if pageSize < 1 {
		pageSize = config.DefaultItemsPerPage
	}
	return &Handler{Clients: c, Applications: a, PageSize: pageSize}
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func parsePage(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, &requestError{msg: MsgInvalidPage}
	}
	return page, nil
}

func parseID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return int32(id), nil
}

func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return nil
	}
	var (
		attrErr *dto.AttributeError
		iriErr  *dto.IRIError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &attrErr):
		return &requestError{msg: attrErr.Error()}
	case errors.As(err, &iriErr):
		return &requestError{msg: iriErr.Error()}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &requestError{msg: fmt.Sprintf(MsgAttributeType, typeErr.Field, typeName(typeErr.Type), typeErr.Value)}
	}
	return &requestError{msg: MsgInvalidJSON}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Bool:
		return "bool"
	case reflect.Slice, reflect.Map, reflect.Struct:
		return "array"
	}
	return t.Kind().String()
}

func fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		vErr   *domain.ValidationError
		reqErr *requestError
	)
	switch {
	case errors.As(err, &reqErr):
		log.Info.Printf("%s bad_request err=%q", op, reqErr.msg)
		writeErr(w, StatusBadRequest, reqErr.msg)
	case errors.As(err, &vErr):
		log.Info.Printf("%s invalid violations=%d", op, len(vErr.Violations))
		writeViolations(w, vErr.Violations)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidID):
		writeErr(w, StatusNotFound, MsgNotFound)
	default:
		log.Error.Printf("%s repo_err req=%s err=%v", op, middleware.RequestIDFrom(r.Context()), err)
		writeErr(w, StatusInternalServerError, MsgInternal)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeErr(w, StatusNotFound, MsgNotFound)
}

func notAllowed(w http.ResponseWriter, _ *http.Request) {
	writeErr(w, StatusMethodNotAllowed, MsgNotAllowed)
}
